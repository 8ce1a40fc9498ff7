package models

type Doctor struct {
	ID               string        `json:"_id"`
	MemberType       string        `json:"memberType"`
	DoctorStatus     string        `json:"doctorStatus"`
	DoctorNick       string        `json:"doctorNick"`
	DoctorPhone      string        `json:"doctorPhone"`
	DoctorFullName   string        `json:"doctorFullName"`
	DoctorImage      string        `json:"doctorImage"`
	DoctorGender     string        `json:"doctorGender"`
	DoctorDesc       string        `json:"doctorDesc"`
	LicenseNumber    string        `json:"licenseNumber"`
	Specialization   string        `json:"specialization"`
	ConsultationType string        `json:"consultationType"`
	ClinicName       string        `json:"clinicName"`
	ClinicAddress    string        `json:"clinicAddress"`
	DoctorFees       float64       `json:"doctorFees"`
	Experience       int           `json:"experience"`
	Languages        []string      `json:"languages"`
	WorkingHours     []WorkingHour `json:"workingHours"`
	DoctorViews      int           `json:"doctorViews"`
	DoctorLikes      int           `json:"doctorLikes"`
	DoctorRank       float64       `json:"doctorRank"`
	CreatedAt        string        `json:"createdAt"`
	UpdatedAt        string        `json:"updatedAt"`
}

func EmptyDoctor() Doctor {
	return Doctor{
		Languages:    []string{},
		WorkingHours: []WorkingHour{},
	}
}

func (d Doctor) IsEmpty() bool {
	return d.ID == ""
}

func NormalizeDoctor(claims *Claims) Doctor {
	if claims == nil {
		return EmptyDoctor()
	}

	workingHours := make([]WorkingHour, len(claims.WorkingHours))
	copy(workingHours, claims.WorkingHours)

	return Doctor{
		ID:               claims.ID,
		MemberType:       claims.MemberType,
		DoctorStatus:     claims.DoctorStatus,
		DoctorNick:       claims.DoctorNick,
		DoctorPhone:      claims.DoctorPhone,
		DoctorFullName:   claims.DoctorFullName,
		DoctorImage:      claims.DoctorImage,
		DoctorGender:     claims.DoctorGender,
		DoctorDesc:       claims.DoctorDesc,
		LicenseNumber:    claims.LicenseNumber,
		Specialization:   claims.Specialization,
		ConsultationType: claims.ConsultationType,
		ClinicName:       claims.ClinicName,
		ClinicAddress:    claims.ClinicAddress,
		DoctorFees:       claims.DoctorFees,
		Experience:       claims.Experience,
		Languages:        cloneStrings(claims.Languages),
		WorkingHours:     workingHours,
		DoctorViews:      claims.DoctorViews,
		DoctorLikes:      claims.DoctorLikes,
		DoctorRank:       claims.DoctorRank,
		CreatedAt:        claims.CreatedAt,
		UpdatedAt:        claims.UpdatedAt,
	}
}

// WithDefaults replaces nil lists so the record serializes like a projection.
func (d Doctor) WithDefaults() Doctor {
	if d.Languages == nil {
		d.Languages = []string{}
	}
	if d.WorkingHours == nil {
		d.WorkingHours = []WorkingHour{}
	}
	return d
}
