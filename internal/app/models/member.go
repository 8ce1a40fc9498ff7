package models

// Member is the member shaped current user. Every field holds a value; an
// empty ID means nobody is logged in.
type Member struct {
	ID                     string            `json:"_id"`
	MemberType             string            `json:"memberType"`
	MemberStatus           string            `json:"memberStatus"`
	MemberAuthType         string            `json:"memberAuthType"`
	MemberPhone            string            `json:"memberPhone"`
	MemberNick             string            `json:"memberNick"`
	MemberFullName         string            `json:"memberFullName"`
	MemberImage            string            `json:"memberImage"`
	MemberAddress          string            `json:"memberAddress"`
	MemberDesc             string            `json:"memberDesc"`
	MemberGender           string            `json:"memberGender"`
	MemberDateOfBirth      string            `json:"memberDateOfBirth"`
	MemberBloodGroup       string            `json:"memberBloodGroup"`
	MemberAllergies        []string          `json:"memberAllergies"`
	MemberChronicDiseases  []string          `json:"memberChronicDiseases"`
	MemberEmergencyContact *EmergencyContact `json:"memberEmergencyContact"`
	MemberPoints           int               `json:"memberPoints"`
	MemberLikes            int               `json:"memberLikes"`
	MemberViews            int               `json:"memberViews"`
	CreatedAt              string            `json:"createdAt"`
	UpdatedAt              string            `json:"updatedAt"`
}

func EmptyMember() Member {
	return Member{
		MemberAllergies:       []string{},
		MemberChronicDiseases: []string{},
	}
}

func (m Member) IsEmpty() bool {
	return m.ID == ""
}

// NormalizeMember projects claims onto the member shape. Doctor tokens fill
// the member fields they lack from the matching doctor fields.
func NormalizeMember(claims *Claims) Member {
	if claims == nil {
		return EmptyMember()
	}

	return Member{
		ID:                     claims.ID,
		MemberType:             claims.MemberType,
		MemberStatus:           firstNonEmpty(claims.MemberStatus, claims.DoctorStatus),
		MemberAuthType:         claims.MemberAuthType,
		MemberPhone:            firstNonEmpty(claims.MemberPhone, claims.DoctorPhone),
		MemberNick:             firstNonEmpty(claims.MemberNick, claims.DoctorNick),
		MemberFullName:         firstNonEmpty(claims.MemberFullName, claims.DoctorFullName),
		MemberImage:            firstNonEmpty(claims.MemberImage, claims.DoctorImage),
		MemberAddress:          firstNonEmpty(claims.MemberAddress, claims.ClinicAddress),
		MemberDesc:             firstNonEmpty(claims.MemberDesc, claims.DoctorDesc),
		MemberGender:           firstNonEmpty(claims.MemberGender, claims.DoctorGender),
		MemberDateOfBirth:      claims.MemberDateOfBirth,
		MemberBloodGroup:       claims.MemberBloodGroup,
		MemberAllergies:        cloneStrings(claims.MemberAllergies),
		MemberChronicDiseases:  cloneStrings(claims.MemberChronicDiseases),
		MemberEmergencyContact: cloneEmergencyContact(claims.MemberEmergencyContact),
		MemberPoints:           claims.MemberPoints,
		MemberLikes:            firstNonZero(claims.MemberLikes, claims.DoctorLikes),
		MemberViews:            firstNonZero(claims.MemberViews, claims.DoctorViews),
		CreatedAt:              claims.CreatedAt,
		UpdatedAt:              claims.UpdatedAt,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func firstNonZero(values ...int) int {
	for _, value := range values {
		if value != 0 {
			return value
		}
	}
	return 0
}

func cloneStrings(values []string) []string {
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}

func cloneEmergencyContact(contact *EmergencyContact) *EmergencyContact {
	if contact == nil {
		return nil
	}
	cloned := *contact
	return &cloned
}
