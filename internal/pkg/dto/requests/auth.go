package requests

type Login struct {
	Nick     string `json:"memberNick" validate:"required"`
	Password string `json:"memberPassword" validate:"required"`
}

type SignupMember struct {
	MemberNick     string `json:"memberNick" validate:"required,min=3,max=12"`
	MemberPassword string `json:"memberPassword" validate:"required,min=5,max=12"`
	MemberPhone    string `json:"memberPhone" validate:"required,min=6,max=16"`
	MemberGender   string `json:"memberGender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
}

type SignupDoctor struct {
	DoctorNick       string   `json:"doctorNick" validate:"required,min=3,max=12"`
	DoctorPassword   string   `json:"doctorPassword" validate:"required,min=5,max=12"`
	DoctorPhone      string   `json:"doctorPhone" validate:"required,min=6,max=16"`
	DoctorFullName   string   `json:"doctorFullName" validate:"required,max=50"`
	DoctorGender     string   `json:"doctorGender,omitempty" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	LicenseNumber    string   `json:"licenseNumber" validate:"required,min=4,max=20"`
	Specialization   string   `json:"specialization" validate:"required,specialization"`
	DoctorFees       float64  `json:"doctorFees" validate:"gte=0"`
	Experience       int      `json:"experience" validate:"gte=0"`
	ConsultationType string   `json:"consultationType,omitempty" validate:"omitempty,oneof=ONLINE OFFLINE"`
	Languages        []string `json:"languages,omitempty" validate:"omitempty,dive,min=2,max=20"`
	ClinicName       string   `json:"clinicName,omitempty" validate:"omitempty,max=100"`
	ClinicAddress    string   `json:"clinicAddress,omitempty" validate:"omitempty,max=200"`
}

type ForgotPassword struct {
	MemberNick  string `json:"memberNick" validate:"required"`
	MemberPhone string `json:"memberPhone" validate:"required"`
}

type ResetPassword struct {
	MemberNick     string `json:"memberNick" validate:"required"`
	MemberPhone    string `json:"memberPhone" validate:"required"`
	MemberPassword string `json:"memberPassword" validate:"required"`
}
