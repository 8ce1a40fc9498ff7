package models

import "github.com/golang-jwt/jwt/v4"

// Claims is the payload of an access token. Members and doctors share one
// token format, so the record carries the fields of both shapes.
type Claims struct {
	ID         string `json:"_id"`
	MemberType string `json:"memberType"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`

	MemberStatus           string            `json:"memberStatus,omitempty"`
	MemberAuthType         string            `json:"memberAuthType,omitempty"`
	MemberPhone            string            `json:"memberPhone,omitempty"`
	MemberNick             string            `json:"memberNick,omitempty"`
	MemberFullName         string            `json:"memberFullName,omitempty"`
	MemberImage            string            `json:"memberImage,omitempty"`
	MemberAddress          string            `json:"memberAddress,omitempty"`
	MemberDesc             string            `json:"memberDesc,omitempty"`
	MemberGender           string            `json:"memberGender,omitempty"`
	MemberDateOfBirth      string            `json:"memberDateOfBirth,omitempty"`
	MemberBloodGroup       string            `json:"memberBloodGroup,omitempty"`
	MemberAllergies        []string          `json:"memberAllergies,omitempty"`
	MemberChronicDiseases  []string          `json:"memberChronicDiseases,omitempty"`
	MemberEmergencyContact *EmergencyContact `json:"memberEmergencyContact,omitempty"`
	MemberPoints           int               `json:"memberPoints,omitempty"`
	MemberLikes            int               `json:"memberLikes,omitempty"`
	MemberViews            int               `json:"memberViews,omitempty"`

	DoctorNick       string        `json:"doctorNick,omitempty"`
	DoctorPhone      string        `json:"doctorPhone,omitempty"`
	DoctorFullName   string        `json:"doctorFullName,omitempty"`
	DoctorImage      string        `json:"doctorImage,omitempty"`
	DoctorGender     string        `json:"doctorGender,omitempty"`
	DoctorDesc       string        `json:"doctorDesc,omitempty"`
	DoctorStatus     string        `json:"doctorStatus,omitempty"`
	LicenseNumber    string        `json:"licenseNumber,omitempty"`
	Specialization   string        `json:"specialization,omitempty"`
	ConsultationType string        `json:"consultationType,omitempty"`
	ClinicName       string        `json:"clinicName,omitempty"`
	ClinicAddress    string        `json:"clinicAddress,omitempty"`
	DoctorFees       float64       `json:"doctorFees,omitempty"`
	Experience       int           `json:"experience,omitempty"`
	Languages        []string      `json:"languages,omitempty"`
	WorkingHours     []WorkingHour `json:"workingHours,omitempty"`
	DoctorViews      int           `json:"doctorViews,omitempty"`
	DoctorLikes      int           `json:"doctorLikes,omitempty"`
	DoctorRank       float64       `json:"doctorRank,omitempty"`

	jwt.RegisteredClaims
}

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

type WorkingHour struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}
