package utils

import (
	"medicare-portal/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Nick = strings.TrimSpace(input.Nick)
}

func SanitizeSignupMemberRequest(input *requests.SignupMember) {
	input.MemberNick = strings.TrimSpace(input.MemberNick)
	input.MemberPhone = strings.TrimSpace(input.MemberPhone)
	input.MemberGender = strings.ToUpper(strings.TrimSpace(input.MemberGender))
}

func SanitizeSignupDoctorRequest(input *requests.SignupDoctor) {
	input.DoctorNick = strings.TrimSpace(input.DoctorNick)
	input.DoctorPhone = strings.TrimSpace(input.DoctorPhone)
	input.DoctorFullName = strings.TrimSpace(input.DoctorFullName)
	input.DoctorGender = strings.ToUpper(strings.TrimSpace(input.DoctorGender))
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	input.Specialization = strings.ToUpper(strings.TrimSpace(input.Specialization))
	input.ConsultationType = strings.ToUpper(strings.TrimSpace(input.ConsultationType))
	input.ClinicName = strings.TrimSpace(input.ClinicName)
	input.ClinicAddress = strings.TrimSpace(input.ClinicAddress)

	input.Languages = cleanWhiteSpaceFromEachStringOfAnArray(input.Languages)
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.MemberNick = strings.TrimSpace(input.MemberNick)
	input.MemberPhone = strings.TrimSpace(input.MemberPhone)
}

func SanitizeResetPasswordRequest(input *requests.ResetPassword) {
	input.MemberNick = strings.TrimSpace(input.MemberNick)
	input.MemberPhone = strings.TrimSpace(input.MemberPhone)
}

func SanitizeUpdateMemberRequest(input *requests.UpdateMember) {
	input.MemberNick = strings.TrimSpace(input.MemberNick)
	input.MemberPhone = strings.TrimSpace(input.MemberPhone)
	input.MemberFullName = strings.TrimSpace(input.MemberFullName)
	input.MemberAddress = strings.TrimSpace(input.MemberAddress)
	input.MemberDesc = strings.TrimSpace(input.MemberDesc)
	input.MemberGender = strings.ToUpper(strings.TrimSpace(input.MemberGender))
	input.MemberDateOfBirth = strings.TrimSpace(input.MemberDateOfBirth)
	input.MemberBloodGroup = strings.ToUpper(strings.TrimSpace(input.MemberBloodGroup))
}
