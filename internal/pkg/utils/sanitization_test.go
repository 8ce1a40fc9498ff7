package utils

import (
	"medicare-portal/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSignupDoctorRequest(t *testing.T) {
	t.Run("Trims identity fields", func(t *testing.T) {
		request := &requests.SignupDoctor{
			DoctorNick:     "  drsmith ",
			DoctorPhone:    " +15551234 ",
			DoctorFullName: "  John Smith  ",
			LicenseNumber:  " LIC-001 ",
		}

		SanitizeSignupDoctorRequest(request)

		assert.Equal(t, "drsmith", request.DoctorNick)
		assert.Equal(t, "+15551234", request.DoctorPhone)
		assert.Equal(t, "John Smith", request.DoctorFullName)
		assert.Equal(t, "LIC-001", request.LicenseNumber)
	})

	t.Run("Uppercases enums", func(t *testing.T) {
		request := &requests.SignupDoctor{
			Specialization:   " cardiologist ",
			ConsultationType: "online",
			DoctorGender:     "female",
		}

		SanitizeSignupDoctorRequest(request)

		assert.Equal(t, "CARDIOLOGIST", request.Specialization)
		assert.Equal(t, "ONLINE", request.ConsultationType)
		assert.Equal(t, "FEMALE", request.DoctorGender)
	})

	t.Run("Drops blank languages", func(t *testing.T) {
		request := &requests.SignupDoctor{
			Languages: []string{"  English ", "   ", "Uzbek"},
		}

		SanitizeSignupDoctorRequest(request)

		assert.Equal(t, []string{"English", "Uzbek"}, request.Languages)
	})
}

func TestSanitizeLoginRequest_KeepsPassword(t *testing.T) {
	request := &requests.Login{Nick: " patient1 ", Password: " secret "}

	SanitizeLoginRequest(request)

	assert.Equal(t, "patient1", request.Nick)
	assert.Equal(t, " secret ", request.Password, "password is sent as typed")
}
