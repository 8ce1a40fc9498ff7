package utils

import (
	"medicare-portal/internal/app/models"
	"medicare-portal/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate          *validator.Validate
	phoneDigitsRegexp = regexp.MustCompile(constvars.RegexPhoneDigits)
	nicknameRegexp    = regexp.MustCompile(constvars.RegexAlphanumeric)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("specialization", validateSpecialization)
	validate.RegisterValidation("consultation_type", validateConsultationType)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("nickname", validateNickname)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateSpecialization(fl validator.FieldLevel) bool {
	return models.IsValidSpecialization(fl.Field().String())
}

func validateConsultationType(fl validator.FieldLevel) bool {
	return models.IsValidConsultationType(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneDigitsRegexp.MatchString(fl.Field().String())
}

func validateNickname(fl validator.FieldLevel) bool {
	return nicknameRegexp.MatchString(fl.Field().String())
}
