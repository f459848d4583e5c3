package validate

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\d{7,15}$`)

// PhoneDigits accepts phone numbers of 7 to 15 digits, nothing else.
func PhoneDigits(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// PasswordPolicy requires at least 8 characters with at least one upper and
// one lower case letter.
func PasswordPolicy(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	hasUpper := false
	hasLower := false
	for _, ch := range password {
		if unicode.IsUpper(ch) {
			hasUpper = true
		}
		if unicode.IsLower(ch) {
			hasLower = true
		}
	}
	return hasUpper && hasLower
}

// New builds a validator with the storefront's custom rules registered.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for empty tags or nil funcs
	_ = validate.RegisterValidation("phone_digits", PhoneDigits)
	_ = validate.RegisterValidation("password_policy", PasswordPolicy)
	return validate
}
