package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const PasswordSpecialCharacters = "!@#$%^&+="

var validate = validator.New()

// passwordRules are checked in order; the first failing rule is reported.
var passwordRules = []struct {
	tag     string
	message string
}{
	{"min=8", "Password must be at least 8 characters"},
	{"containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ", "Password must contain at least one uppercase letter"},
	{"containsany=abcdefghijklmnopqrstuvwxyz", "Password must contain at least one lowercase letter"},
	{"containsany=0123456789", "Password must contain at least one digit"},
	{"containsany=" + PasswordSpecialCharacters, "Password must contain at least one special character (!@#$%^&+=)"},
}

var ErrPasswordMismatch = errors.New("Passwords do not match")

func ValidatePassword(password string) error {
	for _, rule := range passwordRules {
		if err := validate.Var(password, rule.tag); err != nil {
			return errors.New(rule.message)
		}
	}
	return nil
}

// ValidateRegistrationPassword also checks the confirmation when one was
// supplied.
func ValidateRegistrationPassword(password, confirm string) error {
	if confirm != "" && password != confirm {
		return ErrPasswordMismatch
	}
	return ValidatePassword(password)
}
