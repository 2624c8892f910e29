package auth

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()

	// Script markup in an email field is an injection attempt, not a typo.
	scriptTagRe = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
)

const specialChars = "!@#$%^&*"

// ValidateEmail accepts syntactically valid addresses that carry no
// script-tag markup. Runs before any store access.
func ValidateEmail(email string) bool {
	if err := validate.Var(email, "required,email"); err != nil {
		return false
	}
	return !scriptTagRe.MatchString(email)
}

// ValidatePasswordStrength requires length >= 8 plus a lowercase letter, an
// uppercase letter, a digit and one of !@#$%^&*.
func ValidatePasswordStrength(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLower && hasUpper && hasDigit && strings.ContainsAny(password, specialChars)
}
