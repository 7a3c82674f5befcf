package mybank

import (
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validateRegistration checks the registration triple before any
// hashing or persistence happens. On success it returns the normalized
// form: trimmed name, normalized email, and the password untouched
// (password whitespace is significant and is hashed verbatim).
func validateRegistration(req registerRequest) (registerRequest, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if name == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return registerRequest{}, ErrMissingField
	}

	if !emailRegexp.MatchString(email) {
		return registerRequest{}, ErrInvalidEmail
	}

	if len([]rune(strings.TrimSpace(req.Password))) < 6 {
		return registerRequest{}, ErrPasswordTooShort
	}

	return registerRequest{Name: name, Email: email, Password: req.Password}, nil
}

// validateLogin only checks presence. Accounts created under an older,
// looser password policy must still be able to log in, so no format or
// length rules are re-applied here.
func validateLogin(req loginRequest) (loginRequest, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return loginRequest{}, ErrMissingField
	}
	return loginRequest{Email: email, Password: req.Password}, nil
}
