// Package validation holds the pure field validators used by the
// nested-creation pipeline. Every rule is a standalone function with
// no dependencies so it can be tested in isolation; hashing and
// persistence are the caller's concern.
package validation

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidRole           = errors.New("role name must be one of admin, patient, specialist")
	ErrInvalidSpecialization = errors.New("specialization name must be one of dentist, nurse, doctor")
	ErrInvalidPhone          = errors.New("phone must be 10 digits starting with 01 or 07")
	ErrPasswordMismatch      = errors.New("password and confirm_password do not match")
	ErrWeakPassword          = errors.New("password must be at least 8 characters and contain a digit")
	ErrInvalidDate           = errors.New("date must be in YYYY-MM-DD format")
)

var roleNames = map[string]bool{
	"admin":      true,
	"patient":    true,
	"specialist": true,
}

var specializationNames = map[string]bool{
	"dentist": true,
	"nurse":   true,
	"doctor":  true,
}

// RoleName normalizes a raw role name (trim, lowercase) and checks it
// against the closed role set.
func RoleName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if !roleNames[name] {
		return "", ErrInvalidRole
	}
	return name, nil
}

// SpecializationName normalizes a raw specialization name and checks
// it against the closed specialization set.
func SpecializationName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if !specializationNames[name] {
		return "", ErrInvalidSpecialization
	}
	return name, nil
}

// Phone accepts exactly 10 digits with prefix "01" or "07".
func Phone(raw string) (string, error) {
	if len(raw) != 10 {
		return "", ErrInvalidPhone
	}
	if !strings.HasPrefix(raw, "01") && !strings.HasPrefix(raw, "07") {
		return "", ErrInvalidPhone
	}
	for _, r := range raw {
		if !unicode.IsDigit(r) {
			return "", ErrInvalidPhone
		}
	}
	return raw, nil
}

// Password checks that the password matches its confirmation and is
// strong enough: at least 8 characters with at least one digit.
func Password(raw, confirm string) (string, error) {
	if raw != confirm {
		return "", ErrPasswordMismatch
	}
	if len(raw) < 8 {
		return "", ErrWeakPassword
	}
	hasDigit := false
	for _, r := range raw {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return "", ErrWeakPassword
	}
	return raw, nil
}

// Date parses a date-only field such as date_of_birth.
func Date(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
