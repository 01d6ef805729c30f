package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"lowercase", "patient", "patient", nil},
		{"mixed case normalized", "Patient", "patient", nil},
		{"whitespace trimmed", "  specialist ", "specialist", nil},
		{"admin", "ADMIN", "admin", nil},
		{"unknown role", "doctor", "", ErrInvalidRole},
		{"empty", "", "", ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoleName(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSpecializationName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"dentist", "dentist", "dentist", nil},
		{"mixed case", "Nurse", "nurse", nil},
		{"doctor", "DOCTOR", "doctor", nil},
		{"unknown", "surgeon", "", ErrInvalidSpecialization},
		{"role is not a specialization", "patient", "", ErrInvalidSpecialization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SpecializationName(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"valid 01 prefix", "0112345678", nil},
		{"valid 07 prefix", "0712345678", nil},
		{"too short", "12345", ErrInvalidPhone},
		{"too long", "07123456789", ErrInvalidPhone},
		{"bad prefix", "0212345678", ErrInvalidPhone},
		{"non digits", "07a2345678", ErrInvalidPhone},
		{"empty", "", ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Phone(tt.raw)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, tt.raw, got)
				// A validator must accept its own valid output.
				again, err := Phone(got)
				assert.NoError(t, err)
				assert.Equal(t, got, again)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		confirm string
		wantErr error
	}{
		{"valid", "secret1pass", "secret1pass", nil},
		{"exactly 8 with digit", "abcdefg1", "abcdefg1", nil},
		{"mismatch", "secret1pass", "secret2pass", ErrPasswordMismatch},
		{"too short", "abc1", "abc1", ErrWeakPassword},
		{"no digit", "abcdefghij", "abcdefghij", ErrWeakPassword},
		{"short and no digit", "abc", "abc", ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Password(tt.raw, tt.confirm)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, tt.raw, got)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
			}
		})
	}
}

func TestDate(t *testing.T) {
	got, err := Date("1990-05-20")
	assert.NoError(t, err)
	assert.Equal(t, 1990, got.Year())
	assert.Equal(t, 20, got.Day())

	_, err = Date("20-05-1990")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Date("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
