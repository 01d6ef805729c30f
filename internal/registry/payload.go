package registry

import (
	"strings"
	"time"

	"clinic-registry-server/internal/validation"
)

// Payloads mirror the nested JSON bodies of the creation endpoints.
// Each nested object carries its own validator so every rule stays
// unit-testable in isolation.

// RolePayload is the embedded role classification of an account.
type RolePayload struct {
	Name string `json:"name" binding:"required"`
}

// SpecializationPayload is the embedded classification of a specialist.
type SpecializationPayload struct {
	Name string `json:"name" binding:"required"`
}

// AccountPayload is the embedded account of a patient or specialist.
type AccountPayload struct {
	FirstName       string      `json:"first_name" binding:"required"`
	LastName        string      `json:"last_name" binding:"required"`
	Username        string      `json:"username" binding:"required"`
	Email           string      `json:"email" binding:"required,email"`
	Password        string      `json:"password" binding:"required"`
	ConfirmPassword string      `json:"confirm_password" binding:"required"`
	Role            RolePayload `json:"role" binding:"required"`
}

// PatientPayload is the body of POST /patients.
type PatientPayload struct {
	User        AccountPayload `json:"user" binding:"required"`
	Phone       string         `json:"phone" binding:"required"`
	DateOfBirth string         `json:"date_of_birth" binding:"required"`
	Address     string         `json:"address"`
}

// SpecialistPayload is the body of POST /specialists.
type SpecialistPayload struct {
	User           AccountPayload        `json:"user" binding:"required"`
	Specialization SpecializationPayload `json:"specialization" binding:"required"`
	Phone          string                `json:"phone" binding:"required"`
	DateOfBirth    string                `json:"date_of_birth" binding:"required"`
}

// DisorderPayload is the embedded disorder of a report.
type DisorderPayload struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ReportPayload is the body of POST /reports. It nests full patient
// and specialist payloads; both aggregates are created as part of the
// same transaction as the report itself.
type ReportPayload struct {
	Patient    PatientPayload    `json:"patient" binding:"required"`
	Specialist SpecialistPayload `json:"specialist" binding:"required"`
	Disorder   DisorderPayload   `json:"disorder" binding:"required"`
	Diagnosis  string            `json:"diagnosis"`
}

// Normalized values carried from validation into the transaction.

type accountValues struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	RoleName  string
}

type patientValues struct {
	Account     accountValues
	Phone       string
	DateOfBirth time.Time
	Address     string
}

type specialistValues struct {
	Account        accountValues
	Specialization string
	Phone          string
	DateOfBirth    time.Time
}

// validate collects every account field failure instead of stopping
// at the first one.
func (p *AccountPayload) validate() (accountValues, FieldErrors) {
	errs := FieldErrors{}
	v := accountValues{
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Username:  strings.TrimSpace(p.Username),
		Email:     strings.ToLower(strings.TrimSpace(p.Email)),
	}

	password, err := validation.Password(p.Password, p.ConfirmPassword)
	if err != nil {
		errs.Add("password", err)
	}
	v.Password = password

	roleName, err := validation.RoleName(p.Role.Name)
	if err != nil {
		errs.Add("role", err)
	}
	v.RoleName = roleName

	return v, errs
}

func (p *PatientPayload) validate() (patientValues, FieldErrors) {
	account, errs := p.User.validate()
	v := patientValues{
		Account: account,
		Address: p.Address,
	}

	phone, err := validation.Phone(p.Phone)
	if err != nil {
		errs.Add("phone", err)
	}
	v.Phone = phone

	dob, err := validation.Date(p.DateOfBirth)
	if err != nil {
		errs.Add("date_of_birth", err)
	}
	v.DateOfBirth = dob

	return v, errs
}

func (p *SpecialistPayload) validate() (specialistValues, FieldErrors) {
	account, errs := p.User.validate()
	v := specialistValues{Account: account}

	specialization, err := validation.SpecializationName(p.Specialization.Name)
	if err != nil {
		errs.Add("specialization", err)
	}
	v.Specialization = specialization

	phone, err := validation.Phone(p.Phone)
	if err != nil {
		errs.Add("phone", err)
	}
	v.Phone = phone

	dob, err := validation.Date(p.DateOfBirth)
	if err != nil {
		errs.Add("date_of_birth", err)
	}
	v.DateOfBirth = dob

	return v, errs
}
