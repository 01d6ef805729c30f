package handlers

import (
	"errors"

	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/registry"
)

// Compile-time check to ensure mockService implements registry.Service
var _ registry.Service = (*mockService)(nil)

// mockService is a function-field mock of the creation service.
type mockService struct {
	CreatePatientFunc         func(payload registry.PatientPayload) (*models.Patient, error)
	CreateSpecialistFunc      func(payload registry.SpecialistPayload) (*models.Specialist, error)
	CreateReportFunc          func(payload registry.ReportPayload) (*models.Report, error)
	CreateAccountFunc         func(payload registry.AccountPayload) (*models.User, error)
	ResolveRoleFunc           func(name string) (*models.Role, error)
	ResolveSpecializationFunc func(name string) (*models.Specialization, error)
	ChangeUserRoleFunc        func(userID uint, roleName string) (*models.User, error)
}

func (m *mockService) CreatePatient(payload registry.PatientPayload) (*models.Patient, error) {
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(payload)
	}
	return nil, errors.New("CreatePatientFunc not implemented in mock")
}

func (m *mockService) CreateSpecialist(payload registry.SpecialistPayload) (*models.Specialist, error) {
	if m.CreateSpecialistFunc != nil {
		return m.CreateSpecialistFunc(payload)
	}
	return nil, errors.New("CreateSpecialistFunc not implemented in mock")
}

func (m *mockService) CreateReport(payload registry.ReportPayload) (*models.Report, error) {
	if m.CreateReportFunc != nil {
		return m.CreateReportFunc(payload)
	}
	return nil, errors.New("CreateReportFunc not implemented in mock")
}

func (m *mockService) CreateAccount(payload registry.AccountPayload) (*models.User, error) {
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(payload)
	}
	return nil, errors.New("CreateAccountFunc not implemented in mock")
}

func (m *mockService) ResolveRole(name string) (*models.Role, error) {
	if m.ResolveRoleFunc != nil {
		return m.ResolveRoleFunc(name)
	}
	return nil, errors.New("ResolveRoleFunc not implemented in mock")
}

func (m *mockService) ResolveSpecialization(name string) (*models.Specialization, error) {
	if m.ResolveSpecializationFunc != nil {
		return m.ResolveSpecializationFunc(name)
	}
	return nil, errors.New("ResolveSpecializationFunc not implemented in mock")
}

func (m *mockService) ChangeUserRole(userID uint, roleName string) (*models.User, error) {
	if m.ChangeUserRoleFunc != nil {
		return m.ChangeUserRoleFunc(userID, roleName)
	}
	return nil, errors.New("ChangeUserRoleFunc not implemented in mock")
}
