// Package registry implements the nested-entity creation pipeline:
// payload validation, find-or-create reference resolution, account
// creation and aggregate assembly, each aggregate created inside a
// single transaction.
package registry

import (
	"github.com/sirupsen/logrus"

	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/validation"
)

// Service exposes one creation entry point per aggregate root, plus
// the account and reference operations the gateway needs.
type Service interface {
	CreatePatient(payload PatientPayload) (*models.Patient, error)
	CreateSpecialist(payload SpecialistPayload) (*models.Specialist, error)
	CreateReport(payload ReportPayload) (*models.Report, error)

	CreateAccount(payload AccountPayload) (*models.User, error)
	ResolveRole(name string) (*models.Role, error)
	ResolveSpecialization(name string) (*models.Specialization, error)

	// ChangeUserRole is the only operation allowed to reassign a role;
	// every change is logged with old and new role names.
	ChangeUserRole(userID uint, roleName string) (*models.User, error)
}

type service struct {
	storage Storage
	logger  *logrus.Entry
}

// NewService builds the creation service on top of a Storage.
func NewService(storage Storage, logger *logrus.Entry) Service {
	return &service{
		storage: storage,
		logger:  logger,
	}
}

// CreatePatient validates the nested payload, then creates the role
// (if absent), the account and the patient profile as one transaction.
func (s *service) CreatePatient(payload PatientPayload) (*models.Patient, error) {
	v, errs := payload.validate()
	if err := errs.Err(); err != nil {
		return nil, err
	}
	if v.Account.RoleName != string(models.RolePatient) {
		return nil, ErrRoleMismatch
	}

	var created *models.Patient
	err := s.storage.Transaction(func(tx Storage) error {
		patient, err := s.assemblePatient(tx, v)
		if err != nil {
			return err
		}
		created = patient
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"patient_id": created.ID,
		"user_id":    created.UserID,
	}).Info("patient created")
	return created, nil
}

// CreateSpecialist is the specialist counterpart of CreatePatient,
// with the extra specialization reference resolved inside the same
// transaction.
func (s *service) CreateSpecialist(payload SpecialistPayload) (*models.Specialist, error) {
	v, errs := payload.validate()
	if err := errs.Err(); err != nil {
		return nil, err
	}
	if v.Account.RoleName != string(models.RoleSpecialist) {
		return nil, ErrRoleMismatch
	}

	var created *models.Specialist
	err := s.storage.Transaction(func(tx Storage) error {
		specialist, err := s.assembleSpecialist(tx, v)
		if err != nil {
			return err
		}
		created = specialist
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"specialist_id": created.ID,
		"user_id":       created.UserID,
	}).Info("specialist created")
	return created, nil
}

// CreateReport runs the nested patient creation, the nested
// specialist creation and the disorder resolution inside one
// transaction, then persists the report referencing all three. Any
// failure rolls back every row written for this request.
func (s *service) CreateReport(payload ReportPayload) (*models.Report, error) {
	pv, errs := payload.Patient.validate()
	sv, specErrs := payload.Specialist.validate()

	all := FieldErrors{}
	all.Merge("patient", errs)
	all.Merge("specialist", specErrs)
	if payload.Disorder.Name == "" {
		all["disorder.name"] = []string{"disorder name is required"}
	}
	if err := all.Err(); err != nil {
		return nil, err
	}

	if pv.Account.RoleName != string(models.RolePatient) {
		return nil, ErrRoleMismatch
	}
	if sv.Account.RoleName != string(models.RoleSpecialist) {
		return nil, ErrRoleMismatch
	}

	var created *models.Report
	err := s.storage.Transaction(func(tx Storage) error {
		patient, err := s.assemblePatient(tx, pv)
		if err != nil {
			return err
		}

		specialist, err := s.assembleSpecialist(tx, sv)
		if err != nil {
			return err
		}

		disorder, err := resolveDisorder(tx, payload.Disorder.Name, payload.Disorder.Description)
		if err != nil {
			return err
		}

		report := &models.Report{
			PatientID:    patient.ID,
			Patient:      *patient,
			SpecialistID: specialist.ID,
			Specialist:   *specialist,
			DisorderID:   disorder.ID,
			Disorder:     *disorder,
			Diagnosis:    payload.Diagnosis,
		}
		if err := tx.CreateReport(report); err != nil {
			return err
		}
		created = report
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"report_id":     created.ID,
		"patient_id":    created.PatientID,
		"specialist_id": created.SpecialistID,
	}).Info("report created")
	return created, nil
}

// CreateAccount creates a bare account with its role resolved, for
// the admin user-management endpoint. Unlike the aggregate entry
// points it accepts any role from the closed set.
func (s *service) CreateAccount(payload AccountPayload) (*models.User, error) {
	v, errs := payload.validate()
	if err := errs.Err(); err != nil {
		return nil, err
	}

	var created *models.User
	err := s.storage.Transaction(func(tx Storage) error {
		role, err := resolveRole(tx, v.RoleName)
		if err != nil {
			return err
		}
		user, err := createAccount(tx, v, role)
		if err != nil {
			return err
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": created.ID,
		"role":    created.Role.Name,
	}).Info("account created")
	return created, nil
}

// ResolveRole validates a role name and finds-or-creates its row.
func (s *service) ResolveRole(name string) (*models.Role, error) {
	normalized, err := validation.RoleName(name)
	if err != nil {
		errs := FieldErrors{}
		errs.Add("name", err)
		return nil, errs
	}

	var role *models.Role
	txErr := s.storage.Transaction(func(tx Storage) error {
		resolved, err := resolveRole(tx, normalized)
		if err != nil {
			return err
		}
		role = resolved
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return role, nil
}

// ResolveSpecialization validates a specialization name and
// finds-or-creates its row.
func (s *service) ResolveSpecialization(name string) (*models.Specialization, error) {
	normalized, err := validation.SpecializationName(name)
	if err != nil {
		errs := FieldErrors{}
		errs.Add("name", err)
		return nil, errs
	}

	var spec *models.Specialization
	txErr := s.storage.Transaction(func(tx Storage) error {
		resolved, err := resolveSpecialization(tx, normalized)
		if err != nil {
			return err
		}
		spec = resolved
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return spec, nil
}

// ChangeUserRole reassigns a user's role through the dedicated,
// audited path. The generic update endpoint never touches the role.
func (s *service) ChangeUserRole(userID uint, roleName string) (*models.User, error) {
	normalized, err := validation.RoleName(roleName)
	if err != nil {
		errs := FieldErrors{}
		errs.Add("role", err)
		return nil, errs
	}

	var updated *models.User
	var previousRole string
	txErr := s.storage.Transaction(func(tx Storage) error {
		user, err := tx.GetUserByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrNotFound
		}
		previousRole = user.Role.Name

		role, err := resolveRole(tx, normalized)
		if err != nil {
			return err
		}

		user.RoleID = role.ID
		user.Role = *role
		user.IsAdmin = role.Name == string(models.RoleAdmin)
		if err := tx.UpdateUser(user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":   updated.ID,
		"from_role": previousRole,
		"to_role":   updated.Role.Name,
	}).Info("user role changed")
	return updated, nil
}

// assemblePatient runs steps that must happen inside the transaction:
// role resolution, account creation, phone uniqueness, profile insert.
func (s *service) assemblePatient(tx Storage, v patientValues) (*models.Patient, error) {
	role, err := resolveRole(tx, v.Account.RoleName)
	if err != nil {
		return nil, err
	}

	user, err := createAccount(tx, v.Account, role)
	if err != nil {
		return nil, err
	}

	existing, err := tx.GetPatientByPhone(v.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicatePhone
	}

	patient := &models.Patient{
		UserID:      user.ID,
		User:        *user,
		Phone:       v.Phone,
		DateOfBirth: v.DateOfBirth,
		Address:     v.Address,
	}
	if err := tx.CreatePatient(patient); err != nil {
		if IsDuplicate(err) {
			return nil, ErrDuplicatePhone
		}
		return nil, err
	}
	return patient, nil
}

func (s *service) assembleSpecialist(tx Storage, v specialistValues) (*models.Specialist, error) {
	role, err := resolveRole(tx, v.Account.RoleName)
	if err != nil {
		return nil, err
	}

	user, err := createAccount(tx, v.Account, role)
	if err != nil {
		return nil, err
	}

	specialization, err := resolveSpecialization(tx, v.Specialization)
	if err != nil {
		return nil, err
	}

	specialist := &models.Specialist{
		UserID:           user.ID,
		User:             *user,
		SpecializationID: specialization.ID,
		Specialization:   *specialization,
		Phone:            v.Phone,
		DateOfBirth:      v.DateOfBirth,
	}
	if err := tx.CreateSpecialist(specialist); err != nil {
		return nil, err
	}
	return specialist, nil
}
