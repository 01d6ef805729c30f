package registry

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"clinic-registry-server/internal/models"
)

// MySQL server error numbers the pipeline reacts to.
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
)

// Storage is the persistence boundary of the creation pipeline.
// Lookup methods return (nil, nil) when no row matches.
type Storage interface {
	// Transaction runs fn against a transaction-scoped Storage; any
	// error rolls back every row written inside fn.
	Transaction(fn func(tx Storage) error) error

	GetRoleByName(name string) (*models.Role, error)
	CreateRole(role *models.Role) error

	GetSpecializationByName(name string) (*models.Specialization, error)
	CreateSpecialization(spec *models.Specialization) error

	GetDisorder(name, description string) (*models.Disorder, error)
	CreateDisorder(disorder *models.Disorder) error

	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error

	GetPatientByPhone(phone string) (*models.Patient, error)
	CreatePatient(patient *models.Patient) error
	CreateSpecialist(specialist *models.Specialist) error
	CreateReport(report *models.Report) error
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsReferenced reports whether err is a foreign-key RESTRICT failure,
// i.e. the row is still referenced and cannot be deleted.
func IsReferenced(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlRowIsReferenced
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

type gormStorage struct {
	db *gorm.DB
}

// NewStorage wraps a gorm connection in the Storage interface.
func NewStorage(db *gorm.DB) Storage {
	return &gormStorage{db: db}
}

func (s *gormStorage) Transaction(fn func(tx Storage) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStorage{db: tx})
	})
}

func (s *gormStorage) GetRoleByName(name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.Where("name = ?", name).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (s *gormStorage) CreateRole(role *models.Role) error {
	return s.db.Create(role).Error
}

func (s *gormStorage) GetSpecializationByName(name string) (*models.Specialization, error) {
	var spec models.Specialization
	if err := s.db.Where("name = ?", name).First(&spec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &spec, nil
}

func (s *gormStorage) CreateSpecialization(spec *models.Specialization) error {
	return s.db.Create(spec).Error
}

func (s *gormStorage) GetDisorder(name, description string) (*models.Disorder, error) {
	var disorder models.Disorder
	if err := s.db.Where("name = ? AND description = ?", name, description).First(&disorder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disorder, nil
}

func (s *gormStorage) CreateDisorder(disorder *models.Disorder) error {
	return s.db.Create(disorder).Error
}

func (s *gormStorage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStorage) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStorage) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStorage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *gormStorage) UpdateUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *gormStorage) GetPatientByPhone(phone string) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.Where("phone = ?", phone).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (s *gormStorage) CreatePatient(patient *models.Patient) error {
	return s.db.Create(patient).Error
}

func (s *gormStorage) CreateSpecialist(specialist *models.Specialist) error {
	return s.db.Create(specialist).Error
}

func (s *gormStorage) CreateReport(report *models.Report) error {
	return s.db.Create(report).Error
}
