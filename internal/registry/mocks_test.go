package registry

import (
	"github.com/go-sql-driver/mysql"

	"clinic-registry-server/internal/models"
)

// Compile-time check to ensure fakeStorage implements Storage
var _ Storage = (*fakeStorage)(nil)

// fakeStorage is an in-memory Storage. Transaction snapshots the
// state and restores it when fn fails, mirroring a rollback, so tests
// can assert that failed requests leave nothing behind. Unique
// constraints are emulated with MySQL duplicate-entry errors.
type fakeStorage struct {
	roles           []models.Role
	specializations []models.Specialization
	disorders       []models.Disorder
	users           []models.User
	patients        []models.Patient
	specialists     []models.Specialist
	reports         []models.Report
	nextID          uint

	// Optional hooks for injecting races and failures.
	onCreateRole     func(*models.Role) error
	onCreateDisorder func(*models.Disorder) error
	onCreateReport   func(*models.Report) error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{}
}

func duplicateEntry(key string) error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry for key '" + key + "'"}
}

func (f *fakeStorage) assignID() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStorage) Transaction(fn func(tx Storage) error) error {
	snapshot := *f
	snapshot.roles = append([]models.Role(nil), f.roles...)
	snapshot.specializations = append([]models.Specialization(nil), f.specializations...)
	snapshot.disorders = append([]models.Disorder(nil), f.disorders...)
	snapshot.users = append([]models.User(nil), f.users...)
	snapshot.patients = append([]models.Patient(nil), f.patients...)
	snapshot.specialists = append([]models.Specialist(nil), f.specialists...)
	snapshot.reports = append([]models.Report(nil), f.reports...)

	if err := fn(f); err != nil {
		*f = snapshot
		return err
	}
	return nil
}

func (f *fakeStorage) GetRoleByName(name string) (*models.Role, error) {
	for i := range f.roles {
		if f.roles[i].Name == name {
			role := f.roles[i]
			return &role, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) CreateRole(role *models.Role) error {
	if f.onCreateRole != nil {
		if err := f.onCreateRole(role); err != nil {
			return err
		}
	}
	for i := range f.roles {
		if f.roles[i].Name == role.Name {
			return duplicateEntry("roles.uni_roles_name")
		}
	}
	role.ID = f.assignID()
	f.roles = append(f.roles, *role)
	return nil
}

func (f *fakeStorage) GetSpecializationByName(name string) (*models.Specialization, error) {
	for i := range f.specializations {
		if f.specializations[i].Name == name {
			spec := f.specializations[i]
			return &spec, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) CreateSpecialization(spec *models.Specialization) error {
	for i := range f.specializations {
		if f.specializations[i].Name == spec.Name {
			return duplicateEntry("specializations.uni_specializations_name")
		}
	}
	spec.ID = f.assignID()
	f.specializations = append(f.specializations, *spec)
	return nil
}

func (f *fakeStorage) GetDisorder(name, description string) (*models.Disorder, error) {
	for i := range f.disorders {
		if f.disorders[i].Name == name && f.disorders[i].Description == description {
			disorder := f.disorders[i]
			return &disorder, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) CreateDisorder(disorder *models.Disorder) error {
	if f.onCreateDisorder != nil {
		if err := f.onCreateDisorder(disorder); err != nil {
			return err
		}
	}
	for i := range f.disorders {
		if f.disorders[i].Name == disorder.Name {
			return duplicateEntry("disorders.uni_disorders_name")
		}
	}
	disorder.ID = f.assignID()
	f.disorders = append(f.disorders, *disorder)
	return nil
}

func (f *fakeStorage) GetUserByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) GetUserByUsername(username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) GetUserByID(id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			for j := range f.roles {
				if f.roles[j].ID == user.RoleID {
					user.Role = f.roles[j]
				}
			}
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) UpdateUser(user *models.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return duplicateEntry("users.PRIMARY")
}

func (f *fakeStorage) CreateUser(user *models.User) error {
	for i := range f.users {
		if f.users[i].Email == user.Email {
			return duplicateEntry("users.uni_users_email")
		}
		if f.users[i].Username == user.Username {
			return duplicateEntry("users.uni_users_username")
		}
	}
	user.ID = f.assignID()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeStorage) GetPatientByPhone(phone string) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].Phone == phone {
			patient := f.patients[i]
			return &patient, nil
		}
	}
	return nil, nil
}

func (f *fakeStorage) CreatePatient(patient *models.Patient) error {
	for i := range f.patients {
		if f.patients[i].Phone == patient.Phone {
			return duplicateEntry("patients.uni_patients_phone")
		}
	}
	patient.ID = f.assignID()
	f.patients = append(f.patients, *patient)
	return nil
}

func (f *fakeStorage) CreateSpecialist(specialist *models.Specialist) error {
	specialist.ID = f.assignID()
	f.specialists = append(f.specialists, *specialist)
	return nil
}

func (f *fakeStorage) CreateReport(report *models.Report) error {
	if f.onCreateReport != nil {
		if err := f.onCreateReport(report); err != nil {
			return err
		}
	}
	report.ID = f.assignID()
	f.reports = append(f.reports, *report)
	return nil
}
