package registry

import (
	"strings"

	"clinic-registry-server/internal/models"
)

// createAccount persists a new user with the resolved role attached.
// Uniqueness is checked up front for friendly errors, but the unique
// indexes remain the authority: a race that slips past the pre-check
// still fails the insert and is mapped to the same duplicate error.
func createAccount(tx Storage, v accountValues, role *models.Role) (*models.User, error) {
	existing, err := tx.GetUserByEmail(v.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	existing, err = tx.GetUserByUsername(v.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	user := &models.User{
		Email:     v.Email,
		Username:  v.Username,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		RoleID:    role.ID,
		Role:      *role,
		IsActive:  true,
		IsStaff:   true,
		IsAdmin:   role.Name == string(models.RoleAdmin),
	}
	if err := user.SetPassword(v.Password); err != nil {
		return nil, err
	}

	if err := tx.CreateUser(user); err != nil {
		if IsDuplicate(err) {
			if strings.Contains(err.Error(), "username") {
				return nil, ErrDuplicateUsername
			}
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}
