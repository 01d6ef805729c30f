package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-registry-server/internal/models"
)

func TestResolveRoleIdempotent(t *testing.T) {
	storage := newFakeStorage()

	first, err := resolveRole(storage, "patient")
	require.NoError(t, err)
	second, err := resolveRole(storage, "patient")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, storage.roles, 1)
}

func TestResolveRoleLostInsertRace(t *testing.T) {
	storage := newFakeStorage()

	// Simulate a concurrent caller winning the insert between our
	// lookup and our insert: the hook plants the winner's row and
	// fails our insert with a duplicate-entry error.
	storage.onCreateRole = func(role *models.Role) error {
		storage.roles = append(storage.roles, models.Role{
			BaseModel: models.BaseModel{ID: 42},
			Name:      role.Name,
		})
		return duplicateEntry("roles.uni_roles_name")
	}

	role, err := resolveRole(storage, "specialist")
	require.NoError(t, err)

	assert.Equal(t, uint(42), role.ID)
	assert.Len(t, storage.roles, 1)
}

func TestResolveSpecializationIdempotent(t *testing.T) {
	storage := newFakeStorage()

	first, err := resolveSpecialization(storage, "nurse")
	require.NoError(t, err)
	second, err := resolveSpecialization(storage, "nurse")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, storage.specializations, 1)
}

func TestResolveDisorderMatchesExactPair(t *testing.T) {
	storage := newFakeStorage()

	first, err := resolveDisorder(storage, "bruxism", "grinding of the teeth")
	require.NoError(t, err)

	same, err := resolveDisorder(storage, "bruxism", "grinding of the teeth")
	require.NoError(t, err)
	assert.Equal(t, first.ID, same.ID)

	_, err = resolveDisorder(storage, "bruxism", "a different description")
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "disorder")
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(duplicateEntry("roles.uni_roles_name")))
	assert.False(t, IsDuplicate(assert.AnError))
	assert.False(t, IsDuplicate(nil))
}
