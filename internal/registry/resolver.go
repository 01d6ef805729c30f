package registry

import (
	"fmt"

	"clinic-registry-server/internal/models"
)

// Reference resolution is find-or-create by natural key. Two
// concurrent callers resolving the same name must end up with the
// same row: the unique index makes the losing insert fail, and the
// loser re-fetches the winner's row.

func resolveRole(tx Storage, name string) (*models.Role, error) {
	role, err := tx.GetRoleByName(name)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}

	role = &models.Role{Name: name}
	err = tx.CreateRole(role)
	if err == nil {
		return role, nil
	}
	if !IsDuplicate(err) {
		return nil, err
	}

	role, err = tx.GetRoleByName(name)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("role %q vanished after duplicate insert", name)
	}
	return role, nil
}

func resolveSpecialization(tx Storage, name string) (*models.Specialization, error) {
	spec, err := tx.GetSpecializationByName(name)
	if err != nil {
		return nil, err
	}
	if spec != nil {
		return spec, nil
	}

	spec = &models.Specialization{Name: name}
	err = tx.CreateSpecialization(spec)
	if err == nil {
		return spec, nil
	}
	if !IsDuplicate(err) {
		return nil, err
	}

	spec, err = tx.GetSpecializationByName(name)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, fmt.Errorf("specialization %q vanished after duplicate insert", name)
	}
	return spec, nil
}

// resolveDisorder matches on the exact (name, description) pair. A
// payload reusing an existing disorder name with a different
// description is rejected rather than silently overwriting the
// existing row: the name index blocks the insert and the re-fetch by
// pair finds nothing.
func resolveDisorder(tx Storage, name, description string) (*models.Disorder, error) {
	disorder, err := tx.GetDisorder(name, description)
	if err != nil {
		return nil, err
	}
	if disorder != nil {
		return disorder, nil
	}

	disorder = &models.Disorder{Name: name, Description: description}
	err = tx.CreateDisorder(disorder)
	if err == nil {
		return disorder, nil
	}
	if !IsDuplicate(err) {
		return nil, err
	}

	disorder, err = tx.GetDisorder(name, description)
	if err != nil {
		return nil, err
	}
	if disorder == nil {
		errs := FieldErrors{}
		errs["disorder"] = []string{"disorder name already exists with a different description"}
		return nil, errs
	}
	return disorder, nil
}
