package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// ReferenceNotFoundError names a missing row behind an id supplied on a write
// path, e.g. creating a record against a patient that does not exist.
type ReferenceNotFoundError struct {
	Kind string
	ID   string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Kind, e.ID)
}

// requireExists checks that a row with the given id exists, returning a
// ReferenceNotFoundError naming the entity kind and id when it does not.
func requireExists(tx *gorm.DB, model interface{}, kind string, id interface{}) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check %s existence: %w", kind, err)
	}
	if count == 0 {
		return &ReferenceNotFoundError{Kind: kind, ID: fmt.Sprint(id)}
	}
	return nil
}
