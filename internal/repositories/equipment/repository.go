// Package equipment provides the interface for equipment persistence
package equipment

//go:generate mockgen -destination=mock/mock_repository.go -package=equipmentmock github.com/realmforge/catalog-api/internal/repositories/equipment Repository

import (
	"context"

	"github.com/realmforge/catalog-api/internal/entities"
)

// Repository defines the capability set for equipment persistence,
// satisfied by both the postgres implementation and the cached decorator.
type Repository interface {
	// Get retrieves equipment by id
	// Returns errors.NotFound if no equipment exists with that id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all equipment as a stable sequence
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save inserts when the equipment has no id, updates otherwise.
	// Always returns what is now actually stored.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the equipment's row
	// Returns errors.NotFound if the equipment has no id or no row matched
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting equipment
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting equipment
type GetOutput struct {
	Equipment *entities.Equipment
}

// ListInput defines the input for listing equipment
type ListInput struct{}

// ListOutput defines the output for listing equipment
type ListOutput struct {
	Equipment []*entities.Equipment
}

// SaveInput defines the input for saving equipment
type SaveInput struct {
	Equipment *entities.Equipment
}

// SaveOutput defines the output for saving equipment
type SaveOutput struct {
	Equipment *entities.Equipment
}

// DeleteInput defines the input for deleting equipment
type DeleteInput struct {
	Equipment *entities.Equipment
}

// DeleteOutput defines the output for deleting equipment
type DeleteOutput struct{}
