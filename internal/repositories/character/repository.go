// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/realmforge/catalog-api/internal/repositories/character Repository

import (
	"context"

	"github.com/realmforge/catalog-api/internal/entities"
)

// Repository defines the capability set for character persistence. The
// postgres implementation and the cached decorator both satisfy it, so
// callers never depend on a concrete store.
type Repository interface {
	// Get retrieves a character by id
	// Returns errors.NotFound if no character exists with that id
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all characters as a stable sequence for a given
	// store state
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save inserts the character when it has no id, assigning one, and
	// updates the existing row otherwise. Always returns what is now
	// actually stored.
	// Returns errors.NotFound when updating an id that does not exist
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the character's row
	// Returns errors.NotFound if the character has no id or no row matched
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*entities.Character
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *entities.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	Character *entities.Character
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
