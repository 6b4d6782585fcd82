// Package faction provides the interface for faction persistence
package faction

//go:generate mockgen -destination=mock/mock_repository.go -package=factionmock github.com/realmforge/catalog-api/internal/repositories/faction Repository

import (
	"context"

	"github.com/realmforge/catalog-api/internal/entities"
)

// Repository defines the capability set for faction persistence,
// satisfied by both the postgres implementation and the cached decorator.
type Repository interface {
	// Get retrieves a faction by id
	// Returns errors.NotFound if no faction exists with that id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all factions as a stable sequence
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save inserts when the faction has no id, updates otherwise.
	// Always returns what is now actually stored.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the faction's row
	// Returns errors.NotFound if the faction has no id or no row matched
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a faction
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a faction
type GetOutput struct {
	Faction *entities.Faction
}

// ListInput defines the input for listing factions
type ListInput struct{}

// ListOutput defines the output for listing factions
type ListOutput struct {
	Factions []*entities.Faction
}

// SaveInput defines the input for saving a faction
type SaveInput struct {
	Faction *entities.Faction
}

// SaveOutput defines the output for saving a faction
type SaveOutput struct {
	Faction *entities.Faction
}

// DeleteInput defines the input for deleting a faction
type DeleteInput struct {
	Faction *entities.Faction
}

// DeleteOutput defines the output for deleting a faction
type DeleteOutput struct{}
