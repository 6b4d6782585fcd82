// Package faction implements the faction use cases
package faction

//go:generate mockgen -destination=mock/mock_service.go -package=factionmock github.com/realmforge/catalog-api/internal/orchestrators/faction Service

import (
	"context"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
	factionrepo "github.com/realmforge/catalog-api/internal/repositories/faction"
)

// Service defines the interface for faction operations
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput holds the fields for a new faction
type CreateInput struct {
	FactionName string
	Description string
}

// CreateOutput returns the persisted faction, id assigned
type CreateOutput struct {
	Faction *entities.Faction
}

// GetInput identifies the faction to fetch
type GetInput struct {
	ID int64
}

// GetOutput returns the fetched faction
type GetOutput struct {
	Faction *entities.Faction
}

// ListInput requests all factions
type ListInput struct{}

// ListOutput returns all factions ordered by id
type ListOutput struct {
	Factions []*entities.Faction
}

// UpdateInput holds the replacement fields for an existing faction
type UpdateInput struct {
	ID          int64
	FactionName string
	Description string
}

// UpdateOutput returns the faction as stored after the update
type UpdateOutput struct {
	Faction *entities.Faction
}

// DeleteInput identifies the faction to delete
type DeleteInput struct {
	ID int64
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

// Config holds the dependencies for the faction orchestrator
type Config struct {
	FactionRepo factionrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.FactionRepo == nil {
		vb.RequiredField("FactionRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	factionRepo factionrepo.Repository
}

// NewOrchestrator creates a new faction orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		factionRepo: cfg.FactionRepo,
	}, nil
}

func validateFields(factionName, description string) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("faction_name", factionName, vb)
	errors.ValidateMaxLength("faction_name", factionName, 100, vb)
	errors.ValidateRequired("description", description, vb)
	errors.ValidateMaxLength("description", description, 255, vb)

	return vb.Build()
}

func (o *orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateFields(input.FactionName, input.Description); err != nil {
		return nil, err
	}

	out, err := o.factionRepo.Save(ctx, factionrepo.SaveInput{
		Faction: &entities.Faction{
			FactionName: input.FactionName,
			Description: input.Description,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create faction")
	}

	return &CreateOutput{Faction: out.Faction}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.factionRepo.Get(ctx, factionrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetOutput{Faction: out.Faction}, nil
}

func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.factionRepo.List(ctx, factionrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list factions")
	}

	return &ListOutput{Factions: out.Factions}, nil
}

func (o *orchestrator) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateFields(input.FactionName, input.Description); err != nil {
		return nil, err
	}

	existing, err := o.factionRepo.Get(ctx, factionrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	// entities are immutable: build a fresh value carrying the stored id
	out, err := o.factionRepo.Save(ctx, factionrepo.SaveInput{
		Faction: &entities.Faction{
			ID:          existing.Faction.ID,
			FactionName: input.FactionName,
			Description: input.Description,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update faction")
	}

	return &UpdateOutput{Faction: out.Faction}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	existing, err := o.factionRepo.Get(ctx, factionrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	if _, err := o.factionRepo.Delete(ctx, factionrepo.DeleteInput{Faction: existing.Faction}); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}
