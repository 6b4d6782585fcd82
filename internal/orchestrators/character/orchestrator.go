// Package character implements the character use cases
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/realmforge/catalog-api/internal/orchestrators/character Service

import (
	"context"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
	characterrepo "github.com/realmforge/catalog-api/internal/repositories/character"
)

// Service defines the interface for character operations
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput holds the fields for a new character
type CreateInput struct {
	Name        string
	BirthDate   string
	Kingdom     string
	EquipmentID int64
	FactionID   int64
}

// CreateOutput returns the persisted character, id assigned
type CreateOutput struct {
	Character *entities.Character
}

// GetInput identifies the character to fetch
type GetInput struct {
	ID int64
}

// GetOutput returns the fetched character
type GetOutput struct {
	Character *entities.Character
}

// ListInput requests all characters
type ListInput struct{}

// ListOutput returns all characters ordered by id
type ListOutput struct {
	Characters []*entities.Character
}

// UpdateInput holds the replacement fields for an existing character
type UpdateInput struct {
	ID          int64
	Name        string
	BirthDate   string
	Kingdom     string
	EquipmentID int64
	FactionID   int64
}

// UpdateOutput returns the character as stored after the update
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput identifies the character to delete
type DeleteInput struct {
	ID int64
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
}

// NewOrchestrator creates a new character orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
	}, nil
}

// validateFields runs every rule and collects every violation before
// failing, so one response tells the caller everything that is wrong.
func validateFields(name, birthDate, kingdom string, equipmentID, factionID int64) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", name, vb)
	errors.ValidateMaxLength("name", name, 100, vb)
	errors.ValidateRequired("birth_date", birthDate, vb)
	errors.ValidateDate("birth_date", birthDate, vb)
	errors.ValidateRequired("kingdom", kingdom, vb)
	errors.ValidateMaxLength("kingdom", kingdom, 100, vb)
	errors.ValidatePositive("equipment_id", equipmentID, vb)
	errors.ValidatePositive("faction_id", factionID, vb)

	return vb.Build()
}

func (o *orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateFields(input.Name, input.BirthDate, input.Kingdom, input.EquipmentID, input.FactionID); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{
		Character: &entities.Character{
			Name:        input.Name,
			BirthDate:   input.BirthDate,
			Kingdom:     input.Kingdom,
			EquipmentID: input.EquipmentID,
			FactionID:   input.FactionID,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	return &CreateOutput{Character: out.Character}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: out.Character}, nil
}

func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListOutput{Characters: out.Characters}, nil
}

func (o *orchestrator) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateFields(input.Name, input.BirthDate, input.Kingdom, input.EquipmentID, input.FactionID); err != nil {
		return nil, err
	}

	existing, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	// entities are immutable: build a fresh value carrying the stored id
	out, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{
		Character: &entities.Character{
			ID:          existing.Character.ID,
			Name:        input.Name,
			BirthDate:   input.BirthDate,
			Kingdom:     input.Kingdom,
			EquipmentID: input.EquipmentID,
			FactionID:   input.FactionID,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character")
	}

	return &UpdateOutput{Character: out.Character}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	existing, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{Character: existing.Character}); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}
