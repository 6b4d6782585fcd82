// Package equipment implements the equipment use cases
package equipment

//go:generate mockgen -destination=mock/mock_service.go -package=equipmentmock github.com/realmforge/catalog-api/internal/orchestrators/equipment Service

import (
	"context"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
	equipmentrepo "github.com/realmforge/catalog-api/internal/repositories/equipment"
)

// Service defines the interface for equipment operations
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput holds the fields for a new piece of equipment
type CreateInput struct {
	Name   string
	Type   string
	MadeBy string
}

// CreateOutput returns the persisted equipment, id assigned
type CreateOutput struct {
	Equipment *entities.Equipment
}

// GetInput identifies the equipment to fetch
type GetInput struct {
	ID int64
}

// GetOutput returns the fetched equipment
type GetOutput struct {
	Equipment *entities.Equipment
}

// ListInput requests all equipment
type ListInput struct{}

// ListOutput returns all equipment ordered by id
type ListOutput struct {
	Equipment []*entities.Equipment
}

// UpdateInput holds the replacement fields for existing equipment
type UpdateInput struct {
	ID     int64
	Name   string
	Type   string
	MadeBy string
}

// UpdateOutput returns the equipment as stored after the update
type UpdateOutput struct {
	Equipment *entities.Equipment
}

// DeleteInput identifies the equipment to delete
type DeleteInput struct {
	ID int64
}

// DeleteOutput is empty on success
type DeleteOutput struct{}

// Config holds the dependencies for the equipment orchestrator
type Config struct {
	EquipmentRepo equipmentrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EquipmentRepo == nil {
		vb.RequiredField("EquipmentRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	equipmentRepo equipmentrepo.Repository
}

// NewOrchestrator creates a new equipment orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		equipmentRepo: cfg.EquipmentRepo,
	}, nil
}

func validateFields(name, equipType, madeBy string) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", name, vb)
	errors.ValidateMaxLength("name", name, 100, vb)
	errors.ValidateRequired("type", equipType, vb)
	errors.ValidateMaxLength("type", equipType, 100, vb)
	errors.ValidateRequired("made_by", madeBy, vb)
	errors.ValidateMaxLength("made_by", madeBy, 100, vb)

	return vb.Build()
}

func (o *orchestrator) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateFields(input.Name, input.Type, input.MadeBy); err != nil {
		return nil, err
	}

	out, err := o.equipmentRepo.Save(ctx, equipmentrepo.SaveInput{
		Equipment: &entities.Equipment{
			Name:   input.Name,
			Type:   input.Type,
			MadeBy: input.MadeBy,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create equipment")
	}

	return &CreateOutput{Equipment: out.Equipment}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.equipmentRepo.Get(ctx, equipmentrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetOutput{Equipment: out.Equipment}, nil
}

func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.equipmentRepo.List(ctx, equipmentrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list equipment")
	}

	return &ListOutput{Equipment: out.Equipment}, nil
}

func (o *orchestrator) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateFields(input.Name, input.Type, input.MadeBy); err != nil {
		return nil, err
	}

	existing, err := o.equipmentRepo.Get(ctx, equipmentrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	// entities are immutable: build a fresh value carrying the stored id
	out, err := o.equipmentRepo.Save(ctx, equipmentrepo.SaveInput{
		Equipment: &entities.Equipment{
			ID:     existing.Equipment.ID,
			Name:   input.Name,
			Type:   input.Type,
			MadeBy: input.MadeBy,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update equipment")
	}

	return &UpdateOutput{Equipment: out.Equipment}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	existing, err := o.equipmentRepo.Get(ctx, equipmentrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	if _, err := o.equipmentRepo.Delete(ctx, equipmentrepo.DeleteInput{Equipment: existing.Equipment}); err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}
