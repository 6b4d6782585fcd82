package equipment

import (
	"context"
	"database/sql"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
)

const (
	errEquipmentNil       = "equipment cannot be nil"
	errEquipmentIDInvalid = "equipment ID must be positive"
)

type postgresRepository struct {
	db *sql.DB
}

// PostgresConfig contains configuration for the Postgres equipment repository.
type PostgresConfig struct {
	DB *sql.DB
}

// Validate validates the PostgresConfig.
func (cfg *PostgresConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db handle cannot be nil")
	}
	return nil
}

// NewPostgres creates a new Postgres-backed equipment repository
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &postgresRepository{db: cfg.DB}, nil
}

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errEquipmentIDInvalid)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, type, made_by
		FROM equipment
		WHERE id = $1
	`, input.ID)

	var e entities.Equipment
	if err := row.Scan(&e.ID, &e.Name, &e.Type, &e.MadeBy); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("equipment with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get equipment %d", input.ID)
	}

	return &GetOutput{Equipment: &e}, nil
}

func (r *postgresRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, made_by
		FROM equipment
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list equipment")
	}
	defer func() { _ = rows.Close() }()

	equipment := make([]*entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.MadeBy); err != nil {
			return nil, errors.Wrap(err, "failed to scan equipment row")
		}
		equipment = append(equipment, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list equipment")
	}

	return &ListOutput{Equipment: equipment}, nil
}

func (r *postgresRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Equipment == nil {
		return nil, errors.InvalidArgument(errEquipmentNil)
	}

	e := *input.Equipment

	if e.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO equipment (name, type, made_by)
			VALUES ($1, $2, $3)
			RETURNING id
		`, e.Name, e.Type, e.MadeBy).Scan(&e.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to insert equipment")
		}
		return &SaveOutput{Equipment: &e}, nil
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE equipment
		SET name = $2, type = $3, made_by = $4
		WHERE id = $1
	`, e.ID, e.Name, e.Type, e.MadeBy)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update equipment %d", e.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update equipment %d", e.ID)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("equipment with ID %d not found", e.ID)
	}

	return &SaveOutput{Equipment: &e}, nil
}

func (r *postgresRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Equipment == nil {
		return nil, errors.InvalidArgument(errEquipmentNil)
	}
	if input.Equipment.ID == 0 {
		return nil, errors.NotFound("equipment has no ID; nothing to delete")
	}

	result, err := r.db.ExecContext(ctx, `
		DELETE FROM equipment WHERE id = $1
	`, input.Equipment.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete equipment %d", input.Equipment.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete equipment %d", input.Equipment.ID)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("equipment with ID %d not found", input.Equipment.ID)
	}

	return &DeleteOutput{}, nil
}
