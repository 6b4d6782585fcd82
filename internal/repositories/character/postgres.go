package character

import (
	"context"
	"database/sql"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
)

const (
	errCharacterNil       = "character cannot be nil"
	errCharacterIDInvalid = "character ID must be positive"
)

type postgresRepository struct {
	db *sql.DB
}

// PostgresConfig contains configuration for the Postgres character repository.
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

// NewPostgres creates a new Postgres-backed character repository
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &postgresRepository{db: cfg.DB}, nil
}

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errCharacterIDInvalid)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, birth_date, kingdom, equipment_id, faction_id
		FROM characters
		WHERE id = $1
	`, input.ID)

	var c entities.Character
	if err := row.Scan(&c.ID, &c.Name, &c.BirthDate, &c.Kingdom, &c.EquipmentID, &c.FactionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("character with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character %d", input.ID)
	}

	return &GetOutput{Character: &c}, nil
}

func (r *postgresRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, birth_date, kingdom, equipment_id, faction_id
		FROM characters
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := make([]*entities.Character, 0)
	for rows.Next() {
		var c entities.Character
		if err := rows.Scan(&c.ID, &c.Name, &c.BirthDate, &c.Kingdom, &c.EquipmentID, &c.FactionID); err != nil {
			return nil, errors.Wrap(err, "failed to scan character row")
		}
		characters = append(characters, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *postgresRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	// work on a copy; the caller's value stays untouched
	c := *input.Character

	if c.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO characters (name, birth_date, kingdom, equipment_id, faction_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, c.Name, c.BirthDate, c.Kingdom, c.EquipmentID, c.FactionID).Scan(&c.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to insert character")
		}
		return &SaveOutput{Character: &c}, nil
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE characters
		SET name = $2, birth_date = $3, kingdom = $4, equipment_id = $5, faction_id = $6
		WHERE id = $1
	`, c.ID, c.Name, c.BirthDate, c.Kingdom, c.EquipmentID, c.FactionID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %d", c.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %d", c.ID)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("character with ID %d not found", c.ID)
	}

	return &SaveOutput{Character: &c}, nil
}

func (r *postgresRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == 0 {
		return nil, errors.NotFound("character has no ID; nothing to delete")
	}

	result, err := r.db.ExecContext(ctx, `
		DELETE FROM characters WHERE id = $1
	`, input.Character.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %d", input.Character.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %d", input.Character.ID)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("character with ID %d not found", input.Character.ID)
	}

	return &DeleteOutput{}, nil
}
