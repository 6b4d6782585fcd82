package faction

import (
	"context"
	"database/sql"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
)

const (
	errFactionNil       = "faction cannot be nil"
	errFactionIDInvalid = "faction ID must be positive"
)

type postgresRepository struct {
	db *sql.DB
}

// PostgresConfig contains configuration for the Postgres faction repository.
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

// NewPostgres creates a new Postgres-backed faction repository
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &postgresRepository{db: cfg.DB}, nil
}

func (r *postgresRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errFactionIDInvalid)
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, faction_name, description
		FROM factions
		WHERE id = $1
	`, input.ID)

	var f entities.Faction
	if err := row.Scan(&f.ID, &f.FactionName, &f.Description); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("faction with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get faction %d", input.ID)
	}

	return &GetOutput{Faction: &f}, nil
}

func (r *postgresRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, faction_name, description
		FROM factions
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list factions")
	}
	defer func() { _ = rows.Close() }()

	factions := make([]*entities.Faction, 0)
	for rows.Next() {
		var f entities.Faction
		if err := rows.Scan(&f.ID, &f.FactionName, &f.Description); err != nil {
			return nil, errors.Wrap(err, "failed to scan faction row")
		}
		factions = append(factions, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list factions")
	}

	return &ListOutput{Factions: factions}, nil
}

func (r *postgresRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Faction == nil {
		return nil, errors.InvalidArgument(errFactionNil)
	}

	f := *input.Faction

	if f.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO factions (faction_name, description)
			VALUES ($1, $2)
			RETURNING id
		`, f.FactionName, f.Description).Scan(&f.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to insert faction")
		}
		return &SaveOutput{Faction: &f}, nil
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE factions
		SET faction_name = $2, description = $3
		WHERE id = $1
	`, f.ID, f.FactionName, f.Description)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update faction %d", f.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update faction %d", f.ID)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("faction with ID %d not found", f.ID)
	}

	return &SaveOutput{Faction: &f}, nil
}

func (r *postgresRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Faction == nil {
		return nil, errors.InvalidArgument(errFactionNil)
	}
	if input.Faction.ID == 0 {
		return nil, errors.NotFound("faction has no ID; nothing to delete")
	}

	result, err := r.db.ExecContext(ctx, `
		DELETE FROM factions WHERE id = $1
	`, input.Faction.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete faction %d", input.Faction.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete faction %d", input.Faction.ID)
	}
	if affected == 0 {
		return nil, errors.NotFoundf("faction with ID %d not found", input.Faction.ID)
	}

	return &DeleteOutput{}, nil
}
