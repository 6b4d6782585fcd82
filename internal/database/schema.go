package database

import (
	"context"
	"database/sql"

	"github.com/realmforge/catalog-api/internal/errors"
)

// birth_date is stored as text so values round-trip byte-identically.
// equipment_id and faction_id are weak references; referential integrity
// is deliberately not enforced here.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS equipment (
		id      BIGSERIAL PRIMARY KEY,
		name    VARCHAR(100) NOT NULL,
		type    VARCHAR(100) NOT NULL,
		made_by VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS factions (
		id           BIGSERIAL PRIMARY KEY,
		faction_name VARCHAR(100) NOT NULL,
		description  VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS characters (
		id           BIGSERIAL PRIMARY KEY,
		name         VARCHAR(100) NOT NULL,
		birth_date   VARCHAR(10) NOT NULL,
		kingdom      VARCHAR(100) NOT NULL,
		equipment_id BIGINT NOT NULL,
		faction_id   BIGINT NOT NULL
	)`,
}

// EnsureSchema creates the catalog tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to apply schema statement")
		}
	}
	return nil
}
