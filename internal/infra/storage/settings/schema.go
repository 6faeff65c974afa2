package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

const tableName = "calendar_settings"

const postgresSchema = `
CREATE TABLE IF NOT EXISTS calendar_settings (
	id             BIGSERIAL PRIMARY KEY,
	company_id     BIGINT NOT NULL,
	branch_id      BIGINT NULL,
	start_hour     INT NOT NULL,
	end_hour       INT NOT NULL,
	slot_interval  INT NOT NULL,
	density_factor DOUBLE PRECISION NOT NULL,
	layout_mode    TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS calendar_settings_company_branch_uidx
	ON calendar_settings (company_id, COALESCE(branch_id, 0));
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS calendar_settings (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id     INTEGER NOT NULL,
	branch_id      INTEGER NULL,
	start_hour     INTEGER NOT NULL,
	end_hour       INTEGER NOT NULL,
	slot_interval  INTEGER NOT NULL,
	density_factor REAL NOT NULL,
	layout_mode    TEXT NOT NULL,
	created_at     DATETIME NOT NULL,
	updated_at     DATETIME NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS calendar_settings_company_branch_uidx
	ON calendar_settings (company_id, COALESCE(branch_id, 0));
`

// Migrate создает таблицу настроек, если её нет
func (r *Repository) Migrate(ctx context.Context) error {
	schema := postgresSchema
	if r.driver == psqlbuilder.DriverSQLite {
		schema = sqliteSchema
	}

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrate, err)
	}
	return nil
}
