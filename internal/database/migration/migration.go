package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last table step; its presence means the schema exists.
const sentinelTable = "settings"

var steps = []migrationStep{
	{
		Name: "create_table_cities",
		SQL: `CREATE TABLE IF NOT EXISTS cities (
  id         UUID        PRIMARY KEY,
  name       TEXT        NOT NULL,
  country    TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_cities_name",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_cities_name ON cities (lower(name));`,
	},
	{
		Name: "create_table_districts",
		SQL: `CREATE TABLE IF NOT EXISTS districts (
  id         UUID        PRIMARY KEY,
  city_id    UUID        NOT NULL REFERENCES cities (id) ON DELETE RESTRICT,
  name       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_districts_city_name",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_districts_city_name ON districts (city_id, lower(name));`,
	},
	{
		Name: "create_table_owners",
		SQL: `CREATE TABLE IF NOT EXISTS owners (
  id          UUID        PRIMARY KEY,
  full_name   TEXT        NOT NULL,
  email       TEXT        NOT NULL,
  phone       TEXT        NOT NULL DEFAULT '',
  national_id TEXT        NOT NULL DEFAULT '',
  notes       TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_owners_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_owners_email ON owners (email);`,
	},
	{
		Name: "create_table_buildings",
		SQL: `CREATE TABLE IF NOT EXISTS buildings (
  id          UUID        PRIMARY KEY,
  name        TEXT        NOT NULL,
  address     TEXT        NOT NULL,
  city_id     UUID        NOT NULL REFERENCES cities (id) ON DELETE RESTRICT,
  district_id UUID        NOT NULL REFERENCES districts (id) ON DELETE RESTRICT,
  floors      INTEGER     NOT NULL CHECK (floors >= 1),
  year_built  INTEGER,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_building_owners",
		SQL: `CREATE TABLE IF NOT EXISTS building_owners (
  building_id UUID          NOT NULL REFERENCES buildings (id) ON DELETE CASCADE,
  owner_id    UUID          NOT NULL REFERENCES owners (id) ON DELETE RESTRICT,
  percentage  NUMERIC(5, 2) NOT NULL CHECK (percentage > 0 AND percentage <= 100),
  PRIMARY KEY (building_id, owner_id)
);`,
	},
	{
		Name: "create_table_units",
		SQL: `CREATE TABLE IF NOT EXISTS units (
  id           UUID          PRIMARY KEY,
  unit_number  TEXT          NOT NULL,
  type         TEXT          NOT NULL,
  building_id  UUID          REFERENCES buildings (id) ON DELETE RESTRICT,
  city_id      UUID          NOT NULL REFERENCES cities (id) ON DELETE RESTRICT,
  district_id  UUID          REFERENCES districts (id) ON DELETE RESTRICT,
  owner_id     UUID          NOT NULL REFERENCES owners (id) ON DELETE RESTRICT,
  floor        INTEGER       NOT NULL DEFAULT 0,
  bedrooms     INTEGER       NOT NULL DEFAULT 0,
  bathrooms    INTEGER       NOT NULL DEFAULT 0,
  area_sqm     NUMERIC(10, 2) NOT NULL CHECK (area_sqm > 0),
  monthly_rent NUMERIC(14, 2) NOT NULL DEFAULT 0,
  status       TEXT          NOT NULL DEFAULT 'vacant',
  created_at   TIMESTAMPTZ   NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_units_building_number",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_units_building_number ON units (building_id, unit_number) WHERE building_id IS NOT NULL;`,
	},
	{
		Name: "create_table_leases",
		SQL: `CREATE TABLE IF NOT EXISTS leases (
  id           UUID           PRIMARY KEY,
  unit_id      UUID           NOT NULL REFERENCES units (id) ON DELETE RESTRICT,
  tenant_name  TEXT           NOT NULL,
  tenant_email TEXT           NOT NULL,
  tenant_phone TEXT           NOT NULL DEFAULT '',
  start_date   DATE           NOT NULL,
  end_date     DATE           NOT NULL,
  monthly_rent NUMERIC(14, 2) NOT NULL,
  deposit      NUMERIC(14, 2) NOT NULL DEFAULT 0,
  payment_day  INTEGER        NOT NULL DEFAULT 1,
  status       TEXT           NOT NULL DEFAULT 'active',
  notes        TEXT           NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ    NOT NULL DEFAULT now(),
  updated_at   TIMESTAMPTZ    NOT NULL DEFAULT now(),
  CHECK (end_date > start_date)
);`,
	},
	{
		Name: "create_index_leases_unit_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_leases_unit_status ON leases (unit_id, status);`,
	},
	{
		Name: "create_table_payments",
		SQL: `CREATE TABLE IF NOT EXISTS payments (
  id          UUID           PRIMARY KEY,
  lease_id    UUID           REFERENCES leases (id) ON DELETE RESTRICT,
  unit_id     UUID           NOT NULL REFERENCES units (id) ON DELETE RESTRICT,
  tenant_name TEXT           NOT NULL DEFAULT '',
  amount      NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
  currency    CHAR(3)        NOT NULL,
  due_date    DATE           NOT NULL,
  paid_date   DATE,
  method      TEXT           NOT NULL,
  status      TEXT           NOT NULL DEFAULT 'pending',
  reference   TEXT           NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ    NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_payments_status_due",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_payments_status_due ON payments (status, due_date);`,
	},
	{
		Name: "create_table_stock_items",
		SQL: `CREATE TABLE IF NOT EXISTS stock_items (
  id            UUID           PRIMARY KEY,
  name          TEXT           NOT NULL,
  sku           TEXT           NOT NULL UNIQUE,
  category      TEXT           NOT NULL DEFAULT '',
  quantity      INTEGER        NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  unit_cost     NUMERIC(14, 2) NOT NULL DEFAULT 0,
  reorder_level INTEGER        NOT NULL DEFAULT 0,
  location      TEXT           NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ    NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_service_requests",
		SQL: `CREATE TABLE IF NOT EXISTS service_requests (
  id             UUID           PRIMARY KEY,
  kind           TEXT           NOT NULL,
  unit_id        UUID           NOT NULL REFERENCES units (id) ON DELETE RESTRICT,
  title          TEXT           NOT NULL,
  description    TEXT           NOT NULL DEFAULT '',
  priority       TEXT           NOT NULL DEFAULT 'medium',
  status         TEXT           NOT NULL DEFAULT 'open',
  assigned_to    TEXT           NOT NULL DEFAULT '',
  scheduled_date DATE,
  completed_at   TIMESTAMPTZ,
  cost           NUMERIC(14, 2) NOT NULL DEFAULT 0,
  created_at     TIMESTAMPTZ    NOT NULL DEFAULT now(),
  updated_at     TIMESTAMPTZ    NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_service_requests_unit_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_service_requests_unit_status ON service_requests (unit_id, status);`,
	},
	{
		Name: "create_table_attachments",
		SQL: `CREATE TABLE IF NOT EXISTS attachments (
  id           UUID        PRIMARY KEY,
  entity_type  TEXT        NOT NULL,
  entity_id    UUID        NOT NULL,
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_attachments_entity",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_attachments_entity ON attachments (entity_type, entity_id, created_at);`,
	},
	{
		Name: "create_table_settings",
		SQL: `CREATE TABLE IF NOT EXISTS settings (
  id                  SMALLINT    PRIMARY KEY CHECK (id = 1),
  company_name        TEXT        NOT NULL,
  currency            CHAR(3)     NOT NULL,
  locale              TEXT        NOT NULL,
  date_format         TEXT        NOT NULL,
  timezone            TEXT        NOT NULL,
  overdue_grace_days  INTEGER     NOT NULL,
  low_stock_threshold INTEGER     NOT NULL,
  updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
// Every step is idempotent so a run that failed halfway can simply be repeated.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{"component": "database", "db_host": dbHost})

	log.WithField("event", "db_migration_check").Info("checking schema")

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('public.%s') IS NOT NULL", sentinelTable)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	log.WithField("event", "db_migration_start").Info("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"migration_step":   step.Name,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Debug("migration step applied")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"steps":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
