package repository

import (
	"context"
	"database/sql"
)

// sqliteSchema is applied on startup; every statement is idempotent.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS service_records (
    id TEXT PRIMARY KEY,
    workshop_id TEXT NOT NULL,
    customer_name TEXT NOT NULL,
    phone TEXT NOT NULL,
    bike_model TEXT NOT NULL,
    odometer INTEGER NOT NULL DEFAULT 0,
    service_date TEXT NOT NULL,
    next_service_date TEXT NOT NULL,
    parts_total INTEGER NOT NULL DEFAULT 0,
    labor_total INTEGER NOT NULL DEFAULT 0,
    total_amount INTEGER NOT NULL DEFAULT 0,
    finalized INTEGER NOT NULL DEFAULT 0,
    finalized_at TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    last_delivered_at TEXT,
    delivery_count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS record_lines (
    record_id TEXT NOT NULL,
    kind TEXT NOT NULL CHECK(kind IN ('part', 'service')),
    position INTEGER NOT NULL,
    item_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    quantity INTEGER NOT NULL CHECK(quantity >= 1),
    charge INTEGER NOT NULL CHECK(charge >= 0),
    PRIMARY KEY (record_id, kind, item_id),
    FOREIGN KEY (record_id) REFERENCES service_records(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_records_workshop_date ON service_records(workshop_id, service_date DESC);
CREATE INDEX IF NOT EXISTS idx_record_lines_record_id ON record_lines(record_id);
`

func runSQLiteMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, sqliteSchema)
	return err
}
