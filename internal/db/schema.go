package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    user_type     TEXT NOT NULL CHECK (user_type IN ('samaritan', 'organization')),

    name          TEXT,
    location_lat  REAL,
    location_lon  REAL,
    address_line1 TEXT,
    address_line2 TEXT,
    city          TEXT,
    province      TEXT,
    postal_code   TEXT,
    rating        REAL NOT NULL DEFAULT 0,

    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id                  TEXT PRIMARY KEY,
    category            INTEGER NOT NULL CHECK (category BETWEEN 1 AND 10),
    description         TEXT NOT NULL,
    weight_kg           REAL CHECK (weight_kg IS NULL OR weight_kg > 0),
    volume_m3           REAL CHECK (volume_m3 IS NULL OR volume_m3 > 0),
    best_before         TEXT,
    pickup_lat          REAL NOT NULL,
    pickup_lon          REAL NOT NULL,
    pickup_window_start TEXT,
    pickup_window_end   TEXT,
    image_url           TEXT,

    posted_by           TEXT NOT NULL REFERENCES users(id),
    available_till      DATETIME NOT NULL,
    is_active           INTEGER NOT NULL DEFAULT 1,

    is_reserved         INTEGER NOT NULL DEFAULT 0,
    reserved_by         TEXT REFERENCES users(id),
    reserved_till       DATETIME,

    is_picked_up        INTEGER NOT NULL DEFAULT 0,
    picked_up_by        TEXT REFERENCES users(id),
    pickup_time         DATETIME,

    created_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at          DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

    -- picked-up rows must hold a reservation
    CHECK (is_picked_up = 0 OR is_reserved = 1),
    -- reserved_by set iff reserved
    CHECK ((is_reserved = 1) = (reserved_by IS NOT NULL))
);

CREATE INDEX IF NOT EXISTS idx_items_browse
    ON items(is_active, is_reserved, is_picked_up, category);

CREATE INDEX IF NOT EXISTS idx_items_posted_by ON items(posted_by);
CREATE INDEX IF NOT EXISTS idx_items_reserved_by ON items(reserved_by);
CREATE INDEX IF NOT EXISTS idx_items_picked_up_by ON items(picked_up_by);
`

// EnsureSchema creates all tables and indexes if they do not exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}
