// Package plandb is the sqlite-backed store for preplan master data:
// airports with their UTC-offset histories, and weekly flight requirement
// documents.
package plandb

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3" // CGo-based SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS airports (
	iata TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	international INTEGER NOT NULL DEFAULT 0,
	lat REAL NOT NULL DEFAULT 0,
	lon REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS utc_offset_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	airport_iata TEXT NOT NULL REFERENCES airports(iata),
	offset_minutes INTEGER NOT NULL,
	dst INTEGER NOT NULL DEFAULT 0,
	start_utc TEXT NOT NULL,
	end_utc TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_offset_records_airport
	ON utc_offset_records(airport_iata, start_utc);

CREATE TABLE IF NOT EXISTS flight_requirements (
	id TEXT PRIMARY KEY,
	label TEXT NOT NULL DEFAULT '',
	document TEXT NOT NULL
);
`

// Client is the entry point for the preplan database.
type Client struct {
	config Config
	DB     *sql.DB
	logger *slog.Logger
}

// NewClient opens (creating if needed) the database at the configured path.
func NewClient(config Config) (*Client, error) {
	db, err := sql.Open("sqlite3", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("unable to open DB at %q: %w", config.DBPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to create tables: %w", err)
	}

	logger := slog.Default().With(slog.String("component", "plandb"))
	if config.verbose {
		logger.Info("created plandb tables", slog.String("path", config.DBPath))
	}

	return &Client{
		config: config,
		DB:     db,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

func (c *Client) GetDBPath() string {
	return c.config.DBPath
}
