package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/yachai/yachai-cli/internal/logger"
)

// schema is the full local schema. The client persists only the logged-in
// user record, keyed by a single storage key; the game session is never
// written here and is lost on exit.
const schema = `
CREATE TABLE IF NOT EXISTS client_storage (
    storage_key TEXT PRIMARY KEY,
    payload     TEXT NOT NULL,
    updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

type DB struct {
	*sql.DB
	log *logger.Logger
}

func Open(path string) (*DB, error) {
	log := logger.Default().WithPrefix("db")

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL", path)
	log.Debug("opening local store: %s", path)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open local store: %v", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1) // SQLite best practice for single writer

	db := &DB{DB: sqlDB, log: log}

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		log.Error("failed to apply schema: %v", err)
		sqlDB.Close()
		return nil, err
	}

	log.Debug("local store ready")
	return db, nil
}
