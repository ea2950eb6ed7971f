// Package postgres is the shared-database kv backend. It stores each
// collection as one JSON document per key, so the adapter semantics stay
// identical to the memory backend. Capacity checks are still not serialized
// across processes; see the session package.
package postgres

import (
	"database/sql"
	"fmt"

	"summitclub/internal/config"

	_ "github.com/lib/pq"
)

type Backend struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Backend, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	createQuery := `
		CREATE TABLE IF NOT EXISTS session_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`

	if _, err = db.Exec(createQuery); err != nil {
		return nil, fmt.Errorf("failed to create session_state table: %w", err)
	}

	return &Backend{DB: db}, nil
}

func (b *Backend) Close() error {
	return b.DB.Close()
}

func (b *Backend) Lookup(key string) (string, bool, error) {
	query := `
		SELECT value
		FROM session_state
		WHERE key = $1`

	var value string
	err := b.DB.QueryRow(query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	return value, true, nil
}

func (b *Backend) Store(key, value string) error {
	query := `
		INSERT INTO session_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err := b.DB.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	return nil
}

func (b *Backend) Delete(key string) error {
	query := `
		DELETE FROM session_state
		WHERE key = $1`

	_, err := b.DB.Exec(query, key)
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}
