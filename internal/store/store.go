// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaDDL string

// DB wraps a sqlite connection holding the parsed-table and search-result
// caches.
type DB struct {
	db *sql.DB
}

// Open opens (creating if necessary) the cache database at path and
// ensures its schema exists.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("store: %q: %w", dir, err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("store: %q: foreign keys pragma: %w", path, err)
	}
	if _, err := sqlDB.Exec(schemaDDL); err != nil {
		return nil, fmt.Errorf("store: %q: create schema: %w", path, err)
	}
	log.Printf("[store] opened %s\n", path)
	return &DB{db: sqlDB}, nil
}

func (db *DB) Close() error {
	if db == nil || db.db == nil {
		return nil
	}
	err := db.db.Close()
	db.db = nil
	return err
}

// PutTable caches a parsed table's serialized payload under checksum,
// overwriting any existing entry.
func (db *DB) PutTable(checksum, sourcePath string, payload []byte) error {
	_, err := db.db.Exec(
		`INSERT INTO parsed_tables (checksum, source_path, payload) VALUES (?, ?, ?)
		 ON CONFLICT(checksum) DO UPDATE SET source_path = excluded.source_path, payload = excluded.payload`,
		checksum, sourcePath, payload,
	)
	return err
}

// GetTable returns the cached payload for checksum, or ok == false if
// there is no cached entry.
func (db *DB) GetTable(checksum string) (payload []byte, ok bool, err error) {
	row := db.db.QueryRow(`SELECT payload FROM parsed_tables WHERE checksum = ?`, checksum)
	err = row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

// PutSearchResult caches a search-service response under requestID.
func (db *DB) PutSearchResult(requestID, query string, payload []byte) error {
	_, err := db.db.Exec(
		`INSERT INTO search_results (request_id, query, payload) VALUES (?, ?, ?)
		 ON CONFLICT(request_id) DO UPDATE SET query = excluded.query, payload = excluded.payload`,
		requestID, query, payload,
	)
	return err
}

// GetSearchResult returns the cached payload for requestID, or ok == false
// if there is no cached entry.
func (db *DB) GetSearchResult(requestID string) (payload []byte, ok bool, err error) {
	row := db.db.QueryRow(`SELECT payload FROM search_results WHERE request_id = ?`, requestID)
	err = row.Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}
