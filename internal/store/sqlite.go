// Package store persists balance-sheet documents: a SQLite-backed document
// store keyed by an integer identifier, plus plain JSON files.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO

	"github.com/bilanco-dev/bilanco/internal/balance"
	"github.com/bilanco-dev/bilanco/internal/id"
)

// ErrNotFound is returned when no document matches the lookup.
var ErrNotFound = errors.New("document not found")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS bilancolar (
    id INTEGER PRIMARY KEY,
    kayit_tarihi TEXT NOT NULL,
    belge TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bilancolar_kayit_tarihi ON bilancolar(kayit_tarihi);
`

// SQLiteStore keeps each document as a JSON blob in one row.
type SQLiteStore struct {
	db *sql.DB
}

// DocumentSummary is one row of a store listing.
type DocumentSummary struct {
	ID         int64
	EntityName string
	RecordedAt string
}

// Open opens (or creates) the store at dbPath and runs the schema setup.
func Open(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save assigns the next identifier (max existing + 1, starting at 1),
// stamps it on the document, and inserts the JSON form. Returns the
// assigned identifier.
func (s *SQLiteStore) Save(ctx context.Context, doc *balance.Document) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "SELECT id FROM bilancolar ORDER BY id DESC")
	if err != nil {
		return 0, fmt.Errorf("listing identifiers: %w", err)
	}
	var existing []int64
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scanning identifier: %w", err)
		}
		existing = append(existing, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating identifiers: %w", err)
	}

	docID := id.NextIdentifier(existing)
	doc.ID = &docID

	data, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("marshaling document: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bilancolar (id, kayit_tarihi, belge) VALUES (?, ?, ?)",
		docID, doc.RecordedAt, string(data),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return docID, nil
}

// Get returns the document with the given identifier.
func (s *SQLiteStore) Get(ctx context.Context, docID int64) (*balance.Document, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT belge FROM bilancolar WHERE id = ?", docID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("id %d: %w", docID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying document: %w", err)
	}
	return unmarshalDocument(data)
}

// Latest returns the document with the most recent kayitTarihi.
func (s *SQLiteStore) Latest(ctx context.Context) (*balance.Document, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT belge FROM bilancolar ORDER BY kayit_tarihi DESC, id DESC LIMIT 1",
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest document: %w", err)
	}
	return unmarshalDocument(data)
}

// List returns summaries of all stored documents, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]DocumentSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, belge FROM bilancolar ORDER BY kayit_tarihi DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var summaries []DocumentSummary
	for rows.Next() {
		var docID int64
		var data string
		if err := rows.Scan(&docID, &data); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc, err := unmarshalDocument(data)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, DocumentSummary{
			ID:         docID,
			EntityName: doc.EntityInfo.Name,
			RecordedAt: doc.RecordedAt,
		})
	}
	return summaries, rows.Err()
}

func unmarshalDocument(data string) (*balance.Document, error) {
	var doc balance.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling document: %w", err)
	}
	return &doc, nil
}
