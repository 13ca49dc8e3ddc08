/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package sqlite provides an embedded implementation of the DataStore
// interface over mattn/go-sqlite3, for local catalog work and tests that
// need durable storage without AWS credentials.
//
// Records are stored as JSON documents in a two-column-keyed table per
// store:
//
//	CREATE TABLE IF NOT EXISTS <table> (
//	    k    TEXT PRIMARY KEY,
//	    kind TEXT NOT NULL DEFAULT '',
//	    doc  TEXT NOT NULL
//	)
//
// Query parameters specific to the DynamoDB backend (key conditions,
// secondary indexes) do not apply here; Query and Stream return the
// store's records in key order.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/suparena/entityresolve/datastore"
	resolveerrors "github.com/suparena/entityresolve/errors"
	"github.com/suparena/entityresolve/storagemodels"
)

var tablePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Open opens (creating if necessary) the catalog database at path.
// Use ":memory:" for throwaway stores in tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// SQLiteDataStore implements datastore.DataStore[T] over an embedded
// sqlite database. Keys are extracted from records with the keyFn
// supplied at construction, typically the BBID.
type SQLiteDataStore[T any] struct {
	db    *sql.DB
	table string
	keyFn func(T) string
}

// New constructs a SQLiteDataStore for type T, creating the backing
// table if it does not exist.
func New[T any](db *sql.DB, table string, keyFn func(T) string) (*SQLiteDataStore[T], error) {
	if !tablePattern.MatchString(table) {
		return nil, resolveerrors.NewValidationError("table", fmt.Sprintf("invalid table name %q", table))
	}
	if keyFn == nil {
		return nil, resolveerrors.NewValidationError("keyFn", "key function is required")
	}

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		k    TEXT PRIMARY KEY,
		kind TEXT NOT NULL DEFAULT '',
		doc  TEXT NOT NULL
	)`, table)
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create table %q: %w", table, err)
	}

	return &SQLiteDataStore[T]{db: db, table: table, keyFn: keyFn}, nil
}

// GetOne retrieves a single record by key.
func (s *SQLiteDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	var doc string
	query := fmt.Sprintf("SELECT doc FROM %s WHERE k = ?", s.table)
	err := s.db.QueryRowContext(ctx, query, key).Scan(&doc)
	if err == sql.ErrNoRows {
		var zero T
		return nil, resolveerrors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	result := new(T)
	if err := json.Unmarshal([]byte(doc), result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return result, nil
}

// Put stores the given record, replacing any existing record under the
// same key.
func (s *SQLiteDataStore[T]) Put(ctx context.Context, entity T) error {
	key := s.keyFn(entity)
	if key == "" {
		return resolveerrors.NewValidationError("key", "unable to extract key from record")
	}

	doc, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	var kind string
	if kinded, ok := any(entity).(datastore.Kinded); ok {
		kind = kinded.Kind()
	}

	query := fmt.Sprintf("INSERT OR REPLACE INTO %s (k, kind, doc) VALUES (?, ?, ?)", s.table)
	if _, err := s.db.ExecContext(ctx, query, key, kind, string(doc)); err != nil {
		return fmt.Errorf("failed to store record: %w", err)
	}
	return nil
}

// UpdateWithCondition applies field updates to the stored document. The
// condition is satisfied only when the record exists; richer condition
// expressions are a DynamoDB feature this backend does not interpret.
func (s *SQLiteDataStore[T]) UpdateWithCondition(ctx context.Context, keyInput any, updates map[string]interface{}, condition string) error {
	key, ok := keyInput.(string)
	if !ok {
		return resolveerrors.NewValidationError("keyInput", "must be a string key")
	}
	if len(updates) == 0 {
		return resolveerrors.NewValidationError("updates", "no updates provided")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var doc string
	query := fmt.Sprintf("SELECT doc FROM %s WHERE k = ?", s.table)
	err = tx.QueryRowContext(ctx, query, key).Scan(&doc)
	if err == sql.ErrNoRows {
		return resolveerrors.NewConditionFailedError("update", condition)
	}
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &fields); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	for k, v := range updates {
		fields[k] = v
	}
	updated, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	update := fmt.Sprintf("UPDATE %s SET doc = ? WHERE k = ?", s.table)
	if _, err := tx.ExecContext(ctx, update, string(updated), key); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	return tx.Commit()
}

// Query returns all records of the store in key order. The DynamoDB
// expression fields of params are ignored.
func (s *SQLiteDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]interface{}, error) {
	query := fmt.Sprintf("SELECT doc FROM %s ORDER BY k", s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	var results []interface{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		result := new(T)
		if err := json.Unmarshal([]byte(doc), result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// Stream delivers all records of the store on a channel in key order.
func (s *SQLiteDataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)

	go func() {
		defer close(resultCh)

		query := fmt.Sprintf("SELECT doc FROM %s ORDER BY k", s.table)
		rows, err := s.db.QueryContext(ctx, query)
		if err != nil {
			resultCh <- storagemodels.StreamResult[T]{Error: fmt.Errorf("query error: %w", err)}
			return
		}
		defer rows.Close()

		var index int64
		for rows.Next() {
			select {
			case <-ctx.Done():
				return
			default:
			}

			result := storagemodels.StreamResult[T]{
				Meta: storagemodels.StreamMeta{
					Index:      index,
					PageNumber: 1,
					Timestamp:  time.Now(),
				},
			}

			var doc string
			if err := rows.Scan(&doc); err != nil {
				result.Error = fmt.Errorf("failed to scan record: %w", err)
			} else if err := json.Unmarshal([]byte(doc), &result.Item); err != nil {
				result.Error = fmt.Errorf("failed to unmarshal record: %w", err)
			}

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}
			index++
		}
	}()

	return resultCh
}

// Delete removes a record by key.
func (s *SQLiteDataStore[T]) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE k = ?", s.table)
	res, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var zero T
		return resolveerrors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}
	return nil
}

// Truncate removes every record the store holds.
func (s *SQLiteDataStore[T]) Truncate(ctx context.Context) error {
	query := fmt.Sprintf("DELETE FROM %s", s.table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate %q: %w", s.table, err)
	}
	return nil
}
