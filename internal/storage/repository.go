// Package storage is the thin durable layer under an otherwise in-memory
// service: the session flag that survives restarts, and the log of entries
// exported to the spreadsheet mirror.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// sessionFlagKey matches the fixed key the original kept in browser local
// storage.
const sessionFlagKey = "finconnect_auth"

// Export statuses recorded in the export log.
const (
	ExportStatusSynced = "synced"
	ExportStatusError  = "error"
	ExportStatusStale  = "stale"
)

type SQLiteRepository struct {
	db *sql.DB
}

// ExportRecord is one row of the export log.
type ExportRecord struct {
	ID         int64
	EntryID    string
	ProjectID  string
	SheetsRef  string
	Status     string
	ExportedAt time.Time
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Active implements store.SessionFlag. A missing row means no session.
func (r *SQLiteRepository) Active(ctx context.Context) (bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, sessionFlagKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read session flag: %w", err)
	}
	return value == "true", nil
}

// SetActive implements store.SessionFlag. Clearing removes the row, mirroring
// the original's removeItem on logout.
func (r *SQLiteRepository) SetActive(ctx context.Context, active bool) error {
	if !active {
		if _, err := r.db.ExecContext(ctx,
			`DELETE FROM app_state WHERE key = ?`, sessionFlagKey); err != nil {
			return fmt.Errorf("clear session flag: %w", err)
		}
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, 'true', CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = 'true', updated_at = CURRENT_TIMESTAMP`,
		sessionFlagKey)
	if err != nil {
		return fmt.Errorf("set session flag: %w", err)
	}
	return nil
}

// RecordExport appends one row to the export log.
func (r *SQLiteRepository) RecordExport(ctx context.Context, entryID, projectID, sheetsRef, status string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO export_log (entry_id, project_id, sheets_ref, status) VALUES (?, ?, ?, ?)`,
		entryID, projectID, sheetsRef, status)
	if err != nil {
		return fmt.Errorf("record export: %w", err)
	}

	slog.InfoContext(ctx, "Export recorded",
		"entry_id", entryID,
		"project_id", projectID,
		"status", status)
	return nil
}

// LastExport returns the most recent export log row for an entry.
func (r *SQLiteRepository) LastExport(ctx context.Context, entryID string) (*ExportRecord, error) {
	var rec ExportRecord
	err := r.db.QueryRowContext(ctx,
		`SELECT id, entry_id, project_id, sheets_ref, status, exported_at
		 FROM export_log WHERE entry_id = ? ORDER BY id DESC LIMIT 1`, entryID).
		Scan(&rec.ID, &rec.EntryID, &rec.ProjectID, &rec.SheetsRef, &rec.Status, &rec.ExportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read export log: %w", err)
	}
	return &rec, nil
}

// ExportCount returns the number of export log rows with the given status.
func (r *SQLiteRepository) ExportCount(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM export_log WHERE status = ?`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count export log: %w", err)
	}
	return n, nil
}
