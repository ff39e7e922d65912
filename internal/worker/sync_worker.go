package worker

import (
	"context"
	"fmt"
	"log/slog"

	"finconnect/internal/amqp"
	"finconnect/internal/export"
	"finconnect/internal/storage"
)

// SyncWorker mirrors spending entries to the configured spreadsheet and keeps
// the export log in SQLite up to date.
type SyncWorker struct {
	storage  *storage.SQLiteRepository
	appender export.EntryAppender
}

func NewSyncWorker(storage *storage.SQLiteRepository, appender export.EntryAppender) *SyncWorker {
	return &SyncWorker{
		storage:  storage,
		appender: appender,
	}
}

// HandleSyncMessage processes a single entry sync message from AMQP
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.EntrySyncMessage) error {
	entry := msg.Entry

	slog.InfoContext(ctx, "Processing sync message",
		"entry_id", entry.ID,
		"project_id", entry.ProjectID)

	ref, err := w.appender.Append(ctx, entry)
	if err != nil {
		if recErr := w.storage.RecordExport(ctx, entry.ID, entry.ProjectID, "", storage.ExportStatusError); recErr != nil {
			slog.ErrorContext(ctx, "Failed to record export error", "entry_id", entry.ID, "error", recErr)
		}
		return fmt.Errorf("append entry to sheet: %w", err)
	}

	if err := w.storage.RecordExport(ctx, entry.ID, entry.ProjectID, ref, storage.ExportStatusSynced); err != nil {
		return fmt.Errorf("record export: %w", err)
	}

	slog.InfoContext(ctx, "Entry exported",
		"entry_id", entry.ID,
		"project_id", entry.ProjectID,
		"sheets_ref", ref)

	return nil
}

// HandleDeleteMessage marks the export record for a removed entry as stale.
// Rows already written to the spreadsheet are left in place.
func (w *SyncWorker) HandleDeleteMessage(ctx context.Context, msg *amqp.EntryDeleteMessage) error {
	slog.InfoContext(ctx, "Processing delete message",
		"entry_id", msg.EntryID,
		"project_id", msg.ProjectID)

	last, err := w.storage.LastExport(ctx, msg.EntryID)
	if err != nil {
		return fmt.Errorf("look up export record: %w", err)
	}
	if last == nil {
		slog.InfoContext(ctx, "No export record for deleted entry, nothing to do",
			"entry_id", msg.EntryID)
		return nil
	}

	if err := w.storage.RecordExport(ctx, msg.EntryID, msg.ProjectID, last.SheetsRef, storage.ExportStatusStale); err != nil {
		return fmt.Errorf("mark export stale: %w", err)
	}

	return nil
}
