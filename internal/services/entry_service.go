package services

import (
	"context"
	"fmt"
	"log/slog"

	"finconnect/internal/amqp"
	"finconnect/internal/core"
	"finconnect/internal/store"
)

// EntrySyncPublisher is the slice of the AMQP client the service needs.
type EntrySyncPublisher interface {
	PublishEntrySync(ctx context.Context, entry core.SpendingEntry) error
	PublishEntryDelete(ctx context.Context, entryID, projectID string) error
	Close() error
}

// EntryService orchestrates entry writes across the in-memory store and the
// sync queue. The queue is optional, entry writes never fail because the
// broker is down.
type EntryService struct {
	store     *store.Store
	publisher EntrySyncPublisher
}

func NewEntryService(st *store.Store, publisher EntrySyncPublisher) *EntryService {
	return &EntryService{
		store:     st,
		publisher: publisher,
	}
}

// CreateEntry validates and stores an entry, then publishes a sync message.
func (s *EntryService) CreateEntry(ctx context.Context, e core.SpendingEntry) (core.SpendingEntry, error) {
	if err := e.Validate(); err != nil {
		return core.SpendingEntry{}, fmt.Errorf("validate entry: %w", err)
	}

	created := s.store.AddEntry(e)

	if err := s.publishSyncMessage(ctx, created); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"entry_id", created.ID, "error", err)
		// Entry is stored locally either way
	}

	return created, nil
}

// UpdateEntry applies a partial update and republishes the full entry.
func (s *EntryService) UpdateEntry(ctx context.Context, id string, upd store.EntryUpdate) (core.SpendingEntry, bool) {
	if !s.store.UpdateEntry(id, upd) {
		return core.SpendingEntry{}, false
	}

	updated, ok := s.store.Entry(id)
	if !ok {
		return core.SpendingEntry{}, false
	}

	if err := s.publishSyncMessage(ctx, updated); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message",
			"entry_id", id, "error", err)
	}

	return updated, true
}

// DeleteEntry removes an entry and publishes a delete message.
func (s *EntryService) DeleteEntry(ctx context.Context, id string) bool {
	entry, ok := s.store.Entry(id)
	if !ok {
		return false
	}
	if !s.store.DeleteEntry(id) {
		return false
	}

	if err := s.publishDeleteMessage(ctx, id, entry.ProjectID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish delete message",
			"entry_id", id, "error", err)
	}

	return true
}

func (s *EntryService) publishSyncMessage(ctx context.Context, e core.SpendingEntry) error {
	if s.publisher == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping sync message")
		return nil
	}

	return s.publisher.PublishEntrySync(ctx, e)
}

func (s *EntryService) publishDeleteMessage(ctx context.Context, entryID, projectID string) error {
	if s.publisher == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping delete message")
		return nil
	}

	return s.publisher.PublishEntryDelete(ctx, entryID, projectID)
}

// Close closes the AMQP connection if one is configured.
func (s *EntryService) Close() error {
	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.Close(); err != nil {
		return fmt.Errorf("close entry service: %w", err)
	}
	return nil
}

var _ EntrySyncPublisher = (*amqp.Client)(nil)
