package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finconnect/internal/core"
	"finconnect/internal/store"
)

type fakePublisher struct {
	synced  []core.SpendingEntry
	deleted []string
	err     error
	closed  bool
}

func (f *fakePublisher) PublishEntrySync(_ context.Context, e core.SpendingEntry) error {
	if f.err != nil {
		return f.err
	}
	f.synced = append(f.synced, e)
	return nil
}

func (f *fakePublisher) PublishEntryDelete(_ context.Context, entryID, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, entryID)
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func newEntry() core.SpendingEntry {
	return core.SpendingEntry{
		ProjectID: "project-1",
		Date:      core.NewDate(2025, 10, 20),
		Title:     "Taxi to the airport",
		Category:  "Transportation",
		Amount:    core.Money{Cents: 4500},
		Currency:  "USD",
		AuthorID:  "user-1",
	}
}

func TestCreateEntryPublishesSync(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewEntryService(store.New(store.DemoSeed()), pub)

	created, err := svc.CreateEntry(context.Background(), newEntry())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	require.Len(t, pub.synced, 1)
	assert.Equal(t, created.ID, pub.synced[0].ID)
}

func TestCreateEntryRejectsInvalid(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewEntryService(store.New(store.DemoSeed()), pub)

	e := newEntry()
	e.Title = " "

	_, err := svc.CreateEntry(context.Background(), e)
	require.Error(t, err)
	assert.Empty(t, pub.synced)
}

func TestCreateEntrySurvivesPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	st := store.New(store.DemoSeed())
	svc := NewEntryService(st, pub)

	created, err := svc.CreateEntry(context.Background(), newEntry())
	require.NoError(t, err)

	_, ok := st.Entry(created.ID)
	assert.True(t, ok, "entry should be stored even when publish fails")
}

func TestCreateEntryWithoutPublisher(t *testing.T) {
	svc := NewEntryService(store.New(store.DemoSeed()), nil)

	_, err := svc.CreateEntry(context.Background(), newEntry())
	require.NoError(t, err)
	require.NoError(t, svc.Close())
}

func TestUpdateEntryRepublishes(t *testing.T) {
	pub := &fakePublisher{}
	st := store.New(store.DemoSeed())
	svc := NewEntryService(st, pub)

	created, err := svc.CreateEntry(context.Background(), newEntry())
	require.NoError(t, err)

	title := "Taxi both ways"
	updated, ok := svc.UpdateEntry(context.Background(), created.ID, store.EntryUpdate{Title: &title})
	require.True(t, ok)
	assert.Equal(t, "Taxi both ways", updated.Title)

	require.Len(t, pub.synced, 2)
	assert.Equal(t, "Taxi both ways", pub.synced[1].Title)
}

func TestUpdateEntryUnknownID(t *testing.T) {
	svc := NewEntryService(store.New(store.DemoSeed()), &fakePublisher{})

	_, ok := svc.UpdateEntry(context.Background(), "spend-404", store.EntryUpdate{})
	assert.False(t, ok)
}

func TestDeleteEntryPublishesDelete(t *testing.T) {
	pub := &fakePublisher{}
	st := store.New(store.DemoSeed())
	svc := NewEntryService(st, pub)

	created, err := svc.CreateEntry(context.Background(), newEntry())
	require.NoError(t, err)

	require.True(t, svc.DeleteEntry(context.Background(), created.ID))
	require.Len(t, pub.deleted, 1)
	assert.Equal(t, created.ID, pub.deleted[0])

	assert.False(t, svc.DeleteEntry(context.Background(), created.ID))
}

func TestCloseClosesPublisher(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewEntryService(store.New(store.DemoSeed()), pub)

	require.NoError(t, svc.Close())
	assert.True(t, pub.closed)
}
