package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"finconnect/internal/amqp"
	"finconnect/internal/core"
	"finconnect/internal/export/memory"
	"finconnect/internal/storage"
)

type failingAppender struct{}

func (failingAppender) Append(context.Context, core.SpendingEntry) (string, error) {
	return "", errors.New("sheet unavailable")
}

type SyncWorkerTestSuite struct {
	suite.Suite
	repo     *storage.SQLiteRepository
	appender *memory.Store
	worker   *SyncWorker
}

func (suite *SyncWorkerTestSuite) SetupTest() {
	repo, err := storage.NewSQLiteRepository(":memory:")
	require.NoError(suite.T(), err, "failed to create test database")
	suite.repo = repo
	suite.appender = memory.New()
	suite.worker = NewSyncWorker(repo, suite.appender)
}

func (suite *SyncWorkerTestSuite) TearDownTest() {
	if suite.repo != nil {
		suite.repo.Close()
	}
}

func TestSyncWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(SyncWorkerTestSuite))
}

func testEntry() core.SpendingEntry {
	return core.SpendingEntry{
		ID:        "spend-1",
		ProjectID: "project-1",
		Date:      core.NewDate(2025, 10, 12),
		Title:     "Flight tickets",
		Category:  "Transportation",
		Amount:    core.Money{Cents: 85000},
		Currency:  "USD",
		AuthorID:  "user-1",
	}
}

func (suite *SyncWorkerTestSuite) TestSyncMessageAppendsAndRecords() {
	ctx := context.Background()
	msg := amqp.NewEntrySyncMessage(testEntry())

	require.NoError(suite.T(), suite.worker.HandleSyncMessage(ctx, msg))

	assert.Len(suite.T(), suite.appender.Entries(), 1)

	rec, err := suite.repo.LastExport(ctx, "spend-1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), rec)
	assert.Equal(suite.T(), storage.ExportStatusSynced, rec.Status)
	assert.Equal(suite.T(), "mem:1", rec.SheetsRef)
}

func (suite *SyncWorkerTestSuite) TestSyncMessageRecordsFailure() {
	ctx := context.Background()
	w := NewSyncWorker(suite.repo, failingAppender{})
	msg := amqp.NewEntrySyncMessage(testEntry())

	err := w.HandleSyncMessage(ctx, msg)
	require.Error(suite.T(), err)

	rec, err := suite.repo.LastExport(ctx, "spend-1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), rec)
	assert.Equal(suite.T(), storage.ExportStatusError, rec.Status)
}

func (suite *SyncWorkerTestSuite) TestDeleteMessageMarksStale() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.worker.HandleSyncMessage(ctx, amqp.NewEntrySyncMessage(testEntry())))

	msg := amqp.NewEntryDeleteMessage("spend-1", "project-1")
	require.NoError(suite.T(), suite.worker.HandleDeleteMessage(ctx, msg))

	rec, err := suite.repo.LastExport(ctx, "spend-1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), rec)
	assert.Equal(suite.T(), storage.ExportStatusStale, rec.Status)
	assert.Equal(suite.T(), "mem:1", rec.SheetsRef)
}

func (suite *SyncWorkerTestSuite) TestDeleteMessageWithoutExportIsNoop() {
	ctx := context.Background()

	msg := amqp.NewEntryDeleteMessage("spend-404", "project-1")
	require.NoError(suite.T(), suite.worker.HandleDeleteMessage(ctx, msg))

	rec, err := suite.repo.LastExport(ctx, "spend-404")
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), rec)
}
