package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	repo *SQLiteRepository
}

// SetupTest runs before each test
func (suite *RepositoryTestSuite) SetupTest() {
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(suite.T(), err, "failed to create test database")
	suite.repo = repo
}

// TearDownTest runs after each test
func (suite *RepositoryTestSuite) TearDownTest() {
	if suite.repo != nil {
		suite.repo.Close()
	}
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (suite *RepositoryTestSuite) TestSessionFlagDefaultsInactive() {
	active, err := suite.repo.Active(context.Background())
	require.NoError(suite.T(), err)
	assert.False(suite.T(), active)
}

func (suite *RepositoryTestSuite) TestSessionFlagRoundTrip() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.repo.SetActive(ctx, true))
	active, err := suite.repo.Active(ctx)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), active)

	// Setting again is idempotent.
	require.NoError(suite.T(), suite.repo.SetActive(ctx, true))
	active, err = suite.repo.Active(ctx)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), active)

	require.NoError(suite.T(), suite.repo.SetActive(ctx, false))
	active, err = suite.repo.Active(ctx)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), active)
}

func (suite *RepositoryTestSuite) TestRecordAndReadExport() {
	ctx := context.Background()

	require.NoError(suite.T(), suite.repo.RecordExport(ctx, "spend-1", "project-1", "Entries!A2", ExportStatusSynced))
	require.NoError(suite.T(), suite.repo.RecordExport(ctx, "spend-1", "project-1", "", ExportStatusError))

	rec, err := suite.repo.LastExport(ctx, "spend-1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), rec)
	assert.Equal(suite.T(), ExportStatusError, rec.Status)
	assert.Equal(suite.T(), "project-1", rec.ProjectID)

	rec, err = suite.repo.LastExport(ctx, "spend-404")
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), rec)
}

func (suite *RepositoryTestSuite) TestExportCount() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(suite.T(), suite.repo.RecordExport(ctx, "spend-1", "project-1", "ref", ExportStatusSynced))
	}
	require.NoError(suite.T(), suite.repo.RecordExport(ctx, "spend-2", "project-1", "", ExportStatusError))

	synced, err := suite.repo.ExportCount(ctx, ExportStatusSynced)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), synced)

	failed, err := suite.repo.ExportCount(ctx, ExportStatusError)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), failed)
}
