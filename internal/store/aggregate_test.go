package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"finconnect/internal/core"
)

type AggregateTestSuite struct {
	suite.Suite
	store *Store
	now   time.Time
}

func (s *AggregateTestSuite) SetupTest() {
	// Fixed clock inside October 2025, the month most seed entries fall in.
	s.now = time.Date(2025, 10, 25, 12, 0, 0, 0, time.UTC)
	s.store = New(DemoSeed(),
		WithLatency(0),
		WithClock(func() time.Time { return s.now }),
	)
}

func TestAggregateTestSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

func (s *AggregateTestSuite) TestTotalSpentMatchesEntries() {
	budget := core.Money{Cents: 500000}
	p := s.store.CreateProject(core.Project{Name: "Spec Example", Category: core.CategoryOther, Budget: &budget, Currency: "USD"})
	s.store.AddEntry(core.SpendingEntry{ProjectID: p.ID, Title: "a", Category: "Transportation", Amount: core.Money{Cents: 85000}})
	s.store.AddEntry(core.SpendingEntry{ProjectID: p.ID, Title: "b", Category: "Accommodation", Amount: core.Money{Cents: 140000}})

	total := s.store.TotalSpent(p.ID)
	assert.Equal(s.T(), int64(225000), total.Cents)

	// Total equals the sum over exactly the project's own entries.
	var byHand int64
	for _, e := range s.store.EntriesByProject(p.ID) {
		byHand += e.Amount.Cents
	}
	assert.Equal(s.T(), byHand, total.Cents)
}

func (s *AggregateTestSuite) TestTotalSpentSeedProject() {
	// project-1: 850 + 1400 + 180 dollars
	assert.Equal(s.T(), int64(243000), s.store.TotalSpent("project-1").Cents)
	assert.Equal(s.T(), int64(0), s.store.TotalSpent("project-404").Cents)
}

func (s *AggregateTestSuite) TestSpendingByCategory() {
	got := s.store.SpendingByCategory("project-3")
	// First-occurrence order: Food, Health, Utilities.
	require.Len(s.T(), got, 3)
	assert.Equal(s.T(), "Food", got[0].Category)
	assert.Equal(s.T(), int64(19500), got[0].Amount.Cents)
	assert.Equal(s.T(), "Health", got[1].Category)
	assert.Equal(s.T(), int64(5000), got[1].Amount.Cents)
	assert.Equal(s.T(), "Utilities", got[2].Category)
	assert.Equal(s.T(), int64(9500), got[2].Amount.Cents)
}

func (s *AggregateTestSuite) TestBudgetPercentage() {
	// $2430 of a $5000 budget.
	pct, ok := s.store.BudgetPercentage("project-1")
	require.True(s.T(), ok)
	assert.InDelta(s.T(), 48.6, pct, 1e-9)

	// No budget set: percentage is undefined.
	p := s.store.CreateProject(core.Project{Name: "No Budget", Category: core.CategoryOther, Currency: "USD"})
	_, ok = s.store.BudgetPercentage(p.ID)
	assert.False(s.T(), ok)

	_, ok = s.store.BudgetPercentage("project-404")
	assert.False(s.T(), ok)
}

func (s *AggregateTestSuite) TestTotalPlanned() {
	// project-1 plan rows: 1000 + 1500 + 800 + 1200 + 200 dollars.
	assert.Equal(s.T(), int64(470000), s.store.TotalPlanned("project-1").Cents)
}

func (s *AggregateTestSuite) TestDashboardStats() {
	stats := s.store.DashboardStats()

	assert.Equal(s.T(), 4, stats.ActiveProjects)
	// October 2025 entries: groceries, gym, dining out, electric bill.
	assert.Equal(s.T(), int64(34000), stats.MonthSpend.Cents)
	assert.Equal(s.T(), 4, stats.MonthEntries)
	assert.Equal(s.T(), int64(1072000), stats.AllTimeSpend.Cents)
	assert.Equal(s.T(), int64(268000), stats.AveragePerProject.Cents)
}

func (s *AggregateTestSuite) TestDashboardStatsEmpty() {
	st := New(&Seed{CurrentUser: core.User{ID: "user-1"}}, WithLatency(0))
	stats := st.DashboardStats()
	assert.Zero(s.T(), stats.ActiveProjects)
	assert.Zero(s.T(), stats.AveragePerProject.Cents)
}

func (s *AggregateTestSuite) TestRecentActivity() {
	got := s.store.RecentActivity(5)
	require.Len(s.T(), got, 5)
	want := []string{"spend-11", "spend-10", "spend-6", "spend-5", "spend-4"}
	for i, id := range want {
		assert.Equal(s.T(), id, got[i].ID, "position %d", i)
	}
	// Newly added entries jump to the front.
	added := s.store.AddEntry(core.SpendingEntry{ProjectID: "project-1", Title: "Latest", Category: "Food", Amount: core.Money{Cents: 100}})
	got = s.store.RecentActivity(5)
	assert.Equal(s.T(), added.ID, got[0].ID)
}

func (s *AggregateTestSuite) TestProjectSpends() {
	got := s.store.ProjectSpends()
	require.Len(s.T(), got, 4)
	assert.Equal(s.T(), "project-1", got[0].Project.ID)
	assert.Equal(s.T(), int64(243000), got[0].Total.Cents)
	assert.Equal(s.T(), "project-2", got[1].Project.ID)
	assert.Equal(s.T(), int64(345000), got[1].Total.Cents)
}

func (s *AggregateTestSuite) TestProjectSummary() {
	summary, ok := s.store.ProjectSummary("project-1")
	require.True(s.T(), ok)

	assert.Equal(s.T(), int64(243000), summary.Total.Cents)
	assert.Equal(s.T(), int64(470000), summary.Planned.Cents)
	require.NotNil(s.T(), summary.Budget)
	assert.Equal(s.T(), int64(500000), summary.Budget.Cents)
	require.NotNil(s.T(), summary.Remaining)
	assert.Equal(s.T(), int64(257000), summary.Remaining.Cents)
	require.NotNil(s.T(), summary.Percentage)
	assert.InDelta(s.T(), 48.6, *summary.Percentage, 1e-9)

	// Planned categories first, then actual-only ones.
	var categories []string
	for _, row := range summary.ByCategory {
		categories = append(categories, row.Category)
	}
	assert.Equal(s.T(), []string{"Transportation", "Accommodation", "Food", "Activities", "Insurance"}, categories)

	// Transportation: planned 1000, actual 850.
	assert.Equal(s.T(), int64(100000), summary.ByCategory[0].Planned.Cents)
	assert.Equal(s.T(), int64(85000), summary.ByCategory[0].Actual.Cents)

	_, ok = s.store.ProjectSummary("project-404")
	assert.False(s.T(), ok)
}

func (s *AggregateTestSuite) TestProjectSummaryActualOnlyCategory() {
	s.store.AddEntry(core.SpendingEntry{ProjectID: "project-1", Title: "Souvenirs", Category: "Shopping", Amount: core.Money{Cents: 4000}})
	summary, ok := s.store.ProjectSummary("project-1")
	require.True(s.T(), ok)

	last := summary.ByCategory[len(summary.ByCategory)-1]
	assert.Equal(s.T(), "Shopping", last.Category)
	assert.Equal(s.T(), int64(0), last.Planned.Cents)
	assert.Equal(s.T(), int64(4000), last.Actual.Cents)
}
