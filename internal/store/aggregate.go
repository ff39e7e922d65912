package store

import (
	"sort"

	"finconnect/internal/core"
)

// Derived aggregates are pure reads over the collections, recomputed on each
// call. Response-level caching, if any, lives with the callers.

// TotalSpent sums the amounts of the project's spending entries.
func (s *Store) TotalSpent(projectID string) core.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalSpentLocked(projectID)
}

func (s *Store) totalSpentLocked(projectID string) core.Money {
	var total core.Money
	for _, e := range s.entries {
		if e.ProjectID == projectID {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// SpendingByCategory accumulates the project's entry amounts per category.
// Categories appear in first-occurrence order.
func (s *Store) SpendingByCategory(projectID string) []core.CategoryAmount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := make(map[string]int)
	var out []core.CategoryAmount
	for _, e := range s.entries {
		if e.ProjectID != projectID {
			continue
		}
		if i, ok := index[e.Category]; ok {
			out[i].Amount = out[i].Amount.Add(e.Amount)
			continue
		}
		index[e.Category] = len(out)
		out = append(out, core.CategoryAmount{Category: e.Category, Amount: e.Amount})
	}
	return out
}

// TotalPlanned sums the project's planned-budget rows.
func (s *Store) TotalPlanned(projectID string) core.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total core.Money
	for _, b := range s.budgets {
		if b.ProjectID == projectID {
			total = total.Add(b.Planned)
		}
	}
	return total
}

// BudgetPercentage returns spent/budget as a percentage. The second return is
// false when the project is unknown or carries no budget.
func (s *Store) BudgetPercentage(projectID string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID != projectID {
			continue
		}
		if p.Budget == nil || p.Budget.Cents == 0 {
			return 0, false
		}
		spent := s.totalSpentLocked(projectID)
		return float64(spent.Cents) / float64(p.Budget.Cents) * 100, true
	}
	return 0, false
}

// RecentActivity returns all entries sorted descending by creation time,
// truncated to limit. Ties keep insertion order.
func (s *Store) RecentActivity(limit int) []core.SpendingEntry {
	s.mu.RLock()
	entries := append([]core.SpendingEntry(nil), s.entries...)
	s.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// DashboardStats computes the account-wide dashboard aggregates for the
// current calendar month.
func (s *Store) DashboardStats() core.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	year, month := now.Year(), int(now.Month())

	stats := core.DashboardStats{ActiveProjects: len(s.projects)}
	for _, e := range s.entries {
		stats.AllTimeSpend = stats.AllTimeSpend.Add(e.Amount)
		if e.Date.InMonth(year, month) {
			stats.MonthSpend = stats.MonthSpend.Add(e.Amount)
			stats.MonthEntries++
		}
	}
	if stats.ActiveProjects > 0 {
		stats.AveragePerProject = core.Money{Cents: stats.AllTimeSpend.Cents / int64(stats.ActiveProjects)}
	}
	return stats
}

// ProjectSpends pairs each project with its all-time spend, in project
// insertion order.
func (s *Store) ProjectSpends() []core.ProjectSpend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.ProjectSpend, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, core.ProjectSpend{
			Project: p,
			Total:   s.totalSpentLocked(p.ID),
		})
	}
	return out
}

// ProjectSummary builds the budget-vs-actual overview for one project.
// Categories follow the planned rows first, then actual-only categories in
// first-occurrence order.
func (s *Store) ProjectSummary(projectID string) (core.ProjectSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var project *core.Project
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			project = &s.projects[i]
			break
		}
	}
	if project == nil {
		return core.ProjectSummary{}, false
	}

	summary := core.ProjectSummary{
		ProjectID: projectID,
		Currency:  project.Currency,
	}

	index := make(map[string]int)
	for _, b := range s.budgets {
		if b.ProjectID != projectID {
			continue
		}
		summary.Planned = summary.Planned.Add(b.Planned)
		if i, ok := index[b.Category]; ok {
			summary.ByCategory[i].Planned = summary.ByCategory[i].Planned.Add(b.Planned)
			continue
		}
		index[b.Category] = len(summary.ByCategory)
		summary.ByCategory = append(summary.ByCategory, core.CategoryBreakdown{
			Category: b.Category,
			Planned:  b.Planned,
		})
	}

	for _, e := range s.entries {
		if e.ProjectID != projectID {
			continue
		}
		summary.Total = summary.Total.Add(e.Amount)
		if i, ok := index[e.Category]; ok {
			summary.ByCategory[i].Actual = summary.ByCategory[i].Actual.Add(e.Amount)
			continue
		}
		index[e.Category] = len(summary.ByCategory)
		summary.ByCategory = append(summary.ByCategory, core.CategoryBreakdown{
			Category: e.Category,
			Actual:   e.Amount,
		})
	}

	if project.Budget != nil {
		b := *project.Budget
		summary.Budget = &b
		remaining := b.Sub(summary.Total)
		summary.Remaining = &remaining
		if b.Cents != 0 {
			pct := float64(summary.Total.Cents) / float64(b.Cents) * 100
			summary.Percentage = &pct
		}
	}
	return summary, true
}
