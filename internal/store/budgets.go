package store

import (
	"finconnect/internal/core"
	"finconnect/internal/log"
)

// ReplaceBudgets swaps the project's planned-budget rows for the supplied
// list. Remove-then-append, not a merge: an empty list clears the project's
// plan. Rows without an id get a fresh one.
func (s *Store) ReplaceBudgets(projectID string, rows []core.PlannedBudget) []core.PlannedBudget {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ProjectID != projectID {
			kept = append(kept, b)
		}
	}
	s.budgets = kept

	added := make([]core.PlannedBudget, 0, len(rows))
	for _, row := range rows {
		row.ProjectID = projectID
		if row.ID == "" {
			row.ID = newID("plan")
		}
		s.budgets = append(s.budgets, row)
		added = append(added, row)
	}

	s.debug("Planned budgets replaced", log.FieldProjectID, projectID, "rows", len(added))
	return added
}

// BudgetsByProject returns the project's planned-budget rows in insertion
// order.
func (s *Store) BudgetsByProject(projectID string) []core.PlannedBudget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []core.PlannedBudget
	for _, b := range s.budgets {
		if b.ProjectID == projectID {
			out = append(out, b)
		}
	}
	return out
}
