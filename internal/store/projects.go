package store

import (
	"finconnect/internal/core"
	"finconnect/internal/log"
)

// ProjectUpdate is a field mask for UpdateProject. Nil fields are left
// untouched; ClearBudget removes the budget so "omitted" and "cleared" stay
// distinguishable.
type ProjectUpdate struct {
	Name        *string
	Category    *core.ProjectCategory
	Budget      *core.Money
	ClearBudget bool
	Currency    *string
	StartDate   *core.Date
	EndDate     *core.Date
	Members     *[]core.Member
}

// CreateProject assigns a fresh id, creation time, and creator, then appends
// the project. Business-rule validation is the caller's job; the store
// accepts what it is handed.
func (s *Store) CreateProject(p core.Project) core.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID("project")
	p.CreatedAt = s.now()
	p.CreatedBy = s.currentUserID()
	s.projects = append(s.projects, p)

	s.debug("Project created", log.FieldProjectID, p.ID, log.FieldUserID, p.CreatedBy)
	return p
}

// UpdateProject merges the masked fields into the matching project. Returns
// false without touching anything when the id is unknown.
func (s *Store) UpdateProject(id string, upd ProjectUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.ClearBudget {
			p.Budget = nil
		} else if upd.Budget != nil {
			b := *upd.Budget
			p.Budget = &b
		}
		if upd.Currency != nil {
			p.Currency = *upd.Currency
		}
		if upd.StartDate != nil {
			p.StartDate = *upd.StartDate
		}
		if upd.EndDate != nil {
			p.EndDate = *upd.EndDate
		}
		if upd.Members != nil {
			p.Members = append([]core.Member(nil), (*upd.Members)...)
		}
		s.debug("Project updated", log.FieldProjectID, id)
		return true
	}
	return false
}

// DeleteProject removes the project and cascades to its spending entries and
// planned budget rows. Other projects' data is untouched.
func (s *Store) DeleteProject(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	projects := s.projects[:0]
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			continue
		}
		projects = append(projects, p)
	}
	s.projects = projects
	if !found {
		return false
	}

	entries := s.entries[:0]
	for _, e := range s.entries {
		if e.ProjectID != id {
			entries = append(entries, e)
		}
	}
	s.entries = entries

	budgets := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ProjectID != id {
			budgets = append(budgets, b)
		}
	}
	s.budgets = budgets

	s.info("Project deleted", log.FieldProjectID, id)
	return true
}

// Project returns the project with the given id.
func (s *Store) Project(id string) (core.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return core.Project{}, false
}

// Projects returns all projects in insertion order.
func (s *Store) Projects() []core.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Project(nil), s.projects...)
}
