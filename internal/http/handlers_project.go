package http

import (
	"net/http"

	"finconnect/internal/core"
	"finconnect/internal/store"
)

type projectRequest struct {
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Budget    *int64        `json:"budget_cents,omitempty"`
	Currency  string        `json:"currency"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Members   []core.Member `json:"members,omitempty"`
}

type projectUpdateRequest struct {
	Name        *string        `json:"name,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Budget      *int64         `json:"budget_cents,omitempty"`
	ClearBudget bool           `json:"clear_budget,omitempty"`
	Currency    *string        `json:"currency,omitempty"`
	StartDate   *string        `json:"start_date,omitempty"`
	EndDate     *string        `json:"end_date,omitempty"`
	Members     *[]core.Member `json:"members,omitempty"`
}

func (s *Server) handleListProjects(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Projects())
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := s.store.Project(r.PathValue("id"))
	if !ok {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid end_date, expected YYYY-MM-DD")
		return
	}

	p := core.Project{
		Name:      sanitizeInput(req.Name),
		Category:  core.ProjectCategory(req.Category),
		Currency:  req.Currency,
		StartDate: start,
		EndDate:   end,
		Members:   req.Members,
	}
	if req.Budget != nil {
		p.Budget = &core.Money{Cents: *req.Budget}
	}

	if err := p.Validate(); err != nil {
		respondError(w, validationStatus(err), err.Error())
		return
	}

	created := s.store.CreateProject(p)
	s.invalidateAggregates()
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := store.ProjectUpdate{
		ClearBudget: req.ClearBudget,
		Currency:    req.Currency,
		Members:     req.Members,
	}
	if req.Name != nil {
		name := sanitizeInput(*req.Name)
		upd.Name = &name
	}
	if req.Category != nil {
		cat := core.ProjectCategory(*req.Category)
		if err := cat.Validate(); err != nil {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		upd.Category = &cat
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			respondError(w, http.StatusUnprocessableEntity, core.ErrInvalidAmount.Error())
			return
		}
		upd.Budget = &core.Money{Cents: *req.Budget}
	}
	if req.StartDate != nil {
		d, err := parseDate(*req.StartDate)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid start_date, expected YYYY-MM-DD")
			return
		}
		upd.StartDate = &d
	}
	if req.EndDate != nil {
		d, err := parseDate(*req.EndDate)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid end_date, expected YYYY-MM-DD")
			return
		}
		upd.EndDate = &d
	}

	id := r.PathValue("id")
	if !s.store.UpdateProject(id, upd) {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	s.invalidateAggregates()
	p, _ := s.store.Project(id)
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteProject(r.PathValue("id")) {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	s.invalidateAggregates()
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleProjectEntries(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.store.Project(id); !ok {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	entries := s.store.EntriesByProject(id)
	if entries == nil {
		entries = []core.SpendingEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleProjectSummary(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if summary, ok := s.summaryCache.Get(id); ok {
		respondJSON(w, http.StatusOK, summary)
		return
	}

	summary, ok := s.store.ProjectSummary(id)
	if !ok {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	s.summaryCache.Set(id, summary)
	respondJSON(w, http.StatusOK, summary)
}
