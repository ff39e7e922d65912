package http

import (
	"net/http"

	"finconnect/internal/core"
	"finconnect/internal/store"
)

type entryRequest struct {
	ProjectID   string `json:"project_id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	ReceiptURL  string `json:"receipt_url,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type entryUpdateRequest struct {
	Date        *string `json:"date,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	ReceiptURL  *string `json:"receipt_url,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (s *Server) handleListEntries(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Entries())
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	e, ok := s.store.Entry(r.PathValue("id"))
	if !ok {
		respondError(w, http.StatusNotFound, "entry not found")
		return
	}
	respondJSON(w, http.StatusOK, e)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, ok := s.store.Project(req.ProjectID); !ok {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid date, expected YYYY-MM-DD")
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	session, _ := s.store.Session()
	e := core.SpendingEntry{
		ProjectID:   req.ProjectID,
		Date:        date,
		Title:       sanitizeInput(req.Title),
		Description: sanitizeInput(req.Description),
		Category:    sanitizeInput(req.Category),
		Amount:      core.Money{Cents: cents},
		Currency:    req.Currency,
		AuthorID:    session.User.ID,
		ReceiptURL:  sanitizeInput(req.ReceiptURL),
		Notes:       sanitizeInput(req.Notes),
	}

	created, err := s.entries.CreateEntry(r.Context(), e)
	if err != nil {
		respondError(w, validationStatus(err), err.Error())
		return
	}

	s.invalidateAggregates()
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := store.EntryUpdate{
		Currency: req.Currency,
	}
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid date, expected YYYY-MM-DD")
			return
		}
		upd.Date = &d
	}
	if req.Title != nil {
		title := sanitizeInput(*req.Title)
		upd.Title = &title
	}
	if req.Description != nil {
		desc := sanitizeInput(*req.Description)
		upd.Description = &desc
	}
	if req.Category != nil {
		cat := sanitizeInput(*req.Category)
		upd.Category = &cat
	}
	if req.Amount != nil {
		cents, err := core.ParseDecimalToCents(*req.Amount)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid amount")
			return
		}
		upd.Amount = &core.Money{Cents: cents}
	}
	if req.ReceiptURL != nil {
		u := sanitizeInput(*req.ReceiptURL)
		upd.ReceiptURL = &u
	}
	if req.Notes != nil {
		n := sanitizeInput(*req.Notes)
		upd.Notes = &n
	}

	updated, ok := s.entries.UpdateEntry(r.Context(), r.PathValue("id"), upd)
	if !ok {
		respondError(w, http.StatusNotFound, "entry not found")
		return
	}

	s.invalidateAggregates()
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if !s.entries.DeleteEntry(r.Context(), r.PathValue("id")) {
		respondError(w, http.StatusNotFound, "entry not found")
		return
	}
	s.invalidateAggregates()
	respondJSON(w, http.StatusNoContent, nil)
}
