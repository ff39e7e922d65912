package http

import (
	"net/http"

	"finconnect/internal/core"
)

type budgetRow struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category"`
	Planned  string `json:"planned_amount"`
	Notes    string `json:"notes,omitempty"`
}

type replaceBudgetsRequest struct {
	Rows []budgetRow `json:"rows"`
}

func (s *Server) handleProjectBudgets(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.store.Project(id); !ok {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	budgets := s.store.BudgetsByProject(id)
	if budgets == nil {
		budgets = []core.PlannedBudget{}
	}
	respondJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleReplaceBudgets(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.store.Project(id); !ok {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	var req replaceBudgetsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rows := make([]core.PlannedBudget, 0, len(req.Rows))
	for _, in := range req.Rows {
		cents, err := core.ParseDecimalToCents(in.Planned)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid planned_amount")
			return
		}
		row := core.PlannedBudget{
			ID:        in.ID,
			ProjectID: id,
			Category:  sanitizeInput(in.Category),
			Planned:   core.Money{Cents: cents},
			Notes:     sanitizeInput(in.Notes),
		}
		if err := row.Validate(); err != nil {
			respondError(w, validationStatus(err), err.Error())
			return
		}
		rows = append(rows, row)
	}

	replaced := s.store.ReplaceBudgets(id, rows)
	s.invalidateAggregates()
	respondJSON(w, http.StatusOK, replaced)
}
