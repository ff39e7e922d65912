package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type assistantRequest struct {
	Content        string `json:"content"`
	ProjectContext string `json:"project_context,omitempty"`
}

func (s *Server) handleListMessages(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Messages())
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	content := sanitizeInput(req.Content)
	if strings.TrimSpace(content) == "" {
		respondError(w, http.StatusUnprocessableEntity, "message content is required")
		return
	}

	reply, err := s.store.SendAssistantMessage(r.Context(), content, sanitizeInput(req.ProjectContext))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			respondError(w, http.StatusServiceUnavailable, "assistant reply interrupted")
			return
		}
		respondError(w, http.StatusInternalServerError, "assistant failed")
		return
	}

	respondJSON(w, http.StatusCreated, reply)
}

func (s *Server) handleClearMessages(w http.ResponseWriter, _ *http.Request) {
	s.store.ClearAssistantHistory()
	respondJSON(w, http.StatusOK, s.store.Messages())
}
