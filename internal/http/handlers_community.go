package http

import (
	"net/http"
	"strings"

	"finconnect/internal/core"
)

type postRequest struct {
	Content    string `json:"content"`
	ProjectTag string `json:"project_tag,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}

type reactionRequest struct {
	Type string `json:"type"`
}

type commentRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleListPosts(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Posts())
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p := core.CommunityPost{
		Content:    sanitizeInput(req.Content),
		ProjectTag: sanitizeInput(req.ProjectTag),
		ImageURL:   sanitizeInput(req.ImageURL),
	}
	if err := p.Validate(); err != nil {
		respondError(w, validationStatus(err), err.Error())
		return
	}

	created := s.store.CreatePost(p)
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleReactToPost(w http.ResponseWriter, r *http.Request) {
	var req reactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reaction := strings.TrimSpace(req.Type)
	if reaction == "" {
		respondError(w, http.StatusUnprocessableEntity, "reaction type is required")
		return
	}

	id := r.PathValue("id")
	if !s.store.ReactToPost(id, reaction) {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}

	post, _ := s.store.Post(id)
	respondJSON(w, http.StatusOK, post)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	content := sanitizeInput(req.Content)
	if content == "" {
		respondError(w, http.StatusUnprocessableEntity, "comment content is required")
		return
	}

	comment, ok := s.store.AddComment(r.PathValue("id"), content)
	if !ok {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}

	respondJSON(w, http.StatusCreated, comment)
}
