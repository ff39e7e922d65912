package http

import (
	"net/http"

	"finconnect/internal/core"
)

const statsCacheKey = "dashboard"

func (s *Server) handleDashboardStats(w http.ResponseWriter, _ *http.Request) {
	if stats, ok := s.statsCache.Get(statsCacheKey); ok {
		respondJSON(w, http.StatusOK, stats)
		return
	}

	stats := s.store.DashboardStats()
	s.statsCache.Set(statsCacheKey, stats)
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 5)
	activity := s.store.RecentActivity(limit)
	if activity == nil {
		activity = []core.SpendingEntry{}
	}
	respondJSON(w, http.StatusOK, activity)
}

func (s *Server) handleProjectSpends(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ProjectSpends())
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, core.SpendingCategories)
}

func (s *Server) handleCurrencies(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, core.Currencies)
}
