package handler

import (
	"net/http"
)

// HealthHandler обрабатывает health check
type HealthHandler struct{}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check обрабатывает GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
