package handlers

import (
	"net/http"

	"github.com/stylebot-ai/support-engine/internal/cache"
	"github.com/stylebot-ai/support-engine/internal/chat"
	"github.com/stylebot-ai/support-engine/internal/observability"
)

// HealthHandler exposes liveness and readiness checks.
type HealthHandler struct {
	logger   *observability.Logger
	service  *chat.Service
	sessions cache.Client
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(logger *observability.Logger, service *chat.Service, sessions cache.Client) *HealthHandler {
	return &HealthHandler{logger: logger, service: service, sessions: sessions}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "support-engine",
	})
}

// Detailed handles GET /health/detailed.
func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	cacheStatus := "healthy"
	if err := h.sessions.Ping(r.Context()); err != nil {
		cacheStatus = "unavailable"
	}

	store := h.service.Store()
	result := h.service.TrainingResult()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"service":        "support-engine",
		"cache":          cacheStatus,
		"data_synthetic": store.Synthetic,
		"row_counts":     store.RowCounts(),
		"training": map[string]any{
			"success":       result.Success,
			"steps_run":     result.StepsRun,
			"steps_skipped": result.StepsSkipped,
		},
	})
}
