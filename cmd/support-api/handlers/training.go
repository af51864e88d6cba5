package handlers

import (
	"net/http"

	"github.com/stylebot-ai/support-engine/internal/chat"
	"github.com/stylebot-ai/support-engine/internal/config"
	"github.com/stylebot-ai/support-engine/internal/observability"
	"github.com/stylebot-ai/support-engine/internal/tabular"
)

// TrainingHandler exposes training status and retraining.
type TrainingHandler struct {
	logger  *observability.Logger
	service *chat.Service
	dataCfg config.DataConfig
}

// NewTrainingHandler creates a training handler.
func NewTrainingHandler(logger *observability.Logger, service *chat.Service, dataCfg config.DataConfig) *TrainingHandler {
	return &TrainingHandler{logger: logger, service: service, dataCfg: dataCfg}
}

// Status handles GET /api/training/status.
func (h *TrainingHandler) Status(w http.ResponseWriter, r *http.Request) {
	result := h.service.TrainingResult()
	writeJSON(w, http.StatusOK, result)
}

// Retrain handles POST /api/training/retrain. It reloads the data
// source and swaps in the freshly trained knowledge; in-flight chat
// requests keep the old snapshot until the swap completes.
func (h *TrainingHandler) Retrain(w http.ResponseWriter, r *http.Request) {
	h.logger.WithContext(r.Context()).Info().Msg("Retrain requested")

	store := tabular.Open(r.Context(), h.dataCfg, h.logger)
	result := h.service.Retrain(store)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   result.Success,
		"synthetic": store.Synthetic,
		"summary":   result.Summary,
	})
}

// Knowledge handles GET /api/training/knowledge.
func (h *TrainingHandler) Knowledge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Knowledge())
}

// Scenarios handles GET /api/training/scenarios.
func (h *TrainingHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	k := h.service.Knowledge()
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(k.Scenarios),
		"scenarios": k.Scenarios,
	})
}
