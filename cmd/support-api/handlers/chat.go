// Package handlers provides HTTP handlers for the support API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stylebot-ai/support-engine/internal/cache"
	"github.com/stylebot-ai/support-engine/internal/chat"
	"github.com/stylebot-ai/support-engine/internal/observability"
)

// ChatHandler handles conversation requests.
type ChatHandler struct {
	logger     *observability.Logger
	service    *chat.Service
	sessions   cache.Client
	sessionTTL time.Duration
}

// NewChatHandler creates a chat handler.
func NewChatHandler(logger *observability.Logger, service *chat.Service, sessions cache.Client, sessionTTL time.Duration) *ChatHandler {
	return &ChatHandler{
		logger:     logger,
		service:    service,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// ChatRequestDTO is the incoming message payload.
type ChatRequestDTO struct {
	Message   string         `json:"message"`
	SessionID string         `json:"session_id,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
}

// ChatResponseDTO wraps the classifier output with session bookkeeping.
type ChatResponseDTO struct {
	Message      string        `json:"message"`
	SessionID    string        `json:"session_id"`
	Timestamp    time.Time     `json:"timestamp"`
	Suggestions  []string      `json:"suggestions"`
	QuickReplies []string      `json:"quick_replies"`
	Metadata     chat.Metadata `json:"metadata"`
}

// sessionRecord is the cached per-session conversation trace.
type sessionRecord struct {
	SessionID string        `json:"session_id"`
	CreatedAt time.Time     `json:"created_at"`
	Turns     []sessionTurn `json:"turns"`
}

type sessionTurn struct {
	UserMessage string    `json:"user_message"`
	BotMessage  string    `json:"bot_message"`
	IntentTag   string    `json:"intent_tag"`
	At          time.Time `json:"at"`
}

// Message handles POST /api/chat.
func (h *ChatHandler) Message(w http.ResponseWriter, r *http.Request) {
	var req ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	resp := h.service.Classify(req.Message, req.Context)
	now := time.Now().UTC()

	h.recordTurn(r, sessionID, req.Message, resp, now)

	writeJSON(w, http.StatusOK, ChatResponseDTO{
		Message:      resp.Text,
		SessionID:    sessionID,
		Timestamp:    now,
		Suggestions:  resp.Suggestions,
		QuickReplies: resp.QuickReplies,
		Metadata:     resp.Metadata,
	})
}

// Welcome handles GET /api/chat/welcome.
func (h *ChatHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	resp := h.service.Welcome()
	writeJSON(w, http.StatusOK, ChatResponseDTO{
		Message:      resp.Text,
		SessionID:    sessionID,
		Timestamp:    time.Now().UTC(),
		Suggestions:  resp.Suggestions,
		QuickReplies: resp.QuickReplies,
		Metadata:     resp.Metadata,
	})
}

// recordTurn appends the exchange to the cached session trace.
// Session storage is best-effort; a cache failure never fails the
// request.
func (h *ChatHandler) recordTurn(r *http.Request, sessionID, userMessage string, resp chat.Response, at time.Time) {
	key := cache.Key("session", sessionID)

	record := sessionRecord{SessionID: sessionID, CreatedAt: at}
	data, err := h.sessions.Get(r.Context(), key)
	if err == nil {
		_ = json.Unmarshal(data, &record)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Session lookup failed")
	}

	record.Turns = append(record.Turns, sessionTurn{
		UserMessage: userMessage,
		BotMessage:  resp.Text,
		IntentTag:   resp.IntentTag,
		At:          at,
	})

	encoded, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := h.sessions.Set(r.Context(), key, encoded, h.sessionTTL); err != nil {
		h.logger.Warn().Err(err).Str("session_id", sessionID).Msg("Session store failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
