package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"molecuview/internal/contextutil"
	"molecuview/internal/storage"
)

// HistoryHandler serves the recent-searches list.
type HistoryHandler struct {
	store storage.HistoryStore
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store storage.HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// HistoryEntryResponse is one recorded search.
type HistoryEntryResponse struct {
	ID            string `json:"id"`
	Query         string `json:"query"`
	CorrectedFrom string `json:"correctedFrom,omitempty"`
	CID           int    `json:"cid,omitempty"`
	Name          string `json:"name,omitempty"`
	Outcome       string `json:"outcome"`
	Detail        string `json:"detail,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// HistoryResponse is the recent-searches listing, newest first.
type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

// ServeHTTP handles GET /api/history?limit=N.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.store.Recent(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load search history", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load search history")
		return
	}

	resp := HistoryResponse{Entries: make([]HistoryEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, HistoryEntryResponse{
			ID:            entry.ID,
			Query:         entry.Query,
			CorrectedFrom: entry.CorrectedFrom,
			CID:           entry.CID,
			Name:          entry.Name,
			Outcome:       entry.Outcome,
			Detail:        entry.Detail,
			CreatedAt:     entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode history response", "error", err)
	}
}
