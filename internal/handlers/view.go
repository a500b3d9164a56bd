package handlers

import (
	"encoding/json"
	"net/http"

	"molecuview/internal/contextutil"
	"molecuview/internal/viewer"
)

// ViewHandler exposes the viewer controller's preferences over HTTP.
type ViewHandler struct {
	controller *viewer.Controller
	hub        *viewer.Hub
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(controller *viewer.Controller, hub *viewer.Hub) *ViewHandler {
	return &ViewHandler{controller: controller, hub: hub}
}

// ViewRequest represents a preferences update. Absent fields are left
// unchanged.
type ViewRequest struct {
	Style      *string `json:"style,omitempty"`
	Spin       *bool   `json:"spin,omitempty"`
	Fullscreen *bool   `json:"fullscreen,omitempty"`
}

// ViewResponse represents the current preferences.
type ViewResponse struct {
	Style      string `json:"style"`
	Spin       bool   `json:"spin"`
	Fullscreen bool   `json:"fullscreen"`
}

func (h *ViewHandler) writePrefs(w http.ResponseWriter) {
	prefs := h.controller.Preferences()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ViewResponse{
		Style:      string(prefs.Style),
		Spin:       prefs.Spin,
		Fullscreen: prefs.Fullscreen,
	})
}

// Get returns the current view preferences.
func (h *ViewHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writePrefs(w)
}

// Update applies a preferences change. A style change re-renders the
// loaded structure without refetching anything.
func (h *ViewHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Style != nil {
		style, err := viewer.ParseStyle(*req.Style)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.controller.SetStyle(style)
	}
	if req.Spin != nil {
		h.controller.SetSpin(*req.Spin)
	}
	if req.Fullscreen != nil {
		h.controller.SetFullscreen(*req.Fullscreen)
	}

	h.writePrefs(w)
}

// FullscreenSyncRequest reports a platform-originated fullscreen change.
type FullscreenSyncRequest struct {
	Fullscreen bool `json:"fullscreen"`
}

// SyncFullscreen records a fullscreen change that the platform already
// applied, such as the user exiting with a shortcut.
func (h *ViewHandler) SyncFullscreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req FullscreenSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.controller.SyncFullscreen(req.Fullscreen)
	h.writePrefs(w)
}

// NotifyResize reports a viewer container resize.
func (h *ViewHandler) NotifyResize(w http.ResponseWriter, r *http.Request) {
	h.hub.NotifyResize()
	w.WriteHeader(http.StatusNoContent)
}
