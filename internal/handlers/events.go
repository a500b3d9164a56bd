package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"molecuview/internal/contextutil"
	"molecuview/internal/viewer"
)

// EventsHandler streams render commands to viewer pages as Server-Sent
// Events. Each connected page mirrors the controller-driven surface.
type EventsHandler struct {
	hub *viewer.Hub
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(hub *viewer.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// ServeHTTP attaches the connection to the hub and relays commands until
// the client disconnects or the hub is disposed.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	commands, detach := h.hub.Attach()
	defer detach()
	logger.DebugContext(ctx, "viewer page attached")

	for {
		select {
		case <-ctx.Done():
			logger.DebugContext(ctx, "viewer page detached")
			return
		case cmd, open := <-commands:
			if !open {
				return
			}
			payload, err := json.Marshal(cmd)
			if err != nil {
				logger.ErrorContext(ctx, "failed to encode render command", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
