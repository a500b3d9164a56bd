package viewer

import "sync"

// Command is one render instruction relayed to attached viewer pages.
type Command struct {
	Op      string `json:"op"`
	SDF     string `json:"sdf,omitempty"`
	Style   Style  `json:"style,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`
}

// Render operations understood by the viewer page.
const (
	OpClear      = "clear"
	OpLoad       = "load"
	OpStyle      = "style"
	OpSpin       = "spin"
	OpAutoView   = "autoview"
	OpFullscreen = "fullscreen"
	OpResize     = "resize"
)

// subscriber buffer; slow consumers drop commands rather than block the
// search path.
const commandBuffer = 16

// Hub is the production RenderSurface: it broadcasts render commands to
// every attached viewer page over an event stream, and fans container
// resize pings back out to ResizeNotifier subscribers.
type Hub struct {
	mu        sync.Mutex
	subs      map[chan Command]struct{}
	resizeFns map[int]func()
	nextID    int
	disposed  bool
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		subs:      make(map[chan Command]struct{}),
		resizeFns: make(map[int]func()),
	}
}

// Attach registers a viewer page connection. The returned channel receives
// render commands until detach is called or the hub is disposed.
func (h *Hub) Attach() (<-chan Command, func()) {
	ch := make(chan Command, commandBuffer)

	h.mu.Lock()
	if h.disposed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	detach := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, detach
}

func (h *Hub) broadcast(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- cmd:
		default:
			// Drop for slow consumers.
		}
	}
}

// LoadStructure implements RenderSurface.
func (h *Hub) LoadStructure(sdf string) error {
	h.broadcast(Command{Op: OpLoad, SDF: sdf})
	return nil
}

// ClearAll implements RenderSurface.
func (h *Hub) ClearAll() {
	h.broadcast(Command{Op: OpClear})
}

// SetRepresentation implements RenderSurface.
func (h *Hub) SetRepresentation(style Style) {
	h.broadcast(Command{Op: OpStyle, Style: style})
}

// SetSpin implements RenderSurface.
func (h *Hub) SetSpin(enabled bool) {
	h.broadcast(Command{Op: OpSpin, Enabled: enabled})
}

// AutoView implements RenderSurface.
func (h *Hub) AutoView() {
	h.broadcast(Command{Op: OpAutoView})
}

// SetFullscreen implements RenderSurface.
func (h *Hub) SetFullscreen(active bool) {
	h.broadcast(Command{Op: OpFullscreen, Enabled: active})
}

// HandleResize implements RenderSurface.
func (h *Hub) HandleResize() {
	h.broadcast(Command{Op: OpResize})
}

// Dispose implements RenderSurface. All attached connections are closed
// and later Attach calls get a closed channel.
func (h *Hub) Dispose() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.disposed {
		return
	}
	h.disposed = true
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}

// Subscribe implements ResizeNotifier.
func (h *Hub) Subscribe(fn func()) (cancel func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.resizeFns[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.resizeFns, id)
		h.mu.Unlock()
	}
}

// NotifyResize reports a container resize from a viewer page.
func (h *Hub) NotifyResize() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.resizeFns))
	for _, fn := range h.resizeFns {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
