// Package viewer owns the lifecycle of the molecule rendering surface: it
// feeds resolved structures to the surface, applies user view preferences,
// and guarantees the surface and any registered listeners are released on
// teardown.
package viewer

import (
	"sync"

	"molecuview/internal/chem"
)

// RenderSurface is the rendering backend the controller drives. The
// production implementation is the Hub, which relays these calls to the
// browser stage over an event stream; tests substitute a fake.
type RenderSurface interface {
	// LoadStructure parses and displays an SDF payload.
	LoadStructure(sdf string) error
	// ClearAll removes every rendered component.
	ClearAll()
	// SetRepresentation re-renders the current structure with the style.
	SetRepresentation(style Style)
	// SetSpin starts or stops continuous rotation.
	SetSpin(enabled bool)
	// AutoView frames the camera on the current structure.
	AutoView()
	// SetFullscreen enters or exits fullscreen for the viewer container.
	SetFullscreen(active bool)
	// HandleResize adapts the surface to a changed container size.
	HandleResize()
	// Dispose releases the surface.
	Dispose()
}

// ResizeNotifier delivers container-resize events. Subscribe returns a
// cancel func that detaches the listener.
type ResizeNotifier interface {
	Subscribe(fn func()) (cancel func())
}

// Controller binds one RenderSurface to the current molecule and the
// process-wide view preferences.
type Controller struct {
	surface RenderSurface

	mu           sync.Mutex
	prefs        Preferences
	hasStructure bool
	closed       bool
	unsubscribe  func()
}

// NewController creates a Controller bound to the surface and registers a
// resize listener. resize may be nil when the surface handles its own
// sizing.
func NewController(surface RenderSurface, resize ResizeNotifier) *Controller {
	c := &Controller{
		surface: surface,
		prefs:   DefaultPreferences(),
	}
	if resize != nil {
		c.unsubscribe = resize.Subscribe(c.onResize)
	}
	return c
}

func (c *Controller) onResize() {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if !closed {
		c.surface.HandleResize()
	}
}

// ShowMolecule replaces the rendered structure. All previously rendered
// content is cleared before the new payload loads, the camera auto-frames,
// and the current style and spin settings are re-applied.
func (c *Controller) ShowMolecule(mol *chem.Molecule) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.surface.ClearAll()
	c.hasStructure = false
	if err := c.surface.LoadStructure(mol.SDF); err != nil {
		return err
	}
	c.hasStructure = true
	c.surface.SetRepresentation(c.prefs.Style)
	c.surface.AutoView()
	c.surface.SetSpin(c.prefs.Spin)
	return nil
}

// Preferences returns a snapshot of the current view preferences.
func (c *Controller) Preferences() Preferences {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefs
}

// SetStyle switches the representation. The current structure is
// re-rendered in place; no data is refetched.
func (c *Controller) SetStyle(style Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefs.Style = style
	if c.hasStructure {
		c.surface.SetRepresentation(style)
	}
}

// SetSpin toggles continuous rotation, independent of data loads.
func (c *Controller) SetSpin(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefs.Spin = enabled
	c.surface.SetSpin(enabled)
}

// SetFullscreen requests the platform fullscreen change.
func (c *Controller) SetFullscreen(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prefs.Fullscreen == active {
		return
	}
	c.prefs.Fullscreen = active
	c.surface.SetFullscreen(active)
}

// SyncFullscreen records a fullscreen change that originated from the
// platform (for example the user pressing Escape), without echoing the
// change back to the surface.
func (c *Controller) SyncFullscreen(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefs.Fullscreen = active
}

// Close releases the surface and detaches the resize listener. It is safe
// to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	unsubscribe := c.unsubscribe
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	c.surface.Dispose()
}
