package viewer

import (
	"errors"
	"reflect"
	"testing"

	"molecuview/internal/chem"
)

// fakeSurface records render calls in order.
type fakeSurface struct {
	calls     []string
	loadErr   error
	lastStyle Style
	lastSpin  bool
	disposed  int
}

func (s *fakeSurface) LoadStructure(sdf string) error {
	s.calls = append(s.calls, "load")
	return s.loadErr
}
func (s *fakeSurface) ClearAll()  { s.calls = append(s.calls, "clear") }
func (s *fakeSurface) AutoView()  { s.calls = append(s.calls, "autoview") }
func (s *fakeSurface) Dispose()   { s.calls = append(s.calls, "dispose"); s.disposed++ }
func (s *fakeSurface) HandleResize() {
	s.calls = append(s.calls, "resize")
}
func (s *fakeSurface) SetRepresentation(style Style) {
	s.calls = append(s.calls, "style")
	s.lastStyle = style
}
func (s *fakeSurface) SetSpin(enabled bool) {
	s.calls = append(s.calls, "spin")
	s.lastSpin = enabled
}
func (s *fakeSurface) SetFullscreen(active bool) {
	s.calls = append(s.calls, "fullscreen")
}

// fakeNotifier hands out a single resize subscription.
type fakeNotifier struct {
	fn        func()
	cancelled bool
}

func (n *fakeNotifier) Subscribe(fn func()) func() {
	n.fn = fn
	return func() { n.cancelled = true }
}

func TestController_ShowMolecule(t *testing.T) {
	surface := &fakeSurface{}
	controller := NewController(surface, nil)

	mol := &chem.Molecule{CID: 2519, Name: "Caffeine", SDF: "sdf payload"}
	if err := controller.ShowMolecule(mol); err != nil {
		t.Fatalf("ShowMolecule() unexpected error: %v", err)
	}

	// Prior geometry is cleared before the new structure loads; the camera
	// frames the structure and the spin preference is re-applied.
	want := []string{"clear", "load", "style", "autoview", "spin"}
	if !reflect.DeepEqual(surface.calls, want) {
		t.Errorf("surface calls = %v, want %v", surface.calls, want)
	}
	if surface.lastStyle != StyleBallAndStick {
		t.Errorf("style = %v, want default ball+stick", surface.lastStyle)
	}
	if !surface.lastSpin {
		t.Error("spin should default to enabled")
	}
}

func TestController_ShowMolecule_LoadError(t *testing.T) {
	surface := &fakeSurface{loadErr: errors.New("parse failed")}
	controller := NewController(surface, nil)

	err := controller.ShowMolecule(&chem.Molecule{SDF: "bad"})
	if err == nil {
		t.Fatal("ShowMolecule() expected error")
	}

	// No structure is considered loaded, so a style change must not try to
	// re-render.
	surface.calls = nil
	controller.SetStyle(StyleSpacefill)
	if len(surface.calls) != 0 {
		t.Errorf("surface calls after failed load = %v, want none", surface.calls)
	}
}

func TestController_SetStyle_ReRendersWithoutReload(t *testing.T) {
	surface := &fakeSurface{}
	controller := NewController(surface, nil)

	if err := controller.ShowMolecule(&chem.Molecule{SDF: "sdf"}); err != nil {
		t.Fatalf("ShowMolecule() unexpected error: %v", err)
	}

	surface.calls = nil
	controller.SetStyle(StyleLicorice)

	// Only a representation change: no clear, no load.
	if !reflect.DeepEqual(surface.calls, []string{"style"}) {
		t.Errorf("surface calls = %v, want [style]", surface.calls)
	}
	if surface.lastStyle != StyleLicorice {
		t.Errorf("style = %v, want licorice", surface.lastStyle)
	}
	if controller.Preferences().Style != StyleLicorice {
		t.Errorf("preferences style = %v, want licorice", controller.Preferences().Style)
	}
}

func TestController_SetSpin(t *testing.T) {
	surface := &fakeSurface{}
	controller := NewController(surface, nil)

	controller.SetSpin(false)
	if surface.lastSpin {
		t.Error("SetSpin(false) not forwarded to the surface")
	}
	if controller.Preferences().Spin {
		t.Error("preferences spin should be false")
	}
}

func TestController_Fullscreen(t *testing.T) {
	surface := &fakeSurface{}
	controller := NewController(surface, nil)

	controller.SetFullscreen(true)
	if !controller.Preferences().Fullscreen {
		t.Error("SetFullscreen(true) not recorded")
	}
	if !reflect.DeepEqual(surface.calls, []string{"fullscreen"}) {
		t.Errorf("surface calls = %v, want [fullscreen]", surface.calls)
	}

	// Setting the same value again is a no-op.
	surface.calls = nil
	controller.SetFullscreen(true)
	if len(surface.calls) != 0 {
		t.Errorf("surface calls = %v, want none", surface.calls)
	}

	// A platform-originated exit updates state without echoing back.
	controller.SyncFullscreen(false)
	if controller.Preferences().Fullscreen {
		t.Error("SyncFullscreen(false) not recorded")
	}
	if len(surface.calls) != 0 {
		t.Errorf("SyncFullscreen must not call the surface, got %v", surface.calls)
	}
}

func TestController_ResizeListenerLifecycle(t *testing.T) {
	surface := &fakeSurface{}
	notifier := &fakeNotifier{}
	controller := NewController(surface, notifier)

	if notifier.fn == nil {
		t.Fatal("controller did not subscribe to resize events")
	}

	notifier.fn()
	if !reflect.DeepEqual(surface.calls, []string{"resize"}) {
		t.Errorf("surface calls = %v, want [resize]", surface.calls)
	}

	controller.Close()
	if !notifier.cancelled {
		t.Error("Close() did not detach the resize listener")
	}
	if surface.disposed != 1 {
		t.Errorf("Close() disposed the surface %d times, want 1", surface.disposed)
	}

	// Late resize events after Close are ignored.
	surface.calls = nil
	notifier.fn()
	if len(surface.calls) != 0 {
		t.Errorf("surface calls after Close = %v, want none", surface.calls)
	}
}

func TestController_CloseIsIdempotent(t *testing.T) {
	surface := &fakeSurface{}
	controller := NewController(surface, &fakeNotifier{})

	controller.Close()
	controller.Close()
	if surface.disposed != 1 {
		t.Errorf("surface disposed %d times, want 1", surface.disposed)
	}
}

func TestParseStyle(t *testing.T) {
	for _, valid := range []string{"ball+stick", "spacefill", "licorice", "cartoon"} {
		if _, err := ParseStyle(valid); err != nil {
			t.Errorf("ParseStyle(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseStyle("wireframe"); err == nil {
		t.Error("ParseStyle(wireframe) expected error")
	}
}
