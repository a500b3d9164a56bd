package viewer

import "fmt"

// Style is a molecular representation applied by the rendering surface.
// It affects rendering only, never the underlying structure data.
type Style string

const (
	StyleBallAndStick Style = "ball+stick"
	StyleSpacefill    Style = "spacefill"
	StyleLicorice     Style = "licorice"
	StyleCartoon      Style = "cartoon"
)

// ParseStyle validates a style name from user input.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleBallAndStick, StyleSpacefill, StyleLicorice, StyleCartoon:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown display style %q", s)
	}
}

// Preferences holds the user-driven view settings. They are process-wide
// and outlive any single search.
type Preferences struct {
	Style      Style `json:"style"`
	Spin       bool  `json:"spin"`
	Fullscreen bool  `json:"fullscreen"`
}

// DefaultPreferences matches the viewer's initial state: ball-and-stick,
// spinning, windowed.
func DefaultPreferences() Preferences {
	return Preferences{Style: StyleBallAndStick, Spin: true}
}
