// Package viz defines the visualization request model and synthesizes
// ffmpeg filter graphs from it.
//
// The package is pure: given identical inputs, Synthesize always produces
// identical output and performs no I/O. All enum-like types are closed and
// come with parse constructors so that string matching stays at the CLI
// boundary instead of leaking through the pipeline.
package viz

import (
	"fmt"
	"strconv"
	"strings"
)

// Type selects which visualization(s) to render over the background.
type Type int

const (
	Waveform Type = iota // line-mode waveform plot
	Spectrum             // scrolling spectrogram
	Both                 // waveform and spectrogram stacked
)

// ParseType parses a visualization type from its CLI spelling.
// Accepted values: "wave", "waveform", "spec", "spectrum", "both".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "wave", "waveform":
		return Waveform, nil
	case "spectrum", "spec":
		return Spectrum, nil
	case "both":
		return Both, nil
	default:
		return 0, fmt.Errorf("unknown visualization type %q: use 'wave', 'spectrum', or 'both'", s)
	}
}

// String returns the canonical CLI spelling of the type.
func (t Type) String() string {
	switch t {
	case Waveform:
		return "wave"
	case Spectrum:
		return "spectrum"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Anchor names the placement mode of a visualization on the frame.
type Anchor int

const (
	Top Anchor = iota
	Bottom
	Left
	Right
	Center
	Custom // literal pixel coordinate, see Position.X/Y
)

// Position is a placement on the canonical frame. For every anchor except
// Custom the X and Y fields are ignored.
type Position struct {
	Anchor Anchor
	X, Y   int
}

// At returns a Custom position at the literal coordinate (x, y).
func At(x, y int) Position {
	return Position{Anchor: Custom, X: x, Y: y}
}

// ParsePosition parses a placement from its CLI spelling.
// Accepted values: "top", "bottom", "left", "right", "center", "xy(x,y)".
func ParsePosition(s string) (Position, error) {
	switch lower := strings.ToLower(s); lower {
	case "top":
		return Position{Anchor: Top}, nil
	case "bottom":
		return Position{Anchor: Bottom}, nil
	case "left":
		return Position{Anchor: Left}, nil
	case "right":
		return Position{Anchor: Right}, nil
	case "center":
		return Position{Anchor: Center}, nil
	default:
		if strings.HasPrefix(lower, "xy(") && strings.HasSuffix(lower, ")") {
			coords := strings.Split(lower[len("xy("):len(lower)-1], ",")
			if len(coords) != 2 {
				return Position{}, fmt.Errorf("invalid position format %q: use 'xy(x,y)'", s)
			}
			x, errX := strconv.Atoi(strings.TrimSpace(coords[0]))
			y, errY := strconv.Atoi(strings.TrimSpace(coords[1]))
			if errX != nil || errY != nil || x < 0 || y < 0 {
				return Position{}, fmt.Errorf("invalid coordinates in position %q", s)
			}
			return At(x, y), nil
		}
		return Position{}, fmt.Errorf("unknown position %q: use 'top', 'bottom', 'left', 'right', 'center', or 'xy(x,y)'", s)
	}
}

// String returns the canonical CLI spelling of the position.
func (p Position) String() string {
	switch p.Anchor {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	case Custom:
		return fmt.Sprintf("xy(%d,%d)", p.X, p.Y)
	default:
		return fmt.Sprintf("Anchor(%d)", int(p.Anchor))
	}
}

// ColorScheme is one of ffmpeg's built-in showspectrum palettes. The value
// is the palette name showspectrum expects.
type ColorScheme string

const (
	Rainbow  ColorScheme = "rainbow"
	Moreland ColorScheme = "moreland"
	Nebulae  ColorScheme = "nebulae"
	Fire     ColorScheme = "fire"
	Fiery    ColorScheme = "fiery"
	Fruit    ColorScheme = "fruit"
	Cool     ColorScheme = "cool"
	Magma    ColorScheme = "magma"
	Green    ColorScheme = "green"
	Viridis  ColorScheme = "viridis"
	Plasma   ColorScheme = "plasma"
	Cividis  ColorScheme = "cividis"
	Terrain  ColorScheme = "terrain"
)

// ColorSchemes returns all supported palettes in a stable order.
func ColorSchemes() []ColorScheme {
	return []ColorScheme{
		Rainbow, Moreland, Nebulae, Fire, Fiery, Fruit, Cool,
		Magma, Green, Viridis, Plasma, Cividis, Terrain,
	}
}

// ParseColorScheme parses a palette name, case-insensitively.
func ParseColorScheme(s string) (ColorScheme, error) {
	lower := strings.ToLower(s)
	for _, scheme := range ColorSchemes() {
		if lower == string(scheme) {
			return scheme, nil
		}
	}
	names := make([]string, 0, len(ColorSchemes()))
	for _, scheme := range ColorSchemes() {
		names = append(names, string(scheme))
	}
	return "", fmt.Errorf("unknown color scheme %q: use one of %s", s, strings.Join(names, ", "))
}

// Request describes one visualization job. It is constructed once from
// resolved options and never mutated afterwards.
//
// Width and Height must be positive; Margin may be zero.
type Request struct {
	Type        Type
	Position    Position
	ColorScheme ColorScheme
	Width       int
	Height      int
	Margin      int
}

// Validate checks the Request geometry invariants.
func (r Request) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("visualization size must be positive, got %dx%d", r.Width, r.Height)
	}
	if r.Margin < 0 {
		return fmt.Errorf("margin cannot be negative, got %d", r.Margin)
	}
	return nil
}
