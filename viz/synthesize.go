package viz

import "fmt"

// Canonical output frame. The background is always scaled and padded into
// this frame; overlay coordinates are expressed relative to it.
const (
	FrameWidth  = 1280
	FrameHeight = 720
)

// bgFilter scales the background to the canonical frame, preserving aspect
// ratio and centering with padding.
const bgFilter = "[0:v]scale=1280:720:force_original_aspect_ratio=decrease,pad=1280:720:(ow-iw)/2:(oh-ih)/2[bg]"

// Orientation of a spectrogram pane.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns "horizontal" or "vertical".
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// FilterGraph is a synthesized filter_complex expression together with the
// geometry that was used to build it. Derived deterministically from a
// Request and never mutated after construction.
type FilterGraph struct {
	// Complex is the full filter_complex argument for the engine.
	Complex string

	// Spectrogram geometry. Zero for waveform-only graphs.
	SpecWidth, SpecHeight int
	Orientation           Orientation

	// Overlays holds the overlay coordinate expressions in composite
	// order: one entry for a single visualization, two (waveform then
	// spectrum) for Both.
	Overlays []string
}

// SpectrumParams derives the spectrogram pane geometry from the placement.
// Left and Right placements render a vertical spectrogram with the axes
// swapped; every other placement renders horizontally with the size
// unchanged.
func SpectrumParams(pos Position, width, height int) (w, h int, orient Orientation) {
	switch pos.Anchor {
	case Left, Right:
		return height, width, Vertical
	default:
		return width, height, Horizontal
	}
}

// OverlayExpr returns the overlay coordinate expression for a single
// visualization at the given placement. The expression is relative (W, w,
// H, h are substituted by the engine) so it holds for any element size.
func OverlayExpr(pos Position, margin int) string {
	switch pos.Anchor {
	case Top:
		return fmt.Sprintf("x=(W-w)/2:y=%d", margin)
	case Bottom:
		return fmt.Sprintf("x=(W-w)/2:y=H-h-%d", margin)
	case Left:
		return fmt.Sprintf("x=%d:y=(H-h)/2", margin)
	case Right:
		return fmt.Sprintf("x=W-w-%d:y=(H-h)/2", margin)
	case Custom:
		return fmt.Sprintf("x=%d:y=%d", pos.X, pos.Y)
	default: // Center
		return "x=(W-w)/2:y=(H-h)/2"
	}
}

// spectrumArgs builds the showspectrum parameter string. The analysis band
// is fixed at 100-10000 Hz for visual density at typical music content.
func spectrumArgs(scheme ColorScheme, width, height int, orient Orientation) string {
	orientFlag := "0"
	if orient == Vertical {
		orientFlag = "1"
	}
	return fmt.Sprintf(
		"s=%dx%d:mode=combined:scale=cbrt:slide=scroll:fscale=lin:win_func=hamming:overlap=0:fps=auto:start=100:stop=10000:orientation=%s:color=%s",
		width, height, orientFlag, scheme)
}

// waveFilter renders a mono line-mode waveform of the given size.
func waveFilter(width, height int) string {
	return fmt.Sprintf("[1:a]aformat=channel_layouts=mono,showwaves=s=%dx%d:mode=line:rate=25:colors=white[wave]", width, height)
}

// Synthesize maps a Request to its filter graph. It is total: every valid
// Request produces a graph, there is no failure path.
func Synthesize(req Request) FilterGraph {
	switch req.Type {
	case Spectrum:
		specW, specH, orient := SpectrumParams(req.Position, req.Width, req.Height)
		overlay := OverlayExpr(req.Position, req.Margin)
		return FilterGraph{
			Complex: fmt.Sprintf("%s; [1:a]aformat=channel_layouts=mono,showspectrum=%s[spec]; [bg][spec]overlay=%s",
				bgFilter, spectrumArgs(req.ColorScheme, specW, specH, orient), overlay),
			SpecWidth:   specW,
			SpecHeight:  specH,
			Orientation: orient,
			Overlays:    []string{overlay},
		}

	case Both:
		return synthesizeBoth(req)

	default: // Waveform
		overlay := OverlayExpr(req.Position, req.Margin)
		return FilterGraph{
			Complex:  fmt.Sprintf("%s; %s; [bg][wave]overlay=%s", bgFilter, waveFilter(req.Width, req.Height), overlay),
			Overlays: []string{overlay},
		}
	}
}

// synthesizeBoth splits the available extent evenly between a waveform
// pane and a spectrum pane, separated by a gap of half the margin, and
// places the pair according to the anchor.
func synthesizeBoth(req Request) FilterGraph {
	gap := req.Margin / 2

	// Along the stacking axis each pane gets half the requested extent.
	var paneExtent int
	switch req.Position.Anchor {
	case Left, Right:
		paneExtent = req.Width / 2
	default:
		paneExtent = req.Height / 2
	}

	specW, specH, orient := SpectrumParams(req.Position, req.Width, paneExtent)

	var wavePos, specPos string
	switch req.Position.Anchor {
	case Bottom:
		// Spectrum flush to the bottom margin, waveform stacked above it.
		wavePos = fmt.Sprintf("x=(W-w)/2:y=H-h-%d-%d", specH+gap, req.Margin)
		specPos = fmt.Sprintf("x=(W-w)/2:y=H-h-%d", req.Margin)
	case Top:
		wavePos = fmt.Sprintf("x=(W-w)/2:y=%d", req.Margin)
		specPos = fmt.Sprintf("x=(W-w)/2:y=%d+%d", paneExtent+gap+req.Margin, req.Margin)
	case Left:
		wavePos = fmt.Sprintf("x=%d:y=(H-h)/2", req.Margin)
		specPos = fmt.Sprintf("x=%d+%d:y=(H-h)/2", paneExtent+gap+req.Margin, req.Margin)
	case Right:
		wavePos = fmt.Sprintf("x=W-w-%d-%d:y=(H-h)/2", specW+gap, req.Margin)
		specPos = fmt.Sprintf("x=W-w-%d:y=(H-h)/2", req.Margin)
	case Custom:
		wavePos = fmt.Sprintf("x=%d:y=%d", req.Position.X, req.Position.Y)
		specPos = fmt.Sprintf("x=%d:y=%d+%d", req.Position.X, req.Position.Y+paneExtent, gap)
	default: // Center: pair offset symmetrically around the midpoint
		wavePos = fmt.Sprintf("x=(W-w)/2:y=(H-h)/2-%d", paneExtent/2+gap/2)
		specPos = fmt.Sprintf("x=(W-w)/2:y=(H-h)/2+%d", gap/2)
	}

	return FilterGraph{
		Complex: fmt.Sprintf("%s; %s; [1:a]aformat=channel_layouts=mono,showspectrum=%s[spec]; [bg][wave]overlay=%s[tmp]; [tmp][spec]overlay=%s",
			bgFilter, waveFilter(req.Width, paneExtent),
			spectrumArgs(req.ColorScheme, specW, specH, orient), wavePos, specPos),
		SpecWidth:   specW,
		SpecHeight:  specH,
		Orientation: orient,
		Overlays:    []string{wavePos, specPos},
	}
}
