package viz

import (
	"strings"
	"testing"
)

func TestOverlayExpr(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		margin int
		want   string
	}{
		{"top", Position{Anchor: Top}, 10, "x=(W-w)/2:y=10"},
		{"bottom", Position{Anchor: Bottom}, 10, "x=(W-w)/2:y=H-h-10"},
		{"left", Position{Anchor: Left}, 10, "x=10:y=(H-h)/2"},
		{"right", Position{Anchor: Right}, 10, "x=W-w-10:y=(H-h)/2"},
		{"center", Position{Anchor: Center}, 10, "x=(W-w)/2:y=(H-h)/2"},
		{"custom", At(5, 5), 10, "x=5:y=5"},
		{"zero margin bottom", Position{Anchor: Bottom}, 0, "x=(W-w)/2:y=H-h-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlayExpr(tt.pos, tt.margin); got != tt.want {
				t.Errorf("OverlayExpr(%v, %d) = %q; want %q", tt.pos, tt.margin, got, tt.want)
			}
		})
	}
}

func TestSpectrumParams(t *testing.T) {
	tests := []struct {
		name       string
		pos        Position
		w, h       int
		wantW      int
		wantH      int
		wantOrient Orientation
	}{
		{"left swaps axes", Position{Anchor: Left}, 100, 200, 200, 100, Vertical},
		{"right swaps axes", Position{Anchor: Right}, 100, 200, 200, 100, Vertical},
		{"top unchanged", Position{Anchor: Top}, 100, 200, 100, 200, Horizontal},
		{"bottom unchanged", Position{Anchor: Bottom}, 100, 200, 100, 200, Horizontal},
		{"center unchanged", Position{Anchor: Center}, 100, 200, 100, 200, Horizontal},
		{"custom unchanged", At(3, 4), 100, 200, 100, 200, Horizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, orient := SpectrumParams(tt.pos, tt.w, tt.h)
			if w != tt.wantW || h != tt.wantH || orient != tt.wantOrient {
				t.Errorf("SpectrumParams(%v, %d, %d) = (%d, %d, %v); want (%d, %d, %v)",
					tt.pos, tt.w, tt.h, w, h, orient, tt.wantW, tt.wantH, tt.wantOrient)
			}
		})
	}
}

func TestSynthesizeWaveform(t *testing.T) {
	req := Request{
		Type:        Waveform,
		Position:    Position{Anchor: Bottom},
		ColorScheme: Viridis,
		Width:       1280,
		Height:      180,
		Margin:      50,
	}

	graph := Synthesize(req)

	if !strings.Contains(graph.Complex, "showwaves=s=1280x180:mode=line:rate=25:colors=white") {
		t.Errorf("waveform filter missing or wrong: %s", graph.Complex)
	}
	if strings.Contains(graph.Complex, "showspectrum") {
		t.Error("waveform-only graph should not contain a spectrum filter")
	}
	if !strings.HasPrefix(graph.Complex, "[0:v]scale=1280:720:force_original_aspect_ratio=decrease,pad=1280:720:(ow-iw)/2:(oh-ih)/2[bg]") {
		t.Errorf("background scaling chain missing: %s", graph.Complex)
	}
	if len(graph.Overlays) != 1 || graph.Overlays[0] != "x=(W-w)/2:y=H-h-50" {
		t.Errorf("unexpected overlays: %v", graph.Overlays)
	}
}

func TestSynthesizeSpectrum(t *testing.T) {
	req := Request{
		Type:        Spectrum,
		Position:    Position{Anchor: Left},
		ColorScheme: Fire,
		Width:       1280,
		Height:      180,
		Margin:      20,
	}

	graph := Synthesize(req)

	// Left placement renders vertically with swapped axes.
	if graph.Orientation != Vertical {
		t.Errorf("expected vertical orientation, got %v", graph.Orientation)
	}
	if graph.SpecWidth != 180 || graph.SpecHeight != 1280 {
		t.Errorf("expected spec size 180x1280, got %dx%d", graph.SpecWidth, graph.SpecHeight)
	}
	if !strings.Contains(graph.Complex, "showspectrum=s=180x1280") {
		t.Errorf("spectrum size not in filter: %s", graph.Complex)
	}
	if !strings.Contains(graph.Complex, "orientation=1") {
		t.Errorf("vertical orientation flag missing: %s", graph.Complex)
	}
	if !strings.Contains(graph.Complex, "color=fire") {
		t.Errorf("palette missing: %s", graph.Complex)
	}
	// Fixed analysis band and window parameters.
	for _, param := range []string{"start=100", "stop=10000", "win_func=hamming", "overlap=0", "scale=cbrt", "mode=combined"} {
		if !strings.Contains(graph.Complex, param) {
			t.Errorf("spectrum parameter %q missing: %s", param, graph.Complex)
		}
	}
}

func TestSynthesizeBothBottom(t *testing.T) {
	req := Request{
		Type:        Both,
		Position:    Position{Anchor: Bottom},
		ColorScheme: Cool,
		Width:       1280,
		Height:      360,
		Margin:      50,
	}

	graph := Synthesize(req)

	// Each pane gets half the height; gap is half the margin.
	if graph.SpecHeight != 180 {
		t.Errorf("expected spectrum pane height 180, got %d", graph.SpecHeight)
	}
	if len(graph.Overlays) != 2 {
		t.Fatalf("expected two overlays, got %v", graph.Overlays)
	}
	// Spectrum flush to the margin, waveform stacked above it plus gap.
	if graph.Overlays[0] != "x=(W-w)/2:y=H-h-205-50" {
		t.Errorf("waveform overlay = %q", graph.Overlays[0])
	}
	if graph.Overlays[1] != "x=(W-w)/2:y=H-h-50" {
		t.Errorf("spectrum overlay = %q", graph.Overlays[1])
	}
	if !strings.Contains(graph.Complex, "showwaves=s=1280x180") {
		t.Errorf("waveform pane size wrong: %s", graph.Complex)
	}
	if !strings.Contains(graph.Complex, "[bg][wave]overlay=") || !strings.Contains(graph.Complex, "[tmp][spec]overlay=") {
		t.Errorf("composite chain wrong: %s", graph.Complex)
	}
}

func TestSynthesizeBothCustom(t *testing.T) {
	req := Request{
		Type:        Both,
		Position:    At(40, 60),
		ColorScheme: Viridis,
		Width:       400,
		Height:      200,
		Margin:      20,
	}

	graph := Synthesize(req)

	// Waveform at the literal coordinate, spectrum directly below plus gap.
	if graph.Overlays[0] != "x=40:y=60" {
		t.Errorf("waveform overlay = %q", graph.Overlays[0])
	}
	if graph.Overlays[1] != "x=40:y=160+10" {
		t.Errorf("spectrum overlay = %q", graph.Overlays[1])
	}
}

func TestSynthesizeBothVertical(t *testing.T) {
	req := Request{
		Type:        Both,
		Position:    Position{Anchor: Right},
		ColorScheme: Plasma,
		Width:       400,
		Height:      200,
		Margin:      10,
	}

	graph := Synthesize(req)

	if graph.Orientation != Vertical {
		t.Errorf("expected vertical orientation for right placement, got %v", graph.Orientation)
	}
	// Pane extent along the horizontal stacking axis is width/2.
	if graph.SpecWidth != 200 || graph.SpecHeight != 400 {
		t.Errorf("expected spec size 200x400, got %dx%d", graph.SpecWidth, graph.SpecHeight)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	req := Request{
		Type:        Both,
		Position:    Position{Anchor: Center},
		ColorScheme: Magma,
		Width:       640,
		Height:      240,
		Margin:      30,
	}

	first := Synthesize(req)
	second := Synthesize(req)

	if first.Complex != second.Complex {
		t.Error("Synthesize is not deterministic for identical input")
	}
	if len(first.Overlays) != len(second.Overlays) {
		t.Fatal("overlay counts differ between identical calls")
	}
	for i := range first.Overlays {
		if first.Overlays[i] != second.Overlays[i] {
			t.Errorf("overlay %d differs: %q vs %q", i, first.Overlays[i], second.Overlays[i])
		}
	}
}
