package ffmpeg

import (
	"errors"
	"strings"
	"testing"
)

func TestDrainDiagnosticsDetectsErrorMarker(t *testing.T) {
	stream := strings.NewReader(`Input #0, mp3, from 'song.mp3':
frame=   10 fps=25.0 size=    64kB time=00:00:00.40 bitrate=1280.0kbits/s speed=1.0x
Error initializing complex filters.
frame=   20 fps=25.0 size=   128kB time=00:00:00.80 bitrate=1280.0kbits/s speed=1.5x`)

	detected := drainDiagnostics(stream, 3.0)
	if detected == "" {
		t.Fatal("error marker was not detected")
	}
	if !strings.Contains(detected, "Error initializing") {
		t.Errorf("wrong line remembered: %q", detected)
	}
}

func TestDrainDiagnosticsCleanRun(t *testing.T) {
	stream := strings.NewReader(`Input #0, mp3, from 'song.mp3':
frame=   10 fps=25.0 size=    64kB time=00:00:00.40 bitrate=1280.0kbits/s speed=1.0x
frame=   75 fps=25.0 size=   512kB time=00:00:03.00 bitrate=1280.0kbits/s speed=2.0x`)

	if detected := drainDiagnostics(stream, 3.0); detected != "" {
		t.Errorf("no marker expected on a clean stream, got %q", detected)
	}
}

func TestExecuteSpawnFailureWhenUnavailable(t *testing.T) {
	if Available() {
		t.Skip("ffmpeg is installed; spawn failure cannot be simulated")
	}
	err := Execute([]string{"-version"}, RunOptions{})
	if !errors.Is(err, ErrSpawn) {
		t.Errorf("expected ErrSpawn, got %v", err)
	}
}

func TestExecuteBadInput(t *testing.T) {
	if !Available() {
		t.Skip("ffmpeg not available")
	}
	err := Execute([]string{"-i", "nonexistent_input_99999.mp3", "-f", "null", "-"}, RunOptions{})
	if !errors.Is(err, ErrExecution) {
		t.Errorf("expected ErrExecution, got %v", err)
	}
}
