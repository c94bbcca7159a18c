package models

import (
	"fmt"
	"time"
)

// EncodingProgress represents real-time encoding metrics parsed from the
// engine's diagnostic stream.
type EncodingProgress struct {
	// Current position in the stream
	Frame       int64   // current frame number
	FPS         float64 // frames per second being processed
	CurrentTime string  // current timestamp (HH:MM:SS.MS)

	// Performance metrics
	Bitrate string  // current bitrate (e.g., "128.0kbits/s")
	Speed   float64 // encoding speed multiplier (e.g., 2.34 means 2.34x realtime)

	// Size information
	Size string // current output file size (e.g., "1024kB")

	// Progress calculation
	TotalDuration float64 // total duration in seconds, 0 = unknown
	Progress      float64 // percentage complete (0-100)

	// Metadata
	State     ProgressState
	StartTime time.Time
	UpdatedAt time.Time
}

// ProgressState represents the current state of an encode stage.
type ProgressState string

const (
	ProgressStateStarting  ProgressState = "starting"
	ProgressStateEncoding  ProgressState = "encoding"
	ProgressStateCompleted ProgressState = "completed"
	ProgressStateFailed    ProgressState = "failed"
)

// NewEncodingProgress creates a new progress tracker. Pass 0 when the total
// duration is unknown; percentage calculation is then skipped.
func NewEncodingProgress(totalDuration float64) *EncodingProgress {
	return &EncodingProgress{
		TotalDuration: totalDuration,
		State:         ProgressStateStarting,
		StartTime:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

// CalculateProgress updates the progress percentage from the current
// position in seconds.
func (ep *EncodingProgress) CalculateProgress(currentSeconds float64) {
	if ep.TotalDuration > 0 {
		ep.Progress = (currentSeconds / ep.TotalDuration) * 100
		if ep.Progress > 100 {
			ep.Progress = 100
		}
	}
	ep.UpdatedAt = time.Now()
}

// StatusLine returns a single-line summary suitable for transient display
// (rewritten in place with a carriage return).
func (ep *EncodingProgress) StatusLine() string {
	if ep.TotalDuration > 0 {
		return fmt.Sprintf("  time=%s progress=%.1f%% speed=%.2fx size=%s",
			ep.CurrentTime, ep.Progress, ep.Speed, ep.Size)
	}
	return fmt.Sprintf("  time=%s speed=%.2fx size=%s", ep.CurrentTime, ep.Speed, ep.Size)
}
