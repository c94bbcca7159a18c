// Package models provides the core data structures of the converter.
package models

import (
	"fmt"
	"strings"

	"mp3tomp4/viz"
)

// Job describes one audio-to-video conversion. It is created by the batch
// runner per input file, owned exclusively for the duration of one encode,
// and discarded afterwards.
//
// ImagePath is the optional user-supplied background; the resolved
// background (which may instead come from embedded cover art) is decided
// during the encode. Duration of 0 means "full audio length".
//
// Use NewJob to create a validated instance.
type Job struct {
	AudioPath  string
	OutputPath string
	ImagePath  string

	Visualization viz.Request

	Duration float64 // target duration cap in seconds, 0 = probe the audio
	Verbose  bool

	// Cover extraction controls.
	CoverFromAudio bool   // force extraction even when ImagePath is set
	CoverOut       string // retain the extracted cover at this path
}

// NewJob creates a Job and validates it.
//
// Returns an error if the audio or output path is empty, the duration is
// negative, or the visualization geometry is invalid.
func NewJob(audioPath, outputPath string, request viz.Request) (*Job, error) {
	j := &Job{
		AudioPath:     audioPath,
		OutputPath:    outputPath,
		Visualization: request,
	}
	if err := j.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}
	return j, nil
}

// Validate checks the Job invariants.
func (j *Job) Validate() error {
	if strings.TrimSpace(j.AudioPath) == "" {
		return fmt.Errorf("audio path cannot be empty")
	}
	if strings.TrimSpace(j.OutputPath) == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if j.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	return j.Visualization.Validate()
}
