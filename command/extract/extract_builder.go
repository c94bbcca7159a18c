// Package extract builds the FFmpeg command that decodes exactly one
// frame of a media file's video stream into a still image. Used by the
// engine-probe tier of cover resolution.
package extract

import (
	"fmt"
	"strings"

	"mp3tomp4/command"
	"mp3tomp4/ffmpeg"
)

// ExtractBuilder constructs a single-frame extraction. The frame is
// re-encoded rather than stream-copied so that compressed video frames
// (e.g. H.264) are correctly converted to a still-image format.
type ExtractBuilder struct {
	sourcePath string
	outputPath string
	verbose    bool
}

// NewExtractBuilder creates a builder decoding one frame of sourcePath's
// first video stream into outputPath.
func NewExtractBuilder(sourcePath, outputPath string) *ExtractBuilder {
	return &ExtractBuilder{
		sourcePath: sourcePath,
		outputPath: outputPath,
	}
}

// SetVerbose passes the engine's diagnostics through unfiltered.
func (e *ExtractBuilder) SetVerbose(verbose bool) *ExtractBuilder {
	e.verbose = verbose
	return e
}

// BuildArgs constructs the FFmpeg command arguments.
func (e *ExtractBuilder) BuildArgs() []string {
	return []string{
		"-i", e.sourcePath,
		"-an",
		"-map", "0:v:0",
		"-frames:v", "1",
		"-y", e.outputPath,
	}
}

// Run executes the extraction.
func (e *ExtractBuilder) Run() error {
	if err := ffmpeg.Execute(e.BuildArgs(), ffmpeg.RunOptions{Verbose: e.verbose}); err != nil {
		return fmt.Errorf("frame extraction failed: %w", err)
	}
	return nil
}

// DryRun returns the command without executing it.
func (e *ExtractBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(e.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (extract).
func (e *ExtractBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeExtract
}

// GetInputPath returns the source media path.
func (e *ExtractBuilder) GetInputPath() string {
	return e.sourcePath
}

// GetOutputPath returns the extracted image path.
func (e *ExtractBuilder) GetOutputPath() string {
	return e.outputPath
}
