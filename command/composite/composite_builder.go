// Package composite builds the first-stage FFmpeg command: rendering the
// visualization filter graph over the background image, driven by the
// audio, into an intermediate video file.
package composite

import (
	"fmt"
	"strings"

	"mp3tomp4/command"
	"mp3tomp4/ffmpeg"
	"mp3tomp4/internal/timeutil"
	"mp3tomp4/viz"
)

// CompositeBuilder constructs the visualization render command. The image
// is input 0 and the audio input 1, matching the stream labels the filter
// graph refers to.
type CompositeBuilder struct {
	imagePath  string
	audioPath  string
	outputPath string

	graph    viz.FilterGraph
	duration float64 // capped duration in seconds, required
	verbose  bool
}

// NewCompositeBuilder creates a builder for the given inputs and
// intermediate output path.
func NewCompositeBuilder(imagePath, audioPath, outputPath string) *CompositeBuilder {
	return &CompositeBuilder{
		imagePath:  imagePath,
		audioPath:  audioPath,
		outputPath: outputPath,
	}
}

// SetFilterGraph sets the synthesized filter graph to render.
func (c *CompositeBuilder) SetFilterGraph(graph viz.FilterGraph) *CompositeBuilder {
	c.graph = graph
	return c
}

// SetDuration caps the encode at the given number of seconds.
func (c *CompositeBuilder) SetDuration(seconds float64) *CompositeBuilder {
	c.duration = seconds
	return c
}

// SetVerbose passes the engine's diagnostics through unfiltered.
func (c *CompositeBuilder) SetVerbose(verbose bool) *CompositeBuilder {
	c.verbose = verbose
	return c
}

// BuildArgs constructs the FFmpeg command arguments. The encode uses a
// fast preset tuned for a still-image source.
func (c *CompositeBuilder) BuildArgs() []string {
	return []string{
		"-i", c.imagePath,
		"-i", c.audioPath,
		"-filter_complex", c.graph.Complex,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-preset", "ultrafast",
		"-tune", "stillimage",
		"-t", timeutil.FormatSeconds(c.duration),
		"-pix_fmt", "yuv420p",
		"-y", c.outputPath,
	}
}

// Run executes the render.
func (c *CompositeBuilder) Run() error {
	if err := ffmpeg.Execute(c.BuildArgs(), ffmpeg.RunOptions{
		Verbose:       c.verbose,
		TotalDuration: c.duration,
	}); err != nil {
		return fmt.Errorf("visualization render failed: %w", err)
	}
	return nil
}

// DryRun returns the command without executing it.
func (c *CompositeBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(c.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (composite).
func (c *CompositeBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeComposite
}

// GetInputPath returns the audio input path.
func (c *CompositeBuilder) GetInputPath() string {
	return c.audioPath
}

// GetOutputPath returns the intermediate output path.
func (c *CompositeBuilder) GetOutputPath() string {
	return c.outputPath
}
