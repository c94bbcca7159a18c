// Package thumbnail builds the FFmpeg command that transcodes the
// background image into a single-frame thumbnail next to the output
// video.
package thumbnail

import (
	"fmt"
	"strconv"
	"strings"

	"mp3tomp4/command"
	"mp3tomp4/ffmpeg"
)

// DefaultJPEGQuality is a good visual quality for publishing thumbnails
// (ffmpeg -q:v scale, lower is better).
const DefaultJPEGQuality = 2

// ThumbnailBuilder constructs a single-frame image transcode.
type ThumbnailBuilder struct {
	imagePath  string
	outputPath string

	jpegQuality int // 0 = omit the quality flag (non-JPEG targets)
	verbose     bool
}

// NewThumbnailBuilder creates a builder re-encoding imagePath into
// outputPath. The target format follows from the output extension.
func NewThumbnailBuilder(imagePath, outputPath string) *ThumbnailBuilder {
	b := &ThumbnailBuilder{
		imagePath:  imagePath,
		outputPath: outputPath,
	}
	if strings.HasSuffix(strings.ToLower(outputPath), ".jpg") {
		b.jpegQuality = DefaultJPEGQuality
	}
	return b
}

// SetJPEGQuality overrides the JPEG quality factor. 0 omits the flag.
func (t *ThumbnailBuilder) SetJPEGQuality(q int) *ThumbnailBuilder {
	t.jpegQuality = q
	return t
}

// SetVerbose passes the engine's diagnostics through unfiltered.
func (t *ThumbnailBuilder) SetVerbose(verbose bool) *ThumbnailBuilder {
	t.verbose = verbose
	return t
}

// BuildArgs constructs the FFmpeg command arguments.
func (t *ThumbnailBuilder) BuildArgs() []string {
	args := []string{
		"-i", t.imagePath,
		"-frames:v", "1",
	}
	if t.jpegQuality > 0 {
		args = append(args, "-q:v", strconv.Itoa(t.jpegQuality))
	}
	return append(args, "-y", t.outputPath)
}

// Run executes the transcode.
func (t *ThumbnailBuilder) Run() error {
	if err := ffmpeg.Execute(t.BuildArgs(), ffmpeg.RunOptions{Verbose: t.verbose}); err != nil {
		return fmt.Errorf("thumbnail write failed: %w", err)
	}
	return nil
}

// DryRun returns the command without executing it.
func (t *ThumbnailBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(t.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (thumbnail).
func (t *ThumbnailBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeThumbnail
}

// GetInputPath returns the source image path.
func (t *ThumbnailBuilder) GetInputPath() string {
	return t.imagePath
}

// GetOutputPath returns the thumbnail path.
func (t *ThumbnailBuilder) GetOutputPath() string {
	return t.outputPath
}
