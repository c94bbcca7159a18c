// Package remux builds the second-stage FFmpeg command: carrying the
// rendered video stream into the final container without re-encoding,
// paired with the original audio re-encoded to a standard codec.
package remux

import (
	"fmt"
	"strings"

	"mp3tomp4/command"
	"mp3tomp4/ffmpeg"
)

// RemuxBuilder constructs the final mux command. The video stream is
// copied, the audio re-encoded, and the output truncated to the shorter
// of the two inputs.
type RemuxBuilder struct {
	videoPath  string
	audioPath  string
	outputPath string

	audioCodec    string
	totalDuration float64
	verbose       bool
}

// NewRemuxBuilder creates a builder taking the video stream from
// videoPath and the audio stream from audioPath.
func NewRemuxBuilder(videoPath, audioPath, outputPath string) *RemuxBuilder {
	return &RemuxBuilder{
		videoPath:  videoPath,
		audioPath:  audioPath,
		outputPath: outputPath,
		audioCodec: "aac",
	}
}

// SetAudioCodec overrides the audio codec (default "aac").
func (r *RemuxBuilder) SetAudioCodec(codec string) *RemuxBuilder {
	r.audioCodec = codec
	return r
}

// SetTotalDuration enables percentage display on progress lines.
func (r *RemuxBuilder) SetTotalDuration(seconds float64) *RemuxBuilder {
	r.totalDuration = seconds
	return r
}

// SetVerbose passes the engine's diagnostics through unfiltered.
func (r *RemuxBuilder) SetVerbose(verbose bool) *RemuxBuilder {
	r.verbose = verbose
	return r
}

// BuildArgs constructs the FFmpeg command arguments.
func (r *RemuxBuilder) BuildArgs() []string {
	return []string{
		"-i", r.videoPath,
		"-i", r.audioPath,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "copy",
		"-c:a", r.audioCodec,
		"-shortest",
		"-y", r.outputPath,
	}
}

// Run executes the mux.
func (r *RemuxBuilder) Run() error {
	if err := ffmpeg.Execute(r.BuildArgs(), ffmpeg.RunOptions{
		Verbose:       r.verbose,
		TotalDuration: r.totalDuration,
	}); err != nil {
		return fmt.Errorf("audio mux failed: %w", err)
	}
	return nil
}

// DryRun returns the command without executing it.
func (r *RemuxBuilder) DryRun() (string, error) {
	return "ffmpeg " + strings.Join(r.BuildArgs(), " "), nil
}

// GetTaskType returns the task type (remux).
func (r *RemuxBuilder) GetTaskType() command.TaskType {
	return command.TaskTypeRemux
}

// GetInputPath returns the video input path.
func (r *RemuxBuilder) GetInputPath() string {
	return r.videoPath
}

// GetOutputPath returns the final output path.
func (r *RemuxBuilder) GetOutputPath() string {
	return r.outputPath
}
