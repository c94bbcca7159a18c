// Package command provides the core Command interface for building and
// executing FFmpeg invocations.
//
// All specialized builders (Composite, Remux, Thumbnail, Extract)
// implement the Command interface, so the pipeline can build, preview,
// and run each stage uniformly.
package command

// TaskType represents the kind of engine invocation.
type TaskType string

const (
	TaskTypeComposite TaskType = "composite" // visualization render over the background
	TaskTypeRemux     TaskType = "remux"     // video copy + audio re-encode into the final container
	TaskTypeThumbnail TaskType = "thumbnail" // still-image transcode next to the output
	TaskTypeExtract   TaskType = "extract"   // single-frame cover extraction from a media stream
)

// Command represents an FFmpeg invocation that can be built, executed, or
// previewed.
//
// Example usage:
//
//	cmd := remux.NewRemuxBuilder("viz.mp4", "song.mp3", "song.mp4").
//		SetVerbose(true)
//
//	// Preview the command
//	preview, _ := cmd.DryRun()
//
//	// Execute the command
//	err := cmd.Run()
type Command interface {
	// BuildArgs constructs the FFmpeg argument slice, suitable for
	// exec.Command("ffmpeg", args...).
	BuildArgs() []string

	// Run executes the invocation and blocks until the engine exits.
	// It applies the streamed diagnostic protocol unless the builder
	// was put in verbose mode.
	Run() error

	// DryRun returns the command line as a string without executing
	// it, in the format "ffmpeg <args...>".
	DryRun() (string, error)

	// GetTaskType returns the kind of invocation.
	GetTaskType() TaskType

	// GetInputPath returns the primary input file path.
	GetInputPath() string

	// GetOutputPath returns the output file path.
	GetOutputPath() string
}
