package ffmpeg

import "errors"

// Error kinds for engine invocations. Wrapped with context at the point of
// failure; callers classify with errors.Is.
var (
	// ErrSpawn means the engine process could not be started at all.
	ErrSpawn = errors.New("failed to start ffmpeg")

	// ErrExecution means the engine ran but failed: a nonzero exit
	// status or an error marker on its diagnostic stream.
	ErrExecution = errors.New("ffmpeg execution failed")
)
