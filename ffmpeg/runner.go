package ffmpeg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"mp3tomp4/models"
)

const binary = "ffmpeg"

// Available reports whether the engine binary can be executed.
func Available() bool {
	return exec.Command(binary, "-version").Run() == nil
}

// RunOptions controls how an engine invocation streams its diagnostics.
type RunOptions struct {
	// Verbose passes the engine's stderr through unfiltered instead of
	// applying the progress/error line protocol.
	Verbose bool

	// TotalDuration in seconds enables percentage display on progress
	// lines; 0 means unknown.
	TotalDuration float64
}

// Execute runs the engine with the given arguments and blocks until it
// exits.
//
// In verbose mode stderr is passed through. Otherwise stderr is drained
// line by line on the calling goroutine: progress lines are rewritten in
// place, error-marker lines are echoed and remembered, and — after the
// stream closes and the exit status is collected — a remembered marker
// fails the invocation even when the process exited zero.
func Execute(args []string, opt RunOptions) error {
	cmd := exec.Command(binary, args...)

	if opt.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("%w: %v", ErrSpawn, err)
		}
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("%w: %v", ErrExecution, err)
		}
		return nil
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	detected := drainDiagnostics(stderr, opt.TotalDuration)

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%w: %v", ErrExecution, err)
	}
	if detected != "" {
		return fmt.Errorf("%w: %s", ErrExecution, detected)
	}
	return nil
}

// drainDiagnostics consumes the diagnostic stream until it closes and
// returns the first error-marker line seen, or "".
func drainDiagnostics(stream io.Reader, totalDuration float64) string {
	parser := NewProgressParser()
	progress := models.NewEncodingProgress(totalDuration)

	scanner := bufio.NewScanner(stream)
	// Progress lines can be joined by carriage returns into one long
	// chunk when captured; allow for that.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var detected string
	printedStatus := false

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case parser.IsErrorLine(line):
			if printedStatus {
				fmt.Println()
				printedStatus = false
			}
			fmt.Printf("ffmpeg error: %s\n", line)
			if detected == "" {
				detected = line
			}
		case parser.IsProgressLine(line):
			if parser.ParseLine(line, progress) {
				progress.State = models.ProgressStateEncoding
				fmt.Printf("\r%s", progress.StatusLine())
				printedStatus = true
			}
		}
	}

	if printedStatus {
		fmt.Println()
	}
	return detected
}
