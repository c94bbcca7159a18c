// Package ffmpeg invokes the external FFmpeg engine and implements the
// streamed diagnostic-output protocol: progress lines become transient
// status, and error-marker lines mark the run failed even when the process
// itself exits zero, because FFmpeg does not reliably signal filter-graph
// errors through its exit code.
package ffmpeg

import (
	"regexp"
	"strconv"
	"strings"

	"mp3tomp4/internal/timeutil"
	"mp3tomp4/models"
)

// ProgressParser parses ffmpeg stderr lines for encoding metrics.
type ProgressParser struct {
	frameRegex   *regexp.Regexp
	fpsRegex     *regexp.Regexp
	sizeRegex    *regexp.Regexp
	timeRegex    *regexp.Regexp
	bitrateRegex *regexp.Regexp
	speedRegex   *regexp.Regexp
}

// NewProgressParser creates a parser for ffmpeg -stats style output.
func NewProgressParser() *ProgressParser {
	return &ProgressParser{
		// Match both "frame=123" and "frame= 123" formats
		frameRegex:   regexp.MustCompile(`^frame=\s*(\d+)`),
		fpsRegex:     regexp.MustCompile(`fps=\s*([0-9.]+)`),
		sizeRegex:    regexp.MustCompile(`size=\s*([0-9]+)`),
		timeRegex:    regexp.MustCompile(`time=\s*([0-9:\.]+)`),
		bitrateRegex: regexp.MustCompile(`bitrate=\s*([0-9.]+)`),
		speedRegex:   regexp.MustCompile(`(?:^|\s)speed=\s*([0-9.]+)x?`),
	}
}

// IsProgressLine reports whether the line carries transient encoding
// status (overwritten in place rather than logged).
func (pp *ProgressParser) IsProgressLine(line string) bool {
	return strings.Contains(line, "frame=") || strings.Contains(line, "time=")
}

// IsErrorLine reports whether the line carries an engine error marker.
// Such a line is treated as a failure regardless of the exit status.
func (pp *ProgressParser) IsErrorLine(line string) bool {
	return strings.Contains(line, "Error") || strings.Contains(line, "error")
}

// ParseLine parses a single stderr line and updates the progress. Returns
// true when any metric was extracted.
func (pp *ProgressParser) ParseLine(line string, progress *models.EncodingProgress) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	updated := false

	if matches := pp.frameRegex.FindStringSubmatch(line); len(matches) > 1 {
		if frame, err := strconv.ParseInt(matches[1], 10, 64); err == nil {
			progress.Frame = frame
			updated = true
		}
	}

	if matches := pp.fpsRegex.FindStringSubmatch(line); len(matches) > 1 {
		if fps, err := strconv.ParseFloat(matches[1], 64); err == nil {
			progress.FPS = fps
			updated = true
		}
	}

	if matches := pp.sizeRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.Size = matches[1] + "kB"
		updated = true
	}

	if matches := pp.timeRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.CurrentTime = matches[1]
		if seconds := timeutil.ParseSeconds(matches[1]); seconds > 0 {
			progress.CalculateProgress(seconds)
		}
		updated = true
	}

	if matches := pp.bitrateRegex.FindStringSubmatch(line); len(matches) > 1 {
		progress.Bitrate = matches[1] + "kbits/s"
		updated = true
	}

	if matches := pp.speedRegex.FindStringSubmatch(line); len(matches) > 1 {
		if speed, err := strconv.ParseFloat(matches[1], 64); err == nil {
			progress.Speed = speed
			updated = true
		}
	}

	return updated
}
