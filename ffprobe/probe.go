// Package ffprobe queries media metadata through the ffprobe command-line
// tool.
//
// Three probe surfaces are provided: a lightweight plain-text duration
// query, a stream codec query used during cover extraction, and a full
// structured inspection used for output validation and tests.
package ffprobe

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const binary = "ffprobe"

// Stream represents a media stream (audio, video, subtitle, etc.)
type Stream struct {
	Index         int    `json:"index"`
	CodecName     string `json:"codec_name"`
	CodecType     string `json:"codec_type"`
	CodecLongName string `json:"codec_long_name"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	SampleRate    string `json:"sample_rate,omitempty"`
	Channels      int    `json:"channels,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Disposition   struct {
		AttachedPic int `json:"attached_pic"`
	} `json:"disposition"`
}

// Format represents the container format information.
type Format struct {
	Filename       string `json:"filename"`
	FormatName     string `json:"format_name"`
	FormatLongName string `json:"format_long_name"`
	Duration       string `json:"duration"`
	Size           string `json:"size"`
	BitRate        string `json:"bit_rate"`
}

// Report holds the structured metadata extracted from a media file.
type Report struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// DurationSeconds returns the container duration in seconds.
func (r *Report) DurationSeconds() (float64, error) {
	if r.Format.Duration == "" {
		return 0, fmt.Errorf("duration not available in format metadata")
	}
	duration, err := strconv.ParseFloat(r.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", r.Format.Duration, err)
	}
	return duration, nil
}

// VideoStreams returns all video streams in the file.
func (r *Report) VideoStreams() []Stream {
	var streams []Stream
	for _, s := range r.Streams {
		if s.CodecType == "video" {
			streams = append(streams, s)
		}
	}
	return streams
}

// AudioStreams returns all audio streams in the file.
func (r *Report) AudioStreams() []Stream {
	var streams []Stream
	for _, s := range r.Streams {
		if s.CodecType == "audio" {
			streams = append(streams, s)
		}
	}
	return streams
}

// Duration returns the container duration of a media file in seconds using
// a lightweight plain-text query. A file the engine cannot parse yields an
// error; an unparsable duration value yields 0 without an error, matching
// streams that genuinely report no duration.
func Duration(sourcePath string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		sourcePath,
	}

	out, err := exec.Command(binary, args...).Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration query failed for %s: %w", sourcePath, err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, nil
	}
	return duration, nil
}

// StreamCodec returns the codec name of the first stream matched by the
// given selector (e.g. "v:attached_pic", "v:0"). An empty string means the
// selector matched nothing; that is not an error.
func StreamCodec(sourcePath, selector string) (string, error) {
	args := []string{
		"-v", "error",
		"-select_streams", selector,
		"-show_entries", "stream=codec_name",
		"-of", "default=noprint_wrappers=1:nokey=1",
		sourcePath,
	}

	out, err := exec.Command(binary, args...).Output()
	if err != nil {
		return "", fmt.Errorf("ffprobe stream query failed for %s: %w", sourcePath, err)
	}

	// Multiple matches print one codec per line; the first one wins.
	codec := strings.TrimSpace(string(out))
	if i := strings.IndexByte(codec, '\n'); i >= 0 {
		codec = strings.TrimSpace(codec[:i])
	}
	return codec, nil
}

// Inspect analyzes a media file and returns its full stream and format
// metadata as structured data.
//
// Example:
//
//	report, err := ffprobe.Inspect("/path/to/video.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	duration, _ := report.DurationSeconds()
//	fmt.Printf("Duration: %.2f seconds, %d video streams\n",
//	    duration, len(report.VideoStreams()))
func Inspect(sourcePath string) (*Report, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source path cannot be empty")
	}

	args := []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		sourcePath,
	}

	cmd := exec.Command(binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w (output: %s)", err, string(output))
	}

	var report Report
	if err := json.Unmarshal(output, &report); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe JSON output: %w", err)
	}

	return &report, nil
}
