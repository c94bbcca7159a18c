package models

import (
	"fmt"
	"strings"
)

// Output represents a finished conversion: the video file plus its derived
// thumbnail.
//
// The structure enforces logical consistency: an Output always names an
// existing, non-empty video file. Use NewOutput to create validated
// instances; the encode step constructs one only after the final file
// passed validation.
type Output struct {
	VideoPath     string `json:"video_path"`
	ThumbnailPath string `json:"thumbnail_path,omitempty"`
	Bytes         int64  `json:"bytes"`
}

// NewOutput creates an Output with validation.
//
// Returns an error if videoPath is empty or the reported size is not
// positive, which would mean the engine produced a zero-byte file.
func NewOutput(videoPath, thumbnailPath string, bytes int64) (*Output, error) {
	o := &Output{
		VideoPath:     videoPath,
		ThumbnailPath: thumbnailPath,
		Bytes:         bytes,
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid output: %w", err)
	}
	return o, nil
}

// Validate checks that the Output describes a usable result.
func (o *Output) Validate() error {
	if strings.TrimSpace(o.VideoPath) == "" {
		return fmt.Errorf("video_path cannot be empty")
	}
	if o.Bytes <= 0 {
		return fmt.Errorf("output file has zero size")
	}
	return nil
}
