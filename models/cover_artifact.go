package models

import (
	"fmt"
	"strings"
)

// CoverArtifact is a resolved background image plus its ownership.
//
// Temporary artifacts live under the process-scoped scratch location and
// are deleted by the encode step after use; user-specified artifacts are
// never deleted by this tool.
type CoverArtifact struct {
	Path      string
	Temporary bool
}

// NewCoverArtifact creates a validated CoverArtifact.
func NewCoverArtifact(path string, temporary bool) (CoverArtifact, error) {
	a := CoverArtifact{Path: path, Temporary: temporary}
	if strings.TrimSpace(path) == "" {
		return CoverArtifact{}, fmt.Errorf("invalid cover artifact: path cannot be empty")
	}
	return a, nil
}
