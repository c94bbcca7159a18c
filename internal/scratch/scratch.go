// Package scratch names temporary files for intermediate artifacts.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Path returns a fresh path under the system temp directory. The pid plus
// a random UUID keeps concurrent runs from clobbering each other's files.
func Path(prefix string, ext string) string {
	name := fmt.Sprintf("%s_%d_%s.%s", prefix, os.Getpid(), uuid.NewString(), ext)
	return filepath.Join(os.TempDir(), name)
}
