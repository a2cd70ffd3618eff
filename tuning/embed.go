package tuning

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var TuningFS embed.FS

// Load reads a tuning file by name, preferring the copy on disk under
// tuning/ so edits apply without a rebuild, and falling back to the
// embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return TuningFS.ReadFile(clean)
}

func cleanPath(path string) string {
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "tuning/")
}

func diskPath(name string) string {
	return filepath.Join("tuning", name)
}
