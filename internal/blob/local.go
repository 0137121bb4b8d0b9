package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local persists blobs under a server-local directory. References are
// relative paths served back through the /uploads static mapping.
type Local struct {
	dir string
}

// NewLocal creates a local backend rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

func (l *Local) Name() string { return "local" }

// Store writes the blob under the upload directory. The name is reduced to
// its base component so crafted filenames cannot escape the directory.
func (l *Local) Store(_ context.Context, name string, data []byte, _ string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid blob name %q", name)
	}

	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(l.dir, base), data, 0o600); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}

	return "/uploads/" + base, nil
}
