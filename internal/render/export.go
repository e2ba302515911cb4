package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// Exporter writes a composed chart to dest.
type Exporter interface {
	Export(ctx context.Context, c *Chart, dest string) error
	// Supports reports whether the exporter can write the given file format
	// (an extension without the dot).
	Supports(format string) bool
}

func formatOf(dest string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(dest), "."))
}

// writeFile replaces dest with data in one rename, so readers see either
// the previous image or the new one and a failed export leaves nothing
// behind.
func writeFile(dest string, data []byte) error {
	if dir := filepath.Dir(dest); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := renameio.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
