package render

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Viewer opens exported images with an external command such as xdg-open.
// It runs once per image and is never retried.
type Viewer struct {
	Command string
	Args    []string
	logger  *slog.Logger
}

func NewViewer(command string, logger *slog.Logger, args ...string) *Viewer {
	return &Viewer{Command: command, Args: args, logger: logger}
}

func (v *Viewer) Show(ctx context.Context, path string) error {
	args := append(append([]string{}, v.Args...), path)
	out, err := exec.CommandContext(ctx, v.Command, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", v.Command, path, err, strings.TrimSpace(string(out)))
	}
	v.logger.DebugContext(ctx, "Opened chart", "path", path, "command", v.Command)
	return nil
}
