package capture

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// systemInspector shells out to xdotool to resolve the active window. It is
// the default inspector on Linux desktops; the shell may substitute its own
// [Inspector] when it has richer platform access.
type systemInspector struct{}

// NewSystemInspector returns the default exec-based [Inspector].
func NewSystemInspector() Inspector {
	return &systemInspector{}
}

// Inspect implements [Inspector]. Both commands run under ctx, so the
// capturer's per-attempt timeout bounds them.
func (s *systemInspector) Inspect(ctx context.Context) (WindowInfo, error) {
	appName, err := runCommand(ctx, "xdotool", "getactivewindow", "getwindowclassname")
	if err != nil {
		return WindowInfo{}, fmt.Errorf("resolve active window class: %w", err)
	}

	title, err := runCommand(ctx, "xdotool", "getactivewindow", "getwindowname")
	if err != nil {
		return WindowInfo{}, fmt.Errorf("resolve active window title: %w", err)
	}

	return WindowInfo{
		AppName:     appName,
		WindowTitle: title,
	}, nil
}

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}
