//go:build linux

package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/connorhough/selgrab/internal/clipboard"
)

const (
	defaultFileManager = "org.gnome.Nautilus"
	defaultCopyChord   = "ctrl+c"
	defaultPathChord   = "ctrl+c"
)

type linuxLocator struct{}

// ForegroundApp returns the WM_CLASS of the focused window.
func (l *linuxLocator) ForegroundApp(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "xdotool", "getactivewindow", "getwindowclassname")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("xdotool getwindowclassname failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// There is no accessibility root on Linux; AT-SPI is not queried, so every
// application goes through the clipboard swap.
func newPlatform(opts Options) (*Platform, error) {
	board, err := clipboard.NewSystem()
	if err != nil {
		return nil, err
	}
	runner, err := newNativeRunner(board, opts, defaultCopyChord, defaultPathChord)
	if err != nil {
		return nil, err
	}
	return &Platform{
		Name:        "linux",
		Locator:     &linuxLocator{},
		Runner:      runner,
		Scripts:     nativeScripts(),
		Keys:        runner.Keys,
		FileManager: orDefault(opts.FileManager, defaultFileManager),
	}, nil
}
