//go:build !darwin && !linux

package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-vgo/robotgo"

	"github.com/connorhough/selgrab/internal/clipboard"
)

const (
	defaultFileManager = "explorer.exe"
	defaultCopyChord   = "ctrl+c"
	defaultPathChord   = "ctrl+shift+c"
)

type robotLocator struct{}

// ForegroundApp returns the process name owning the active window.
func (l *robotLocator) ForegroundApp(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pid := robotgo.GetPid()
	if pid <= 0 {
		return "", fmt.Errorf("no active window")
	}
	name, err := robotgo.FindName(pid)
	if err != nil {
		return "", fmt.Errorf("process name for pid %d: %w", pid, err)
	}
	return name, nil
}

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
		Name:        runtime.GOOS,
		Locator:     &robotLocator{},
		Runner:      runner,
		Scripts:     nativeScripts(),
		Keys:        runner.Keys,
		FileManager: orDefault(opts.FileManager, defaultFileManager),
	}, nil
}
