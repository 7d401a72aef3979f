//go:build darwin

package platform

import (
	"context"
	"fmt"

	"github.com/connorhough/selgrab/internal/accessibility"
	"github.com/connorhough/selgrab/internal/automation"
	"github.com/connorhough/selgrab/internal/keys"
)

const defaultFileManager = "Finder"

type darwinLocator struct {
	runner automation.Runner
}

func (l *darwinLocator) ForegroundApp(ctx context.Context) (string, error) {
	out, err := l.runner.Run(ctx, automation.Script{Name: "frontmost-app", Body: frontmostAppScript})
	if err != nil {
		return "", err
	}
	if !out.Success() {
		return "", fmt.Errorf("osascript failed: exit %d (stderr: %s)", out.ExitCode, string(out.Stderr))
	}
	return out.Text(), nil
}

func newPlatform(opts Options) (*Platform, error) {
	runner := &automation.OsaScript{}
	return &Platform{
		Name:        "darwin",
		Locator:     &darwinLocator{runner: runner},
		Root:        accessibility.FrontmostProcess(runner),
		Runner:      runner,
		Scripts:     AppleScripts(opts.SettleDelay),
		Keys:        keys.Robot{},
		FileManager: orDefault(opts.FileManager, defaultFileManager),
	}, nil
}
