// Package platform wires the selection engine to the operating system it is
// built for. Each OS file supplies newPlatform.
package platform

import (
	"fmt"
	"time"

	"github.com/connorhough/selgrab/internal/accessibility"
	"github.com/connorhough/selgrab/internal/automation"
	"github.com/connorhough/selgrab/internal/keys"
	"github.com/connorhough/selgrab/internal/selection"
)

// Options tune the platform. Empty strings select the platform default.
type Options struct {
	SettleDelay time.Duration
	FileManager string
	CopyChord   string
	PathChord   string
}

// Platform bundles the collaborators of one operating system.
type Platform struct {
	Name        string
	Locator     selection.WindowLocator
	Root        accessibility.Element
	Runner      automation.Runner
	Scripts     selection.Scripts
	Keys        keys.Keystroker
	FileManager string
}

// New builds the platform for the running OS.
func New(opts Options) (*Platform, error) {
	if opts.SettleDelay < 0 {
		return nil, fmt.Errorf("settle delay must be non-negative, got %s", opts.SettleDelay)
	}
	return newPlatform(opts)
}

// Deps returns the retriever collaborators.
func (p *Platform) Deps() selection.Deps {
	return selection.Deps{
		Locator:     p.Locator,
		Root:        p.Root,
		Runner:      p.Runner,
		Scripts:     p.Scripts,
		FileManager: p.FileManager,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// nativeScripts names the well-known scripts for runners that ignore bodies.
func nativeScripts() selection.Scripts {
	return selection.Scripts{
		Capture:   automation.Script{Name: automation.CaptureClipboard},
		Copy:      automation.Script{Name: automation.SendCopy},
		FilePaths: automation.Script{Name: automation.CopyFilePaths},
	}
}
