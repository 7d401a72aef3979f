package automation

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/connorhough/selgrab/internal/clipboard"
	"github.com/connorhough/selgrab/internal/clock"
	"github.com/connorhough/selgrab/internal/keys"
)

// Native performs the well-known scripts in-process against a clipboard
// board and a keystroker instead of handing a body to an interpreter.
type Native struct {
	Board     clipboard.Board
	Keys      keys.Keystroker
	Clock     clock.Clock
	Settle    time.Duration
	CopyChord keys.Chord
	PathChord keys.Chord
}

// Run implements Runner. Script bodies are ignored.
func (n *Native) Run(ctx context.Context, script Script) (Output, error) {
	if n.Board == nil || n.Keys == nil {
		return Output{}, &LaunchError{Runner: "native", Script: script.Name, Err: fmt.Errorf("clipboard or keyboard backend missing")}
	}

	var (
		text string
		err  error
	)
	switch script.Name {
	case CaptureClipboard:
		text, err = n.capture(ctx, nil)
	case SendCopy:
		err = n.Keys.Tap(ctx, n.CopyChord)
	case CopyFilePaths:
		text, err = n.capture(ctx, func() error { return n.Keys.Tap(ctx, n.PathChord) })
		text = quotePathLines(text)
	default:
		return Output{}, &LaunchError{Runner: "native", Script: script.Name, Err: fmt.Errorf("unknown script")}
	}
	if err != nil {
		slog.Debug("native script failed", "script", script.Name, "error", err)
		return Output{ExitCode: 1, Stderr: []byte(err.Error())}, nil
	}
	return Output{Stdout: []byte(text)}, nil
}

// capture snapshots the clipboard, optionally fires trigger, waits for the
// settle delay and returns whatever new text landed, restoring the snapshot.
// An unchanged counter yields "".
func (n *Native) capture(ctx context.Context, trigger func() error) (string, error) {
	saved := n.Board.Snapshot()

	if trigger != nil {
		if err := trigger(); err != nil {
			return "", err
		}
	}

	c := n.Clock
	if c == nil {
		c = clock.System
	}
	if err := c.Sleep(ctx, n.Settle); err != nil {
		return "", err
	}

	if n.Board.ChangeCount() == saved.Count {
		return "", nil
	}

	selected := n.Board.ReadText()
	if err := n.Board.Restore(saved); err != nil {
		return "", fmt.Errorf("restore clipboard: %w", err)
	}
	return selected, nil
}

// quotePathLines turns newline separated paths, as file managers put them
// on the clipboard, into the space separated form with single-quoted runs
// for paths containing spaces. A single path goes through the same rules.
func quotePathLines(text string) string {
	var tokens []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.Trim(line, `"`))
		if strings.HasPrefix(line, "file://") {
			if u, err := url.Parse(line); err == nil && u.Path != "" {
				line = u.Path
			} else {
				line = strings.TrimPrefix(line, "file://")
			}
		}
		if line == "" {
			continue
		}
		if strings.Contains(line, " ") {
			line = "'" + line + "'"
		}
		tokens = append(tokens, line)
	}
	return strings.Join(tokens, " ")
}
