// Package hotkey listens for a global keyboard shortcut.
package hotkey

import (
	"context"
	"log/slog"
	"sync/atomic"

	hook "github.com/robotn/gohook"

	"github.com/connorhough/selgrab/internal/keys"
)

// Combo lists the chord's keys in the order gohook expects.
func Combo(c keys.Chord) []string {
	return append(append([]string{}, c.Modifiers...), c.Key)
}

// Gate drops presses that arrive while the previous callback still runs.
type Gate struct {
	busy atomic.Bool
	fn   func()
}

// NewGate wraps fn.
func NewGate(fn func()) *Gate {
	return &Gate{fn: fn}
}

// Trigger runs fn in its own goroutine unless a run is in flight. It
// reports whether fn was started.
func (g *Gate) Trigger() bool {
	if !g.busy.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		defer g.busy.Store(false)
		g.fn()
	}()
	return true
}

// Listen calls fn each time chord is pressed, until ctx is done or the hook
// stops.
func Listen(ctx context.Context, chord keys.Chord, fn func()) error {
	gate := NewGate(fn)
	hook.Register(hook.KeyDown, Combo(chord), func(e hook.Event) {
		if !gate.Trigger() {
			slog.Debug("hotkey ignored, retrieval in progress", "hotkey", chord.String())
		}
	})

	events := hook.Start()
	defer hook.End()
	slog.Info("Listening for hotkey", "hotkey", chord.String())

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-hook.Process(events):
		return nil
	}
}
