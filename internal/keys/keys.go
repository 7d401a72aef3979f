// Package keys synthesizes keyboard shortcuts.
package keys

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-vgo/robotgo"
)

// Chord is a key plus the modifiers held while it is tapped.
type Chord struct {
	Key       string
	Modifiers []string
}

var modifierAliases = map[string]string{
	"cmd":     "cmd",
	"command": "cmd",
	"super":   "cmd",
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"opt":     "alt",
	"shift":   "shift",
}

// ParseChord parses strings like "cmd+alt+c". The last element is the key.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	var c Chord
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Chord{}, fmt.Errorf("invalid chord %q: empty element", s)
		}
		if i == len(parts)-1 {
			c.Key = p
			break
		}
		mod, ok := modifierAliases[p]
		if !ok {
			return Chord{}, fmt.Errorf("invalid chord %q: unknown modifier %q", s, p)
		}
		c.Modifiers = append(c.Modifiers, mod)
	}
	return c, nil
}

// MustParseChord is ParseChord for compile-time constants.
func MustParseChord(s string) Chord {
	c, err := ParseChord(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Chord) String() string {
	return strings.Join(append(append([]string{}, c.Modifiers...), c.Key), "+")
}

// Keystroker taps chords and releases held keys.
type Keystroker interface {
	Tap(ctx context.Context, c Chord) error
	Release(ctx context.Context, keys ...string) error
}

// Robot drives the keyboard through robotgo.
type Robot struct{}

// Tap implements Keystroker.
func (Robot) Tap(ctx context.Context, c Chord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var err error
	if len(c.Modifiers) == 0 {
		err = robotgo.KeyTap(c.Key)
	} else {
		err = robotgo.KeyTap(c.Key, c.Modifiers)
	}
	if err != nil {
		return fmt.Errorf("key tap %s: %w", c, err)
	}
	return nil
}

// Release sends key-up events, e.g. for modifiers still held from a hotkey.
func (Robot) Release(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := robotgo.KeyToggle(k, "up"); err != nil {
			return fmt.Errorf("key release %s: %w", k, err)
		}
	}
	return nil
}
