// Package selection retrieves whatever the user has selected in the
// foreground application, either by asking the accessibility tree or by
// swapping the clipboard around a synthetic copy keystroke. Which technique
// works is learned per application.
package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/connorhough/selgrab/internal/accessibility"
	"github.com/connorhough/selgrab/internal/automation"
)

// ErrNoSelection is returned when no technique produced a selection.
var ErrNoSelection = errors.New("no selection available")

// SourceKind says what a Result's items hold.
type SourceKind int

const (
	Text SourceKind = iota
	FilePaths
)

func (k SourceKind) String() string {
	if k == FilePaths {
		return "file_paths"
	}
	return "text"
}

// MarshalJSON encodes the kind by name.
func (k SourceKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Result is one retrieved selection. Text results carry exactly one item.
// FilePaths results carry zero or more and only come from the file manager
// or when no foreground application is known.
type Result struct {
	Kind  SourceKind `json:"source_kind"`
	App   string     `json:"application_id"`
	Items []string   `json:"items"`
}

// WindowLocator identifies the foreground application.
type WindowLocator interface {
	ForegroundApp(ctx context.Context) (string, error)
}

// Deps are the platform collaborators a Retriever drives.
type Deps struct {
	Locator WindowLocator
	// Root is the element the focused element is read from. Nil disables
	// the accessibility probe.
	Root        accessibility.Element
	Runner      automation.Runner
	Scripts     Scripts
	FileManager string
}

// Retriever is the entry point for selection retrieval. It is safe for
// concurrent use; the strategy cache is the only shared state.
type Retriever struct {
	locator     WindowLocator
	root        accessibility.Element
	runner      automation.Runner
	scripts     Scripts
	fileManager string
	cache       *StrategyCache
}

// New returns a Retriever learning into cache. A nil cache gets a fresh one
// of DefaultCacheCapacity.
func New(deps Deps, cache *StrategyCache) *Retriever {
	if cache == nil {
		cache = NewStrategyCache(DefaultCacheCapacity)
	}
	return &Retriever{
		locator:     deps.Locator,
		root:        deps.Root,
		runner:      deps.Runner,
		scripts:     deps.Scripts,
		fileManager: deps.FileManager,
		cache:       cache,
	}
}

// CachedVerdict reports what the retriever has learned about app. It counts
// as a use of the entry.
func (r *Retriever) CachedVerdict(app string) (Verdict, bool) {
	return r.cache.Lookup(app)
}

// Get returns the current selection. onReady, which may be nil, is invoked
// right before the copy keystroke if the clipboard swap is used; it runs
// concurrently with the clipboard wait and is never delayed by it.
// ErrNoSelection is the only error returned.
func (r *Retriever) Get(ctx context.Context, onReady func()) (*Result, error) {
	log := slog.With("call_id", uuid.NewString())

	app := r.foregroundApp(ctx, log)
	log = log.With("app", app)

	if app == "" || app == r.fileManager {
		if raw, ok := r.filePathSwap(ctx); ok {
			items := SplitFilePaths(raw)
			log.Debug("selection retrieved", "technique", "file_paths", "count", len(items))
			return &Result{Kind: FilePaths, App: app, Items: items}, nil
		}
	}

	text, err := r.selectText(ctx, app, onReady, log)
	if err != nil {
		log.Debug("no selection", "error", err)
		return nil, ErrNoSelection
	}
	return &Result{Kind: Text, App: app, Items: []string{text}}, nil
}

func (r *Retriever) foregroundApp(ctx context.Context, log *slog.Logger) string {
	if r.locator == nil {
		return ""
	}
	app, err := r.locator.ForegroundApp(ctx)
	if err != nil {
		// The desktop or a lock screen has no foreground application.
		log.Debug("foreground application unknown", "error", err)
		return ""
	}
	return app
}

func (r *Retriever) selectText(ctx context.Context, app string, onReady func(), log *slog.Logger) (string, error) {
	verdict, known := r.cache.Lookup(app)

	if text, ok := probeAccessibility(ctx, r.root); ok && text != "" {
		if !known || verdict != AccessibilitySucceeded {
			r.cache.Record(app, AccessibilitySucceeded)
		}
		log.Debug("selection retrieved", "technique", "accessibility", "cached", known)
		return text, nil
	}

	text, err := r.clipboardSwap(ctx, onReady)
	if err != nil {
		return "", fmt.Errorf("clipboard swap: %w", err)
	}

	if known {
		// A known application gets the swap's answer even when nothing was
		// copied.
		if text != "" && verdict == AccessibilitySucceeded {
			r.cache.Record(app, AccessibilityFailed)
		}
		log.Debug("selection retrieved", "technique", "clipboard", "verdict", verdict, "empty", text == "")
		return text, nil
	}

	if text == "" {
		return "", errors.New("clipboard swap copied nothing")
	}
	r.cache.Record(app, AccessibilityFailed)
	log.Debug("selection retrieved", "technique", "clipboard", "cached", false)
	return text, nil
}
