package cmd

import (
	"github.com/connorhough/selgrab/internal/config"
	"github.com/connorhough/selgrab/internal/keys"
	"github.com/connorhough/selgrab/internal/platform"
	"github.com/connorhough/selgrab/internal/selection"
)

// engine is what the commands drive: a retriever plus the keyboard used to
// release hotkey modifiers before the copy keystroke.
type engine struct {
	retriever *selection.Retriever
	keys      keys.Keystroker
}

// newEngine builds the engine for the running platform. Tests replace it.
var newEngine = func(s *config.Settings) (*engine, error) {
	p, err := platform.New(platform.Options{
		SettleDelay: s.SettleDelay,
		FileManager: s.FileManager,
		CopyChord:   s.CopyChord,
		PathChord:   s.PathChord,
	})
	if err != nil {
		return nil, err
	}
	return &engine{
		retriever: selection.New(p.Deps(), selection.NewStrategyCache(s.CacheCapacity)),
		keys:      p.Keys,
	}, nil
}
