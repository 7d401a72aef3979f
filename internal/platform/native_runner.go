//go:build !darwin

package platform

import (
	"fmt"

	"github.com/connorhough/selgrab/internal/automation"
	"github.com/connorhough/selgrab/internal/clipboard"
	"github.com/connorhough/selgrab/internal/clock"
	"github.com/connorhough/selgrab/internal/keys"
)

func newNativeRunner(board clipboard.Board, opts Options, copyDefault, pathDefault string) (*automation.Native, error) {
	copyChord, err := keys.ParseChord(orDefault(opts.CopyChord, copyDefault))
	if err != nil {
		return nil, fmt.Errorf("copy chord: %w", err)
	}
	pathChord, err := keys.ParseChord(orDefault(opts.PathChord, pathDefault))
	if err != nil {
		return nil, fmt.Errorf("path chord: %w", err)
	}
	return &automation.Native{
		Board:     board,
		Keys:      keys.Robot{},
		Clock:     clock.System,
		Settle:    opts.SettleDelay,
		CopyChord: copyChord,
		PathChord: pathChord,
	}, nil
}
