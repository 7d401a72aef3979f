package cmd

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/connorhough/selgrab/internal/config"
	"github.com/connorhough/selgrab/internal/hotkey"
	"github.com/connorhough/selgrab/internal/keys"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listenHotkey is replaced in tests.
var listenHotkey = hotkey.Listen

func newWatchCmd() *cobra.Command {
	var asJSON bool

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the selection each time the hotkey is pressed",
		Long: `Stay running and print the current selection every time the configured
hotkey is pressed. The technique that works for each application is
remembered across presses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}
			chord, err := keys.ParseChord(settings.Hotkey)
			if err != nil {
				return fmt.Errorf("hotkey: %w", err)
			}
			eng, err := newEngine(settings)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var outMu sync.Mutex
			err = listenHotkey(ctx, chord, func() {
				// The hotkey's modifiers are still held; release them so the
				// synthetic copy is not read as e.g. ctrl+shift+c.
				onReady := func() {
					if err := eng.keys.Release(ctx, chord.Modifiers...); err != nil {
						slog.Debug("could not release hotkey modifiers", "error", err)
					}
				}
				res, err := eng.retriever.Get(ctx, onReady)
				if err != nil {
					slog.Info("Nothing selected", "error", err)
					return
				}
				outMu.Lock()
				defer outMu.Unlock()
				if err := printResult(cmd.OutOrStdout(), res, asJSON); err != nil {
					slog.Error("failed to print selection", "error", err)
				}
			})
			if err != nil && ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	watchCmd.Flags().BoolVar(&asJSON, "json", false, "print each result as JSON")

	return watchCmd
}
