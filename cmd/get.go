package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/connorhough/selgrab/internal/clock"
	"github.com/connorhough/selgrab/internal/config"
	"github.com/connorhough/selgrab/internal/selection"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGetCmd() *cobra.Command {
	var (
		asJSON bool
		delay  time.Duration
	)

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the current selection",
		Long: `Print whatever is selected in the foreground application.

Text selections print as-is. In the file manager, or with no foreground
application, the selected files are printed one path per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}
			eng, err := newEngine(settings)
			if err != nil {
				return err
			}

			// Gives the user time to bring the target application to the front.
			if delay > 0 {
				if err := clock.System.Sleep(cmd.Context(), delay); err != nil {
					return err
				}
			}

			res, err := eng.retriever.Get(cmd.Context(), nil)
			if errors.Is(err, selection.ErrNoSelection) {
				return fmt.Errorf("nothing selected")
			}
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res, asJSON)
		},
	}

	getCmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	getCmd.Flags().DurationVar(&delay, "delay", 0, "wait before reading the selection (e.g. 2s)")

	return getCmd
}

func printResult(w io.Writer, res *selection.Result, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(res)
	}
	if len(res.Items) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(res.Items, "\n"))
	return err
}
