package selection

import (
	"context"
	"log/slog"

	"github.com/connorhough/selgrab/internal/automation"
)

// Scripts are the automation payloads a platform supplies for the swap
// techniques.
type Scripts struct {
	// Capture snapshots the clipboard and its change counter, waits the
	// settle delay, and prints the new contents (restoring the snapshot) or
	// nothing if the counter did not move.
	Capture automation.Script
	// Copy fires the copy keystroke.
	Copy automation.Script
	// FilePaths is Capture and a copy-as-path keystroke in one synchronous run.
	FilePaths automation.Script
}

type captured struct {
	out automation.Output
	err error
}

// clipboardSwap runs the capture script and, concurrently, the caller's
// onReady callback followed by the copy keystroke. The capture outcome is
// the result. The error is non-nil only when the capture could not be
// launched; "" means it ran and saw no change.
func (r *Retriever) clipboardSwap(ctx context.Context, onReady func()) (string, error) {
	done := make(chan captured, 1)
	go func() {
		out, err := r.runner.Run(ctx, r.scripts.Capture)
		done <- captured{out: out, err: err}
	}()

	started := make(chan struct{})
	go func() {
		close(started)
		if onReady != nil {
			onReady()
		}
		out, err := r.runner.Run(ctx, r.scripts.Copy)
		switch {
		case err != nil:
			slog.Debug("copy keystroke could not be sent", "error", err)
		case !out.Success():
			slog.Debug("copy keystroke script failed", "code", out.ExitCode, "stderr", string(out.Stderr))
		}
	}()

	<-started
	c := <-done
	if c.err != nil {
		return "", c.err
	}
	if !c.out.Success() {
		slog.Debug("clipboard capture script failed", "code", c.out.ExitCode, "stderr", string(c.out.Stderr))
	}
	return c.out.Text(), nil
}

// filePathSwap runs the copy-as-path script synchronously. It reports false
// when the script could not be launched or exited with an error.
func (r *Retriever) filePathSwap(ctx context.Context) (string, bool) {
	out, err := r.runner.Run(ctx, r.scripts.FilePaths)
	if err != nil {
		slog.Debug("file path copy could not be launched", "error", err)
		return "", false
	}
	if !out.Success() {
		slog.Debug("file path copy failed", "code", out.ExitCode, "stderr", string(out.Stderr))
		return "", false
	}
	return out.Text(), true
}
