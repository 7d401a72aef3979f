package automation

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
)

// OsaScript runs script bodies through the osascript interpreter.
type OsaScript struct {
	// Path overrides the interpreter binary; empty means "osascript" on PATH.
	Path string
}

func (r *OsaScript) binary() string {
	if r.Path != "" {
		return r.Path
	}
	return "osascript"
}

// Run implements Runner.
func (r *OsaScript) Run(ctx context.Context, script Script) (Output, error) {
	cmd := exec.CommandContext(ctx, r.binary(), "-e", script.Body)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("osascript exited with error", "script", script.Name, "code", exitErr.ExitCode(), "stderr", string(exitErr.Stderr))
			return Output{ExitCode: exitErr.ExitCode(), Stdout: out, Stderr: exitErr.Stderr}, nil
		}
		return Output{}, &LaunchError{Runner: "osascript", Script: script.Name, Err: err}
	}
	return Output{Stdout: out}, nil
}
