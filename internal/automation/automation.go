// Package automation runs opaque automation payloads (AppleScript, or
// in-process handlers standing in for them) and reports their exit status
// and raw output.
package automation

import (
	"context"
	"fmt"
	"strings"
)

// Well-known script names. Runners that do not interpret script bodies
// dispatch on these.
const (
	CaptureClipboard = "capture-clipboard"
	SendCopy         = "send-copy"
	CopyFilePaths    = "copy-file-paths"
)

// Script is a payload handed to a Runner.
type Script struct {
	Name string
	Body string
}

// Output is what a payload produced once it ran.
type Output struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the payload exited cleanly.
func (o Output) Success() bool {
	return o.ExitCode == 0
}

// Text returns stdout decoded and trimmed. A failed run yields "".
func (o Output) Text() string {
	if !o.Success() {
		return ""
	}
	return strings.TrimSpace(string(o.Stdout))
}

// Runner executes automation payloads. A non-nil error means the payload
// could not be started at all; a payload that ran and failed is reported
// through Output.ExitCode instead.
type Runner interface {
	Run(ctx context.Context, script Script) (Output, error)
}

// LaunchError indicates the automation mechanism itself could not be invoked.
type LaunchError struct {
	Runner string
	Script string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s: could not launch %q: %v", e.Runner, e.Script, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
