// Package accessibility reads UI element attributes through the operating
// system's accessibility interface. The tree is treated as a read-only
// attribute store: a read yields either another element or a leaf value.
package accessibility

import (
	"context"
	"fmt"
	"strings"

	"github.com/connorhough/selgrab/internal/automation"
)

// Attribute names understood by every Element.
const (
	FocusedElement = "AXFocusedUIElement"
	SelectedText   = "AXSelectedText"
)

// Element is a node in the accessibility tree. Attribute reports false when
// the attribute is missing or unsupported; that is a normal outcome, not an
// error. A present value is either an Element or a string.
type Element interface {
	Attribute(ctx context.Context, name string) (any, bool)
}

// OsaElement is an element addressed by an AppleScript reference expression
// evaluated inside System Events. Child elements are addressed by nesting
// the parent's expression, so nothing is resolved until an attribute is read.
type OsaElement struct {
	Runner automation.Runner
	Ref    string
}

// FrontmostProcess is the root used in place of the system-wide element:
// System Events exposes the focused element on the frontmost process.
func FrontmostProcess(r automation.Runner) *OsaElement {
	return &OsaElement{Runner: r, Ref: "first application process whose frontmost is true"}
}

const attributeScript = `tell application "System Events"
	try
		set theValue to value of attribute "%s" of (%s)
	on error
		return "absent"
	end try
	if theValue is missing value then return "absent"
	if class of theValue is UI element then return "node"
	return "text:" & (theValue as text)
end tell`

// Attribute implements Element.
func (e *OsaElement) Attribute(ctx context.Context, name string) (any, bool) {
	script := automation.Script{
		Name: "read-" + name,
		Body: fmt.Sprintf(attributeScript, name, e.Ref),
	}
	out, err := e.Runner.Run(ctx, script)
	if err != nil || !out.Success() {
		return nil, false
	}
	// Only the trailing newline osascript appends is dropped; the value
	// itself is returned verbatim.
	raw := strings.TrimSuffix(string(out.Stdout), "\n")
	switch {
	case raw == "node":
		return &OsaElement{
			Runner: e.Runner,
			Ref:    fmt.Sprintf(`value of attribute "%s" of (%s)`, name, e.Ref),
		}, true
	case strings.HasPrefix(raw, "text:"):
		return strings.TrimPrefix(raw, "text:"), true
	default:
		return nil, false
	}
}
