package selection

import (
	"context"

	"github.com/connorhough/selgrab/internal/accessibility"
)

// probeAccessibility reads the selected text of the focused element. It
// reports false when there is no focused element or it does not expose a
// selection; an empty string with true means nothing is selected.
func probeAccessibility(ctx context.Context, root accessibility.Element) (string, bool) {
	if root == nil {
		return "", false
	}
	v, ok := root.Attribute(ctx, accessibility.FocusedElement)
	if !ok {
		return "", false
	}
	focused, ok := v.(accessibility.Element)
	if !ok {
		return "", false
	}
	v, ok = focused.Attribute(ctx, accessibility.SelectedText)
	if !ok {
		return "", false
	}
	text, ok := v.(string)
	return text, ok
}
