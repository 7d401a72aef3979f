package selection

import "strings"

// SplitFilePaths tokenizes copy-as-path output. Tokens are separated by
// spaces outside single quotes; a quoted run is one token and keeps its
// quote characters. An unterminated trailing token is still returned.
func SplitFilePaths(input string) []string {
	paths := []string{}
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			paths = append(paths, current.String())
			current.Reset()
		}
	}

	for _, ch := range input {
		switch {
		case ch == '\'':
			current.WriteRune(ch)
			inQuotes = !inQuotes
			if !inQuotes {
				flush()
			}
		case ch == ' ' && !inQuotes:
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()

	return paths
}
