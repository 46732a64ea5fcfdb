package designer

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePair extracts the two leading integer arguments from a
// constructor-style value expression such as
// `new System.Drawing.Size(75, 23)` or `New System.Drawing.Point(8, 8)`.
// This positional convention is the documented way for consumers to read
// numeric geometry out of raw property values; the engine itself never
// evaluates them.
func ParsePair(value string) (int, int, error) {
	open := strings.IndexByte(value, '(')
	close := strings.LastIndexByte(value, ')')
	if open < 0 || close < open {
		return 0, 0, fmt.Errorf("no argument list in %q", value)
	}
	parts := splitTopLevel(value[open+1 : close])
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("expected two arguments in %q", value)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("first argument of %q: %w", value, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("second argument of %q: %w", value, err)
	}
	return a, b, nil
}

// splitTopLevel splits on commas outside any nested parentheses.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
