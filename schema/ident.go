package schema

import (
	"strings"
	"unicode"
)

// normalize folds an identifier for loose matching: case is dropped and the
// separators _ - and space are stripped, so OrderID, order_id and order-id meet.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
