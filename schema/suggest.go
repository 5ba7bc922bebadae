package schema

// Suggest returns the declared name of the field closest to key, for messages
// about unknown fields. Names are compared normalized; a candidate must be
// within half its length in edits, and two edits are always allowed.
func (s *Schema) Suggest(key string) (string, bool) {
	norm := []rune(normalize(key))

	best, bestDist := "", -1
	for _, f := range s.Fields {
		name := []rune(normalize(f.Name))

		d := distance(norm, name)
		if d > max(2, len(name)/2) {
			continue
		}

		if bestDist < 0 || d < bestDist {
			best, bestDist = f.Name, d
		}
	}

	return best, bestDist >= 0
}

// distance is the Levenshtein edit distance between a and b.
func distance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			sub := prev[i-1]
			if a[i-1] != b[j-1] {
				sub++
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, sub)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
