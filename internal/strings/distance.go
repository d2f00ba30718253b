package strings

// Levenshtein returns the edit distance between a and b, counting single-rune
// insertions, deletions, and substitutions.
func Levenshtein(a, b string) int {
	source := []rune(a)
	target := []rune(b)
	if len(source) == 0 {
		return len(target)
	}
	if len(target) == 0 {
		return len(source)
	}

	previous := make([]int, len(target)+1)
	current := make([]int, len(target)+1)
	for j := range previous {
		previous[j] = j
	}

	for i := 1; i <= len(source); i++ {
		current[0] = i
		for j := 1; j <= len(target); j++ {
			cost := 1
			if source[i-1] == target[j-1] {
				cost = 0
			}
			current[j] = min(
				previous[j]+1,
				current[j-1]+1,
				previous[j-1]+cost,
			)
		}
		previous, current = current, previous
	}

	return previous[len(target)]
}

// Closest returns the candidate with the smallest edit distance to value.
// Ties go to the earliest candidate. It returns "" when candidates is empty.
func Closest(value string, candidates ...string) string {
	best := ""
	bestDistance := -1
	for _, candidate := range candidates {
		distance := Levenshtein(value, candidate)
		if bestDistance < 0 || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}
