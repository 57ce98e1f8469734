package ranker

import (
	"slices"
)

// Multiplicities counts occurrences of every distinct rune in chars.
func Multiplicities(chars []rune) map[rune]int {
	counts := make(map[rune]int)

	for _, c := range chars {
		counts[c]++
	}

	return counts
}

// SortedAlphabet returns distinct runes of chars in ascending order.
// The alphabet joined with multiplicities gives the arrangement with rank 1.
func SortedAlphabet(chars []rune) []rune {
	alphabet := make([]rune, 0, len(chars))
	seen := make(map[rune]struct{}, len(chars))

	for _, c := range chars {
		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		alphabet = append(alphabet, c)
	}

	slices.Sort(alphabet)

	return alphabet
}

// consume removes one occurrence of c from remaining counts.
func consume(remaining map[rune]int, c rune) (int, error) {
	count := remaining[c]
	if count <= 0 {
		return 0, newInvariantViolationError("rune %q consumed more times than it occurs", c)
	}

	remaining[c] = count - 1

	return count, nil
}
