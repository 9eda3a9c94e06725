package textutil

import "strings"

// MatchRatio computes an edit-similarity score between two strings in the
// range [0, 1]: twice the total length of matching contiguous blocks divided
// by the combined length. Comparison is case-insensitive. Returns 0 when
// either string is empty.
func MatchRatio(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	matched := matchingBlockTotal(ra, rb)
	return 2 * float64(matched) / float64(len(ra)+len(rb))
}

// matchingBlockTotal sums the lengths of matching blocks found by recursively
// splitting around the longest common contiguous run.
func matchingBlockTotal(a, b []rune) int {
	ai, bi, size := longestCommonRun(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlockTotal(a[:ai], b[:bi])
	total += matchingBlockTotal(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonRun finds the longest contiguous run shared by a and b,
// returning its start offsets and length.
func longestCommonRun(a, b []rune) (int, int, int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	bestA, bestB, bestSize := 0, 0, 0
	// runLengths[j] holds the length of the common run ending at a[i-1], b[j-1].
	runLengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		prevDiag := 0
		for j := 1; j <= len(b); j++ {
			current := runLengths[j]
			if a[i-1] == b[j-1] {
				runLengths[j] = prevDiag + 1
				if runLengths[j] > bestSize {
					bestSize = runLengths[j]
					bestA = i - bestSize
					bestB = j - bestSize
				}
			} else {
				runLengths[j] = 0
			}
			prevDiag = current
		}
	}
	return bestA, bestB, bestSize
}
