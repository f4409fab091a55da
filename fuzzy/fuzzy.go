// Package fuzzy implements the token-set similarity used to rank story titles
// against a search query.
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Process normalizes a string before comparison: runes outside ASCII are
// dropped, every remaining rune that is not a letter, digit or underscore
// becomes a space, the result is lowercased and trimmed.
func Process(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.TrimSpace(mapped)
}

// Ratio returns the similarity of a and b in [0, 100], computed as
// 2*LCS/(len(a)+len(b)) over runes. Two empty strings are identical.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100
	}

	lcs := longestCommonSubsequence(ra, rb)
	return int(math.RoundToEven(200 * float64(lcs) / float64(total)))
}

// TokenSetRatio compares the token sets of a and b. Both strings are
// processed and split into unique words; the shared words are compared with
// each side's shared-plus-remaining words and the best Ratio wins. The
// result does not depend on word order or argument order. If either string
// has no words after processing the score is 0.
func TokenSetRatio(a, b string) int {
	pa, pb := Process(a), Process(b)
	if pa == "" || pb == "" {
		return 0
	}

	setA, setB := tokenSet(pa), tokenSet(pb)

	var sect, onlyA, onlyB []string
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			sect = append(sect, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if _, ok := setA[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(sect)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(sect, " ")
	withA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	withB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	return max(Ratio(base, withA), Ratio(base, withB), Ratio(withA, withB))
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func longestCommonSubsequence(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
