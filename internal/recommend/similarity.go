package recommend

import "strings"

// similarityThreshold is the normalized edit-distance similarity above which
// two skill names count as the same skill.
const similarityThreshold = 0.8

// minTokenLength filters out short stopword-ish tokens before computing
// word-overlap similarity.
const minTokenLength = 3

// skillsMatch reports whether a user skill satisfies a required job skill:
// case-insensitive substring containment in either direction, or a high
// normalized edit-distance similarity. Both inputs are already lowercased.
func skillsMatch(userSkill, jobSkill string) bool {
	if strings.Contains(userSkill, jobSkill) || strings.Contains(jobSkill, userSkill) {
		return true
	}
	return stringSimilarity(userSkill, jobSkill) > similarityThreshold
}

// stringSimilarity returns a Levenshtein-based similarity in [0,1]:
// 1 - distance/len(longer).
func stringSimilarity(a, b string) float64 {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return 1.0
	}
	distance := levenshtein(longer, shorter)
	return float64(len(longer)-distance) / float64(len(longer))
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(curr[i-1]+1, min(prev[i]+1, prev[i-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// tokenSet splits lowercased text on whitespace keeping only tokens longer
// than minTokenLength.
func tokenSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range strings.Fields(text) {
		if len(token) > minTokenLength {
			set[token] = struct{}{}
		}
	}
	return set
}

// overlapRatio returns |intersection| / max(|a|,|b|), guarding against empty
// sets.
func overlapRatio(a, b map[string]struct{}) float64 {
	common := 0
	for token := range a {
		if _, ok := b[token]; ok {
			common++
		}
	}
	denom := len(a)
	if len(b) > denom {
		denom = len(b)
	}
	if denom < 1 {
		denom = 1
	}
	return float64(common) / float64(denom)
}
