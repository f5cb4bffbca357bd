package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

// maxHeaderLength bounds how long a line can be and still count as a heading.
const maxHeaderLength = 50

var labelHeaderPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z ]{0,30}:\s*$`)

// isHeaderLine reports whether a line looks like a section heading. A heading
// is short and either all caps, a "Word:" label, or a short capitalized
// phrase. Lines carrying list delimiters or sentence punctuation are content,
// not headings.
func isHeaderLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) >= maxHeaderLength {
		return false
	}
	if strings.ContainsAny(trimmed, ",|•;") {
		return false
	}
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
		return false
	}
	if strings.HasSuffix(trimmed, ".") {
		return false
	}

	hasLetter := false
	hasLower := false
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				hasLower = true
			}
		}
	}
	if !hasLetter {
		return false
	}
	if !hasLower {
		return true // all caps
	}
	if labelHeaderPattern.MatchString(trimmed) {
		return true
	}

	words := strings.Fields(trimmed)
	if len(words) <= 3 && allCapitalized(words) {
		return true
	}

	return false
}

// allCapitalized reports whether every word starts with an uppercase letter.
func allCapitalized(words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, word := range words {
		r := []rune(word)[0]
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// findSectionHeading returns the index of the first heading line whose
// lowercased text contains one of the keywords, or -1.
func findSectionHeading(lines []string, keywords []string) int {
	for i, line := range lines {
		if !isHeaderLine(line) {
			continue
		}
		lower := strings.ToLower(line)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return i
			}
		}
	}
	return -1
}

// sectionLines collects the non-empty trimmed lines between a matching
// heading and the next heading.
func sectionLines(lines []string, keywords []string) []string {
	start := findSectionHeading(lines, keywords)
	if start < 0 {
		return nil
	}

	var section []string
	for _, line := range lines[start+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isHeaderLine(line) {
			break
		}
		section = append(section, trimmed)
	}
	return section
}
