package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpacePattern = regexp.MustCompile(`[ \t]+`)
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes decoded document text while preserving the line
// structure the resume parser depends on. Line endings collapse to LF,
// runs of spaces inside a line collapse to one, and runs of blank lines
// collapse to a single blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = cleanLine(line)
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunPattern.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a single line and collapses interior whitespace.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return innerSpacePattern.ReplaceAllString(trimmed, " ")
}
