// Package extractor turns raw resume text into structured ParsedResume records.
// Extraction is best-effort: resume formatting is uncontrolled input, so every
// section falls back to empty values rather than failing.
package extractor

import (
	"regexp"
	"strings"

	"github.com/jobfit-ai/jobfit-server/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+\.[A-Za-z0-9.\-]+`)
	phonePattern = regexp.MustCompile(`\+?\(?\d[\d\s\-.()]{7,}\d`)

	locationPattern = regexp.MustCompile(`(?i)^location:\s*(.+)$`)
	linkedinPattern = regexp.MustCompile(`(?i)^linkedin:\s*(.+)$`)
	websitePattern  = regexp.MustCompile(`(?i)^website:\s*(.+)$`)
)

// Extract parses raw resume text into a ParsedResume. It never fails: sections
// that cannot be located produce empty fields.
func Extract(text string) *types.ParsedResume {
	lines := splitLines(text)

	parsed := &types.ParsedResume{
		Experience: []types.ExperienceEntry{},
		Education:  []types.EducationEntry{},
		Skills:     []string{},
	}

	parsed.Contact = extractContact(contactBlock(text))
	parsed.Summary = extractSummary(lines)
	parsed.Skills = extractSkills(lines)
	parsed.Experience = extractExperience(lines)
	parsed.Education = extractEducation(lines)
	parsed.Certifications = extractCertifications(lines)
	parsed.Extras = extractExtras(lines)

	return parsed
}

// splitLines normalizes line endings and splits into raw lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// contactBlock returns the portion of the text that holds contact details:
// everything before a "PROFESSIONAL SUMMARY" heading, or the first
// blank-line-delimited paragraph when no such heading exists.
func contactBlock(text string) string {
	lines := splitLines(text)

	for i, line := range lines {
		if strings.Contains(strings.ToUpper(line), "PROFESSIONAL SUMMARY") {
			return strings.Join(lines[:i], "\n")
		}
	}

	// First paragraph: lines up to the first blank line after content started.
	var block []string
	started := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if started {
				break
			}
			continue
		}
		started = true
		block = append(block, line)
	}
	return strings.Join(block, "\n")
}

// extractContact pulls name, email, phone and labeled fields out of the
// contact block.
func extractContact(block string) types.Contact {
	contact := types.Contact{}

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if contact.Name == "" {
			contact.Name = trimmed
		}
		if contact.Email == "" {
			contact.Email = emailPattern.FindString(trimmed)
		}
		if contact.Phone == "" && !emailPattern.MatchString(trimmed) {
			if match := phonePattern.FindString(trimmed); countDigits(match) >= 10 {
				contact.Phone = match
			}
		}
		if m := locationPattern.FindStringSubmatch(trimmed); m != nil {
			contact.Location = strings.TrimSpace(m[1])
		}
		if m := linkedinPattern.FindStringSubmatch(trimmed); m != nil {
			contact.LinkedIn = strings.TrimSpace(m[1])
		}
		if m := websitePattern.FindStringSubmatch(trimmed); m != nil {
			contact.Website = strings.TrimSpace(m[1])
		}
	}

	return contact
}

// extractSummary collects the lines under a summary-style heading into a
// single string.
func extractSummary(lines []string) string {
	section := sectionLines(lines, []string{"summary", "objective", "profile"})
	return strings.Join(section, " ")
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
