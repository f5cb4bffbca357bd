package extractor

import (
	"regexp"
	"strings"

	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// maxSkills caps the extracted skill list to bound downstream scoring cost.
const maxSkills = 20

// minProseBulletLength is the threshold above which a plain prose line under
// an experience entry is treated as a bullet.
const minProseBulletLength = 20

var (
	skillSplitPattern  = regexp.MustCompile(`[,•|;]`)
	skillLabelPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z /&]*:\s*`)
	yearPattern        = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	degreePattern      = regexp.MustCompile(`(?i)\b(?:bachelor|master|phd|doctorate|b\.?s\.?|b\.?a\.?|m\.?s\.?|m\.?a\.?|mba|associate)\b`)
	gpaPattern         = regexp.MustCompile(`(?i)gpa:?\s*([0-9.]+)`)
	dateRangeSeparator = regexp.MustCompile(`\s*[-–—]\s*`)
)

var (
	skillsKeywords        = []string{"skills", "technologies", "technical", "competencies"}
	experienceKeywords    = []string{"experience", "employment", "work", "career"}
	educationKeywords     = []string{"education", "academic"}
	certificationKeywords = []string{"certification", "license"}
	extrasKeywords        = []string{"additional", "interests", "awards", "projects", "activities", "volunteer"}
)

// extractSkills collects and splits the lines of the skills section.
func extractSkills(lines []string) []string {
	skills := []string{}

	for _, line := range sectionLines(lines, skillsKeywords) {
		// Drop a leading "Languages:"-style category label.
		line = skillLabelPattern.ReplaceAllString(line, "")
		for _, part := range skillSplitPattern.Split(line, -1) {
			skill := strings.TrimSpace(part)
			if skill == "" {
				continue
			}
			if len(skills) >= maxSkills {
				return skills
			}
			skills = append(skills, skill)
		}
	}

	return skills
}

// extractExperience walks the experience section, starting a new entry on
// every header-shaped line and accumulating bullets in between.
func extractExperience(lines []string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}
	var current *types.ExperienceEntry

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range sectionLines(lines, experienceKeywords) {
		if bullet, ok := bulletText(line); ok {
			if current != nil {
				current.Bullets = append(current.Bullets, bullet)
			}
			continue
		}

		if isEntryStart(line) {
			flush()
			entry := parseEntryHeader(line)
			current = &entry
			continue
		}

		if current != nil && len(line) >= minProseBulletLength {
			current.Bullets = append(current.Bullets, line)
		}
	}
	flush()

	return entries
}

// bulletText strips a bullet glyph prefix, reporting whether the line was a
// bullet at all.
func bulletText(line string) (string, bool) {
	for _, glyph := range []string{"•", "-", "*"} {
		if strings.HasPrefix(line, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(line, glyph)), true
		}
	}
	return "", false
}

// isEntryStart reports whether a line opens a new experience entry: a
// "Title | Company | Dates" shape, or a line carrying a year or "present".
func isEntryStart(line string) bool {
	if strings.Count(line, "|") >= 2 {
		return true
	}
	if yearPattern.MatchString(line) {
		return true
	}
	return strings.Contains(strings.ToLower(line), "present")
}

// parseEntryHeader parses an entry-opening line, falling back to Unknown
// markers for anything it cannot read.
func parseEntryHeader(line string) types.ExperienceEntry {
	entry := types.ExperienceEntry{
		Role:      "Unknown Role",
		Company:   "Unknown Company",
		StartDate: "Unknown",
		Bullets:   []string{},
	}

	parts := strings.Split(line, "|")
	if len(parts) >= 3 {
		if role := strings.TrimSpace(parts[0]); role != "" {
			entry.Role = role
		}
		if company := strings.TrimSpace(parts[1]); company != "" {
			entry.Company = company
		}
		entry.StartDate, entry.EndDate = parseDateRange(strings.Join(parts[2:], "|"))
		return entry
	}

	// No pipe shape: salvage what we can from a dated line.
	if year := yearPattern.FindString(line); year != "" {
		entry.StartDate = year
		if role := strings.TrimSpace(strings.Trim(line[:strings.Index(line, year)], " -–,|")); role != "" {
			entry.Role = role
		}
	}
	if strings.Contains(strings.ToLower(line), "present") {
		entry.EndDate = "Present"
	}
	return entry
}

// parseDateRange splits a "Start - End" string into its halves.
func parseDateRange(dates string) (string, string) {
	parts := dateRangeSeparator.Split(strings.TrimSpace(dates), 2)
	start := strings.TrimSpace(parts[0])
	if start == "" {
		start = "Unknown"
	}
	end := ""
	if len(parts) > 1 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

// extractEducation reads degree lines from the education section.
func extractEducation(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}

	for _, line := range sectionLines(lines, educationKeywords) {
		if !degreePattern.MatchString(line) {
			continue
		}

		entry := types.EducationEntry{Degree: line}
		parts := strings.Split(line, "|")
		if len(parts) >= 2 {
			entry.Degree = strings.TrimSpace(parts[0])
			entry.Institution = strings.TrimSpace(parts[1])
		}
		if len(parts) >= 3 {
			entry.GraduationDate = strings.TrimSpace(parts[2])
		}
		if m := gpaPattern.FindStringSubmatch(line); m != nil {
			entry.GPA = m[1]
			entry.GraduationDate = strings.TrimSpace(gpaPattern.ReplaceAllString(entry.GraduationDate, ""))
		}
		entries = append(entries, entry)
	}

	return entries
}

// extractCertifications reads "Name | Issuer | Date" lines from the
// certifications section.
func extractCertifications(lines []string) []types.Certification {
	var certs []types.Certification

	for _, line := range sectionLines(lines, certificationKeywords) {
		if bullet, ok := bulletText(line); ok {
			line = bullet
		}
		cert := types.Certification{Name: line}
		parts := strings.Split(line, "|")
		if len(parts) >= 2 {
			cert.Name = strings.TrimSpace(parts[0])
			cert.Issuer = strings.TrimSpace(parts[1])
		}
		if len(parts) >= 3 {
			cert.Date = strings.TrimSpace(parts[2])
		}
		certs = append(certs, cert)
	}

	return certs
}

// extractExtras collects any remaining labeled sections (projects, awards,
// interests) as plain lines.
func extractExtras(lines []string) []string {
	var extras []string
	for _, line := range sectionLines(lines, extrasKeywords) {
		if bullet, ok := bulletText(line); ok {
			line = bullet
		}
		extras = append(extras, line)
	}
	return extras
}
