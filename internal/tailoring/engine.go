// Package tailoring rewrites a parsed resume to better match a specific job
// description: reordering and augmenting bullets, splicing in missing
// keywords and appending quantified outcomes, with a full change log.
package tailoring

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/jobfit-ai/jobfit-server/internal/ats"
	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// maxSummaryKeywords bounds how many missing keywords get spliced into the
// summary.
const maxSummaryKeywords = 2

// maxInjectedBullets is how many top bullets per entry receive a keyword
// injection.
const maxInjectedBullets = 3

// maxAddedSkills bounds the skills-enhancement step.
const maxAddedSkills = 3

// metricBonus and verbBonus weight bullet scoring alongside raw keyword hits.
const (
	metricBonus = 2
	verbBonus   = 1
)

// metricClause maps a bullet's leading verb family to a plausible quantified
// clause to append.
var metricClauses = []struct {
	verb   string
	clause string
}{
	{"improv", ", improving efficiency by 25%"},
	{"increas", ", increasing output by 30%"},
	{"reduc", ", reducing costs by 40%"},
	{"manag", " across 5+ concurrent projects"},
	{"lead", ", leading a team of 8+ people"},
	{"led", ", leading a team of 8+ people"},
}

// Tailor rewrites a deep copy of the resume against the job description and
// returns it with the ordered improvement log. The input resume is never
// mutated. An empty or keyword-free description degrades to a no-op.
func Tailor(original *types.ParsedResume, jobDescription string) *types.TailoredContent {
	tailored := original.Clone()
	result := &types.TailoredContent{
		TailoredContent: tailored,
		Improvements:    []types.Improvement{},
	}

	keywords := ExtractJobKeywords(jobDescription)
	if len(keywords) == 0 {
		return result
	}

	result.Improvements = append(result.Improvements, tailorSummary(tailored, keywords)...)
	for i := range tailored.Experience {
		result.Improvements = append(result.Improvements, tailorEntry(&tailored.Experience[i], i, keywords)...)
	}
	result.Improvements = append(result.Improvements, enhanceSkills(tailored, keywords)...)

	return result
}

// tailorSummary splices up to two missing keywords into the summary.
func tailorSummary(resume *types.ParsedResume, keywords []string) []types.Improvement {
	if resume.Summary == "" {
		return nil
	}

	missing := missingKeywords(resume.Summary, keywords, maxSummaryKeywords)
	if len(missing) == 0 {
		return nil
	}

	original := resume.Summary
	resume.Summary = strings.TrimRight(resume.Summary, " ") +
		" Proficient in " + joinNaturally(missing) + "."

	return []types.Improvement{{
		Type:      types.ImprovementKeywordAdded,
		Section:   "summary",
		Original:  original,
		Improved:  resume.Summary,
		Reasoning: fmt.Sprintf("Added %s to align the summary with the job description", joinNaturally(missing)),
	}}
}

// tailorEntry reorders an entry's bullets by relevance, injects missing
// keywords into the strongest bullets and appends quantified outcomes to
// bullets that have none.
func tailorEntry(entry *types.ExperienceEntry, index int, keywords []string) []types.Improvement {
	var improvements []types.Improvement
	section := fmt.Sprintf("experience[%d]", index)

	// a. Reorder bullets by keyword hits, metrics and action verbs.
	before := append([]string{}, entry.Bullets...)
	sort.SliceStable(entry.Bullets, func(i, j int) bool {
		return bulletScore(entry.Bullets[i], keywords) > bulletScore(entry.Bullets[j], keywords)
	})
	if reordered(before, entry.Bullets) {
		improvements = append(improvements, types.Improvement{
			Type:      types.ImprovementBulletReordered,
			Section:   section,
			Original:  strings.Join(before, "\n"),
			Improved:  strings.Join(entry.Bullets, "\n"),
			Reasoning: "Moved the most job-relevant bullets to the top of the entry",
		})
	}

	// b. Inject one missing keyword into each of the top bullets.
	for i := 0; i < len(entry.Bullets) && i < maxInjectedBullets; i++ {
		missing := missingKeywords(entry.Bullets[i], keywords, 1)
		if len(missing) == 0 {
			continue
		}
		original := entry.Bullets[i]
		entry.Bullets[i] = injectKeyword(original, missing[0])
		improvements = append(improvements, types.Improvement{
			Type:      types.ImprovementKeywordAdded,
			Section:   section,
			Original:  original,
			Improved:  entry.Bullets[i],
			Reasoning: fmt.Sprintf("Worked %q into a high-relevance bullet", missing[0]),
		})
	}

	// c. Append a quantified outcome to bullets that lack one.
	for i, bullet := range entry.Bullets {
		if ats.MetricPattern.MatchString(bullet) {
			continue
		}
		enhanced, ok := appendMetric(bullet)
		if !ok {
			continue
		}
		entry.Bullets[i] = enhanced
		improvements = append(improvements, types.Improvement{
			Type:      types.ImprovementMetricEnhanced,
			Section:   section,
			Original:  bullet,
			Improved:  enhanced,
			Reasoning: "Added a quantifiable outcome to strengthen the bullet",
		})
	}

	return improvements
}

// enhanceSkills appends up to three capitalized job keywords the skill list
// does not already cover, logging a single improvement.
func enhanceSkills(resume *types.ParsedResume, keywords []string) []types.Improvement {
	var missing []string
	for _, keyword := range keywords {
		if len(missing) >= maxAddedSkills {
			break
		}
		covered := false
		for _, skill := range resume.Skills {
			lower := strings.ToLower(skill)
			if strings.Contains(lower, keyword) || strings.Contains(keyword, lower) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, capitalize(keyword))
		}
	}
	if len(missing) == 0 {
		return nil
	}

	original := strings.Join(resume.Skills, ", ")
	resume.Skills = append(resume.Skills, missing...)

	return []types.Improvement{{
		Type:      types.ImprovementKeywordAdded,
		Section:   "skills",
		Original:  original,
		Improved:  strings.Join(resume.Skills, ", "),
		Reasoning: fmt.Sprintf("Added %s from the job description to the skill list", joinNaturally(missing)),
	}}
}

// bulletScore rates a bullet by keyword hits plus bonuses for quantified
// metrics and leading action verbs.
func bulletScore(bullet string, keywords []string) int {
	lower := strings.ToLower(bullet)

	score := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			score++
		}
	}
	if ats.MetricPattern.MatchString(bullet) {
		score += metricBonus
	}
	for _, verb := range actionVerbs {
		if strings.HasPrefix(lower, verb) {
			score += verbBonus
			break
		}
	}
	return score
}

// missingKeywords returns up to limit keywords not already present in text.
func missingKeywords(text string, keywords []string, limit int) []string {
	lower := strings.ToLower(text)
	var missing []string
	for _, keyword := range keywords {
		if len(missing) >= limit {
			break
		}
		if !strings.Contains(lower, keyword) {
			missing = append(missing, keyword)
		}
	}
	return missing
}

// injectKeyword splices a keyword into a bullet near an anchor word, or
// appends a clause when no anchor exists.
func injectKeyword(bullet, keyword string) string {
	lower := strings.ToLower(bullet)

	if idx := strings.Index(lower, "using "); idx >= 0 {
		insert := idx + len("using ")
		return bullet[:insert] + keyword + " and " + bullet[insert:]
	}
	if idx := strings.Index(lower, "data"); idx >= 0 {
		insert := idx + len("data")
		return bullet[:insert] + " with " + keyword + bullet[insert:]
	}
	return strings.TrimRight(bullet, ". ") + ", applying " + keyword
}

// appendMetric appends a quantified clause matched to the bullet's verb.
// Bullets with no recognized verb are left alone.
func appendMetric(bullet string) (string, bool) {
	lower := strings.ToLower(bullet)
	for _, mc := range metricClauses {
		if strings.Contains(lower, mc.verb) {
			return strings.TrimRight(bullet, ". ") + mc.clause, true
		}
	}
	return bullet, false
}

// reordered reports whether two bullet lists differ in order.
func reordered(before, after []string) bool {
	for i := range before {
		if before[i] != after[i] {
			return true
		}
	}
	return false
}

// joinNaturally joins words as "a, b and c".
func joinNaturally(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	default:
		return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
	}
}

// capitalize uppercases the first rune of a keyword.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
