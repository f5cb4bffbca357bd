package tailoring

import (
	"regexp"
	"strings"
)

// Keyword extraction is intentionally shallow: a handful of regex families
// covering technical skills, analytical vocabulary and action verbs. This is
// a rule-based heuristic, not NLP.
var (
	technicalPattern = regexp.MustCompile(`(?i)\b(python|java|javascript|typescript|sql|nosql|react|node\.?js|angular|vue|aws|azure|gcp|docker|kubernetes|terraform|excel|tableau|power bi|spark|hadoop|kafka|airflow|pandas|numpy|tensorflow|pytorch|machine learning|deep learning|etl|rest|graphql|git|linux|html|css|scala|snowflake|redshift|looker)\b`)

	analyticalPattern = regexp.MustCompile(`(?i)\b(analy[sz]e\w*|analysis|analytics|report\w*|dashboard\w*|automat\w*|optimi[sz]\w*|forecast\w*|model\w*|visuali[sz]\w*|statistic\w*|segment\w*|pipeline\w*|experiment\w*)\b`)

	requirementPattern = regexp.MustCompile(`(?i)(?:experience with|proficiency in|knowledge of|skilled in|expertise in)\s+([A-Za-z0-9 ,/+#.&-]+?)(?:[.;\n]|$)`)
)

// actionVerbs is the fixed verb list used both for keyword extraction and
// bullet scoring.
var actionVerbs = []string{
	"manage", "managed", "lead", "led", "develop", "developed",
	"implement", "implemented", "design", "designed", "build", "built",
	"create", "created", "improve", "improved", "increase", "increased",
	"reduce", "reduced", "launch", "launched", "deliver", "delivered",
	"analyze", "analyzed", "coordinate", "collaborate", "streamline",
}

// ExtractJobKeywords pulls lowercased, deduplicated keywords out of a job
// description using the technical, analytical and action-verb families.
func ExtractJobKeywords(jobDescription string) []string {
	var keywords []string
	seen := make(map[string]bool)

	add := func(keyword string) {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" && !seen[keyword] {
			seen[keyword] = true
			keywords = append(keywords, keyword)
		}
	}

	for _, match := range technicalPattern.FindAllString(jobDescription, -1) {
		add(match)
	}
	for _, match := range analyticalPattern.FindAllString(jobDescription, -1) {
		add(match)
	}
	lower := strings.ToLower(jobDescription)
	for _, verb := range actionVerbs {
		if containsWord(lower, verb) {
			add(verb)
		}
	}

	return keywords
}

// ExtractRequirementPhrases captures the phrases following requirement
// markers like "experience with X" or "knowledge of X".
func ExtractRequirementPhrases(jobDescription string) []string {
	var phrases []string
	for _, match := range requirementPattern.FindAllStringSubmatch(jobDescription, -1) {
		phrase := strings.ToLower(strings.TrimSpace(match[1]))
		if phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}

// containsWord reports whether text contains s as a whole word.
func containsWord(text, s string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], s)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(s)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
