// Package recommend scores a fixed taxonomy of job archetypes against a
// parsed resume and returns a ranked list of role recommendations.
package recommend

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// Blend weights for the final fit score
const (
	semanticWeight = 0.7
	keywordWeight  = 0.3
)

// maxRecommendations caps the ranked list returned to callers.
const maxRecommendations = 10

// noiseCeiling bounds the random addition applied to semantic scores to
// emulate the variance of an embedding model.
const noiseCeiling = 20.0

// NoiseFunc supplies the bounded random addition for semantic scores.
// Injecting it keeps tests deterministic.
type NoiseFunc func() float64

// Recommender ranks job archetypes for a resume. Safe for concurrent use as
// long as the noise func is.
type Recommender struct {
	noise NoiseFunc
}

// New creates a Recommender with the default randomized noise source.
func New() *Recommender {
	return NewWithNoise(func() float64 {
		return rand.Float64() * noiseCeiling //nolint:gosec // statistical jitter, not security-sensitive
	})
}

// NewWithNoise creates a Recommender with a custom noise source. Pass a func
// returning 0 for deterministic output.
func NewWithNoise(noise NoiseFunc) *Recommender {
	return &Recommender{noise: noise}
}

// Generate scores every taxonomy entry against the resume and returns the top
// entries sorted by fit score, descending. It never fails: an empty resume
// still yields a full ranked list with low scores.
func (r *Recommender) Generate(parsed *types.ParsedResume) []types.RoleRecommendation {
	userSkills := normalizeSkills(parsed.Skills)
	userProfile := buildUserProfile(parsed)
	userTokens := tokenSet(userProfile)

	recommendations := make([]types.RoleRecommendation, 0, len(jobTaxonomy))
	for _, job := range jobTaxonomy {
		keywordScore := keywordOverlapScore(userSkills, normalizeSkills(job.RequiredSkills))
		semanticScore := r.semanticScore(userTokens, job.Description)
		fitScore := int(math.Round(float64(semanticScore)*semanticWeight + float64(keywordScore)*keywordWeight))

		recommendations = append(recommendations, types.RoleRecommendation{
			Title:          job.Title,
			Description:    job.Description,
			RequiredSkills: job.RequiredSkills,
			FitScore:       fitScore,
			SemanticScore:  semanticScore,
			KeywordScore:   keywordScore,
		})
	}

	// Stable sort preserves taxonomy order for equal scores.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].FitScore > recommendations[j].FitScore
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// keywordOverlapScore returns the percentage of job skills matched by at
// least one user skill.
func keywordOverlapScore(userSkills, jobSkills []string) int {
	if len(jobSkills) == 0 {
		return 0
	}

	matches := 0
	for _, jobSkill := range jobSkills {
		for _, userSkill := range userSkills {
			if skillsMatch(userSkill, jobSkill) {
				matches++
				break
			}
		}
	}

	return int(math.Round(float64(matches) / float64(len(jobSkills)) * 100))
}

// semanticScore computes the lexical-overlap similarity between the user
// profile and a job description, scaled to 0-100 with bounded noise added.
// This is a stand-in for a real embedding model.
func (r *Recommender) semanticScore(userTokens map[string]struct{}, jobDescription string) int {
	jobTokens := tokenSet(strings.ToLower(jobDescription))
	similarity := overlapRatio(userTokens, jobTokens)

	score := int(math.Round(similarity*100 + r.noise()))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// normalizeSkills lowercases and trims a skill list.
func normalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(skill)))
	}
	return normalized
}

// buildUserProfile synthesizes a lowercased free-text profile out of the
// resume summary, experience and skills for word-overlap comparison.
func buildUserProfile(parsed *types.ParsedResume) string {
	var parts []string

	if parsed.Summary != "" {
		parts = append(parts, parsed.Summary)
	}
	for _, exp := range parsed.Experience {
		detail := strings.Join(exp.Bullets, " ")
		if detail == "" {
			detail = exp.Description
		}
		parts = append(parts, exp.Role+" at "+exp.Company+": "+detail)
	}
	if len(parsed.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(parsed.Skills, ", "))
	}

	return strings.ToLower(strings.Join(parts, " "))
}
