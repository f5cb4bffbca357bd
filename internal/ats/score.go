// Package ats scores ParsedResume records for Applicant Tracking System
// compatibility using a deterministic additive point system.
package ats

import (
	"regexp"

	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// Points awarded per resume section. Presence is boolean: there is no
// partial credit inside a category.
const (
	namePoints       = 10
	emailPoints      = 10
	phonePoints      = 5
	summaryPoints    = 15
	experiencePoints = 30
	educationPoints  = 15
	skillsPoints     = 15
	metricPoints     = 10

	maxScore = 100
)

// MetricPattern matches quantifiable achievements: percentages, dollar
// amounts and "N+" counts. Shared with the tailoring engine.
var MetricPattern = regexp.MustCompile(`\d+[\d.,]*\s*%|\$\d+|\d+\+`)

// Score maps a parsed resume to an ATS compatibility score in [0,100].
func Score(parsed *types.ParsedResume) int {
	if parsed == nil {
		return 0
	}

	score := 0
	if parsed.Contact.Name != "" {
		score += namePoints
	}
	if parsed.Contact.Email != "" {
		score += emailPoints
	}
	if parsed.Contact.Phone != "" {
		score += phonePoints
	}
	if parsed.Summary != "" {
		score += summaryPoints
	}
	if len(parsed.Experience) > 0 {
		score += experiencePoints
	}
	if len(parsed.Education) > 0 {
		score += educationPoints
	}
	if len(parsed.Skills) > 0 {
		score += skillsPoints
	}
	if hasQuantifiedBullet(parsed.Experience) {
		score += metricPoints
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// hasQuantifiedBullet reports whether any experience bullet carries a
// quantifiable metric.
func hasQuantifiedBullet(experience []types.ExperienceEntry) bool {
	for _, entry := range experience {
		for _, bullet := range entry.Bullets {
			if MetricPattern.MatchString(bullet) {
				return true
			}
		}
	}
	return false
}
