package ats

import (
	"testing"

	"github.com/jobfit-ai/jobfit-server/internal/types"
	"github.com/stretchr/testify/assert"
)

func fullResume() *types.ParsedResume {
	return &types.ParsedResume{
		Contact: types.Contact{
			Name:  "John Smith",
			Email: "john@x.com",
			Phone: "(555) 123-4567",
		},
		Summary: "Engineer.",
		Experience: []types.ExperienceEntry{
			{
				Role:      "Engineer",
				Company:   "Acme",
				StartDate: "2020",
				Bullets:   []string{"Improved throughput by 25%"},
			},
		},
		Education: []types.EducationEntry{
			{Degree: "Bachelor of Science", Institution: "MIT"},
		},
		Skills: []string{"Python", "SQL", "Go", "Docker", "Kubernetes"},
	}
}

func TestScore_FullResume(t *testing.T) {
	// 10+10+5+15+30+15+15+10
	assert.Equal(t, 100, Score(fullResume()))
}

func TestScore_NameAndEmailOnly(t *testing.T) {
	parsed := &types.ParsedResume{
		Contact: types.Contact{Name: "John Smith", Email: "john@x.com"},
	}
	assert.Equal(t, 20, Score(parsed))
}

func TestScore_Empty(t *testing.T) {
	assert.Equal(t, 0, Score(&types.ParsedResume{}))
	assert.Equal(t, 0, Score(nil))
}

func TestScore_Monotonic(t *testing.T) {
	parsed := &types.ParsedResume{
		Contact: types.Contact{Name: "John Smith", Email: "john@x.com"},
		Summary: "Engineer.",
	}
	before := Score(parsed)

	parsed.Contact.Phone = "(555) 123-4567"
	after := Score(parsed)

	assert.GreaterOrEqual(t, after, before)
	assert.Equal(t, before+5, after)
}

func TestScore_WithinRange(t *testing.T) {
	resumes := []*types.ParsedResume{
		{},
		fullResume(),
		{Summary: "x", Skills: []string{"a"}},
	}
	for _, parsed := range resumes {
		score := Score(parsed)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestMetricPattern(t *testing.T) {
	tests := []struct {
		bullet string
		want   bool
	}{
		{"Improved throughput by 25%", true},
		{"Saved $40000 annually", true},
		{"Managed 10+ engineers", true},
		{"Grew revenue 1,500 %", true},
		{"Built systems", false},
		{"Worked across teams", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MetricPattern.MatchString(tt.bullet), "bullet: %q", tt.bullet)
	}
}

func TestScore_MetricBonusRequiresExperience(t *testing.T) {
	// A metric bonus can only come from experience bullets.
	withMetric := fullResume()
	withoutMetric := fullResume()
	withoutMetric.Experience[0].Bullets = []string{"Built systems"}

	assert.Equal(t, 100, Score(withMetric))
	assert.Equal(t, 90, Score(withoutMetric))
}
