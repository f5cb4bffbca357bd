package recommend

import (
	"strings"
	"testing"

	"github.com/jobfit-ai/jobfit-server/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noNoise() float64 { return 0 }

func analystResume() *types.ParsedResume {
	return &types.ParsedResume{
		Summary: "Data analyst with strong statistical background.",
		Experience: []types.ExperienceEntry{
			{
				Role:      "Data Analyst",
				Company:   "Acme",
				StartDate: "2020",
				Bullets:   []string{"Analyze complex datasets using statistical methods and visualization tools"},
			},
		},
		Skills: []string{"SQL", "Python", "Tableau", "Excel", "Statistics"},
	}
}

func TestGenerate_RankedAndBounded(t *testing.T) {
	recs := NewWithNoise(noNoise).Generate(analystResume())

	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 10)

	for i, rec := range recs {
		assert.GreaterOrEqual(t, rec.FitScore, 0, "rec %d", i)
		assert.LessOrEqual(t, rec.FitScore, 100, "rec %d", i)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].FitScore, rec.FitScore, "not sorted at %d", i)
		}
	}
}

func TestGenerate_AnalystSkillsFavorAnalystRoles(t *testing.T) {
	recs := NewWithNoise(noNoise).Generate(analystResume())

	// Every required skill of Senior Data Analyst except BI overlaps the
	// resume skills, so it should beat clearly unrelated archetypes.
	scores := make(map[string]int)
	for _, rec := range recs {
		scores[rec.Title] = rec.KeywordScore
	}
	assert.Greater(t, scores["Senior Data Analyst"], scores["Business Analyst"])
}

func TestGenerate_EmptyResumeStillRanksEverything(t *testing.T) {
	recs := NewWithNoise(noNoise).Generate(&types.ParsedResume{})

	assert.Len(t, recs, 10)
	for _, rec := range recs {
		assert.Equal(t, 0, rec.KeywordScore)
		assert.GreaterOrEqual(t, rec.FitScore, 0)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	r := NewWithNoise(noNoise)
	assert.Equal(t, r.Generate(analystResume()), r.Generate(analystResume()))
}

func TestGenerate_TieBreakPreservesTaxonomyOrder(t *testing.T) {
	// An empty resume gives every archetype identical scores, so the output
	// must preserve taxonomy order.
	recs := NewWithNoise(noNoise).Generate(&types.ParsedResume{})

	require.Len(t, recs, 10)
	assert.Equal(t, jobTaxonomy[0].Title, recs[0].Title)
	assert.Equal(t, jobTaxonomy[1].Title, recs[1].Title)
}

func TestGenerate_NoiseIsCapped(t *testing.T) {
	recs := NewWithNoise(func() float64 { return noiseCeiling }).Generate(analystResume())
	for _, rec := range recs {
		assert.LessOrEqual(t, rec.SemanticScore, 100)
	}
}

func TestKeywordOverlapScore(t *testing.T) {
	tests := []struct {
		name       string
		userSkills []string
		jobSkills  []string
		want       int
	}{
		{"exact", []string{"sql", "python"}, []string{"sql", "python"}, 100},
		{"half", []string{"sql"}, []string{"sql", "python"}, 50},
		{"substring either direction", []string{"microsoft excel"}, []string{"excel"}, 100},
		{"no overlap", []string{"java"}, []string{"sql"}, 0},
		{"empty job skills", []string{"sql"}, nil, 0},
		{"empty user skills", nil, []string{"sql"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keywordOverlapScore(tt.userSkills, tt.jobSkills))
		})
	}
}

func TestSkillsMatch_EditDistance(t *testing.T) {
	// One transposition-ish typo in a long word stays above the threshold.
	assert.True(t, skillsMatch("javascript", "javascripts"))
	assert.False(t, skillsMatch("go", "sql"))
}

func TestStringSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, stringSimilarity("python", "python"), 0.001)
	assert.InDelta(t, 0.0, stringSimilarity("ab", "xy"), 0.001)
	assert.InDelta(t, 1.0, stringSimilarity("", ""), 0.001)
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestBuildUserProfile(t *testing.T) {
	profile := buildUserProfile(analystResume())

	assert.Contains(t, profile, "data analyst")
	assert.Contains(t, profile, "acme")
	assert.Contains(t, profile, "skills: sql, python")
	assert.Equal(t, profile, strings.ToLower(profile))
}
