package pipeline

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobfit-ai/jobfit-server/internal/recommend"
	"github.com/jobfit-ai/jobfit-server/internal/store"
)

const sampleResume = `Jane Doe
jane@example.com
(555) 123-4567

PROFESSIONAL SUMMARY
Data analyst with five years of experience building reporting pipelines.

EXPERIENCE
Data Analyst | Acme Corp | 2019-2023
• Built Tableau dashboards that reduced reporting time by 40%
• Automated SQL data quality checks

EDUCATION
B.S. Statistics | State University | 2019

SKILLS
Python, SQL, Tableau, Excel`

func newTestProcessor(s store.Store) *Processor {
	return New(s, recommend.NewWithNoise(func() float64 { return 0 }), nil)
}

func TestProcess_FullRun(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	resume := store.NewResume("resume.txt", "txt", sampleResume)
	require.NoError(t, s.CreateResume(ctx, resume))

	require.NoError(t, newTestProcessor(s).Process(ctx, resume.ID))

	got, err := s.GetResume(ctx, resume.ID)
	require.NoError(t, err)
	assert.Equal(t, store.StatusCompleted, got.ProcessingStatus)
	require.NotNil(t, got.ParsedData)
	assert.Equal(t, "Jane Doe", got.ParsedData.Contact.Name)
	assert.Equal(t, "jane@example.com", got.ParsedData.Contact.Email)
	assert.Greater(t, got.ATSScore, 0)

	recs, err := s.GetRecommendations(ctx, resume.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, recs)

	activities, err := s.ListActivities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, store.ActivityParsed, activities[0].Type)
}

func TestProcess_MissingResume(t *testing.T) {
	s := store.NewMemoryStore()

	err := newTestProcessor(s).Process(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestProcess_EmptyContentStillCompletes(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	resume := store.NewResume("empty.txt", "txt", "")
	require.NoError(t, s.CreateResume(ctx, resume))

	require.NoError(t, newTestProcessor(s).Process(ctx, resume.ID))

	got, _ := s.GetResume(ctx, resume.ID)
	assert.Equal(t, store.StatusCompleted, got.ProcessingStatus)
	assert.Equal(t, 0, got.ATSScore)
}

func TestProcess_ReprocessReplacesRecommendations(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	resume := store.NewResume("resume.txt", "txt", sampleResume)
	require.NoError(t, s.CreateResume(ctx, resume))

	p := newTestProcessor(s)
	require.NoError(t, p.Process(ctx, resume.ID))
	first, _ := s.GetRecommendations(ctx, resume.ID)
	require.NoError(t, p.Process(ctx, resume.ID))
	second, _ := s.GetRecommendations(ctx, resume.ID)

	require.Equal(t, len(first), len(second))
	// A fresh set is stored each run rather than appended to.
	assert.NotEqual(t, first[0].ID, second[0].ID)
}
