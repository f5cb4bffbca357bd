package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jobfit-ai/jobfit-server/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ResumeLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	resume := NewResume("resume.pdf", "pdf", "raw text")
	require.NoError(t, s.CreateResume(ctx, resume))
	assert.Equal(t, StatusPending, resume.ProcessingStatus)

	got, err := s.GetResume(ctx, resume.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "resume.pdf", got.OriginalFileName)
	assert.Equal(t, "pdf", got.FileType)

	parsed := &types.ParsedResume{Contact: types.Contact{Name: "Jane Doe"}}
	require.NoError(t, s.SetResumeParsed(ctx, resume.ID, parsed, 45, StatusRecommendations))

	got, err = s.GetResume(ctx, resume.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, got.ATSScore)
	assert.Equal(t, StatusRecommendations, got.ProcessingStatus)
	assert.Equal(t, "Jane Doe", got.ParsedData.Contact.Name)

	require.NoError(t, s.SetResumeStatus(ctx, resume.ID, StatusCompleted))
	got, _ = s.GetResume(ctx, resume.ID)
	assert.Equal(t, StatusCompleted, got.ProcessingStatus)

	require.NoError(t, s.SetResumeScore(ctx, resume.ID, 75, StatusOptimized))
	got, _ = s.GetResume(ctx, resume.ID)
	assert.Equal(t, 75, got.ATSScore)
	assert.Equal(t, StatusOptimized, got.ProcessingStatus)
}

func TestMemoryStore_GetResumeMissing(t *testing.T) {
	s := NewMemoryStore()

	got, err := s.GetResume(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_ListResumesNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first := NewResume("first.pdf", "pdf", "")
	second := NewResume("second.pdf", "pdf", "")
	require.NoError(t, s.CreateResume(ctx, first))
	require.NoError(t, s.CreateResume(ctx, second))

	resumes, err := s.ListResumes(ctx)
	require.NoError(t, err)
	require.Len(t, resumes, 2)
	assert.Equal(t, second.ID, resumes[0].ID)
	assert.Equal(t, first.ID, resumes[1].ID)
}

func TestMemoryStore_DeleteResumeCascades(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	resume := NewResume("resume.pdf", "pdf", "")
	other := NewResume("other.pdf", "pdf", "")
	require.NoError(t, s.CreateResume(ctx, resume))
	require.NoError(t, s.CreateResume(ctx, other))

	require.NoError(t, s.ReplaceRecommendations(ctx, resume.ID, []types.RoleRecommendation{
		{Title: "Data Analyst", FitScore: 80},
	}))
	require.NoError(t, s.CreateTailoredResume(ctx, &TailoredResume{
		ID:               uuid.New(),
		OriginalResumeID: resume.ID,
		TailoredContent:  &types.ParsedResume{},
	}))
	keptTailored := &TailoredResume{
		ID:               uuid.New(),
		OriginalResumeID: other.ID,
		TailoredContent:  &types.ParsedResume{},
	}
	require.NoError(t, s.CreateTailoredResume(ctx, keptTailored))

	deleted, err := s.DeleteResume(ctx, resume.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, _ := s.GetResume(ctx, resume.ID)
	assert.Nil(t, got)

	recs, _ := s.GetRecommendations(ctx, resume.ID)
	assert.Empty(t, recs)

	tailored, _ := s.ListTailoredResumes(ctx, resume.ID)
	assert.Empty(t, tailored)

	// Records for other resumes survive the cascade.
	kept, _ := s.ListTailoredResumes(ctx, other.ID)
	require.Len(t, kept, 1)
	assert.Equal(t, keptTailored.ID, kept[0].ID)

	deleted, err = s.DeleteResume(ctx, resume.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStore_ReplaceRecommendations(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	resume := NewResume("resume.pdf", "pdf", "")
	require.NoError(t, s.CreateResume(ctx, resume))

	require.NoError(t, s.ReplaceRecommendations(ctx, resume.ID, []types.RoleRecommendation{
		{Title: "Data Analyst", FitScore: 60},
	}))
	require.NoError(t, s.ReplaceRecommendations(ctx, resume.ID, []types.RoleRecommendation{
		{Title: "Business Analyst", FitScore: 40},
		{Title: "Senior Data Analyst", FitScore: 90},
	}))

	recs, err := s.GetRecommendations(ctx, resume.ID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Senior Data Analyst", recs[0].Title)
	assert.Equal(t, "Business Analyst", recs[1].Title)
	assert.Equal(t, resume.ID, recs[0].ResumeID)
	assert.NotEqual(t, uuid.Nil, recs[0].ID)
}

func TestMemoryStore_TailoredResumes(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	resume := NewResume("resume.pdf", "pdf", "")
	require.NoError(t, s.CreateResume(ctx, resume))

	first := &TailoredResume{
		ID:               uuid.New(),
		OriginalResumeID: resume.ID,
		JobDescription:   "first job",
		TailoredContent:  &types.ParsedResume{},
		ATSScore:         70,
	}
	second := &TailoredResume{
		ID:               uuid.New(),
		OriginalResumeID: resume.ID,
		JobDescription:   "second job",
		TailoredContent:  &types.ParsedResume{},
		ATSScore:         85,
	}
	require.NoError(t, s.CreateTailoredResume(ctx, first))
	require.NoError(t, s.CreateTailoredResume(ctx, second))

	got, err := s.GetTailoredResume(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first job", got.JobDescription)

	missing, err := s.GetTailoredResume(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := s.ListTailoredResumes(ctx, resume.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestMemoryStore_ActivitiesLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, s.CreateActivity(ctx, NewActivity(ActivityUpload, title, "", nil)))
	}

	all, err := s.ListActivities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "three", all[0].Title)

	limited, err := s.ListActivities(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "three", limited[0].Title)
	assert.Equal(t, "two", limited[1].Title)
}
