// Package store provides persistence for resumes, role recommendations,
// tailored resumes and the user activity log. Two implementations exist: an
// in-memory store for demos and tests, and a PostgreSQL store.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// Resume processing statuses
const (
	StatusPending         = "pending"
	StatusParsing         = "parsing"
	StatusRecommendations = "generating_recommendations"
	StatusCompleted       = "completed"
	StatusError           = "error"
	StatusOptimized       = "optimized"
)

// Activity types recorded in the event log
const (
	ActivityUpload    = "upload"
	ActivityParsed    = "parsed"
	ActivityCreated   = "created"
	ActivityTailored  = "tailored"
	ActivityOptimized = "optimized"
	ActivityExported  = "exported"
	ActivityDeleted   = "deleted"
)

// Resume is the stored form of an uploaded or manually entered resume.
type Resume struct {
	ID               uuid.UUID           `json:"id"`
	OriginalFileName string              `json:"originalFileName"`
	FileType         string              `json:"fileType"`
	RawContent       string              `json:"rawContent,omitempty"`
	ParsedData       *types.ParsedResume `json:"parsedData,omitempty"`
	ATSScore         int                 `json:"atsScore"`
	ProcessingStatus string              `json:"processingStatus"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// RecommendationRecord is a stored role recommendation owned by a resume.
// Recommendations are replaced wholesale on regeneration.
type RecommendationRecord struct {
	ID       uuid.UUID `json:"id"`
	ResumeID uuid.UUID `json:"resumeId"`
	types.RoleRecommendation
}

// TailoredResume is one tailoring run against a resume. Immutable after
// creation; many may exist per source resume.
type TailoredResume struct {
	ID               uuid.UUID           `json:"id"`
	OriginalResumeID uuid.UUID           `json:"originalResumeId"`
	JobDescription   string              `json:"jobDescription"`
	TailoredContent  *types.ParsedResume `json:"tailoredContent"`
	Improvements     []types.Improvement `json:"improvements"`
	ATSScore         int                 `json:"atsScore"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// Activity is a single entry in the user-facing event log.
type Activity struct {
	ID          uuid.UUID      `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Store is the repository interface the server and pipeline depend on.
// Lookups return (nil, nil) when the record does not exist.
type Store interface {
	CreateResume(ctx context.Context, resume *Resume) error
	GetResume(ctx context.Context, id uuid.UUID) (*Resume, error)
	ListResumes(ctx context.Context) ([]*Resume, error)
	SetResumeStatus(ctx context.Context, id uuid.UUID, status string) error
	SetResumeParsed(ctx context.Context, id uuid.UUID, parsed *types.ParsedResume, atsScore int, status string) error
	SetResumeScore(ctx context.Context, id uuid.UUID, atsScore int, status string) error
	// DeleteResume removes the resume and cascades to its recommendations
	// and tailored resumes. Returns false when the resume did not exist.
	DeleteResume(ctx context.Context, id uuid.UUID) (bool, error)

	// ReplaceRecommendations deletes any existing recommendations for the
	// resume and stores the new set.
	ReplaceRecommendations(ctx context.Context, resumeID uuid.UUID, recs []types.RoleRecommendation) error
	GetRecommendations(ctx context.Context, resumeID uuid.UUID) ([]*RecommendationRecord, error)

	CreateTailoredResume(ctx context.Context, tailored *TailoredResume) error
	GetTailoredResume(ctx context.Context, id uuid.UUID) (*TailoredResume, error)
	ListTailoredResumes(ctx context.Context, resumeID uuid.UUID) ([]*TailoredResume, error)

	CreateActivity(ctx context.Context, activity *Activity) error
	ListActivities(ctx context.Context, limit int) ([]*Activity, error)

	Close()
}

// NewResume builds a Resume with a fresh ID in the pending state.
func NewResume(fileName, fileType, rawContent string) *Resume {
	return &Resume{
		ID:               uuid.New(),
		OriginalFileName: fileName,
		FileType:         fileType,
		RawContent:       rawContent,
		ProcessingStatus: StatusPending,
		CreatedAt:        time.Now().UTC(),
	}
}

// NewActivity builds an Activity with a fresh ID.
func NewActivity(activityType, title, description string, metadata map[string]any) *Activity {
	return &Activity{
		ID:          uuid.New(),
		Type:        activityType,
		Title:       title,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}
}
