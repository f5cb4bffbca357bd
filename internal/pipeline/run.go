// Package pipeline orchestrates resume processing after upload: parsing,
// ATS scoring and role recommendation generation, with status transitions
// recorded in the store at each step.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobfit-ai/jobfit-server/internal/ats"
	"github.com/jobfit-ai/jobfit-server/internal/extractor"
	"github.com/jobfit-ai/jobfit-server/internal/logger"
	"github.com/jobfit-ai/jobfit-server/internal/recommend"
	"github.com/jobfit-ai/jobfit-server/internal/store"
)

// processTimeout bounds a single background processing run.
const processTimeout = 2 * time.Minute

// Processor runs the post-upload processing pipeline for a resume.
type Processor struct {
	store       store.Store
	recommender *recommend.Recommender
	log         *zap.Logger
}

// New builds a Processor. A nil logger is replaced with a no-op logger.
func New(s store.Store, recommender *recommend.Recommender, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{store: s, recommender: recommender, log: log}
}

// ProcessAsync runs Process in a goroutine with its own timeout, detached
// from the request that triggered it. Failures are recorded in the store
// and logged, not returned.
func (p *Processor) ProcessAsync(resumeID uuid.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()

		if err := p.Process(ctx, resumeID); err != nil {
			logger.WithResume(p.log, resumeID.String()).Error("resume processing failed", zap.Error(err))
		}
	}()
}

// Process parses the resume text, scores it, generates role recommendations
// and walks the resume through the corresponding status transitions. Any
// failure moves the resume to the error status before returning.
func (p *Processor) Process(ctx context.Context, resumeID uuid.UUID) error {
	log := logger.WithResume(p.log, resumeID.String())

	resume, err := p.store.GetResume(ctx, resumeID)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	if resume == nil {
		return fmt.Errorf("resume %s not found", resumeID)
	}

	if err := p.store.SetResumeStatus(ctx, resumeID, store.StatusParsing); err != nil {
		return p.fail(ctx, resumeID, fmt.Errorf("failed to mark parsing: %w", err))
	}
	log.Info("parsing resume", zap.Int("raw_bytes", len(resume.RawContent)))

	parsed := extractor.Extract(resume.RawContent)
	score := ats.Score(parsed)

	if err := p.store.SetResumeParsed(ctx, resumeID, parsed, score, store.StatusRecommendations); err != nil {
		return p.fail(ctx, resumeID, fmt.Errorf("failed to save parsed resume: %w", err))
	}
	log.Info("resume parsed",
		zap.Int("ats_score", score),
		zap.Int("experience_entries", len(parsed.Experience)),
		zap.Int("skills", len(parsed.Skills)))

	recommendations := p.recommender.Generate(parsed)
	if err := p.store.ReplaceRecommendations(ctx, resumeID, recommendations); err != nil {
		return p.fail(ctx, resumeID, fmt.Errorf("failed to save recommendations: %w", err))
	}
	log.Info("recommendations generated", zap.Int("count", len(recommendations)))

	if err := p.store.SetResumeStatus(ctx, resumeID, store.StatusCompleted); err != nil {
		return p.fail(ctx, resumeID, fmt.Errorf("failed to mark completed: %w", err))
	}

	activity := store.NewActivity(store.ActivityParsed, "Resume processed",
		fmt.Sprintf("%s scored %d/100", resume.OriginalFileName, score),
		map[string]any{"resumeId": resumeID.String(), "atsScore": score})
	if err := p.store.CreateActivity(ctx, activity); err != nil {
		log.Warn("failed to record activity", zap.Error(err))
	}

	return nil
}

// fail moves the resume to the error status and returns the original error.
func (p *Processor) fail(ctx context.Context, resumeID uuid.UUID, err error) error {
	if statusErr := p.store.SetResumeStatus(ctx, resumeID, store.StatusError); statusErr != nil {
		logger.WithResume(p.log, resumeID.String()).Error("failed to mark resume errored", zap.Error(statusErr))
	}
	return err
}
