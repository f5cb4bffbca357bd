package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// MemoryStore is a mutex-guarded in-memory Store. It backs the server when
// no database URL is configured, and all store-dependent tests.
type MemoryStore struct {
	mu              sync.RWMutex
	resumes         map[uuid.UUID]*Resume
	resumeOrder     []uuid.UUID
	recommendations map[uuid.UUID][]*RecommendationRecord
	tailored        map[uuid.UUID]*TailoredResume
	tailoredOrder   []uuid.UUID
	activities      []*Activity
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		resumes:         make(map[uuid.UUID]*Resume),
		recommendations: make(map[uuid.UUID][]*RecommendationRecord),
		tailored:        make(map[uuid.UUID]*TailoredResume),
	}
}

// CreateResume stores a new resume.
func (s *MemoryStore) CreateResume(_ context.Context, resume *Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resumes[resume.ID] = resume
	s.resumeOrder = append(s.resumeOrder, resume.ID)
	return nil
}

// GetResume returns the resume, or (nil, nil) when it does not exist.
func (s *MemoryStore) GetResume(_ context.Context, id uuid.UUID) (*Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.resumes[id], nil
}

// ListResumes returns all resumes, newest first.
func (s *MemoryStore) ListResumes(_ context.Context) ([]*Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resumes := make([]*Resume, 0, len(s.resumeOrder))
	for i := len(s.resumeOrder) - 1; i >= 0; i-- {
		resumes = append(resumes, s.resumes[s.resumeOrder[i]])
	}
	return resumes, nil
}

// SetResumeStatus updates the processing status of a resume.
func (s *MemoryStore) SetResumeStatus(_ context.Context, id uuid.UUID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resume, ok := s.resumes[id]; ok {
		resume.ProcessingStatus = status
	}
	return nil
}

// SetResumeParsed stores parsing results alongside a status transition.
func (s *MemoryStore) SetResumeParsed(_ context.Context, id uuid.UUID, parsed *types.ParsedResume, atsScore int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resume, ok := s.resumes[id]; ok {
		resume.ParsedData = parsed
		resume.ATSScore = atsScore
		resume.ProcessingStatus = status
	}
	return nil
}

// SetResumeScore updates the ATS score alongside a status transition.
func (s *MemoryStore) SetResumeScore(_ context.Context, id uuid.UUID, atsScore int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resume, ok := s.resumes[id]; ok {
		resume.ATSScore = atsScore
		resume.ProcessingStatus = status
	}
	return nil
}

// DeleteResume removes the resume and everything derived from it.
func (s *MemoryStore) DeleteResume(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resumes[id]; !ok {
		return false, nil
	}
	delete(s.resumes, id)
	for i, rid := range s.resumeOrder {
		if rid == id {
			s.resumeOrder = append(s.resumeOrder[:i], s.resumeOrder[i+1:]...)
			break
		}
	}
	delete(s.recommendations, id)

	kept := s.tailoredOrder[:0]
	for _, tid := range s.tailoredOrder {
		if s.tailored[tid].OriginalResumeID == id {
			delete(s.tailored, tid)
			continue
		}
		kept = append(kept, tid)
	}
	s.tailoredOrder = kept
	return true, nil
}

// ReplaceRecommendations swaps the full recommendation set for a resume.
func (s *MemoryStore) ReplaceRecommendations(_ context.Context, resumeID uuid.UUID, recs []types.RoleRecommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*RecommendationRecord, len(recs))
	for i, rec := range recs {
		records[i] = &RecommendationRecord{
			ID:                 uuid.New(),
			ResumeID:           resumeID,
			RoleRecommendation: rec,
		}
	}
	s.recommendations[resumeID] = records
	return nil
}

// GetRecommendations returns stored recommendations ordered by fit score.
func (s *MemoryStore) GetRecommendations(_ context.Context, resumeID uuid.UUID) ([]*RecommendationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.recommendations[resumeID]
	out := make([]*RecommendationRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FitScore > out[j].FitScore
	})
	return out, nil
}

// CreateTailoredResume stores a new tailoring result.
func (s *MemoryStore) CreateTailoredResume(_ context.Context, tailored *TailoredResume) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tailored[tailored.ID] = tailored
	s.tailoredOrder = append(s.tailoredOrder, tailored.ID)
	return nil
}

// GetTailoredResume returns the tailored resume, or (nil, nil) when missing.
func (s *MemoryStore) GetTailoredResume(_ context.Context, id uuid.UUID) (*TailoredResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tailored[id], nil
}

// ListTailoredResumes returns tailoring results for a resume, newest first.
func (s *MemoryStore) ListTailoredResumes(_ context.Context, resumeID uuid.UUID) ([]*TailoredResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*TailoredResume
	for i := len(s.tailoredOrder) - 1; i >= 0; i-- {
		if t := s.tailored[s.tailoredOrder[i]]; t.OriginalResumeID == resumeID {
			out = append(out, t)
		}
	}
	return out, nil
}

// CreateActivity appends an entry to the activity log.
func (s *MemoryStore) CreateActivity(_ context.Context, activity *Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = append(s.activities, activity)
	return nil
}

// ListActivities returns the most recent activities, newest first. A limit
// of zero or less returns everything.
func (s *MemoryStore) ListActivities(_ context.Context, limit int) ([]*Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Activity, 0, len(s.activities))
	for i := len(s.activities) - 1; i >= 0; i-- {
		out = append(out, s.activities[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() {}
