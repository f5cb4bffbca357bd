package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobfit-ai/jobfit-server/internal/ats"
	"github.com/jobfit-ai/jobfit-server/internal/fetch"
	"github.com/jobfit-ai/jobfit-server/internal/store"
	"github.com/jobfit-ai/jobfit-server/internal/tailoring"
	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// handleTailorResume rewrites a resume against a job description, either
// supplied inline or fetched from a job posting URL.
func (s *Server) handleTailorResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	var req types.TailorRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handlerError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.handlerError(w, &ErrValidation{Field: "jobDescription", Message: err.Error()})
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if resume == nil || resume.ParsedData == nil {
		s.handlerError(w, &ErrResumeNotFound{ResumeID: id})
		return
	}

	jobDescription := req.JobDescription
	if req.JobURL != "" {
		jobDescription, err = s.fetcher.JobDescription(r.Context(), req.JobURL)
		if err != nil {
			var fetchErr *fetch.Error
			if errors.As(err, &fetchErr) {
				s.log.Warn("job posting fetch failed", zap.String("url", req.JobURL), zap.Error(err))
				s.errorResponse(w, http.StatusBadGateway, fmt.Sprintf("failed to fetch job posting: %v", err))
				return
			}
			s.handlerError(w, err)
			return
		}
	}

	result := tailoring.Tailor(resume.ParsedData, jobDescription)
	tailoredScore := ats.Score(result.TailoredContent)

	tailored := &store.TailoredResume{
		ID:               uuid.New(),
		OriginalResumeID: id,
		JobDescription:   jobDescription,
		TailoredContent:  result.TailoredContent,
		Improvements:     result.Improvements,
		ATSScore:         tailoredScore,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.store.CreateTailoredResume(r.Context(), tailored); err != nil {
		s.handlerError(w, err)
		return
	}

	activity := store.NewActivity(store.ActivityTailored, "Resume tailored for specific role",
		fmt.Sprintf("ATS Score improved to %d%% • %d enhancements made", tailoredScore, len(result.Improvements)),
		map[string]any{
			"resumeId":         id.String(),
			"tailoredResumeId": tailored.ID.String(),
			"originalAtsScore": resume.ATSScore,
			"tailoredAtsScore": tailoredScore,
		})
	if err := s.store.CreateActivity(r.Context(), activity); err != nil {
		s.log.Warn("failed to record activity", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusCreated, tailored)
}

// handleListTailoredResumes returns all tailoring runs for a resume.
func (s *Server) handleListTailoredResumes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	tailored, err := s.store.ListTailoredResumes(r.Context(), id)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if tailored == nil {
		tailored = []*store.TailoredResume{}
	}
	s.jsonResponse(w, http.StatusOK, tailored)
}

// handleGetTailoredResume returns a single tailored resume by its own ID.
func (s *Server) handleGetTailoredResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	tailored, err := s.store.GetTailoredResume(r.Context(), id)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if tailored == nil {
		s.handlerError(w, &ErrTailoredNotFound{TailoredID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, tailored)
}
