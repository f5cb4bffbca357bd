package server

import (
	"math"
	"net/http"

	"github.com/jobfit-ai/jobfit-server/internal/store"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
	statsActivityWindow  = 50
)

// DashboardStats summarizes store contents for the dashboard.
type DashboardStats struct {
	ResumesCreated  int `json:"resumesCreated"`
	AverageATSScore int `json:"averageAtsScore"`
	RoleMatches     int `json:"roleMatches"`
	TailoredResumes int `json:"tailoredResumes"`
	Exports         int `json:"exports"`
}

// handleListActivities returns the activity log, newest first.
func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	limit := queryLimit(r, defaultActivityLimit, maxActivityLimit)

	activities, err := s.store.ListActivities(r.Context(), limit)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if activities == nil {
		activities = []*store.Activity{}
	}
	s.jsonResponse(w, http.StatusOK, activities)
}

// handleDashboardStats aggregates counts and scores across all resumes.
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.ListResumes(r.Context())
	if err != nil {
		s.handlerError(w, err)
		return
	}
	activities, err := s.store.ListActivities(r.Context(), statsActivityWindow)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	stats := DashboardStats{ResumesCreated: len(resumes)}

	if len(resumes) > 0 {
		sum := 0
		for _, resume := range resumes {
			sum += resume.ATSScore
		}
		stats.AverageATSScore = int(math.Round(float64(sum) / float64(len(resumes))))
	}

	for _, resume := range resumes {
		recs, err := s.store.GetRecommendations(r.Context(), resume.ID)
		if err != nil {
			s.handlerError(w, err)
			return
		}
		stats.RoleMatches += len(recs)
	}

	for _, activity := range activities {
		switch activity.Type {
		case store.ActivityTailored:
			stats.TailoredResumes++
		case store.ActivityExported:
			stats.Exports++
		}
	}

	s.jsonResponse(w, http.StatusOK, stats)
}
