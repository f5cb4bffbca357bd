package server

import (
	"net/http"
)

// handleGetRecommendations returns stored role recommendations for a
// resume, generating and storing a fresh set when none exist yet.
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handlerError(w, err)
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

	records, err := s.store.GetRecommendations(r.Context(), id)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	if len(records) == 0 {
		generated := s.recommender.Generate(resume.ParsedData)
		if err := s.store.ReplaceRecommendations(r.Context(), id, generated); err != nil {
			s.handlerError(w, err)
			return
		}
		records, err = s.store.GetRecommendations(r.Context(), id)
		if err != nil {
			s.handlerError(w, err)
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, records)
}
