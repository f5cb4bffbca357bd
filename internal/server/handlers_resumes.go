package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jobfit-ai/jobfit-server/internal/ats"
	"github.com/jobfit-ai/jobfit-server/internal/export"
	"github.com/jobfit-ai/jobfit-server/internal/ingestion"
	"github.com/jobfit-ai/jobfit-server/internal/schemas"
	"github.com/jobfit-ai/jobfit-server/internal/store"
	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// handleUploadResume accepts a multipart resume upload, stores it and kicks
// off background processing. The response carries the pending resume; the
// client polls its processingStatus.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.handlerError(w, &ErrValidation{Field: "file", Message: "upload too large or malformed"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.handlerError(w, &ErrValidation{Field: "file", Message: "no file uploaded"})
		return
	}
	defer file.Close()

	fileType := ingestion.FileType(header.Filename)
	if !ingestion.Supported(fileType) {
		s.handlerError(w, &ErrUnsupportedUpload{FileType: fileType})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.handlerError(w, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	rawContent, err := ingestion.ExtractText(fileType, data)
	if err != nil {
		s.log.Warn("failed to extract upload text", zap.String("file", header.Filename), zap.Error(err))
		s.handlerError(w, &ErrValidation{Field: "file", Message: "could not extract text from document"})
		return
	}

	resume := store.NewResume(header.Filename, fileType, rawContent)
	if err := s.store.CreateResume(r.Context(), resume); err != nil {
		s.handlerError(w, err)
		return
	}

	activity := store.NewActivity(store.ActivityUpload, "Resume uploaded",
		fmt.Sprintf("Uploaded %s", header.Filename),
		map[string]any{"resumeId": resume.ID.String(), "fileType": fileType})
	if err := s.store.CreateActivity(r.Context(), activity); err != nil {
		s.log.Warn("failed to record activity", zap.Error(err))
	}

	s.processor.ProcessAsync(resume.ID)

	s.jsonResponse(w, http.StatusAccepted, resume)
}

// handleCreateManualResume creates a resume from structured data. The data
// is validated against the resume schema and processed synchronously.
func (s *Server) handleCreateManualResume(w http.ResponseWriter, r *http.Request) {
	var req types.ManualResumeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handlerError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.handlerError(w, &ErrValidation{Field: "resumeData", Message: err.Error()})
		return
	}

	document, err := json.Marshal(req.ResumeData)
	if err != nil {
		s.handlerError(w, fmt.Errorf("failed to encode resume data: %w", err))
		return
	}
	if err := schemas.ValidateParsedResume(document); err != nil {
		s.handlerError(w, &ErrValidation{Field: "resumeData", Message: err.Error()})
		return
	}

	resume := store.NewResume("Manual Entry", "json", string(document))
	if err := s.store.CreateResume(r.Context(), resume); err != nil {
		s.handlerError(w, err)
		return
	}

	score := ats.Score(req.ResumeData)
	if err := s.store.SetResumeParsed(r.Context(), resume.ID, req.ResumeData, score, store.StatusCompleted); err != nil {
		s.handlerError(w, err)
		return
	}

	recommendations := s.recommender.Generate(req.ResumeData)
	if err := s.store.ReplaceRecommendations(r.Context(), resume.ID, recommendations); err != nil {
		s.handlerError(w, err)
		return
	}

	activity := store.NewActivity(store.ActivityCreated, "Resume created manually",
		fmt.Sprintf("ATS Score: %d%% • %d role matches found", score, len(recommendations)),
		map[string]any{"resumeId": resume.ID.String(), "atsScore": score})
	if err := s.store.CreateActivity(r.Context(), activity); err != nil {
		s.log.Warn("failed to record activity", zap.Error(err))
	}

	created, err := s.store.GetResume(r.Context(), resume.ID)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleListResumes returns all resumes, newest first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.ListResumes(r.Context())
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if resumes == nil {
		resumes = []*store.Resume{}
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume returns a single resume.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
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
	if resume == nil {
		s.handlerError(w, &ErrResumeNotFound{ResumeID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume removes a resume and everything derived from it.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	deleted, err := s.store.DeleteResume(r.Context(), id)
	if err != nil {
		s.handlerError(w, err)
		return
	}
	if !deleted {
		s.handlerError(w, &ErrResumeNotFound{ResumeID: id})
		return
	}

	activity := store.NewActivity(store.ActivityDeleted, "Resume deleted", "",
		map[string]any{"resumeId": id.String()})
	if err := s.store.CreateActivity(r.Context(), activity); err != nil {
		s.log.Warn("failed to record activity", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted successfully"})
}

// handleExportResume renders the resume as a downloadable document.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.handlerError(w, err)
		return
	}

	var req types.ExportRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handlerError(w, err)
		return
	}
	if req.Format == "" {
		req.Format = "txt"
	}
	if err := req.Validate(); err != nil {
		s.handlerError(w, &ErrValidation{Field: "format", Message: err.Error()})
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

	content := export.Render(resume.ParsedData, req.Optimized)

	activity := store.NewActivity(store.ActivityExported, "Resume exported",
		fmt.Sprintf("Exported resume as %s", req.Format),
		map[string]any{"resumeId": id.String(), "format": req.Format, "optimized": req.Optimized})
	if err := s.store.CreateActivity(r.Context(), activity); err != nil {
		s.log.Warn("failed to record activity", zap.Error(err))
	}

	fileName := fmt.Sprintf("resume-%s.%s", id, req.Format)
	w.Header().Set("Content-Type", export.ContentType(req.Format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		s.log.Error("failed to write export", zap.Error(err))
	}
}
