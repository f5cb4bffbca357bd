// Package types provides type definitions for structured data used throughout the jobfit-server system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ManualResumeRequest represents the request to create a resume from already
// structured data instead of an uploaded file.
type ManualResumeRequest struct {
	ResumeData *ParsedResume `json:"resumeData" validate:"required"`
}

// TailorRequest represents the request to tailor a resume to a job.
// Exactly one of JobDescription or JobURL must be provided.
type TailorRequest struct {
	JobDescription string `json:"jobDescription,omitempty"`
	JobURL         string `json:"jobUrl,omitempty" validate:"omitempty,url"`
}

// ExportRequest represents the request to export a resume as a document
type ExportRequest struct {
	Format    string `json:"format,omitempty" validate:"omitempty,oneof=txt pdf docx"`
	Optimized bool   `json:"optimized,omitempty"`
}

// Validate validates the ManualResumeRequest using the validator.
func (r *ManualResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TailorRequest using the validator.
func (r *TailorRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.JobDescription == "" && r.JobURL == "" {
		return fmt.Errorf("either jobDescription or jobUrl is required")
	}
	if r.JobDescription != "" && r.JobURL != "" {
		return fmt.Errorf("jobDescription and jobUrl are mutually exclusive")
	}
	return nil
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
