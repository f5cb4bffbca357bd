package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualResumeRequest_Validate(t *testing.T) {
	valid := &ManualResumeRequest{ResumeData: &ParsedResume{
		Contact: Contact{Name: "Jane Doe", Email: "jane@example.com"},
	}}
	assert.NoError(t, valid.Validate())

	missing := &ManualResumeRequest{}
	assert.Error(t, missing.Validate())
}

func TestTailorRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     TailorRequest
		wantErr string
	}{
		{"description only", TailorRequest{JobDescription: "We need an analyst."}, ""},
		{"url only", TailorRequest{JobURL: "https://example.com/job/1"}, ""},
		{"neither", TailorRequest{}, "required"},
		{"both", TailorRequest{JobDescription: "x", JobURL: "https://example.com"}, "mutually exclusive"},
		{"malformed url", TailorRequest{JobURL: "not a url"}, "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExportRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ExportRequest{}).Validate())
	assert.NoError(t, (&ExportRequest{Format: "pdf"}).Validate())
	assert.Error(t, (&ExportRequest{Format: "html"}).Validate())
}
