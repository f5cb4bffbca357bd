// Package schemas validates manually entered resume payloads against the
// parsed resume JSON Schema before they reach the store.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed parsed_resume.schema.json
var parsedResumeSchema string

// ValidationError reports schema violations with their field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateParsedResume checks a JSON document against the parsed resume
// schema. A nil return means the document is valid.
func ValidateParsedResume(document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(parsedResumeSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate resume document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}
