// Package export renders a parsed resume into downloadable plain text.
package export

import (
	"strings"

	"github.com/jobfit-ai/jobfit-server/internal/types"
)

// Formats the export endpoint accepts. PDF and DOCX downloads carry the
// same text payload under the matching content type.
var supportedFormats = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"docx": true,
}

// SupportedFormat reports whether the format can be exported.
func SupportedFormat(format string) bool {
	return supportedFormats[format]
}

// ContentType returns the MIME type for an export format. Unknown formats
// fall back to plain text.
func ContentType(format string) string {
	switch format {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}

// Render produces the text form of a resume. Sections appear in fixed
// order, and empty sections are omitted. When optimized is set, an ATS
// compliance banner is appended.
func Render(parsed *types.ParsedResume, optimized bool) string {
	if parsed == nil {
		return ""
	}

	var b strings.Builder

	name := parsed.Contact.Name
	if name == "" {
		name = "Resume"
	}
	b.WriteString(name + "\n")
	writeContactLine(&b, "Email", parsed.Contact.Email)
	writeContactLine(&b, "Phone", parsed.Contact.Phone)
	writeContactLine(&b, "Location", parsed.Contact.Location)
	writeContactLine(&b, "LinkedIn", parsed.Contact.LinkedIn)
	b.WriteString("\n")

	if parsed.Summary != "" {
		b.WriteString("PROFESSIONAL SUMMARY\n")
		b.WriteString(parsed.Summary + "\n\n")
	}

	if len(parsed.Experience) > 0 {
		b.WriteString("PROFESSIONAL EXPERIENCE\n")
		for _, exp := range parsed.Experience {
			end := exp.EndDate
			if end == "" {
				end = "Present"
			}
			b.WriteString(exp.Role + " | " + exp.Company + " | " + exp.StartDate + " - " + end + "\n")
			if exp.Description != "" {
				b.WriteString(exp.Description + "\n")
			}
			for _, bullet := range exp.Bullets {
				b.WriteString("• " + bullet + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(parsed.Education) > 0 {
		b.WriteString("EDUCATION\n")
		for _, edu := range parsed.Education {
			b.WriteString(edu.Degree + " | " + edu.Institution)
			if edu.GraduationDate != "" {
				b.WriteString(" | " + edu.GraduationDate)
			}
			if edu.GPA != "" {
				b.WriteString(" | GPA: " + edu.GPA)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(parsed.Skills) > 0 {
		b.WriteString("TECHNICAL SKILLS\n")
		b.WriteString(strings.Join(parsed.Skills, ", "))
		b.WriteString("\n\n")
	}

	if len(parsed.Certifications) > 0 {
		b.WriteString("CERTIFICATIONS\n")
		for _, cert := range parsed.Certifications {
			b.WriteString(cert.Name + " | " + cert.Issuer)
			if cert.Date != "" {
				b.WriteString(" | " + cert.Date)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if optimized {
		b.WriteString("\n--- OPTIMIZED FOR ATS COMPLIANCE ---\n")
	}

	return b.String()
}

func writeContactLine(b *strings.Builder, label, value string) {
	if value != "" {
		b.WriteString(label + ": " + value + "\n")
	}
}
