package export

import (
	"strings"
	"testing"

	"github.com/jobfit-ai/jobfit-server/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume() *types.ParsedResume {
	return &types.ParsedResume{
		Contact: types.Contact{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "(555) 123-4567",
			Location: "Seattle, WA",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		Summary: "Data analyst with 5 years of experience.",
		Experience: []types.ExperienceEntry{
			{
				Role:      "Data Analyst",
				Company:   "Acme Corp",
				StartDate: "2019",
				EndDate:   "2021",
				Bullets:   []string{"Built dashboards", "Automated reporting"},
			},
			{
				Role:      "Senior Data Analyst",
				Company:   "Globex",
				StartDate: "2021",
				Bullets:   []string{},
			},
		},
		Education: []types.EducationEntry{
			{Degree: "B.S. Statistics", Institution: "State University", GraduationDate: "2019", GPA: "3.8"},
		},
		Skills: []string{"Python", "SQL", "Tableau"},
		Certifications: []types.Certification{
			{Name: "AWS Certified", Issuer: "Amazon", Date: "2022"},
		},
	}
}

func TestRender_FullResume(t *testing.T) {
	content := Render(fullResume(), false)

	assert.True(t, strings.HasPrefix(content, "Jane Doe\n"))
	assert.Contains(t, content, "Email: jane@example.com\n")
	assert.Contains(t, content, "Phone: (555) 123-4567\n")
	assert.Contains(t, content, "Location: Seattle, WA\n")
	assert.Contains(t, content, "LinkedIn: linkedin.com/in/janedoe\n")
	assert.Contains(t, content, "PROFESSIONAL SUMMARY\nData analyst with 5 years of experience.\n")
	assert.Contains(t, content, "Data Analyst | Acme Corp | 2019 - 2021\n")
	assert.Contains(t, content, "• Built dashboards\n• Automated reporting\n")
	assert.Contains(t, content, "B.S. Statistics | State University | 2019 | GPA: 3.8\n")
	assert.Contains(t, content, "TECHNICAL SKILLS\nPython, SQL, Tableau\n")
	assert.Contains(t, content, "AWS Certified | Amazon | 2022\n")
	assert.NotContains(t, content, "OPTIMIZED FOR ATS COMPLIANCE")
}

func TestRender_OpenEndedRoleShowsPresent(t *testing.T) {
	content := Render(fullResume(), false)
	assert.Contains(t, content, "Senior Data Analyst | Globex | 2021 - Present\n")
}

func TestRender_SectionOrder(t *testing.T) {
	content := Render(fullResume(), false)

	summaryIdx := strings.Index(content, "PROFESSIONAL SUMMARY")
	experienceIdx := strings.Index(content, "PROFESSIONAL EXPERIENCE")
	educationIdx := strings.Index(content, "EDUCATION")
	skillsIdx := strings.Index(content, "TECHNICAL SKILLS")
	certsIdx := strings.Index(content, "CERTIFICATIONS")

	require.True(t, summaryIdx >= 0 && experienceIdx >= 0 && educationIdx >= 0)
	assert.Less(t, summaryIdx, experienceIdx)
	assert.Less(t, experienceIdx, educationIdx)
	assert.Less(t, educationIdx, skillsIdx)
	assert.Less(t, skillsIdx, certsIdx)
}

func TestRender_EmptySectionsOmitted(t *testing.T) {
	parsed := &types.ParsedResume{
		Contact: types.Contact{Name: "John Smith", Email: "john@example.com"},
	}
	content := Render(parsed, false)

	assert.True(t, strings.HasPrefix(content, "John Smith\nEmail: john@example.com\n"))
	assert.NotContains(t, content, "PROFESSIONAL SUMMARY")
	assert.NotContains(t, content, "PROFESSIONAL EXPERIENCE")
	assert.NotContains(t, content, "EDUCATION")
	assert.NotContains(t, content, "TECHNICAL SKILLS")
	assert.NotContains(t, content, "CERTIFICATIONS")
	assert.NotContains(t, content, "Phone:")
}

func TestRender_MissingNameFallsBack(t *testing.T) {
	content := Render(&types.ParsedResume{}, false)
	assert.True(t, strings.HasPrefix(content, "Resume\n"))
}

func TestRender_Nil(t *testing.T) {
	assert.Equal(t, "", Render(nil, false))
}

func TestRender_OptimizedBanner(t *testing.T) {
	content := Render(fullResume(), true)
	assert.True(t, strings.HasSuffix(content, "--- OPTIMIZED FOR ATS COMPLIANCE ---\n"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType("pdf"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", ContentType("docx"))
	assert.Equal(t, "text/plain", ContentType("txt"))
	assert.Equal(t, "text/plain", ContentType("unknown"))
}

func TestSupportedFormat(t *testing.T) {
	for _, format := range []string{"txt", "pdf", "docx"} {
		assert.True(t, SupportedFormat(format))
	}
	assert.False(t, SupportedFormat("html"))
	assert.False(t, SupportedFormat(""))
}
