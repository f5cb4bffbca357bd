package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `JOHN SMITH
john@x.com
(555) 123-4567

PROFESSIONAL SUMMARY
Engineer.

TECHNICAL SKILLS
Python, SQL

PROFESSIONAL EXPERIENCE
Engineer | Acme | 2020 - Present
• Built systems

EDUCATION
Bachelor of Science | MIT | 2019`

func TestExtract_SampleResume(t *testing.T) {
	parsed := Extract(sampleResume)

	assert.Equal(t, "JOHN SMITH", parsed.Contact.Name)
	assert.Equal(t, "john@x.com", parsed.Contact.Email)
	assert.Equal(t, "(555) 123-4567", parsed.Contact.Phone)

	assert.Equal(t, []string{"Python", "SQL"}, parsed.Skills)

	require.Len(t, parsed.Experience, 1)
	assert.Equal(t, "Engineer", parsed.Experience[0].Role)
	assert.Equal(t, "Acme", parsed.Experience[0].Company)
	assert.Equal(t, "2020", parsed.Experience[0].StartDate)
	assert.Equal(t, "Present", parsed.Experience[0].EndDate)
	assert.Equal(t, []string{"Built systems"}, parsed.Experience[0].Bullets)

	require.Len(t, parsed.Education, 1)
	assert.Contains(t, parsed.Education[0].Degree, "Bachelor of Science")
	assert.Equal(t, "MIT", parsed.Education[0].Institution)
	assert.Equal(t, "2019", parsed.Education[0].GraduationDate)
}

func TestExtract_Idempotent(t *testing.T) {
	first := Extract(sampleResume)
	second := Extract(sampleResume)
	assert.Equal(t, first, second)
}

func TestExtract_EmptyInput(t *testing.T) {
	parsed := Extract("")

	assert.Empty(t, parsed.Contact.Name)
	assert.Empty(t, parsed.Skills)
	assert.Empty(t, parsed.Experience)
	assert.Empty(t, parsed.Education)
	assert.Empty(t, parsed.Summary)
}

func TestExtract_ArbitraryTextDoesNotPanic(t *testing.T) {
	inputs := []string{
		"just a single line",
		"|||||",
		"• orphan bullet\n• another one",
		"EDUCATION\nEDUCATION\nEDUCATION",
		"\n\n\n\n",
		"Name: \x00\x01 binary garbage \xff",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() { Extract(input) })
	}
}

func TestContactBlock_NoSummaryHeading(t *testing.T) {
	text := "JANE DOE\njane@y.org\n\nsome other paragraph"
	block := contactBlock(text)
	assert.Contains(t, block, "JANE DOE")
	assert.NotContains(t, block, "other paragraph")
}

func TestExtractContact_LabeledFields(t *testing.T) {
	block := "JANE DOE\njane@y.org\nLocation: San Francisco, CA\nLinkedIn: linkedin.com/in/janedoe\nWebsite: janedoe.dev"
	contact := extractContact(block)

	assert.Equal(t, "JANE DOE", contact.Name)
	assert.Equal(t, "jane@y.org", contact.Email)
	assert.Equal(t, "San Francisco, CA", contact.Location)
	assert.Equal(t, "linkedin.com/in/janedoe", contact.LinkedIn)
	assert.Equal(t, "janedoe.dev", contact.Website)
}

func TestExtractContact_PhoneIgnoresEmailLines(t *testing.T) {
	// The email line contains enough digits to fool a loose phone pattern.
	block := "BOB\nbob1234567890@mail.com"
	contact := extractContact(block)
	assert.Empty(t, contact.Phone)
}

func TestExtractContact_ShortNumberIsNotAPhone(t *testing.T) {
	block := "BOB\n555-1234"
	contact := extractContact(block)
	assert.Empty(t, contact.Phone)
}

func TestExtractSkills_CategoriesAndDelimiters(t *testing.T) {
	text := `SKILLS
Languages: Go, Python
Tools: Docker | Kubernetes
• Terraform • Ansible

EXPERIENCE`
	skills := extractSkills(splitLines(text))
	assert.Equal(t, []string{"Go", "Python", "Docker", "Kubernetes", "Terraform", "Ansible"}, skills)
}

func TestExtractSkills_CapsResult(t *testing.T) {
	line := ""
	for i := 0; i < 30; i++ {
		line += "Skill, "
	}
	skills := extractSkills(splitLines("TECHNICAL SKILLS\n" + line))
	assert.Len(t, skills, maxSkills)
}

func TestExtractExperience_MalformedHeaderFallsBack(t *testing.T) {
	text := `WORK EXPERIENCE
 | |
• Did things with no employer attached`
	entries := extractExperience(splitLines(text))

	require.Len(t, entries, 1)
	assert.Equal(t, "Unknown Role", entries[0].Role)
	assert.Equal(t, "Unknown Company", entries[0].Company)
	assert.Equal(t, "Unknown", entries[0].StartDate)
	assert.Equal(t, []string{"Did things with no employer attached"}, entries[0].Bullets)
}

func TestExtractExperience_ProseLinesBecomeBullets(t *testing.T) {
	text := `PROFESSIONAL EXPERIENCE
Analyst | BigCo | 2018 - 2020
Responsible for quarterly revenue reporting across three regions
ok`
	entries := extractExperience(splitLines(text))

	require.Len(t, entries, 1)
	// The long prose line is kept, the short "ok" line is dropped.
	assert.Equal(t, []string{"Responsible for quarterly revenue reporting across three regions"}, entries[0].Bullets)
}

func TestExtractExperience_DatedLineWithoutPipes(t *testing.T) {
	text := `EMPLOYMENT
Senior Engineer 2019 - Present
• Shipped things`
	entries := extractExperience(splitLines(text))

	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Engineer", entries[0].Role)
	assert.Equal(t, "Unknown Company", entries[0].Company)
	assert.Equal(t, "2019", entries[0].StartDate)
	assert.Equal(t, "Present", entries[0].EndDate)
}

func TestExtractExperience_MultipleEntries(t *testing.T) {
	text := `PROFESSIONAL EXPERIENCE
Engineer | Acme | 2020 - Present
• Built systems
Analyst | BigCo | 2018 - 2020
• Crunched numbers

EDUCATION
Bachelor of Arts | State U | 2018`
	entries := extractExperience(splitLines(text))

	require.Len(t, entries, 2)
	assert.Equal(t, "Engineer", entries[0].Role)
	assert.Equal(t, "Analyst", entries[1].Role)
	assert.Equal(t, []string{"Crunched numbers"}, entries[1].Bullets)
}

func TestExtractEducation_GPA(t *testing.T) {
	text := `EDUCATION
Master of Science | Stanford | 2021 GPA: 3.9`
	entries := extractEducation(splitLines(text))

	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Stanford", entries[0].Institution)
	assert.Equal(t, "2021", entries[0].GraduationDate)
	assert.Equal(t, "3.9", entries[0].GPA)
}

func TestExtractCertifications(t *testing.T) {
	text := `CERTIFICATIONS
AWS Solutions Architect | Amazon | 2022
• CKA | CNCF`
	certs := extractCertifications(splitLines(text))

	require.Len(t, certs, 2)
	assert.Equal(t, "AWS Solutions Architect", certs[0].Name)
	assert.Equal(t, "Amazon", certs[0].Issuer)
	assert.Equal(t, "2022", certs[0].Date)
	assert.Equal(t, "CKA", certs[1].Name)
	assert.Equal(t, "CNCF", certs[1].Issuer)
}

func TestIsHeaderLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"PROFESSIONAL EXPERIENCE", true},
		{"TECHNICAL SKILLS", true},
		{"Education", true},
		{"Work History", true},
		{"Skills:", true},
		{"Python, SQL", false},
		{"Engineer | Acme | 2020 - Present", false},
		{"• Built systems", false},
		{"Engineer.", false},
		{"", false},
		{"this line is far too long to be considered a section heading at all", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isHeaderLine(tt.line), "line: %q", tt.line)
	}
}
