// Package types provides type definitions for structured data used throughout the jobfit-server system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedResume represents the structured form of a resume extracted from raw text
type ParsedResume struct {
	Contact        Contact           `json:"contact"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []Certification   `json:"certifications,omitempty"`
	Extras         []string          `json:"extras,omitempty"`
}

// Contact represents the contact block of a resume
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry represents a single employment entry.
// Bullets is always non-nil, possibly empty.
type ExperienceEntry struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Description string   `json:"description,omitempty"`
	Bullets     []string `json:"bullets"`
}

// EducationEntry represents a single education entry
type EducationEntry struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduationDate,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// Certification represents a professional certification
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date,omitempty"`
}

// SkillProfile summarizes the skills extracted from a resume
type SkillProfile struct {
	Skills []string `json:"skills"`
}

// Clone returns a deep copy of the resume. Mutating the copy never
// affects the original.
func (r *ParsedResume) Clone() *ParsedResume {
	if r == nil {
		return nil
	}

	clone := &ParsedResume{
		Contact: r.Contact,
		Summary: r.Summary,
	}

	if r.Experience != nil {
		clone.Experience = make([]ExperienceEntry, len(r.Experience))
		for i, exp := range r.Experience {
			entry := exp
			entry.Bullets = append([]string{}, exp.Bullets...)
			clone.Experience[i] = entry
		}
	}
	if r.Education != nil {
		clone.Education = append([]EducationEntry{}, r.Education...)
	}
	if r.Skills != nil {
		clone.Skills = append([]string{}, r.Skills...)
	}
	if r.Certifications != nil {
		clone.Certifications = append([]Certification{}, r.Certifications...)
	}
	if r.Extras != nil {
		clone.Extras = append([]string{}, r.Extras...)
	}

	return clone
}
