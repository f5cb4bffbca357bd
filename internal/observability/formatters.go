// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jobfit-ai/jobfit-server/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit-3] + "..."
	}
	return s
}

// PrintParsedResume outputs a human-readable summary of the extracted
// resume fields.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResume, atsScore int) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", parsed.Contact.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", parsed.Contact.Email))
	sb.WriteString(fmt.Sprintf("ATS:      %d/100\n", atsScore))
	sb.WriteString("\n")

	if len(parsed.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(parsed.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := parsed.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", truncate(entry.Role, 40)))
			if entry.Company != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", truncate(entry.Company, 25)))
			}
			sb.WriteString("\n")
		}
		if len(parsed.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(parsed.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", truncate(strings.Join(parsed.Skills, ", "), 45)))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top role recommendations with fit
// scores and matched skills.
func (p *Printer) PrintRecommendations(recommendations []types.RoleRecommendation) {
	if len(recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total roles matched: %d\n\n", len(recommendations)))

	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, truncate(rec.Title, 45)))
		sb.WriteString(fmt.Sprintf("    Fit: %d/100\n", rec.FitScore))
		if len(rec.RequiredSkills) > 0 {
			skills := strings.Join(rec.RequiredSkills, ", ")
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(skills, 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more roles", len(recommendations)-maxItemsToShow))
	}

	p.printBox("ROLE RECOMMENDATIONS", sb.String())
}

// PrintImprovements outputs the changes a tailoring run applied.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintImprovements(improvements []types.Improvement) {
	if len(improvements) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO CHANGES NEEDED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applied %d improvements:\n\n", len(improvements)))

	count := min(len(improvements), maxItemsToShow)
	for i := 0; i < count; i++ {
		imp := improvements[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", imp.Type, imp.Section))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(imp.Reasoning, 45)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(improvements) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more improvements", len(improvements)-maxItemsToShow))
	}

	p.printBox("TAILORING IMPROVEMENTS", sb.String())
}
