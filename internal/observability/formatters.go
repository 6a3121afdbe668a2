// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ibero-edu/microcred-recommender/internal/types"
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

// PrintTerms outputs the extracted candidate terms with their weights.
func (p *Printer) PrintTerms(terms []types.CandidateTerm) {
	if len(terms) == 0 {
		p.printBox("EXTRACTED TERMS", "(no significant terms found)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total terms: %d\n\n", len(terms)))

	count := min(len(terms), 10)
	for i := 0; i < count; i++ {
		term := terms[i]
		sb.WriteString(fmt.Sprintf("%2d. %-32s %.2f (%s)\n", i+1, term.Term, term.Weight, term.Arity))
	}
	if len(terms) > 10 {
		sb.WriteString(fmt.Sprintf("\n... and %d more terms", len(terms)-10))
	}

	p.printBox("EXTRACTED TERMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCourseMatches outputs the top ranked catalog courses with scores.
func (p *Printer) PrintCourseMatches(matches []types.CourseMatch) {
	if len(matches) == 0 {
		p.printBox("COURSE MATCHES", "(no courses above the score threshold)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total courses matched: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		name := match.Course.Name
		if len(name) > 45 {
			name = name[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.3f", match.Score))
		if match.Course.Hours > 0 {
			sb.WriteString(fmt.Sprintf("  Hours: %.0f", match.Course.Hours))
		}
		sb.WriteString("\n")
		if match.Course.Domain != "" {
			sb.WriteString(fmt.Sprintf("    Domain: %s\n", match.Course.Domain))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more courses", len(matches)-maxItemsToShow))
	}

	p.printBox("COURSE MATCHES", sb.String())
}

// PrintSpecializationMatches outputs the top ranked specializations.
func (p *Printer) PrintSpecializationMatches(matches []types.SpecializationMatch) {
	if len(matches) == 0 {
		p.printBox("SPECIALIZATION MATCHES", "(no specializations above the score threshold)")
		return
	}

	var sb strings.Builder

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		name := match.Specialization.Name
		if len(name) > 45 {
			name = name[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.3f", match.Score))
		if match.Specialization.NumCourses > 0 {
			sb.WriteString(fmt.Sprintf("  Courses: %d", match.Specialization.NumCourses))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(matches)-maxItemsToShow))
	}

	p.printBox("SPECIALIZATION MATCHES", sb.String())
}

// PrintExternal outputs the external certification recommendations.
func (p *Printer) PrintExternal(entries []types.ExternalCertification) {
	if len(entries) == 0 {
		p.printBox("EXTERNAL CERTIFICATIONS", "(no external recommendations)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total external entries: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		name := entry.Name
		if len(name) > 45 {
			name = name[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", name))
		sb.WriteString(fmt.Sprintf("  %s (%s)\n", entry.Platform, entry.Kind))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EXTERNAL CERTIFICATIONS", sb.String())
}

// PrintCatalogStats outputs a summary of the loaded course catalog.
func (p *Printer) PrintCatalogStats(stats types.CatalogStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Courses:    %d\n", stats.TotalCourses))
	sb.WriteString(fmt.Sprintf("Avg hours:  %.1f\n", stats.AvgHours))
	sb.WriteString(fmt.Sprintf("Domains:    %d\n", stats.Domains))
	sb.WriteString(fmt.Sprintf("Languages:  %d", stats.Languages))

	p.printBox("CATALOG", sb.String())
}

// PrintSummary outputs the generated document summary, wrapped to fit
// the box width.
func (p *Printer) PrintSummary(summary string) {
	if summary == "" {
		return
	}
	p.printBox("DOCUMENT SUMMARY", wrapText(summary, boxWidth-4))
}

// wrapText breaks text into lines no longer than width, on word
// boundaries where possible.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
