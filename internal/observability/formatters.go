// Package observability provides formatted output utilities for summary mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for summary mode
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

// PrintResumeRecord outputs a human-readable summary of a parsed resume record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.Name))
	if record.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", record.Contact.Email))
	}
	if record.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", record.Contact.Phone))
	}
	if record.Contact.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", record.Contact.LinkedIn))
	}

	if len(record.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(record.Skills), maxItemsToShow)
		skills := strings.Join(record.Skills[:count], ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", skills))
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
	}

	if len(record.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		count := min(len(record.Education), 3)
		for i := 0; i < count; i++ {
			entry := record.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", entry.Degree))
			line := fmt.Sprintf("    %s", entry.Institution)
			if entry.Dates != "" {
				line += fmt.Sprintf(" (%s)", entry.Dates)
			}
			sb.WriteString(line + "\n")
		}
		if len(record.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Education)-3))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintExperience(record.Experience)
}

// PrintExperience outputs the segmented work history with one line per field.
func (p *Printer) PrintExperience(entries []types.ExperienceEntry) {
	if len(entries) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO WORK EXPERIENCE FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Segmented %d entries:\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, entry.Position.String()))
		sb.WriteString(fmt.Sprintf("    Company: %s\n", entry.Company.String()))
		sb.WriteString(fmt.Sprintf("    Dates:   %s\n", entry.Dates.String()))
		if entry.Description != "" {
			desc := strings.ReplaceAll(entry.Description, "\n", " ")
			if len(desc) > 45 {
				desc = desc[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", desc))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("WORK EXPERIENCE", sb.String())
}

// PrintBatchRun outputs a per-document status line for a batch run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchRun(run *types.BatchRun) {
	if run == nil || len(run.Results) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, result := range run.Results {
		if result.Err != nil {
			failed++
		}
	}
	sb.WriteString(fmt.Sprintf("Run %s\n", run.RunID))
	sb.WriteString(fmt.Sprintf("Parsed %d documents, %d failed\n\n", len(run.Results), failed))

	for i, result := range run.Results {
		name := result.Path
		if len(name) > 40 {
			name = "..." + name[len(name)-37:]
		}
		if result.Err != nil {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", name))
		} else {
			sb.WriteString(fmt.Sprintf("✓ %s\n", name))
		}
		if i >= maxItemsToShow-1 && len(run.Results) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more documents\n", len(run.Results)-maxItemsToShow))
			break
		}
	}

	p.printBox("BATCH RUN", strings.TrimSuffix(sb.String(), "\n"))
}
