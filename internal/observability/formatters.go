// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-autofill/internal/detect"
	"github.com/jonathan/resume-autofill/internal/types"
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

// PrintProfileSummary outputs a human-readable summary of the stored profile.
func (p *Printer) PrintProfileSummary(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(profile.FullName)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(profile.Phone)))

	location := strings.TrimSpace(strings.Join(nonEmpty(profile.City, profile.State, profile.ZipCode), ", "))
	sb.WriteString(fmt.Sprintf("Where:  %s\n", orDash(location)))

	if edu := profile.FirstEducation(); edu != nil {
		sb.WriteString("\nEducation:\n")
		sb.WriteString(fmt.Sprintf("  %s", orDash(edu.University)))
		if edu.Degree != "" {
			sb.WriteString(fmt.Sprintf(", %s", edu.Degree))
		}
		sb.WriteString("\n")
	}

	if exp := profile.FirstExperience(); exp != nil {
		sb.WriteString("\nExperience:\n")
		sb.WriteString(fmt.Sprintf("  %s", orDash(exp.Company)))
		if exp.JobTitle != "" {
			sb.WriteString(fmt.Sprintf(", %s", exp.JobTitle))
		}
		sb.WriteString("\n")
	}

	if profile.Skills != "" {
		sb.WriteString(fmt.Sprintf("\nSkills: %s\n", profile.Skills))
	}

	p.printBox("STORED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFieldInventory outputs the detected form fields with their context.
func (p *Printer) PrintFieldInventory(fields []types.FieldDescriptor) {
	if len(fields) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total fields detected: %d\n\n", len(fields)))

	count := min(len(fields), maxItemsToShow)
	for i := 0; i < count; i++ {
		field := fields[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, descriptorKey(&field)))
		sb.WriteString(fmt.Sprintf("    Kind: %s\n", field.Kind))
		if field.Label != "" {
			sb.WriteString(fmt.Sprintf("    Label: %s\n", field.Label))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(fields) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(fields)-maxItemsToShow))
	}

	p.printBox("DETECTED FIELDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFillOutcome outputs the result of a fill pass.
func (p *Printer) PrintFillOutcome(outcome *types.FillOutcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Filled:  %d\n", outcome.FilledCount))
	sb.WriteString(fmt.Sprintf("Skipped: %d\n", outcome.SkippedCount))
	sb.WriteString(fmt.Sprintf("Method:  %s\n", outcome.Method))
	if outcome.RemoteError != "" {
		sb.WriteString(fmt.Sprintf("Remote:  unavailable (%s)\n", outcome.RemoteError))
	}

	if len(outcome.FilledFields) > 0 {
		sb.WriteString("\nFilled fields:\n")
		count := min(len(outcome.FilledFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", outcome.FilledFields[i]))
		}
		if len(outcome.FilledFields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(outcome.FilledFields)-maxItemsToShow))
		}
	}

	if len(outcome.SkippedFields) > 0 {
		sb.WriteString("\nSkipped by write guard:\n")
		count := min(len(outcome.SkippedFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", outcome.SkippedFields[i]))
		}
		if len(outcome.SkippedFields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(outcome.SkippedFields)-maxItemsToShow))
		}
	}

	p.printBox("FILL SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDetectReport outputs the page-detection signals.
func (p *Printer) PrintDetectReport(report *detect.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	verdict := "no"
	if report.Likely {
		verdict = "yes"
	}
	sb.WriteString(fmt.Sprintf("Job application page: %s\n\n", verdict))
	sb.WriteString(fmt.Sprintf("Portal URL:       %s\n", yesNo(report.PortalURL)))
	sb.WriteString(fmt.Sprintf("Title keywords:   %s\n", yesNo(report.TitleKeywords)))
	sb.WriteString(fmt.Sprintf("Apply keywords:   %s\n", yesNo(report.ApplyKeywords)))
	sb.WriteString(fmt.Sprintf("Name field:       %s\n", yesNo(report.NameField)))
	sb.WriteString(fmt.Sprintf("Email field:      %s\n", yesNo(report.EmailField)))
	sb.WriteString(fmt.Sprintf("Resume upload:    %s\n", yesNo(report.ResumeUpload)))
	sb.WriteString(fmt.Sprintf("Education text:   %s\n", yesNo(report.EducationText)))
	sb.WriteString(fmt.Sprintf("Experience text:  %s", yesNo(report.ExperienceText)))

	p.printBox("PAGE DETECTION", sb.String())
}

func descriptorKey(field *types.FieldDescriptor) string {
	if field.Identifier != "" {
		return field.Identifier
	}
	if field.Name != "" {
		return field.Name
	}
	return "unnamed"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func nonEmpty(values ...string) []string {
	var result []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			result = append(result, v)
		}
	}
	return result
}
