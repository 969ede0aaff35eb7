// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-targeter/internal/types"
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

// PrintSelection outputs a human-readable summary of a selection result.
func (p *Printer) PrintSelection(result *types.TargetAwareProfile) {
	if result == nil {
		return
	}

	var sb strings.Builder

	diag := result.Diagnostics
	sb.WriteString(fmt.Sprintf("Experiences: %d total, %d eligible, %d selected\n",
		diag.TotalExperiences, diag.EligibleExperiences, len(result.Experiences)))
	sb.WriteString("\n")

	count := min(len(result.Experiences), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := result.Experiences[i]
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", i+1, exp.Experience.Title, exp.Experience.Company))
		sb.WriteString(fmt.Sprintf("    Score: %.2f  Budget: %d bullets\n", exp.Score, exp.BulletBudget))
		if !exp.AlignmentEligible && len(exp.AlignmentReasons) > 0 {
			sb.WriteString(fmt.Sprintf("    Misaligned: %s\n", exp.AlignmentReasons[0]))
		}
	}
	if len(result.Experiences) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Experiences)-maxItemsToShow))
	}

	if len(result.PrioritizedSkills) > 0 {
		skills := strings.Join(result.PrioritizedSkills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills: %s\n", skills))
	}

	for _, warning := range diag.Warnings {
		sb.WriteString(fmt.Sprintf("\nWarning: %s", warning))
	}

	p.printBox("SELECTION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFilteredExperiences outputs the experiences excluded during
// validation with their reasons.
func (p *Printer) PrintFilteredExperiences(filtered []types.FilteredExperience) {
	if len(filtered) == 0 {
		return
	}

	var sb strings.Builder
	for i, f := range filtered {
		label := f.Title
		if label == "" {
			label = f.ExperienceID
		}
		sb.WriteString(fmt.Sprintf("• %s\n", label))
		for _, reason := range f.Reasons {
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		if i < len(filtered)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FILTERED EXPERIENCES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAtsReport outputs a human-readable summary of an ATS score result.
func (p *Printer) PrintAtsReport(result *types.AtsScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall: %.1f (%s)\n", result.Overall, result.Interpretation))
	sb.WriteString(fmt.Sprintf("Critical: %.1f  Important: %.1f  Nice-to-have: %.1f\n",
		result.CriticalScore, result.ImportantScore, result.NiceToHaveScore))
	sb.WriteString("\n")

	if len(result.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(result.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Strengths[i]))
		}
		sb.WriteString("\n")
	}

	if len(result.Gaps) > 0 {
		sb.WriteString("Gaps:\n")
		for _, gap := range result.Gaps {
			marker := " "
			if gap.Verified {
				marker = "*"
			}
			sb.WriteString(fmt.Sprintf("  %s %s (%s)\n", marker, gap.Keyword, gap.Priority))
		}
		sb.WriteString("\n")
	}

	if result.Upgrade.MissingProcessed > 0 {
		sb.WriteString(fmt.Sprintf("Semantic upgrades: %d of %d missing keywords",
			result.Upgrade.Upgraded, result.Upgrade.MissingProcessed))
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}
