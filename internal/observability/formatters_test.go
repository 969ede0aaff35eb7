package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-targeter/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.TargetAwareProfile{
		Experiences: []types.TargetedExperience{{
			Experience:   types.Experience{Title: "Backend Engineer", Company: "Acme"},
			Score:        0.72,
			BulletBudget: 5,
		}},
		PrioritizedSkills: []string{"Go", "PostgreSQL"},
		Diagnostics: types.SelectionDiagnostics{
			TotalExperiences:    2,
			EligibleExperiences: 1,
			Warnings:            []string{"fallback tier used"},
		},
	}

	p.PrintSelection(result)
	output := buf.String()

	assert.Contains(t, output, "SELECTION RESULT")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "0.72")
	assert.Contains(t, output, "Go, PostgreSQL")
	assert.Contains(t, output, "fallback tier used")
}

func TestPrintSelection_NilIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelection(nil)
	assert.Empty(t, buf.String())
}

func TestPrintFilteredExperiences(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFilteredExperiences([]types.FilteredExperience{{
		ExperienceID: "exp-1",
		Title:        "Mystery Role",
		Reasons:      []string{"missing timeline"},
	}})
	output := buf.String()

	assert.Contains(t, output, "FILTERED EXPERIENCES")
	assert.Contains(t, output, "Mystery Role")
	assert.Contains(t, output, "missing timeline")
}

func TestPrintAtsReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AtsScoreResult{
		Overall:         82.5,
		CriticalScore:   90,
		ImportantScore:  75,
		NiceToHaveScore: 80,
		Interpretation:  "Good",
		Strengths:       []string{`Covers critical keyword "go" (exact match)`},
		Gaps: []types.GapSuggestion{
			{Keyword: "terraform", Priority: types.PriorityCritical, Verified: true},
		},
		Upgrade: types.SemanticUpgradeStats{MissingProcessed: 4, Upgraded: 1},
	}

	p.PrintAtsReport(result)
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "82.5 (Good)")
	assert.Contains(t, output, "terraform")
	assert.Contains(t, output, "1 of 4")
}
