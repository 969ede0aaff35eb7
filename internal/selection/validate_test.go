package selection

import (
	"testing"

	"github.com/jonathan/resume-targeter/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestValidateExperience_Valid(t *testing.T) {
	result := validateExperience(types.Experience{
		Title:     "Software Engineer",
		Company:   "Acme",
		StartDate: "2020-01",
	})

	assert.True(t, result.eligible)
	assert.Empty(t, result.dropReasons)
	assert.Empty(t, result.issues)
}

func TestValidateExperience_MissingTitleExcludes(t *testing.T) {
	result := validateExperience(types.Experience{Company: "Acme", StartDate: "2020-01"})

	assert.False(t, result.eligible)
	assert.Contains(t, result.dropReasons, "missing title")
}

func TestValidateExperience_NoTimelineExcludes(t *testing.T) {
	result := validateExperience(types.Experience{Title: "Engineer", Company: "Acme"})

	assert.False(t, result.eligible)
	assert.Len(t, result.dropReasons, 1)
}

func TestValidateExperience_CurrentFlagIsATimeline(t *testing.T) {
	result := validateExperience(types.Experience{Title: "Engineer", Company: "Acme", IsCurrent: true})

	assert.True(t, result.eligible)
}

func TestValidateExperience_MissingCompanyIsIssueOnly(t *testing.T) {
	result := validateExperience(types.Experience{Title: "Engineer", StartDate: "2020-01"})

	assert.True(t, result.eligible)
	assert.Contains(t, result.issues, "missing company")
}

func TestValidateExperience_PlaceholderTitleExcludes(t *testing.T) {
	result := validateExperience(types.Experience{Title: "Your Title Here", Company: "Acme", IsCurrent: true})

	assert.False(t, result.eligible)
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, isPlaceholder("TBD"))
	assert.True(t, isPlaceholder("n/a"))
	assert.True(t, isPlaceholder("Lorem ipsum dolor"))
	assert.False(t, isPlaceholder("Outbound Sales Lead"))
	assert.False(t, isPlaceholder("Nationwide Insurance"))
}
