package selection

import (
	"strings"

	"github.com/jonathan/resume-targeter/internal/types"
)

// placeholderFragments are substrings that mark a field as unfilled template
// text rather than real career data.
var placeholderFragments = []string{
	"lorem ipsum",
	"placeholder",
	"your title here",
	"company name here",
}

// placeholderExact are short tokens only treated as placeholders when they
// make up the entire field value.
var placeholderExact = map[string]bool{
	"tbd":       true,
	"n/a":       true,
	"na":        true,
	"unknown":   true,
	"job title": true,
	"none":      true,
}

// validationResult is the outcome of validating one raw experience record.
type validationResult struct {
	// eligible means the record has a title and a resolvable timeline.
	eligible bool
	// dropReasons explain exclusion; empty when eligible.
	dropReasons []string
	// issues are recorded problems that do not exclude (e.g. missing company).
	issues []string
}

// validateExperience checks a raw experience record for the fields selection
// depends on. Missing title or timeline excludes the record; a missing or
// placeholder company is recorded but does not exclude on its own.
func validateExperience(exp types.Experience) validationResult {
	var result validationResult

	title := strings.TrimSpace(exp.Title)
	switch {
	case title == "":
		result.dropReasons = append(result.dropReasons, "missing title")
	case isPlaceholder(title):
		result.dropReasons = append(result.dropReasons, "title looks like placeholder text: "+title)
	}

	if !exp.HasTimeline() {
		result.dropReasons = append(result.dropReasons, "no resolvable timeline (no start date, end date, or current flag)")
	}

	company := strings.TrimSpace(exp.Company)
	switch {
	case company == "":
		result.issues = append(result.issues, "missing company")
	case isPlaceholder(company):
		result.issues = append(result.issues, "company looks like placeholder text: "+company)
	}

	result.eligible = len(result.dropReasons) == 0
	return result
}

// isPlaceholder reports whether a field value matches a known placeholder
// fragment.
func isPlaceholder(value string) bool {
	lowered := strings.ToLower(strings.TrimSpace(value))
	if placeholderExact[lowered] {
		return true
	}
	for _, fragment := range placeholderFragments {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}
