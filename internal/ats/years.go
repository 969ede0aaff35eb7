package ats

import (
	"fmt"
	"regexp"
	"strconv"
)

// requiredYearsPattern recognizes a years-of-experience requirement keyword,
// e.g. "3+ years", "5 years experience".
var requiredYearsPattern = regexp.MustCompile(`(?i)\b(\d+)\s*\+?\s*years?\b`)

// resumeYearsPattern finds years-of-experience mentions in resume text,
// tolerating "over" / "more than" phrasing and a trailing plus.
var resumeYearsPattern = regexp.MustCompile(`(?i)\b(?:over\s+|more\s+than\s+)?(\d+)\s*\+?\s*years?\b`)

// matchYearsRequirement checks whether the keyword is a years-of-experience
// requirement and, if so, whether the resume mentions at least that many
// years anywhere. A candidate with more experience than required, phrased
// differently, must not be penalized.
func matchYearsRequirement(keywordTerm, loweredResume string) (bool, string) {
	required := requiredYearsPattern.FindStringSubmatch(keywordTerm)
	if required == nil {
		return false, ""
	}
	requiredYears, err := strconv.Atoi(required[1])
	if err != nil {
		return false, ""
	}

	maxFound := -1
	for _, mention := range resumeYearsPattern.FindAllStringSubmatch(loweredResume, -1) {
		years, err := strconv.Atoi(mention[1])
		if err != nil {
			continue
		}
		if years > maxFound {
			maxFound = years
		}
	}

	if maxFound >= requiredYears {
		return true, fmt.Sprintf("%d+ years", maxFound)
	}
	return false, ""
}
