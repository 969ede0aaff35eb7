package ats

import (
	"regexp"
	"strings"
)

// degreeTier identifies one level of academic degree requirement.
type degreeTier string

const (
	tierAssociate degreeTier = "associate"
	tierBachelor  degreeTier = "bachelor"
	tierMaster    degreeTier = "master"
	tierDoctorate degreeTier = "doctorate"
)

// degreeKeywordPatterns map a job-description keyword to its degree tier.
var degreeKeywordPatterns = []struct {
	tier    degreeTier
	pattern *regexp.Regexp
}{
	{tierDoctorate, regexp.MustCompile(`(?i)\b(ph\.?d|doctorate|doctoral)\b`)},
	{tierMaster, regexp.MustCompile(`(?i)\b(master'?s?|m\.?s\.?|m\.?sc|mba)\b`)},
	{tierBachelor, regexp.MustCompile(`(?i)\b(bachelor'?s?|b\.?s\.?|b\.?a\.?|b\.?sc|undergraduate)\b`)},
	{tierAssociate, regexp.MustCompile(`(?i)\b(associate'?s?|a\.?a\.?s?)\s+degree\b`)},
}

// degreeSynonyms are the resume-side spellings that satisfy each tier.
// "B.S.", "Bachelor of Science", and "undergraduate degree" all satisfy a
// "Bachelor's degree" requirement.
var degreeSynonyms = map[degreeTier][]string{
	tierAssociate: {
		"associate degree", "associate's degree", "associates degree", "a.a.s", "a.a. degree",
	},
	tierBachelor: {
		"bachelor", "bachelors", "bachelor's", "b.s.", "b.a.", "bs in", "ba in", "b.sc",
		"bachelor of science", "bachelor of arts", "bachelor of engineering", "undergraduate degree",
	},
	tierMaster: {
		"master", "masters", "master's", "m.s.", "m.a.", "ms in", "ma in", "m.sc", "mba",
		"master of science", "master of arts", "master of engineering",
	},
	tierDoctorate: {
		"phd", "ph.d", "doctorate", "doctoral", "doctor of philosophy",
	},
}

// matchDegreeRequirement checks whether the keyword names a degree
// requirement and, if so, whether the resume mentions any synonym of the
// same tier.
func matchDegreeRequirement(keywordTerm, loweredResume string) (bool, string) {
	tier, ok := degreeTierOf(keywordTerm)
	if !ok {
		return false, ""
	}

	for _, synonym := range degreeSynonyms[tier] {
		if strings.Contains(loweredResume, synonym) {
			return true, synonym
		}
	}
	return false, ""
}

// degreeTierOf maps a keyword to its degree tier. Only keywords that talk
// about degrees qualify; a stray "MS" in "MS SQL Server" must not.
func degreeTierOf(keywordTerm string) (degreeTier, bool) {
	lowered := strings.ToLower(keywordTerm)
	if !strings.Contains(lowered, "degree") &&
		!strings.Contains(lowered, "bachelor") &&
		!strings.Contains(lowered, "master") &&
		!strings.Contains(lowered, "phd") &&
		!strings.Contains(lowered, "ph.d") &&
		!strings.Contains(lowered, "doctora") &&
		!strings.Contains(lowered, "associate's") &&
		!strings.Contains(lowered, "undergraduate") {
		return "", false
	}

	for _, entry := range degreeKeywordPatterns {
		if entry.pattern.MatchString(keywordTerm) {
			return entry.tier, true
		}
	}

	return "", false
}
