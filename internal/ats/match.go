// Package ats matches job-description keywords against rendered resume text
// and scores the result for ATS compatibility.
package ats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-targeter/internal/keywords"
	"github.com/jonathan/resume-targeter/internal/types"
)

// resumeView holds the pre-lowered and pre-normalized forms of the resume
// text so each keyword doesn't re-normalize the whole document.
type resumeView struct {
	lowered    string // lowercased verbatim text, punctuation intact
	normalized string // keywords.Normalize applied, for variant matching
}

func newResumeView(resumeText string) resumeView {
	return resumeView{
		lowered:    strings.ToLower(resumeText),
		normalized: keywords.Normalize(resumeText),
	}
}

// MatchKeywords matches each job-description keyword against the resume
// text. Matching precedence per keyword, first hit wins:
// years-of-experience requirement, degree requirement, exact variant
// word-boundary match, JD-provided synonym match, partial substring match.
// Unmatched keywords are returned with status missing and score 0.
func MatchKeywords(resumeText string, jdKeywords []types.JdKeyword) []types.KeywordMatchResult {
	view := newResumeView(resumeText)
	results := make([]types.KeywordMatchResult, 0, len(jdKeywords))

	for _, keyword := range jdKeywords {
		results = append(results, matchKeyword(view, keyword))
	}

	return results
}

func matchKeyword(view resumeView, keyword types.JdKeyword) types.KeywordMatchResult {
	result := types.KeywordMatchResult{
		Keyword: keyword,
		Status:  types.MatchMissing,
		Score:   0,
	}

	// Years-of-experience requirements are satisfied by any larger figure
	// phrased differently ("7 years of experience" covers "3+ years").
	if matched, term := matchYearsRequirement(keyword.Term, view.lowered); matched {
		result.Status = types.MatchSemantic
		result.Score = 1.0
		result.MatchedTerm = term
		return result
	}

	// Degree requirements are satisfied by any synonym of the same tier
	// ("B.S." covers "Bachelor's degree").
	if matched, term := matchDegreeRequirement(keyword.Term, view.lowered); matched {
		result.Status = types.MatchSemantic
		result.Score = 1.0
		result.MatchedTerm = term
		return result
	}

	// Exact match in any lexical variant form, on word boundaries.
	if term := matchVariants(keyword.Term, view.normalized); term != "" {
		result.Status = types.MatchExact
		result.Score = 1.0
		result.MatchedTerm = term
		return result
	}

	// JD-provided synonyms, same variant expansion.
	for _, synonym := range keyword.Synonyms {
		if term := matchVariants(synonym, view.normalized); term != "" {
			result.Status = types.MatchSemantic
			result.Score = 1.0
			result.MatchedTerm = term
			return result
		}
	}

	// Lower-confidence substring fallback.
	if normalized := keywords.Normalize(keyword.Term); normalized != "" && strings.Contains(view.normalized, normalized) {
		result.Status = types.MatchPartial
		result.Score = 0.5
		result.MatchedTerm = normalized
		return result
	}

	return result
}

// matchVariants tests each lexical variant of term against the text with a
// word-boundary regex, returning the variant that hit or "". Variants are
// tried in sorted order so the reported term is deterministic.
func matchVariants(term, normalizedText string) string {
	variantSet := keywords.VariantsOf(term)
	variants := make([]string, 0, len(variantSet))
	for variant := range variantSet {
		variants = append(variants, variant)
	}
	sort.Strings(variants)

	for _, variant := range variants {
		if wordBoundaryMatch(variant, normalizedText) {
			return variant
		}
	}
	return ""
}

// wordBoundaryMatch reports whether the variant occurs in the text bounded
// by non-word characters.
func wordBoundaryMatch(variant, text string) bool {
	pattern, err := regexp.Compile(`(^|[^a-z0-9])` + regexp.QuoteMeta(variant) + `($|[^a-z0-9])`)
	if err != nil {
		return false
	}
	return pattern.MatchString(text)
}
