package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-targeter/internal/keywords"
	"github.com/jonathan/resume-targeter/internal/types"
)

// Category blend weights. When a tier has no keywords its weight is folded
// into critical first, then nice-to-have, so the blend always sums to 1
// across present tiers.
const (
	criticalWeight   = 0.40
	importantWeight  = 0.35
	niceToHaveWeight = 0.25

	// emptyCategoryScore: absence of a requirement is not a penalty.
	emptyCategoryScore = 100.0

	// maxSuggestions caps the improvement list.
	maxSuggestions = 5
)

// Score combines the per-tier match results into a weighted ATS score with
// band interpretation, gap suggestions, and strengths. skillPool is the
// candidate's own skill labels, used to tag each suggestion as verified
// (the pool already supports the keyword) or unverified.
func Score(critical, important, niceToHave []types.KeywordMatchResult, skillPool []string) types.AtsScoreResult {
	result := types.AtsScoreResult{
		CriticalScore:   categoryScore(critical),
		ImportantScore:  categoryScore(important),
		NiceToHaveScore: categoryScore(niceToHave),
	}

	result.Overall = blend(
		weighted{result.CriticalScore, criticalWeight, len(critical) > 0},
		weighted{result.ImportantScore, importantWeight, len(important) > 0},
		weighted{result.NiceToHaveScore, niceToHaveWeight, len(niceToHave) > 0},
	)
	result.Interpretation = interpret(result.Overall)

	all := make([]types.KeywordMatchResult, 0, len(critical)+len(important)+len(niceToHave))
	all = append(all, critical...)
	all = append(all, important...)
	all = append(all, niceToHave...)
	result.Matches = all

	result.Gaps = buildGaps(critical, important, skillPool)
	result.Strengths = buildStrengths(critical, important)

	return result
}

// categoryScore is the mean per-keyword score scaled to 0-100. An empty
// category scores 100: no requirement of that tier means full credit.
func categoryScore(results []types.KeywordMatchResult) float64 {
	if len(results) == 0 {
		return emptyCategoryScore
	}

	total := 0.0
	for _, r := range results {
		total += r.Score
	}
	return total / float64(len(results)) * 100
}

// weighted pairs a category score with its base weight and presence.
type weighted struct {
	score   float64
	weight  float64
	present bool
}

// blend combines the category scores. Weights of empty categories fold into
// critical first, then nice-to-have, then whatever tier remains; an
// all-empty keyword set scores a flat 100.
func blend(critical, important, niceToHave weighted) float64 {
	categories := []*weighted{&critical, &important, &niceToHave}

	present := 0
	for _, c := range categories {
		if c.present {
			present++
		}
	}
	if present == 0 {
		return emptyCategoryScore
	}

	for _, c := range categories {
		if c.present {
			continue
		}
		switch {
		case critical.present:
			critical.weight += c.weight
		case niceToHave.present:
			niceToHave.weight += c.weight
		default:
			important.weight += c.weight
		}
		c.weight = 0
	}

	var total, totalWeight float64
	for _, c := range categories {
		if c.present {
			total += c.score * c.weight
			totalWeight += c.weight
		}
	}
	return total / totalWeight
}

// interpret maps an overall score to its qualitative band.
func interpret(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Good"
	case score >= 60:
		return "Moderate"
	case score >= 40:
		return "Average"
	default:
		return "Weak"
	}
}

// buildGaps derives at most maxSuggestions truth-grounded improvement
// suggestions from missing critical and important keywords. Nice-to-have
// gaps are excluded: optional requirements are not gaps. A suggestion is
// verified when the candidate's own skill pool already covers the keyword.
func buildGaps(critical, important []types.KeywordMatchResult, skillPool []string) []types.GapSuggestion {
	poolVariants := make(map[string]bool)
	for _, skill := range skillPool {
		for variant := range keywords.VariantsOf(skill) {
			poolVariants[variant] = true
		}
	}

	gaps := make([]types.GapSuggestion, 0, maxSuggestions)
	appendGaps := func(results []types.KeywordMatchResult, priority types.KeywordPriority) {
		for _, r := range results {
			if len(gaps) >= maxSuggestions {
				return
			}
			if r.Status != types.MatchMissing {
				continue
			}

			verified := poolInVariants(poolVariants, r.Keyword.Term)
			message := fmt.Sprintf("Resume does not mention %q (%s requirement)", r.Keyword.Term, priority)
			if verified {
				message += "; the skill is already in your profile, consider surfacing it"
			} else {
				message += "; add it only if you can back it up"
			}

			gaps = append(gaps, types.GapSuggestion{
				Keyword:  r.Keyword.Term,
				Priority: priority,
				Message:  message,
				Verified: verified,
			})
		}
	}

	appendGaps(critical, types.PriorityCritical)
	appendGaps(important, types.PriorityImportant)
	return gaps
}

// poolInVariants reports whether any variant of the keyword appears in the
// candidate's skill pool variants.
func poolInVariants(poolVariants map[string]bool, term string) bool {
	for variant := range keywords.VariantsOf(term) {
		if poolVariants[variant] {
			return true
		}
	}
	return false
}

// buildStrengths lists the matched critical and important keywords.
func buildStrengths(critical, important []types.KeywordMatchResult) []string {
	var strengths []string
	for _, r := range critical {
		if r.Matched() {
			strengths = append(strengths, fmt.Sprintf("Covers critical keyword %q (%s match)", r.Keyword.Term, r.Status))
		}
	}
	for _, r := range important {
		if r.Matched() {
			strengths = append(strengths, fmt.Sprintf("Covers important keyword %q (%s match)", r.Keyword.Term, r.Status))
		}
	}
	return strengths
}

// SplitByPriority partitions keywords into the three tiers. Unknown
// priorities land in nice-to-have, the most forgiving tier.
func SplitByPriority(jdKeywords []types.JdKeyword) (critical, important, niceToHave []types.JdKeyword) {
	for _, keyword := range jdKeywords {
		switch types.KeywordPriority(strings.ToLower(string(keyword.Priority))) {
		case types.PriorityCritical:
			critical = append(critical, keyword)
		case types.PriorityImportant:
			important = append(important, keyword)
		default:
			niceToHave = append(niceToHave, keyword)
		}
	}
	return critical, important, niceToHave
}
