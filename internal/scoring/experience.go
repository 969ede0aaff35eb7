package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-targeter/internal/types"
)

// Weights for the combined experience score.
const (
	bulletScoreWeight   = 0.55
	keywordScoreWeight  = 0.20
	recencyScoreWeight  = 0.20
	metricDensityWeight = 0.05

	// Positional weighting of budget-selected bullets: bullet i carries
	// max(minBulletWeight, 1 - bulletWeightDecay*i).
	bulletWeightDecay = 0.10
	minBulletWeight   = 0.35

	// Alignment eligibility thresholds (two-signal OR gate).
	alignBulletThreshold  = 0.30
	alignKeywordThreshold = 0.20

	// Recency score when the end date cannot be resolved.
	recencyUnresolved = 0.35
)

// dateLayout is the month-granularity date format used throughout the profile.
const dateLayout = "2006-01"

// ScoreExperience computes the combined relevance score for an experience
// from its pre-scored bullet candidates, the job keyword set, and the bullet
// budget. It returns the score, the per-signal breakdown, whether the
// experience is alignment-eligible, and reason strings when it is not.
//
// The keyword policy is equal weight per deduplicated keyword; multi-word
// phrases count the same as single tokens.
func ScoreExperience(
	exp types.Experience,
	bulletCandidates []types.TargetedBullet,
	jobKeywords []string,
	budget int,
	now time.Time,
) (float64, types.ScoreSignals, bool, []string) {
	selected := bulletCandidates
	if budget >= 0 && len(selected) > budget {
		selected = selected[:budget]
	}

	signals := types.ScoreSignals{
		BulletScore:   weightedBulletScore(selected),
		KeywordScore:  keywordScore(exp, selected, jobKeywords),
		RecencyScore:  recencyScore(exp, now),
		MetricDensity: metricDensity(selected),
	}

	combined := clamp01(signals.BulletScore*bulletScoreWeight +
		signals.KeywordScore*keywordScoreWeight +
		signals.RecencyScore*recencyScoreWeight +
		signals.MetricDensity*metricDensityWeight)

	eligible := signals.BulletScore >= alignBulletThreshold || signals.KeywordScore >= alignKeywordThreshold
	var reasons []string
	if !eligible {
		reasons = []string{
			fmt.Sprintf("bullet score %.2f below threshold %.2f", signals.BulletScore, alignBulletThreshold),
			fmt.Sprintf("keyword score %.2f below threshold %.2f", signals.KeywordScore, alignKeywordThreshold),
		}
	}

	return combined, signals, eligible, reasons
}

// weightedBulletScore averages the selected bullet scores with positional
// weights: earlier (higher-scored) bullets count more, but no bullet drops
// below minBulletWeight.
func weightedBulletScore(selected []types.TargetedBullet) float64 {
	if len(selected) == 0 {
		return 0
	}

	var weightedSum, totalWeight float64
	for i, bullet := range selected {
		weight := 1.0 - bulletWeightDecay*float64(i)
		if weight < minBulletWeight {
			weight = minBulletWeight
		}
		weightedSum += bullet.Score * weight
		totalWeight += weight
	}

	return weightedSum / totalWeight
}

// keywordScore returns the fraction of deduplicated job keywords found as a
// case-insensitive substring of the experience's descriptive text (title,
// company, location, and the selected bullet texts).
func keywordScore(exp types.Experience, selected []types.TargetedBullet, jobKeywords []string) float64 {
	if len(jobKeywords) == 0 {
		return 0
	}

	deduped := make([]string, 0, len(jobKeywords))
	seen := make(map[string]struct{}, len(jobKeywords))
	for _, kw := range jobKeywords {
		normalized := strings.ToLower(strings.TrimSpace(kw))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		deduped = append(deduped, normalized)
	}
	if len(deduped) == 0 {
		return 0
	}

	var haystack strings.Builder
	haystack.WriteString(exp.Title)
	haystack.WriteString(" ")
	haystack.WriteString(exp.Company)
	haystack.WriteString(" ")
	haystack.WriteString(exp.Location)
	for _, bullet := range selected {
		haystack.WriteString(" ")
		haystack.WriteString(bullet.Bullet.Text)
	}
	text := strings.ToLower(haystack.String())

	matches := 0
	for _, kw := range deduped {
		if strings.Contains(text, kw) {
			matches++
		}
	}

	return float64(matches) / float64(len(deduped))
}

// recencyScore is a step function of months since the experience ended.
// Current roles count as ending now. Boundaries are inclusive on the lower
// tier: ending exactly 6 months ago still scores 1.0.
func recencyScore(exp types.Experience, now time.Time) float64 {
	months, ok := monthsSinceEnd(exp, now)
	if !ok {
		return recencyUnresolved
	}

	switch {
	case months <= 6:
		return 1.0
	case months <= 12:
		return 0.9
	case months <= 36:
		return 0.7
	case months <= 60:
		return 0.5
	case months <= 120:
		return 0.3
	default:
		return 0.15
	}
}

// monthsSinceEnd resolves how many months ago the experience ended.
// Current roles resolve to 0. Returns false when no end date is resolvable.
func monthsSinceEnd(exp types.Experience, now time.Time) (int, bool) {
	if exp.IsCurrent {
		return 0, true
	}
	if exp.EndDate == "" {
		return 0, false
	}

	end, err := time.Parse(dateLayout, exp.EndDate)
	if err != nil {
		return 0, false
	}

	months := (now.Year()-end.Year())*12 + int(now.Month()) - int(end.Month())
	if months < 0 {
		months = 0
	}
	return months, true
}

// metricDensity is the fraction of selected bullets flagged as quantified.
func metricDensity(selected []types.TargetedBullet) float64 {
	if len(selected) == 0 {
		return 0
	}

	withMetric := 0
	for _, bullet := range selected {
		if bullet.HasMetric {
			withMetric++
		}
	}

	return float64(withMetric) / float64(len(selected))
}
