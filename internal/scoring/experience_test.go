package scoring

import (
	"testing"
	"time"

	"github.com/jonathan/resume-targeter/internal/types"
	"github.com/stretchr/testify/assert"
)

var scoringNow = time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

func TestRecencyScore_BoundaryInclusiveOnLowerTier(t *testing.T) {
	sixMonthsAgo := types.Experience{EndDate: "2026-02"}
	sevenMonthsAgo := types.Experience{EndDate: "2026-01"}

	assert.Equal(t, 1.0, recencyScore(sixMonthsAgo, scoringNow))
	assert.Equal(t, 0.9, recencyScore(sevenMonthsAgo, scoringNow))
}

func TestRecencyScore_Steps(t *testing.T) {
	assert.Equal(t, 1.0, recencyScore(types.Experience{IsCurrent: true}, scoringNow))
	assert.Equal(t, 0.7, recencyScore(types.Experience{EndDate: "2024-08"}, scoringNow)) // 24 months
	assert.Equal(t, 0.5, recencyScore(types.Experience{EndDate: "2022-08"}, scoringNow)) // 48 months
	assert.Equal(t, 0.3, recencyScore(types.Experience{EndDate: "2019-08"}, scoringNow)) // 84 months
	assert.Equal(t, 0.15, recencyScore(types.Experience{EndDate: "2010-01"}, scoringNow))
}

func TestRecencyScore_UnresolvableEndDate(t *testing.T) {
	assert.Equal(t, recencyUnresolved, recencyScore(types.Experience{}, scoringNow))
	assert.Equal(t, recencyUnresolved, recencyScore(types.Experience{EndDate: "soonish"}, scoringNow))
}

func TestWeightedBulletScore_PositionalWeights(t *testing.T) {
	selected := []types.TargetedBullet{
		{Score: 1.0},
		{Score: 0.5},
	}

	// (1.0*1.0 + 0.5*0.9) / (1.0 + 0.9)
	expected := (1.0 + 0.45) / 1.9
	assert.InDelta(t, expected, weightedBulletScore(selected), 1e-9)
}

func TestWeightedBulletScore_FloorAtMinWeight(t *testing.T) {
	selected := make([]types.TargetedBullet, 10)
	for i := range selected {
		selected[i] = types.TargetedBullet{Score: 1.0}
	}

	// All scores equal, so weighting cannot change the average regardless of floor.
	assert.InDelta(t, 1.0, weightedBulletScore(selected), 1e-9)

	// Position 8 and beyond would decay to 0.2 and 0.1 without the floor;
	// with the floor they contribute at 0.35.
	selected = []types.TargetedBullet{
		{Score: 0}, {Score: 0}, {Score: 0}, {Score: 0},
		{Score: 0}, {Score: 0}, {Score: 0}, {Score: 0}, {Score: 1.0},
	}
	// Weights: 1.0 .9 .8 .7 .6 .5 .4 .35 .35; only the last bullet scores.
	totalWeight := 1.0 + 0.9 + 0.8 + 0.7 + 0.6 + 0.5 + 0.4 + 0.35 + 0.35
	assert.InDelta(t, 0.35/totalWeight, weightedBulletScore(selected), 1e-9)
}

func TestKeywordScore_EqualWeightDeduped(t *testing.T) {
	exp := types.Experience{Title: "Python Engineer", Company: "Acme"}
	selected := []types.TargetedBullet{
		{Bullet: types.Bullet{Text: "Built data pipelines in Airflow"}},
	}
	keywords := []string{"python", "Python", "airflow", "kubernetes", "terraform"}

	// Deduped set: python, airflow, kubernetes, terraform. Two match.
	assert.InDelta(t, 0.5, keywordScore(exp, selected, keywords), 1e-9)
}

func TestKeywordScore_EmptyKeywords(t *testing.T) {
	assert.Equal(t, 0.0, keywordScore(types.Experience{Title: "Engineer"}, nil, nil))
}

func TestScoreExperience_AlignmentGate(t *testing.T) {
	exp := types.Experience{ID: "e1", Title: "Gardener", EndDate: "2026-05"}
	bullets := []types.TargetedBullet{
		{Bullet: types.Bullet{Text: "watered plants"}, Score: 0.1},
	}

	_, signals, eligible, reasons := ScoreExperience(exp, bullets, []string{"python"}, 6, scoringNow)

	assert.False(t, eligible)
	assert.Len(t, reasons, 2)
	assert.Contains(t, reasons[0], "0.30")
	assert.Contains(t, reasons[1], "0.20")
	assert.Less(t, signals.BulletScore, alignBulletThreshold)
	assert.Less(t, signals.KeywordScore, alignKeywordThreshold)
}

func TestScoreExperience_AlignedViaKeywordsAlone(t *testing.T) {
	// Topically relevant via keywords but poorly embedded: still eligible.
	exp := types.Experience{ID: "e1", Title: "Python Engineer", EndDate: "2026-05"}
	bullets := []types.TargetedBullet{
		{Bullet: types.Bullet{Text: "maintained internal tooling"}, Score: 0.05},
	}

	_, signals, eligible, reasons := ScoreExperience(exp, bullets, []string{"python"}, 6, scoringNow)

	assert.True(t, eligible)
	assert.Empty(t, reasons)
	assert.Equal(t, 1.0, signals.KeywordScore)
}

func TestScoreExperience_OnlyBudgetedBulletsCount(t *testing.T) {
	exp := types.Experience{ID: "e1", Title: "Engineer", EndDate: "2026-05"}
	bullets := []types.TargetedBullet{
		{Bullet: types.Bullet{Text: "kept 99.9% uptime"}, Score: 0.9, HasMetric: true},
		{Bullet: types.Bullet{Text: "something weak"}, Score: 0.0},
	}

	_, signalsAll, _, _ := ScoreExperience(exp, bullets, nil, 2, scoringNow)
	_, signalsOne, _, _ := ScoreExperience(exp, bullets, nil, 1, scoringNow)

	assert.Equal(t, 1.0, signalsOne.MetricDensity)
	assert.Equal(t, 0.5, signalsAll.MetricDensity)
	assert.Greater(t, signalsOne.BulletScore, signalsAll.BulletScore)
}

func TestScoreExperience_CombinedWeights(t *testing.T) {
	exp := types.Experience{ID: "e1", Title: "Python Engineer", IsCurrent: true}
	bullets := []types.TargetedBullet{
		{Bullet: types.Bullet{Text: "shipped python service handling 1M rps"}, Score: 1.0, HasMetric: true},
	}

	score, signals, eligible, _ := ScoreExperience(exp, bullets, []string{"python"}, 6, scoringNow)

	assert.True(t, eligible)
	assert.Equal(t, types.ScoreSignals{BulletScore: 1.0, KeywordScore: 1.0, RecencyScore: 1.0, MetricDensity: 1.0}, signals)
	assert.InDelta(t, 1.0, score, 1e-9)
}
