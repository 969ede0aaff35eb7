package ats

import (
	"context"

	"github.com/jonathan/resume-targeter/internal/embedding"
	"github.com/jonathan/resume-targeter/internal/types"
)

// ScoreResume runs the full ATS pipeline for one resume against one
// job-description keyword set: lexical matching per tier, the optional
// embedding-based upgrade pass (skipped when embedder is nil), and the
// weighted final score. Provider failures never abort scoring; they only
// show up in the result's upgrade stats.
func ScoreResume(
	ctx context.Context,
	resumeText string,
	jdKeywords []types.JdKeyword,
	skillPool []string,
	embedder embedding.TextEmbedder,
	cfg UpgradeConfig,
) types.AtsScoreResult {
	critical, important, niceToHave := SplitByPriority(jdKeywords)

	criticalResults := MatchKeywords(resumeText, critical)
	importantResults := MatchKeywords(resumeText, important)
	niceToHaveResults := MatchKeywords(resumeText, niceToHave)

	var stats types.SemanticUpgradeStats
	if embedder != nil {
		// Upgrade across all tiers in one pass so the resume phrases are
		// extracted and embedded once.
		combined := make([]types.KeywordMatchResult, 0,
			len(criticalResults)+len(importantResults)+len(niceToHaveResults))
		combined = append(combined, criticalResults...)
		combined = append(combined, importantResults...)
		combined = append(combined, niceToHaveResults...)

		stats = UpgradeMissing(ctx, resumeText, combined, embedder, cfg)

		criticalResults = combined[:len(criticalResults)]
		importantResults = combined[len(criticalResults) : len(criticalResults)+len(importantResults)]
		niceToHaveResults = combined[len(criticalResults)+len(importantResults):]
	}

	result := Score(criticalResults, importantResults, niceToHaveResults, skillPool)
	result.Upgrade = stats
	return result
}
