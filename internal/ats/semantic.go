package ats

import (
	"context"

	"github.com/jonathan/resume-targeter/internal/embedding"
	"github.com/jonathan/resume-targeter/internal/scoring"
	"github.com/jonathan/resume-targeter/internal/types"
)

// Semantic-upgrade similarity thresholds. Empirically tuned constants, not
// derived; override through UpgradeConfig when operating data says otherwise.
const (
	DefaultSemanticThreshold = 0.58
	DefaultPartialThreshold  = 0.45

	semanticUpgradeScore = 0.9
	partialUpgradeScore  = 0.5
)

// UpgradeConfig tunes the semantic-upgrade pass. Zero values fall back to
// defaults.
type UpgradeConfig struct {
	SemanticThreshold float64
	PartialThreshold  float64
	Concurrency       int
}

func (c UpgradeConfig) withDefaults() UpgradeConfig {
	if c.SemanticThreshold <= 0 {
		c.SemanticThreshold = DefaultSemanticThreshold
	}
	if c.PartialThreshold <= 0 {
		c.PartialThreshold = DefaultPartialThreshold
	}
	return c
}

// UpgradeMissing re-examines keywords left missing by lexical matching,
// comparing their embeddings against skill phrases extracted from the
// resume. Results are upgraded in place. The pass degrades gracefully: any
// embedding failure is isolated and counted, and a fully failed batch
// leaves the lexical results untouched. The returned stats let the caller
// detect a silently degraded provider via the upgrade ratio.
func UpgradeMissing(
	ctx context.Context,
	resumeText string,
	results []types.KeywordMatchResult,
	embedder embedding.TextEmbedder,
	cfg UpgradeConfig,
) types.SemanticUpgradeStats {
	var stats types.SemanticUpgradeStats
	if embedder == nil {
		return stats
	}
	cfg = cfg.withDefaults()

	missingIdx := make([]int, 0, len(results))
	for i, result := range results {
		if result.Status == types.MatchMissing {
			missingIdx = append(missingIdx, i)
		}
	}
	if len(missingIdx) == 0 {
		return stats
	}

	phrases := ExtractSkillPhrases(resumeText)
	if len(phrases) == 0 {
		stats.MissingProcessed = len(missingIdx)
		return stats
	}

	phraseVectors, phraseFailures := embedding.EmbedEach(ctx, embedder, phrases, cfg.Concurrency)
	stats.EmbeddingErrors += phraseFailures

	terms := make([]string, len(missingIdx))
	for j, i := range missingIdx {
		terms[j] = results[i].Keyword.Term
	}
	termVectors, termFailures := embedding.EmbedEach(ctx, embedder, terms, cfg.Concurrency)
	stats.EmbeddingErrors += termFailures

	for j, i := range missingIdx {
		stats.MissingProcessed++
		termVector := termVectors[j]
		if termVector == nil {
			continue
		}

		bestSim := 0.0
		bestPhrase := ""
		for k, phraseVector := range phraseVectors {
			if phraseVector == nil {
				continue
			}
			if sim := scoring.CosineSimilarity(termVector, phraseVector); sim > bestSim {
				bestSim = sim
				bestPhrase = phrases[k]
			}
		}

		switch {
		case bestSim >= cfg.SemanticThreshold:
			results[i].Status = types.MatchSemantic
			results[i].Score = semanticUpgradeScore
			results[i].MatchedTerm = bestPhrase
			stats.Upgraded++
		case bestSim >= cfg.PartialThreshold:
			results[i].Status = types.MatchPartial
			results[i].Score = partialUpgradeScore
			results[i].MatchedTerm = bestPhrase
			stats.Upgraded++
		}
	}

	return stats
}
