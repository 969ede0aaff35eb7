package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-targeter/internal/types"
)

// Weights for the additive bullet score. Similarity carries most of the
// signal; tool mentions and quantification are bounded boosts so neither can
// carry a low-similarity bullet on its own.
const (
	similarityWeight = 0.65
	toolMatchBoost   = 0.20
	metricBoost      = 0.15

	// maxToolMatches caps how many matched hard-skill tokens are recorded per bullet.
	maxToolMatches = 5
)

// ScoreBullets scores every bullet against the job's embedding signals and
// hard-skill tokens, returning annotations sorted by score (descending).
// Bullets without an embedding score 0 similarity rather than erroring.
func ScoreBullets(bullets []types.Bullet, signals types.JobSelectionSignals, hardSkills []string) []types.TargetedBullet {
	scored := make([]types.TargetedBullet, 0, len(bullets))

	for _, bullet := range bullets {
		similarity := bestSimilarity(bullet.Embedding, signals)
		toolMatches := matchHardSkills(bullet.Text, hardSkills)
		hasMetric := ContainsMetric(bullet.Text)

		score := similarity * similarityWeight
		if len(toolMatches) > 0 {
			score += toolMatchBoost
		}
		if hasMetric {
			score += metricBoost
		}

		scored = append(scored, types.TargetedBullet{
			Bullet:      bullet,
			Score:       clamp01(score),
			Similarity:  similarity,
			HasMetric:   hasMetric,
			ToolMatches: toolMatches,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// bestSimilarity returns the max cosine similarity between the bullet
// embedding and each query embedding, falling back to the single job
// embedding when no query embeddings exist.
func bestSimilarity(embedding []float64, signals types.JobSelectionSignals) float64 {
	if len(embedding) == 0 {
		return 0
	}

	if len(signals.QueryEmbeddings) == 0 {
		return CosineSimilarity(embedding, signals.JobEmbedding)
	}

	best := 0.0
	for _, query := range signals.QueryEmbeddings {
		if sim := CosineSimilarity(embedding, query); sim > best {
			best = sim
		}
	}
	return best
}

// matchHardSkills returns up to maxToolMatches hard-skill tokens found in the
// bullet text via case-insensitive substring match.
func matchHardSkills(text string, hardSkills []string) []string {
	if text == "" || len(hardSkills) == 0 {
		return nil
	}

	lowered := strings.ToLower(text)
	matches := make([]string, 0, maxToolMatches)
	for _, skill := range hardSkills {
		token := strings.ToLower(strings.TrimSpace(skill))
		if token == "" {
			continue
		}
		if strings.Contains(lowered, token) {
			matches = append(matches, skill)
			if len(matches) == maxToolMatches {
				break
			}
		}
	}

	if len(matches) == 0 {
		return nil
	}
	return matches
}

// ContainsMetric reports whether text carries quantification: a digit, a
// percent sign, or a dollar sign.
func ContainsMetric(text string) bool {
	return strings.ContainsAny(text, "0123456789%$")
}
