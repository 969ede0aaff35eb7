package selection

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-targeter/internal/scoring"
	"github.com/jonathan/resume-targeter/internal/types"
)

// keywordSampleSize caps how many keywords the diagnostics carry.
const keywordSampleSize = 10

// SelectTargetAwareProfile selects, ranks, and budgets the experiences and
// bullets eligible for resume generation against one target job.
//
// The selection is filled in three tiers until MaxExperiences is reached:
// aligned experiences at or above MinScore, then aligned experiences below
// MinScore (highest first), then misaligned experiences (highest first).
// As long as at least one experience has a title and a resolvable timeline,
// the selection is never empty: an empty resume is a worse failure mode than
// including a lower-confidence experience.
//
// The function is pure apart from reading opts.Now; it performs no I/O and
// never errors for data-quality problems.
func SelectTargetAwareProfile(
	profile *types.CanonicalProfile,
	jobCtx *types.JobContext,
	signals types.JobSelectionSignals,
	opts Options,
) (*types.TargetAwareProfile, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}
	if jobCtx == nil {
		return nil, ErrNilJobContext
	}
	opts = opts.withDefaults()

	jobKeywords := jobCtx.Keywords()
	diagnostics := types.SelectionDiagnostics{
		TotalExperiences: len(profile.Experiences),
		KeywordSample:    sampleKeywords(jobKeywords),
	}

	// 1. Validate raw records. Records without a title and resolvable
	// timeline are dropped; company-only issues are recorded but kept.
	validated := make([]types.Experience, 0, len(profile.Experiences))
	for _, exp := range profile.Experiences {
		result := validateExperience(exp)
		if !result.eligible {
			diagnostics.FilteredExperiences = append(diagnostics.FilteredExperiences, types.FilteredExperience{
				ExperienceID: exp.ID,
				Title:        exp.Title,
				Company:      exp.Company,
				Reasons:      result.dropReasons,
			})
			continue
		}
		for _, issue := range result.issues {
			diagnostics.Warnings = append(diagnostics.Warnings,
				fmt.Sprintf("experience %s kept with issue: %s", exp.ID, issue))
		}
		validated = append(validated, exp)
	}
	diagnostics.EligibleExperiences = len(validated)

	// 2. Score every validated experience. Rank index follows the profile's
	// recency order, which drives the bullet budget.
	scored := make([]types.TargetedExperience, 0, len(validated))
	for rank, exp := range validated {
		budget := scoring.BulletBudget(rank, exp.TenureMonths)
		candidates := scoring.ScoreBullets(exp.Bullets, signals, jobCtx.Description.HardSkills)
		score, scoreSignals, eligible, reasons := scoring.ScoreExperience(exp, candidates, jobKeywords, budget, opts.Now)

		scored = append(scored, types.TargetedExperience{
			Experience:        exp,
			Score:             score,
			Signals:           scoreSignals,
			AlignmentEligible: eligible,
			AlignmentReasons:  reasons,
			BulletBudget:      budget,
			BulletCandidates:  candidates,
		})
	}

	// 3. Partition by alignment eligibility, both sorted by score descending.
	// Stable sort keeps recency order on ties.
	var aligned, misaligned []types.TargetedExperience
	for _, exp := range scored {
		if exp.AlignmentEligible {
			aligned = append(aligned, exp)
		} else {
			misaligned = append(misaligned, exp)
			diagnostics.MisalignedExperiences = append(diagnostics.MisalignedExperiences, types.FilteredExperience{
				ExperienceID: exp.Experience.ID,
				Title:        exp.Experience.Title,
				Company:      exp.Experience.Company,
				Reasons:      exp.AlignmentReasons,
			})
		}
	}
	sortByScore(aligned)
	sortByScore(misaligned)

	// 4. Three-tier fill.
	selected := make([]types.TargetedExperience, 0, opts.MaxExperiences)
	var belowThreshold []types.TargetedExperience
	for _, exp := range aligned {
		if exp.Score >= opts.MinScore {
			if len(selected) < opts.MaxExperiences {
				selected = append(selected, exp)
			}
		} else {
			belowThreshold = append(belowThreshold, exp)
		}
	}
	if len(selected) < opts.MaxExperiences && len(belowThreshold) > 0 {
		filled := fill(&selected, belowThreshold, opts.MaxExperiences)
		if filled > 0 {
			diagnostics.Warnings = append(diagnostics.Warnings,
				fmt.Sprintf("filled %d slot(s) with aligned experiences below min score %.2f", filled, opts.MinScore))
		}
	}
	if len(selected) < opts.MaxExperiences && len(misaligned) > 0 {
		filled := fill(&selected, misaligned, opts.MaxExperiences)
		if filled > 0 {
			diagnostics.Warnings = append(diagnostics.Warnings,
				fmt.Sprintf("filled %d slot(s) with misaligned experiences as a last resort", filled))
		}
	}

	// 5. Writer payload and flattened bullet selection.
	writerExperiences, selectedBullets, writerWarnings := buildWriterPayload(selected, opts.MaxWriterExperiences)
	diagnostics.Warnings = append(diagnostics.Warnings, writerWarnings...)

	return &types.TargetAwareProfile{
		Experiences:       selected,
		WriterExperiences: writerExperiences,
		SelectedBullets:   selectedBullets,
		PrioritizedSkills: PrioritizeSkills(profile.Skills, jobCtx.RequiredSkills, opts.SkillPoolCap),
		Diagnostics:       diagnostics,
	}, nil
}

// fill appends experiences from source until the selection reaches max,
// returning how many were added.
func fill(selected *[]types.TargetedExperience, source []types.TargetedExperience, limit int) int {
	added := 0
	for _, exp := range source {
		if len(*selected) >= limit {
			break
		}
		*selected = append(*selected, exp)
		added++
	}
	return added
}

// sortByScore sorts experiences by score descending, stable on ties.
func sortByScore(experiences []types.TargetedExperience) {
	sort.SliceStable(experiences, func(i, j int) bool {
		return experiences[i].Score > experiences[j].Score
	})
}

// sampleKeywords returns the first keywordSampleSize keywords for diagnostics.
func sampleKeywords(keywords []string) []string {
	if len(keywords) <= keywordSampleSize {
		return keywords
	}
	return keywords[:keywordSampleSize]
}
