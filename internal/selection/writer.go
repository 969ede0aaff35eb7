package selection

import (
	"fmt"

	"github.com/jonathan/resume-targeter/internal/types"
)

// candidateCapFactor bounds writer candidates at twice the bullet budget;
// with the minimum budget of 2 that still leaves budget+2 candidates.
const candidateCapFactor = 2

// buildWriterPayload reduces the selected experiences to the shape the
// downstream resume writer consumes. Experiences with no usable bullet
// candidates are excluded from the payload (they stay in diagnostics), and
// bullets without provenance source IDs are never surfaced to the writer.
func buildWriterPayload(
	selected []types.TargetedExperience,
	maxWriterExperiences int,
) ([]types.WriterExperience, []types.TargetedBullet, []string) {
	writerExperiences := make([]types.WriterExperience, 0, len(selected))
	selectedBullets := make([]types.TargetedBullet, 0)
	var warnings []string

	for _, exp := range selected {
		if len(writerExperiences) >= maxWriterExperiences {
			break
		}

		usable := make([]types.TargetedBullet, 0, len(exp.BulletCandidates))
		dropped := 0
		for _, candidate := range exp.BulletCandidates {
			if len(candidate.Bullet.SourceIDs) == 0 {
				dropped++
				continue
			}
			usable = append(usable, candidate)
		}
		if dropped > 0 {
			warnings = append(warnings, fmt.Sprintf(
				"experience %s: %d bullet(s) without source provenance excluded from writer payload",
				exp.Experience.ID, dropped))
		}

		if len(usable) == 0 {
			warnings = append(warnings, fmt.Sprintf(
				"experience %s: no bullet candidates, excluded from writer payload", exp.Experience.ID))
			continue
		}

		maxCandidates := exp.BulletBudget * candidateCapFactor
		if len(usable) > maxCandidates {
			usable = usable[:maxCandidates]
		}

		candidates := make([]types.WriterBulletCandidate, 0, len(usable))
		for _, candidate := range usable {
			candidates = append(candidates, types.WriterBulletCandidate{
				ID:          candidate.Bullet.ID,
				Text:        candidate.Bullet.Text,
				SourceIDs:   candidate.Bullet.SourceIDs,
				Score:       candidate.Score,
				HasMetric:   candidate.HasMetric,
				ToolMatches: candidate.ToolMatches,
				Similarity:  candidate.Similarity,
			})
		}

		writerExperiences = append(writerExperiences, types.WriterExperience{
			ID:               exp.Experience.ID,
			Title:            exp.Experience.Title,
			Company:          exp.Experience.Company,
			Location:         exp.Experience.Location,
			StartDate:        exp.Experience.StartDate,
			EndDate:          exp.Experience.EndDate,
			IsCurrent:        exp.Experience.IsCurrent,
			BulletBudget:     exp.BulletBudget,
			BulletCandidates: candidates,
		})

		budgeted := usable
		if len(budgeted) > exp.BulletBudget {
			budgeted = budgeted[:exp.BulletBudget]
		}
		selectedBullets = append(selectedBullets, budgeted...)
	}

	return writerExperiences, selectedBullets, warnings
}
