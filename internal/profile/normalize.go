// Package profile loads and normalizes canonical profile files.
package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-targeter/internal/types"
)

const dateLayout = "2006-01"

// Normalize applies all normalization steps to a loaded profile: nil list
// fields become empty slices, bullet text is trimmed and empty bullets
// dropped, missing experience and bullet IDs are minted, and tenure is
// derived from the timeline. Normalize never fails; questionable records
// are left for the selection layer to judge.
func Normalize(profile *types.CanonicalProfile, now time.Time) {
	if profile.Experiences == nil {
		profile.Experiences = []types.Experience{}
	}
	if profile.Skills == nil {
		profile.Skills = []types.SkillEntry{}
	}

	for i := range profile.Experiences {
		normalizeExperience(&profile.Experiences[i], now)
	}
}

func normalizeExperience(exp *types.Experience, now time.Time) {
	exp.Title = strings.TrimSpace(exp.Title)
	exp.Company = strings.TrimSpace(exp.Company)
	exp.Location = strings.TrimSpace(exp.Location)

	if exp.ID == "" {
		exp.ID = uuid.NewString()
	}

	kept := make([]types.Bullet, 0, len(exp.Bullets))
	for _, bullet := range exp.Bullets {
		bullet.Text = strings.TrimSpace(bullet.Text)
		if bullet.Text == "" {
			continue
		}
		if bullet.ID == "" {
			bullet.ID = uuid.NewString()
		}
		kept = append(kept, bullet)
	}
	exp.Bullets = kept

	if exp.TenureMonths == 0 {
		exp.TenureMonths = tenureMonths(exp, now)
	}
}

// tenureMonths derives the role's tenure from its timeline, minimum 1 for
// any parseable start date. An experience without a parseable start keeps
// zero tenure.
func tenureMonths(exp *types.Experience, now time.Time) int {
	start, err := time.Parse(dateLayout, exp.StartDate)
	if err != nil {
		return 0
	}

	end := now
	if !exp.IsCurrent && exp.EndDate != "" {
		if parsed, parseErr := time.Parse(dateLayout, exp.EndDate); parseErr == nil {
			end = parsed
		}
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 1 {
		return 1
	}
	return months
}
