package profile

import (
	"testing"
	"time"

	"github.com/jonathan/resume-targeter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var normalizeNow = time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

func TestNormalize_NilListsBecomeEmpty(t *testing.T) {
	var p types.CanonicalProfile
	Normalize(&p, normalizeNow)

	assert.NotNil(t, p.Experiences)
	assert.NotNil(t, p.Skills)
}

func TestNormalize_DropsEmptyBullets(t *testing.T) {
	p := types.CanonicalProfile{
		Experiences: []types.Experience{{
			Title: "Engineer",
			Bullets: []types.Bullet{
				{Text: "  Shipped the payments service  "},
				{Text: "   "},
				{Text: ""},
			},
		}},
	}

	Normalize(&p, normalizeNow)

	require.Len(t, p.Experiences[0].Bullets, 1)
	assert.Equal(t, "Shipped the payments service", p.Experiences[0].Bullets[0].Text)
}

func TestNormalize_MintsMissingIDs(t *testing.T) {
	p := types.CanonicalProfile{
		Experiences: []types.Experience{{
			Title:   "Engineer",
			Bullets: []types.Bullet{{Text: "Did the thing"}},
		}},
	}

	Normalize(&p, normalizeNow)

	assert.NotEmpty(t, p.Experiences[0].ID)
	assert.NotEmpty(t, p.Experiences[0].Bullets[0].ID)
}

func TestNormalize_KeepsExistingIDs(t *testing.T) {
	p := types.CanonicalProfile{
		Experiences: []types.Experience{{
			ID:      "exp-1",
			Bullets: []types.Bullet{{ID: "b-1", Text: "kept"}},
		}},
	}

	Normalize(&p, normalizeNow)

	assert.Equal(t, "exp-1", p.Experiences[0].ID)
	assert.Equal(t, "b-1", p.Experiences[0].Bullets[0].ID)
}

func TestNormalize_DerivesTenure(t *testing.T) {
	p := types.CanonicalProfile{
		Experiences: []types.Experience{
			{StartDate: "2020-01", EndDate: "2022-01"},
			{StartDate: "2026-06", IsCurrent: true},
			{StartDate: "2026-08", EndDate: "2026-08"},
		},
	}

	Normalize(&p, normalizeNow)

	assert.Equal(t, 24, p.Experiences[0].TenureMonths)
	assert.Equal(t, 2, p.Experiences[1].TenureMonths)
	assert.Equal(t, 1, p.Experiences[2].TenureMonths, "same-month roles floor at one month")
}

func TestNormalize_UnparseableStartKeepsZeroTenure(t *testing.T) {
	p := types.CanonicalProfile{
		Experiences: []types.Experience{{StartDate: "early 2020"}},
	}

	Normalize(&p, normalizeNow)

	assert.Zero(t, p.Experiences[0].TenureMonths)
}

func TestNormalize_PresetTenureWins(t *testing.T) {
	p := types.CanonicalProfile{
		Experiences: []types.Experience{{StartDate: "2020-01", EndDate: "2022-01", TenureMonths: 7}},
	}

	Normalize(&p, normalizeNow)

	assert.Equal(t, 7, p.Experiences[0].TenureMonths)
}
