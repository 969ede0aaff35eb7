// Package store persists canonical profiles and selection runs.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-targeter/internal/types"
)

// SelectionRun is one persisted selection outcome for a profile against a
// job posting.
type SelectionRun struct {
	ID        uuid.UUID                 `json:"id"`
	ProfileID uuid.UUID                 `json:"profile_id"`
	JobTitle  string                    `json:"job_title"`
	Result    *types.TargetAwareProfile `json:"result"`
	CreatedAt time.Time                 `json:"created_at"`
}

// Store persists profiles and selection runs. Lookups for absent records
// return (nil, nil); errors are reserved for storage failures.
type Store interface {
	SaveProfile(ctx context.Context, profile *types.CanonicalProfile) (uuid.UUID, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*types.CanonicalProfile, error)
	SaveSelectionRun(ctx context.Context, profileID uuid.UUID, jobTitle string, result *types.TargetAwareProfile) (uuid.UUID, error)
	GetSelectionRun(ctx context.Context, id uuid.UUID) (*SelectionRun, error)
	ListSelectionRuns(ctx context.Context, profileID uuid.UUID) ([]SelectionRun, error)
	Close()
}
