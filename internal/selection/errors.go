// Package selection orchestrates target-aware experience selection: validating
// raw experience records, scoring them against job signals, and assembling the
// ranked, budgeted writer payload with diagnostics.
package selection

import "errors"

// Contract-violation errors. Data-quality problems (missing bullets, missing
// embeddings, low scores) never surface as errors; they degrade into
// diagnostics on the returned profile.
var (
	// ErrNilProfile indicates the caller passed a nil canonical profile.
	ErrNilProfile = errors.New("selection: canonical profile is nil")
	// ErrNilJobContext indicates the caller passed a nil job context.
	ErrNilJobContext = errors.New("selection: job context is nil")
)
