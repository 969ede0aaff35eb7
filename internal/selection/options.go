package selection

import "time"

// Default tuning values for selection.
const (
	DefaultMaxExperiences = 4
	DefaultMinScore       = 0.35
	DefaultSkillPoolCap   = 24
)

// Options tunes one selection run. The zero value is usable: unset fields
// fall back to defaults.
type Options struct {
	// MaxExperiences caps how many experiences are selected.
	MaxExperiences int
	// MinScore is the relevance threshold for the first selection tier.
	MinScore float64
	// MaxWriterExperiences caps the writer payload; defaults to MaxExperiences.
	MaxWriterExperiences int
	// SkillPoolCap truncates the prioritized skill list.
	SkillPoolCap int
	// Now anchors recency and tenure computation; defaults to time.Now().
	Now time.Time
}

// withDefaults returns a copy of the options with unset fields filled in.
func (o Options) withDefaults() Options {
	if o.MaxExperiences <= 0 {
		o.MaxExperiences = DefaultMaxExperiences
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	if o.MaxWriterExperiences <= 0 {
		o.MaxWriterExperiences = o.MaxExperiences
	}
	if o.SkillPoolCap <= 0 {
		o.SkillPoolCap = DefaultSkillPoolCap
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}
