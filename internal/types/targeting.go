package types

// TargetedBullet is the ephemeral scoring annotation layered on a Bullet
// during one scoring pass. It is never persisted by the core.
type TargetedBullet struct {
	Bullet      Bullet   `json:"bullet"`
	Score       float64  `json:"score"`
	Similarity  float64  `json:"similarity"`
	HasMetric   bool     `json:"has_metric"`
	ToolMatches []string `json:"tool_matches,omitempty"`
}

// ScoreSignals is the per-signal breakdown behind an experience's combined
// relevance score.
type ScoreSignals struct {
	BulletScore   float64 `json:"bullet_score"`
	KeywordScore  float64 `json:"keyword_score"`
	RecencyScore  float64 `json:"recency_score"`
	MetricDensity float64 `json:"metric_density"`
}

// TargetedExperience wraps an Experience with its relevance score, signal
// breakdown, alignment eligibility, and budgeted bullet candidates. The
// underlying Experience is never mutated.
type TargetedExperience struct {
	Experience        Experience       `json:"experience"`
	Score             float64          `json:"score"`
	Signals           ScoreSignals     `json:"signals"`
	AlignmentEligible bool             `json:"alignment_eligible"`
	AlignmentReasons  []string         `json:"alignment_reasons,omitempty"`
	BulletBudget      int              `json:"bullet_budget"`
	BulletCandidates  []TargetedBullet `json:"bullet_candidates"`
}

// WriterBulletCandidate is one budgeted bullet candidate in the writer
// payload, carrying its score breakdown and real source IDs.
type WriterBulletCandidate struct {
	ID          string   `json:"id,omitempty"`
	Text        string   `json:"text"`
	SourceIDs   []string `json:"source_ids"`
	Score       float64  `json:"score"`
	HasMetric   bool     `json:"has_metric"`
	ToolMatches []string `json:"tool_matches,omitempty"`
	Similarity  float64  `json:"similarity"`
}

// WriterExperience is one selected experience reduced to the shape the
// downstream resume writer consumes.
type WriterExperience struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Company          string                  `json:"company"`
	Location         string                  `json:"location,omitempty"`
	StartDate        string                  `json:"start_date,omitempty"`
	EndDate          string                  `json:"end_date,omitempty"`
	IsCurrent        bool                    `json:"is_current,omitempty"`
	BulletBudget     int                     `json:"bullet_budget"`
	BulletCandidates []WriterBulletCandidate `json:"bullet_candidates"`
}

// FilteredExperience records one experience dropped or flagged during
// selection, with human-readable reasons.
type FilteredExperience struct {
	ExperienceID string   `json:"experience_id"`
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Reasons      []string `json:"reasons"`
}

// SelectionDiagnostics explains why each experience was or wasn't selected,
// sufficient for an operator without re-running the algorithm.
type SelectionDiagnostics struct {
	TotalExperiences      int                  `json:"total_experiences"`
	EligibleExperiences   int                  `json:"eligible_experiences"`
	FilteredExperiences   []FilteredExperience `json:"filtered_experiences"`
	MisalignedExperiences []FilteredExperience `json:"misaligned_experiences"`
	KeywordSample         []string             `json:"keyword_sample,omitempty"`
	Warnings              []string             `json:"warnings,omitempty"`
}

// TargetAwareProfile is the output of the selection orchestrator: the ranked
// and budgeted view of a profile for one target job.
type TargetAwareProfile struct {
	Experiences       []TargetedExperience `json:"experiences"`
	WriterExperiences []WriterExperience   `json:"writer_experiences"`
	SelectedBullets   []TargetedBullet     `json:"selected_bullets"`
	PrioritizedSkills []string             `json:"prioritized_skills"`
	Diagnostics       SelectionDiagnostics `json:"diagnostics"`
}
