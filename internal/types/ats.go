package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeywordPriority reflects how strictly a job-description keyword should be
// enforced when scoring a resume.
type KeywordPriority string

// Keyword priority tiers.
const (
	PriorityCritical   KeywordPriority = "critical"
	PriorityImportant  KeywordPriority = "important"
	PriorityNiceToHave KeywordPriority = "nice_to_have"
)

// JdKeyword is one keyword or phrase extracted from a job description.
type JdKeyword struct {
	Term     string          `json:"term" validate:"required,min=1"`
	Priority KeywordPriority `json:"priority" validate:"required,oneof=critical important nice_to_have"`
	Synonyms []string        `json:"synonyms,omitempty"`
}

// Validate validates the JdKeyword using the validator.
func (k *JdKeyword) Validate() error {
	validate := validator.New()
	return validate.Struct(k)
}

// ValidateKeywords validates every keyword in a loaded keyword list.
func ValidateKeywords(jdKeywords []JdKeyword) error {
	validate := validator.New()
	for i := range jdKeywords {
		if err := validate.Struct(&jdKeywords[i]); err != nil {
			return fmt.Errorf("keyword %d (%q): %w", i, jdKeywords[i].Term, err)
		}
	}
	return nil
}

// MatchStatus is the outcome tier of matching one keyword against a resume.
type MatchStatus string

// Match status values, strongest first.
const (
	MatchExact    MatchStatus = "exact"
	MatchSemantic MatchStatus = "semantic"
	MatchPartial  MatchStatus = "partial"
	MatchMissing  MatchStatus = "missing"
)

// KeywordMatchResult is the outcome of matching one JdKeyword against resume text.
type KeywordMatchResult struct {
	Keyword     JdKeyword   `json:"keyword"`
	Status      MatchStatus `json:"status"`
	Score       float64     `json:"score"`
	MatchedTerm string      `json:"matched_term,omitempty"`
}

// Matched reports whether the keyword was found at any confidence tier.
func (r KeywordMatchResult) Matched() bool {
	return r.Status != MatchMissing
}

// SemanticUpgradeStats reports how the optional embedding-based upgrade pass
// behaved, so callers can detect a silently degraded embedding provider.
type SemanticUpgradeStats struct {
	MissingProcessed int `json:"missing_processed"`
	Upgraded         int `json:"upgraded"`
	EmbeddingErrors  int `json:"embedding_errors"`
}

// UpgradeRatio returns upgraded/processed, or 0 when nothing was processed.
func (s SemanticUpgradeStats) UpgradeRatio() float64 {
	if s.MissingProcessed == 0 {
		return 0
	}
	return float64(s.Upgraded) / float64(s.MissingProcessed)
}

// GapSuggestion is one truth-grounded improvement suggestion for a missing
// critical or important keyword.
type GapSuggestion struct {
	Keyword  string          `json:"keyword"`
	Priority KeywordPriority `json:"priority"`
	Message  string          `json:"message"`
	Verified bool            `json:"verified"` // candidate's own skill pool already supports it
}

// AtsScoreResult is the full ATS compatibility breakdown for one resume
// against one job description.
type AtsScoreResult struct {
	Overall         float64              `json:"overall"`
	CriticalScore   float64              `json:"critical_score"`
	ImportantScore  float64              `json:"important_score"`
	NiceToHaveScore float64              `json:"nice_to_have_score"`
	Interpretation  string               `json:"interpretation"`
	Matches         []KeywordMatchResult `json:"matches,omitempty"`
	Gaps            []GapSuggestion      `json:"gaps,omitempty"`
	Strengths       []string             `json:"strengths,omitempty"`
	Upgrade         SemanticUpgradeStats `json:"upgrade,omitempty"`
}
