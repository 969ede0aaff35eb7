// Package types provides type definitions for structured data used throughout the resume-targeter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
)

// CanonicalProfile is the deduplicated, merged view of a candidate's work
// history assembled from possibly multiple uploaded source documents.
type CanonicalProfile struct {
	Experiences []Experience `json:"experiences"`
	Skills      []SkillEntry `json:"skills"`
}

// Experience represents a single employment or role record with stable ID.
type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"` // "YYYY-MM" month granularity
	EndDate      string   `json:"end_date,omitempty"`
	IsCurrent    bool     `json:"is_current,omitempty"`
	Bullets      []Bullet `json:"bullets"`
	TenureMonths int      `json:"tenure_months,omitempty"` // derived at normalization, minimum 1
}

// Bullet represents a single achievement line inside an Experience.
// SourceIDs trace the bullet back to raw ingested text and are never
// synthesized downstream.
type Bullet struct {
	ID        string    `json:"id,omitempty"`
	Text      string    `json:"text"`
	SourceIDs []string  `json:"source_ids,omitempty"`
	Embedding []float64 `json:"embedding,omitempty"`
}

// UnmarshalJSON accepts either a plain string or a full bullet object.
// Ingested documents mix both shapes; this is the single point where they
// converge on one canonical Bullet, so scoring code never branches on shape.
func (b *Bullet) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*b = Bullet{Text: text}
		return nil
	}

	type bulletAlias Bullet
	var alias bulletAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*b = Bullet(alias)
	return nil
}

// HasEmbedding reports whether the bullet carries a non-empty embedding vector.
func (b *Bullet) HasEmbedding() bool {
	return len(b.Embedding) > 0
}

// SkillEntry is one entry in the flat skill pool with its display label.
type SkillEntry struct {
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
}

// DisplayLabel returns the label if present, falling back to the raw name.
func (s SkillEntry) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

// HasTimeline reports whether the experience has a resolvable timeline:
// a start date, an end date, or the current flag.
func (e *Experience) HasTimeline() bool {
	return e.StartDate != "" || e.EndDate != "" || e.IsCurrent
}
