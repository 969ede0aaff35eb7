package types

import "strings"

// Seniority is the level extracted from a job posting.
type Seniority string

// Seniority levels, ordered from individual contributor to executive.
const (
	SeniorityIC        Seniority = "ic"
	SenioritySeniorIC  Seniority = "senior_ic"
	SeniorityManager   Seniority = "manager"
	SeniorityDirector  Seniority = "director"
	SeniorityVP        Seniority = "vp"
	SeniorityExecutive Seniority = "executive"
)

// ParsedJobDescription is the structured signal extracted from a job posting.
// It is produced by an external parser; all list fields are normalized to
// empty slices (never nil) so downstream scoring stays total.
type ParsedJobDescription struct {
	Title            string    `json:"title"`
	Seniority        Seniority `json:"seniority,omitempty"`
	Domain           string    `json:"domain,omitempty"`
	Responsibilities []string  `json:"responsibilities"`
	HardSkills       []string  `json:"hard_skills"`
	SoftSkills       []string  `json:"soft_skills"`
	SemanticQueries  []string  `json:"semantic_queries"`
	AtsKeyPhrases    []string  `json:"ats_key_phrases"`
}

// Normalize replaces nil list fields with empty slices.
func (j *ParsedJobDescription) Normalize() {
	if j.Responsibilities == nil {
		j.Responsibilities = []string{}
	}
	if j.HardSkills == nil {
		j.HardSkills = []string{}
	}
	if j.SoftSkills == nil {
		j.SoftSkills = []string{}
	}
	if j.SemanticQueries == nil {
		j.SemanticQueries = []string{}
	}
	if j.AtsKeyPhrases == nil {
		j.AtsKeyPhrases = []string{}
	}
}

// JobSelectionSignals pairs a ParsedJobDescription with its numeric context:
// one job-level embedding and zero-or-more query embeddings (one per
// semantic query string).
type JobSelectionSignals struct {
	JobEmbedding    []float64   `json:"job_embedding"`
	QueryEmbeddings [][]float64 `json:"query_embeddings,omitempty"`
}

// JobContext is the job-side input to selection: the parsed description plus
// the raw posting fields selection needs for keyword and skill matching.
type JobContext struct {
	Description    ParsedJobDescription `json:"description"`
	RequiredSkills []string             `json:"required_skills,omitempty"`
}

// Keywords returns the deduplicated, lowercased keyword set the selection
// engine matches against: hard skills plus ATS key phrases.
func (c *JobContext) Keywords() []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, len(c.Description.HardSkills)+len(c.Description.AtsKeyPhrases))
	for _, group := range [][]string{c.Description.HardSkills, c.Description.AtsKeyPhrases} {
		for _, kw := range group {
			normalized := normalizeKeyword(kw)
			if normalized == "" {
				continue
			}
			if _, ok := seen[normalized]; ok {
				continue
			}
			seen[normalized] = struct{}{}
			keywords = append(keywords, normalized)
		}
	}
	return keywords
}

// normalizeKeyword lowercases and trims a keyword for dedupe purposes.
func normalizeKeyword(kw string) string {
	return strings.ToLower(strings.TrimSpace(kw))
}
