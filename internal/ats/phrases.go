package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-targeter/internal/keywords"
)

// skillSectionHeaders mark resume sections whose lines are dense with
// skill phrases.
var skillSectionHeaders = []string{
	"skills", "technical skills", "core competencies", "technologies",
	"tools", "tech stack", "proficiencies", "expertise",
}

// techTokenPattern recognizes technology-looking tokens: CamelCase,
// dotted (node.js), versioned (python3), or hyphenated (scikit-learn).
var techTokenPattern = regexp.MustCompile(`\b([A-Z][a-zA-Z+#]*[a-zA-Z0-9+#]|[a-zA-Z]+\.[a-z]{2,3}|[a-z]+[0-9]+|[a-z]+-[a-z]+)\b`)

// actionVerbs open achievement bullets; the phrase that follows one tends to
// name a skill or technology in context.
var actionVerbs = map[string]bool{
	"built": true, "designed": true, "implemented": true, "developed": true,
	"architected": true, "automated": true, "migrated": true, "deployed": true,
	"optimized": true, "maintained": true, "integrated": true, "scaled": true,
	"led": true, "launched": true, "delivered": true, "engineered": true,
}

// domainTerms is a small dictionary of multi-word domain phrases worth
// comparing semantically even when they never appear in a skills section.
var domainTerms = []string{
	"machine learning", "data engineering", "data analysis", "deep learning",
	"natural language processing", "computer vision", "distributed systems",
	"microservices", "continuous integration", "continuous delivery",
	"infrastructure as code", "site reliability", "observability",
	"event driven architecture", "stream processing", "data warehousing",
	"project management", "stakeholder management", "agile development",
	"test driven development", "cloud computing", "api design",
}

// maxSkillPhrases caps extraction so the embedding fan-out stays bounded.
const maxSkillPhrases = 60

// ExtractSkillPhrases pulls skill-like phrases out of resume plain text for
// the semantic-upgrade pass: skills-section lines, tech-looking tokens,
// action-verb bullet phrases, and known domain terms found anywhere in the
// text. Results are normalized and deduplicated, order-stable.
func ExtractSkillPhrases(resumeText string) []string {
	seen := make(map[string]bool)
	phrases := make([]string, 0, maxSkillPhrases)

	add := func(raw string) {
		if len(phrases) >= maxSkillPhrases {
			return
		}
		normalized := keywords.Normalize(raw)
		if normalized == "" || len(normalized) < 2 || seen[normalized] {
			return
		}
		seen[normalized] = true
		phrases = append(phrases, normalized)
	}

	lines := strings.Split(resumeText, "\n")

	// Skills-section lines are usually comma- or pipe-separated phrase lists.
	inSkillSection := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isSkillSectionHeader(trimmed) {
			inSkillSection = true
			continue
		}
		if looksLikeSectionHeader(trimmed) {
			inSkillSection = false
			continue
		}
		if inSkillSection {
			for _, item := range splitSkillList(trimmed) {
				add(item)
			}
		}
	}

	// Tech-looking tokens from the whole document.
	for _, token := range techTokenPattern.FindAllString(resumeText, -1) {
		add(token)
	}

	// Phrases following action verbs in bullet lines.
	for _, line := range lines {
		words := strings.Fields(strings.TrimLeft(strings.TrimSpace(line), "-•*• \t"))
		if len(words) < 2 {
			continue
		}
		if actionVerbs[strings.ToLower(words[0])] {
			end := len(words)
			if end > 6 {
				end = 6
			}
			add(strings.Join(words[1:end], " "))
		}
	}

	// Known domain terms anywhere in the text.
	lowered := strings.ToLower(resumeText)
	for _, term := range domainTerms {
		if strings.Contains(lowered, term) {
			add(term)
		}
	}

	return phrases
}

// isSkillSectionHeader reports whether the line is the start of a skills
// section.
func isSkillSectionHeader(line string) bool {
	normalized := keywords.Normalize(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	for _, header := range skillSectionHeaders {
		if normalized == header {
			return true
		}
	}
	return false
}

// looksLikeSectionHeader reports whether the line looks like any section
// header (short, no sentence punctuation), ending a skills section.
func looksLikeSectionHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) > 40 || strings.ContainsAny(trimmed, ".,;") {
		return false
	}
	upper := strings.ToUpper(trimmed)
	return trimmed == upper || strings.HasSuffix(trimmed, ":")
}

// splitSkillList splits a skills-section line on common list separators.
func splitSkillList(line string) []string {
	line = strings.TrimSuffix(line, ":")
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == '|' || r == ';' || r == '/' || r == '·'
	})
}
