package selection

import (
	"strings"

	"github.com/jonathan/resume-targeter/internal/types"
)

// PrioritizeSkills orders the candidate's skill pool for the target job:
// skills that exactly match a job-required skill (case-insensitive) come
// first, relative order is preserved within each partition, duplicates are
// removed case-insensitively, and the result is truncated to poolCap.
func PrioritizeSkills(pool []types.SkillEntry, requiredSkills []string, poolCap int) []string {
	required := make(map[string]bool, len(requiredSkills))
	for _, skill := range requiredSkills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized != "" {
			required[normalized] = true
		}
	}

	seen := make(map[string]bool, len(pool))
	matched := make([]string, 0, len(pool))
	rest := make([]string, 0, len(pool))

	for _, entry := range pool {
		label := strings.TrimSpace(entry.DisplayLabel())
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if seen[key] {
			continue
		}
		seen[key] = true

		if required[key] {
			matched = append(matched, label)
		} else {
			rest = append(rest, label)
		}
	}

	prioritized := append(matched, rest...)
	if poolCap > 0 && len(prioritized) > poolCap {
		prioritized = prioritized[:poolCap]
	}
	return prioritized
}
