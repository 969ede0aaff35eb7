// Package keywords provides lexical variant generation for robust keyword matching.
package keywords

import "strings"

// unicodeHyphens maps common unicode hyphen/dash variants to ASCII '-'.
var unicodeHyphens = strings.NewReplacer(
	"‐", "-", // hyphen
	"‑", "-", // non-breaking hyphen
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	"―", "-", // horizontal bar
)

// VariantsOf returns the set of lexical variants of a term used for
// substring and word-boundary matching: the normalized base form,
// hyphen/space swapped forms, and naive singular/plural forms.
// The function is pure; the same input always yields the same set.
// Empty or whitespace-only input yields an empty set.
func VariantsOf(term string) map[string]bool {
	variants := make(map[string]bool)

	base := Normalize(term)
	if base == "" {
		return variants
	}
	variants[base] = true

	// Hyphen and space are interchangeable in practice ("data-driven" vs
	// "data driven"), so emit both spellings.
	if strings.Contains(base, "-") {
		variants[strings.ReplaceAll(base, "-", " ")] = true
	}
	if strings.Contains(base, " ") {
		variants[strings.ReplaceAll(base, " ", "-")] = true
	}

	for v := range copySet(variants) {
		if singular := naiveSingular(v); singular != "" {
			variants[singular] = true
		}
		if plural := naivePlural(v); plural != "" {
			variants[plural] = true
		}
	}

	return variants
}

// Normalize lowercases a term, folds unicode hyphens to ASCII, strips
// non-alphanumeric characters (keeping spaces and hyphens), and collapses
// runs of whitespace to single spaces.
func Normalize(term string) string {
	lowered := strings.ToLower(unicodeHyphens.Replace(term))

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// naiveSingular strips a trailing 's' when the term is long enough and does
// not end in "ss" ("skills" -> "skill", but "address" stays).
func naiveSingular(term string) string {
	if len(term) > 3 && strings.HasSuffix(term, "s") && !strings.HasSuffix(term, "ss") {
		return term[:len(term)-1]
	}
	return ""
}

// naivePlural appends 's' when the term does not already end in one.
func naivePlural(term string) string {
	if len(term) > 2 && !strings.HasSuffix(term, "s") {
		return term + "s"
	}
	return ""
}

// copySet returns a shallow copy so the caller can extend the original while
// ranging over the snapshot.
func copySet(set map[string]bool) map[string]bool {
	out := make(map[string]bool, len(set))
	for k := range set {
		out[k] = true
	}
	return out
}
