// Package ingest converts rendered resume documents into the plain text the
// ATS scorer operates on.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists the elements treated as their own output line. Line
// structure matters downstream: skill phrase extraction scans section
// headers and list items line by line.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td, dt, dd"

// ReadResume reads a resume file and returns its plain text. HTML input is
// detected by extension or a leading tag and converted; anything else is
// returned as-is.
func ReadResume(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume %s: %w", path, err)
	}

	text := string(content)
	if looksLikeHTML(path, text) {
		return TextFromHTML(text)
	}
	return text, nil
}

// TextFromHTML parses a rendered HTML resume and returns its visible text,
// one block element per line.
func TextFromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Containers whose text is covered by nested blocks would
		// duplicate their children.
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if text := collapseSpaces(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		// No block structure at all; fall back to raw body text.
		if text := collapseSpaces(doc.Find("body").Text()); text != "" {
			lines = append(lines, text)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func looksLikeHTML(path, content string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(content), "<")
}

// collapseSpaces normalizes all internal whitespace to single spaces.
func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
