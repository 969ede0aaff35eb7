package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHTML = `<html><head><style>body { color: red }</style></head><body>
<nav>Home | About</nav>
<h1>Jane Doe</h1>
<h2>Skills</h2>
<ul><li>Go, Kubernetes</li><li>PostgreSQL</li></ul>
<h2>Experience</h2>
<p>Built   the billing
service.</p>
<footer>Contact me</footer>
</body></html>`

func TestTextFromHTML_OneBlockPerLine(t *testing.T) {
	text, err := TextFromHTML(sampleHTML)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills\nGo, Kubernetes\nPostgreSQL\nExperience\nBuilt the billing service.", text)
}

func TestTextFromHTML_StripsNoiseElements(t *testing.T) {
	text, err := TextFromHTML(sampleHTML)

	require.NoError(t, err)
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "Contact me")
	assert.NotContains(t, text, "color: red")
}

func TestTextFromHTML_NoBlocksFallsBackToBody(t *testing.T) {
	text, err := TextFromHTML("<html><body>just some text</body></html>")

	require.NoError(t, err)
	assert.Equal(t, "just some text", text)
}

func TestReadResume_PlainTextPassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Skills:\nGo, Docker\n"), 0o644))

	text, err := ReadResume(path)

	require.NoError(t, err)
	assert.Equal(t, "Skills:\nGo, Docker\n", text)
}

func TestReadResume_HTMLByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")
	require.NoError(t, os.WriteFile(path, []byte(sampleHTML), 0o644))

	text, err := ReadResume(path)

	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.NotContains(t, text, "<h1>")
}

func TestReadResume_MissingFile(t *testing.T) {
	_, err := ReadResume(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
