package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantsOf_HyphenSpaceSwap(t *testing.T) {
	variants := VariantsOf("data-driven")

	assert.True(t, variants["data-driven"])
	assert.True(t, variants["data driven"])
}

func TestVariantsOf_SpaceHyphenSwap(t *testing.T) {
	variants := VariantsOf("machine learning")

	assert.True(t, variants["machine learning"])
	assert.True(t, variants["machine-learning"])
}

func TestVariantsOf_NaivePlural(t *testing.T) {
	variants := VariantsOf("skill")

	assert.True(t, variants["skills"])
}

func TestVariantsOf_NaiveSingular(t *testing.T) {
	variants := VariantsOf("skills")

	assert.True(t, variants["skill"])
}

func TestVariantsOf_NoSingularForDoubleS(t *testing.T) {
	variants := VariantsOf("address")

	assert.False(t, variants["addres"])
	assert.True(t, variants["addresses"] || variants["address"])
}

func TestVariantsOf_CaseNormalized(t *testing.T) {
	variants := VariantsOf("SaaS")

	assert.True(t, variants["saas"])
}

func TestVariantsOf_EmptyInput(t *testing.T) {
	assert.Empty(t, VariantsOf(""))
	assert.Empty(t, VariantsOf("   "))
}

func TestVariantsOf_Deterministic(t *testing.T) {
	first := VariantsOf("data-driven teams")
	second := VariantsOf("data-driven teams")

	assert.Equal(t, first, second)
}

func TestNormalize_UnicodeHyphen(t *testing.T) {
	// en dash folds to ASCII hyphen
	assert.Equal(t, "data-driven", Normalize("Data–Driven"))
}

func TestNormalize_StripsPunctuationAndCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "cicd pipelines", Normalize("  CI/CD   pipelines! "))
}

func TestVariantsOf_ShortTermNoPlural(t *testing.T) {
	variants := VariantsOf("go")

	assert.True(t, variants["go"])
	assert.False(t, variants["gos"])
}
