package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	c := NewMemory(4)
	c.Set("a", []float64{1, 2})

	value, ok := c.Get("a")

	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, value)
}

func TestMemory_MissingKey(t *testing.T) {
	c := NewMemory(4)

	_, ok := c.Get("nope")

	assert.False(t, ok)
}

func TestMemory_Evict(t *testing.T) {
	c := NewMemory(4)
	c.Set("a", []float64{1})
	c.Evict("a")

	_, ok := c.Get("a")

	assert.False(t, ok)
}

func TestMemory_LRUEviction(t *testing.T) {
	c := NewMemory(2)
	c.Set("a", []float64{1})
	c.Set("b", []float64{2})

	// Touch "a" so "b" becomes the eviction candidate.
	_, _ = c.Get("a")
	c.Set("c", []float64{3})

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	_, okC := c.Get("c")

	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, 2, c.Len())
}

func TestMemory_UpdateExistingKey(t *testing.T) {
	c := NewMemory(2)
	c.Set("a", []float64{1})
	c.Set("a", []float64{9})

	value, ok := c.Get("a")

	require.True(t, ok)
	assert.Equal(t, []float64{9}, value)
	assert.Equal(t, 1, c.Len())
}
