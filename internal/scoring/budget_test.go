package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletBudget_TopRanks(t *testing.T) {
	assert.Equal(t, 6, BulletBudget(0, 12))
	assert.Equal(t, 6, BulletBudget(1, 12))
	assert.Equal(t, 5, BulletBudget(2, 12))
	assert.Equal(t, 4, BulletBudget(3, 12))
	assert.Equal(t, 4, BulletBudget(4, 12))
}

func TestBulletBudget_OlderRanksByTenure(t *testing.T) {
	assert.Equal(t, 4, BulletBudget(5, 48))
	assert.Equal(t, 3, BulletBudget(5, 24))
	assert.Equal(t, 2, BulletBudget(5, 23))
	assert.Equal(t, 2, BulletBudget(9, 6))
}

func TestBulletBudget_MonotonicNonIncreasingByRank(t *testing.T) {
	for _, tenure := range []int{6, 24, 48, 120} {
		prev := BulletBudget(0, tenure)
		for rank := 1; rank < 12; rank++ {
			current := BulletBudget(rank, tenure)
			assert.LessOrEqual(t, current, prev, "rank %d tenure %d", rank, tenure)
			prev = current
		}
	}
}
