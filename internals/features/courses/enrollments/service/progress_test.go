package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 10, 0},
		{1, 10, 10},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{5, 5, 100},
		{1, 7, 14},
		// zero-module course never progresses
		{0, 0, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ComputeProgress(tt.completed, tt.total),
			"completed=%d total=%d", tt.completed, tt.total)
	}
}

func TestComputeProgress_Bounds(t *testing.T) {
	for total := 1; total <= 25; total++ {
		for completed := 0; completed <= total; completed++ {
			p := ComputeProgress(completed, total)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
		assert.Equal(t, 100, ComputeProgress(total, total))
	}
}

func TestAddCompletedModule_Idempotent(t *testing.T) {
	m1 := uuid.New()
	m2 := uuid.New()

	set, changed := AddCompletedModule(pq.StringArray{}, m1)
	require.True(t, changed)
	require.Len(t, set, 1)

	// re-marking the same module is a no-op on the set
	again, changed := AddCompletedModule(set, m1)
	assert.False(t, changed)
	assert.Equal(t, set, again)

	set, changed = AddCompletedModule(set, m2)
	assert.True(t, changed)
	assert.Len(t, set, 2)

	// progress matches after the duplicate mark
	assert.Equal(t, ComputeProgress(len(again), 4), ComputeProgress(1, 4))
}
