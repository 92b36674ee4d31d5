// Package minheap_test verifies heap ordering, the empty-heap sentinel,
// capacity-bounded insertion, and the id→slot index across every operation.
package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/minheap"
)

func TestHeap_EmptySentinel(t *testing.T) {
	h := minheap.New(4)
	require.True(t, h.IsEmpty())

	n := h.ExtractMin()
	assert.Equal(t, minheap.None, n.CityID)
	assert.Equal(t, minheap.Inf, n.Distance)
	assert.Equal(t, minheap.Inf, n.FScore)
}

func TestHeap_ExtractionOrder(t *testing.T) {
	h := minheap.New(8)
	h.Insert(1, 30, 30)
	h.Insert(2, 10, 10)
	h.Insert(3, 20, 20)
	h.Insert(4, 5, 5)

	// Repeated extraction yields non-decreasing FScore.
	var got []int64
	for !h.IsEmpty() {
		got = append(got, h.ExtractMin().FScore)
	}
	assert.Equal(t, []int64{5, 10, 20, 30}, got)
}

func TestHeap_ExtractMinThenIsEmpty(t *testing.T) {
	h := minheap.New(2)
	h.Insert(1, 1, 1)
	require.Equal(t, 1, h.Len())

	_ = h.ExtractMin()
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Contains(1))
}

func TestHeap_CapacityBound(t *testing.T) {
	h := minheap.New(2)
	h.Insert(1, 1, 1)
	h.Insert(2, 2, 2)
	h.Insert(3, 0, 0) // past capacity: silently dropped

	assert.Equal(t, 2, h.Len())
	assert.False(t, h.Contains(3))
	assert.Equal(t, 1, h.ExtractMin().CityID)
}

func TestHeap_DecreaseKey(t *testing.T) {
	h := minheap.New(4)
	h.Insert(1, 10, 10)
	h.Insert(2, 20, 20)
	h.Insert(3, 30, 30)

	// Lower city 3 below everything; it must surface first with both scores
	// overwritten.
	h.DecreaseKey(3, 4, 4)

	n := h.ExtractMin()
	assert.Equal(t, 3, n.CityID)
	assert.Equal(t, int64(4), n.Distance)
	assert.Equal(t, int64(4), n.FScore)
}

func TestHeap_DecreaseKeyAbsentIsNoOp(t *testing.T) {
	h := minheap.New(2)
	h.Insert(1, 10, 10)

	h.DecreaseKey(99, 1, 1)

	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 1, h.ExtractMin().CityID)
}

func TestHeap_SecondaryScoreOrders(t *testing.T) {
	// The heap orders on FScore, not Distance: an entry with the larger
	// g-score but the smaller f-score wins.
	h := minheap.New(2)
	h.Insert(1, 1, 50)
	h.Insert(2, 40, 42)

	assert.Equal(t, 2, h.ExtractMin().CityID)
}

func TestHeap_IndexSurvivesChurn(t *testing.T) {
	// Random insert / decrease-key / extract churn with a model oracle: the
	// heap must always pop the minimum FScore among live entries.
	const n = 200
	h := minheap.New(n)
	model := make(map[int]int64, n)
	rng := rand.New(rand.NewSource(7))

	for id := 0; id < n; id++ {
		score := int64(rng.Intn(10_000) + 1)
		h.Insert(id, score, score)
		model[id] = score
	}

	// Decrease half the keys.
	for id := 0; id < n; id += 2 {
		next := model[id] / 2
		h.DecreaseKey(id, next, next)
		model[id] = next
	}

	prev := int64(-1)
	for !h.IsEmpty() {
		got := h.ExtractMin()
		want, ok := model[got.CityID]
		require.True(t, ok, "extracted unknown or duplicate city %d", got.CityID)
		assert.Equal(t, want, got.FScore)
		assert.GreaterOrEqual(t, got.FScore, prev, "extraction order regressed")
		prev = got.FScore
		delete(model, got.CityID)
	}
	assert.Empty(t, model, "every inserted city must be extracted exactly once")
}

func TestHeap_NonPositiveCapacity(t *testing.T) {
	h := minheap.New(0)
	h.Insert(1, 1, 1)
	assert.True(t, h.IsEmpty())

	h = minheap.New(-5)
	h.Insert(1, 1, 1)
	assert.True(t, h.IsEmpty())
}
