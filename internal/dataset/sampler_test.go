package dataset

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamplerOrderDeterministic(t *testing.T) {
	s1 := NewSampler(10, true, rand.New(rand.NewSource(7)))
	s2 := NewSampler(10, true, rand.New(rand.NewSource(7)))

	for epoch := 0; epoch < 3; epoch++ {
		assert.Equal(t, s1.Order(), s2.Order(), "epoch %d", epoch)
	}
}

func TestSamplerOrderIsPermutation(t *testing.T) {
	s := NewSampler(20, true, rand.New(rand.NewSource(1)))
	order := s.Order()
	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
}

func TestSamplerReshufflesEachEpoch(t *testing.T) {
	s := NewSampler(20, true, rand.New(rand.NewSource(3)))
	first := s.Order()
	changed := false
	for i := 0; i < 5 && !changed; i++ {
		changed = !assert.ObjectsAreEqual(first, s.Order())
	}
	assert.True(t, changed, "order never changed across epochs")
}

func TestSamplerWithoutShuffle(t *testing.T) {
	s := NewSampler(4, false, rand.New(rand.NewSource(3)))
	assert.Equal(t, []int{0, 1, 2, 3}, s.Order())
	assert.Equal(t, []int{0, 1, 2, 3}, s.Order())
}

func TestBatches(t *testing.T) {
	order := []int{4, 2, 0, 1, 3}
	assert.Equal(t, [][]int{{4, 2}, {0, 1}, {3}}, Batches(order, 2))
	assert.Equal(t, [][]int{{4, 2, 0, 1, 3}}, Batches(order, 32))
	assert.Equal(t, [][]int{{4, 2, 0, 1, 3}}, Batches(order, 0))
	assert.Empty(t, Batches(nil, 3))
}
