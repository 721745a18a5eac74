package dataset

import "math/rand"

// Sampler hands out the row order for each epoch.
type Sampler struct {
	n       int
	shuffle bool
	rng     *rand.Rand
}

// NewSampler returns a sampler over n rows. With shuffle set every call to
// Order draws a fresh permutation from rng.
func NewSampler(n int, shuffle bool, rng *rand.Rand) *Sampler {
	return &Sampler{n: n, shuffle: shuffle, rng: rng}
}

// Order returns the row indices for the next epoch.
func (s *Sampler) Order() []int {
	order := make([]int, s.n)
	for i := range order {
		order[i] = i
	}
	if s.shuffle && s.rng != nil {
		s.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}

// Batches cuts order into consecutive chunks of at most size indices.
func Batches(order []int, size int) [][]int {
	if size <= 0 {
		size = len(order)
	}
	var out [][]int
	for start := 0; start < len(order); start += size {
		end := start + size
		if end > len(order) {
			end = len(order)
		}
		out = append(out, order[start:end])
	}
	return out
}
