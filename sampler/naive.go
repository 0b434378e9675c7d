// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// NewNaive returns the baseline sampler: every call draws size distinct
// positions uniformly without replacement over the whole backing slice. The
// backing slice is never mutated and the draw index is ignored, so nothing
// carries over between calls.
func NewNaive[T any](backing []T, size int) (Sampler[T], error) {
	if err := validate(backing, size); err != nil {
		return nil, err
	}
	u := NewUniform()
	u.Initialize(uint64(len(backing)))
	return &naiveSampler[T]{
		u:       u,
		backing: backing,
		size:    size,
	}, nil
}

// NewDeterministicNaive returns a baseline sampler drawing from the provided
// source.
func NewDeterministicNaive[T any](source Source, backing []T, size int) (Sampler[T], error) {
	if err := validate(backing, size); err != nil {
		return nil, err
	}
	u := NewDeterministicUniform(source)
	u.Initialize(uint64(len(backing)))
	return &naiveSampler[T]{
		u:       u,
		backing: backing,
		size:    size,
	}, nil
}

type naiveSampler[T any] struct {
	u       Uniform
	backing []T
	size    int
}

func (s *naiveSampler[T]) Sample(int) ([]T, error) {
	indices, err := s.u.Sample(s.size)
	if err != nil {
		return nil, err
	}
	sample := make([]T, s.size)
	for i, index := range indices {
		sample[i] = s.backing[index]
	}
	return sample, nil
}

func (s *naiveSampler[T]) Seed(seed int64) {
	s.u.Seed(seed)
}

func (s *naiveSampler[T]) ClearSeed() {
	s.u.ClearSeed()
}
