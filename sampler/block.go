// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math/bits"

// Block samples by reading fixed-size contiguous windows of an in-place
// permutation of the backing slice, reshuffling the whole slice only when
// the next window would run past its end. Windows returned during one pass
// are disjoint, so a duplicate-free backing slice yields duplicate-free
// samples between two reshuffles. Duplicates across a reshuffle boundary are
// possible.
//
// The window position is recomputed from the draw index on every call, so
// the only call-order state is the permutation itself. The no-duplicates
// guarantee within a pass holds only when draw indices increase
// monotonically over a session; supplying them in any other order is the
// caller's misuse.
type Block[T any] interface {
	Sampler[T]

	// Shuffles returns how many times the backing slice has been reshuffled,
	// which is also the number of passes started.
	Shuffles() uint64
}

// NewBlock returns a block-shuffle sampler that takes ownership of backing.
// The slice is permuted in place, so no other reader may rely on its order
// afterwards.
func NewBlock[T any](backing []T, size int) (Block[T], error) {
	if err := validate(backing, size); err != nil {
		return nil, err
	}
	return &blockSampler[T]{
		rng:       globalRNG,
		seededRNG: newRNG(),
		backing:   backing,
		size:      size,
	}, nil
}

// NewDeterministicBlock returns a block-shuffle sampler whose reshuffles
// draw from the provided source.
func NewDeterministicBlock[T any](source Source, backing []T, size int) (Block[T], error) {
	if err := validate(backing, size); err != nil {
		return nil, err
	}
	r := &rng{src: source}
	return &blockSampler[T]{
		rng:       r,
		seededRNG: r,
		backing:   backing,
		size:      size,
	}, nil
}

type blockSampler[T any] struct {
	rng       *rng
	seededRNG *rng
	backing   []T
	size      int
	shuffles  uint64
}

func (s *blockSampler[T]) Sample(drawIndex int) ([]T, error) {
	if drawIndex < 0 {
		return nil, ErrNegativeDrawIndex
	}

	n := len(s.backing)
	start := windowStart(uint64(drawIndex), uint64(s.size), uint64(n))
	if start+s.size >= n {
		// The window would run past the end, or end exactly on it. The
		// exact-fit case reshuffles too; the extra shuffle is harmless and
		// keeps the bound simple.
		shuffle(s.rng, s.backing)
		s.shuffles++
		if start > n-s.size {
			// Only reachable when size does not divide the backing length;
			// read the tail window of the fresh permutation instead of
			// overrunning.
			start = n - s.size
		}
	}

	sample := make([]T, s.size)
	copy(sample, s.backing[start:start+s.size])
	return sample, nil
}

func (s *blockSampler[T]) Seed(seed int64) {
	s.rng = s.seededRNG
	s.rng.Seed(seed)
}

func (s *blockSampler[T]) ClearSeed() {
	s.rng = globalRNG
}

func (s *blockSampler[T]) Shuffles() uint64 {
	return s.shuffles
}

// windowStart returns (drawIndex*size) mod n without overflowing on the
// intermediate product.
func windowStart(drawIndex, size, n uint64) int {
	hi, lo := bits.Mul64(drawIndex, size)
	_, start := bits.Div64(hi%n, lo, n)
	return int(start)
}
