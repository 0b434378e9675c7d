// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler draws successive fixed-size samples from a large backing
// slice. The block-shuffle sampler amortizes the shuffle cost over a full
// pass of the backing slice; the naive sampler pays a fresh
// without-replacement draw on every call and exists as its baseline.
package sampler

import "errors"

var (
	ErrEmptyBacking          = errors.New("backing slice is empty")
	ErrNonPositiveSampleSize = errors.New("sample size must be positive")
	ErrSampleTooLarge        = errors.New("sample size exceeds backing length")
	ErrNegativeSampleCount   = errors.New("sample count must be non-negative")
	ErrNegativeDrawIndex     = errors.New("draw index must be non-negative")
	ErrOutOfRange            = errors.New("out of range")
)

// Sampler produces fixed-size samples from a backing slice. Returned samples
// are owned by the caller and stay valid across later draws.
type Sampler[T any] interface {
	// Sample returns the sample for the given draw index. The block-shuffle
	// sampler maps the draw index to a window of its current permutation;
	// the naive baseline ignores it.
	Sample(drawIndex int) ([]T, error)

	Seed(int64)
	ClearSeed()
}

// New returns a sampler over backing. fast selects the block-shuffle
// sampler; otherwise the naive baseline is used.
func New[T any](backing []T, size int, fast bool) (Sampler[T], error) {
	if fast {
		return NewBlock(backing, size)
	}
	return NewNaive(backing, size)
}

func validate[T any](backing []T, size int) error {
	switch {
	case len(backing) == 0:
		return ErrEmptyBacking
	case size <= 0:
		return ErrNonPositiveSampleSize
	case size > len(backing):
		return ErrSampleTooLarge
	default:
		return nil
	}
}
