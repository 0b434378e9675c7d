// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Collect draws nSamples successive samples from s, using the row number as
// the draw index, and returns them in draw order. The first sampler error
// aborts the batch.
func Collect[T any](s Sampler[T], nSamples int) ([][]T, error) {
	if nSamples < 0 {
		return nil, ErrNegativeSampleCount
	}

	batch := make([][]T, nSamples)
	for i := range batch {
		sample, err := s.Sample(i)
		if err != nil {
			return nil, err
		}
		batch[i] = sample
	}
	return batch, nil
}

// CollectFrom collects a batch of nSamples samples of the given size over
// backing. fast selects the block-shuffle sampler; otherwise the naive
// baseline is used.
func CollectFrom[T any](backing []T, size, nSamples int, fast bool) ([][]T, error) {
	s, err := New(backing, size, fast)
	if err != nil {
		return nil, err
	}
	return Collect(s, nSamples)
}

// Sample draws the single sample at drawIndex over backing. fast selects the
// block-shuffle sampler; otherwise the naive baseline is used.
func Sample[T any](backing []T, size, drawIndex int, fast bool) ([]T, error) {
	s, err := New(backing, size, fast)
	if err != nil {
		return nil, err
	}
	return s.Sample(drawIndex)
}
