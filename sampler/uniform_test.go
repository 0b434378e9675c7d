// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformSampleFullRange(t *testing.T) {
	require := require.New(t)

	s := NewUniform()
	s.Initialize(5)

	sampled, err := s.Sample(5)
	require.NoError(err)

	sort.Slice(sampled, func(i, j int) bool { return sampled[i] < sampled[j] })
	require.Equal([]uint64{0, 1, 2, 3, 4}, sampled)
}

func TestUniformOverSample(t *testing.T) {
	s := NewUniform()
	s.Initialize(5)

	_, err := s.Sample(6)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestUniformNextExhaustion(t *testing.T) {
	require := require.New(t)

	s := NewUniform()
	s.Initialize(3)

	seen := make(map[uint64]struct{})
	for i := 0; i < 3; i++ {
		draw, err := s.Next()
		require.NoError(err)
		_, ok := seen[draw]
		require.False(ok)
		seen[draw] = struct{}{}
	}

	_, err := s.Next()
	require.ErrorIs(err, ErrOutOfRange)

	s.Reset()
	_, err = s.Next()
	require.NoError(err)
}

func TestUniformSeedDeterminism(t *testing.T) {
	require := require.New(t)

	const seed = 9

	a := NewUniform()
	a.Initialize(1_000)
	b := NewUniform()
	b.Initialize(1_000)

	a.Seed(seed)
	b.Seed(seed)

	for i := 0; i < 5; i++ {
		sampledA, err := a.Sample(100)
		require.NoError(err)
		sampledB, err := b.Sample(100)
		require.NoError(err)
		require.Equal(sampledA, sampledB)
	}
}
