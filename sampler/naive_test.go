// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNaiveSamplesWithoutReplacement(t *testing.T) {
	require := require.New(t)

	const n = 100

	s, err := NewNaive(intRange(n), n)
	require.NoError(err)

	// Drawing the full backing length without replacement must return each
	// value exactly once.
	sample, err := s.Sample(0)
	require.NoError(err)
	sort.Ints(sample)
	require.Equal(intRange(n), sample)
}

func TestNaiveDoesNotMutateBacking(t *testing.T) {
	require := require.New(t)

	const (
		n    = 100
		size = 10
	)

	backing := intRange(n)
	s, err := NewNaive(backing, size)
	require.NoError(err)

	for i := 0; i < 20; i++ {
		sample, err := s.Sample(i)
		require.NoError(err)
		require.Len(sample, size)
	}
	require.Equal(intRange(n), backing)
}

func TestNaiveIgnoresDrawIndex(t *testing.T) {
	require := require.New(t)

	s, err := NewNaive(intRange(100), 10)
	require.NoError(err)

	// The baseline has no cursor, so any draw index works, including ones a
	// block sampler would reject.
	for _, drawIndex := range []int{0, 1_000_000, -3} {
		sample, err := s.Sample(drawIndex)
		require.NoError(err)
		require.Len(sample, 10)
	}
}

func TestNaiveSeedDeterminism(t *testing.T) {
	require := require.New(t)

	const seed = 42

	a, err := NewNaive(intRange(100), 10)
	require.NoError(err)
	b, err := NewNaive(intRange(100), 10)
	require.NoError(err)

	a.Seed(seed)
	b.Seed(seed)

	for i := 0; i < 10; i++ {
		sampleA, err := a.Sample(i)
		require.NoError(err)
		sampleB, err := b.Sample(i)
		require.NoError(err)
		require.Equal(sampleA, sampleB)
	}
}
