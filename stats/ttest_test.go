// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairedTTestErrors(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		err  error
	}{
		{
			name: "length mismatch",
			x:    []float64{1, 2},
			y:    []float64{1},
			err:  ErrLengthMismatch,
		},
		{
			name: "too few pairs",
			x:    []float64{1},
			y:    []float64{2},
			err:  ErrTooFewPairs,
		},
		{
			name: "zero variance",
			x:    []float64{1, 2, 3},
			y:    []float64{2, 3, 4},
			err:  ErrZeroVariance,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := PairedTTest(test.x, test.y)
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestPairedTTestKnownValues(t *testing.T) {
	require := require.New(t)

	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 4, 6}

	// Differences are -1, -2, -1, -2: mean -1.5, sample stddev sqrt(1/3),
	// so t = -1.5 / (sqrt(1/3)/2) = -3*sqrt(3).
	tStat, p, err := PairedTTest(x, y)
	require.NoError(err)
	require.InDelta(-5.196152, tStat, 1e-6)
	require.Less(p, 0.01)
	require.Greater(p, 0.004)
}

func TestPairedTTestDirection(t *testing.T) {
	require := require.New(t)

	low := []float64{1, 2, 1, 2, 1}
	high := []float64{5, 6, 5, 7, 6}

	_, pLow, err := PairedTTest(low, high)
	require.NoError(err)
	require.Less(pLow, 0.01)

	// Swapping the arguments flips the alternative, so the same data should
	// now fail to reject.
	_, pHigh, err := PairedTTest(high, low)
	require.NoError(err)
	require.Greater(pHigh, 0.99)
}
