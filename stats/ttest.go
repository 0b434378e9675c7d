// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrLengthMismatch = errors.New("paired observations must have equal length")
	ErrTooFewPairs    = errors.New("paired test needs at least two pairs")
	ErrZeroVariance   = errors.New("paired differences have zero variance")
)

// PairedTTest tests whether the mean of x is lower than the mean of y over
// paired observations. It returns the t statistic of the per-pair
// differences and the one-sided p-value for the alternative
// mean(x) < mean(y); small p rejects equal means in favor of x being lower.
func PairedTTest(x, y []float64) (float64, float64, error) {
	if len(x) != len(y) {
		return 0, 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, 0, ErrTooFewPairs
	}

	diffs := make([]float64, len(x))
	for i := range x {
		diffs[i] = x[i] - y[i]
	}

	mean, stddev := stat.MeanStdDev(diffs, nil)
	if stddev == 0 {
		return 0, 0, ErrZeroVariance
	}

	n := float64(len(diffs))
	t := mean / (stddev / math.Sqrt(n))
	student := distuv.StudentsT{
		Mu:    0,
		Sigma: 1,
		Nu:    n - 1,
	}
	return t, student.CDF(t), nil
}
