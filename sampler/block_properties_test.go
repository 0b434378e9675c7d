// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestBlockSamplingProperties checks the invariants that must hold for any
// backing length, sample size, and draw count: reshuffling is a pure
// permutation, and every sample is a full window of backing values.
func TestBlockSamplingProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("draws preserve the backing multiset", prop.ForAll(
		func(n, sizeSeed, draws int) string {
			size := 1 + sizeSeed%n
			backing := intRange(n)
			original := intRange(n)

			s, err := NewBlock(backing, size)
			if err != nil {
				return fmt.Sprintf("unexpected constructor error: %v", err)
			}
			for i := 0; i < draws; i++ {
				if _, err := s.Sample(i); err != nil {
					return fmt.Sprintf("unexpected sample error: %v", err)
				}
			}

			sort.Ints(backing)
			for i := range backing {
				if backing[i] != original[i] {
					return fmt.Sprintf("backing multiset changed at %d: %d != %d", i, backing[i], original[i])
				}
			}
			return ""
		},
		gen.IntRange(1, 200),
		gen.IntRange(0, 1_000),
		gen.IntRange(0, 50),
	))

	properties.Property("every sample is exactly size backing values", prop.ForAll(
		func(n, sizeSeed, draws int) string {
			size := 1 + sizeSeed%n
			backing := intRange(n)

			s, err := NewBlock(backing, size)
			if err != nil {
				return fmt.Sprintf("unexpected constructor error: %v", err)
			}
			for i := 0; i < draws; i++ {
				sample, err := s.Sample(i)
				if err != nil {
					return fmt.Sprintf("unexpected sample error: %v", err)
				}
				if len(sample) != size {
					return fmt.Sprintf("sample %d has %d elements, wanted %d", i, len(sample), size)
				}
				for _, v := range sample {
					if v < 0 || v >= n {
						return fmt.Sprintf("sample %d contains fabricated value %d", i, v)
					}
				}
			}
			return ""
		},
		gen.IntRange(1, 200),
		gen.IntRange(0, 1_000),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
