// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stats evaluates sampler output. Nothing here feeds back into
// sampling; it only measures batches after the fact.
package stats

// CountCollisions reports how many elements of the flattened batch carry a
// value that occurs more than once. Every occurrence of a repeated value
// counts, the first one included: [[1,2],[2,3]] has two occurrences of 2 and
// therefore 2 collisions.
func CountCollisions[T comparable](batch [][]T) int {
	occurrences := make(map[T]int)
	for _, sample := range batch {
		for _, v := range sample {
			occurrences[v]++
		}
	}

	collisions := 0
	for _, n := range occurrences {
		if n > 1 {
			collisions += n
		}
	}
	return collisions
}
