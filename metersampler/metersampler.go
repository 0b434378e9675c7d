// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metersampler wraps a sampler with prometheus instrumentation.
package metersampler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/draw-labs/blockdraw/sampler"
)

var _ sampler.Sampler[int] = (*meterSampler[int])(nil)

// shuffleCounter is implemented by samplers that track their reshuffles.
type shuffleCounter interface {
	Shuffles() uint64
}

type meterSampler[T any] struct {
	metrics
	sampler.Sampler[T]

	lastShuffles uint64
}

// New returns a sampler that reports a draw counter, a reshuffle counter
// when the wrapped sampler tracks reshuffles, and the latency of every
// Sample call.
func New[T any](
	namespace string,
	registerer prometheus.Registerer,
	s sampler.Sampler[T],
) (sampler.Sampler[T], error) {
	meter := &meterSampler[T]{
		Sampler: s,
	}
	return meter, meter.metrics.Initialize(namespace, registerer)
}

func (m *meterSampler[T]) Sample(drawIndex int) ([]T, error) {
	start := time.Now()
	s, err := m.Sampler.Sample(drawIndex)
	m.sample.Observe(float64(time.Since(start)))
	m.draw.Inc()

	if c, ok := m.Sampler.(shuffleCounter); ok {
		if shuffles := c.Shuffles(); shuffles > m.lastShuffles {
			m.reshuffle.Add(float64(shuffles - m.lastShuffles))
			m.lastShuffles = shuffles
		}
	}
	return s, err
}
