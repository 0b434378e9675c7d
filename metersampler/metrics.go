// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metersampler

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/draw-labs/blockdraw/utils/metric"
	"github.com/draw-labs/blockdraw/utils/wrappers"
)

func newCounterMetric(namespace, name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("# of times a %s occurred", name),
	})
}

type metrics struct {
	sample prometheus.Histogram

	draw,
	reshuffle prometheus.Counter
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.sample = metric.NewNanosecondsLatencyMetric(namespace, "sample")
	m.draw = newCounterMetric(namespace, "draw")
	m.reshuffle = newCounterMetric(namespace, "reshuffle")

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.sample),
		registerer.Register(m.draw),
		registerer.Register(m.reshuffle),
	)
	return errs.Err
}
