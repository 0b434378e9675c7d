// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/draw-labs/blockdraw/metersampler"
	"github.com/draw-labs/blockdraw/sampler"
	"github.com/draw-labs/blockdraw/stats"
)

func run(log *zap.Logger, cfg config) error {
	log.Info("running paired trials",
		zap.Int("backingSize", cfg.BackingSize),
		zap.Int("sampleSize", cfg.SampleSize),
		zap.Int("samples", cfg.SampleCount),
		zap.Int("trials", cfg.Trials),
		zap.Int("concurrency", cfg.Concurrency),
	)

	blockCollisions := make([]float64, cfg.Trials)
	naiveCollisions := make([]float64, cfg.Trials)

	// Every trial builds its own backing slices, so trials never share the
	// mutable state a reshuffle touches.
	eg := errgroup.Group{}
	eg.SetLimit(cfg.Concurrency)
	for i := 0; i < cfg.Trials; i++ {
		i := i
		eg.Go(func() error {
			block, naive, err := runTrial(cfg)
			if err != nil {
				return err
			}
			blockCollisions[i] = float64(block)
			naiveCollisions[i] = float64(naive)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	blockMean, blockStdDev := stat.MeanStdDev(blockCollisions, nil)
	naiveMean, naiveStdDev := stat.MeanStdDev(naiveCollisions, nil)
	log.Info("collision counts",
		zap.Float64("blockMean", blockMean),
		zap.Float64("blockStdDev", blockStdDev),
		zap.Float64("naiveMean", naiveMean),
		zap.Float64("naiveStdDev", naiveStdDev),
	)

	t, p, err := stats.PairedTTest(blockCollisions, naiveCollisions)
	switch {
	case errors.Is(err, stats.ErrZeroVariance):
		log.Info("collision counts identical across all trials; no test to run")
	case err != nil:
		return err
	default:
		log.Info("paired comparison, alternative: block < naive",
			zap.Float64("t", t),
			zap.Float64("p", p),
		)
	}

	return reportMeteredBatch(log, cfg)
}

// runTrial collects one batch per mode and counts collisions in each.
func runTrial(cfg config) (int, int, error) {
	blockBatch, err := sampler.CollectFrom(newBacking(cfg.BackingSize), cfg.SampleSize, cfg.SampleCount, true)
	if err != nil {
		return 0, 0, err
	}
	naiveBatch, err := sampler.CollectFrom(newBacking(cfg.BackingSize), cfg.SampleSize, cfg.SampleCount, false)
	if err != nil {
		return 0, 0, err
	}
	return stats.CountCollisions(blockBatch), stats.CountCollisions(naiveBatch), nil
}

func newBacking(n int) []int {
	backing := make([]int, n)
	for i := range backing {
		backing[i] = i
	}
	return backing
}

// reportMeteredBatch runs one instrumented batch and logs the sampler
// metrics it produced.
func reportMeteredBatch(log *zap.Logger, cfg config) error {
	registry := prometheus.NewRegistry()
	block, err := sampler.NewBlock(newBacking(cfg.BackingSize), cfg.SampleSize)
	if err != nil {
		return err
	}
	metered, err := metersampler.New[int]("blockdraw", registry, block)
	if err != nil {
		return err
	}
	if _, err := sampler.Collect(metered, cfg.SampleCount); err != nil {
		return err
	}

	families, err := registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		logFamily(log, family)
	}
	return nil
}

func logFamily(log *zap.Logger, family *dto.MetricFamily) {
	for _, m := range family.GetMetric() {
		switch {
		case m.Counter != nil:
			log.Info("sampler metric",
				zap.String("name", family.GetName()),
				zap.Float64("value", m.Counter.GetValue()),
			)
		case m.Histogram != nil:
			log.Info("sampler metric",
				zap.String("name", family.GetName()),
				zap.Uint64("calls", m.Histogram.GetSampleCount()),
				zap.Float64("totalNanoseconds", m.Histogram.GetSampleSum()),
			)
		}
	}
}
