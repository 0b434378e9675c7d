// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/draw-labs/blockdraw/sampler"
)

var (
	errTooFewTrials           = errors.New("need at least two trials for a paired comparison")
	errNonPositiveConcurrency = errors.New("concurrency must be positive")
)

type config struct {
	BackingSize int
	SampleSize  int
	SampleCount int
	Trials      int
	Concurrency int
	LogLevel    string
}

// getConfig returns the run configuration defined in the [viper] environment
func getConfig(v *viper.Viper) (config, error) {
	cfg := config{
		BackingSize: v.GetInt(BackingSizeKey),
		SampleSize:  v.GetInt(SampleSizeKey),
		SampleCount: v.GetInt(SampleCountKey),
		Trials:      v.GetInt(TrialsKey),
		Concurrency: v.GetInt(ConcurrencyKey),
		LogLevel:    v.GetString(LogLevelKey),
	}

	switch {
	case cfg.BackingSize <= 0:
		return config{}, fmt.Errorf("%w: %s is %d", sampler.ErrEmptyBacking, BackingSizeKey, cfg.BackingSize)
	case cfg.SampleSize <= 0:
		return config{}, fmt.Errorf("%w: %s is %d", sampler.ErrNonPositiveSampleSize, SampleSizeKey, cfg.SampleSize)
	case cfg.SampleSize > cfg.BackingSize:
		return config{}, fmt.Errorf("%w: %d > %d", sampler.ErrSampleTooLarge, cfg.SampleSize, cfg.BackingSize)
	case cfg.SampleCount < 0:
		return config{}, fmt.Errorf("%w: %s is %d", sampler.ErrNegativeSampleCount, SampleCountKey, cfg.SampleCount)
	case cfg.Trials < 2:
		return config{}, fmt.Errorf("%w: %s is %d", errTooFewTrials, TrialsKey, cfg.Trials)
	case cfg.Concurrency <= 0:
		return config{}, fmt.Errorf("%w: %s is %d", errNonPositiveConcurrency, ConcurrencyKey, cfg.Concurrency)
	}
	return cfg, nil
}
