// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// blockdraw measures the block-shuffle sampler against the naive
// without-replacement baseline: it runs repeated paired trials, counts
// collisions per batch, and reports the means together with a one-sided
// paired t-test.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	fs := blockdrawFlags()
	v, err := buildViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse flags: %v\n", err)
		os.Exit(1)
	}

	cfg, err := getConfig(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log, cfg); err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}

func newLogger(levelStr string) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
