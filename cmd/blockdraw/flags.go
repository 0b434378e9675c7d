// Copyright (C) 2025-2026, Draw Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"flag"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	BackingSizeKey = "backing-size"
	SampleSizeKey  = "sample-size"
	SampleCountKey = "samples"
	TrialsKey      = "trials"
	ConcurrencyKey = "concurrency"
	LogLevelKey    = "log-level"
)

// blockdrawFlags returns the complete set of flags for blockdraw
func blockdrawFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("blockdraw", flag.ContinueOnError)

	fs.Int(BackingSizeKey, 10_000, "Number of elements in the backing slice")
	fs.Int(SampleSizeKey, 1_000, "Elements per sample")
	fs.Int(SampleCountKey, 10, "Samples per batch")
	fs.Int(TrialsKey, 500, "Paired trials to run")
	fs.Int(ConcurrencyKey, runtime.NumCPU(), "Trials run in parallel")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {debug, info, warn, error, fatal}")

	return fs
}

// buildViper returns the viper environment from parsing the provided flags,
// with BLOCKDRAW_ prefixed environment variables taking precedence over flag
// defaults
func buildViper(fs *flag.FlagSet, args []string) (*viper.Viper, error) {
	pfs := pflag.NewFlagSet(fs.Name(), pflag.ContinueOnError)
	pfs.AddGoFlagSet(fs)
	if err := pfs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(fs.Name())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(pfs); err != nil {
		return nil, err
	}
	return v, nil
}
