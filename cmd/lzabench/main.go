// SPDX-License-Identifier: MIT
// Copyright (c) 2022 Chris Dragan

// Command lzabench compresses and decompresses a file through the lza
// package and reports the ratio and packet mix it produced.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/cdragan/minify"
)

func main() {
	var (
		windowSize = flag.Uint32("window-size", 256, "adaptive model window size in bits")
		verbose    = flag.Bool("verbose", false, "enable debug-level logging")
		stats      = flag.Bool("stats", false, "print per-stream byte sizes after compressing")
		roundTrip  = flag.Bool("round-trip", true, "decompress the result and verify it matches the input")
	)
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() != 1 {
		log.Fatal("usage: lzabench [flags] <file>")
	}

	if err := run(log, flag.Arg(0), *windowSize, *stats, *roundTrip); err != nil {
		log.WithError(err).Fatal("lzabench failed")
	}
}

func run(log *logrus.Logger, path string, windowSize uint32, printStats, roundTrip bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	if len(src) == 0 {
		return errors.New("input file is empty")
	}

	opts := &lza.CompressOptions{WindowSize: windowSize}
	res, err := lza.Compress(src, opts)
	if err != nil {
		return errors.Wrap(err, "compress")
	}

	ratio := float64(len(res.Data)) / float64(len(src))
	log.WithFields(logrus.Fields{
		"input_bytes":      len(src),
		"output_bytes":     len(res.Data),
		"ratio":            ratio,
		"lz_intermediate":  res.LZSize,
		"stats_lit":        res.Stats.Lit,
		"stats_match":      res.Stats.Match,
		"stats_shortrep":   res.Stats.ShortRep,
		"stats_longrep_0":  res.Stats.LongRep[0],
		"stats_longrep_1":  res.Stats.LongRep[1],
		"stats_longrep_2":  res.Stats.LongRep[2],
		"stats_longrep_3":  res.Stats.LongRep[3],
	}).Info("compressed")

	if printStats {
		log.Infof("stream sizes: type=%d literal_msb=%d literal=%d size=%d offset=%d",
			res.Sizes.Type, res.Sizes.LiteralMSB, res.Sizes.Literal, res.Sizes.Size, res.Sizes.Offset)
	}

	if !roundTrip {
		return nil
	}

	dst, err := lza.Decompress(res.Data, lza.DefaultDecompressOptions(len(src)))
	if err != nil {
		return errors.Wrap(err, "decompress")
	}
	if len(dst) != len(src) {
		return errors.Errorf("round trip length mismatch: got %d want %d", len(dst), len(src))
	}
	for i := range src {
		if dst[i] != src[i] {
			return errors.Errorf("round trip mismatch at byte %d", i)
		}
	}

	log.Info("round trip verified")
	return nil
}
