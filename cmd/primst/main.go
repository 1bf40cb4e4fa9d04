// SPDX-License-Identifier: MIT

// Command primst reads a weighted undirected graph, grows a minimum spanning
// tree from the declared start vertex with Prim's algorithm, and writes one
// "<vertex>\t<parent>" record per vertex.
//
// Usage:
//
//	primst [flags] <input> <output>
//
// Exit status is 0 on success, 1 when the input, the run or the output
// fails, and 2 on usage or configuration errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/primst/config"
	"github.com/katalvlaran/primst/edgelist"
	"github.com/katalvlaran/primst/frontier"
	"github.com/katalvlaran/primst/metrics"
	"github.com/katalvlaran/primst/mst"
	"github.com/katalvlaran/primst/report"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run is main without the process exit, for tests.
func run(args []string, stderr io.Writer) (code int) {
	fs := flag.NewFlagSet("primst", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: primst [flags] <input> <output>")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "YAML configuration file")
	frontierKind := fs.String("frontier", "", "priority frontier: heap or btree")
	rootMarker := fs.String("root-marker", "", "literal written for the start vertex")
	unreachMarker := fs.String("unreachable-marker", "", "literal written for unreachable vertices")
	verify := fs.Bool("verify", false, "cross-check the tree against Kruskal")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	logFormat := fs.String("log-format", "", "text or json")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	// 1. Configuration: defaults, file, then explicitly set flags.
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "primst:", err)
		return exitUsage
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontier":
			cfg.Frontier = *frontierKind
		case "root-marker":
			cfg.Markers.Root = *rootMarker
		case "unreachable-marker":
			cfg.Markers.Unreachable = *unreachMarker
		case "verify":
			cfg.Verify = *verify
		case "metrics-file":
			cfg.Metrics.Textfile = *metricsFile
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "primst:", err)
		return exitUsage
	}
	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "primst:", err)
		return exitUsage
	}
	kind, _ := frontier.ParseKind(cfg.Frontier)

	// 2. Metrics are flushed whatever the outcome.
	rec := metrics.NewRecorder()
	if cfg.Metrics.Textfile != "" {
		defer func() {
			if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
				logger.Error("metrics export failed", "path", cfg.Metrics.Textfile, "error", err)
				if code == exitOK {
					code = exitFail
				}
			}
		}()
	}

	return solve(logger, rec, cfg, kind, inPath, outPath)
}

// solve runs decode, build, prim, verify and write in order.
func solve(logger *slog.Logger, rec *metrics.Recorder, cfg config.Config, kind frontier.Kind, inPath, outPath string) int {
	fail := func(stage string, err error) int {
		rec.ObserveError(stage)
		logger.Error("run failed", "stage", stage, "error", err)
		return exitFail
	}

	in, err := edgelist.ReadFile(inPath)
	if err != nil {
		return fail("decode", err)
	}
	g, err := in.Graph()
	if err != nil {
		return fail("build", err)
	}
	res, err := mst.Prim(g, in.Start,
		mst.WithFrontier(kind),
		mst.WithLogger(logger),
		mst.WithObserver(rec),
	)
	if err != nil {
		return fail("prim", err)
	}
	if cfg.Verify {
		if err := mst.Verify(g, res); err != nil {
			return fail("verify", err)
		}
	}
	if err := report.WriteFile(outPath, res, cfg.Markers); err != nil {
		return fail("write", err)
	}

	logger.Info("tree written",
		"input", inPath,
		"output", outPath,
		"vertices", g.Order(),
		"edges", g.Size(),
		"reached", res.Reached(),
		"total_weight", res.TotalWeight(),
	)

	return exitOK
}
