// SPDX-License-Identifier: MIT

// Command primgen writes a generated graph in the primst input format.
//
// Usage:
//
//	primgen [flags] <output>
//
// Example, the performance fixture with 10⁴ vertices:
//
//	primgen -topology connected -n 10000 -extra 40000 -seed 1 -min-weight 1 -max-weight 100 big.txt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/primst/builder"
	"github.com/katalvlaran/primst/edgelist"
)

var errUnknownTopology = errors.New("unknown topology")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// params are the parsed generator flags.
type params struct {
	topology string
	n        int
	p        float64
	extra    int
	seed     int64
	minW     int64
	maxW     int64
	start    int
}

// constructor maps the topology name to a builder.Constructor.
func (p params) constructor() (builder.Constructor, error) {
	switch p.topology {
	case "complete":
		return builder.Complete(p.n), nil
	case "star":
		return builder.Star(p.n), nil
	case "path":
		return builder.Path(p.n), nil
	case "cycle":
		return builder.Cycle(p.n), nil
	case "sparse":
		return builder.RandomSparse(p.n, p.p), nil
	case "connected":
		return builder.RandomConnected(p.n, p.extra), nil
	default:
		return nil, fmt.Errorf("%q: %w", p.topology, errUnknownTopology)
	}
}

func run(args []string, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fs := flag.NewFlagSet("primgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var p params
	fs.StringVar(&p.topology, "topology", "connected", "complete, star, path, cycle, sparse or connected")
	fs.IntVar(&p.n, "n", 1000, "vertex count")
	fs.Float64Var(&p.p, "p", 0.01, "edge probability for sparse")
	fs.IntVar(&p.extra, "extra", 4000, "extra edges for connected")
	fs.Int64Var(&p.seed, "seed", 1, "random seed")
	fs.Int64Var(&p.minW, "min-weight", 1, "smallest edge weight")
	fs.Int64Var(&p.maxW, "max-weight", 100, "largest edge weight")
	fs.IntVar(&p.start, "start", 0, "start vertex written to the header")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: primgen [flags] <output>")
		return 2
	}
	if p.minW < 0 || p.maxW < p.minW {
		fmt.Fprintf(stderr, "primgen: need 0 <= min-weight <= max-weight, got %d, %d\n", p.minW, p.maxW)
		return 2
	}
	cons, err := p.constructor()
	if err != nil {
		fmt.Fprintln(stderr, "primgen:", err)
		return 2
	}

	l, err := builder.Build([]builder.BuilderOption{
		builder.WithSeed(p.seed),
		builder.WithWeightFn(builder.UniformWeightFn(p.minW, p.maxW)),
	}, cons)
	if err != nil {
		logger.Error("generate failed", "topology", p.topology, "error", err)
		return 1
	}
	if p.start < 0 || (l.Order > 0 && p.start >= l.Order) {
		logger.Error("start vertex out of range", "start", p.start, "vertices", l.Order)
		return 2
	}

	out := fs.Arg(0)
	if err := write(out, &edgelist.Input{Order: l.Order, Start: p.start, Edges: l.Edges}); err != nil {
		logger.Error("write failed", "path", out, "error", err)
		return 1
	}
	logger.Info("graph written", "path", out, "topology", p.topology, "vertices", l.Order, "edges", len(l.Edges))

	return 0
}

func write(path string, in *edgelist.Input) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := edgelist.Encode(fh, in); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
