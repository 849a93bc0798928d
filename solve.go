package trailmaze

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/trailmaze/junction"
	"github.com/katalvlaran/trailmaze/longest"
	"github.com/katalvlaran/trailmaze/maze"
)

// Option configures Solve, SolveAll, Analyze and Compile.
type Option func(*options)

type options struct {
	ctx           context.Context
	prune         bool
	parallelDepth int
	logger        zerolog.Logger
}

func defaultOptions() options {
	return options{
		ctx:           context.Background(),
		prune:         true,
		parallelDepth: longest.DefaultParallelDepth,
		logger:        zerolog.Nop(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Report is one mode's outcome: the compiled graph and the search result.
type Report struct {
	Mode   maze.Mode
	Graph  *junction.Graph
	Result *longest.Result
}

// WithContext bounds the search; cancelling ctx aborts it with ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithPruning toggles border pruning in the compiled graph.
func WithPruning(enabled bool) Option {
	return func(o *options) { o.prune = enabled }
}

// WithParallelDepth sets the search fan-out depth.
func WithParallelDepth(n int) Option {
	return func(o *options) { o.parallelDepth = n }
}

// WithLogger routes compile and search statistics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Solve parses text and returns the longest trail length in mode.
func Solve(text string, mode maze.Mode, opts ...Option) (int, error) {
	g, err := maze.Parse(text)
	if err != nil {
		return 0, err
	}

	return SolveGrid(g, mode, opts...)
}

// SolveGrid compiles an already loaded grid and searches it.
func SolveGrid(g *maze.Grid, mode maze.Mode, opts ...Option) (int, error) {
	r, err := Analyze(g, mode, opts...)
	if err != nil {
		return 0, err
	}

	return r.Result.Longest, nil
}

// Compile builds the junction graph of g in mode with the pruning and logger
// settings from opts.
func Compile(g *maze.Grid, mode maze.Mode, opts ...Option) (*junction.Graph, error) {
	return compile(g, mode, buildOptions(opts))
}

// Analyze compiles g in mode, searches it from the entrance and returns the
// graph together with the full search statistics.
func Analyze(g *maze.Grid, mode maze.Mode, opts ...Option) (*Report, error) {
	o := buildOptions(opts)
	jg, err := compile(g, mode, o)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With().Stringer("mode", mode).Logger()
	res, err := longest.Search(jg, jg.Entrance,
		longest.WithContext(o.ctx),
		longest.WithParallelDepth(o.parallelDepth),
		longest.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("trailmaze: search %v: %w", mode, err)
	}
	if !res.Found {
		logger.Warn().Msg("exit is unreachable from the entrance")
	}

	return &Report{Mode: mode, Graph: jg, Result: res}, nil
}

func compile(g *maze.Grid, mode maze.Mode, o options) (*junction.Graph, error) {
	jg, err := junction.Compile(g,
		junction.WithMode(mode),
		junction.WithPruning(o.prune),
		junction.WithLogger(o.logger.With().Stringer("mode", mode).Logger()))
	if err != nil {
		return nil, fmt.Errorf("trailmaze: compile %v: %w", mode, err)
	}

	return jg, nil
}

// SolveAll parses text once and reports the longest trail for every mode.
func SolveAll(text string, opts ...Option) (map[maze.Mode]int, error) {
	g, err := maze.Parse(text)
	if err != nil {
		return nil, err
	}
	out := make(map[maze.Mode]int, len(maze.Modes))
	for _, m := range maze.Modes {
		n, err := SolveGrid(g, m, opts...)
		if err != nil {
			return nil, err
		}
		out[m] = n
	}

	return out, nil
}
