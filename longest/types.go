package longest

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/trailmaze/maze"
)

// DefaultParallelDepth keeps the number of spawned goroutines in the low
// thousands for junction graphs of out-degree ≤ 4.
const DefaultParallelDepth = 4

var (
	// ErrGraphNil is returned when Search receives a nil graph.
	ErrGraphNil = errors.New("longest: graph is nil")

	// ErrStartNotFound indicates the start point is not a node of the graph.
	ErrStartNotFound = errors.New("longest: start node not found")
)

// Option configures Search.
type Option func(*Options)

// Options holds the search knobs.
type Options struct {
	// Ctx cancels the search. Defaults to context.Background().
	Ctx context.Context

	// ParallelDepth is the number of search-tree levels that fan out into
	// goroutines. Zero runs fully sequentially.
	ParallelDepth int

	// Terminal decides whether a node ends a path. Nil means "on the exit row".
	Terminal func(maze.Point) bool

	// Logger receives per-search statistics. Defaults to zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns a background context, DefaultParallelDepth, the
// exit-row terminal rule and no logging.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		ParallelDepth: DefaultParallelDepth,
		Logger:        zerolog.Nop(),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallelDepth sets the fan-out depth; negative values mean 0.
func WithParallelDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.ParallelDepth = n
	}
}

// WithTerminal installs a custom terminal predicate.
func WithTerminal(fn func(maze.Point) bool) Option {
	return func(o *Options) { o.Terminal = fn }
}

// WithLogger installs a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Result is the outcome of one Search.
type Result struct {
	// Longest is the maximum path length found, 0 when Found is false.
	Longest int

	// Found reports whether any terminal node was reachable.
	Found bool

	// Expanded counts non-terminal search-tree nodes visited.
	Expanded int64

	// Tasks counts goroutines spawned for fan-out.
	Tasks int64

	// Elapsed is the wall-clock search time.
	Elapsed time.Duration
}
