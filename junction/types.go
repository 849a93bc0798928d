package junction

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/trailmaze/maze"
)

var (
	// ErrGridNil is returned when Compile receives a nil grid.
	ErrGridNil = errors.New("junction: grid is nil")

	// ErrExhausted indicates a corridor walk ran past the step limit.
	ErrExhausted = errors.New("junction: corridor step limit exceeded")
)

// ExhaustionError reports the corridor that ran past the step limit.
type ExhaustionError struct {
	From  maze.Point // node the corridor started from
	At    maze.Point // cell reached when the limit tripped
	Limit int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("%v: corridor from %v reached %v after %d steps", ErrExhausted, e.From, e.At, e.Limit)
}

// Unwrap exposes ErrExhausted for errors.Is.
func (e *ExhaustionError) Unwrap() error { return ErrExhausted }

// Option configures Compile.
type Option func(*Options)

// Options holds the compile-time knobs.
type Options struct {
	// Mode selects directional or undirected slope semantics.
	Mode maze.Mode

	// Prune enables perimeter back-edge removal. Default true.
	Prune bool

	// StepLimit bounds a single corridor walk; 0 means Rows×Cols.
	StepLimit int

	// Logger receives debug statistics. Default zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns Directional mode with pruning and no logging.
func DefaultOptions() Options {
	return Options{
		Mode:   maze.Directional,
		Prune:  true,
		Logger: zerolog.Nop(),
	}
}

// WithMode selects the traversal mode.
func WithMode(m maze.Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithPruning toggles perimeter pruning.
func WithPruning(enabled bool) Option {
	return func(o *Options) { o.Prune = enabled }
}

// WithStepLimit overrides the per-corridor step bound. Non-positive values
// restore the default.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.StepLimit = n
	}
}

// WithLogger installs a logger for compile statistics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
