package sequential

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by the sequential package.
var (
	// ErrNoProgress indicates a weighing whose outcomes did not shrink the
	// hypothesis set; recursing would never terminate.
	ErrNoProgress = errors.New("sequential: weighing does not split the hypothesis set")

	// ErrBadParallelDepth indicates a negative parallel fan-out depth.
	ErrBadParallelDepth = errors.New("sequential: parallel depth must be non-negative")

	// ErrImpossibleOutcome indicates an outcome path that no hypothesis produces.
	ErrImpossibleOutcome = errors.New("sequential: outcome sequence is impossible")

	// ErrBadOutcome indicates an outcome value outside LeftHeavy..RightHeavy.
	ErrBadOutcome = errors.New("sequential: unknown outcome")

	// ErrPastLeaf indicates more outcomes than weighings on the path.
	ErrPastLeaf = errors.New("sequential: outcomes continue past a leaf")
)

// Options configures Solve.
type Options struct {
	// Logger receives one debug entry per weighing. Default: zap.NewNop().
	Logger *zap.Logger

	// ParallelDepth: nodes shallower than this depth solve their three
	// branches concurrently. Default: 0 (fully sequential).
	ParallelDepth int
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithLogger sets the logger used for per-weighing debug entries.
// A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithParallel solves the branches of every node above the given depth
// on separate goroutines. Depth 1 fans out only the root; 0 disables it.
func WithParallel(depth int) Option {
	return func(o *Options) {
		o.ParallelDepth = depth
	}
}

// DefaultOptions returns the options Solve starts from.
func DefaultOptions() Options {
	return Options{
		Logger:        zap.NewNop(),
		ParallelDepth: 0,
	}
}
