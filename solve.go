package coinweigh

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coinweigh/coins"
	"github.com/katalvlaran/coinweigh/selector"
	"github.com/katalvlaran/coinweigh/sequential"
	"github.com/katalvlaran/coinweigh/ternary"
)

// MinCoins is the smallest puzzle either mode accepts.
const MinCoins = 3

var (
	// ErrInvalidInput indicates fewer than MinCoins coins.
	ErrInvalidInput = errors.New("coinweigh: at least 3 coins are required")

	// ErrUnreachableConfiguration: the classifier met a hypothesis set that
	// valid play never produces.
	ErrUnreachableConfiguration = coins.ErrUnreachableConfiguration

	// ErrSelectorInfeasible: no balanced weighing exists for a configuration.
	ErrSelectorInfeasible = selector.ErrInfeasible

	// ErrCodeSearchExhausted: no static code table could be built.
	ErrCodeSearchExhausted = ternary.ErrCodeSearchExhausted
)

// SolveSequential builds a minimal-depth adaptive strategy for n coins.
// Options are passed through to sequential.Solve.
func SolveSequential(n int, opts ...sequential.Option) (sequential.Result, error) {
	if n < MinCoins {
		return sequential.Result{}, fmt.Errorf("%w: n=%d", ErrInvalidInput, n)
	}
	return sequential.Solve(n, opts...)
}

// SolveStatic builds a non-adaptive strategy for n coins.
func SolveStatic(n int) (ternary.Table, error) {
	if n < MinCoins {
		return ternary.Table{}, fmt.Errorf("%w: n=%d", ErrInvalidInput, n)
	}
	return ternary.Build(n)
}

// LowerBound returns ceil(log₃(2n+1)), the fewest weighings any strategy
// can need for n coins. It returns 0 for n ≤ 0.
func LowerBound(n int) int {
	k := 0
	for p := 1; p < 2*n+1; p *= 3 {
		k++
	}
	return k
}
