package sequential

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coinweigh/coins"
	"github.com/katalvlaran/coinweigh/selector"
)

// Result is a solved adaptive strategy for Coins coins.
type Result struct {
	Coins int

	// Depth is the worst-case number of weighings.
	Depth int

	// Root is the first weighing (or a leaf if nothing needs weighing).
	Root *Node
}

// Solve builds a minimal-depth decision tree for n coins.
//
// Preconditions:
//   - n ≥ 1 (coins.ErrNoCoins otherwise). Puzzles worth solving have n ≥ 3;
//     that bound is enforced by the coinweigh entry points.
//
// Steps:
//  1. Apply options and validate them.
//  2. Build the universe of 2n+1 hypotheses.
//  3. Recurse (see package doc).
func Solve(n int, opts ...Option) (Result, error) {
	// 1) Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ParallelDepth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrBadParallelDepth, cfg.ParallelDepth)
	}

	// 2) Universe
	universe, err := coins.Universe(n)
	if err != nil {
		return Result{}, err
	}

	// 3) Recursive construction
	s := &searcher{n: n, log: cfg.Logger, parallelDepth: cfg.ParallelDepth}
	root, err := s.solve(universe, 0)
	if err != nil {
		return Result{}, err
	}

	return Result{Coins: n, Depth: root.Height, Root: root}, nil
}

// searcher carries the immutable parameters of one Solve call.
type searcher struct {
	n             int
	log           *zap.Logger
	parallelDepth int
}

// solve returns the subtree for set, found at the given depth (root = 0).
// set is consumed: only its three children survive this call.
func (s *searcher) solve(set coins.Set, depth int) (*Node, error) {
	if set.Solved() {
		return &Node{Survivors: set}, nil
	}

	cfg, err := coins.Classify(set, s.n)
	if err != nil {
		return nil, err
	}
	pans, err := selector.Select(cfg)
	if err != nil {
		return nil, err
	}

	parts := set.Weigh(pans)
	node := &Node{Pans: pans}
	for _, o := range coins.Outcomes {
		node.Sizes[o] = parts[o].Len()
		if node.Sizes[o] == set.Len() {
			return nil, fmt.Errorf("%w: %v leaves all %d hypotheses %s", ErrNoProgress, pans, set.Len(), o)
		}
	}

	s.log.Debug("weighing",
		zap.Int("depth", depth+1),
		zap.Ints("left", pans.Left),
		zap.Ints("right", pans.Right),
		zap.Int("heavy", node.Sizes[coins.LeftHeavy]),
		zap.Int("balanced", node.Sizes[coins.Balanced]),
		zap.Int("light", node.Sizes[coins.RightHeavy]))

	if depth < s.parallelDepth {
		err = s.solveParallel(node, parts, depth)
	} else {
		err = s.solveSequential(node, parts, depth)
	}
	if err != nil {
		return nil, err
	}

	for _, child := range node.Children {
		node.Height = max(node.Height, child.Height)
	}
	node.Height++

	return node, nil
}

func (s *searcher) solveSequential(node *Node, parts [3]coins.Set, depth int) error {
	var err error
	for _, o := range coins.Outcomes {
		if node.Children[o], err = s.solve(parts[o], depth+1); err != nil {
			return err
		}
	}
	return nil
}

// solveParallel runs the three branches on their own goroutines. Each
// goroutine writes only its own child slot.
func (s *searcher) solveParallel(node *Node, parts [3]coins.Set, depth int) error {
	var g errgroup.Group
	for _, o := range coins.Outcomes {
		o := o
		g.Go(func() error {
			child, err := s.solve(parts[o], depth+1)
			if err != nil {
				return err
			}
			node.Children[o] = child
			return nil
		})
	}
	return g.Wait()
}
