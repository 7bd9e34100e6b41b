// Package sequential builds adaptive weighing strategies: decision trees in
// which every weighing is chosen after seeing the outcomes of the previous
// ones.
//
// 🚀 How it works
//
//	Solve starts from the universe of 2n+1 hypotheses and recurses:
//	  1. A set with at most one hypothesis is a leaf (0 more weighings).
//	  2. Otherwise classify the set (coins.Classify) and pick pans
//	     (selector.Select).
//	  3. Weigh: split the set into the left-heavy, balanced and
//	     right-heavy subsets.
//	  4. Recurse into the three subsets; the height of the node is
//	     1 + the tallest child.
//
//	Children are always visited and stored in the canonical order
//	heavy, balanced, light, so trees and traces are reproducible.
//
// ✨ Features
//
//   - Node.Identify runs a hypothesis through the tree.
//   - Node.Follow walks the tree by observed outcomes.
//   - Result.Trace flattens the tree into weighing events (pre-order).
//   - WithLogger logs each weighing at debug level through zap.
//   - WithParallel fans the three branches of shallow nodes out onto
//     goroutines. The branches share no mutable state, so the resulting
//     tree is identical to the sequential one.
//
// Complexity:
//
//   - Depth of recursion: O(log₃ n).
//   - Work: every level of the tree partitions at most 2n+1 hypotheses,
//     so O(n log n) in total.
//
// Errors:
//
//   - coins.ErrNoCoins                  – n < 1.
//   - coins.ErrUnreachableConfiguration – classification failed.
//   - selector.ErrInfeasible            – no selection for a reachable set.
//   - ErrNoProgress                     – a weighing did not shrink the set.
//   - ErrBadParallelDepth               – negative WithParallel depth.
package sequential
