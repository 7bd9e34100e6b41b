// Package coinweigh solves the counterfeit-coin puzzle with a balance scale.
//
// 🚀 The puzzle
//
//	Among n coins at most one is fake, heavier or lighter than the rest.
//	Using a two-pan balance, find the fake coin and whether it is heavy or
//	light (or that there is none) in as few weighings as possible.
//
// There are 2n+1 possible answers and every weighing has three outcomes,
// so no strategy beats ceil(log₃(2n+1)) weighings (LowerBound).
//
// ✨ Two modes
//
//   - Sequential (adaptive): each weighing may depend on earlier outcomes.
//     SolveSequential returns a decision tree of minimal depth.
//   - Static (non-adaptive): all weighings are fixed up front.
//     SolveStatic returns a per-coin ternary code table.
//
// Under the hood the work is split into subpackages:
//
//	coins/        hypotheses, pans, hypothesis sets and their classification
//	selector/     picks the coins of the next weighing for an even split
//	sequential/   recursive construction of the adaptive decision tree
//	ternary/      code tables for the static strategy
//	render/       text and YAML output of trees and tables
//	config/       YAML configuration of the coinweigh command
//	cmd/          the coinweigh command line
//
// Quick example, the classic twelve coins:
//
//	res, _ := coinweigh.SolveSequential(12)
//	fmt.Println(res.Depth) // 3
//
//	go install github.com/katalvlaran/coinweigh/cmd/coinweigh@latest
package coinweigh
