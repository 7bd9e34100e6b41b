// Package ternary builds non-adaptive (static) weighing strategies.
//
// 🧮 What it does
//
// A static strategy fixes all k weighings in advance. Every coin receives a
// k-digit base-3 "heavy code"; digit i of the code (most significant digit
// first) says where the coin goes in round i:
//
//	0 → off the scale
//	1 → left pan
//	2 → right pan
//
// If coin c is heavy, the outcomes spell its heavy code (left-heavy = 1,
// balanced = 0, right-heavy = 2). If it is light they spell the complement
// of that code, with digits 1 and 2 swapped. All balanced means no fake.
// A table is therefore decodable iff no code equals another code or the
// complement of another code, and a round is fair iff it puts as many
// coins on the left as on the right.
//
// ⚙️ Construction
//
//   - Saturated(k): the largest table for k weighings, (3^k-1)/2 - 1 coins,
//     built recursively from the k-1 table by prefixing each code with 0, 1
//     and 2 and adding three extra codes.
//   - Build(n) for n between two saturation points starts from the smaller
//     saturated table and inserts coins one at a time: a new code m is paired
//     with an existing code that is rewritten so that every round stays fair.
//   - When insertion gets stuck, Build instead shrinks the larger saturated
//     table one coin at a time, each step preserving fairness and
//     decodability (see trim).
//
// Every table Build returns passes Verify.
//
// 📦 Using a table
//
//	tbl, err := ternary.Build(12)
//	rounds, _ := tbl.Schedule()          // k pairs of pans
//	h, err := tbl.Decode(observed)        // coins.Hypothesis
//
// Complexity: Build is O(3^k · n · k) in the worst case per inserted coin;
// for practical sizes (n ≤ a few thousand) it runs in milliseconds.
package ternary
