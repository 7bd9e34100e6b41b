// Package coins models the state of a counterfeit-coin search: the
// fake-coin hypotheses still consistent with the weighings done so far and
// the roles they assign to the coins.
//
// Hypotheses:
//
//	A Hypothesis is a signed coin index:
//	  0   – no coin is fake (NoFake)
//	  +k  – coin k is fake and heavy
//	  -k  – coin k is fake and light
//
//	For n coins the universe holds 2n+1 hypotheses:
//	  {0, +1, …, +n, -1, …, -n}
//
// Weighing:
//
//	Pans put two disjoint, equally sized groups of coins on the scale.
//	Set.Weigh partitions a Set into exactly three disjoint subsets, one per
//	Outcome (LeftHeavy, Balanced, RightHeavy). Their union is the input set;
//	no hypothesis is lost or duplicated.
//
// Configuration:
//
//	Classify derives four disjoint coin groups from a Set:
//	  Equal  – fake in no surviving hypothesis
//	  More   – possibly heavy, never light
//	  Less   – possibly light, never heavy
//	  Double – possibly heavy and possibly light
//	plus AllEqual (the NoFake hypothesis survives).
//
//	Every configuration reachable from the universe is one of two kinds:
//	  KindA – More and Less empty, AllEqual set
//	  KindB – Double empty, AllEqual unset
//	Anything else is reported as ErrUnreachableConfiguration.
//
// Complexity:
//
//   - Universe: O(n)
//   - Weigh:    O(|set| + |pans|)
//   - Classify: O(|set| + n)
package coins
