package coins

import (
	"fmt"
	"strings"
)

// Set is an ordered collection of distinct hypotheses that are still
// consistent with every weighing done so far.
//
// A Set is a value: Weigh never modifies its receiver, and the three
// subsets it returns share no storage with it or with each other.
type Set struct {
	hyps []Hypothesis
}

// Universe returns the initial set for n coins:
//
//	{0, +1, …, +n, -1, …, -n}
//
// Returns ErrNoCoins if n < 1.
func Universe(n int) (Set, error) {
	if n < 1 {
		return Set{}, fmt.Errorf("%w: n=%d", ErrNoCoins, n)
	}
	hyps := make([]Hypothesis, 2*n+1)
	var k int
	hyps[0] = NoFake
	for k = 1; k <= n; k++ {
		hyps[k] = Heavy(k)
		hyps[k+n] = Light(k)
	}

	return Set{hyps: hyps}, nil
}

// NewSet builds a set from the given hypotheses, keeping their order.
// Duplicates are dropped so the result stays a set.
func NewSet(hyps ...Hypothesis) Set {
	out := make([]Hypothesis, 0, len(hyps))
	seen := make(map[Hypothesis]struct{}, len(hyps))
	for _, h := range hyps {
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}

	return Set{hyps: out}
}

// Len returns the number of surviving hypotheses.
func (s Set) Len() int { return len(s.hyps) }

// Solved reports whether at most one hypothesis survives.
func (s Set) Solved() bool { return len(s.hyps) <= 1 }

// At returns the i-th hypothesis.
func (s Set) At(i int) Hypothesis { return s.hyps[i] }

// Hypotheses returns a copy of the surviving hypotheses in set order.
func (s Set) Hypotheses() []Hypothesis {
	out := make([]Hypothesis, len(s.hyps))
	copy(out, s.hyps)
	return out
}

// Contains reports whether h survives.
func (s Set) Contains(h Hypothesis) bool {
	for _, x := range s.hyps {
		if x == h {
			return true
		}
	}
	return false
}

// Label names a solved set: "--" when empty (a contradiction), the single
// hypothesis otherwise. Unsolved sets have an empty label.
func (s Set) Label() string {
	switch len(s.hyps) {
	case 0:
		return "--"
	case 1:
		return s.hyps[0].String()
	default:
		return ""
	}
}

// Weigh partitions s by the outcome each hypothesis produces on p.
// The result is indexed by Outcome.
//
// Contract: the three subsets are pairwise disjoint and their union is s.
// The relative order of hypotheses is preserved inside each subset.
func (s Set) Weigh(p Pans) [3]Set {
	side := p.sides()
	var (
		out [3]Set
		o   Outcome
	)
	for _, h := range s.hyps {
		o = outcomeOf(h, side)
		out[o].hyps = append(out[o].hyps, h)
	}

	return out
}

func (s Set) String() string {
	parts := make([]string, len(s.hyps))
	for i, h := range s.hyps {
		parts[i] = h.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
