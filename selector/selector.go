// Package selector chooses the coins for the next weighing.
//
// Given a classified configuration, Select returns two equally sized pans
// such that the three outcomes split the surviving hypotheses as evenly as
// possible: the outcome set sizes differ by at most one. The only exception
// is the very first weighing of a type A universe whose size is not a
// multiple of three and no genuine coin is known yet, where the closest
// achievable split is accepted.
//
// Type A (Double and Equal coins, "no fake" still possible), m = |Double|:
//
//	m mod 3 == 0 → m/3 coins per pan
//	m mod 3 == 1 → (m+2)/3 per pan, one Equal coin padding the right pan,
//	               or (m-1)/3 per pan when no Equal coin is known
//	m mod 3 == 2 → (m+1)/3 per pan
//
// Type B (More, Less and Equal coins, a fake is certain): see SolveParams.
package selector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coinweigh/coins"
)

// ErrInfeasible indicates that no balanced selection exists for the
// configuration. Valid play never produces such a configuration.
var ErrInfeasible = errors.New("selector: no feasible coin selection")

// Select returns the pans for the next weighing of cfg.
//
// Errors:
//   - coins.ErrUnreachableConfiguration if cfg is neither KindA nor KindB.
//   - ErrInfeasible if no selection with at least one coin per pan exists.
func Select(cfg coins.Configuration) (coins.Pans, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return coins.Pans{}, err
	}
	switch kind {
	case coins.KindA:
		return selectA(cfg)
	default:
		return selectB(cfg)
	}
}

// selectA: left pan takes the first n Double coins, the right pan the next
// n (or n-1 plus one borrowed Equal coin).
func selectA(cfg coins.Configuration) (coins.Pans, error) {
	var (
		m      = len(cfg.Double)
		n      int
		borrow bool
	)
	switch m % 3 {
	case 0:
		n = m / 3
	case 1:
		if len(cfg.Equal) > 0 {
			n = (m + 2) / 3
			borrow = true
		} else {
			n = (m - 1) / 3
		}
	case 2:
		n = (m + 1) / 3
	}
	if n == 0 {
		return coins.Pans{}, fmt.Errorf("%w: type A with %d double and %d equal coins", ErrInfeasible, m, len(cfg.Equal))
	}

	p := coins.Pans{
		Left:  make([]int, 0, n),
		Right: make([]int, 0, n),
	}
	p.Left = append(p.Left, cfg.Double[:n]...)
	if borrow {
		p.Right = append(p.Right, cfg.Double[n:2*n-1]...)
		p.Right = append(p.Right, cfg.Equal[0])
	} else {
		p.Right = append(p.Right, cfg.Double[n:2*n]...)
	}

	return p, nil
}

// selectB places n1 More and n2 Less coins (plus -l Equal coins when l < 0)
// on the left pan, and the remaining More coins, k Less coins and l Equal
// coins on the right pan.
func selectB(cfg coins.Configuration) (coins.Pans, error) {
	params := SolveParams(len(cfg.More), len(cfg.Less))
	if !params.Feasible() {
		cfg = cfg.Swapped()
		params = SolveParams(len(cfg.More), len(cfg.Less))
		if !params.Feasible() {
			return coins.Pans{}, fmt.Errorf("%w: type B with more=%d less=%d (%+v)",
				ErrInfeasible, len(cfg.More), len(cfg.Less), params)
		}
	}

	var (
		n1, n2, k, l = params.N1, params.N2, params.K, params.L
		eqLeft       = max(-l, 0)
		eqRight      = max(l, 0)
	)
	switch {
	case n1 > len(cfg.More):
		return coins.Pans{}, fmt.Errorf("%w: %d more coins needed, %d known", ErrInfeasible, n1, len(cfg.More))
	case n2+k > len(cfg.Less):
		return coins.Pans{}, fmt.Errorf("%w: %d less coins needed, %d known", ErrInfeasible, n2+k, len(cfg.Less))
	case max(eqLeft, eqRight) > len(cfg.Equal):
		return coins.Pans{}, fmt.Errorf("%w: %d equal coins needed, %d known", ErrInfeasible, max(eqLeft, eqRight), len(cfg.Equal))
	}

	ns := n1 + n2 + eqLeft
	p := coins.Pans{
		Left:  make([]int, 0, ns),
		Right: make([]int, 0, ns),
	}
	p.Left = append(p.Left, cfg.More[:n1]...)
	p.Left = append(p.Left, cfg.Less[:n2]...)
	p.Left = append(p.Left, cfg.Equal[:eqLeft]...)

	p.Right = append(p.Right, cfg.More[n1:]...)
	p.Right = append(p.Right, cfg.Less[n2:n2+k]...)
	p.Right = append(p.Right, cfg.Equal[:eqRight]...)

	if len(p.Left) != len(p.Right) || ns == 0 {
		return coins.Pans{}, fmt.Errorf("%w: pans of %d and %d coins", ErrInfeasible, len(p.Left), len(p.Right))
	}

	return p, nil
}
