package coins

import "fmt"

// Configuration is the role classification of coins 1..n relative to a Set.
// Each group lists coin indices in ascending order.
type Configuration struct {
	Equal  []int
	More   []int
	Less   []int
	Double []int

	// AllEqual is true iff the NoFake hypothesis survives.
	AllEqual bool
}

// Classify scans s once and assigns every coin 1..n to exactly one role.
//
// Errors:
//   - ErrCoinOutOfRange if s names a coin outside 1..n.
//   - ErrUnreachableConfiguration if the result is neither KindA nor KindB.
//
// Complexity: O(|s| + n).
func Classify(s Set, n int) (Configuration, error) {
	var (
		heavy = make([]bool, n+1)
		light = make([]bool, n+1)
		cfg   Configuration
		c     int
	)
	for _, h := range s.hyps {
		if h == NoFake {
			cfg.AllEqual = true
			continue
		}
		c = h.Coin()
		if c > n {
			return Configuration{}, fmt.Errorf("%w: hypothesis %s with n=%d", ErrCoinOutOfRange, h, n)
		}
		if h.IsHeavy() {
			heavy[c] = true
		} else {
			light[c] = true
		}
	}

	for c = 1; c <= n; c++ {
		switch {
		case heavy[c] && light[c]:
			cfg.Double = append(cfg.Double, c)
		case heavy[c]:
			cfg.More = append(cfg.More, c)
		case light[c]:
			cfg.Less = append(cfg.Less, c)
		default:
			cfg.Equal = append(cfg.Equal, c)
		}
	}

	if _, err := cfg.Kind(); err != nil {
		return Configuration{}, err
	}

	return cfg, nil
}

// Kind reports whether c is a KindA or a KindB configuration.
func (c Configuration) Kind() (Kind, error) {
	if len(c.More) == 0 && len(c.Less) == 0 && c.AllEqual {
		return KindA, nil
	}
	if len(c.Double) == 0 && !c.AllEqual {
		return KindB, nil
	}

	return 0, fmt.Errorf("%w: equal=%d more=%d less=%d double=%d all_equal=%t",
		ErrUnreachableConfiguration, len(c.Equal), len(c.More), len(c.Less), len(c.Double), c.AllEqual)
}

// Possibilities returns the number of hypotheses the configuration stands for.
func (c Configuration) Possibilities() int {
	n := len(c.More) + len(c.Less) + 2*len(c.Double)
	if c.AllEqual {
		n++
	}
	return n
}

// Role returns the role of coin, or RoleEqual for coins not listed anywhere.
func (c Configuration) Role(coin int) Role {
	for role, group := range [...][]int{RoleMore: c.More, RoleLess: c.Less, RoleDouble: c.Double} {
		for _, x := range group {
			if x == coin {
				return Role(role)
			}
		}
	}
	return RoleEqual
}

// Swapped returns a copy of c with the More and Less groups exchanged.
// The receiver is left untouched.
func (c Configuration) Swapped() Configuration {
	return Configuration{
		Equal:    clone(c.Equal),
		More:     clone(c.Less),
		Less:     clone(c.More),
		Double:   clone(c.Double),
		AllEqual: c.AllEqual,
	}
}

func clone(xs []int) []int {
	if xs == nil {
		return nil
	}
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}
