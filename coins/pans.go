package coins

import "fmt"

// Pans is one weighing: the coins on the left pan and on the right pan.
// Coin indices are 1-based.
type Pans struct {
	Left  []int
	Right []int
}

// Size returns the number of coins on each pan.
func (p Pans) Size() int { return len(p.Left) }

// Empty reports whether no coin is on the scale.
func (p Pans) Empty() bool { return len(p.Left) == 0 && len(p.Right) == 0 }

// Validate checks that both pans hold the same number of coins, that every
// coin lies in 1..n and that no coin appears twice.
func (p Pans) Validate(n int) error {
	if len(p.Left) != len(p.Right) {
		return fmt.Errorf("%w: %d coins left, %d coins right", ErrBadPans, len(p.Left), len(p.Right))
	}
	seen := make(map[int]struct{}, 2*len(p.Left))
	for _, group := range [2][]int{p.Left, p.Right} {
		for _, c := range group {
			if c < 1 || c > n {
				return fmt.Errorf("%w: coin %d with n=%d", ErrCoinOutOfRange, c, n)
			}
			if _, dup := seen[c]; dup {
				return fmt.Errorf("%w: coin %d placed twice", ErrBadPans, c)
			}
			seen[c] = struct{}{}
		}
	}

	return nil
}

// Outcome returns the outcome hypothesis h produces on p.
//
// The fake coin contributes +1 when heavy and -1 when light; the outcome is
// the sign of its contribution on the left pan minus its contribution on
// the right pan. A coin on neither pan contributes nothing.
func (p Pans) Outcome(h Hypothesis) Outcome {
	return outcomeOf(h, p.sides())
}

// sides maps each coin on the scale to +1 (left) or -1 (right).
func (p Pans) sides() map[int]int {
	side := make(map[int]int, len(p.Left)+len(p.Right))
	for _, c := range p.Left {
		side[c] = 1
	}
	for _, c := range p.Right {
		side[c] = -1
	}
	return side
}

func outcomeOf(h Hypothesis, side map[int]int) Outcome {
	if h == NoFake {
		return Balanced
	}
	w := side[h.Coin()]
	if h.IsLight() {
		w = -w
	}
	switch {
	case w > 0:
		return LeftHeavy
	case w < 0:
		return RightHeavy
	default:
		return Balanced
	}
}
