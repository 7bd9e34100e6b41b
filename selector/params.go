package selector

// Params describes a type B selection:
//
//	left pan:  N1 More coins, N2 Less coins, and -L Equal coins if L < 0
//	right pan: (p - N1) More coins, K Less coins, and L Equal coins if L > 0
//
// where p is the number of More coins.
type Params struct {
	N1 int
	N2 int
	K  int
	L  int
}

// Feasible reports whether the coin counts are non-negative.
func (p Params) Feasible() bool {
	return p.N1 >= 0 && p.N2 >= 0 && p.K >= 0
}

// SolveParams computes the type B parameters for more possibly-heavy and
// less possibly-light coins.
//
// Every More coin is on the scale, so the outcome sizes are
//
//	left heavy:  N1 + K
//	balanced:    less - N2 - K
//	right heavy: (more - N1) + N2
//
// With np = more + less, the closed forms below pick N1, N2 and L by
// np mod 3 and the parity of more so that all three differ by at most one. K follows from the
// balance of the pans: K = 2·N1 + N2 - more - L.
//
// Divisions truncate toward zero; a negative result is reported through
// Feasible and makes the caller retry with More and Less exchanged.
func SolveParams(more, less int) Params {
	var (
		np     = more + less
		n1, n2 int
		l      int
	)
	odd := more%2 == 1
	switch np % 3 {
	case 0:
		if odd {
			l = 2
			n1 = (more + 1) / 2
			n2 = (less - n1 + 2) / 3
		} else {
			n1 = more / 2
			n2 = (less - n1) / 3
		}
	case 1:
		if odd {
			l = 1
			n1 = (more + 1) / 2
			n2 = (less - n1 + 1) / 3
		} else {
			n1 = more / 2
			n2 = (less - n1 - 1) / 3
		}
	case 2:
		if odd {
			l = -1
			n1 = (more - 1) / 2
			n2 = (less - n1 - 1) / 3
		} else {
			n1 = more / 2
			n2 = (less - n1 + 1) / 3
		}
	}

	return Params{N1: n1, N2: n2, K: 2*n1 + n2 - more - l, L: l}
}
