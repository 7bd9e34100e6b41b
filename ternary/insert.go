package ternary

import "slices"

// complementAgainst rewrites h so that it makes room for the new code m:
// wherever m has a nonzero digit, h must have a zero there and receives
// the complement of m's digit; elsewhere h keeps its digit. The pair
// (m, result) thus adds one coin to both pans of every round m touches.
// It returns 0 when some digit of h collides with m.
func complementAgainst(m, h, k int) int {
	var (
		out   int
		place = 1
	)
	for i := 0; i < k; i++ {
		dm, dh := m%3, h%3
		switch {
		case dm == 0:
			out += dh * place
		case dh != 0:
			return 0
		default:
			out += (3 - dm) * place
		}
		m /= 3
		h /= 3
		place *= 3
	}
	return out
}

// insert adds one coin to codes, a valid k-digit table, and returns the
// sorted result. Candidates m are tried in ascending order, partners in
// table order; the first pair whose rewritten partner is still free wins.
// ok is false when no candidate fits.
func insert(codes []int, k int) ([]int, bool) {
	var (
		limit = Pow3(k)
		u     = newUsage(limit, codes)
	)
	for m := 1; m < limit; m++ {
		if !u.free(m) {
			continue
		}
		for j, h := range codes {
			t := complementAgainst(m, h, k)
			if t == 0 || !u.free(t) {
				continue
			}
			out := slices.Clone(codes)
			out[j] = t
			out = append(out, m)
			slices.Sort(out)
			return out, true
		}
	}

	return nil, false
}
