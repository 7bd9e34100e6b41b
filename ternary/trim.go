package ternary

import "slices"

// trim removes one coin from codes, a valid k-digit table, keeping every
// round fair and every code distinguishable.
//
// Viewing codes as signed vectors (left pan +1, right pan -1), it looks
// for an unused code e and table codes a ≠ y with
//
//	e = a + y + 2·z
//
// where z is either the zero vector or another table code. Replacing
// {a, y} by {e}, or {a, y, z} by {e, -z}, leaves every column sum unchanged
// while shrinking the table by one. Candidates e ascend, then a and y in
// table order. ok is false when no such step exists.
func trim(codes []int, k int) ([]int, bool) {
	var (
		limit = Pow3(k)
		u     = newUsage(limit, codes)
		vec   = make(map[int][]int, len(codes))
		index = make(map[int]bool, len(codes))
		r     = make([]int, k)
		z     = make([]int, k)
	)
	for _, c := range codes {
		vec[c] = signed(c, k)
		index[c] = true
	}

	for e := 1; e < limit; e++ {
		if !u.free(e) {
			continue
		}
		ve := signed(e, k)
		for _, a := range codes {
			for _, y := range codes {
				if y == a || !solveZ(ve, vec[a], vec[y], r, z) {
					continue
				}
				zc := unsigned(z)
				if zc == 0 {
					return replace(codes, []int{a, y}, []int{e}), true
				}
				if !index[zc] || zc == a || zc == y {
					continue
				}
				return replace(codes, []int{a, y, zc}, []int{e, Complement(zc)}), true
			}
		}
	}

	return nil, false
}

// solveZ fills z with (e - a - y)/2 and reports whether every entry is an
// integer in -1..1. r is scratch space.
func solveZ(e, a, y, r, z []int) bool {
	for i := range e {
		r[i] = e[i] - a[i] - y[i]
		if r[i]%2 != 0 {
			return false
		}
		z[i] = r[i] / 2
		if z[i] < -1 || z[i] > 1 {
			return false
		}
	}
	return true
}

// replace returns a sorted copy of codes without drop and with add.
func replace(codes, drop, add []int) []int {
	out := make([]int, 0, len(codes)-len(drop)+len(add))
	for _, c := range codes {
		if !slices.Contains(drop, c) {
			out = append(out, c)
		}
	}
	out = append(out, add...)
	slices.Sort(out)
	return out
}
