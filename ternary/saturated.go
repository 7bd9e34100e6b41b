package ternary

import (
	"fmt"
	"slices"
)

// Saturation returns the largest number of coins that k static weighings
// can handle: (3^k-1)/2 - 1.
func Saturation(k int) int {
	return (Pow3(k)-1)/2 - 1
}

// WeighingsFor returns the smallest k ≥ 2 with Saturation(k) ≥ n.
func WeighingsFor(n int) int {
	k := 2
	for Saturation(k) < n {
		k++
	}
	return k
}

// Saturated returns the sorted code table for Saturation(k) coins.
//
// For k = 2 the table is {1, 3, 8}. For larger k, with b the k-1 table and
// c = 3^(k-1):
//  1. every code of b, then every code + c, then every code + 2c;
//  2. the code 2c;
//  3. the smallest m in 1..c-1 that is neither in b nor a complement of a
//     code in b, together with c + Complement(m).
func Saturated(k int) ([]int, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadWeighings, k)
	}
	return saturated(k), nil
}

func saturated(k int) []int {
	if k == 2 {
		return []int{1, 3, 8}
	}

	var (
		base = saturated(k - 1)
		c    = Pow3(k - 1)
		out  = make([]int, 0, 3*len(base)+3)
	)
	for prefix := 0; prefix < 3; prefix++ {
		for _, code := range base {
			out = append(out, code+prefix*c)
		}
	}
	m := missing(base, c-1)
	out = append(out, 2*c, m, c+Complement(m))
	slices.Sort(out)

	return out
}

// missing returns the smallest value in 1..limit that is neither a code of
// table nor the complement of one. The saturated tables always leave such
// a value free.
func missing(table []int, limit int) int {
	u := newUsage(limit+1, table)
	for m := 1; m <= limit; m++ {
		if u.free(m) {
			return m
		}
	}
	return 0
}

// usage marks codes and their complements as taken.
type usage []bool

func newUsage(size int, codes []int) usage {
	u := make(usage, size)
	for _, c := range codes {
		u.take(c)
	}
	return u
}

func (u usage) mark(x int, v bool) {
	if x < len(u) {
		u[x] = v
	}
	if cx := Complement(x); cx < len(u) {
		u[cx] = v
	}
}

func (u usage) take(x int)    { u.mark(x, true) }
func (u usage) release(x int) { u.mark(x, false) }

// free reports whether neither x nor its complement is taken.
func (u usage) free(x int) bool {
	return x < len(u) && !u[x]
}
