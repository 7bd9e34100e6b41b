package ternary

import (
	"fmt"
	"slices"
)

// Table is a static strategy: coin c (1-based) carries the heavy code
// Codes[c-1], a number with Weighings base-3 digits.
type Table struct {
	Coins     int
	Weighings int
	Codes     []int
}

// Build returns a verified static strategy for n coins using the fewest
// possible weighings k = WeighingsFor(n).
//
// Steps:
//  1. n == Saturation(k): the saturated table.
//  2. Otherwise grow Saturated(k-1) by insertion up to n coins.
//  3. If insertion gets stuck, shrink Saturated(k) by trimming down to n.
//  4. Verify the result.
//
// Errors: ErrTooFewCoins for n < 3, ErrCodeSearchExhausted when both
// strategies fail, or a Verify error.
func Build(n int) (Table, error) {
	if n < 3 {
		return Table{}, fmt.Errorf("%w: n=%d", ErrTooFewCoins, n)
	}

	k := WeighingsFor(n)
	codes := saturated(k)
	if len(codes) != n {
		var ok bool
		if codes, ok = grow(saturated(k-1), n, k); !ok {
			if codes, ok = shrink(saturated(k), n, k); !ok {
				return Table{}, fmt.Errorf("%w: n=%d k=%d", ErrCodeSearchExhausted, n, k)
			}
		}
	}

	t := Table{Coins: n, Weighings: k, Codes: codes}
	if err := t.Verify(); err != nil {
		return Table{}, err
	}

	return t, nil
}

func grow(codes []int, n, k int) ([]int, bool) {
	ok := true
	for len(codes) < n && ok {
		codes, ok = insert(codes, k)
	}
	return codes, ok
}

func shrink(codes []int, n, k int) ([]int, bool) {
	ok := true
	for len(codes) > n && ok {
		codes, ok = trim(codes, k)
	}
	return codes, ok
}

// Verify checks that the codes are distinguishable and that every round
// has equal, non-empty pans.
func (t Table) Verify() error {
	if len(t.Codes) != t.Coins {
		return fmt.Errorf("%w: %d codes for %d coins", ErrInvalidCode, len(t.Codes), t.Coins)
	}

	var (
		limit = Pow3(t.Weighings)
		seen  = make(map[int]int, 2*len(t.Codes))
	)
	for i, c := range t.Codes {
		if c <= 0 || c >= limit {
			return fmt.Errorf("%w: coin %d has code %d outside 1..%d", ErrInvalidCode, i+1, c, limit-1)
		}
		for _, v := range [2]int{c, Complement(c)} {
			if prev, dup := seen[v]; dup {
				return fmt.Errorf("%w: coins %d and %d collide on %d", ErrInvalidCode, prev, i+1, v)
			}
		}
		seen[c], seen[Complement(c)] = i+1, i+1
	}

	_, err := t.Schedule()
	return err
}

// HeavyCode returns the outcome digits spelled when coin is heavy.
func (t Table) HeavyCode(coin int) (int, error) {
	if coin < 1 || coin > t.Coins {
		return 0, fmt.Errorf("%w: coin %d with n=%d", ErrCoinOutOfRange, coin, t.Coins)
	}
	return t.Codes[coin-1], nil
}

// LightCode returns the complement of the heavy code of coin.
func (t Table) LightCode(coin int) (int, error) {
	h, err := t.HeavyCode(coin)
	if err != nil {
		return 0, err
	}
	return Complement(h), nil
}

// LightCodes returns the light code of every coin, in coin order.
func (t Table) LightCodes() []int {
	out := slices.Clone(t.Codes)
	for i, c := range out {
		out[i] = Complement(c)
	}
	return out
}
