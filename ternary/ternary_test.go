package ternary_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinweigh/coins"
	"github.com/katalvlaran/coinweigh/ternary"
)

// ------------------------------------------------------------------------
// 1. Digits
// ------------------------------------------------------------------------

func TestComplement(t *testing.T) {
	assert.Equal(t, 0, ternary.Complement(0))
	assert.Equal(t, 2, ternary.Complement(1))
	assert.Equal(t, 7, ternary.Complement(5))   // 12 → 21
	assert.Equal(t, 14, ternary.Complement(25)) // 221 → 112

	for x := 0; x < ternary.Pow3(6); x++ {
		require.Equal(t, x, ternary.Complement(ternary.Complement(x)), "x=%d", x)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, []int{1, 2, 1}, ternary.Digits(16, 3))
	assert.Equal(t, []int{0, 0, 1, 2}, ternary.Digits(5, 4))
	assert.Equal(t, 1, ternary.Digit(16, 0))
	assert.Equal(t, 2, ternary.Digit(16, 1))
	assert.Equal(t, 0, ternary.Digit(16, 3))
	assert.Equal(t, 243, ternary.Pow3(5))
}

// ------------------------------------------------------------------------
// 2. Saturated tables
// ------------------------------------------------------------------------

func TestSaturated(t *testing.T) {
	two, err := ternary.Saturated(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 8}, two)

	three, err := ternary.Saturated(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5, 8, 10, 12, 16, 17, 18, 19, 21, 26}, three)

	for k := 2; k <= 6; k++ {
		codes, err := ternary.Saturated(k)
		require.NoError(t, err)
		require.Len(t, codes, ternary.Saturation(k))

		tbl := ternary.Table{Coins: len(codes), Weighings: k, Codes: codes}
		assert.NoError(t, tbl.Verify(), "k=%d", k)
	}

	_, err = ternary.Saturated(1)
	assert.ErrorIs(t, err, ternary.ErrBadWeighings)
}

func TestWeighingsFor(t *testing.T) {
	cases := map[int]int{3: 2, 4: 3, 12: 3, 13: 4, 39: 4, 40: 5, 120: 5, 121: 6}
	for n, k := range cases {
		assert.Equal(t, k, ternary.WeighingsFor(n), "n=%d", n)
	}
	assert.Equal(t, 363, ternary.Saturation(6))
}

// ------------------------------------------------------------------------
// 3. Build
// ------------------------------------------------------------------------

func TestBuild_KnownTables(t *testing.T) {
	cases := []struct {
		n     int
		k     int
		codes []int
	}{
		{3, 2, []int{1, 3, 8}},
		{4, 3, []int{3, 8, 9, 19}},
		{5, 3, []int{1, 5, 8, 9, 19}},
		{12, 3, []int{1, 3, 5, 8, 10, 12, 16, 17, 18, 19, 21, 26}},
	}
	for _, tc := range cases {
		tbl, err := ternary.Build(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.n, tbl.Coins)
		assert.Equal(t, tc.k, tbl.Weighings, "n=%d", tc.n)
		if diff := cmp.Diff(tc.codes, tbl.Codes); diff != "" {
			t.Errorf("n=%d codes (-want +got):\n%s", tc.n, diff)
		}
	}
}

func TestBuild_ScheduleTwelve(t *testing.T) {
	tbl, err := ternary.Build(12)
	require.NoError(t, err)

	rounds, err := tbl.Schedule()
	require.NoError(t, err)
	want := []coins.Pans{
		{Left: []int{5, 6, 7, 8}, Right: []int{9, 10, 11, 12}},
		{Left: []int{2, 3, 6, 11}, Right: []int{4, 7, 8, 12}},
		{Left: []int{1, 5, 7, 10}, Right: []int{3, 4, 8, 12}},
	}
	if diff := cmp.Diff(want, rounds); diff != "" {
		t.Fatalf("schedule (-want +got):\n%s", diff)
	}
}

func TestBuild_ValidForEveryCount(t *testing.T) {
	for n := 3; n <= 130; n++ {
		tbl, err := ternary.Build(n)
		require.NoError(t, err, "n=%d", n)

		assert.Len(t, tbl.Codes, n)
		assert.Equal(t, ternary.WeighingsFor(n), tbl.Weighings, "n=%d", n)
		assert.NoError(t, tbl.Verify(), "n=%d", n)
	}
}

// Insertion alone gets stuck here; the table comes from trimming the
// saturated six-weighing table.
func TestBuild_TrimFallback(t *testing.T) {
	if testing.Short() {
		t.Skip("large table")
	}
	tbl, err := ternary.Build(362)
	require.NoError(t, err)
	assert.Equal(t, 6, tbl.Weighings)
	assert.NoError(t, tbl.Verify())
	assertDecodes(t, tbl)
}

func TestBuild_TooFewCoins(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		_, err := ternary.Build(n)
		assert.ErrorIs(t, err, ternary.ErrTooFewCoins, "n=%d", n)
	}
}

// ------------------------------------------------------------------------
// 4. Decoding
// ------------------------------------------------------------------------

// assertDecodes plays every hypothesis through the table and decodes it.
func assertDecodes(t *testing.T, tbl ternary.Table) {
	t.Helper()
	universe, err := coins.Universe(tbl.Coins)
	require.NoError(t, err)
	for _, h := range universe.Hypotheses() {
		outcomes, err := tbl.Outcomes(h)
		require.NoError(t, err)
		got, err := tbl.Decode(outcomes)
		require.NoError(t, err, "n=%d h=%s", tbl.Coins, h)
		require.Equal(t, h, got, "n=%d", tbl.Coins)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for _, n := range []int{3, 4, 5, 12, 13, 40, 77} {
		tbl, err := ternary.Build(n)
		require.NoError(t, err)
		assertDecodes(t, tbl)
	}
}

func TestDecode_Errors(t *testing.T) {
	tbl, err := ternary.Build(5)
	require.NoError(t, err)

	_, err = tbl.Decode([]coins.Outcome{coins.Balanced})
	assert.ErrorIs(t, err, ternary.ErrInconsistentOutcome)

	_, err = tbl.Decode([]coins.Outcome{coins.Balanced, coins.Outcome(9), coins.Balanced})
	assert.ErrorIs(t, err, ternary.ErrInconsistentOutcome)

	// 010 is neither a heavy nor a light code of the five-coin table.
	_, err = tbl.Decode([]coins.Outcome{coins.Balanced, coins.LeftHeavy, coins.Balanced})
	assert.ErrorIs(t, err, ternary.ErrInconsistentOutcome)

	h, err := tbl.Decode([]coins.Outcome{coins.Balanced, coins.Balanced, coins.Balanced})
	require.NoError(t, err)
	assert.Equal(t, coins.NoFake, h)

	_, err = tbl.Outcomes(coins.Heavy(6))
	assert.ErrorIs(t, err, ternary.ErrCoinOutOfRange)
}

func TestCodes(t *testing.T) {
	tbl, err := ternary.Build(12)
	require.NoError(t, err)

	heavy, err := tbl.HeavyCode(3)
	require.NoError(t, err)
	assert.Equal(t, 5, heavy)

	light, err := tbl.LightCode(3)
	require.NoError(t, err)
	assert.Equal(t, 7, light)
	assert.Equal(t, light, tbl.LightCodes()[2])

	_, err = tbl.HeavyCode(13)
	assert.ErrorIs(t, err, ternary.ErrCoinOutOfRange)
	_, err = tbl.LightCode(0)
	assert.ErrorIs(t, err, ternary.ErrCoinOutOfRange)
}

// ------------------------------------------------------------------------
// 5. Verify
// ------------------------------------------------------------------------

func TestVerify_Rejects(t *testing.T) {
	cases := []struct {
		name string
		tbl  ternary.Table
		want error
	}{
		{"complement collision", ternary.Table{Coins: 3, Weighings: 2, Codes: []int{1, 2, 8}}, ternary.ErrInvalidCode},
		{"same code", ternary.Table{Coins: 3, Weighings: 2, Codes: []int{1, 1, 8}}, ternary.ErrInvalidCode},
		{"code out of range", ternary.Table{Coins: 3, Weighings: 2, Codes: []int{1, 3, 9}}, ternary.ErrInvalidCode},
		{"count mismatch", ternary.Table{Coins: 4, Weighings: 2, Codes: []int{1, 3, 8}}, ternary.ErrInvalidCode},
		{"unbalanced round", ternary.Table{Coins: 3, Weighings: 2, Codes: []int{1, 3, 5}}, ternary.ErrUnbalancedRound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.tbl.Verify(), tc.want)
		})
	}
}
