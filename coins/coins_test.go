package coins_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coinweigh/coins"
)

// ------------------------------------------------------------------------
// 1. Universe and Set basics
// ------------------------------------------------------------------------

func TestUniverse_Layout(t *testing.T) {
	s, err := coins.Universe(3)
	require.NoError(t, err)

	want := []coins.Hypothesis{0, 1, 2, 3, -1, -2, -3}
	if diff := cmp.Diff(want, s.Hypotheses()); diff != "" {
		t.Fatalf("universe mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 7, s.Len())
	assert.False(t, s.Solved())
}

func TestUniverse_RejectsNoCoins(t *testing.T) {
	_, err := coins.Universe(0)
	assert.ErrorIs(t, err, coins.ErrNoCoins)
}

func TestNewSet_DropsDuplicates(t *testing.T) {
	s := coins.NewSet(1, -2, 1, 0, -2)
	assert.Equal(t, []coins.Hypothesis{1, -2, 0}, s.Hypotheses())
	assert.True(t, s.Contains(-2))
	assert.False(t, s.Contains(2))
}

func TestSet_Labels(t *testing.T) {
	assert.Equal(t, "--", coins.NewSet().Label())
	assert.Equal(t, "==", coins.NewSet(coins.NoFake).Label())
	assert.Equal(t, "7+", coins.NewSet(coins.Heavy(7)).Label())
	assert.Equal(t, "12-", coins.NewSet(coins.Light(12)).Label())
	assert.Equal(t, "", coins.NewSet(1, 2).Label())
	assert.Equal(t, "{==, 1+, 1-}", coins.NewSet(0, 1, -1).String())
}

func TestHypothesis_Accessors(t *testing.T) {
	h := coins.Light(5)
	assert.Equal(t, 5, h.Coin())
	assert.True(t, h.IsLight())
	assert.False(t, h.IsHeavy())
	assert.Equal(t, 0, coins.NoFake.Coin())
}

// ------------------------------------------------------------------------
// 2. Weighing
// ------------------------------------------------------------------------

func TestPans_Outcome(t *testing.T) {
	p := coins.Pans{Left: []int{1, 2}, Right: []int{3, 4}}

	cases := []struct {
		h    coins.Hypothesis
		want coins.Outcome
	}{
		{coins.NoFake, coins.Balanced},
		{coins.Heavy(1), coins.LeftHeavy},
		{coins.Light(1), coins.RightHeavy},
		{coins.Heavy(4), coins.RightHeavy},
		{coins.Light(3), coins.LeftHeavy},
		{coins.Heavy(5), coins.Balanced},
		{coins.Light(5), coins.Balanced},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, p.Outcome(tc.h), "hypothesis %s", tc.h)
	}
}

func TestSet_WeighPartitions(t *testing.T) {
	s, err := coins.Universe(12)
	require.NoError(t, err)

	p := coins.Pans{Left: []int{1, 2, 3, 4}, Right: []int{5, 6, 7, 8}}
	parts := s.Weigh(p)

	// The classic first weighing of twelve coins splits 25 hypotheses 8/9/8.
	assert.Equal(t, 8, parts[coins.LeftHeavy].Len())
	assert.Equal(t, 9, parts[coins.Balanced].Len())
	assert.Equal(t, 8, parts[coins.RightHeavy].Len())

	// Disjoint and complete.
	seen := make(map[coins.Hypothesis]coins.Outcome)
	for _, o := range coins.Outcomes {
		for _, h := range parts[o].Hypotheses() {
			prev, dup := seen[h]
			require.False(t, dup, "hypothesis %s in both %s and %s", h, prev, o)
			seen[h] = o
			assert.Equal(t, o, p.Outcome(h))
		}
	}
	assert.Len(t, seen, s.Len())
	for _, h := range s.Hypotheses() {
		_, ok := seen[h]
		assert.True(t, ok, "hypothesis %s lost", h)
	}

	// The receiver is not consumed.
	assert.Equal(t, 25, s.Len())
}

func TestSet_WeighEveryPanAssignmentOfFourCoins(t *testing.T) {
	s, err := coins.Universe(4)
	require.NoError(t, err)

	// Enumerate every assignment of 4 coins to {off, left, right} with equal pans.
	var assign func(coin int, p coins.Pans)
	assign = func(coin int, p coins.Pans) {
		if coin > 4 {
			if len(p.Left) != len(p.Right) {
				return
			}
			parts := s.Weigh(p)
			total := 0
			for _, part := range parts {
				total += part.Len()
			}
			assert.Equal(t, s.Len(), total, "pans %v", p)
			return
		}
		assign(coin+1, p)
		assign(coin+1, coins.Pans{Left: append(append([]int{}, p.Left...), coin), Right: p.Right})
		assign(coin+1, coins.Pans{Left: p.Left, Right: append(append([]int{}, p.Right...), coin)})
	}
	assign(1, coins.Pans{})
}

func TestPans_Validate(t *testing.T) {
	assert.NoError(t, coins.Pans{Left: []int{1}, Right: []int{2}}.Validate(3))
	assert.ErrorIs(t, coins.Pans{Left: []int{1, 2}, Right: []int{3}}.Validate(3), coins.ErrBadPans)
	assert.ErrorIs(t, coins.Pans{Left: []int{1}, Right: []int{1}}.Validate(3), coins.ErrBadPans)
	assert.ErrorIs(t, coins.Pans{Left: []int{1}, Right: []int{4}}.Validate(3), coins.ErrCoinOutOfRange)
}

func TestOutcome_Strings(t *testing.T) {
	assert.Equal(t, "+", coins.LeftHeavy.Symbol())
	assert.Equal(t, "=", coins.Balanced.Symbol())
	assert.Equal(t, "-", coins.RightHeavy.Symbol())
	assert.Equal(t, "balanced", coins.Balanced.String())
	assert.False(t, coins.Outcome(3).Valid())
}

// ------------------------------------------------------------------------
// 3. Classification
// ------------------------------------------------------------------------

func TestClassify_UniverseIsTypeA(t *testing.T) {
	s, err := coins.Universe(5)
	require.NoError(t, err)

	cfg, err := coins.Classify(s, 5)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.Double)
	assert.Empty(t, cfg.More)
	assert.Empty(t, cfg.Less)
	assert.Empty(t, cfg.Equal)
	assert.True(t, cfg.AllEqual)
	assert.Equal(t, 11, cfg.Possibilities())

	kind, err := cfg.Kind()
	require.NoError(t, err)
	assert.Equal(t, coins.KindA, kind)
}

func TestClassify_AfterWeighing(t *testing.T) {
	s, err := coins.Universe(12)
	require.NoError(t, err)
	parts := s.Weigh(coins.Pans{Left: []int{1, 2, 3, 4}, Right: []int{5, 6, 7, 8}})

	heavy, err := coins.Classify(parts[coins.LeftHeavy], 12)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, heavy.More)
	assert.Equal(t, []int{5, 6, 7, 8}, heavy.Less)
	assert.Equal(t, []int{9, 10, 11, 12}, heavy.Equal)
	assert.False(t, heavy.AllEqual)
	kind, err := heavy.Kind()
	require.NoError(t, err)
	assert.Equal(t, coins.KindB, kind)
	assert.Equal(t, coins.RoleLess, heavy.Role(6))
	assert.Equal(t, coins.RoleEqual, heavy.Role(10))

	balanced, err := coins.Classify(parts[coins.Balanced], 12)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 10, 11, 12}, balanced.Double)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, balanced.Equal)
	assert.True(t, balanced.AllEqual)
	assert.Equal(t, coins.RoleDouble, balanced.Role(11))
}

func TestClassify_Unreachable(t *testing.T) {
	// A heavy-only coin next to the NoFake hypothesis is neither kind.
	_, err := coins.Classify(coins.NewSet(coins.NoFake, coins.Heavy(1)), 3)
	assert.ErrorIs(t, err, coins.ErrUnreachableConfiguration)

	// A double coin without NoFake is neither kind.
	_, err = coins.Classify(coins.NewSet(coins.Heavy(2), coins.Light(2)), 3)
	assert.ErrorIs(t, err, coins.ErrUnreachableConfiguration)
}

func TestClassify_OutOfRange(t *testing.T) {
	_, err := coins.Classify(coins.NewSet(coins.Heavy(9)), 3)
	assert.ErrorIs(t, err, coins.ErrCoinOutOfRange)
}

func TestConfiguration_SwappedIsPure(t *testing.T) {
	cfg := coins.Configuration{Equal: []int{5}, More: []int{1, 2}, Less: []int{3}}
	sw := cfg.Swapped()

	assert.Equal(t, []int{3}, sw.More)
	assert.Equal(t, []int{1, 2}, sw.Less)
	assert.Equal(t, []int{5}, sw.Equal)

	sw.More[0] = 99
	assert.Equal(t, []int{3}, cfg.Less, "swap must not alias the receiver")
}
