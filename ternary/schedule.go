package ternary

import (
	"fmt"

	"github.com/katalvlaran/coinweigh/coins"
)

// Schedule expands the table into its weighings, first round first. Round
// i reads digit Weighings-1-i of every code: coins with digit 1 go left,
// coins with digit 2 go right.
//
// It returns ErrUnbalancedRound when a round's pans differ in size or are
// empty.
func (t Table) Schedule() ([]coins.Pans, error) {
	rounds := make([]coins.Pans, t.Weighings)
	for i := range rounds {
		pos := t.Weighings - 1 - i
		for c, code := range t.Codes {
			switch Digit(code, pos) {
			case 1:
				rounds[i].Left = append(rounds[i].Left, c+1)
			case 2:
				rounds[i].Right = append(rounds[i].Right, c+1)
			}
		}
		if len(rounds[i].Left) != len(rounds[i].Right) || rounds[i].Empty() {
			return nil, fmt.Errorf("%w: round %d has %d coins left and %d right",
				ErrUnbalancedRound, i+1, len(rounds[i].Left), len(rounds[i].Right))
		}
	}

	return rounds, nil
}

// Outcomes returns the outcome of every round under hypothesis h.
func (t Table) Outcomes(h coins.Hypothesis) ([]coins.Outcome, error) {
	if c := h.Coin(); c > t.Coins {
		return nil, fmt.Errorf("%w: hypothesis %s with n=%d", ErrCoinOutOfRange, h, t.Coins)
	}
	rounds, err := t.Schedule()
	if err != nil {
		return nil, err
	}

	out := make([]coins.Outcome, len(rounds))
	for i, p := range rounds {
		out[i] = p.Outcome(h)
	}
	return out, nil
}

// Decode names the hypothesis behind a full sequence of outcomes, first
// round first: a heavy code identifies a heavy coin, a light code a light
// coin and an all-balanced sequence means no fake.
//
// Errors: ErrInconsistentOutcome when the sequence is malformed or matches
// no coin.
func (t Table) Decode(outcomes []coins.Outcome) (coins.Hypothesis, error) {
	if len(outcomes) != t.Weighings {
		return 0, fmt.Errorf("%w: %d outcomes for %d weighings", ErrInconsistentOutcome, len(outcomes), t.Weighings)
	}

	code := 0
	for i, o := range outcomes {
		code *= 3
		switch o {
		case coins.LeftHeavy:
			code++
		case coins.Balanced:
		case coins.RightHeavy:
			code += 2
		default:
			return 0, fmt.Errorf("%w: outcome %d in round %d", ErrInconsistentOutcome, int(o), i+1)
		}
	}
	if code == 0 {
		return coins.NoFake, nil
	}

	light := Complement(code)
	for i, c := range t.Codes {
		switch c {
		case code:
			return coins.Heavy(i + 1), nil
		case light:
			return coins.Light(i + 1), nil
		}
	}

	return 0, fmt.Errorf("%w: pattern %v matches no coin", ErrInconsistentOutcome, Digits(code, t.Weighings))
}
