package ternary

import "errors"

// Sentinel errors returned by the ternary package.
var (
	// ErrTooFewCoins indicates fewer than three coins.
	ErrTooFewCoins = errors.New("ternary: at least 3 coins are required")

	// ErrBadWeighings indicates a weighing count below 2.
	ErrBadWeighings = errors.New("ternary: at least 2 weighings are required")

	// ErrCodeSearchExhausted indicates that no table could be built.
	ErrCodeSearchExhausted = errors.New("ternary: code search exhausted")

	// ErrInvalidCode indicates a malformed table, for instance two coins
	// sharing a code or a complement.
	ErrInvalidCode = errors.New("ternary: invalid code table")

	// ErrUnbalancedRound indicates a round with unequal or empty pans.
	ErrUnbalancedRound = errors.New("ternary: unbalanced round")

	// ErrInconsistentOutcome indicates an outcome pattern no hypothesis produces.
	ErrInconsistentOutcome = errors.New("ternary: inconsistent outcomes")

	// ErrCoinOutOfRange indicates a coin index outside 1..n.
	ErrCoinOutOfRange = errors.New("ternary: coin out of range")
)
