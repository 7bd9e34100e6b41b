package coins

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the coins package.
var (
	// ErrNoCoins indicates a universe was requested for fewer than one coin.
	ErrNoCoins = errors.New("coins: at least one coin is required")

	// ErrCoinOutOfRange indicates a coin index outside 1..n.
	ErrCoinOutOfRange = errors.New("coins: coin index out of range")

	// ErrUnreachableConfiguration indicates that a set classified into neither
	// KindA nor KindB. Valid play never produces such a set.
	ErrUnreachableConfiguration = errors.New("coins: configuration is neither type A nor type B")

	// ErrBadPans indicates pans of unequal size, repeated coins or a coin on both pans.
	ErrBadPans = errors.New("coins: invalid pan assignment")
)

// Outcome is the result of one weighing, seen from the left pan.
// The numeric order is the canonical branch order used everywhere:
// heavy branch, balanced branch, light branch.
type Outcome int

const (
	// LeftHeavy means the left pan went down.
	LeftHeavy Outcome = iota
	// Balanced means the pans stayed level.
	Balanced
	// RightHeavy means the right pan went down.
	RightHeavy
)

// Outcomes lists all outcomes in canonical order.
var Outcomes = [3]Outcome{LeftHeavy, Balanced, RightHeavy}

// Valid reports whether o is one of the three outcomes.
func (o Outcome) Valid() bool { return o >= LeftHeavy && o <= RightHeavy }

// Symbol returns "+", "=" or "-".
func (o Outcome) Symbol() string {
	switch o {
	case LeftHeavy:
		return "+"
	case Balanced:
		return "="
	case RightHeavy:
		return "-"
	default:
		return "?"
	}
}

func (o Outcome) String() string {
	switch o {
	case LeftHeavy:
		return "left-heavy"
	case Balanced:
		return "balanced"
	case RightHeavy:
		return "right-heavy"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Hypothesis is a signed coin index: 0 for "no fake coin", +k for
// "coin k is heavy", -k for "coin k is light".
type Hypothesis int

// NoFake is the hypothesis that all coins are genuine.
const NoFake Hypothesis = 0

// Heavy returns the hypothesis "coin is fake and heavy".
func Heavy(coin int) Hypothesis { return Hypothesis(coin) }

// Light returns the hypothesis "coin is fake and light".
func Light(coin int) Hypothesis { return Hypothesis(-coin) }

// Coin returns the coin index of h, or 0 for NoFake.
func (h Hypothesis) Coin() int {
	if h < 0 {
		return int(-h)
	}
	return int(h)
}

// IsHeavy reports whether h names a heavy coin.
func (h Hypothesis) IsHeavy() bool { return h > 0 }

// IsLight reports whether h names a light coin.
func (h Hypothesis) IsLight() bool { return h < 0 }

// String renders h the way decision-tree leaves are labelled:
// "==" for NoFake, "3+" for a heavy coin 3 and "3-" for a light one.
func (h Hypothesis) String() string {
	switch {
	case h > 0:
		return fmt.Sprintf("%d+", int(h))
	case h < 0:
		return fmt.Sprintf("%d-", int(-h))
	default:
		return "=="
	}
}

// Role is the classification of one coin relative to a Set.
type Role int

const (
	// RoleEqual coins are genuine in every surviving hypothesis.
	RoleEqual Role = iota
	// RoleMore coins may be heavy but not light.
	RoleMore
	// RoleLess coins may be light but not heavy.
	RoleLess
	// RoleDouble coins may be heavy or light.
	RoleDouble
)

func (r Role) String() string {
	switch r {
	case RoleEqual:
		return "equal"
	case RoleMore:
		return "more"
	case RoleLess:
		return "less"
	case RoleDouble:
		return "double"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Kind is the shape of a Configuration.
type Kind int

const (
	// KindA: only Double and Equal coins, and NoFake survives.
	KindA Kind = iota + 1
	// KindB: no Double coins, and NoFake is ruled out.
	KindB
)

func (k Kind) String() string {
	switch k {
	case KindA:
		return "A"
	case KindB:
		return "B"
	default:
		return "?"
	}
}
