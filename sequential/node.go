package sequential

import (
	"fmt"

	"github.com/katalvlaran/coinweigh/coins"
)

// Node is one step of a decision tree.
//
// An inner node holds the weighing to perform, the sizes of the three
// outcome sets and one child per outcome (indexed by coins.Outcome).
// A leaf holds the surviving hypothesis set, of size 0 or 1.
type Node struct {
	Pans     coins.Pans
	Sizes    [3]int
	Children [3]*Node

	// Survivors is set on leaves only.
	Survivors coins.Set

	// Height is the number of weighings still needed below this node in
	// the worst case (0 for leaves).
	Height int
}

// Leaf reports whether n ends a branch.
func (n *Node) Leaf() bool { return n.Children[coins.LeftHeavy] == nil }

// Label names the leaf's hypothesis ("3+", "3-", "==" or "--").
// Inner nodes have an empty label.
func (n *Node) Label() string {
	if !n.Leaf() {
		return ""
	}
	return n.Survivors.Label()
}

// Follow walks the tree along outcomes and returns the node reached.
// Stopping early at an inner node is allowed.
func (n *Node) Follow(outcomes ...coins.Outcome) (*Node, error) {
	cur := n
	for i, o := range outcomes {
		if !o.Valid() {
			return nil, fmt.Errorf("%w: %d at step %d", ErrBadOutcome, int(o), i+1)
		}
		if cur.Leaf() {
			return nil, fmt.Errorf("%w: %d outcomes for a path of %d weighings", ErrPastLeaf, len(outcomes), i)
		}
		cur = cur.Children[o]
	}

	return cur, nil
}

// Identify plays the hypothesis h against the tree: at each node it
// computes the outcome h would produce and descends. It returns the
// hypothesis named by the leaf and the number of weighings used.
//
// For a correct tree the returned hypothesis equals h.
func (n *Node) Identify(h coins.Hypothesis) (coins.Hypothesis, int, error) {
	var (
		cur   = n
		steps int
	)
	for !cur.Leaf() {
		cur = cur.Children[cur.Pans.Outcome(h)]
		steps++
	}
	if cur.Survivors.Len() != 1 {
		return 0, steps, fmt.Errorf("%w: leaf %q reached by %s", ErrImpossibleOutcome, cur.Label(), h)
	}

	return cur.Survivors.At(0), steps, nil
}

// Walk visits n and its descendants in pre-order, children in canonical
// order. path holds the outcomes leading from n to the visited node and
// is only valid during the call. Returning false skips the node's subtree.
func (n *Node) Walk(fn func(path []coins.Outcome, node *Node) bool) {
	n.walk(nil, fn)
}

func (n *Node) walk(path []coins.Outcome, fn func([]coins.Outcome, *Node) bool) {
	if !fn(path, n) || n.Leaf() {
		return
	}
	for _, o := range coins.Outcomes {
		n.Children[o].walk(append(path, o), fn)
	}
}

// Weighings counts the inner nodes of the tree.
func (n *Node) Weighings() int {
	count := 0
	n.Walk(func(_ []coins.Outcome, node *Node) bool {
		if !node.Leaf() {
			count++
		}
		return true
	})
	return count
}
