package sequential

import (
	"github.com/katalvlaran/coinweigh/coins"
)

// Event records one weighing of a decision tree.
type Event struct {
	// Depth is 1 for the first weighing.
	Depth int

	// Path lists the outcomes that lead to this weighing.
	Path []coins.Outcome

	Left  []int
	Right []int

	// Sizes are the outcome-set sizes (heavy, balanced, light).
	Sizes [3]int

	// Labels name the children that are leaves ("" for inner children).
	Labels [3]string
}

// Terminal reports whether at least one child of the weighing is a leaf.
func (e Event) Terminal() bool {
	return e.Labels[0] != "" || e.Labels[1] != "" || e.Labels[2] != ""
}

// Trace flattens the decision tree into weighing events in pre-order,
// children in canonical order (heavy, balanced, light).
func (r Result) Trace() []Event {
	if r.Root == nil {
		return nil
	}
	var events []Event
	r.Root.Walk(func(path []coins.Outcome, node *Node) bool {
		if node.Leaf() {
			return false
		}
		ev := Event{
			Depth: len(path) + 1,
			Path:  append([]coins.Outcome(nil), path...),
			Left:  append([]int(nil), node.Pans.Left...),
			Right: append([]int(nil), node.Pans.Right...),
			Sizes: node.Sizes,
		}
		for _, o := range coins.Outcomes {
			ev.Labels[o] = node.Children[o].Label()
		}
		events = append(events, ev)
		return true
	})

	return events
}
