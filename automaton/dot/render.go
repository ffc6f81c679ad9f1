package dot

import (
	"fmt"
	"io"

	"github.com/spactiongo/cltlsup/automaton/counter"
)

// Render writes ca to w as a Graphviz digraph: one `<id> [label="..."];`
// line per state and one `<src> -> <dst> [label="..."];` line per
// transition, node IDs assigned in breadth-first visit order from ca's
// initial state. Returns an error only if writing to w fails.
//
// States unreachable from the initial state are omitted — DOT export
// exists to inspect what SUP will actually traverse, and unreachable
// states never participate in that traversal.
func Render[Q comparable](ca *counter.Automaton[Q], w io.Writer) error {
	order, ids := visitOrder(ca)

	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	return renderBody(ca, w, order, ids)
}

func visitOrder[Q comparable](ca *counter.Automaton[Q]) ([]Q, map[Q]int) {
	ids := make(map[Q]int)
	var order []Q

	init, ok := ca.InitialState()
	if !ok {
		return order, ids
	}
	queue := []Q{init}
	ids[init] = 0
	order = append(order, init)

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, tr := range ca.Successors(q) {
			if _, seen := ids[tr.To]; !seen {
				ids[tr.To] = len(order)
				order = append(order, tr.To)
				queue = append(queue, tr.To)
			}
		}
	}
	return order, ids
}

func renderBody[Q comparable](ca *counter.Automaton[Q], w io.Writer, order []Q, ids map[Q]int) error {
	for _, q := range order {
		if _, err := fmt.Fprintf(w, "  %d [label=%q];\n", ids[q], ca.PrintState(q)); err != nil {
			return err
		}
	}
	for _, q := range order {
		for _, tr := range ca.Successors(q) {
			dstID, ok := ids[tr.To]
			if !ok {
				continue // destination unreachable from init; cannot happen for a tr we just iterated
			}
			if _, err := fmt.Fprintf(w, "  %d -> %d [label=%q];\n", ids[q], dstID, edgeLabel(tr.Label)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

// edgeLabel renders a transition's letter, decorated with its counter
// operations and acceptance marks only when either is non-empty — the
// common cost-free, acceptance-free case renders as the bare letter.
func edgeLabel(l counter.Label) string {
	label := l.Letter.String()
	if hasOps(l.Ops) {
		label += " " + opsString(l.Ops)
	}
	if len(l.Acc) > 0 {
		label += " " + l.Acc.String()
	}
	return label
}

func hasOps(ops []counter.CounterOpList) bool {
	for _, list := range ops {
		if len(list) > 0 {
			return true
		}
	}
	return false
}

func opsString(ops []counter.CounterOpList) string {
	out := "["
	for i, list := range ops {
		if i > 0 {
			out += ","
		}
		out += "("
		for j, op := range list {
			if j > 0 {
				out += " "
			}
			out += op.String()
		}
		out += ")"
	}
	return out + "]"
}
