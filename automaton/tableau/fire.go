package tableau

import (
	"fmt"

	"github.com/spactiongo/cltlsup/automaton/counter"
	"github.com/spactiongo/cltlsup/formula"
)

// fireResult splits a fire-ready pseudo-node (§4.5 step 2) into its
// proposition letter and the operands of every X it holds; dead reports
// whether the node requires the constant false and must be dropped.
type fireResult struct {
	letter   counter.PropSet
	operands []formula.Handle
	dead     bool
}

func fire(f *formula.Factory, n *Node) fireResult {
	letter := counter.PropSet{}
	var operands []formula.Handle
	dead := false

	for _, t := range n.terms {
		switch f.Kind(t) {
		case formula.KindConstant:
			if !f.BoolValue(t) {
				dead = true
			}
		case formula.KindAtomic:
			name := f.Name(t)
			if existing, ok := letter[name]; ok && existing != true {
				dead = true
			}
			letter[name] = true
		case formula.KindUnary:
			switch f.UnaryOp(t) {
			case formula.OpNext:
				operands = append(operands, f.Child(t))
			case formula.OpNot:
				child := f.Child(t)
				switch f.Kind(child) {
				case formula.KindAtomic:
					name := f.Name(child)
					if existing, ok := letter[name]; ok && existing != false {
						dead = true
					}
					letter[name] = false
				case formula.KindConstant:
					if f.BoolValue(child) {
						dead = true
					}
				default:
					panic(fmt.Errorf("%w: Not(%v) at fire time", ErrUnexpectedKind, f.Kind(child)))
				}
			}
		default:
			panic(fmt.Errorf("%w: %v", ErrUnexpectedKind, f.Kind(t)))
		}
	}
	return fireResult{letter: letter, operands: operands, dead: dead}
}
