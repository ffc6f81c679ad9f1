package tableau

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spactiongo/cltlsup/automaton/counter"
	"github.com/spactiongo/cltlsup/formula"
)

// translator holds the per-call state of one Translate invocation: the
// node hash-cons table, the memoized epsilon-reduction structure, and the
// pre-scanned counter/acceptance index assignments.
type translator struct {
	factory *formula.Factory
	ops     operatorTables

	nodeIndex map[string]*Node
	epsCache  map[*Node][]epsChild

	log zerolog.Logger
}

func (tr *translator) buildNode(handles []formula.Handle) *Node {
	terms, sig := canonicalize(tr.factory, handles)
	if n, ok := tr.nodeIndex[sig]; ok {
		return n
	}
	n := &Node{terms: terms, sig: sig}
	tr.nodeIndex[sig] = n
	return n
}

// pendingSet returns, among tr.ops.accIndex's operators, those whose term
// occurs (as a live, un-discharged obligation) somewhere in origin's term
// list.
func (tr *translator) pendingSet(origin *Node) map[int]bool {
	pending := make(map[int]bool, len(tr.ops.accIndex))
	for opTerm, idx := range tr.ops.accIndex {
		for _, t := range origin.terms {
			if containsSubterm(tr.factory, t, opTerm) {
				pending[idx] = true
				break
			}
		}
	}
	return pending
}

type accumulated struct {
	ops map[int]counter.CounterOpList
	acc map[int]bool
}

func (a accumulated) withOp(idx int, op counterOp) accumulated {
	next := accumulated{ops: make(map[int]counter.CounterOpList, len(a.ops)+1), acc: a.acc}
	for k, v := range a.ops {
		next.ops[k] = append(counter.CounterOpList(nil), v...)
	}
	var add counter.CounterOpList
	switch op {
	case opReset:
		add = counter.CounterOpList{counter.OpReset}
	case opIncCheck:
		add = counter.CounterOpList{counter.OpIncrement, counter.OpCheck}
	}
	next.ops[idx] = append(next.ops[idx], add...)
	return next
}

func (a accumulated) withAcc(idx int) accumulated {
	next := make(map[int]bool, len(a.acc)+1)
	for k, v := range a.acc {
		next[k] = v
	}
	next[idx] = true
	return accumulated{ops: a.ops, acc: next}
}

// firedTransition is one real (letter-bearing) transition discovered by
// fully exploring an origin's epsilon-closure.
type firedTransition struct {
	letter   counter.PropSet
	ops      map[int]counter.CounterOpList
	acc      map[int]bool
	operands []formula.Handle
}

// exploreOrigin performs the full epsilon-DFS from a consolidated origin
// node, applying the vacuous-satisfaction rule (pendingSet) as a baseline
// over every discovered transition.
func (tr *translator) exploreOrigin(origin *Node) []firedTransition {
	pending := tr.pendingSet(origin)
	var results []firedTransition

	var dfs func(n *Node, acc accumulated)
	dfs = func(n *Node, acc accumulated) {
		children := tr.epsilonChildren(n)
		if children == nil {
			fr := fire(tr.factory, n)
			if fr.dead {
				return
			}
			finalAcc := make(map[int]bool, len(acc.acc))
			for idx := range acc.acc {
				finalAcc[idx] = true
			}
			for idx := range tr.ops.accIndex {
				if !pending[idx] {
					finalAcc[idx] = true
				}
			}
			results = append(results, firedTransition{
				letter:   fr.letter,
				ops:      acc.ops,
				acc:      finalAcc,
				operands: fr.operands,
			})
			return
		}
		for _, c := range children {
			next := acc
			if c.hasOp {
				next = next.withOp(c.counter, c.op)
			}
			if c.hasAccBit {
				next = next.withAcc(c.accBit)
			}
			dfs(c.to, next)
		}
	}
	dfs(origin, accumulated{ops: map[int]counter.CounterOpList{}, acc: map[int]bool{}})
	return results
}

// Translate builds the counter automaton for phi (§4.5). phi need not be
// in NNF; Translate rewrites it internally via formula.ToNNF before
// walking it, so the returned automaton's states carry NNF subformulas.
func Translate(f *formula.Factory, phi formula.Handle, log zerolog.Logger) (*counter.Automaton[*Node], *Node, error) {
	nnf := f.ToNNF(phi)
	ops := scanOperators(f, nnf)
	k := len(ops.counterIndex)
	numAcc := len(ops.accIndex)

	tr := &translator{
		factory:   f,
		ops:       ops,
		nodeIndex: make(map[string]*Node),
		epsCache:  make(map[*Node][]epsChild),
		log:       log,
	}

	printState := func(n *Node) string { return n.sig }
	automaton := counter.New[*Node](k, numAcc, printState)

	root := tr.buildNode([]formula.Handle{nnf})
	if err := automaton.AddState(root); err != nil {
		return nil, nil, err
	}
	if err := automaton.SetInitialState(root); err != nil {
		return nil, nil, err
	}

	consolidated := map[*Node]bool{root: true}
	pending := []*Node{root}

	for len(pending) > 0 {
		origin := pending[0]
		pending = pending[1:]

		results := tr.exploreOrigin(origin)
		seen := map[string]bool{}
		for _, fr := range results {
			successor := tr.buildNode(fr.operands)
			ops := make([]counter.CounterOpList, k)
			for i := range ops {
				ops[i] = fr.ops[i]
			}
			acc := make(counter.AccSet, len(fr.acc))
			for idx := range fr.acc {
				acc[idx] = struct{}{}
			}

			sig := fmt.Sprintf("%s|%v|%s|%s", fr.letter, ops, acc, successor.sig)
			if seen[sig] {
				continue
			}
			seen[sig] = true

			if !consolidated[successor] {
				consolidated[successor] = true
				if err := automaton.AddState(successor); err != nil {
					return nil, nil, err
				}
				pending = append(pending, successor)
			}
			if err := automaton.AddTransition(origin, successor, fr.letter, ops, acc); err != nil {
				return nil, nil, err
			}
		}
	}

	log.Debug().
		Int("states", len(consolidated)).
		Int("counters", k).
		Int("acceptance_sets", numAcc).
		Msg("tableau: translation complete")

	return automaton, root, nil
}
