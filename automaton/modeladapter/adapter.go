package modeladapter

import "github.com/spactiongo/cltlsup/automaton/counter"

// Wrap materialises ext into a *counter.Automaton[S] with zero counters,
// by breadth-first exploration from ext's initial state. ok is false if
// ext has no initial state (the resulting automaton is still returned,
// empty, so callers that only need NumAcceptanceSets can still use it).
func Wrap[S comparable](ext ExternalAutomaton[S]) (ca *counter.Automaton[S], ok bool) {
	ca = counter.New[S](0, ext.NumAcceptanceSets(), ext.PrintState)

	init, hasInit := ext.InitState()
	if !hasInit {
		return ca, false
	}

	visited := map[S]bool{init: true}
	_ = ca.AddState(init)
	_ = ca.SetInitialState(init)

	queue := []S{init}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, tr := range ext.SuccIter(s) {
			if !visited[tr.To] {
				visited[tr.To] = true
				_ = ca.AddState(tr.To)
				queue = append(queue, tr.To)
			}
			// Zero counters: every transition carries an empty ops
			// vector, one element per counter (none).
			_ = ca.AddTransition(s, tr.To, tr.Letter, []counter.CounterOpList{}, tr.Acc)
		}
	}
	return ca, true
}
