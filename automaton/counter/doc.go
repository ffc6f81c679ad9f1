// Package counter implements the counter automaton (CA) of §4.4: a
// ts.TransitionSystem whose label carries a letter (a conjunction of
// atomic propositions, see PropSet), a per-counter list of counter
// operations, and a set of acceptance-set memberships.
//
// The alphabet is modelled as PropSet rather than a real binary decision
// diagram: spec §1/§6 explicitly places the BDD dictionary for
// atomic-proposition conditions outside this repository's scope (an
// external collaborator's contract, borrowed from a third-party
// LTL/Büchi library), and no BDD package appears anywhere in this
// repository's dependency corpus — see DESIGN.md.
package counter
