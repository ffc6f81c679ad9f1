// Package supremum implements the Couvreur-style on-the-fly SCC search of
// §4.7: a single depth-first traversal of the configuration automaton
// that decides whether any accepting strongly connected component is
// reachable, and if so, returns the best (maximum, for FindSupremum; or
// minimum, for FindInfimum) candidate value found among accepting runs.
//
// The traversal never materialises CFG's (potentially unbounded) state
// space: it drives automaton/config's DefaultConfig/Successors cursor
// pair directly, keeping only the root/arc dual-stack state the
// algorithm needs to stay open.
//
// FindSupremum and FindInfimum share one core, search, parameterised by
// a better(a, b int) bool comparator (true when a strictly improves on
// b) — grounded in spec §9's noted symmetric TODO for an infimum finder.
package supremum
