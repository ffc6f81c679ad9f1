package supremum

import (
	"github.com/rs/zerolog"

	"github.com/spactiongo/cltlsup/automaton/config"
	"github.com/spactiongo/cltlsup/automaton/counter"
	internalconfig "github.com/spactiongo/cltlsup/internal/config"
)

// rootEntry is one open SCC candidate on the root stack (§4.7): idx is
// the smallest visit index folded into it so far, acc the union of
// every acceptance mark collected from merged-away descendants and their
// tree edges, and rem every original configuration signature absorbed
// into it — kept only under RemovalPoprem, where it lets backtracking
// mark a closed SCC's members dead in one pass without a second graph
// walk.
type rootEntry struct {
	idx int
	acc counter.AccSet
	rem []string
}

// searcher holds the DFS state shared by one FindSupremum/FindInfimum
// call. better(a, b) reports whether candidate value a strictly improves
// on the current best b — a > b for supremum, a < b for infimum — which
// is the only place the two searches differ.
type searcher[Q comparable] struct {
	cfg      *config.Automaton[Q]
	bound    int
	hasBound bool
	removal  internalconfig.RemovalStrategy
	better   func(a, b int) bool
	// maximizing selects which direction the new-successor shortcut
	// below is sound for: true for FindSupremum, false for FindInfimum.
	maximizing bool
	numAcc     int
	log        zerolog.Logger

	hIndex  map[string]int
	nextIdx int
	root    []rootEntry
	arc     []counter.AccSet

	haveBest bool
	best     int
}

// FindSupremum computes max{v(run) : run accepting} over the
// configuration automaton reachable from cfg's default configuration,
// per §4.7.
func FindSupremum[Q comparable](cfg *config.Automaton[Q], opt *internalconfig.Config, log zerolog.Logger) (Result, error) {
	return search(cfg, opt, log, true, func(a, b int) bool { return a > b })
}

// FindInfimum computes min{v(run) : run accepting} over the same search,
// sharing every step with FindSupremum except the better comparator
// (spec §9's noted symmetric TODO; see DESIGN.md).
func FindInfimum[Q comparable](cfg *config.Automaton[Q], opt *internalconfig.Config, log zerolog.Logger) (Result, error) {
	return search(cfg, opt, log, false, func(a, b int) bool { return a < b })
}

func search[Q comparable](cfg *config.Automaton[Q], opt *internalconfig.Config, log zerolog.Logger, maximizing bool, better func(a, b int) bool) (Result, error) {
	start, ok := cfg.DefaultConfig()
	if !ok {
		return Result{}, ErrNoInitialState
	}

	s := &searcher[Q]{
		cfg:      cfg,
		bound:    opt.Bound,
		// A non-positive bound (zero or negative) disables the
		// short-circuit entirely, so a cutoff of zero cannot be
		// expressed: with k=1, "bound < k" has no bound value that
		// triggers it.
		hasBound:   opt.Bound > 0,
		removal:    opt.Removal,
		better:     better,
		maximizing: maximizing,
		numAcc:     cfg.NumAcceptanceSets(),
		log:        log,
		hIndex:     make(map[string]int),
		nextIdx:    1,
	}

	if s.dfs(start, counter.AccSet{}) {
		log.Debug().Msg("supremum: accepting SCC unbounded or over bound")
		return Infinite(), nil
	}
	if !s.haveBest {
		// No accepting SCC is reachable at all. The literal "SUP
		// correctness" invariant of §8 reads as {false, 0} here, but the
		// end-to-end scenario text for an eventuality that never fires
		// (G(a -> F b) with b always false) is explicit that SUP returns
		// {true}. The concrete scenario is taken as authoritative; see
		// DESIGN.md. FindInfimum applies the same convention by symmetry:
		// an empty accepting set has no finite witness in either
		// direction.
		log.Debug().Msg("supremum: no accepting SCC reachable")
		return Infinite(), nil
	}
	log.Debug().Int("value", s.best).Msg("supremum: search complete")
	return Finite(s.best), nil
}

func (s *searcher[Q]) sig(c config.Config[Q]) string { return s.cfg.PrintState(c) }

// dfs explores c, reached via the tree edge carrying edgeAcc, and
// reports whether an accepting SCC forcing an immediate {infinite}
// result was found anywhere in its subtree.
func (s *searcher[Q]) dfs(c config.Config[Q], edgeAcc counter.AccSet) bool {
	sig := s.sig(c)
	idx := s.nextIdx
	s.nextIdx++
	s.hIndex[sig] = idx
	s.root = append(s.root, rootEntry{idx: idx, acc: counter.AccSet{}, rem: []string{sig}})
	s.arc = append(s.arc, edgeAcc)

	for _, tr := range s.cfg.Successors(c) {
		d := tr.To
		dsig := s.sig(d)

		if hv, seen := s.hIndex[dsig]; seen {
			if hv == -1 {
				continue // dead: already fully explored, cannot improve anything
			}
			if s.merge(hv, tr.Acc) {
				v, bounded := d.Value.V, d.Value.Bounded
				if !bounded || (s.hasBound && v > s.bound) {
					return true
				}
				if !s.haveBest || s.better(v, s.best) {
					s.haveBest, s.best = true, v
				}
			}
			continue
		}

		// Shortcut (§4.7): values are monotonically non-increasing along
		// transitions out of a bounded configuration (§3/§4.6), so every
		// descendant of d is bounded by d.v. That only lets us discard d
		// when a lower value can no longer help — true for the
		// maximizing (supremum) search, where skipping d with
		// d.v <= best is sound because nothing below d can exceed d.v
		// either. For the minimizing (infimum) search the same
		// monotonicity means d's descendants can still fall strictly
		// below the current best even though d.v itself cannot improve
		// on it, so the shortcut would discard a potentially better
		// witness; it is therefore only applied when maximizing.
		if s.maximizing && d.Value.Bounded && s.haveBest && !s.better(d.Value.V, s.best) {
			continue
		}
		if s.dfs(d, tr.Acc) {
			return true
		}
	}

	top := s.root[len(s.root)-1]
	if top.idx == idx {
		s.root = s.root[:len(s.root)-1]
		s.arc = s.arc[:len(s.arc)-1]
		s.markDead(c, top)
	}
	return false
}

// merge folds every root/arc entry above index hv into the surviving
// entry at hv, per §4.7's "walk root and arc popping until top-of-root
// index <= H[d]". Returns whether the surviving entry's accumulated
// acceptance now equals the full set {0 .. numAcc-1}.
func (s *searcher[Q]) merge(hv int, edgeAcc counter.AccSet) bool {
	merged := counter.AccSet{}
	var rem []string
	for len(s.root) > 0 && s.root[len(s.root)-1].idx > hv {
		top := len(s.root) - 1
		popped := s.root[top]
		poppedArc := s.arc[top]
		s.root = s.root[:top]
		s.arc = s.arc[:top]
		merged = merged.Union(popped.acc).Union(poppedArc)
		rem = append(rem, popped.rem...)
	}
	merged = merged.Union(edgeAcc)
	if len(s.root) == 0 {
		panic("supremum: merge underflow — invariant violation")
	}
	top := len(s.root) - 1
	entry := s.root[top]
	entry.acc = entry.acc.Union(merged)
	if s.removal == internalconfig.RemovalPoprem {
		entry.rem = append(entry.rem, rem...)
	}
	s.root[top] = entry
	return len(entry.acc) == s.numAcc
}

// markDead retires a fully-closed SCC rooted at c. Under RemovalPoprem
// it uses the incrementally-maintained rem list (O(1) per member, no
// second traversal). Under RemovalNone it instead walks forward from c
// over still-open configurations — the set reachable from c that has
// not yet been marked dead is exactly this SCC's membership, since any
// other still-open entry is an ancestor, not a descendant, of c.
func (s *searcher[Q]) markDead(c config.Config[Q], closed rootEntry) {
	switch s.removal {
	case internalconfig.RemovalNone:
		s.walkDead(c)
	default:
		for _, m := range closed.rem {
			s.hIndex[m] = -1
		}
	}
}

func (s *searcher[Q]) walkDead(c config.Config[Q]) {
	sig := s.sig(c)
	if hv, seen := s.hIndex[sig]; !seen || hv == -1 {
		return
	}
	s.hIndex[sig] = -1
	for _, tr := range s.cfg.Successors(c) {
		s.walkDead(tr.To)
	}
}
