package tableau

import (
	"strconv"
	"strings"

	"github.com/spactiongo/cltlsup/formula"
)

// Node is a pseudo-node (§3): an ordered, duplicate-free list of
// subformulas, read as their conjunction. Two pseudo-nodes with the same
// term set are the same Node (hash-consed by the translator, mirroring
// the Factory's own hash-consing of formula terms), so Node pointer
// equality is structural equality and Node is usable directly as the
// state type of a counter.Automaton.
type Node struct {
	terms []formula.Handle // canonical: sorted by formula.Compare, deduplicated
	sig   string
}

func (n *Node) String() string { return n.sig }

// canonicalize sorts and deduplicates handles by f.Compare, returning the
// result together with its signature string (used for hash-consing).
func canonicalize(f *formula.Factory, handles []formula.Handle) ([]formula.Handle, string) {
	cp := append([]formula.Handle(nil), handles...)
	insertionSort(f, cp)

	out := cp[:0:0]
	var sb strings.Builder
	for i, h := range cp {
		if i > 0 && out[len(out)-1] == h {
			continue
		}
		out = append(out, h)
		if len(out) > 1 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(h.ID())))
	}
	return out, sb.String()
}

// insertionSort sorts hs in place by f.Compare. Pseudo-nodes are always
// small (bounded by the closure of the original formula), so a plain
// insertion sort keeps this hot path allocation-free and readable without
// reaching for sort.Slice's closure overhead.
func insertionSort(f *formula.Factory, hs []formula.Handle) {
	for i := 1; i < len(hs); i++ {
		for j := i; j > 0 && f.Compare(hs[j-1], hs[j]) > 0; j-- {
			hs[j-1], hs[j] = hs[j], hs[j-1]
		}
	}
}
