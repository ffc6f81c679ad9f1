// Package instantiate maps a CLTL formula to a pure LTL formula by
// unrolling its cost operator at a fixed natural-number degree n, per
// §4.2 of the specification. Two variants exist:
//
//   - Inf, for CLTL[≤] formulas (containing only UN), refusing RN with
//     ErrDomain;
//   - Sup, for CLTL[>] formulas (containing only RN), refusing UN with
//     ErrDomain.
//
// Both are implemented against the same formula.Factory the caller's
// formulas were minted from — this is the "factory-aware" instantiator
// hierarchy; spec §9 names it as canonical over a second, self-contained
// hierarchy, which this package does not implement.
package instantiate
