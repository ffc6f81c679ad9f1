package instantiate

import "github.com/spactiongo/cltlsup/formula"

// Inf instantiates h at degree n under the CLTL[≤] (inf) semantics:
// u ⊨ Inf(f, h, n) ⇔ (u, n) ⊨ h. It fails with ErrDomain if h contains
// RN anywhere. n must be >= 0; a negative n is a caller contract
// violation (it panics, it does not return an error).
//
// Rewrite rules (§4.2), where ε is this function:
//
//	ε(a U b, n)      = ε(a,n) U ε(b,n)
//	ε(a UN b, 0)     = ε(a,0) U ε(b,0)
//	ε(a UN b, n>0)   = (ε(a,n) || X(ε(a UN b, n-1))) U ε(b,n)
//
// other operators commute with the variant transparently.
func Inf(f *formula.Factory, h formula.Handle, n int) (formula.Handle, error) {
	if n < 0 {
		panic("instantiate: n must be non-negative")
	}
	if !f.IsInfLTL(h) {
		return formula.Handle{}, ErrDomain
	}
	return epsInf(f, h, n), nil
}

func epsInf(f *formula.Factory, h formula.Handle, n int) formula.Handle {
	switch f.Kind(h) {
	case formula.KindAtomic, formula.KindConstant:
		return h
	case formula.KindUnary:
		child := epsInf(f, f.Child(h), n)
		if f.UnaryOp(h) == formula.OpNext {
			return f.Next(child)
		}
		return f.Not(child)
	case formula.KindBinary:
		l, r := f.Left(h), f.Right(h)
		switch f.BinOp(h) {
		case formula.OpUntil:
			return f.Until(epsInf(f, l, n), epsInf(f, r, n))
		case formula.OpRelease:
			return f.Release(epsInf(f, l, n), epsInf(f, r, n))
		case formula.OpCostUntil:
			if n == 0 {
				return f.Until(epsInf(f, l, 0), epsInf(f, r, 0))
			}
			postponed := f.Next(epsInf(f, h, n-1))
			left := f.OrAll([]formula.Handle{epsInf(f, l, n), postponed})
			return f.Until(left, epsInf(f, r, n))
		default:
			panic("instantiate: Inf encountered RN despite domain check")
		}
	case formula.KindMult:
		children := f.Children(h)
		out := make([]formula.Handle, len(children))
		for i, c := range children {
			out[i] = epsInf(f, c, n)
		}
		return f.MultAll(f.MultOp(h), out)
	default:
		panic("instantiate: epsInf: unknown kind")
	}
}

// Sup instantiates h at degree n under the CLTL[>] (sup) semantics. It
// fails with ErrDomain if h contains UN anywhere.
//
// Rewrite rules (§4.2):
//
//	σ(a RN b, 0)   = σ(a,0) R σ(b,0)
//	σ(a RN b, n>0) = (σ(a,n) && X(σ(a RN b, n-1))) R σ(b,n)
func Sup(f *formula.Factory, h formula.Handle, n int) (formula.Handle, error) {
	if n < 0 {
		panic("instantiate: n must be non-negative")
	}
	if !f.IsSupLTL(h) {
		return formula.Handle{}, ErrDomain
	}
	return epsSup(f, h, n), nil
}

func epsSup(f *formula.Factory, h formula.Handle, n int) formula.Handle {
	switch f.Kind(h) {
	case formula.KindAtomic, formula.KindConstant:
		return h
	case formula.KindUnary:
		child := epsSup(f, f.Child(h), n)
		if f.UnaryOp(h) == formula.OpNext {
			return f.Next(child)
		}
		return f.Not(child)
	case formula.KindBinary:
		l, r := f.Left(h), f.Right(h)
		switch f.BinOp(h) {
		case formula.OpUntil:
			return f.Until(epsSup(f, l, n), epsSup(f, r, n))
		case formula.OpRelease:
			return f.Release(epsSup(f, l, n), epsSup(f, r, n))
		case formula.OpCostRelease:
			if n == 0 {
				return f.Release(epsSup(f, l, 0), epsSup(f, r, 0))
			}
			postponed := f.Next(epsSup(f, h, n-1))
			left := f.AndAll([]formula.Handle{epsSup(f, l, n), postponed})
			return f.Release(left, epsSup(f, r, n))
		default:
			panic("instantiate: Sup encountered UN despite domain check")
		}
	case formula.KindMult:
		children := f.Children(h)
		out := make([]formula.Handle, len(children))
		for i, c := range children {
			out[i] = epsSup(f, c, n)
		}
		return f.MultAll(f.MultOp(h), out)
	default:
		panic("instantiate: epsSup: unknown kind")
	}
}
