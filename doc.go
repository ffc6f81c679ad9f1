// Package cltlsup (module github.com/spactiongo/cltlsup) computes the
// supremum of cost-annotated accepting runs of a CLTL formula composed
// with an external Büchi model.
//
// 🚀 What is cltlsup?
//
//	A small verification back-end that turns a Cost Linear Temporal
//	Logic formula into a counter automaton, composes it with a model,
//	and runs an on-the-fly SCC search over the lifted configuration
//	space to find the worst (or best) cost an accepting run can incur.
//
// Under the hood, everything is organized under a handful of
// subpackages:
//
//	formula/             — hash-consed CLTL term factory, NNF/DNF, printing
//	instantiate/         — Inf/Sup rewriting of UN/RN at a fixed degree n
//	automaton/ts/        — generic transition-system abstraction
//	automaton/counter/   — finite counter automaton + product
//	automaton/tableau/   — CLTL-to-counter-automaton translation
//	automaton/config/    — on-the-fly configuration automaton
//	automaton/supremum/  — Couvreur-style supremum/infimum search
//	automaton/modeladapter/ — wraps an external Büchi automaton
//	automaton/dot/       — GraphViz export of a counter automaton
//	parser/              — concrete CLTL syntax (participle grammar)
//	cmd/cltlsup/         — command-line front-end
//
// See SPEC_FULL.md for the full module contract and DESIGN.md for how
// each piece is grounded in prior art.
package cltlsup
