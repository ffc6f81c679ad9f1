package formula

import (
	"strconv"
	"strings"
)

// String renders h as a CLTL concrete-syntax string (§6), fully
// parenthesised so the result round-trips unambiguously through the
// parser package.
func (f *Factory) String(h Handle) string {
	var sb strings.Builder
	f.writeString(&sb, h)
	return sb.String()
}

func (f *Factory) writeString(sb *strings.Builder, h Handle) {
	t := f.Get(h)
	switch t.kind {
	case KindAtomic:
		sb.WriteString(t.name)
	case KindConstant:
		sb.WriteString(strconv.FormatBool(t.boolean))
	case KindUnary:
		sb.WriteString(t.unaryOp.String())
		sb.WriteByte('(')
		f.writeString(sb, t.child)
		sb.WriteByte(')')
	case KindBinary:
		sb.WriteByte('(')
		f.writeString(sb, t.left)
		sb.WriteByte(' ')
		sb.WriteString(t.binaryOp.String())
		sb.WriteByte(' ')
		f.writeString(sb, t.right)
		sb.WriteByte(')')
	case KindMult:
		sb.WriteByte('(')
		for i, c := range t.children {
			if i > 0 {
				sb.WriteByte(' ')
				sb.WriteString(t.multOp.String())
				sb.WriteByte(' ')
			}
			f.writeString(sb, c)
		}
		sb.WriteByte(')')
	default:
		panic("formula: writeString: unknown kind")
	}
}

// StripCost returns h unchanged if it contains no cost operator (UN/RN),
// and otherwise fails with ErrUnsupportedCostOperator — the contract
// spec §4.1 names for exporting a cost formula to an external,
// cost-agnostic LTL representation.
func (f *Factory) StripCost(h Handle) (Handle, error) {
	if !f.IsInfLTL(h) || !f.IsSupLTL(h) {
		return Handle{}, ErrUnsupportedCostOperator
	}
	return h, nil
}
