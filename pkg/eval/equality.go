package eval

import "github.com/leinonen/go-scheme/pkg/types"

// eqv reports structural equality between two values of the same
// variant, without any cross-type coercion. Pairs and lists recurse.
func eqv(a, b types.Value) bool {
	switch av := a.(type) {
	case types.Atom:
		bv, ok := b.(types.Atom)
		return ok && av == bv
	case types.Number:
		bv, ok := b.(types.Number)
		return ok && av.Int.Cmp(bv.Int) == 0
	case types.String:
		bv, ok := b.(types.String)
		return ok && av == bv
	case types.Bool:
		bv, ok := b.(types.Bool)
		return ok && av == bv
	case *types.List:
		bv, ok := b.(*types.List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !eqv(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *types.DottedList:
		bv, ok := b.(*types.DottedList)
		if !ok || len(av.Head) != len(bv.Head) {
			return false
		}
		for i := range av.Head {
			if !eqv(av.Head[i], bv.Head[i]) {
				return false
			}
		}
		return eqv(av.Tail, bv.Tail)
	case *types.Port:
		bv, ok := b.(*types.Port)
		return ok && av == bv
	case *types.Func:
		bv, ok := b.(*types.Func)
		return ok && av == bv
	default:
		return false
	}
}

// equalValues implements `equal?`: try eqv? first, then fall back to
// cross-type coercion — true if any of unpackNum/unpackStr/unpackBool
// succeeds on both sides and yields equal values. TypeMismatch from a
// failed coercion attempt is swallowed here and treated as "not equal";
// this is the only local error recovery point in the evaluator.
func equalValues(a, b types.Value) bool {
	if eqv(a, b) {
		return true
	}
	if an, err := unpackNum(a); err == nil {
		if bn, err := unpackNum(b); err == nil {
			return an.Cmp(bn) == 0
		}
	}
	if as, err := unpackStr(a); err == nil {
		if bs, err := unpackStr(b); err == nil {
			return as == bs
		}
	}
	if ab, err := unpackBool(a); err == nil {
		if bb, err := unpackBool(b); err == nil {
			return ab == bb
		}
	}
	return false
}
