package eval

import (
	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

// numericComparison builds a strictly-binary numeric comparison
// primitive; any other arity signals NumArgs(2, …).
func numericComparison(cmp func(c int) bool) func(args []types.Value) (types.Value, error) {
	return func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, schemerr.NewNumArgs(2, args)
		}
		a, err := unpackNum(args[0])
		if err != nil {
			return nil, err
		}
		b, err := unpackNum(args[1])
		if err != nil {
			return nil, err
		}
		return types.Bool(cmp(a.Cmp(b))), nil
	}
}

func primitiveNumEq() func([]types.Value) (types.Value, error) {
	return numericComparison(func(c int) bool { return c == 0 })
}
func primitiveNumLt() func([]types.Value) (types.Value, error) {
	return numericComparison(func(c int) bool { return c < 0 })
}
func primitiveNumGt() func([]types.Value) (types.Value, error) {
	return numericComparison(func(c int) bool { return c > 0 })
}
func primitiveNumNe() func([]types.Value) (types.Value, error) {
	return numericComparison(func(c int) bool { return c != 0 })
}
func primitiveNumGe() func([]types.Value) (types.Value, error) {
	return numericComparison(func(c int) bool { return c >= 0 })
}
func primitiveNumLe() func([]types.Value) (types.Value, error) {
	return numericComparison(func(c int) bool { return c <= 0 })
}

// stringComparison builds a strictly-binary string comparison primitive.
func stringComparison(cmp func(a, b string) bool) func(args []types.Value) (types.Value, error) {
	return func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, schemerr.NewNumArgs(2, args)
		}
		a, ok := args[0].(types.String)
		if !ok {
			return nil, schemerr.NewTypeMismatch("string", args[0])
		}
		b, ok := args[1].(types.String)
		if !ok {
			return nil, schemerr.NewTypeMismatch("string", args[1])
		}
		return types.Bool(cmp(string(a), string(b))), nil
	}
}

func primitiveStrEq() func([]types.Value) (types.Value, error) {
	return stringComparison(func(a, b string) bool { return a == b })
}
func primitiveStrLt() func([]types.Value) (types.Value, error) {
	return stringComparison(func(a, b string) bool { return a < b })
}
func primitiveStrGt() func([]types.Value) (types.Value, error) {
	return stringComparison(func(a, b string) bool { return a > b })
}
func primitiveStrLe() func([]types.Value) (types.Value, error) {
	return stringComparison(func(a, b string) bool { return a <= b })
}
func primitiveStrGe() func([]types.Value) (types.Value, error) {
	return stringComparison(func(a, b string) bool { return a >= b })
}

// boolComparison builds a strictly-binary boolean-logic primitive.
func boolComparison(op func(a, b bool) bool) func(args []types.Value) (types.Value, error) {
	return func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, schemerr.NewNumArgs(2, args)
		}
		a, err := unpackBool(args[0])
		if err != nil {
			return nil, err
		}
		b, err := unpackBool(args[1])
		if err != nil {
			return nil, err
		}
		return types.Bool(op(a, b)), nil
	}
}

func primitiveAnd() func([]types.Value) (types.Value, error) {
	return boolComparison(func(a, b bool) bool { return a && b })
}
func primitiveOr() func([]types.Value) (types.Value, error) {
	return boolComparison(func(a, b bool) bool { return a || b })
}
