package eval

import (
	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

// primitiveCar returns a pair's first element:
// car [List(x:xs)] = x; car [DottedList(x:_, _)] = x; otherwise
// TypeMismatch("pair", …) or NumArgs.
func primitiveCar(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	switch v := args[0].(type) {
	case *types.List:
		if len(v.Elements) == 0 {
			return nil, schemerr.NewTypeMismatch("pair", v)
		}
		return v.Elements[0], nil
	case *types.DottedList:
		return v.Head[0], nil
	default:
		return nil, schemerr.NewTypeMismatch("pair", v)
	}
}

// primitiveCdr returns a pair with its first element removed:
// cdr [List(_:xs)] = List xs; cdr [DottedList([_], t)] = t;
// cdr [DottedList(_:xs, t)] = DottedList(xs, t).
func primitiveCdr(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	switch v := args[0].(type) {
	case *types.List:
		if len(v.Elements) == 0 {
			return nil, schemerr.NewTypeMismatch("pair", v)
		}
		return types.NewList(v.Elements[1:]...), nil
	case *types.DottedList:
		if len(v.Head) == 1 {
			return v.Tail, nil
		}
		return types.NewDottedList(v.Head[1:], v.Tail), nil
	default:
		return nil, schemerr.NewTypeMismatch("pair", v)
	}
}

// primitiveCons prepends x onto y:
// cons [x, List ys] = List(x:ys); cons [x, DottedList(ys, t)] =
// DottedList(x:ys, t); cons [x, y] = DottedList([x], y).
func primitiveCons(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, schemerr.NewNumArgs(2, args)
	}
	x, y := args[0], args[1]
	switch yv := y.(type) {
	case *types.List:
		elements := make([]types.Value, 0, len(yv.Elements)+1)
		elements = append(elements, x)
		elements = append(elements, yv.Elements...)
		return types.NewList(elements...), nil
	case *types.DottedList:
		head := make([]types.Value, 0, len(yv.Head)+1)
		head = append(head, x)
		head = append(head, yv.Head...)
		return types.NewDottedList(head, yv.Tail), nil
	default:
		return types.NewDottedList([]types.Value{x}, y), nil
	}
}

// primitiveEqv implements both `eqv?` and `eq?`.
func primitiveEqv(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, schemerr.NewNumArgs(2, args)
	}
	return types.Bool(eqv(args[0], args[1])), nil
}

// primitiveEqual implements `equal?`.
func primitiveEqual(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, schemerr.NewNumArgs(2, args)
	}
	return types.Bool(equalValues(args[0], args[1])), nil
}

// primitiveNumberToString and primitiveStringToNumber convert between a
// Number and its decimal text form.
func primitiveNumberToString(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	n, err := unpackNum(args[0])
	if err != nil {
		return nil, err
	}
	return types.String(n.String()), nil
}

func primitiveStringToNumber(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	s, ok := args[0].(types.String)
	if !ok {
		return nil, schemerr.NewTypeMismatch("string", args[0])
	}
	n, ok := types.NewNumberFromString(string(s))
	if !ok {
		return nil, schemerr.NewTypeMismatch("number", args[0])
	}
	return n, nil
}
