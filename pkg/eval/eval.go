// Package eval implements the tree-walking evaluator: form dispatch over
// the Value model (pkg/types), special forms, application, and the
// built-in primitive/IO-primitive libraries.
package eval

import (
	"math/big"

	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

// specialForms is the set of head atoms recognized as special forms
// rather than application heads. It is filled in by init because the
// handlers call back into Eval, which reads this table.
var specialForms map[string]func(environment types.Environment, args []types.Value, form types.Value) (types.Value, error)

func init() {
	specialForms = map[string]func(environment types.Environment, args []types.Value, form types.Value) (types.Value, error){
		"quote":  evalQuote,
		"if":     evalIf,
		"cond":   evalCond,
		"case":   evalCase,
		"set!":   evalSet,
		"define": evalDefine,
		"lambda": evalLambda,
		"load":   evalLoad,
	}
}

// Eval evaluates val in environment, dispatching on its syntactic form.
func Eval(environment types.Environment, val types.Value) (types.Value, error) {
	switch v := val.(type) {
	case types.Number, types.String, types.Bool:
		return v, nil

	case types.Atom:
		return environment.Lookup(string(v))

	case *types.List:
		if len(v.Elements) == 0 {
			// The empty program form self-evaluates; it has no operator
			// position to dispatch on.
			return v, nil
		}
		if head, ok := v.Elements[0].(types.Atom); ok {
			if form, ok := specialForms[string(head)]; ok {
				return form(environment, v.Elements[1:], v)
			}
		}
		return evalApplication(environment, v)

	case *types.DottedList:
		return nil, schemerr.NewBadSpecialForm("Unrecognized special form", v)

	default:
		// Ports, procedures: never produced by the reader, only ever
		// arise as results or bindings, and are self-evaluating if ever
		// re-evaluated (e.g. a bound procedure value referenced twice).
		return v, nil
	}
}

func evalApplication(environment types.Environment, form *types.List) (types.Value, error) {
	callee, err := Eval(environment, form.Elements[0])
	if err != nil {
		return nil, err
	}
	args := make([]types.Value, len(form.Elements)-1)
	for i, argExpr := range form.Elements[1:] {
		v, err := Eval(environment, argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return Apply(callee, args)
}

// Apply invokes callee with the already-evaluated args. It is exported
// so IOFunc bodies (notably the `apply` primitive) can recurse into it
// via the types.ApplyFunc callback.
func Apply(callee types.Value, args []types.Value) (types.Value, error) {
	switch fn := callee.(type) {
	case types.PrimitiveFunc:
		return fn.Fn(args)

	case types.IOFunc:
		return fn.Fn(Apply, args)

	case *types.Func:
		return applyFunc(fn, args)

	default:
		return nil, schemerr.NewNotFunction("Invalid operator", callee)
	}
}

func applyFunc(fn *types.Func, args []types.Value) (types.Value, error) {
	nparams := len(fn.Params)
	if fn.Varargs == "" {
		if len(args) != nparams {
			return nil, schemerr.NewNumArgs(nparams, args)
		}
	} else if len(args) < nparams {
		return nil, schemerr.NewNumArgs(nparams, args)
	}

	childEnv := fn.Closure.Extend(fn.Params, args[:nparams])
	if fn.Varargs != "" {
		rest := append([]types.Value{}, args[nparams:]...)
		childEnv.Define(fn.Varargs, types.NewList(rest...))
	}

	var result types.Value = types.Bool(false)
	for _, expr := range fn.Body {
		v, err := Eval(childEnv, expr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// unpackNum accepts a Number, a String that fully parses as an integer,
// or a single-element List wrapping either.
func unpackNum(v types.Value) (*big.Int, error) {
	switch t := v.(type) {
	case types.Number:
		return t.Int, nil
	case types.String:
		if n, ok := types.NewNumberFromString(string(t)); ok {
			return n.Int, nil
		}
		return nil, schemerr.NewTypeMismatch("number", v)
	case *types.List:
		if len(t.Elements) == 1 {
			return unpackNum(t.Elements[0])
		}
		return nil, schemerr.NewTypeMismatch("number", v)
	default:
		return nil, schemerr.NewTypeMismatch("number", v)
	}
}

// unpackStr stringifies Number and Bool via their display forms.
func unpackStr(v types.Value) (string, error) {
	switch t := v.(type) {
	case types.String:
		return string(t), nil
	case types.Number:
		return t.String(), nil
	case types.Bool:
		return t.String(), nil
	default:
		return "", schemerr.NewTypeMismatch("string", v)
	}
}

// unpackBool accepts only Bool; it does not coerce.
func unpackBool(v types.Value) (bool, error) {
	b, ok := v.(types.Bool)
	if !ok {
		return false, schemerr.NewTypeMismatch("boolean", v)
	}
	return bool(b), nil
}
