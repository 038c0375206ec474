package eval

import (
	"os"

	"github.com/leinonen/go-scheme/pkg/reader"
	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

// evalQuote implements `(quote x)`: return x unevaluated.
func evalQuote(environment types.Environment, args []types.Value, form types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewBadSpecialForm("quote expects exactly one operand", form)
	}
	return args[0], nil
}

// evalIf implements `(if p a b)`. Only literal Bool(false) is falsy;
// every other value, including Number(0), String(""), and the empty
// List, is truthy.
func evalIf(environment types.Environment, args []types.Value, form types.Value) (types.Value, error) {
	if len(args) != 3 {
		return nil, schemerr.NewBadSpecialForm("if expects a predicate, a consequent and an alternative", form)
	}
	pred, err := Eval(environment, args[0])
	if err != nil {
		return nil, err
	}
	if b, ok := pred.(types.Bool); ok && !bool(b) {
		return Eval(environment, args[2])
	}
	return Eval(environment, args[1])
}

// evalCond implements `(cond clause…)`. Each clause is `(test body…)`;
// tests are evaluated in order, the first Bool(true) result runs its
// body, an `else` clause matches unconditionally.
func evalCond(environment types.Environment, args []types.Value, form types.Value) (types.Value, error) {
	for _, clauseVal := range args {
		clause, ok := clauseVal.(*types.List)
		if !ok || len(clause.Elements) == 0 {
			return nil, schemerr.NewBadSpecialForm("cond clause must be a non-empty list", clauseVal)
		}
		if headAtom, ok := clause.Elements[0].(types.Atom); ok && string(headAtom) == "else" {
			return evalBodySequence(environment, clause.Elements[1:])
		}
		testVal, err := Eval(environment, clause.Elements[0])
		if err != nil {
			return nil, err
		}
		b, ok := testVal.(types.Bool)
		if !ok {
			return nil, schemerr.NewTypeMismatch("boolean", testVal)
		}
		if bool(b) {
			return evalBodySequence(environment, clause.Elements[1:])
		}
	}
	return nil, schemerr.NewBadSpecialForm("no cond clause matched", form)
}

// evalCase implements `(case key clause…)`. Each clause is
// `((datum…) body…)` or `(else body…)`; key is matched against each
// clause's datums with eqv?.
func evalCase(environment types.Environment, args []types.Value, form types.Value) (types.Value, error) {
	if len(args) < 1 {
		return nil, schemerr.NewBadSpecialForm("case requires a key expression", form)
	}
	key, err := Eval(environment, args[0])
	if err != nil {
		return nil, err
	}
	for _, clauseVal := range args[1:] {
		clause, ok := clauseVal.(*types.List)
		if !ok || len(clause.Elements) == 0 {
			return nil, schemerr.NewBadSpecialForm("case clause must be a non-empty list", clauseVal)
		}
		if headAtom, ok := clause.Elements[0].(types.Atom); ok && string(headAtom) == "else" {
			return evalBodySequence(environment, clause.Elements[1:])
		}
		datums, ok := clause.Elements[0].(*types.List)
		if !ok {
			return nil, schemerr.NewBadSpecialForm("case clause datums must be a list", clauseVal)
		}
		for _, datum := range datums.Elements {
			if eqv(key, datum) {
				return evalBodySequence(environment, clause.Elements[1:])
			}
		}
	}
	return nil, schemerr.NewBadSpecialForm("no case clause matched", form)
}

func evalBodySequence(environment types.Environment, body []types.Value) (types.Value, error) {
	if len(body) == 0 {
		return nil, schemerr.NewBadSpecialForm("clause body must not be empty", types.NewList(body...))
	}
	var result types.Value
	for _, expr := range body {
		v, err := Eval(environment, expr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalSet implements `(set! name expr)`.
func evalSet(environment types.Environment, args []types.Value, form types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, schemerr.NewBadSpecialForm("set! expects a name and a value expression", form)
	}
	name, ok := args[0].(types.Atom)
	if !ok {
		return nil, schemerr.NewBadSpecialForm("set! requires a variable name", args[0])
	}
	val, err := Eval(environment, args[1])
	if err != nil {
		return nil, err
	}
	if err := environment.SetMutate(string(name), val); err != nil {
		return nil, err
	}
	return val, nil
}

// evalDefine implements both the variable form `(define name expr)` and
// the function form `(define (name p…[. rest]) body…)`.
func evalDefine(environment types.Environment, args []types.Value, form types.Value) (types.Value, error) {
	if len(args) < 1 {
		return nil, schemerr.NewBadSpecialForm("define requires at least a target", form)
	}

	switch target := args[0].(type) {
	case types.Atom:
		if len(args) != 2 {
			return nil, schemerr.NewBadSpecialForm("define expects exactly one value expression", form)
		}
		val, err := Eval(environment, args[1])
		if err != nil {
			return nil, err
		}
		environment.Define(string(target), val)
		return val, nil

	case *types.List, *types.DottedList:
		head, tail, err := headAndTail(target)
		if err != nil {
			return nil, err
		}
		if len(head) == 0 {
			return nil, schemerr.NewBadSpecialForm("define function form requires a name", form)
		}
		nameAtom, ok := head[0].(types.Atom)
		if !ok {
			return nil, schemerr.NewBadSpecialForm("define function form requires a name", form)
		}
		params, varargs, err := parseFormals(types.NewDottedList(head[1:], tail))
		if err != nil {
			return nil, err
		}
		if len(args) < 2 {
			return nil, schemerr.NewBadSpecialForm("define function form requires a body", form)
		}
		fn := &types.Func{
			Params:  params,
			Varargs: varargs,
			Body:    args[1:],
			Closure: environment,
		}
		environment.Define(string(nameAtom), fn)
		return fn, nil

	default:
		return nil, schemerr.NewBadSpecialForm("define requires a name or a (name params…) form", form)
	}
}

// evalLambda implements all three lambda forms: `(lambda (p…) body…)`,
// `(lambda (p… . rest) body…)`, and `(lambda rest body…)`.
func evalLambda(environment types.Environment, args []types.Value, form types.Value) (types.Value, error) {
	if len(args) < 2 {
		return nil, schemerr.NewBadSpecialForm("lambda requires a formals list and a body", form)
	}
	params, varargs, err := parseFormals(args[0])
	if err != nil {
		return nil, err
	}
	return &types.Func{
		Params:  params,
		Varargs: varargs,
		Body:    args[1:],
		Closure: environment,
	}, nil
}

// parseFormals interprets a lambda/define formals value: an Atom binds
// every argument as a rest parameter, a List gives fixed parameters, and
// a DottedList gives fixed parameters plus a rest parameter.
func parseFormals(formals types.Value) (params []string, varargs string, err error) {
	switch f := formals.(type) {
	case types.Atom:
		return nil, string(f), nil
	case *types.List:
		names, err := atomNames(f.Elements)
		if err != nil {
			return nil, "", err
		}
		return names, "", nil
	case *types.DottedList:
		names, err := atomNames(f.Head)
		if err != nil {
			return nil, "", err
		}
		restAtom, ok := f.Tail.(types.Atom)
		if !ok {
			return nil, "", schemerr.NewBadSpecialForm("rest parameter must be a name", f.Tail)
		}
		return names, string(restAtom), nil
	default:
		return nil, "", schemerr.NewBadSpecialForm("malformed parameter list", formals)
	}
}

func atomNames(values []types.Value) ([]string, error) {
	names := make([]string, len(values))
	for i, v := range values {
		a, ok := v.(types.Atom)
		if !ok {
			return nil, schemerr.NewBadSpecialForm("parameter name must be a symbol", v)
		}
		names[i] = string(a)
	}
	return names, nil
}

// headAndTail extracts a List's or DottedList's elements uniformly so
// define's function form can share formals parsing with lambda's.
func headAndTail(v types.Value) ([]types.Value, types.Value, error) {
	switch t := v.(type) {
	case *types.List:
		return t.Elements, types.NewList(), nil
	case *types.DottedList:
		return t.Head, t.Tail, nil
	default:
		return nil, nil, schemerr.NewBadSpecialForm("expected a list", v)
	}
}

// evalLoad implements `(load "path")`: read, parse, and evaluate every
// expression in the named file in order, returning the last value.
func evalLoad(environment types.Environment, args []types.Value, form types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewBadSpecialForm("load expects exactly one path argument", form)
	}
	pathVal, ok := args[0].(types.String)
	if !ok {
		return nil, schemerr.NewTypeMismatch("string", args[0])
	}
	return loadFile(environment, string(pathVal))
}

func loadFile(environment types.Environment, path string) (types.Value, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, schemerr.NewDefault(err.Error())
	}
	exprs, err := reader.ReadAll(string(contents))
	if err != nil {
		return nil, err
	}
	var result types.Value = types.Bool(false)
	for _, expr := range exprs {
		v, err := Eval(environment, expr)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
