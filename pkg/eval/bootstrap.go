package eval

import (
	"github.com/leinonen/go-scheme/pkg/env"
	"github.com/leinonen/go-scheme/pkg/reader"
	"github.com/leinonen/go-scheme/pkg/types"
)

// primitiveTable and ioTable list the pure and I/O-capable primitives
// installed into every fresh global environment.
var primitiveTable = map[string]func([]types.Value) (types.Value, error){
	"+":         primitiveAdd,
	"-":         primitiveSub,
	"*":         primitiveMul,
	"/":         primitiveDiv,
	"mod":       primitiveMod,
	"quotient":  primitiveQuotient,
	"remainder": primitiveRemainder,

	"=":  primitiveNumEq(),
	"<":  primitiveNumLt(),
	">":  primitiveNumGt(),
	"/=": primitiveNumNe(),
	">=": primitiveNumGe(),
	"<=": primitiveNumLe(),

	"string=?":  primitiveStrEq(),
	"string<?":  primitiveStrLt(),
	"string>?":  primitiveStrGt(),
	"string<=?": primitiveStrLe(),
	"string>=?": primitiveStrGe(),

	"&&": primitiveAnd(),
	"||": primitiveOr(),

	"car":  primitiveCar,
	"cdr":  primitiveCdr,
	"cons": primitiveCons,

	"eqv?":   primitiveEqv,
	"eq?":    primitiveEqv,
	"equal?": primitiveEqual,

	"number->string": primitiveNumberToString,
	"string->number": primitiveStringToNumber,
}

var ioTable = map[string]func(types.ApplyFunc, []types.Value) (types.Value, error){
	"apply":              ioApply,
	"open-input-file":    ioOpenInputFile,
	"open-output-file":   ioOpenOutputFile,
	"close-input-port":   ioCloseInputPort,
	"close-output-port":  ioCloseOutputPort,
	"read":               ioRead,
	"write":              ioWrite,
	"read-contents":      ioReadContents,
	"read-all":           ioReadAll,
}

// NewGlobalEnvironment builds a fresh top-level environment with every
// primitive and IO primitive bound.
func NewGlobalEnvironment() *env.Environment {
	e := env.New()
	for name, fn := range primitiveTable {
		e.Define(name, types.PrimitiveFunc{Name: name, Fn: fn})
	}
	for name, fn := range ioTable {
		e.Define(name, types.IOFunc{Name: name, Fn: fn})
	}
	return e
}

// EvalString parses and evaluates a single expression read from input,
// returning the printed form of either the resulting Value or the
// error. A reader or evaluator error is converted to its displayed
// string form and returned in place of a value. The REPL (pkg/repl) and
// batch mode (pkg/driver) do not go through EvalString; they render
// errors themselves from err.Error().
func EvalString(environment types.Environment, input string) string {
	val, err := reader.ReadExpr(input)
	if err != nil {
		return err.Error()
	}
	result, err := Eval(environment, val)
	if err != nil {
		return err.Error()
	}
	return result.String()
}
