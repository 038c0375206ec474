// Package schemerr implements the interpreter's error taxonomy: the
// closed set of error kinds propagated out of the reader and the
// evaluator, each rendering as "<kind-specific prefix>: <detail>" per
// the display contract the top-level eval loop relies on, except
// DefaultError, which renders its message alone.
package schemerr

import (
	"fmt"
	"strings"

	"github.com/leinonen/go-scheme/pkg/types"
)

// NumArgsError is an arity mismatch for a primitive or a Func without
// varargs.
type NumArgsError struct {
	Expected int
	Got      []types.Value
}

func NewNumArgs(expected int, got []types.Value) *NumArgsError {
	return &NumArgsError{Expected: expected, Got: got}
}

func (e *NumArgsError) Error() string {
	return fmt.Sprintf("Expected %d args; found values %s", e.Expected, formatValues(e.Got))
}

// TypeMismatchError records a value with the wrong shape for its
// context.
type TypeMismatchError struct {
	Expected string
	Found    types.Value
}

func NewTypeMismatch(expected string, found types.Value) *TypeMismatchError {
	return &TypeMismatchError{Expected: expected, Found: found}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Invalid type: expected %s, found %s", e.Expected, safeString(e.Found))
}

// Position is a line/column location in source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// ParserError is a reader failure with a position.
type ParserError struct {
	Detail   string
	Position Position
}

func NewParser(detail string, pos Position) *ParserError {
	return &ParserError{Detail: detail, Position: pos}
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("Parse error at %s: %s", e.Position, e.Detail)
}

// BadSpecialFormError is a malformed cond/case/top-level form, or a
// cond/case with no matching clause.
type BadSpecialFormError struct {
	Message string
	Form    types.Value
}

func NewBadSpecialForm(message string, form types.Value) *BadSpecialFormError {
	return &BadSpecialFormError{Message: message, Form: form}
}

func (e *BadSpecialFormError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, safeString(e.Form))
}

// NotFunctionError is an attempt to apply a non-procedure.
type NotFunctionError struct {
	Message string
	Callee  types.Value
}

func NewNotFunction(message string, callee types.Value) *NotFunctionError {
	return &NotFunctionError{Message: message, Callee: callee}
}

func (e *NotFunctionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, safeString(e.Callee))
}

// UnboundVarError is a reference to, or `set!` of, an undefined name.
type UnboundVarError struct {
	Message string
	Name    string
}

func NewUnboundVar(message, name string) *UnboundVarError {
	return &UnboundVarError{Message: message, Name: name}
}

func (e *UnboundVarError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Name)
}

// DefaultError is the catch-all for host-surfaced errors and the
// "no message" sentinel.
type DefaultError struct {
	Message string
}

func NewDefault(message string) *DefaultError {
	if message == "" {
		message = "An error has occurred"
	}
	return &DefaultError{Message: message}
}

func (e *DefaultError) Error() string {
	return e.Message
}

func safeString(v types.Value) string {
	if v == nil {
		return "()"
	}
	return v.String()
}

func formatValues(values []types.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = safeString(v)
	}
	return "(" + strings.Join(parts, " ") + ")"
}
