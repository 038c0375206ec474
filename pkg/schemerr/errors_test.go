package schemerr

import (
	"testing"

	"github.com/leinonen/go-scheme/pkg/types"
)

func TestNumArgsErrorMessage(t *testing.T) {
	err := NewNumArgs(2, []types.Value{types.NewNumberFromInt64(1)})
	want := "Expected 2 args; found values (1)"
	if got := err.Error(); got != want {
		t.Errorf("NumArgsError.Error() = %q, want %q", got, want)
	}
}

func TestTypeMismatchErrorMessage(t *testing.T) {
	err := NewTypeMismatch("number", types.String("x"))
	want := `Invalid type: expected number, found "x"`
	if got := err.Error(); got != want {
		t.Errorf("TypeMismatchError.Error() = %q, want %q", got, want)
	}
}

func TestParserErrorMessageIncludesPosition(t *testing.T) {
	err := NewParser("unexpected token", Position{Line: 2, Column: 5})
	want := "Parse error at line 2, column 5: unexpected token"
	if got := err.Error(); got != want {
		t.Errorf("ParserError.Error() = %q, want %q", got, want)
	}
}

func TestUnboundVarErrorMessage(t *testing.T) {
	err := NewUnboundVar("Getting an unbound variable", "x")
	want := "Getting an unbound variable: x"
	if got := err.Error(); got != want {
		t.Errorf("UnboundVarError.Error() = %q, want %q", got, want)
	}
}

func TestDefaultErrorEmptyMessageSentinel(t *testing.T) {
	err := NewDefault("")
	if got, want := err.Error(), "An error has occurred"; got != want {
		t.Errorf("DefaultError.Error() = %q, want %q", got, want)
	}
}

func TestBadSpecialFormErrorMessage(t *testing.T) {
	err := NewBadSpecialForm("no cond clause matched", types.NewList(types.Atom("cond")))
	want := "no cond clause matched: (cond)"
	if got := err.Error(); got != want {
		t.Errorf("BadSpecialFormError.Error() = %q, want %q", got, want)
	}
}
