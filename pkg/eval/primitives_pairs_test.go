package eval

import (
	"testing"

	"github.com/leinonen/go-scheme/pkg/types"
)

func TestCarOfList(t *testing.T) {
	got, err := primitiveCar([]types.Value{types.NewList(n(1), n(2))})
	if err != nil {
		t.Fatalf("car returned error: %v", err)
	}
	if got.String() != "1" {
		t.Errorf("car = %v, want 1", got)
	}
}

func TestCarOfEmptyListIsTypeMismatch(t *testing.T) {
	if _, err := primitiveCar([]types.Value{types.NewList()}); err == nil {
		t.Fatalf("expected a TypeMismatch error for car of ()")
	}
}

func TestCdrOfDottedListSingleHeadReturnsTail(t *testing.T) {
	d := &types.DottedList{Head: []types.Value{n(1)}, Tail: n(2)}
	got, err := primitiveCdr([]types.Value{d})
	if err != nil {
		t.Fatalf("cdr returned error: %v", err)
	}
	if got.String() != "2" {
		t.Errorf("cdr = %v, want 2", got)
	}
}

func TestCdrOfDottedListMultiHeadReturnsDottedList(t *testing.T) {
	d := &types.DottedList{Head: []types.Value{n(1), n(2)}, Tail: n(3)}
	got, err := primitiveCdr([]types.Value{d})
	if err != nil {
		t.Fatalf("cdr returned error: %v", err)
	}
	if got.String() != "(2 . 3)" {
		t.Errorf("cdr = %v, want (2 . 3)", got)
	}
}

func TestConsOntoListPrepends(t *testing.T) {
	got, err := primitiveCons([]types.Value{n(1), types.NewList(n(2), n(3))})
	if err != nil {
		t.Fatalf("cons returned error: %v", err)
	}
	if got.String() != "(1 2 3)" {
		t.Errorf("cons = %v, want (1 2 3)", got)
	}
}

func TestConsOntoAtomMakesDottedList(t *testing.T) {
	got, err := primitiveCons([]types.Value{n(1), n(2)})
	if err != nil {
		t.Fatalf("cons returned error: %v", err)
	}
	if got.String() != "(1 . 2)" {
		t.Errorf("cons = %v, want (1 . 2)", got)
	}
}

func TestEqvDoesNotCoerce(t *testing.T) {
	got, err := primitiveEqv([]types.Value{n(2), types.String("2")})
	if err != nil {
		t.Fatalf("eqv? returned error: %v", err)
	}
	if got != types.Value(types.Bool(false)) {
		t.Errorf(`(eqv? 2 "2") = %v, want #f`, got)
	}
}

func TestEqualCoerces(t *testing.T) {
	got, err := primitiveEqual([]types.Value{n(2), types.String("2")})
	if err != nil {
		t.Fatalf("equal? returned error: %v", err)
	}
	if got != types.Value(types.Bool(true)) {
		t.Errorf(`(equal? 2 "2") = %v, want #t`, got)
	}
}

func TestNumberToStringAndBack(t *testing.T) {
	s, err := primitiveNumberToString([]types.Value{n(42)})
	if err != nil {
		t.Fatalf("number->string returned error: %v", err)
	}
	if s.String() != `"42"` {
		t.Errorf("number->string(42) = %v, want \"42\"", s)
	}
	back, err := primitiveStringToNumber([]types.Value{types.String("42")})
	if err != nil {
		t.Fatalf("string->number returned error: %v", err)
	}
	if back.String() != "42" {
		t.Errorf("string->number(\"42\") = %v, want 42", back)
	}
}
