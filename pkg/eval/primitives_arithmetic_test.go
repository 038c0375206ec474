package eval

import (
	"testing"

	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

func n(v int64) types.Value { return types.NewNumberFromInt64(v) }

func TestPrimitiveAddFoldsLeft(t *testing.T) {
	got, err := primitiveAdd([]types.Value{n(1), n(2), n(3)})
	if err != nil {
		t.Fatalf("primitiveAdd returned error: %v", err)
	}
	if got.String() != "6" {
		t.Errorf("(+ 1 2 3) = %v, want 6", got)
	}
}

func TestPrimitiveSubRequiresTwoArgs(t *testing.T) {
	_, err := primitiveSub([]types.Value{n(1)})
	if _, ok := err.(*schemerr.NumArgsError); !ok {
		t.Errorf("(- 1) error = %T, want *NumArgsError", err)
	}
}

func TestPrimitiveDivTruncatesTowardZero(t *testing.T) {
	got, err := primitiveDiv([]types.Value{n(-7), n(2)})
	if err != nil {
		t.Fatalf("primitiveDiv returned error: %v", err)
	}
	if got.String() != "-3" {
		t.Errorf("(/ -7 2) = %v, want -3 (truncated toward zero)", got)
	}
}

func TestPrimitiveDivByZero(t *testing.T) {
	_, err := primitiveDiv([]types.Value{n(1), n(0)})
	if err == nil {
		t.Fatalf("expected a division-by-zero error")
	}
}

func TestPrimitiveQuotient(t *testing.T) {
	got, err := primitiveQuotient([]types.Value{n(7), n(2)})
	if err != nil {
		t.Fatalf("primitiveQuotient returned error: %v", err)
	}
	if got.String() != "3" {
		t.Errorf("(quotient 7 2) = %v, want 3", got)
	}
}

func TestPrimitiveRemainderTakesDividendSign(t *testing.T) {
	got, err := primitiveRemainder([]types.Value{n(-7), n(2)})
	if err != nil {
		t.Fatalf("primitiveRemainder returned error: %v", err)
	}
	if got.String() != "-1" {
		t.Errorf("(remainder -7 2) = %v, want -1", got)
	}
}

func TestUnpackNumCoercesSingletonList(t *testing.T) {
	wrapped := types.NewList(n(5))
	got, err := unpackNum(wrapped)
	if err != nil {
		t.Fatalf("unpackNum(singleton list) returned error: %v", err)
	}
	if got.String() != "5" {
		t.Errorf("unpackNum(singleton list) = %v, want 5", got)
	}
}

func TestUnpackNumCoercesNumericString(t *testing.T) {
	got, err := unpackNum(types.String("9"))
	if err != nil {
		t.Fatalf("unpackNum(\"9\") returned error: %v", err)
	}
	if got.String() != "9" {
		t.Errorf("unpackNum(\"9\") = %v, want 9", got)
	}
}

func TestUnpackNumRejectsNonNumericString(t *testing.T) {
	if _, err := unpackNum(types.String("abc")); err == nil {
		t.Fatalf("expected a TypeMismatch error for a non-numeric string")
	}
}
