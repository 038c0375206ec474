package eval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leinonen/go-scheme/pkg/types"
)

func TestIOReadContentsReadsWholeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := ioReadContents(nil, []types.Value{types.String(path)})
	if err != nil {
		t.Fatalf("ioReadContents returned error: %v", err)
	}
	if got.String() != `"hello"` {
		t.Errorf("read-contents = %v, want \"hello\"", got)
	}
}

func TestIOReadAllParsesEveryExpression(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.scm")
	if err := os.WriteFile(path, []byte("(+ 1 2) (* 3 4)"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := ioReadAll(nil, []types.Value{types.String(path)})
	if err != nil {
		t.Fatalf("ioReadAll returned error: %v", err)
	}
	l, ok := got.(*types.List)
	if !ok || len(l.Elements) != 2 {
		t.Fatalf("read-all = %#v, want a 2-element list", got)
	}
}

func TestOpenCloseOutputPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	portVal, err := ioOpenOutputFile(nil, []types.Value{types.String(path)})
	if err != nil {
		t.Fatalf("open-output-file returned error: %v", err)
	}
	port, ok := portVal.(*types.Port)
	if !ok {
		t.Fatalf("open-output-file = %#v, want *Port", portVal)
	}

	if _, err := ioWrite(nil, []types.Value{types.String("hi"), port}); err != nil {
		t.Fatalf("write to port returned error: %v", err)
	}

	closed, err := ioCloseOutputPort(nil, []types.Value{port})
	if err != nil {
		t.Fatalf("close-output-port returned error: %v", err)
	}
	if closed != types.Value(types.Bool(true)) {
		t.Errorf("close-output-port = %v, want #t", closed)
	}

	again, err := ioCloseOutputPort(nil, []types.Value{port})
	if err != nil {
		t.Fatalf("repeat close-output-port returned error: %v", err)
	}
	if again != types.Value(types.Bool(false)) {
		t.Errorf("repeat close-output-port = %v, want #f", again)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got, want := string(contents), "\"hi\"\n"; got != want {
		t.Errorf("file contents = %q, want %q", got, want)
	}
}

func TestCloseInputPortOnOutputPortIsFalse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out2.txt")
	portVal, err := ioOpenOutputFile(nil, []types.Value{types.String(path)})
	if err != nil {
		t.Fatalf("open-output-file returned error: %v", err)
	}

	got, err := ioCloseInputPort(nil, []types.Value{portVal})
	if err != nil {
		t.Fatalf("close-input-port returned error: %v", err)
	}
	if got != types.Value(types.Bool(false)) {
		t.Errorf("close-input-port on an output port = %v, want #f", got)
	}
}

func TestIOApplySpreadsTrailingList(t *testing.T) {
	got, err := ioApply(Apply, []types.Value{
		types.PrimitiveFunc{Name: "+", Fn: primitiveAdd},
		types.NewList(n(1), n(2), n(3)),
	})
	if err != nil {
		t.Fatalf("apply returned error: %v", err)
	}
	if got.String() != "6" {
		t.Errorf("apply + spread = %v, want 6", got)
	}
}

func TestIOApplyWithoutTrailingListUsesArgsVerbatim(t *testing.T) {
	got, err := ioApply(Apply, []types.Value{
		types.PrimitiveFunc{Name: "+", Fn: primitiveAdd},
		n(1), n(2),
	})
	if err != nil {
		t.Fatalf("apply returned error: %v", err)
	}
	if got.String() != "3" {
		t.Errorf("apply + verbatim = %v, want 3", got)
	}
}
