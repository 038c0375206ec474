package eval

import (
	"fmt"
	"os"

	"github.com/leinonen/go-scheme/pkg/reader"
	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

// ioApply implements the `apply` IO primitive: if the last argument is a
// List, spread it and apply the callee to the result; otherwise apply
// the callee to the verbatim trailing arguments.
func ioApply(applyFn types.ApplyFunc, args []types.Value) (types.Value, error) {
	if len(args) < 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	callee := args[0]
	rest := args[1:]
	if len(rest) > 0 {
		if lastList, ok := rest[len(rest)-1].(*types.List); ok {
			spread := make([]types.Value, 0, len(rest)-1+len(lastList.Elements))
			spread = append(spread, rest[:len(rest)-1]...)
			spread = append(spread, lastList.Elements...)
			return applyFn(callee, spread)
		}
	}
	return applyFn(callee, rest)
}

func pathArg(args []types.Value, index int) (string, error) {
	if index >= len(args) {
		return "", schemerr.NewNumArgs(index+1, args)
	}
	s, ok := args[index].(types.String)
	if !ok {
		return "", schemerr.NewTypeMismatch("string", args[index])
	}
	return string(s), nil
}

func ioOpenInputFile(_ types.ApplyFunc, args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	path, err := pathArg(args, 0)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, schemerr.NewDefault(err.Error())
	}
	return types.NewPort(path, types.InputPort, f), nil
}

func ioOpenOutputFile(_ types.ApplyFunc, args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	path, err := pathArg(args, 0)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, schemerr.NewDefault(err.Error())
	}
	return types.NewPort(path, types.OutputPort, f), nil
}

// closePort closes a port of the given direction, returning #f for a
// non-port argument or a port of the wrong direction, and #f again on a
// repeat close.
func closePort(args []types.Value, want types.PortDirection) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	port, ok := args[0].(*types.Port)
	if !ok || port.Direction != want {
		return types.Bool(false), nil
	}
	if port.Closed() {
		return types.Bool(false), nil
	}
	if err := port.Close(); err != nil {
		return nil, schemerr.NewDefault(err.Error())
	}
	return types.Bool(true), nil
}

func ioCloseInputPort(_ types.ApplyFunc, args []types.Value) (types.Value, error) {
	return closePort(args, types.InputPort)
}

func ioCloseOutputPort(_ types.ApplyFunc, args []types.Value) (types.Value, error) {
	return closePort(args, types.OutputPort)
}

// ioRead reads one line from the given Port (default stdin), parses it
// as one expression, and returns the resulting Value.
func ioRead(_ types.ApplyFunc, args []types.Value) (types.Value, error) {
	if len(args) > 1 {
		return nil, schemerr.NewNumArgs(0, args)
	}
	var line string
	var err error
	if len(args) == 1 {
		port, ok := args[0].(*types.Port)
		if !ok {
			return nil, schemerr.NewTypeMismatch("port", args[0])
		}
		if port.Closed() {
			return nil, schemerr.NewDefault("read from a closed port")
		}
		line, err = port.Reader().ReadString('\n')
	} else {
		line, err = stdinReader().ReadString('\n')
	}
	if err != nil && line == "" {
		return nil, schemerr.NewDefault(err.Error())
	}
	return reader.ReadExpr(line)
}

// ioWrite writes the printed form of obj followed by a newline to the
// port (default stdout) and returns #t.
func ioWrite(_ types.ApplyFunc, args []types.Value) (types.Value, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	if len(args) == 2 {
		port, ok := args[1].(*types.Port)
		if !ok {
			return nil, schemerr.NewTypeMismatch("port", args[1])
		}
		if port.Closed() {
			return nil, schemerr.NewDefault("write to a closed port")
		}
		if _, err := fmt.Fprintln(port.File, args[0].String()); err != nil {
			return nil, schemerr.NewDefault(err.Error())
		}
		return types.Bool(true), nil
	}
	fmt.Println(args[0].String())
	return types.Bool(true), nil
}

func ioReadContents(_ types.ApplyFunc, args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	path, err := pathArg(args, 0)
	if err != nil {
		return nil, err
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, schemerr.NewDefault(err.Error())
	}
	return types.String(contents), nil
}

func ioReadAll(_ types.ApplyFunc, args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, schemerr.NewNumArgs(1, args)
	}
	path, err := pathArg(args, 0)
	if err != nil {
		return nil, err
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, schemerr.NewDefault(err.Error())
	}
	exprs, err := reader.ReadAll(string(contents))
	if err != nil {
		return nil, err
	}
	return types.NewList(exprs...), nil
}
