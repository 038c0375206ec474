// Package env implements the lexically nested, mutable-cell environment
// that the evaluator threads through every call. Each binding is stored
// as a pointer cell, rather than a plain map value, so that a child
// frame's `set!` mutates the very cell a parent frame still sees instead
// of shadowing it.
package env

import (
	"github.com/leinonen/go-scheme/pkg/schemerr"
	"github.com/leinonen/go-scheme/pkg/types"
)

// Environment is a linear associative sequence of name -> mutable cell
// bindings, chained to an optional parent.
type Environment struct {
	bindings map[string]*types.Value
	parent   *Environment
}

// New creates a fresh, empty, parentless environment.
func New() *Environment {
	return &Environment{bindings: make(map[string]*types.Value)}
}

// Lookup searches the most-recent binding first, then each parent frame
// in turn.
func (e *Environment) Lookup(name string) (types.Value, error) {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.bindings[name]; ok {
			return *cell, nil
		}
	}
	return nil, schemerr.NewUnboundVar("Getting an unbound variable", name)
}

// Define rebinds the cell at the head frame if name is already present
// there, otherwise prepends a new cell. Always succeeds.
func (e *Environment) Define(name string, val types.Value) {
	if cell, ok := e.bindings[name]; ok {
		*cell = val
		return
	}
	v := val
	e.bindings[name] = &v
}

// SetMutate searches from the head frame outward and mutates the first
// matching cell in place. It fails with UnboundVar if no frame binds
// name.
func (e *Environment) SetMutate(name string, val types.Value) error {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.bindings[name]; ok {
			*cell = val
			return nil
		}
	}
	return schemerr.NewUnboundVar("Setting an unbound variable", name)
}

// Extend returns a new child environment whose head frame holds fresh
// cells for the given name/value pairs, prepended in front of e. The
// returned environment is the one a closure created in the child scope
// should capture.
func (e *Environment) Extend(names []string, vals []types.Value) types.Environment {
	child := New()
	child.parent = e
	for i, name := range names {
		v := vals[i]
		child.bindings[name] = &v
	}
	return child
}
