/*
File    : apscript/environment/environment.go
Package : environment
*/

// Package environment implements the name-to-value mapping the evaluator
// threads through every statement and expression: a parent-pointer chain
// with shared-mutable interior, anchored at a root (global) environment.
//
// Procedure calls create a child Environment whose parent is the *caller's*
// environment rather than the procedure's defining environment. Combined
// with Assign's walk-then-create-at-caller rule, this makes free variables
// inside a procedure body dynamically scoped: a procedure sees whatever
// binding is visible at its call site, not at its definition site. Since
// apscript has no parameter lists, dynamic scoping is how a procedure
// receives input at all: the caller sets up bindings, calls the
// procedure, and the procedure reads them back out of the chain it
// inherited.
package environment

import "github.com/apscript-lang/apscript/objects"

// Environment is one link in the scope chain. A nil Parent marks the root
// (global) environment.
type Environment struct {
	entries map[string]objects.Value
	Parent  *Environment
}

// New creates a fresh Environment chained to parent. Passing nil creates a
// root environment.
func New(parent *Environment) *Environment {
	return &Environment{
		entries: make(map[string]objects.Value),
		Parent:  parent,
	}
}

// Get walks e and its ancestors looking for name, returning the nearest
// binding found. The bool is false if name is unbound anywhere in the
// chain.
func (e *Environment) Get(name string) (objects.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.entries[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign implements `<-`: it walks the chain looking for an existing
// binding named name and overwrites it in place, wherever in the chain it
// lives. If no binding exists anywhere, it creates one on e itself — the
// environment passed to the evaluator at the enclosing statement's scope
// boundary, not necessarily the global environment. This "caller-root"
// placement is what lets one procedure's assignment be visible to a
// procedure it calls, and is the load-bearing half of the dynamic-scoping
// behavior described on Environment above.
func (e *Environment) Assign(name string, value objects.Value) {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.entries[name]; ok {
			env.entries[name] = value
			return
		}
	}
	e.entries[name] = value
}

// Bind creates or overwrites a binding in e directly, without consulting
// ancestors. Used for procedure parameter binding and for-loop alias
// binding, both of which always target a specific environment regardless
// of what the parent chain already holds.
func (e *Environment) Bind(name string, value objects.Value) {
	e.entries[name] = value
}

// Has reports whether name is bound in e or any ancestor, without
// returning the value.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}
