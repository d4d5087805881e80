/*
File    : apscript/eval/stmt.go
Package : eval
*/
package eval

import (
	"github.com/apscript-lang/apscript/ast"
	"github.com/apscript-lang/apscript/environment"
	"github.com/apscript-lang/apscript/objects"
)

// EvalScope evaluates stmts in order against env and returns the scope's
// result: Void if it ran to completion with no explicit RETURN, the
// returned value if one escaped, or an Exception.
func (e *Evaluator) EvalScope(stmts ast.Scope, env *environment.Environment) objects.Value {
	val, _ := e.evalScope(stmts, env)
	return val
}

// evalScope is EvalScope's internal form: the second return value is true
// when val should propagate straight through every enclosing scope
// without running their remaining statements — either because val is an
// Exception, or because a RETURN was reached. Folding both cases into one
// signal is what lets RETURN escape an arbitrarily nested IF/REPEAT/FOR
// without each construct needing to special-case Exception separately.
func (e *Evaluator) evalScope(stmts ast.Scope, env *environment.Environment) (objects.Value, bool) {
	for _, stmt := range stmts {
		val, stop := e.evalStmt(stmt, env)
		if stop {
			return val, true
		}
	}
	return objects.VoidValue, false
}

func (e *Evaluator) evalStmt(stmt ast.Stmt, env *environment.Environment) (objects.Value, bool) {
	if exc := e.tick(stmt.NodeSpan()); exc != nil {
		return exc, true
	}

	switch s := stmt.(type) {
	case *ast.ExprStmt:
		val := e.EvalExpr(s.E, env)
		if val.Kind() == objects.ExceptionKind {
			return val, true
		}
		return objects.VoidValue, false

	case *ast.VarAssign:
		val := e.EvalExpr(s.Value, env)
		if val.Kind() == objects.ExceptionKind {
			return val, true
		}
		env.Assign(s.NameSpan.Slice(e.src), val)
		return objects.VoidValue, false

	case *ast.IndexAssign:
		return e.evalIndexAssign(s, env)

	case *ast.If:
		return e.evalIf(s, env)

	case *ast.RepeatN:
		return e.evalRepeatN(s, env)

	case *ast.RepeatUntil:
		return e.evalRepeatUntil(s, env)

	case *ast.For:
		return e.evalFor(s, env)

	case *ast.Return:
		if s.Value == nil {
			return objects.VoidValue, true
		}
		val := e.EvalExpr(s.Value, env)
		return val, true

	case *ast.Procedure:
		name := s.NameSpan.Slice(e.src)
		env.Bind(name, &objects.Procedure{Name: name, Def: s})
		return objects.VoidValue, false

	default:
		return objects.NewException("unhandled statement", stmt.NodeSpan()), true
	}
}

func (e *Evaluator) evalIndexAssign(s *ast.IndexAssign, env *environment.Environment) (objects.Value, bool) {
	rootVal := e.EvalExpr(s.Root, env)
	if rootVal.Kind() == objects.ExceptionKind {
		return rootVal, true
	}
	arr, ok := rootVal.(*objects.Array)
	if !ok {
		return objects.NewException("value is not an array", s.Span), true
	}
	idxVal := e.EvalExpr(s.Index, env)
	if idxVal.Kind() == objects.ExceptionKind {
		return idxVal, true
	}
	num, ok := idxVal.(*objects.Number)
	if !ok {
		return objects.NewException("index must be a number", s.Span), true
	}
	val := e.EvalExpr(s.Value, env)
	if val.Kind() == objects.ExceptionKind {
		return val, true
	}
	idx := int(num.Value) - 1
	if idx < 0 || idx >= len(arr.Elements) {
		return objects.NewException("array index out of range", s.Span), true
	}
	arr.Elements[idx] = val
	return objects.VoidValue, false
}

func (e *Evaluator) evalIf(s *ast.If, env *environment.Environment) (objects.Value, bool) {
	cond := e.EvalExpr(s.Cond, env)
	if cond.Kind() == objects.ExceptionKind {
		return cond, true
	}
	cb, ok := cond.(*objects.Bool)
	if !ok {
		return objects.NewException("IF condition must be a boolean", s.Span), true
	}
	if cb.Value {
		return e.evalScope(s.Scope, env)
	}
	for _, ei := range s.ElseIfs {
		c := e.EvalExpr(ei.Cond, env)
		if c.Kind() == objects.ExceptionKind {
			return c, true
		}
		b, ok := c.(*objects.Bool)
		if !ok {
			return objects.NewException("ELSE IF condition must be a boolean", s.Span), true
		}
		if b.Value {
			return e.evalScope(ei.Scope, env)
		}
	}
	if s.HasElse {
		return e.evalScope(s.Else, env)
	}
	return objects.VoidValue, false
}

func (e *Evaluator) evalRepeatN(s *ast.RepeatN, env *environment.Environment) (objects.Value, bool) {
	n := e.EvalExpr(s.N, env)
	if n.Kind() == objects.ExceptionKind {
		return n, true
	}
	num, ok := n.(*objects.Number)
	if !ok || num.Value < 0 || num.Value != float32(int64(num.Value)) {
		return objects.NewException("REPEAT count must be a non-negative integer", s.Span), true
	}
	count := int64(num.Value)
	for i := int64(0); i < count; i++ {
		val, stop := e.evalScope(s.Scope, env)
		if stop {
			return val, true
		}
	}
	return objects.VoidValue, false
}

// evalRepeatUntil implements check-then-run semantics: cond is evaluated
// before every pass, the loop exits as soon as it is true, and otherwise
// the body runs once and cond is checked again. A cond that is already
// true on entry means the body never runs.
func (e *Evaluator) evalRepeatUntil(s *ast.RepeatUntil, env *environment.Environment) (objects.Value, bool) {
	for {
		cond := e.EvalExpr(s.Cond, env)
		if cond.Kind() == objects.ExceptionKind {
			return cond, true
		}
		cb, ok := cond.(*objects.Bool)
		if !ok {
			return objects.NewException("REPEAT UNTIL condition must be a boolean", s.Span), true
		}
		if cb.Value {
			return objects.VoidValue, false
		}
		val, stop := e.evalScope(s.Scope, env)
		if stop {
			return val, true
		}
	}
}

func (e *Evaluator) evalFor(s *ast.For, env *environment.Environment) (objects.Value, bool) {
	arrVal := e.EvalExpr(s.Array, env)
	if arrVal.Kind() == objects.ExceptionKind {
		return arrVal, true
	}
	arr, ok := arrVal.(*objects.Array)
	if !ok {
		return objects.NewException("FOR EACH source must be an array", s.Span), true
	}
	alias := s.AliasSpan.Slice(e.src)
	length := len(arr.Elements) // captured once: appends during the loop don't extend it
	for i := 0; i < length; i++ {
		env.Bind(alias, arr.Elements[i])
		val, stop := e.evalScope(s.Scope, env)
		if stop {
			return val, true
		}
	}
	return objects.VoidValue, false
}
