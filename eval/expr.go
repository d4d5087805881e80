/*
File    : apscript/eval/expr.go
Package : eval
*/
package eval

import (
	"math"
	"strconv"

	"github.com/apscript-lang/apscript/ast"
	"github.com/apscript-lang/apscript/environment"
	"github.com/apscript-lang/apscript/objects"
)

// EvalExpr evaluates expr against env. Every branch that evaluates a
// sub-expression checks for an Exception and returns it immediately,
// unmodified except where the construct is explicitly required to
// rewrap it (FnCall's call-site framing).
func (e *Evaluator) EvalExpr(expr ast.Expr, env *environment.Environment) objects.Value {
	switch n := expr.(type) {
	case *ast.True:
		return &objects.Bool{Value: true}
	case *ast.False:
		return &objects.Bool{Value: false}

	case *ast.Identifier:
		name := n.Span.Slice(e.src)
		if v, ok := env.Get(name); ok {
			return v
		}
		return objects.NewException("'"+name+"' is not defined", n.Span)

	case *ast.StringLiteral:
		body := n.Span.Slice(e.src)
		return &objects.String{Value: body[1 : len(body)-1]}

	case *ast.IntegerLiteral:
		text := n.Span.Slice(e.src)
		i, _ := strconv.ParseInt(text, 10, 64)
		return &objects.Number{Value: float32(i)}

	case *ast.FloatLiteral:
		text := n.Span.Slice(e.src)
		f, _ := strconv.ParseFloat(text, 32)
		return &objects.Number{Value: float32(f)}

	case *ast.HexLiteral, *ast.BinaryLiteral:
		return objects.NewException("hexadecimal and binary literals are not supported at runtime", expr.NodeSpan())

	case *ast.Paren:
		return e.EvalExpr(n.Value, env)

	case *ast.ArrayLiteral:
		elems := make([]objects.Value, 0, len(n.Values))
		for _, v := range n.Values {
			val := e.EvalExpr(v, env)
			if val.Kind() == objects.ExceptionKind {
				return val
			}
			elems = append(elems, val)
		}
		return &objects.Array{Elements: elems}

	case *ast.UnaryOp:
		return e.evalUnaryOp(n, env)

	case *ast.BinaryOp:
		return e.evalBinaryOp(n, env)

	case *ast.Index:
		return e.evalIndex(n, env)

	case *ast.FnCall:
		return e.evalFnCall(n, env)

	default:
		return objects.NewException("unhandled expression", expr.NodeSpan())
	}
}

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp, env *environment.Environment) objects.Value {
	v := e.EvalExpr(n.Value, env)
	if v.Kind() == objects.ExceptionKind {
		return v
	}
	switch n.Kind {
	case ast.Not:
		b, ok := v.(*objects.Bool)
		if !ok {
			return objects.NewException("operand of NOT must be a boolean", n.Span)
		}
		return &objects.Bool{Value: !b.Value}
	case ast.Pos:
		num, ok := v.(*objects.Number)
		if !ok {
			return objects.NewException("operand of unary + must be a number", n.Span)
		}
		return &objects.Number{Value: num.Value}
	case ast.Neg:
		num, ok := v.(*objects.Number)
		if !ok {
			return objects.NewException("operand of unary - must be a number", n.Span)
		}
		return &objects.Number{Value: -num.Value}
	default:
		return objects.NewException("unhandled unary operator", n.Span)
	}
}

func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp, env *environment.Environment) objects.Value {
	if n.Kind == ast.And {
		lhs := e.EvalExpr(n.Lhs, env)
		if lhs.Kind() == objects.ExceptionKind {
			return lhs
		}
		lb, ok := lhs.(*objects.Bool)
		if !ok {
			return objects.NewException("left operand of AND must be a boolean", n.Span)
		}
		if !lb.Value {
			return &objects.Bool{Value: false}
		}
		rhs := e.EvalExpr(n.Rhs, env)
		if rhs.Kind() == objects.ExceptionKind {
			return rhs
		}
		rb, ok := rhs.(*objects.Bool)
		if !ok {
			return objects.NewException("right operand of AND must be a boolean", n.Span)
		}
		return &objects.Bool{Value: rb.Value}
	}

	if n.Kind == ast.Or {
		lhs := e.EvalExpr(n.Lhs, env)
		if lhs.Kind() == objects.ExceptionKind {
			return lhs
		}
		lb, ok := lhs.(*objects.Bool)
		if !ok {
			return objects.NewException("left operand of OR must be a boolean", n.Span)
		}
		if lb.Value {
			return &objects.Bool{Value: true}
		}
		rhs := e.EvalExpr(n.Rhs, env)
		if rhs.Kind() == objects.ExceptionKind {
			return rhs
		}
		rb, ok := rhs.(*objects.Bool)
		if !ok {
			return objects.NewException("right operand of OR must be a boolean", n.Span)
		}
		return &objects.Bool{Value: rb.Value}
	}

	lhs := e.EvalExpr(n.Lhs, env)
	if lhs.Kind() == objects.ExceptionKind {
		return lhs
	}
	rhs := e.EvalExpr(n.Rhs, env)
	if rhs.Kind() == objects.ExceptionKind {
		return rhs
	}

	switch n.Kind {
	case ast.Equal:
		return &objects.Bool{Value: objects.Equal(lhs, rhs)}
	case ast.NotEqual:
		return &objects.Bool{Value: !objects.Equal(lhs, rhs)}
	}

	ln, ok1 := lhs.(*objects.Number)
	rn, ok2 := rhs.(*objects.Number)
	if !ok1 || !ok2 {
		return objects.NewException("operands must be numbers", n.Span)
	}

	switch n.Kind {
	case ast.Add:
		return &objects.Number{Value: ln.Value + rn.Value}
	case ast.Sub:
		return &objects.Number{Value: ln.Value - rn.Value}
	case ast.Mul:
		return &objects.Number{Value: ln.Value * rn.Value}
	case ast.Div:
		return &objects.Number{Value: ln.Value / rn.Value}
	case ast.Mod:
		return &objects.Number{Value: float32(mod32(ln.Value, rn.Value))}
	case ast.Less:
		return &objects.Bool{Value: ln.Value < rn.Value}
	case ast.LessEqual:
		return &objects.Bool{Value: ln.Value <= rn.Value}
	case ast.Greater:
		return &objects.Bool{Value: ln.Value > rn.Value}
	case ast.GreaterEqual:
		return &objects.Bool{Value: ln.Value >= rn.Value}
	default:
		return objects.NewException("unhandled binary operator", n.Span)
	}
}

// mod32 implements the host floating-point remainder (fmod), not Go's %
// which is integer-only.
func mod32(a, b float32) float64 {
	return math.Mod(float64(a), float64(b))
}

func (e *Evaluator) evalIndex(n *ast.Index, env *environment.Environment) objects.Value {
	v := e.EvalExpr(n.Value, env)
	if v.Kind() == objects.ExceptionKind {
		return v
	}
	arr, ok := v.(*objects.Array)
	if !ok {
		return objects.NewException("value is not an array", n.Span)
	}
	iv := e.EvalExpr(n.Idx, env)
	if iv.Kind() == objects.ExceptionKind {
		return iv
	}
	num, ok := iv.(*objects.Number)
	if !ok {
		return objects.NewException("index must be a number", n.Span)
	}
	idx := int(num.Value) - 1
	if idx < 0 || idx >= len(arr.Elements) {
		return objects.NewException("array index out of range", n.Span)
	}
	return arr.Elements[idx]
}

func (e *Evaluator) evalFnCall(n *ast.FnCall, env *environment.Environment) objects.Value {
	callee := e.EvalExpr(n.Callee, env)
	if callee.Kind() == objects.ExceptionKind {
		return callee
	}

	switch fn := callee.(type) {
	case *objects.Procedure:
		if len(n.Args) != len(fn.Def.Params) {
			return objects.NewException(
				"expected "+strconv.Itoa(len(fn.Def.Params))+" argument(s), found "+strconv.Itoa(len(n.Args)),
				n.Span,
			)
		}
		args := make([]objects.Value, len(n.Args))
		for i, a := range n.Args {
			v := e.EvalExpr(a, env)
			if v.Kind() == objects.ExceptionKind {
				return v
			}
			args[i] = v
		}
		child := environment.New(env)
		for i, param := range fn.Def.Params {
			child.Bind(param.Span.Slice(e.src), args[i])
		}
		result := e.EvalScope(fn.Def.Scope, child)
		if exc, ok := result.(*objects.Exception); ok {
			return exc.WithFrame(n.Span)
		}
		return result

	case *objects.Builtin:
		args := make([]objects.Value, len(n.Args))
		for i, a := range n.Args {
			v := e.EvalExpr(a, env)
			if v.Kind() == objects.ExceptionKind {
				return v
			}
			args[i] = v
		}
		result := fn.Fn(e, args)
		if exc, ok := result.(*objects.Exception); ok {
			return &objects.Exception{Message: exc.Message, Span: n.Span}
		}
		return result

	default:
		return objects.NewException("value is not callable", n.Span)
	}
}

