package core

// Eval dispatches on the dynamic type of v exactly as the table in
// spec §4.5 describes: atoms return themselves, Unbound literals capture
// env, symbols resolve through the environment chain, and lists either
// hit a special form or become a procedure application.
func Eval(v Value, ctx Context, env *Environment, inBlock bool) (Value, *LispError) {
	switch t := v.(type) {
	case UnboundFn:
		return t.Bind(env), nil
	case UnboundMacro:
		return t.Bind(env), nil
	case Symbol:
		cell, ok := env.Get(t)
		if !ok {
			return nil, ctx.Error(ErrUnbound, NewList(t))
		}
		return cell.Get(), nil
	case *List:
		return evalList(t, ctx, env, inBlock)
	default:
		// Unspecified, Nil, Boolean, Character, Integer, Str, Fn, Macro,
		// Var, *Environment, *LispError, *Backtrace, Frame: self-evaluating.
		return v, nil
	}
}

func evalList(l *List, ctx Context, env *Environment, inBlock bool) (Value, *LispError) {
	if l == nil {
		return nil, ctx.Error(ErrSyntax, nil)
	}

	if sym, ok := l.First().(Symbol); ok && !sym.IsGensym() {
		if isSpecialForm(sym.Name()) {
			return evalSpecialForm(sym.Name(), l.Rest(), ctx, env, inBlock)
		}
	}

	head, err := Eval(l.First(), ctx, env, false)
	if err != nil {
		return nil, err
	}
	if _, isMacro := head.(Macro); isMacro {
		return nil, ctx.Error(ErrWrongType, nil)
	}

	rest := l.Rest()
	args := make([]Value, 0, rest.Len())
	for c := rest; c != nil; c = c.Rest() {
		av, err := Eval(c.First(), ctx, env, false)
		if err != nil {
			return nil, err
		}
		args = append(args, av)
	}

	return Apply(head, ctx, args)
}

// Apply applies callee to args, per the callee-kind table in spec §4.5:
// a Fn is arity-checked and called with a fresh backtrace frame; an
// Integer indexes into a List or String; anything else is a type error.
func Apply(callee Value, ctx Context, args []Value) (Value, *LispError) {
	switch c := callee.(type) {
	case Fn:
		if !c.params.Arity().Accepts(len(args)) {
			return nil, ctx.Error(ErrWrongArgCount, nil)
		}
		var frame Frame
		if name, ok := c.Name(); ok {
			frame = NamedFrame(c.Addr(), name)
		} else {
			frame = UnnamedFrame(c.Addr())
		}
		return c.Call(ctx.WithFrame(frame), args)
	case Integer:
		if len(args) != 1 {
			return nil, ctx.Error(ErrWrongArgCount, nil)
		}
		return elementAt(ctx, args[0], c)
	default:
		return nil, ctx.Error(ErrWrongType, nil)
	}
}

// Accepts reports whether n arguments satisfy a. Exact arities require an
// exact match; variadic arities require at least the minimum.
func (a Arity) Accepts(n int) bool {
	if a.variadic {
		return n >= a.Min()
	}
	return n == a.n
}

// Call implements the procedure call protocol of spec §4.8: native
// procedures simply run, Lisp procedures bind a fresh child of their
// captured environment and evaluate their body as a block, macro
// expanding each body expression relative to that child first.
func (p *Procedure) Call(ctx Context, args []Value) (Value, *LispError) {
	if p.native != nil {
		return p.native(ctx, args)
	}

	callEnv := p.env.ChildEmpty()
	for i, name := range p.params.Names {
		callEnv.Define(name, args[i])
	}
	if p.params.Rest != nil {
		callEnv.Define(*p.params.Rest, NewList(args[len(p.params.Names):]...))
	}

	return EvalBlock(p.body, ctx, callEnv)
}

// EvalBlock requires a non-empty expression sequence; it macro-expands
// and evaluates each expression in turn in block mode, returning the
// final expression's value.
func EvalBlock(exprs []Value, ctx Context, env *Environment) (Value, *LispError) {
	if len(exprs) == 0 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	var result Value = Unspecified{}
	for _, e := range exprs {
		expanded, err := Macroexpand(e, ctx, env, true)
		if err != nil {
			return nil, err
		}
		result, err = Eval(expanded, ctx, env, true)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// elementAt implements "indexing as calling": an Integer applied to a
// single List or String argument returns the element at that position,
// or Nil when the index is out of range.
func elementAt(ctx Context, x Value, n Integer) (Value, *LispError) {
	if n.V == nil || !n.V.IsInt64() {
		return Nil{}, nil
	}
	idx := n.V.Int64()
	if idx < 0 {
		return Nil{}, nil
	}

	switch v := x.(type) {
	case *List:
		val, ok := v.Nth(int(idx))
		if !ok {
			return Nil{}, nil
		}
		return val, nil
	case Str:
		runes := v.S.Runes()
		if idx >= int64(len(runes)) {
			return Nil{}, nil
		}
		return Character(runes[idx]), nil
	default:
		return nil, ctx.Error(ErrWrongType, nil)
	}
}
