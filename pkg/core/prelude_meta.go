package core

// setupMeta installs procedure introspection, gensym, the error
// primitives, eval, and the defn/defmacro/primitive-eval sugar macros of
// spec §4.10.
func setupMeta(env *Environment) {
	defNative(env, "fn-name", ParamList{Names: []Symbol{NewSymbol("f")}}, func(ctx Context, args []Value) (Value, *LispError) {
		f, ok := args[0].(Fn)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return procName(f.Procedure), nil
	})
	defNative(env, "macro-name", ParamList{Names: []Symbol{NewSymbol("m")}}, func(ctx Context, args []Value) (Value, *LispError) {
		m, ok := args[0].(Macro)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return procName(m.Procedure), nil
	})

	defNative(env, "fn-doc", ParamList{Names: []Symbol{NewSymbol("f")}}, func(ctx Context, args []Value) (Value, *LispError) {
		f, ok := args[0].(Fn)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return procDoc(f.Procedure), nil
	})
	defNative(env, "macro-doc", ParamList{Names: []Symbol{NewSymbol("m")}}, func(ctx Context, args []Value) (Value, *LispError) {
		m, ok := args[0].(Macro)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return procDoc(m.Procedure), nil
	})

	defNative(env, "fn-source", ParamList{Names: []Symbol{NewSymbol("f")}}, func(ctx Context, args []Value) (Value, *LispError) {
		f, ok := args[0].(Fn)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return procSource(f.Procedure), nil
	})
	defNative(env, "macro-source", ParamList{Names: []Symbol{NewSymbol("m")}}, func(ctx Context, args []Value) (Value, *LispError) {
		m, ok := args[0].(Macro)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return procSource(m.Procedure), nil
	})

	defNative(env, "gensym", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		return ctx.Gensym(), nil
	})

	defNative(env, "backtrace", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		return ctx.Trace(), nil
	})

	defNative(env, "throw", ParamList{Names: []Symbol{NewSymbol("name"), NewSymbol("args")}}, func(ctx Context, args []Value) (Value, *LispError) {
		argList, ok := args[1].(*List)
		if !ok {
			return nil, wrongType(ctx, args[1])
		}
		return nil, ctx.Error(args[0].String(), argList)
	})

	defNative(env, "catch-all", ParamList{Names: []Symbol{NewSymbol("thunk"), NewSymbol("handler")}}, func(ctx Context, args []Value) (Value, *LispError) {
		result, err := Apply(args[0], ctx, nil)
		if err == nil {
			return result, nil
		}
		return Apply(args[1], ctx, []Value{err})
	})

	defNative(env, "eval", ParamList{Names: []Symbol{NewSymbol("form"), NewSymbol("env")}}, func(ctx Context, args []Value) (Value, *LispError) {
		evalEnv, ok := args[1].(*Environment)
		if !ok {
			return nil, wrongType(ctx, args[1])
		}
		expanded, err := Macroexpand(args[0], ctx, evalEnv, false)
		if err != nil {
			return nil, err
		}
		return Eval(expanded, ctx, evalEnv, false)
	})

	// (defn name (params…) doc? body…) => (def name (fn (params…) doc? body…))
	defMacroNative(env, "defn", func(ctx Context, args []Value) (Value, *LispError) {
		if len(args) < 2 {
			return nil, ctx.Error(ErrSyntax, nil)
		}
		name := args[0]
		lambda := append([]Value{NewSymbol("fn")}, args[1:]...)
		return NewList(NewSymbol("def"), name, NewList(lambda...)), nil
	})

	// (defmacro name (params…) doc? body…) => (def name (macro (params…) doc? body…))
	defMacroNative(env, "defmacro", func(ctx Context, args []Value) (Value, *LispError) {
		if len(args) < 2 {
			return nil, ctx.Error(ErrSyntax, nil)
		}
		name := args[0]
		lambda := append([]Value{NewSymbol("macro")}, args[1:]...)
		return NewList(NewSymbol("def"), name, NewList(lambda...)), nil
	})

	// (primitive-eval x) => (eval x (current-environment))
	defMacroNative(env, "primitive-eval", func(ctx Context, args []Value) (Value, *LispError) {
		if len(args) != 1 {
			return nil, ctx.Error(ErrSyntax, nil)
		}
		return NewList(NewSymbol("eval"), args[0], NewList(NewSymbol("current-environment"))), nil
	})
}

func procName(p *Procedure) Value {
	if n, ok := p.Name(); ok {
		return n
	}
	return Boolean(false)
}

func procDoc(p *Procedure) Value {
	if d, ok := p.Doc(); ok {
		return Str{S: heapString(d)}
	}
	return Boolean(false)
}

func procSource(p *Procedure) Value {
	if s, ok := p.Source(); ok {
		return s
	}
	return Boolean(false)
}
