package core

// setupProcedureLiterals binds fn and macro. Per spec §4.6 these are not
// special forms: they are themselves macros, invoked during expansion,
// producing an UnboundFn/UnboundMacro Value that captures its definition
// environment only once it is later evaluated.
func setupProcedureLiterals(env *Environment) {
	defMacroNative(env, "fn", func(ctx Context, args []Value) (Value, *LispError) {
		lit, err := parseLambdaLiteral(ctx, "fn", args)
		if err != nil {
			return nil, err
		}
		return UnboundFn{lit}, nil
	})

	defMacroNative(env, "macro", func(ctx Context, args []Value) (Value, *LispError) {
		lit, err := parseLambdaLiteral(ctx, "macro", args)
		if err != nil {
			return nil, err
		}
		return UnboundMacro{lit}, nil
	})
}

// parseLambdaLiteral parses the shared shape of (fn (params…) doc? body…)
// and (macro (params…) doc? body…), keeping the original form for Source.
func parseLambdaLiteral(ctx Context, head string, args []Value) (lambdaLiteral, *LispError) {
	if len(args) < 2 {
		return lambdaLiteral{}, ctx.Error(ErrSyntax, nil)
	}
	paramForm, ok := args[0].(*List)
	if !ok {
		return lambdaLiteral{}, ctx.Error(ErrSyntax, nil)
	}
	params, perr := ParseParams(paramForm)
	if perr != nil {
		return lambdaLiteral{}, perr
	}

	rest := args[1:]
	var doc *PooledString
	if len(rest) > 1 {
		if s, ok := rest[0].(Str); ok {
			doc = &s.S
			rest = rest[1:]
		}
	}
	if len(rest) == 0 {
		return lambdaLiteral{}, ctx.Error(ErrSyntax, nil)
	}

	source := NewList(append([]Value{NewSymbol(head)}, args...)...)
	return lambdaLiteral{Params: params, Doc: doc, Body: rest, Source: source}, nil
}
