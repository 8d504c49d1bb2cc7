package core

// setupHigherOrder binds begin and apply as ordinary callables too, so
// that code which captures them as values (passing `apply` to another
// higher-order procedure, say) gets equivalent behaviour to the special
// forms of the same name — the only difference is that by the time a
// function call reaches these, their arguments are already evaluated.
func setupHigherOrder(env *Environment) {
	defNative(env, "begin", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		if len(args) == 0 {
			return nil, ctx.Error(ErrSyntax, nil)
		}
		return args[len(args)-1], nil
	})

	defNative(env, "apply", ParamList{Names: []Symbol{NewSymbol("f"), NewSymbol("args")}}, func(ctx Context, args []Value) (Value, *LispError) {
		argList, ok := args[1].(*List)
		if !ok {
			return nil, wrongType(ctx, args[1])
		}
		return Apply(args[0], ctx, argList.ToSlice())
	})
}
