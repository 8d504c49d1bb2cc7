package core

// setupCollections installs list construction and inspection natives.
func setupCollections(env *Environment) {
	defNative(env, "list", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		return NewList(args...), nil
	})

	defNative(env, "null?", ParamList{Names: []Symbol{NewSymbol("x")}}, func(ctx Context, args []Value) (Value, *LispError) {
		l, ok := args[0].(*List)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return Boolean(l.IsEmpty()), nil
	})

	defNative(env, "length", ParamList{Names: []Symbol{NewSymbol("x")}}, func(ctx Context, args []Value) (Value, *LispError) {
		switch v := args[0].(type) {
		case *List:
			return IntegerFromInt64(int64(v.Len())), nil
		case Str:
			return IntegerFromInt64(int64(v.S.Len())), nil
		case *Backtrace:
			return IntegerFromInt64(int64(v.Len())), nil
		default:
			return nil, wrongType(ctx, args[0])
		}
	})
}
