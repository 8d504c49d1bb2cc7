package core

// predicate builds a one-argument native type test.
func predicate(test func(Value) bool) NativeFunc {
	return func(ctx Context, args []Value) (Value, *LispError) {
		if len(args) != 1 {
			return nil, wrongArgCount(ctx, args)
		}
		return Boolean(test(args[0])), nil
	}
}

// setupPredicates installs the type predicates and the three-valued
// logic helpers of spec §4.10.
func setupPredicates(env *Environment) {
	defNative(env, "nil?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Nil); return ok }))
	defNative(env, "bool?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Boolean); return ok }))
	defNative(env, "char?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Character); return ok }))
	defNative(env, "int?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Integer); return ok }))
	defNative(env, "sym?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Symbol); return ok }))
	defNative(env, "fn?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Fn); return ok }))
	defNative(env, "macro?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Macro); return ok }))
	defNative(env, "list?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(*List); return ok }))
	defNative(env, "var?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Var); return ok }))
	defNative(env, "env?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(*Environment); return ok }))
	defNative(env, "error?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(*LispError); return ok }))
	defNative(env, "backtrace?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(*Backtrace); return ok }))
	defNative(env, "frame?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Frame); return ok }))
	defNative(env, "string?", ParamList{}, predicate(func(v Value) bool { _, ok := v.(Str); return ok }))

	defNative(env, "not", ParamList{Names: []Symbol{NewSymbol("x")}}, func(ctx Context, args []Value) (Value, *LispError) {
		return Boolean(!Truthy(args[0])), nil
	})

	defNative(env, "not=", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		for i := 1; i < len(args); i++ {
			if !Equal(args[i-1], args[i]) {
				return Boolean(true), nil
			}
		}
		return Boolean(false), nil
	})

	defNative(env, "eq?", ParamList{Names: []Symbol{NewSymbol("a"), NewSymbol("b")}}, func(ctx Context, args []Value) (Value, *LispError) {
		return Boolean(Identical(args[0], args[1])), nil
	})
}
