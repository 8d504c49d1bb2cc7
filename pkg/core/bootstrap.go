package core

// NewRootEnvironmentWithPrelude returns a fresh root environment with the
// standard bindings of spec §4.10 installed.
func NewRootEnvironmentWithPrelude() *Environment {
	env := NewRootEnvironment()
	setupArithmetic(env)
	setupPredicates(env)
	setupCollections(env)
	setupStrings(env)
	setupIO(env)
	setupProcedureLiterals(env)
	setupMeta(env)
	setupHigherOrder(env)
	return env
}

// defNative binds a native Fn. An empty ParamList declares the native
// variadic: it receives every argument and checks their count itself.
func defNative(env *Environment, name string, params ParamList, fn NativeFunc) {
	if len(params.Names) == 0 && params.Rest == nil {
		rest := NewSymbol("args")
		params.Rest = &rest
	}
	env.Define(NewSymbol(name), Fn{NewNative(params, nil, fn)})
}

func defMacroNative(env *Environment, name string, fn NativeFunc) {
	env.Define(NewSymbol(name), Macro{NewNative(ParamList{}, nil, fn)})
}

func wrongType(ctx Context, v Value) *LispError {
	return ctx.Error(ErrWrongType, NewList(v))
}

func wrongArgCount(ctx Context, args []Value) *LispError {
	elems := make([]Value, len(args))
	copy(elems, args)
	return ctx.Error(ErrWrongArgCount, NewList(elems...))
}
