package core

import "math/big"

func asInteger(v Value) (Integer, bool) {
	i, ok := v.(Integer)
	return i, ok
}

// setupArithmetic installs +, -, *, / and the strictly-ordered integer
// comparisons of spec §4.10.
func setupArithmetic(env *Environment) {
	defNative(env, "+", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		sum := big.NewInt(0)
		for _, a := range args {
			n, ok := asInteger(a)
			if !ok {
				return nil, wrongType(ctx, a)
			}
			sum.Add(sum, n.V)
		}
		return NewInteger(sum), nil
	})

	defNative(env, "-", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		if len(args) == 0 {
			return nil, wrongArgCount(ctx, args)
		}
		first, ok := asInteger(args[0])
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		if len(args) == 1 {
			return NewInteger(new(big.Int).Neg(first.V)), nil
		}
		result := new(big.Int).Set(first.V)
		for _, a := range args[1:] {
			n, ok := asInteger(a)
			if !ok {
				return nil, wrongType(ctx, a)
			}
			result.Sub(result, n.V)
		}
		return NewInteger(result), nil
	})

	defNative(env, "*", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		prod := big.NewInt(1)
		for _, a := range args {
			n, ok := asInteger(a)
			if !ok {
				return nil, wrongType(ctx, a)
			}
			prod.Mul(prod, n.V)
		}
		return NewInteger(prod), nil
	})

	defNative(env, "/", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		if len(args) == 0 {
			return nil, wrongArgCount(ctx, args)
		}
		first, ok := asInteger(args[0])
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		if len(args) == 1 {
			return divideInts(ctx, big.NewInt(1), first.V)
		}
		denom := big.NewInt(1)
		for _, a := range args[1:] {
			n, ok := asInteger(a)
			if !ok {
				return nil, wrongType(ctx, a)
			}
			denom.Mul(denom, n.V)
		}
		return divideInts(ctx, first.V, denom)
	})

	defNative(env, "<", ParamList{}, orderedIntChain(func(c int) bool { return c < 0 }))
	defNative(env, "<=", ParamList{}, orderedIntChain(func(c int) bool { return c <= 0 }))
	defNative(env, ">", ParamList{}, orderedIntChain(func(c int) bool { return c > 0 }))
	defNative(env, ">=", ParamList{}, orderedIntChain(func(c int) bool { return c >= 0 }))

	defNative(env, "=", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		for i := 1; i < len(args); i++ {
			if !Equal(args[i-1], args[i]) {
				return Boolean(false), nil
			}
		}
		return Boolean(true), nil
	})

	defNative(env, "1+", ParamList{Names: []Symbol{NewSymbol("n")}}, func(ctx Context, args []Value) (Value, *LispError) {
		n, ok := asInteger(args[0])
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return NewInteger(new(big.Int).Add(n.V, big.NewInt(1))), nil
	})

	// inc! expands to (set! n (+ 1 n)).
	defMacroNative(env, "inc!", func(ctx Context, args []Value) (Value, *LispError) {
		if len(args) != 1 {
			return nil, ctx.Error(ErrSyntax, nil)
		}
		n := args[0]
		return NewList(NewSymbol("set!"), n, NewList(NewSymbol("+"), IntegerFromInt64(1), n)), nil
	})
}

func divideInts(ctx Context, num, denom *big.Int) (Value, *LispError) {
	if denom.Sign() == 0 {
		return nil, ctx.Error(ErrWrongType, NewList(NewInteger(num), NewInteger(denom)))
	}
	q := new(big.Int).Quo(num, denom)
	return NewInteger(q), nil
}

func orderedIntChain(ok func(cmp int) bool) NativeFunc {
	return func(ctx Context, args []Value) (Value, *LispError) {
		for i := 1; i < len(args); i++ {
			a, aok := asInteger(args[i-1])
			b, bok := asInteger(args[i])
			if !aok {
				return nil, wrongType(ctx, args[i-1])
			}
			if !bok {
				return nil, wrongType(ctx, args[i])
			}
			if !ok(a.V.Cmp(b.V)) {
				return Boolean(false), nil
			}
		}
		return Boolean(true), nil
	}
}
