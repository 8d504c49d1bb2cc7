package core

// setupStrings installs the string/symbol conversion and inspection
// natives of spec §4.10.
func setupStrings(env *Environment) {
	defNative(env, "string->sym", ParamList{Names: []Symbol{NewSymbol("s")}}, func(ctx Context, args []Value) (Value, *LispError) {
		s, ok := args[0].(Str)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return NewSymbol(s.S.Raw()), nil
	})

	// sym->string prints gensyms as gensym(n), matching Symbol.String.
	defNative(env, "sym->string", ParamList{Names: []Symbol{NewSymbol("s")}}, func(ctx Context, args []Value) (Value, *LispError) {
		sym, ok := args[0].(Symbol)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return Str{S: heapString(sym.String())}, nil
	})

	defNative(env, "string-length", ParamList{Names: []Symbol{NewSymbol("s")}}, func(ctx Context, args []Value) (Value, *LispError) {
		s, ok := args[0].(Str)
		if !ok {
			return nil, wrongType(ctx, args[0])
		}
		return IntegerFromInt64(int64(s.S.Len())), nil
	})

	defNative(env, "substring", ParamList{Names: []Symbol{NewSymbol("s"), NewSymbol("start"), NewSymbol("end")}},
		func(ctx Context, args []Value) (Value, *LispError) {
			s, ok := args[0].(Str)
			if !ok {
				return nil, wrongType(ctx, args[0])
			}
			start, ok := asInteger(args[1])
			if !ok {
				return nil, wrongType(ctx, args[1])
			}
			end, ok := asInteger(args[2])
			if !ok {
				return nil, wrongType(ctx, args[2])
			}
			if !start.V.IsInt64() || !end.V.IsInt64() {
				return nil, ctx.Error(ErrOutOfRange, NewList(args[1], args[2]))
			}
			lo, hi := int(start.V.Int64()), int(end.V.Int64())
			if lo < 0 || hi < lo || hi > s.S.Len() {
				return nil, ctx.Error(ErrOutOfRange, NewList(args[1], args[2]))
			}
			return Str{S: s.S.Slice(lo, hi)}, nil
		})
}
