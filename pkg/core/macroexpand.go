package core

// Macroexpand rewrites value by repeatedly invoking any macro bound to
// its head symbol until a fixed point is reached (spec §4.7), then
// recurses into every element of the resulting list. quote is left
// completely untouched; quasiquote's payload is only expanded at its
// unquote/unquote-splicing leaves, everything else under it is preserved
// literally. When inBlock is set and the head is def or let, the
// head-as-macro lookup is skipped (their special-form status always
// wins), but their children are still recursed into below — each of
// those special forms re-expands its own nested blocks (let bodies,
// lambda bodies) itself, at the right time and against the right
// environment, so this first pass over them is harmless even where it's
// redundant.
func Macroexpand(v Value, ctx Context, env *Environment, inBlock bool) (Value, *LispError) {
	cur := v

	for {
		lst, ok := cur.(*List)
		if !ok {
			return cur, nil
		}

		sym, hasSym := firstSymbol(lst)
		if hasSym && sym.Name() == "quote" {
			return lst, nil
		}
		if hasSym && sym.Name() == "quasiquote" {
			return expandQuasiquoteForm(lst, ctx, env)
		}
		if inBlock && hasSym && (sym.Name() == "def" || sym.Name() == "let") {
			break
		}
		if !hasSym {
			break
		}

		cell, found := env.Get(sym)
		if !found {
			break
		}
		mac, isMacro := cell.Get().(Macro)
		if !isMacro {
			break
		}

		expanded, err := mac.Call(ctx, lst.Rest().ToSlice())
		if err != nil {
			return nil, err
		}
		cur = expanded
	}

	lst, ok := cur.(*List)
	if !ok {
		return cur, nil
	}

	elems := lst.ToSlice()
	out := make([]Value, len(elems))
	for i, e := range elems {
		expanded, err := Macroexpand(e, ctx, env, false)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return NewList(out...), nil
}

// firstSymbol returns the list's head as a Symbol, if it is one.
func firstSymbol(l *List) (Symbol, bool) {
	if l == nil {
		return Symbol{}, false
	}
	sym, ok := l.head.(Symbol)
	return sym, ok
}

// expandQuasiquoteForm handles the macroexpand-time treatment of a
// (quasiquote t) form: only unquote/unquote-splicing payloads anywhere
// within t are macro-expanded; every other part of t's structure is left
// exactly as the reader produced it.
func expandQuasiquoteForm(l *List, ctx Context, env *Environment) (Value, *LispError) {
	if l.Len() != 2 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	body, err := expandQuasiquoteBody(l.Rest().First(), ctx, env)
	if err != nil {
		return nil, err
	}
	return NewList(NewSymbol("quasiquote"), body), nil
}

func expandQuasiquoteBody(v Value, ctx Context, env *Environment) (Value, *LispError) {
	lst, ok := v.(*List)
	if !ok {
		return v, nil
	}

	if sym, hasSym := firstSymbol(lst); hasSym && (sym.Name() == "unquote" || sym.Name() == "unquote-splicing") {
		if lst.Len() != 2 {
			return nil, ctx.Error(ErrSyntax, nil)
		}
		payload, err := Macroexpand(lst.Rest().First(), ctx, env, false)
		if err != nil {
			return nil, err
		}
		return NewList(sym, payload), nil
	}

	elems := lst.ToSlice()
	out := make([]Value, len(elems))
	for i, e := range elems {
		expanded, err := expandQuasiquoteBody(e, ctx, env)
		if err != nil {
			return nil, err
		}
		out[i] = expanded
	}
	return NewList(out...), nil
}
