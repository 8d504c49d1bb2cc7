package core

// specialFormNames lists every symbol the evaluator recognises as a
// special form before general application dispatch (spec §4.6). `fn` and
// `macro` are deliberately absent: per spec they are ordinary macros
// bound in the default environment (see bootstrap.go), not special forms.
var specialFormNames = map[string]bool{
	"quote":               true,
	"quasiquote":          true,
	"if":                  true,
	"def":                 true,
	"set!":                true,
	"current-environment": true,
	"let":                 true,
	"let*":                true,
	"letrec":              true,
	"letrec*":             true,
	"begin":               true,
	"apply":               true,
}

func isSpecialForm(name string) bool { return specialFormNames[name] }

func evalSpecialForm(name string, args *List, ctx Context, env *Environment, inBlock bool) (Value, *LispError) {
	switch name {
	case "quote":
		return evalQuote(args, ctx)
	case "quasiquote":
		return evalQuasiquote(args, ctx, env)
	case "if":
		return evalIf(args, ctx, env)
	case "def":
		return evalDef(args, ctx, env, inBlock)
	case "set!":
		return evalSetBang(args, ctx, env)
	case "current-environment":
		return evalCurrentEnvironment(args, ctx, env)
	case "let":
		return evalLet(args, ctx, env)
	case "let*":
		return evalLetStar(args, ctx, env)
	case "letrec":
		return evalLetrec(args, ctx, env)
	case "letrec*":
		return evalLetrecStar(args, ctx, env)
	case "begin":
		return evalBegin(args, ctx, env)
	case "apply":
		return evalApplyForm(args, ctx, env)
	default:
		return nil, ctx.Error(ErrSyntax, nil)
	}
}

func evalQuote(args *List, ctx Context) (Value, *LispError) {
	if args.Len() != 1 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	return args.First(), nil
}

func evalIf(args *List, ctx Context, env *Environment) (Value, *LispError) {
	n := args.Len()
	if n < 2 || n > 3 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	elems := args.ToSlice()

	cond, err := Eval(elems[0], ctx, env, false)
	if err != nil {
		return nil, err
	}
	if Truthy(cond) {
		return Eval(elems[1], ctx, env, false)
	}
	if n == 3 {
		return Eval(elems[2], ctx, env, false)
	}
	return Unspecified{}, nil
}

func evalDef(args *List, ctx Context, env *Environment, inBlock bool) (Value, *LispError) {
	if !inBlock {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	elems := args.ToSlice()
	if len(elems) < 1 || len(elems) > 2 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	name, ok := elems[0].(Symbol)
	if !ok {
		return nil, ctx.Error(ErrSyntax, nil)
	}

	var valueExpr Value = Unspecified{}
	if len(elems) == 2 {
		valueExpr = elems[1]
	}

	val, err := Eval(valueExpr, ctx, env, false)
	if err != nil {
		return nil, err
	}

	switch p := val.(type) {
	case Fn:
		p.SetName(name)
	case Macro:
		p.SetName(name)
	}

	env.Define(name, val)
	return Unspecified{}, nil
}

func evalSetBang(args *List, ctx Context, env *Environment) (Value, *LispError) {
	if args.Len() != 2 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	elems := args.ToSlice()
	name, ok := elems[0].(Symbol)
	if !ok {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	val, err := Eval(elems[1], ctx, env, false)
	if err != nil {
		return nil, err
	}
	if !env.Set(name, val) {
		return nil, ctx.Error(ErrUnbound, NewList(name))
	}
	return Unspecified{}, nil
}

func evalCurrentEnvironment(args *List, ctx Context, env *Environment) (Value, *LispError) {
	if args.Len() != 0 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	return env, nil
}

// parseBindings validates and splits a let-family bindings list into
// names and value expressions, plus the body forms that follow it. The
// bindings are either (name expr) pairs, as in ((x 1) (y 2)), or a flat
// list of alternating symbol/expression pairs, as in (x 1 y 2).
func parseBindings(args *List, ctx Context) ([]Symbol, []Value, []Value, *LispError) {
	if args.Len() < 2 {
		return nil, nil, nil, ctx.Error(ErrSyntax, nil)
	}
	elems := args.ToSlice()
	bindings, ok := elems[0].(*List)
	if !ok {
		return nil, nil, nil, ctx.Error(ErrSyntax, nil)
	}
	pairs := bindings.ToSlice()
	if len(pairs) > 0 {
		if _, flat := pairs[0].(Symbol); !flat {
			var flattened []Value
			for _, p := range pairs {
				pair, ok := p.(*List)
				if !ok || pair.Len() != 2 {
					return nil, nil, nil, ctx.Error(ErrSyntax, nil)
				}
				flattened = append(flattened, pair.ToSlice()...)
			}
			pairs = flattened
		}
	}
	if len(pairs)%2 != 0 {
		return nil, nil, nil, ctx.Error(ErrSyntax, nil)
	}

	var names []Symbol
	var values []Value
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(Symbol)
		if !ok {
			return nil, nil, nil, ctx.Error(ErrSyntax, nil)
		}
		names = append(names, name)
		values = append(values, pairs[i+1])
	}

	return names, values, elems[1:], nil
}

func evalLet(args *List, ctx Context, env *Environment) (Value, *LispError) {
	names, valueExprs, body, err := parseBindings(args, ctx)
	if err != nil {
		return nil, err
	}

	vals := make([]Value, len(names))
	for i, e := range valueExprs {
		expanded, err := Macroexpand(e, ctx, env, false)
		if err != nil {
			return nil, err
		}
		v, err := Eval(expanded, ctx, env, false)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	blockEnv := env.ChildEmpty()
	for i, n := range names {
		blockEnv.Define(n, vals[i])
	}

	return EvalBlock(body, ctx, blockEnv)
}

func evalLetStar(args *List, ctx Context, env *Environment) (Value, *LispError) {
	names, valueExprs, body, err := parseBindings(args, ctx)
	if err != nil {
		return nil, err
	}

	blockEnv := env.ChildEmpty()
	for i, e := range valueExprs {
		expanded, err := Macroexpand(e, ctx, blockEnv, false)
		if err != nil {
			return nil, err
		}
		v, err := Eval(expanded, ctx, blockEnv, false)
		if err != nil {
			return nil, err
		}
		blockEnv.Define(names[i], v)
	}

	return EvalBlock(body, ctx, blockEnv)
}

func evalLetrec(args *List, ctx Context, env *Environment) (Value, *LispError) {
	names, valueExprs, body, err := parseBindings(args, ctx)
	if err != nil {
		return nil, err
	}

	blockEnv := env.ChildEmpty()
	for _, n := range names {
		blockEnv.Define(n, Unspecified{})
	}

	vals := make([]Value, len(names))
	for i, e := range valueExprs {
		expanded, err := Macroexpand(e, ctx, blockEnv, false)
		if err != nil {
			return nil, err
		}
		v, err := Eval(expanded, ctx, blockEnv, false)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	for i, n := range names {
		blockEnv.Define(n, vals[i])
	}

	return EvalBlock(body, ctx, blockEnv)
}

func evalLetrecStar(args *List, ctx Context, env *Environment) (Value, *LispError) {
	names, valueExprs, body, err := parseBindings(args, ctx)
	if err != nil {
		return nil, err
	}

	blockEnv := env.ChildEmpty()
	for i, e := range valueExprs {
		blockEnv.Define(names[i], Unspecified{})
		expanded, err := Macroexpand(e, ctx, blockEnv, false)
		if err != nil {
			return nil, err
		}
		v, err := Eval(expanded, ctx, blockEnv, false)
		if err != nil {
			return nil, err
		}
		blockEnv.Define(names[i], v)
	}

	return EvalBlock(body, ctx, blockEnv)
}

func evalBegin(args *List, ctx Context, env *Environment) (Value, *LispError) {
	if args.Len() < 1 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	return EvalBlock(args.ToSlice(), ctx, env)
}

func evalApplyForm(args *List, ctx Context, env *Environment) (Value, *LispError) {
	if args.Len() != 2 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	elems := args.ToSlice()
	f, err := Eval(elems[0], ctx, env, false)
	if err != nil {
		return nil, err
	}
	argsVal, err := Eval(elems[1], ctx, env, false)
	if err != nil {
		return nil, err
	}
	argsList, ok := argsVal.(*List)
	if !ok {
		return nil, ctx.Error(ErrWrongType, nil)
	}
	return Apply(f, ctx, argsList.ToSlice())
}

func evalQuasiquote(args *List, ctx Context, env *Environment) (Value, *LispError) {
	if args.Len() != 1 {
		return nil, ctx.Error(ErrSyntax, nil)
	}
	return evalQuasiquoteBody(args.First(), ctx, env)
}

func evalQuasiquoteBody(v Value, ctx Context, env *Environment) (Value, *LispError) {
	lst, ok := v.(*List)
	if !ok {
		return v, nil
	}
	if sym, hasSym := firstSymbol(lst); hasSym {
		if sym.Name() == "unquote" {
			if lst.Len() != 2 {
				return nil, ctx.Error(ErrSyntax, nil)
			}
			return Eval(lst.Rest().First(), ctx, env, false)
		}
		if sym.Name() == "unquote-splicing" {
			// A bare unquote-splicing at the very top of the quasiquoted
			// form has nothing to splice into.
			return nil, ctx.Error(ErrSyntax, nil)
		}
	}

	var out []Value
	for c := lst; c != nil; c = c.Rest() {
		elem := c.head
		if elemList, ok := elem.(*List); ok {
			if sym, hasSym := firstSymbol(elemList); hasSym && sym.Name() == "unquote-splicing" {
				if elemList.Len() != 2 {
					return nil, ctx.Error(ErrSyntax, nil)
				}
				spliceVal, err := Eval(elemList.Rest().First(), ctx, env, false)
				if err != nil {
					return nil, err
				}
				spliceList, ok := spliceVal.(*List)
				if !ok {
					return nil, ctx.Error(ErrWrongType, nil)
				}
				out = append(out, spliceList.ToSlice()...)
				continue
			}
		}
		expanded, err := evalQuasiquoteBody(elem, ctx, env)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return NewList(out...), nil
}
