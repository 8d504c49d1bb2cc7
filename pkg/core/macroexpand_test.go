package core

import "testing"

func defSimpleMacro(t *testing.T, env *Environment, ctx Context, name string, params ParamList, fn NativeFunc) {
	t.Helper()
	env.Define(NewSymbol(name), Macro{NewNative(params, nil, fn)})
}

func TestMacroexpandFixpoint(t *testing.T) {
	env := NewRootEnvironment()
	ctx := NewContext()

	// "layer" rewrites (layer n x) to (layer (- n 1) x) until n is 0, at
	// which point it rewrites to just x — expansion must keep re-invoking
	// the macro bound at the new head until it stops being a macro call.
	defSimpleMacro(t, env, ctx, "layer", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		n := args[0].(Integer).V.Int64()
		if n == 0 {
			return args[1], nil
		}
		return NewList(NewSymbol("layer"), IntegerFromInt64(n-1), args[1]), nil
	})

	form := NewList(NewSymbol("layer"), IntegerFromInt64(3), NewSymbol("done"))
	expanded, err := Macroexpand(form, ctx, env, false)
	if err != nil {
		t.Fatalf("macroexpand: %v", err)
	}
	sym, ok := expanded.(Symbol)
	if !ok || sym.Name() != "done" {
		t.Errorf("expected fixpoint expansion to reach the symbol done, got %v", expanded)
	}
}

func TestMacroexpandLeavesQuoteAlone(t *testing.T) {
	env := NewRootEnvironment()
	ctx := NewContext()
	defSimpleMacro(t, env, ctx, "boom", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		t.Fatalf("macro inside quote should never be invoked")
		return nil, nil
	})

	form := NewList(NewSymbol("quote"), NewList(NewSymbol("boom"), IntegerFromInt64(1)))
	expanded, err := Macroexpand(form, ctx, env, false)
	if err != nil {
		t.Fatalf("macroexpand: %v", err)
	}
	if !Equal(expanded, form) {
		t.Errorf("quote should be returned unchanged, got %v", expanded)
	}
}

func TestMacroexpandQuasiquoteOnlyExpandsUnquotePayloads(t *testing.T) {
	env := NewRootEnvironment()
	ctx := NewContext()
	defSimpleMacro(t, env, ctx, "boom", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		t.Fatalf("macro outside of an unquote should never be invoked under quasiquote")
		return nil, nil
	})
	defSimpleMacro(t, env, ctx, "mark", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		return NewSymbol("marked"), nil
	})

	// `(boom 1 ,(mark)) — "boom" is inert template structure; only the
	// unquote payload (mark) is a macro call site.
	form := NewList(NewSymbol("quasiquote"),
		NewList(NewSymbol("boom"), IntegerFromInt64(1),
			NewList(NewSymbol("unquote"), NewList(NewSymbol("mark")))))

	expanded, err := Macroexpand(form, ctx, env, false)
	if err != nil {
		t.Fatalf("macroexpand: %v", err)
	}
	lst := expanded.(*List)
	if sym, _ := firstSymbol(lst); sym.Name() != "quasiquote" {
		t.Fatalf("expected the outer form to remain quasiquote, got %v", expanded)
	}
	body := lst.Rest().First().(*List)
	last, _ := body.Nth(2)
	unquote := last.(*List)
	payload := unquote.Rest().First()
	sym, ok := payload.(Symbol)
	if !ok || sym.Name() != "marked" {
		t.Errorf("expected the unquote payload to have been macro-expanded to 'marked', got %v", payload)
	}
}

func TestMacroexpandSkipsDefAndLetHeadsButRecursesChildren(t *testing.T) {
	env := NewRootEnvironment()
	ctx := NewContext()
	invoked := false
	defSimpleMacro(t, env, ctx, "def", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		invoked = true
		return nil, nil
	})
	defSimpleMacro(t, env, ctx, "inner", ParamList{}, func(ctx Context, args []Value) (Value, *LispError) {
		return NewSymbol("expanded"), nil
	})

	form := NewList(NewSymbol("def"), NewSymbol("x"), NewList(NewSymbol("inner")))
	expanded, err := Macroexpand(form, ctx, env, true)
	if err != nil {
		t.Fatalf("macroexpand: %v", err)
	}
	if invoked {
		t.Errorf("a user-defined def macro must never override the def special form at the head position")
	}
	lst := expanded.(*List)
	valueExpr, _ := lst.Nth(2)
	sym, ok := valueExpr.(Symbol)
	if !ok || sym.Name() != "expanded" {
		t.Errorf("expected the def value expression to still be recursively expanded, got %v", valueExpr)
	}
}

func TestMacroexpandNonListPassesThrough(t *testing.T) {
	env := NewRootEnvironment()
	ctx := NewContext()
	v, err := Macroexpand(IntegerFromInt64(5), ctx, env, false)
	if err != nil {
		t.Fatalf("macroexpand: %v", err)
	}
	if v.(Integer).V.Int64() != 5 {
		t.Errorf("expected non-list atoms to pass through unchanged")
	}
}
