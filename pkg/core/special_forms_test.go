package core

import "testing"

func TestIfBranches(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	if v := evalTop(t, env, ctx, "(if #t 1 2)"); v.(Integer).V.Int64() != 1 {
		t.Errorf("(if #t 1 2) = %v", v)
	}
	if v := evalTop(t, env, ctx, "(if #f 1 2)"); v.(Integer).V.Int64() != 2 {
		t.Errorf("(if #f 1 2) = %v", v)
	}
	if v := evalTop(t, env, ctx, "(if #f 1)"); !isUnspecified(v) {
		t.Errorf("(if #f 1) with no else branch should be Unspecified, got %v", v)
	}
}

func TestDefRequiresBlockContext(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	form := mustRead(t, "(def x 1)")
	_, err := Eval(form, ctx, env, false)
	if err == nil || err.Name.Raw() != ErrSyntax {
		t.Fatalf("def outside a block context should be a syntax error, got %v", err)
	}
}

func TestSetBangUnboundFails(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	err := evalTopErr(t, env, ctx, "(set! nope 1)")
	if err.Name.Raw() != ErrUnbound {
		t.Errorf("expected unbound-variable, got %v", err)
	}
}

func TestCurrentEnvironment(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	v := evalTop(t, env, ctx, "(current-environment)")
	got, ok := v.(*Environment)
	if !ok || !Identical(got, env) {
		t.Errorf("(current-environment) should return the calling environment")
	}
}

func TestLetStarSequentialScoping(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	v := evalTop(t, env, ctx, "(let* ((x 1) (y (+ x 1))) y)")
	if v.(Integer).V.Int64() != 2 {
		t.Errorf("let* should see earlier bindings when evaluating later ones, got %v", v)
	}
}

func TestLetDoesNotSeeItsOwnBindingsWhileEvaluating(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	evalTop(t, env, ctx, "(def x 100)")
	// plain let evaluates all value expressions against the enclosing
	// environment, so x here refers to the outer x, not the new binding.
	v := evalTop(t, env, ctx, "(let ((x 1) (y x)) y)")
	if v.(Integer).V.Int64() != 100 {
		t.Errorf("let bindings should not see each other, got %v", v)
	}
}

func TestLetrecStarImmediateVisibility(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	v := evalTop(t, env, ctx, "(letrec* ((x 1) (y (+ x 1))) y)")
	if v.(Integer).V.Int64() != 2 {
		t.Errorf("letrec* should commit each binding before evaluating the next, got %v", v)
	}
}

func TestBeginReturnsLast(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	v := evalTop(t, env, ctx, "(begin 1 2 3)")
	if v.(Integer).V.Int64() != 3 {
		t.Errorf("(begin 1 2 3) = %v", v)
	}
}

func TestApplySpecialForm(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	evalTop(t, env, ctx, "(def add (fn (a b) (+ a b)))")
	v := evalTop(t, env, ctx, "(apply add (list 1 2))")
	if v.(Integer).V.Int64() != 3 {
		t.Errorf("(apply add (list 1 2)) = %v", v)
	}
}

func TestApplyFormRejectsNonList(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	evalTop(t, env, ctx, "(def add (fn (a b) (+ a b)))")
	err := evalTopErr(t, env, ctx, "(apply add 5)")
	if err.Name.Raw() != ErrWrongType {
		t.Errorf("expected wrong-type-arg, got %v", err)
	}
}

func TestQuasiquoteSpliceRequiresList(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	err := evalTopErr(t, env, ctx, "`(1 ,@2)")
	if err.Name.Raw() != ErrWrongType {
		t.Errorf("expected wrong-type-arg for a non-list splice, got %v", err)
	}
}
