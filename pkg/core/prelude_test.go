package core

import (
	"strings"
	"testing"
)

func TestArithmeticDivision(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	if v := evalTop(t, env, ctx, "(/ 12 4)"); v.(Integer).V.Int64() != 3 {
		t.Errorf("(/ 12 4) = %v", v)
	}
	if err := evalTopErr(t, env, ctx, "(/ 1 0)"); err.Name.Raw() != ErrWrongType {
		t.Errorf("(/ 1 0) error = %v", err)
	}
}

func TestOrderedComparisons(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	if v := evalTop(t, env, ctx, "(< 1 2 3)"); v != Boolean(true) {
		t.Errorf("(< 1 2 3) = %v", v)
	}
	if v := evalTop(t, env, ctx, "(< 1 3 2)"); v != Boolean(false) {
		t.Errorf("(< 1 3 2) = %v", v)
	}
	if v := evalTop(t, env, ctx, "(<= 1 1 2)"); v != Boolean(true) {
		t.Errorf("(<= 1 1 2) = %v", v)
	}
}

func TestIncBang(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	evalTop(t, env, ctx, "(def n 5)")
	evalTop(t, env, ctx, "(inc! n)")
	if v := evalTop(t, env, ctx, "n"); v.(Integer).V.Int64() != 6 {
		t.Errorf("expected n to be 6 after inc!, got %v", v)
	}
}

func TestPredicates(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	cases := map[string]bool{
		"(nil? #nil)":       true,
		"(nil? 1)":          false,
		"(int? 1)":          true,
		"(int? \"x\")":      false,
		"(sym? 'x)":         true,
		"(list? (list 1))":  true,
		"(string? \"hi\")":  true,
		"(not #f)":          true,
		"(not 1)":           false,
		"(= 1 1)":           true,
		"(not= 1 2)":        true,
	}
	for src, want := range cases {
		v := evalTop(t, env, ctx, src)
		if v != Boolean(want) {
			t.Errorf("%s = %v, want %v", src, v, want)
		}
	}
}

func TestEqVsEqualIdentity(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	if v := evalTop(t, env, ctx, "(eq? (list 1 2) (list 1 2))"); v != Boolean(false) {
		t.Errorf("eq? should compare by identity, two freshly built lists should differ, got %v", v)
	}
	if v := evalTop(t, env, ctx, "(= (list 1 2) (list 1 2))"); v != Boolean(true) {
		t.Errorf("= should compare structurally, got %v", v)
	}
}

func TestStringOperations(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	if v := evalTop(t, env, ctx, `(string-length "hello")`); v.(Integer).V.Int64() != 5 {
		t.Errorf("string-length = %v", v)
	}
	if v := evalTop(t, env, ctx, `(substring "hello" 1 3)`); v.(Str).S.Raw() != "el" {
		t.Errorf("substring = %v", v)
	}
	if err := evalTopErr(t, env, ctx, `(substring "hi" 0 5)`); err.Name.Raw() != ErrOutOfRange {
		t.Errorf("out-of-bounds substring error = %v", err)
	}
	if v := evalTop(t, env, ctx, `(string->sym "foo")`); v.(Symbol).Name() != "foo" {
		t.Errorf("string->sym = %v", v)
	}
	if v := evalTop(t, env, ctx, "(sym->string 'foo)"); v.(Str).S.Raw() != "foo" {
		t.Errorf("sym->string = %v", v)
	}
}

func TestPrintWritesToContextOutput(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	var buf strings.Builder
	ctx := NewContext().WithWriter(&buf)

	form, _, readErr := NewReader("", `(println "hi" 42)`).ReadOne()
	if readErr != nil {
		t.Fatalf("read: %v", readErr)
	}
	expanded, err := Macroexpand(form, ctx, env, true)
	if err != nil {
		t.Fatalf("macroexpand: %v", err)
	}
	if _, err = Eval(expanded, ctx, env, true); err != nil {
		t.Fatalf("eval: %v", err)
	}
	if got := buf.String(); got != "hi 42\n" {
		t.Errorf("println output = %q, want %q", got, "hi 42\n")
	}
}

func TestProcedureLiteralIntrospection(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	evalTop(t, env, ctx, `(def greet (fn (name) "says hello" (list name)))`)
	if v := evalTop(t, env, ctx, "(fn-name greet)"); v.(Symbol).Name() != "greet" {
		t.Errorf("fn-name = %v", v)
	}
	if v := evalTop(t, env, ctx, "(fn-doc greet)"); v.(Str).S.Raw() != "says hello" {
		t.Errorf("fn-doc = %v", v)
	}
	if v := evalTop(t, env, ctx, "(fn-name (fn () 0))"); v != Boolean(false) {
		t.Errorf("fn-name of an anonymous fn should be #f, got %v", v)
	}
}

func TestGensymUniqueness(t *testing.T) {
	env := NewRootEnvironmentWithPrelude()
	ctx := NewContext()
	a := evalTop(t, env, ctx, "(gensym)").(Symbol)
	b := evalTop(t, env, ctx, "(gensym)").(Symbol)
	if a.Equal(b) {
		t.Errorf("successive gensyms should never be equal")
	}
}
