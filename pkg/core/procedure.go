package core

import "unsafe"

// Arity describes how many arguments a Procedure accepts. Exact(n) takes
// exactly n; Variadic(n) takes at least n-1, collecting everything past
// that into the trailing rest parameter (the spec's "min_plus_one"
// encoding, carried over unchanged: it lets the zero value distinguish
// "no variadic" from "variadic with zero fixed params").
type Arity struct {
	variadic bool
	n        int
}

func ExactArity(n int) Arity     { return Arity{variadic: false, n: n} }
func VariadicArity(n int) Arity  { return Arity{variadic: true, n: n} }

// Min is the fewest arguments a call may supply.
func (a Arity) Min() int {
	if a.variadic {
		return a.n - 1
	}
	return a.n
}

func (a Arity) IsVariadic() bool { return a.variadic }

// ParamList is a Lisp procedure's formal parameter list: some fixed
// names, and optionally a trailing rest parameter introduced by a `&` (or
// `&rest`) marker symbol.
type ParamList struct {
	Names []Symbol
	Rest  *Symbol
}

func (p ParamList) Arity() Arity {
	if p.Rest != nil {
		return VariadicArity(len(p.Names) + 1)
	}
	return ExactArity(len(p.Names))
}

// ParseParams converts a parsed parameter form (a List of Symbols, with
// an optional `&`/`&rest` marker followed by one more Symbol) into a
// ParamList.
func ParseParams(l *List) (ParamList, *LispError) {
	elems := l.ToSlice()
	var names []Symbol
	for i := 0; i < len(elems); i++ {
		sym, ok := elems[i].(Symbol)
		if !ok {
			return ParamList{}, NewError(ErrSyntax, nil, nil)
		}
		if !sym.IsGensym() && (sym.Name() == "&" || sym.Name() == "&rest") {
			if i != len(elems)-2 {
				return ParamList{}, NewError(ErrSyntax, nil, nil)
			}
			rest, ok := elems[i+1].(Symbol)
			if !ok {
				return ParamList{}, NewError(ErrSyntax, nil, nil)
			}
			return ParamList{Names: names, Rest: &rest}, nil
		}
		names = append(names, sym)
	}
	return ParamList{Names: names}, nil
}

// NativeFunc is the signature of a host-language builtin.
type NativeFunc func(ctx Context, args []Value) (Value, *LispError)

// Procedure is the callable representation shared by Fn and Macro
// values; the only difference between the two Value variants is when
// the evaluator invokes them (§4.5/§4.7), not how they are built or
// called.
type Procedure struct {
	name    *Symbol
	doc     *PooledString
	params  ParamList
	native  NativeFunc
	// Lisp-defined procedures only:
	env    *Environment
	body   []Value
	source Value
}

// NewNative constructs a native Procedure.
func NewNative(params ParamList, doc *PooledString, fn NativeFunc) *Procedure {
	return &Procedure{params: params, doc: doc, native: fn}
}

// NewLisp constructs a Lisp-defined Procedure, capturing env.
func NewLisp(env *Environment, params ParamList, doc *PooledString, body []Value, source Value) *Procedure {
	return &Procedure{env: env, params: params, doc: doc, body: body, source: source}
}

func (p *Procedure) IsNative() bool { return p.native != nil }

func (p *Procedure) Name() (Symbol, bool) {
	if p.name == nil {
		return Symbol{}, false
	}
	return *p.name, true
}

// SetName attaches a name (from `def`), which decorates the procedure's
// backtrace frame and print form.
func (p *Procedure) SetName(s Symbol) { p.name = &s }

func (p *Procedure) Doc() (string, bool) {
	if p.doc == nil {
		return "", false
	}
	return p.doc.Raw(), true
}

func (p *Procedure) Source() (Value, bool) {
	if p.IsNative() {
		return nil, false
	}
	return p.source, true
}

func (p *Procedure) MinArity() int { return p.params.Arity().Min() }

// Addr is the procedure's identity, used to attribute backtrace frames.
func (p *Procedure) Addr() uintptr { return uintptr(unsafe.Pointer(p)) }

func (p *Procedure) printTag(isMacro bool) string {
	tag := "fn"
	if isMacro {
		tag = "macro"
	}
	if n, ok := p.Name(); ok {
		return "#<" + tag + " " + n.String() + ">"
	}
	return "#<" + tag + ">"
}

// Fn is the Value wrapping a Procedure treated as a function, invoked
// during evaluation.
type Fn struct{ *Procedure }

func (Fn) isValue()        {}
func (f Fn) String() string { return f.printTag(false) }

// Macro is the Value wrapping a Procedure treated as a macro, invoked
// during expansion rather than evaluation.
type Macro struct{ *Procedure }

func (Macro) isValue()         {}
func (m Macro) String() string { return m.printTag(true) }

// lambdaLiteral is the shared payload of an unbound procedure literal
// (produced by the `fn`/`macro` macros): parsed parameters and body, not yet
// paired with a definition environment.
type lambdaLiteral struct {
	Params ParamList
	Doc    *PooledString
	Body   []Value
	Source Value
}

// UnboundFn is a `(fn (params…) body…)` literal that has not yet
// captured its definition environment. Evaluating it (§4.5) binds it to
// the current environment, producing a Fn.
type UnboundFn struct{ lambdaLiteral }

func (UnboundFn) isValue()        {}
func (UnboundFn) String() string  { return "#<unbound-fn>" }

// Bind captures env, producing the callable Fn value.
func (u UnboundFn) Bind(env *Environment) Fn {
	return Fn{NewLisp(env, u.Params, u.Doc, u.Body, u.Source)}
}

// UnboundMacro is the macro analogue of UnboundFn.
type UnboundMacro struct{ lambdaLiteral }

func (UnboundMacro) isValue()       {}
func (UnboundMacro) String() string { return "#<unbound-macro>" }

func (u UnboundMacro) Bind(env *Environment) Macro {
	p := NewLisp(env, u.Params, u.Doc, u.Body, u.Source)
	return Macro{p}
}
