package core

import "strings"

// Error name constants, part of the observable API: Lisp code may
// catch by these names via catch-all.
const (
	ErrSyntax        = "syntax-error"
	ErrWrongType     = "wrong-type-arg"
	ErrWrongArgCount = "wrong-number-of-args"
	ErrUnbound       = "unbound-variable"
	ErrOutOfRange    = "out-of-range"
)

// LispError is the reified exception Value. It implements both Value (so
// catch-all can hand it to a Lisp handler) and Go's error interface (so
// host code such as the REPL can return it as an ordinary error). The
// evaluator itself passes it around as *LispError.
type LispError struct {
	Name  PooledString
	Args  *List
	Trace *Backtrace
}

func (*LispError) isValue() {}

func (e *LispError) Error() string {
	var b strings.Builder
	b.WriteString(e.Name.Raw())
	if e.Args != nil {
		b.WriteString(": ")
		for i, a := range e.Args.ToSlice() {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(a.String())
		}
	}
	return b.String()
}

func (e *LispError) String() string {
	return "#<error " + e.Error() + ">"
}

// NewError constructs a LispError directly, without a Context, for call
// sites (ParseParams, for instance) that have no live backtrace.
func NewError(name string, args *List, trace *Backtrace) *LispError {
	return &LispError{Name: Intern(name), Args: args, Trace: trace}
}
