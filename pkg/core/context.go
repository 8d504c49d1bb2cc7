package core

import (
	"io"
	"os"
	"sync/atomic"
)

// Context is the evaluator-thread object threaded through every eval and
// apply call. It carries the current backtrace (persistent; pushing a
// frame produces a derived Context rather than mutating this one), a
// shared string interning cache, and the output sink print/println write
// to. Contexts are cheap to clone: WithFrame only allocates a new
// Backtrace node and a new Context struct, sharing everything else (the
// pool, the gensym counter, the writer).
type Context struct {
	bt     *Backtrace
	pool   *StringPool
	gensym *atomic.Int64
	out    io.Writer
}

// NewContext returns a fresh Context with an empty (main-only) backtrace,
// writing to os.Stdout.
func NewContext() Context {
	return Context{bt: NewBacktrace(), pool: NewStringPool(), gensym: new(atomic.Int64), out: os.Stdout}
}

// WithFrame returns a derived Context with frame pushed onto the trace.
func (c Context) WithFrame(f Frame) Context {
	return Context{bt: c.bt.WithFrame(f), pool: c.pool, gensym: c.gensym, out: c.out}
}

// WithWriter returns a derived Context whose print/println natives write
// to w instead, sharing the current trace, pool, and gensym counter. The
// tests use it to capture output.
func (c Context) WithWriter(w io.Writer) Context {
	return Context{bt: c.bt, pool: c.pool, gensym: c.gensym, out: w}
}

// Out returns the writer print/println natives should use, defaulting to
// os.Stdout if the Context was built directly rather than via NewContext.
func (c Context) Out() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

// Trace returns the current backtrace.
func (c Context) Trace() *Backtrace { return c.bt }

// Pool returns the context's string interning cache.
func (c Context) Pool() *StringPool { return c.pool }

// Gensym returns a fresh, process-context-unique symbol.
func (c Context) Gensym() Symbol {
	return NewGensym(c.gensym.Add(1))
}

// Error builds a reified Error carrying the context's current trace.
func (c Context) Error(name string, args *List) *LispError {
	return &LispError{Name: Intern(name), Args: args, Trace: c.bt}
}
