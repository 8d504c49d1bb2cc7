// Package core implements the value model, environment, reader and
// evaluator of the Lispizzle interpreter. The subsystems live in one
// package because they are tightly coupled: the value sum type dictates
// the interpreter loop, macro expansion interleaves with evaluation, and
// lexical environments are referenced from first-class Environment values.
package core

import (
	"fmt"
	"math/big"
)

// Value is the sum type of every runtime value in the language. Every
// concrete variant below implements it.
type Value interface {
	fmt.Stringer
	isValue()
}

// Unspecified is the placeholder value returned by forms with no useful
// result (set!, def).
type Unspecified struct{}

func (Unspecified) isValue()        {}
func (Unspecified) String() string  { return "#<unspecified>" }

// Nil is the empty/falsy value, distinct from the empty list.
type Nil struct{}

func (Nil) isValue()       {}
func (Nil) String() string { return "nil" }

// Boolean is a Lisp #t / #f value.
type Boolean bool

func (Boolean) isValue() {}
func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

// Character is a single Unicode scalar value.
type Character rune

func (Character) isValue() {}
func (c Character) String() string {
	if name, ok := charName(rune(c)); ok {
		return "#\\" + name
	}
	return "#\\" + string(rune(c))
}

// Integer is an arbitrary-precision signed integer, backed by math/big.
type Integer struct {
	V *big.Int
}

func NewInteger(v *big.Int) Integer { return Integer{V: v} }

func IntegerFromInt64(v int64) Integer { return Integer{V: big.NewInt(v)} }

func (Integer) isValue() {}
func (i Integer) String() string {
	if i.V == nil {
		return "0"
	}
	return i.V.String()
}

// Str is an immutable, interned text handle (see string_pool.go).
type Str struct {
	S PooledString
}

func (Str) isValue() {}
func (s Str) String() string { return fmt.Sprintf("%q", s.S.Raw()) }

// Symbol is either a plain interned name or a gensym, identified by an
// integer counter owned by a Context.
type Symbol struct {
	name    PooledString
	id      int64
	gensym  bool
}

// NewSymbol constructs a named symbol.
func NewSymbol(name string) Symbol { return Symbol{name: Intern(name)} }

// NewSymbolFromPooled constructs a named symbol from an already-interned string.
func NewSymbolFromPooled(name PooledString) Symbol { return Symbol{name: name} }

// NewGensym constructs a fresh symbol identified only by id.
func NewGensym(id int64) Symbol { return Symbol{id: id, gensym: true} }

func (Symbol) isValue() {}

func (s Symbol) IsGensym() bool { return s.gensym }

// Name returns the symbol's textual name; valid only when !IsGensym().
func (s Symbol) Name() string { return s.name.Raw() }

func (s Symbol) String() string {
	if s.gensym {
		return fmt.Sprintf("gensym(%d)", s.id)
	}
	return s.name.Raw()
}

// Equal compares symbols by variant and payload, per spec identity rules.
func (s Symbol) Equal(o Symbol) bool {
	if s.gensym != o.gensym {
		return false
	}
	if s.gensym {
		return s.id == o.id
	}
	return s.name.Raw() == o.name.Raw()
}

// List is a persistent, singly-linked cons list. A nil *List denotes the
// empty list; nodes are never mutated after construction, so sharing a
// tail between lists is always safe.
type List struct {
	head Value
	tail *List
}

func (*List) isValue() {}

// Cons prepends head to tail, sharing tail's structure.
func Cons(head Value, tail *List) *List {
	return &List{head: head, tail: tail}
}

// NewList builds a list from a slice, most natural element first.
func NewList(elems ...Value) *List {
	var out *List
	for i := len(elems) - 1; i >= 0; i-- {
		out = Cons(elems[i], out)
	}
	return out
}

func (l *List) IsEmpty() bool { return l == nil }

func (l *List) First() Value {
	if l == nil {
		return Nil{}
	}
	return l.head
}

func (l *List) Rest() *List {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len walks the list; O(n), as for any cons list.
func (l *List) Len() int {
	n := 0
	for c := l; c != nil; c = c.tail {
		n++
	}
	return n
}

// ToSlice materializes the list's elements in order.
func (l *List) ToSlice() []Value {
	out := make([]Value, 0, l.Len())
	for c := l; c != nil; c = c.tail {
		out = append(out, c.head)
	}
	return out
}

// Nth returns the element at position n, or (Nil{}, false) when out of range.
func (l *List) Nth(n int) (Value, bool) {
	if n < 0 {
		return Nil{}, false
	}
	c := l
	for i := 0; i < n && c != nil; i++ {
		c = c.tail
	}
	if c == nil {
		return Nil{}, false
	}
	return c.head, true
}

// Append concatenates two lists, copying the receiver's spine and sharing
// other's.
func Append(a, b *List) *List {
	elems := a.ToSlice()
	out := b
	for i := len(elems) - 1; i >= 0; i-- {
		out = Cons(elems[i], out)
	}
	return out
}

// Remove returns a copy of the list with the element at index i removed.
func Remove(l *List, i int) *List {
	elems := l.ToSlice()
	if i < 0 || i >= len(elems) {
		return l
	}
	out := make([]Value, 0, len(elems)-1)
	out = append(out, elems[:i]...)
	out = append(out, elems[i+1:]...)
	return NewList(out...)
}

func (l *List) String() string {
	s := "("
	for c, first := l, true; c != nil; c, first = c.tail, false {
		if !first {
			s += " "
		}
		s += c.head.String()
	}
	return s + ")"
}

// Truthy implements the language's single falsiness rule: everything but
// #f and nil is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Boolean:
		return bool(t)
	case Nil:
		return false
	default:
		return true
	}
}
