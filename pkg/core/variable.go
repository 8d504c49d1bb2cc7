package core

// Variable is a shared mutable slot holding exactly one Value. Several
// Environments may hold the same Variable (captured by a closure, or
// reached through a first-class Var value), so that set! performed
// through any of them is visible through all of them. Identity, not
// content, is what distinguishes two Variable cells.
type Variable struct {
	val Value
}

func NewVariable(v Value) *Variable { return &Variable{val: v} }

func (c *Variable) Get() Value { return c.val }

func (c *Variable) Set(v Value) { c.val = v }

// Var is the first-class Value wrapping a reference to a Variable cell.
type Var struct {
	Cell *Variable
}

func (Var) isValue()       {}
func (v Var) String() string { return "#<var>" }

// Bag is a small-size-optimised map from Symbol to Variable cell, used as
// the per-scope storage of an Environment. Most scopes hold zero or one
// binding (a lambda call frame, a let with a single name), so the empty
// and single-entry representations avoid allocating a map in the common
// case.
type Bag struct {
	mode   bagMode
	k0     Symbol
	v0     *Variable
	byName map[string]*Variable
}

type bagMode int

const (
	bagEmpty bagMode = iota
	bagSingle
	bagMap
)

// NewBag returns an empty bag.
func NewBag() *Bag { return &Bag{} }

// Insert binds key to var, returning the previously bound cell if any.
func (b *Bag) Insert(key Symbol, v *Variable) *Variable {
	switch b.mode {
	case bagEmpty:
		b.mode = bagSingle
		b.k0 = key
		b.v0 = v
		return nil
	case bagSingle:
		if b.k0.Equal(key) {
			old := b.v0
			b.v0 = v
			return old
		}
		b.mode = bagMap
		b.byName = map[string]*Variable{bagKey(b.k0): b.v0, bagKey(key): v}
		return nil
	default: // bagMap
		k := bagKey(key)
		old := b.byName[k]
		b.byName[k] = v
		return old
	}
}

// Get looks up key in this bag only (no ancestor traversal).
func (b *Bag) Get(key Symbol) (*Variable, bool) {
	switch b.mode {
	case bagEmpty:
		return nil, false
	case bagSingle:
		if b.k0.Equal(key) {
			return b.v0, true
		}
		return nil, false
	default:
		v, ok := b.byName[bagKey(key)]
		return v, ok
	}
}

// Names returns every non-gensym name bound directly in this bag, used by
// the REPL's tab completion (no particular order).
func (b *Bag) Names() []string {
	switch b.mode {
	case bagEmpty:
		return nil
	case bagSingle:
		if b.k0.IsGensym() {
			return nil
		}
		return []string{b.k0.Name()}
	default:
		out := make([]string, 0, len(b.byName))
		for k := range b.byName {
			if len(k) > 0 && k[0] == '#' {
				continue
			}
			out = append(out, k)
		}
		return out
	}
}

// bagKey produces a map key distinguishing named symbols from gensyms
// with the same counter space; gensym ids never collide with names since
// they carry a sigil no name can contain.
func bagKey(s Symbol) string {
	if s.IsGensym() {
		return "#g" + s.String()
	}
	return s.Name()
}
