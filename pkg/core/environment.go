package core

// Environment is a lexically scoped, parent-linked frame holding a bag of
// local bindings. Equality and hashing are by node identity (pointer),
// never by content: two environments with identical bindings are still
// distinct values unless they are literally the same node. Environments
// are shared by reference and never copied; mutation happens inside the
// Variable cells reachable from their bag.
type Environment struct {
	parent *Environment
	bag    *Bag
}

func (*Environment) isValue() {}

func (e *Environment) String() string { return "#<environment>" }

// NewRootEnvironment returns a parentless environment with an empty bag.
func NewRootEnvironment() *Environment {
	return &Environment{bag: NewBag()}
}

// Child returns a new environment whose parent is e, pre-populated with
// one cell per name in names, each initialised to Unspecified.
func (e *Environment) Child(names ...Symbol) *Environment {
	bag := NewBag()
	for _, n := range names {
		bag.Insert(n, NewVariable(Unspecified{}))
	}
	return &Environment{parent: e, bag: bag}
}

// ChildEmpty returns a new, empty child scope of e.
func (e *Environment) ChildEmpty() *Environment {
	return &Environment{parent: e, bag: NewBag()}
}

// Get looks up sym in this bag then recursively in ancestors, returning
// the cell itself (not its value) so callers can read or mutate it. It
// never creates a binding.
func (e *Environment) Get(sym Symbol) (*Variable, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bag.Get(sym); ok {
			return v, true
		}
	}
	return nil, false
}

// Set resolves sym via Get and writes to the found cell, mutating it in
// place rather than shadowing. It reports failure (does not create a
// binding) when sym is unbound anywhere in the chain.
func (e *Environment) Set(sym Symbol, val Value) bool {
	v, ok := e.Get(sym)
	if !ok {
		return false
	}
	v.Set(val)
	return true
}

// Define creates or overwrites a binding in e's own scope, never in an
// ancestor. This is the primitive behind top-level def and lambda
// parameter binding.
func (e *Environment) Define(sym Symbol, val Value) {
	if v, ok := e.bag.Get(sym); ok {
		v.Set(val)
		return
	}
	e.bag.Insert(sym, NewVariable(val))
}

// Toplevel walks parent links to the root environment.
func (e *Environment) Toplevel() *Environment {
	env := e
	for env.parent != nil {
		env = env.parent
	}
	return env
}

// TakeBag removes and returns e's bag, replacing it with an empty one.
// Together with SetBag it lets a caller build bindings against a private
// bag and install them in one step.
func (e *Environment) TakeBag() *Bag {
	old := e.bag
	e.bag = NewBag()
	return old
}

// SetBag replaces e's bag outright.
func (e *Environment) SetBag(b *Bag) {
	e.bag = b
}

// Names returns every name bound anywhere in e's lexical chain, most
// local first, for tab completion. Shadowed ancestor names are included
// once (the innermost binding "wins" conceptually but completion only
// needs the set of spellable names).
func (e *Environment) Names() []string {
	seen := map[string]bool{}
	var out []string
	for env := e; env != nil; env = env.parent {
		for _, n := range env.bag.Names() {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}
