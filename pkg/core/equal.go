package core

// Equal implements = : structural equality that requires both operands to
// be the same dynamic type, then compares content. Lists compare
// element-wise; environments, variables, procedures and errors fall back
// to identity since they have no sensible structural notion of sameness.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Unspecified:
		_, ok := b.(Unspecified)
		return ok
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Character:
		y, ok := b.(Character)
		return ok && x == y
	case Integer:
		y, ok := b.(Integer)
		if !ok || x.V == nil || y.V == nil {
			return ok && x.V == y.V
		}
		return x.V.Cmp(y.V) == 0
	case Str:
		y, ok := b.(Str)
		return ok && x.S.Equal(y.S)
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x.Equal(y)
	case *List:
		y, ok := b.(*List)
		if !ok {
			return false
		}
		return listEqual(x, y)
	default:
		return Identical(a, b)
	}
}

func listEqual(a, b *List) bool {
	for {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		if !Equal(a.head, b.head) {
			return false
		}
		a, b = a.tail, b.tail
	}
}

// Identical implements eq? : reference/identity comparison. Atoms that
// carry no separate identity (booleans, characters, small immutable
// values) compare by value, matching their only possible notion of
// sameness; pointer-backed variants compare by pointer.
func Identical(a, b Value) bool {
	switch x := a.(type) {
	case Unspecified:
		_, ok := b.(Unspecified)
		return ok
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Character:
		y, ok := b.(Character)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x.Equal(y)
	case *List:
		y, ok := b.(*List)
		return ok && x == y
	case *Environment:
		y, ok := b.(*Environment)
		return ok && x == y
	case Var:
		y, ok := b.(Var)
		return ok && x.Cell == y.Cell
	case Fn:
		y, ok := b.(Fn)
		return ok && x.Procedure == y.Procedure
	case Macro:
		y, ok := b.(Macro)
		return ok && x.Procedure == y.Procedure
	case *LispError:
		y, ok := b.(*LispError)
		return ok && x == y
	case *Backtrace:
		y, ok := b.(*Backtrace)
		return ok && x == y
	case Frame:
		y, ok := b.(Frame)
		return ok && x.Equal(y)
	case Integer:
		y, ok := b.(Integer)
		if !ok {
			return false
		}
		if x.V == nil || y.V == nil {
			return x.V == y.V
		}
		return x.V.Cmp(y.V) == 0
	case Str:
		y, ok := b.(Str)
		return ok && x.S.Raw() == y.S.Raw()
	default:
		return false
	}
}
