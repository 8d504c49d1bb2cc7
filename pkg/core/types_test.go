package core

import "testing"

func TestListBasics(t *testing.T) {
	l := NewList(IntegerFromInt64(1), IntegerFromInt64(2), IntegerFromInt64(3))
	if l.Len() != 3 {
		t.Fatalf("expected length 3, got %d", l.Len())
	}
	if l.First().(Integer).V.Int64() != 1 {
		t.Errorf("expected first element 1")
	}
	if l.Rest().Len() != 2 {
		t.Errorf("expected rest length 2, got %d", l.Rest().Len())
	}

	var empty *List
	if !empty.IsEmpty() {
		t.Errorf("nil list should be empty")
	}
	if _, ok := empty.First().(Nil); !ok {
		t.Errorf("first of empty list should be Nil")
	}
}

func TestListNth(t *testing.T) {
	l := NewList(IntegerFromInt64(10), IntegerFromInt64(20), IntegerFromInt64(30))
	if v, ok := l.Nth(1); !ok || v.(Integer).V.Int64() != 20 {
		t.Errorf("Nth(1) = %v, %v", v, ok)
	}
	if _, ok := l.Nth(5); ok {
		t.Errorf("Nth(5) should report out of range")
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Boolean(false), false},
		{Boolean(true), true},
		{Nil{}, false},
		{IntegerFromInt64(0), true},
		{Str{S: heapString("")}, true},
	}
	for _, c := range cases {
		if Truthy(c.v) != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, Truthy(c.v), c.want)
		}
	}
}

func TestSymbolEquality(t *testing.T) {
	a := NewSymbol("foo")
	b := NewSymbol("foo")
	if !a.Equal(b) {
		t.Errorf("symbols with the same name should be equal")
	}
	g1 := NewGensym(1)
	g2 := NewGensym(2)
	if g1.Equal(g2) {
		t.Errorf("distinct gensyms should not be equal")
	}
	if NewGensym(7).Equal(NewSymbol("7")) {
		t.Errorf("a gensym should never equal a named symbol")
	}
}

func TestIntegerString(t *testing.T) {
	if IntegerFromInt64(42).String() != "42" {
		t.Errorf("unexpected integer formatting")
	}
	if (Integer{}).String() != "0" {
		t.Errorf("zero-value Integer should print as 0")
	}
}
