package lang

import (
	"reflect"
	"testing"
)

func TestScopeGetSetContains(t *testing.T) {
	s := NewScope()
	if _, ok := s.Get("x"); ok {
		t.Fatalf("expected an empty Scope to have no bindings")
	}
	if s.Contains("x") {
		t.Fatalf("expected Contains to report false before Set")
	}
	s.Set("x", IntValue{Val: 1})
	v, ok := s.Get("x")
	if !ok || v.(IntValue).Val != 1 {
		t.Fatalf("got %v, %v, want IntValue{1}, true", v, ok)
	}
	if !s.Contains("x") {
		t.Fatalf("expected Contains to report true after Set")
	}
	s.Set("x", IntValue{Val: 2})
	v, _ = s.Get("x")
	if v.(IntValue).Val != 2 {
		t.Fatalf("Set should overwrite an existing binding, got %v", v)
	}
}

func TestScopeHasNoParentFallback(t *testing.T) {
	outer := NewScope()
	outer.Set("x", IntValue{Val: 1})
	inner := NewScope()
	if inner.Contains("x") {
		t.Fatalf("a fresh Scope must not see bindings from any other Scope")
	}
}

func TestScopeNamesAreSorted(t *testing.T) {
	s := NewScope()
	s.Set("z", None)
	s.Set("a", None)
	s.Set("m", None)
	got := s.Names()
	want := []string{"a", "m", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
