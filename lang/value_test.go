package lang

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{None, false},
		{Bool(false), false},
		{Bool(true), true},
		{IntValue{Val: 0}, false},
		{IntValue{Val: 5}, true},
		{StringValue{Val: ""}, false},
		{StringValue{Val: "x"}, true},
		{&ClassRef{Name: "Point", Methods: map[string]*Method{}}, false},
		{AllocInstance(&ClassRef{Name: "Point", Methods: map[string]*Method{}}), false},
	}
	for _, c := range cases {
		if got := Truthy(c.v); got != c.want {
			t.Errorf("Truthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestPrintRendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{None, "None"},
		{Bool(true), "True"},
		{Bool(false), "False"},
		{IntValue{Val: 42}, "42"},
		{StringValue{Val: "hi"}, "hi"},
	}
	for _, c := range cases {
		if got := c.v.Print(); got != c.want {
			t.Errorf("Print() = %q, want %q", got, c.want)
		}
	}
}
