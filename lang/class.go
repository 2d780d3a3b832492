package lang

import "fmt"

// Method is a user-defined method body bound to the class it was declared
// on. Params holds the parameter names in declaration order; self is bound
// separately by the executor when the method is invoked.
type Method struct {
	Name   string
	Params []string
	Body   Node
}

// ClassRef is a runtime class value: a name, its own methods, and an
// optional parent for single inheritance.
type ClassRef struct {
	Name    string
	Methods map[string]*Method
	Parent  *ClassRef
}

func (c *ClassRef) Kind() Kind    { return KindClass }
func (c *ClassRef) Print() string { return fmt.Sprintf("Class %s", c.Name) }

// Lookup finds a method by name on c or the nearest ancestor that defines
// it, walking the parent chain.
func (c *ClassRef) Lookup(name string) (*Method, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if m, ok := cls.Methods[name]; ok {
			return m, true
		}
	}
	return nil, false
}

// HasMethod reports whether name is defined on c or an ancestor with
// exactly arity parameters (not counting self). Dunder dispatch (__str__/0,
// __eq__/1, __lt__/1, __add__/1) only fires on an arity match; a
// wrong-arity override is treated as if it were absent.
func (c *ClassRef) HasMethod(name string, arity int) bool {
	m, ok := c.Lookup(name)
	return ok && len(m.Params) == arity
}

// IsSubclassOf reports whether c is other or descends from other; used for
// isinstance-style checks if the executor ever needs one.
func (c *ClassRef) IsSubclassOf(other *ClassRef) bool {
	for cls := c; cls != nil; cls = cls.Parent {
		if cls == other {
			return true
		}
	}
	return false
}

// InstanceRef is a runtime instance: a pointer to its class plus a flat
// field table. Fields share the same "no parent fallback" Scope type
// variables do.
type InstanceRef struct {
	Class  *ClassRef
	Fields *Scope
}

func (i *InstanceRef) Kind() Kind { return KindInstance }

// Print renders an instance as its class name plus a pointer identity. It
// does not consult __str__; the executor's stringify does that before
// falling back to Print.
func (i *InstanceRef) Print() string {
	return fmt.Sprintf("<%s@%p>", i.Class.Name, i)
}

// AllocInstance allocates a zero-valued instance of class c.
func AllocInstance(c *ClassRef) *InstanceRef {
	return &InstanceRef{Class: c, Fields: NewScope()}
}
