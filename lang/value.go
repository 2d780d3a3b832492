package lang

import "fmt"

// Kind tags the concrete type behind a Value for fast dispatch in the
// arithmetic and comparison kernels, without resorting to a type switch at
// every call site.
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindBool
	KindString
	KindClass
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return "value"
	}
}

// Value is anything a MyLang expression can evaluate to. Every concrete
// variant knows its own Kind and how to render itself for print and
// stringification; dunder-method overrides are resolved above this
// interface, in the executor, since only InstanceRef values can carry
// user-defined methods.
type Value interface {
	Kind() Kind
	Print() string
}

// NoneValue is the single value of MyLang's None type.
type NoneValue struct{}

func (NoneValue) Kind() Kind    { return KindNone }
func (NoneValue) Print() string { return "None" }

// None is the shared NoneValue instance; None carries no state so every
// caller can share one.
var None = NoneValue{}

// IntValue wraps a signed 64-bit integer.
type IntValue struct {
	Val int64
}

func (v IntValue) Kind() Kind    { return KindInt }
func (v IntValue) Print() string { return fmt.Sprintf("%d", v.Val) }

// BoolValue wraps a boolean.
type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }
func (v BoolValue) Print() string {
	if v.Val {
		return "True"
	}
	return "False"
}

// StringValue wraps a string.
type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind    { return KindString }
func (v StringValue) Print() string { return v.Val }

// Bool constructs the shared-by-convention BoolValue for b. MyLang has only
// two boolean values, so there's no pooling benefit to sharing instances,
// but the helper keeps call sites terse.
func Bool(b bool) BoolValue { return BoolValue{Val: b} }

// Truthy reports whether v is considered true in a boolean context: None
// and False are false; Int 0 and "" are false; every Class and Instance
// value is false too (they fall through to the default case below).
func Truthy(v Value) bool {
	switch val := v.(type) {
	case NoneValue:
		return false
	case BoolValue:
		return val.Val
	case IntValue:
		return val.Val != 0
	case StringValue:
		return val.Val != ""
	default:
		return false
	}
}
