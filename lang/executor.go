package lang

import (
	"fmt"
	"io"
)

// Limits bounds runaway execution. MyLang has no loop statement, so the
// only way a program can fail to terminate is unbounded recursion through
// method calls.
type Limits struct {
	MaxCallDepth int
}

// DefaultLimits returns the Limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxCallDepth: 512}
}

// Context carries everything the executor needs across a single run: where
// print output goes, the active Limits, and the current call depth.
type Context struct {
	Out    io.Writer
	Limits Limits
	depth  int
}

// NewContext returns a Context that writes print output to out, bounded by
// limits.
func NewContext(out io.Writer, limits Limits) *Context {
	return &Context{Out: out, Limits: limits}
}

// returnSignal is the sentinel MyLang's Return statement propagates as an
// error. invokeMethod catches it to end a method body, and Run discards one
// raised at the top level. It carries the returned Value as its payload,
// since MyLang has no threaded "returned" boolean to fold it into.
type returnSignal struct {
	Value Value
}

func (r *returnSignal) Error() string { return "return outside of a method body" }

// Run executes program as a whole script in a fresh top-level Scope.
func Run(program *Compound, ctx *Context) error {
	_, err := Execute(program, NewScope(), ctx)
	if ret, ok := err.(*returnSignal); ok {
		_ = ret // a top-level return has nowhere to deliver its value; ignore it
		return nil
	}
	return err
}

// Execute evaluates a single AST node in scope, dispatching by its
// concrete type.
func Execute(node Node, scope *Scope, ctx *Context) (Value, error) {
	switch n := node.(type) {
	case *Compound:
		return execCompound(n, scope, ctx)
	case *ExprStmt:
		return Execute(n.Target, scope, ctx)
	case *Assignment:
		return execAssignment(n, scope, ctx)
	case *FieldAssignment:
		return execFieldAssignment(n, scope, ctx)
	case *Print:
		return execPrint(n, scope, ctx)
	case *Return:
		return execReturn(n, scope, ctx)
	case *IfElse:
		return execIfElse(n, scope, ctx)
	case *ClassDefinition:
		return execClassDefinition(n, scope, ctx)

	case *IntLiteral:
		return IntValue{Val: n.Val}, nil
	case *StringLiteral:
		return StringValue{Val: n.Val}, nil
	case *BoolLiteral:
		return Bool(n.Val), nil
	case *NoneLiteral:
		return None, nil
	case *VariableValue:
		return execVariableValue(n, scope)
	case *FieldAccess:
		return execFieldAccess(n, scope, ctx)
	case *MethodCall:
		return execMethodCall(n, scope, ctx)
	case *NewInstance:
		return execNewInstance(n, scope, ctx)
	case *Stringify:
		return execStringify(n, scope, ctx)
	case *Arithmetic:
		return execArithmetic(n, scope, ctx)
	case *Comparison:
		return execComparison(n, scope, ctx)
	case *And:
		return execAnd(n, scope, ctx)
	case *Or:
		return execOr(n, scope, ctx)
	case *Not:
		return execNot(n, scope, ctx)

	default:
		return nil, newRuntimeError(TypeError, node.Pos(), "cannot execute node of type %T", node)
	}
}

func execCompound(n *Compound, scope *Scope, ctx *Context) (Value, error) {
	for _, stmt := range n.Statements {
		if _, err := Execute(stmt, scope, ctx); err != nil {
			return nil, err
		}
	}
	return None, nil
}

func execAssignment(n *Assignment, scope *Scope, ctx *Context) (Value, error) {
	val, err := Execute(n.Value, scope, ctx)
	if err != nil {
		return nil, err
	}
	scope.Set(n.Name, val)
	return None, nil
}

func execFieldAssignment(n *FieldAssignment, scope *Scope, ctx *Context) (Value, error) {
	recv, err := Execute(n.Receiver, scope, ctx)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.(*InstanceRef)
	if !ok {
		return nil, newRuntimeError(TypeError, n.Pos(), "cannot assign a field on a %s", recv.Kind())
	}
	val, err := Execute(n.Value, scope, ctx)
	if err != nil {
		return nil, err
	}
	inst.Fields.Set(n.Field, val)
	return None, nil
}

func execPrint(n *Print, scope *Scope, ctx *Context) (Value, error) {
	parts := make([]string, len(n.Args))
	for i, arg := range n.Args {
		v, err := Execute(arg, scope, ctx)
		if err != nil {
			return nil, err
		}
		s, ok := v.(StringValue)
		if !ok {
			return nil, newRuntimeError(TypeError, arg.Pos(), "print argument did not stringify to a String")
		}
		parts[i] = s.Val
	}
	line := ""
	for i, p := range parts {
		if i > 0 {
			line += " "
		}
		line += p
	}
	fmt.Fprintln(ctx.Out, line)
	return None, nil
}

func execReturn(n *Return, scope *Scope, ctx *Context) (Value, error) {
	if n.Value == nil {
		return nil, &returnSignal{Value: None}
	}
	val, err := Execute(n.Value, scope, ctx)
	if err != nil {
		return nil, err
	}
	return nil, &returnSignal{Value: val}
}

func execIfElse(n *IfElse, scope *Scope, ctx *Context) (Value, error) {
	cond, err := Execute(n.Cond, scope, ctx)
	if err != nil {
		return nil, err
	}
	if Truthy(cond) {
		return Execute(n.Then, scope, ctx)
	}
	if n.Else != nil {
		return Execute(n.Else, scope, ctx)
	}
	return None, nil
}

func execClassDefinition(n *ClassDefinition, scope *Scope, ctx *Context) (Value, error) {
	var parent *ClassRef
	if n.Parent != "" {
		pv, ok := scope.Get(n.Parent)
		if !ok {
			return nil, newRuntimeError(NameError, n.Pos(), "undefined class %s", n.Parent)
		}
		p, ok := pv.(*ClassRef)
		if !ok {
			return nil, newRuntimeError(TypeError, n.Pos(), "%s is not a class", n.Parent)
		}
		parent = p
	}
	cls := &ClassRef{Name: n.Name, Methods: make(map[string]*Method, len(n.Methods)), Parent: parent}
	for _, decl := range n.Methods {
		cls.Methods[decl.Name] = &Method{Name: decl.Name, Params: decl.Params, Body: decl.Body}
	}
	scope.Set(n.Name, cls)
	return None, nil
}

func execVariableValue(n *VariableValue, scope *Scope) (Value, error) {
	v, ok := scope.Get(n.Name)
	if !ok {
		return nil, newRuntimeError(NameError, n.Pos(), "undefined variable %s", n.Name)
	}
	return v, nil
}

func execFieldAccess(n *FieldAccess, scope *Scope, ctx *Context) (Value, error) {
	recv, err := Execute(n.Receiver, scope, ctx)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.(*InstanceRef)
	if !ok {
		return nil, newRuntimeError(TypeError, n.Pos(), "cannot read a field off a %s", recv.Kind())
	}
	v, ok := inst.Fields.Get(n.Field)
	if !ok {
		// An existing instance with an unset field reads as a NameError, the
		// same path a free-variable lookup takes.
		return nil, newRuntimeError(NameError, n.Pos(), "%s has no field %s", inst.Class.Name, n.Field)
	}
	return v, nil
}

func execMethodCall(n *MethodCall, scope *Scope, ctx *Context) (Value, error) {
	recv, err := Execute(n.Receiver, scope, ctx)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.(*InstanceRef)
	if !ok {
		return nil, newRuntimeError(TypeError, n.Pos(), "cannot call a method on a %s", recv.Kind())
	}
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Execute(a, scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return ctx.callMethod(inst, n.Method, args, n.Pos())
}

func execNewInstance(n *NewInstance, scope *Scope, ctx *Context) (Value, error) {
	cv, ok := scope.Get(n.ClassName)
	if !ok {
		return nil, newRuntimeError(NameError, n.Pos(), "undefined class %s", n.ClassName)
	}
	cls, ok := cv.(*ClassRef)
	if !ok {
		return nil, newRuntimeError(TypeError, n.Pos(), "%s is not a class", n.ClassName)
	}
	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Execute(a, scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	inst := AllocInstance(cls)
	if init, ok := cls.Lookup("__init__"); ok && len(init.Params) == len(args) {
		if _, err := ctx.invokeMethod(inst, init, args, n.Pos()); err != nil {
			return nil, err
		}
	}
	// An __init__ with a different arity than the call site is not an
	// error: the arguments are silently discarded.
	return inst, nil
}

func execStringify(n *Stringify, scope *Scope, ctx *Context) (Value, error) {
	v, err := Execute(n.Target, scope, ctx)
	if err != nil {
		return nil, err
	}
	s, err := ctx.stringify(v, n.Pos())
	if err != nil {
		return nil, err
	}
	return StringValue{Val: s}, nil
}

func execArithmetic(n *Arithmetic, scope *Scope, ctx *Context) (Value, error) {
	left, err := Execute(n.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	right, err := Execute(n.Right, scope, ctx)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case OpAdd:
		return Add(ctx, left, right, n.Pos())
	case OpSub:
		return Sub(ctx, left, right, n.Pos())
	case OpMul:
		return Mul(ctx, left, right, n.Pos())
	case OpDiv:
		return Div(ctx, left, right, n.Pos())
	default:
		return nil, newRuntimeError(TypeError, n.Pos(), "unknown arithmetic operator")
	}
}

func execComparison(n *Comparison, scope *Scope, ctx *Context) (Value, error) {
	left, err := Execute(n.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	right, err := Execute(n.Right, scope, ctx)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case OpEq:
		eq, err := Equal(ctx, left, right, n.Pos())
		return Bool(eq), err
	case OpNotEq:
		eq, err := Equal(ctx, left, right, n.Pos())
		return Bool(!eq), err
	case OpLess:
		lt, err := Less(ctx, left, right, n.Pos())
		return Bool(lt), err
	case OpLessEq:
		eq, err := Equal(ctx, left, right, n.Pos())
		if err != nil || eq {
			return Bool(eq), err
		}
		lt, err := Less(ctx, left, right, n.Pos())
		return Bool(lt), err
	case OpGreater:
		eq, err := Equal(ctx, left, right, n.Pos())
		if err != nil || eq {
			return Bool(false), err
		}
		lt, err := Less(ctx, left, right, n.Pos())
		return Bool(!lt), err
	case OpGreaterEq:
		lt, err := Less(ctx, left, right, n.Pos())
		return Bool(!lt), err
	default:
		return nil, newRuntimeError(TypeError, n.Pos(), "unknown comparison operator")
	}
}

func execAnd(n *And, scope *Scope, ctx *Context) (Value, error) {
	left, err := Execute(n.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	if !Truthy(left) {
		return left, nil
	}
	return Execute(n.Right, scope, ctx)
}

func execOr(n *Or, scope *Scope, ctx *Context) (Value, error) {
	left, err := Execute(n.Left, scope, ctx)
	if err != nil {
		return nil, err
	}
	if Truthy(left) {
		return left, nil
	}
	return Execute(n.Right, scope, ctx)
}

func execNot(n *Not, scope *Scope, ctx *Context) (Value, error) {
	v, err := Execute(n.Target, scope, ctx)
	if err != nil {
		return nil, err
	}
	return Bool(!Truthy(v)), nil
}

// callMethod looks up name on inst's class chain and invokes it.
func (c *Context) callMethod(inst *InstanceRef, name string, args []Value, pos Position) (Value, error) {
	method, ok := inst.Class.Lookup(name)
	if !ok {
		return nil, newRuntimeError(CallError, pos, "%s has no method %s", inst.Class.Name, name)
	}
	return c.invokeMethod(inst, method, args, pos)
}

// invokeMethod binds self and the call's arguments into a fresh Scope,
// runs the method body, and resolves a Return sentinel into that call's
// result.
func (c *Context) invokeMethod(inst *InstanceRef, method *Method, args []Value, pos Position) (Value, error) {
	if len(args) != len(method.Params) {
		return nil, newRuntimeError(CallError, pos, "%s expects %d argument(s), got %d", method.Name, len(method.Params), len(args))
	}
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.Limits.MaxCallDepth {
		return nil, newRuntimeError(CallError, pos, "maximum call depth exceeded")
	}

	body, ok := method.Body.(*MethodBody)
	if !ok {
		return nil, newRuntimeError(CallError, pos, "malformed body for method %s", method.Name)
	}

	methodScope := NewScope()
	methodScope.Set("self", inst)
	for i, p := range method.Params {
		methodScope.Set(p, args[i])
	}

	for _, stmt := range body.Statements {
		_, err := Execute(stmt, methodScope, c)
		if err == nil {
			continue
		}
		if ret, ok := err.(*returnSignal); ok {
			return ret.Value, nil
		}
		return nil, err
	}
	return None, nil
}

// stringify renders v as text, dispatching to an instance's __str__
// override when one exists.
func (c *Context) stringify(v Value, pos Position) (string, error) {
	if inst, ok := v.(*InstanceRef); ok && inst.Class.HasMethod("__str__", 0) {
		result, err := c.callMethod(inst, "__str__", nil, pos)
		if err != nil {
			return "", err
		}
		s, ok := result.(StringValue)
		if !ok {
			return "", newRuntimeError(TypeError, pos, "__str__ must return a string, got %s", result.Kind())
		}
		return s.Val, nil
	}
	return v.Print(), nil
}
