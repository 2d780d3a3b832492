package lang

// Compound is an ordered sequence of statements sharing one Scope. It is
// the body of an if/else branch or of a whole program.
type Compound struct {
	Position
	Statements []Statement
}

func (*Compound) stmtNode() {}

// ExprStmt runs an expression for its side effect (typically a MethodCall)
// and discards the result.
type ExprStmt struct {
	Position
	Target Expression
}

func (*ExprStmt) stmtNode() {}

// Assignment binds Name to the result of Value in the current scope,
// creating the binding if it doesn't already exist.
type Assignment struct {
	Position
	Name  string
	Value Expression
}

func (*Assignment) stmtNode() {}

// FieldAssignment sets a field on the value Receiver evaluates to, which
// must be an InstanceRef.
type FieldAssignment struct {
	Position
	Receiver Expression
	Field    string
	Value    Expression
}

func (*FieldAssignment) stmtNode() {}

// Print evaluates each argument, each of which must yield a String (the
// parser wraps every argument in a Stringify node; any other value is a
// TypeError), and writes the space-joined results followed by a newline.
// Zero arguments prints a bare newline.
type Print struct {
	Position
	Args []Expression
}

func (*Print) stmtNode() {}

// Return ends the enclosing method body, yielding Value (or None if nil)
// to its caller via the executor's sentinel control-flow signal.
type Return struct {
	Position
	Value Expression
}

func (*Return) stmtNode() {}

// IfElse executes Then when Cond is truthy, Else otherwise. Else is nil
// when there is no else clause.
type IfElse struct {
	Position
	Cond Expression
	Then *Compound
	Else *Compound
}

func (*IfElse) stmtNode() {}

// MethodDecl is one def inside a ClassDefinition body.
type MethodDecl struct {
	Position
	Name   string
	Params []string
	Body   *MethodBody
}

// MethodBody wraps a method's statements with the scope-setup and
// Return-catching rules a method call requires: Self, Params are bound
// before Statements run, and a Return anywhere inside stops execution and
// supplies the method's result.
type MethodBody struct {
	Position
	Statements []Statement
}

func (*MethodBody) stmtNode() {}

// ClassDefinition declares a class, optionally inheriting from Parent (the
// empty string means no parent), and registers it in the enclosing scope
// under Name.
type ClassDefinition struct {
	Position
	Name    string
	Parent  string
	Methods []*MethodDecl
}

func (*ClassDefinition) stmtNode() {}
