// Package ast defines composable HQL fragments.
//
// It decouples query construction from string formatting: generators build
// fragment trees and each fragment renders itself to HQL text with correct
// indentation. Rendering is total over well-formed structures; no fragment
// ever fails. Malformed domain input (a missing edge endpoint, an empty
// field list) renders placeholder or empty text instead of an error.
package ast

import "github.com/nodfans/helixdb-explorer-sub000/hql"

// Fragment is the marker interface for all HQL fragments.
type Fragment interface {
	write(w *writer)
}

// Expr is the marker interface for value expressions: literals, accessors,
// parameter references, calls, and operator chains.
type Expr interface {
	Fragment
	expr()
}

// Op is the marker interface for chainable operations: a Step or an inline
// Projection.
type Op interface {
	Fragment
	op()
}

// Stmt is the marker interface for statements inside a query body.
type Stmt interface {
	Fragment
	stmt()
}

// --- Expressions ---

// Anon is the anonymous element reference inside filters and projections.
// It renders as "_".
type Anon struct{}

func (Anon) expr() {}

// Param references a query parameter by name.
type Param struct {
	// Name is the parameter name as declared in the query header.
	Name string
}

func (Param) expr() {}

// Literal is a scalar literal. Strings and dates render quoted, except the
// NOW keyword; booleans render as the bare tokens true/false.
type Literal struct {
	// Value is the literal text as authored, without quoting.
	Value string
	// Type selects the rendering rule.
	Type hql.Scalar
}

func (Literal) expr() {}

// ArrayLiteral renders its elements as a bracketed comma list.
type ArrayLiteral struct {
	Elems []Expr
}

func (ArrayLiteral) expr() {}

// PropAccess is the anonymous property accessor. It renders as "_::{name}".
type PropAccess struct {
	// Name is the property name as authored in the model.
	Name string
}

func (PropAccess) expr() {}

// IDAccess is the anonymous id accessor. It renders as "_::ID".
type IDAccess struct{}

func (IDAccess) expr() {}

// Call is a function-style expression such as EXISTS(...).
type Call struct {
	Name string
	Args []Expr
}

func (Call) expr() {}

// Chain is an expression followed by chained operations, rendered inline:
// expr::OP(args) or expr::OP<Type>(args).
type Chain struct {
	Base Expr
	Ops  []Op
}

func (Chain) expr() {}

// --- Operations ---

// Step is a named operation with an optional type parameter and argument
// list, rendered as ::Name<Type>(args). A step without arguments renders
// without parentheses, e.g. ::COUNT.
type Step struct {
	Name      string
	TypeParam string
	Args      []Expr
}

func (Step) op() {}

// Field is one entry of a Projection.
type Field struct {
	Name  string
	Value Expr
}

// Projection maps field names to expressions and renders as a brace block
// with one field per line, at the caller's indent plus one level. It can be
// chained as an operation or passed as an argument.
type Projection struct {
	Fields []Field
}

func (Projection) op()   {}
func (Projection) expr() {}

// --- Statements ---

// Traversal is a source with a chain of steps: a named origin, optionally
// type- and argument-parameterized, followed by steps and projections each
// on its own indented line.
type Traversal struct {
	Source    string
	TypeParam string
	Args      []Expr
	Steps     []Op
}

// Assign binds the value of a traversal or expression to a name:
// name <- value.
type Assign struct {
	Name  string
	Value Fragment
}

func (Assign) stmt() {}

// Drop is a destructive statement: DROP target.
type Drop struct {
	Target Fragment
}

func (Drop) stmt() {}

// --- Query ---

// QueryParam is one name:type pair of a query parameter list.
type QueryParam struct {
	Name string
	Type string
}

// Query is a complete parameterized HQL query: a header, an ordered
// statement list, and exactly one terminal return expression.
type Query struct {
	Name   string
	Params []QueryParam
	Stmts  []Stmt
	Return Expr
}

// --- Schema ---

// SchemaField is one property line of a schema definition block.
type SchemaField struct {
	Name   string
	Type   hql.Scalar
	Array  bool
	Unique bool
	Index  bool
	// Default is the default value literal text, empty when absent.
	Default string
}

// SchemaDef renders an entity's schema form:
//
//	N::Name { fields }
//	E::Name [UNIQUE] { From: X, To: Y, Properties: { fields } }
//	V::Name { fields }
//
// A missing edge endpoint renders the placeholder Undefined.
type SchemaDef struct {
	// Prefix is one of hql.PrefixNode, hql.PrefixEdge, hql.PrefixVector.
	Prefix string
	Name   string
	// Unique marks an edge as a unique relation.
	Unique bool
	From   string
	To     string
	Fields []SchemaField
}
