package ast

import (
	"strings"

	"github.com/nodfans/helixdb-explorer-sub000/hql"
)

// Indent is one level of indentation in rendered HQL.
const Indent = "    "

// Render renders a fragment to HQL text at the leftmost indent level.
func Render(f Fragment) string {
	w := &writer{}
	f.write(w)
	return w.b.String()
}

// String renders the query, header through RETURN line.
func (q Query) String() string { return Render(q) }

// String renders the schema definition block.
func (d SchemaDef) String() string { return Render(d) }

// writer accumulates rendered text. indent is the indentation of the line
// the current fragment started on; nested blocks derive their own from it.
type writer struct {
	b      strings.Builder
	indent string
}

func (w *writer) str(s string) { w.b.WriteString(s) }

// nested runs fn with the indent pushed one level.
func (w *writer) nested(fn func()) {
	outer := w.indent
	w.indent = outer + Indent
	fn()
	w.indent = outer
}

func writeArgs(w *writer, args []Expr) {
	w.str("(")
	for i, a := range args {
		if i > 0 {
			w.str(", ")
		}
		a.write(w)
	}
	w.str(")")
}

// writeOp writes a chained operation. Projections chain with a bare "::"
// before the brace block.
func writeOp(w *writer, op Op) {
	if _, ok := op.(Projection); ok {
		w.str("::")
	}
	op.write(w)
}

// --- Expressions ---

func (Anon) write(w *writer) { w.str("_") }

func (p Param) write(w *writer) { w.str(p.Name) }

func (l Literal) write(w *writer) { w.str(formatLiteral(l.Value, l.Type)) }

func (a ArrayLiteral) write(w *writer) {
	w.str("[")
	for i, e := range a.Elems {
		if i > 0 {
			w.str(", ")
		}
		e.write(w)
	}
	w.str("]")
}

func (p PropAccess) write(w *writer) { w.str("_::{" + p.Name + "}") }

func (IDAccess) write(w *writer) { w.str("_::" + hql.StepID) }

func (c Call) write(w *writer) {
	w.str(c.Name)
	writeArgs(w, c.Args)
}

func (c Chain) write(w *writer) {
	c.Base.write(w)
	for _, op := range c.Ops {
		writeOp(w, op)
	}
}

// --- Operations ---

func (s Step) write(w *writer) {
	w.str("::" + s.Name)
	if s.TypeParam != "" {
		w.str("<" + s.TypeParam + ">")
	}
	if len(s.Args) > 0 {
		writeArgs(w, s.Args)
	}
}

func (p Projection) write(w *writer) {
	if len(p.Fields) == 0 {
		w.str("{}")
		return
	}
	outer := w.indent
	w.str("{\n")
	w.nested(func() {
		for i, f := range p.Fields {
			w.str(w.indent)
			w.str(f.Name + ": ")
			f.Value.write(w)
			if i < len(p.Fields)-1 {
				w.str(",")
			}
			w.str("\n")
		}
	})
	w.str(outer + "}")
}

// --- Statements ---

func (t Traversal) write(w *writer) {
	w.str(t.Source)
	if t.TypeParam != "" {
		w.str("<" + t.TypeParam + ">")
	}
	if len(t.Args) > 0 {
		writeArgs(w, t.Args)
	}
	for _, op := range t.Steps {
		w.str("\n" + w.indent + Indent)
		w.nested(func() { writeOp(w, op) })
	}
}

func (a Assign) write(w *writer) {
	w.str(a.Name + " <- ")
	a.Value.write(w)
}

func (d Drop) write(w *writer) {
	w.str(hql.KwDrop + " ")
	if d.Target != nil {
		d.Target.write(w)
	}
}

// --- Query ---

func (q Query) write(w *writer) {
	w.str(hql.KwQuery + " " + q.Name + "(")
	for i, p := range q.Params {
		if i > 0 {
			w.str(", ")
		}
		w.str(p.Name + ": " + p.Type)
	}
	w.str(") =>\n")
	w.nested(func() {
		for _, s := range q.Stmts {
			w.str(w.indent)
			s.write(w)
			w.str("\n")
		}
		w.str(w.indent + hql.KwReturn)
		if q.Return != nil {
			w.str(" ")
			q.Return.write(w)
		}
	})
}

// --- Schema ---

func (d SchemaDef) write(w *writer) {
	w.str(d.Prefix + "::" + d.Name)
	if d.Unique {
		w.str(" " + hql.KwUnique)
	}
	w.str(" {\n")
	if d.Prefix == hql.PrefixEdge {
		w.nested(func() {
			w.str(w.indent + "From: " + orUndefined(d.From) + ",\n")
			w.str(w.indent + "To: " + orUndefined(d.To) + ",\n")
			w.str(w.indent + "Properties: ")
			writeSchemaFields(w, d.Fields)
			w.str("\n")
		})
	} else {
		w.nested(func() {
			for _, f := range d.Fields {
				w.str(w.indent + fieldLine(f) + "\n")
			}
		})
	}
	w.str(w.indent + "}")
}

func writeSchemaFields(w *writer, fields []SchemaField) {
	if len(fields) == 0 {
		w.str("{}")
		return
	}
	outer := w.indent
	w.str("{\n")
	w.nested(func() {
		for _, f := range fields {
			w.str(w.indent + fieldLine(f) + "\n")
		}
	})
	w.str(outer + "}")
}

func fieldLine(f SchemaField) string {
	var b strings.Builder
	switch {
	case f.Unique:
		b.WriteString(hql.KwUnique + " " + hql.KwIndex + " ")
	case f.Index:
		b.WriteString(hql.KwIndex + " ")
	}
	b.WriteString(f.Name + ": ")
	if f.Array {
		b.WriteString("[" + f.Type.String() + "]")
	} else {
		b.WriteString(f.Type.String())
	}
	if f.Default != "" {
		b.WriteString(" " + hql.KwDefault + " " + formatLiteral(f.Default, f.Type))
	}
	return b.String()
}

func orUndefined(name string) string {
	if name == "" {
		return "Undefined"
	}
	return name
}

// formatLiteral renders literal text according to its scalar type: strings
// and dates are quoted (NOW excepted), booleans normalize to the lowercase
// tokens, everything else passes through verbatim.
func formatLiteral(value string, t hql.Scalar) string {
	switch {
	case t == hql.TypeBoolean:
		return strings.ToLower(value)
	case t == hql.TypeDate && value == hql.KwNow:
		return value
	case t.Quoted():
		return `"` + EscapeString(value) + `"`
	default:
		return value
	}
}

// EscapeString escapes special characters for use inside HQL string
// literals. It handles backslashes, quotes, newlines, carriage returns,
// and tabs.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}
