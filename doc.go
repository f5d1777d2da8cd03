// Package explorer is the generation and validation core of the HelixDB
// explorer.
//
// Define a graph/vector data model as a list of entities (nodes, edges,
// vector collections) and get deterministic HQL schema source, a categorized
// library of parameterized query templates, structural diagnostics, and a
// best-effort HQL re-formatter, all without connecting to a database.
//
// The module is organized into four packages plus a CLI:
//
//   - hql: the fixed HQL vocabulary of keywords, steps, and scalar types
//   - ast: composable HQL fragments that render themselves to text
//   - hqlgen: entity model, schema and query generation, validation
//   - hqlfmt: textual HQL re-formatter
//   - cmd/hqlgen: command-line wrapper (generate, validate, fmt)
//
// The core packages are pure and synchronous: output depends only on the
// arguments, and repeated calls are byte-identical. The visual model editor
// and text editor that surround this core live elsewhere.
package explorer
