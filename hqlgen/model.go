// Package hqlgen generates HQL schema and query source from an entity
// model, and validates the model independently of generation.
//
// The entity list is owned by the caller (the visual model editor); every
// generation or validation call treats it as an immutable snapshot. All
// exported functions are pure: their output depends only on their
// arguments, and repeated calls produce byte-identical text.
package hqlgen

import "github.com/nodfans/helixdb-explorer-sub000/hql"

// Kind discriminates the three entity families of the model.
type Kind string

const (
	KindNode   Kind = "Node"
	KindEdge   Kind = "Edge"
	KindVector Kind = "Vector"
)

// Entity is one node, edge, or vector collection definition. Name is the
// semantic key used in generated identifiers and must be unique
// case-insensitively across the model; ID is a stable identifier used only
// to reference the entity from diagnostics and editor state.
type Entity struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Kind        Kind       `yaml:"kind"`
	Properties  []Property `yaml:"properties"`
	Description string     `yaml:"description,omitempty"`

	// VectorDim is the embedding dimensionality. Vector kind only.
	VectorDim int `yaml:"vector_dim,omitempty"`

	// From and To name the endpoint entities. Edge kind only; either may
	// be empty while the edge is being modeled.
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`
	// UniqueRelation marks an edge that may exist at most once per
	// endpoint pair. Edge kind only.
	UniqueRelation bool `yaml:"unique_relation,omitempty"`
}

// Property is one typed field of an entity.
type Property struct {
	Name     string     `yaml:"name"`
	Type     hql.Scalar `yaml:"type"`
	IsUnique bool       `yaml:"is_unique,omitempty"`
	IsIndex  bool       `yaml:"is_index,omitempty"`
	// IsArray wraps the scalar type in an array.
	IsArray bool `yaml:"is_array,omitempty"`
	// Default is the default value literal text, empty when absent.
	Default     string `yaml:"default,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// ReservedFields returns the internal field names implicitly carried by
// every instance of the kind. User properties must not collide with them.
func (k Kind) ReservedFields() []string {
	switch k {
	case KindEdge:
		return hql.EdgeReservedFields
	case KindVector:
		return hql.VectorReservedFields
	default:
		return hql.NodeReservedFields
	}
}

// SchemaPrefix returns the schema block prefix for the kind.
func (k Kind) SchemaPrefix() string {
	switch k {
	case KindEdge:
		return hql.PrefixEdge
	case KindVector:
		return hql.PrefixVector
	default:
		return hql.PrefixNode
	}
}

// ParamType returns the property's type as it appears in a query parameter
// list, wrapping arrays in brackets.
func (p Property) ParamType() string {
	if p.IsArray {
		return "[" + p.Type.String() + "]"
	}
	return p.Type.String()
}
