package hqlgen

import (
	"strings"

	"github.com/nodfans/helixdb-explorer-sub000/ast"
)

// GenerateSchema renders one schema definition block per entity, joined by
// a blank line and trimmed. Entities without a name are skipped. An empty
// model yields the empty string.
func GenerateSchema(entities []Entity) string {
	var blocks []string
	for _, e := range entities {
		if e.Name == "" {
			continue
		}
		blocks = append(blocks, schemaDef(e).String())
	}
	return strings.TrimSpace(strings.Join(blocks, "\n\n"))
}

func schemaDef(e Entity) ast.SchemaDef {
	d := ast.SchemaDef{
		Prefix: e.Kind.SchemaPrefix(),
		Name:   PascalCase(e.Name),
	}
	if e.Kind == KindEdge {
		d.Unique = e.UniqueRelation
		if e.From != "" {
			d.From = PascalCase(e.From)
		}
		if e.To != "" {
			d.To = PascalCase(e.To)
		}
	}
	for _, p := range e.Properties {
		d.Fields = append(d.Fields, ast.SchemaField{
			Name:    p.Name,
			Type:    p.Type,
			Array:   p.IsArray,
			Unique:  p.IsUnique,
			Index:   p.IsIndex,
			Default: p.Default,
		})
	}
	return d
}
