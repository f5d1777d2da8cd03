package hqlgen

import (
	"strings"
	"testing"

	"github.com/nodfans/helixdb-explorer-sub000/hql"
)

func TestGenerateSchema(t *testing.T) {
	entities := []Entity{
		{
			ID:   "n1",
			Name: "user",
			Kind: KindNode,
			Properties: []Property{
				{Name: "email", Type: hql.TypeString, IsUnique: true},
				{Name: "age", Type: hql.TypeI32},
			},
		},
		{
			ID:   "e1",
			Name: "follows",
			Kind: KindEdge,
			From: "user",
			To:   "user",
			Properties: []Property{
				{Name: "since", Type: hql.TypeDate, Default: hql.KwNow},
			},
		},
		{
			ID:        "v1",
			Name:      "doc_embedding",
			Kind:      KindVector,
			VectorDim: 768,
			Properties: []Property{
				{Name: "label", Type: hql.TypeString, IsIndex: true},
			},
		},
	}
	want := `N::User {
    UNIQUE INDEX email: String
    age: I32
}

E::Follows {
    From: User,
    To: User,
    Properties: {
        since: Date DEFAULT NOW
    }
}

V::DocEmbedding {
    INDEX label: String
}`
	if got := GenerateSchema(entities); got != want {
		t.Errorf("schema mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateSchemaEmptyModel(t *testing.T) {
	if got := GenerateSchema(nil); got != "" {
		t.Errorf("GenerateSchema(nil) = %q, want empty", got)
	}
	if got := GenerateSchema([]Entity{{ID: "x"}}); got != "" {
		t.Errorf("unnamed entity produced output: %q", got)
	}
}

func TestGenerateSchemaDanglingEdge(t *testing.T) {
	entities := []Entity{{ID: "e1", Name: "works_at", Kind: KindEdge, From: "person"}}
	got := GenerateSchema(entities)
	if !strings.Contains(got, "From: Person,") {
		t.Errorf("missing From endpoint:\n%s", got)
	}
	if !strings.Contains(got, "To: Undefined,") {
		t.Errorf("missing Undefined placeholder:\n%s", got)
	}
}

func TestGenerateSchemaDeterministic(t *testing.T) {
	entities := []Entity{
		{ID: "n1", Name: "user", Kind: KindNode, Properties: []Property{{Name: "email", Type: hql.TypeString}}},
		{ID: "n2", Name: "company", Kind: KindNode},
	}
	first := GenerateSchema(entities)
	for i := 0; i < 5; i++ {
		if got := GenerateSchema(entities); got != first {
			t.Fatalf("output changed between calls:\n%s\nvs:\n%s", first, got)
		}
	}
}
