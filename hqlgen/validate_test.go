package hqlgen

import (
	"strings"
	"testing"

	"github.com/nodfans/helixdb-explorer-sub000/hql"
)

func TestValidateCleanModel(t *testing.T) {
	entities := []Entity{
		{ID: "n1", Name: "User", Kind: KindNode, Properties: []Property{
			{Name: "email", Type: hql.TypeString, IsUnique: true},
			{Name: "age", Type: hql.TypeI32},
		}},
		{ID: "e1", Name: "Follows", Kind: KindEdge, From: "User", To: "User",
			Properties: []Property{{Name: "since", Type: hql.TypeDate}}},
		{ID: "v1", Name: "DocEmbedding", Kind: KindVector, VectorDim: 768,
			Properties: []Property{{Name: "label", Type: hql.TypeString, IsIndex: true}}},
	}
	if diags := Validate(entities); len(diags) != 0 {
		t.Errorf("clean model produced diagnostics: %+v", diags)
	}
}

func TestValidateEntityNames(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		diags := Validate([]Entity{{ID: "n1", Kind: KindNode}})
		if len(diags) != 1 {
			t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
		}
		d := diags[0]
		if d.Severity != SeverityError || d.PropertyIndex != -1 || d.EntityID != "n1" {
			t.Errorf("unexpected diagnostic: %+v", d)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		diags := Validate([]Entity{{ID: "n1", Name: "user profile", Kind: KindNode}})
		if len(diags) != 1 || diags[0].Severity != SeverityError {
			t.Fatalf("got %+v, want one format error", diags)
		}
		if !strings.Contains(diags[0].Message, "Invalid entity name") {
			t.Errorf("unexpected message: %s", diags[0].Message)
		}
	})

	t.Run("reserved keyword", func(t *testing.T) {
		diags := Validate([]Entity{{ID: "n1", Name: "query", Kind: KindNode}})
		if len(diags) != 2 {
			t.Fatalf("got %d diagnostics, want format and reserved errors: %+v", len(diags), diags)
		}
		reserved := 0
		for _, d := range diags {
			if d.Severity != SeverityError {
				t.Errorf("unexpected severity: %+v", d)
			}
			if strings.Contains(d.Message, "Reserved keyword") {
				reserved++
			}
		}
		if reserved != 1 {
			t.Errorf("got %d reserved-keyword messages, want 1", reserved)
		}
	})

	t.Run("case-insensitive duplicate", func(t *testing.T) {
		diags := Validate([]Entity{
			{ID: "n1", Name: "User", Kind: KindNode},
			{ID: "n2", Name: "user", Kind: KindNode},
		})
		if len(diags) != 2 {
			t.Fatalf("got %+v, want format and duplicate findings", diags)
		}
		var dup *Diagnostic
		for i := range diags {
			if strings.Contains(diags[i].Message, "Duplicate entity name") {
				dup = &diags[i]
			}
		}
		if dup == nil || dup.EntityID != "n2" {
			t.Fatalf("duplicate not attributed to the second entity: %+v", diags)
		}
	})
}

func TestValidateEdgeEndpoints(t *testing.T) {
	t.Run("unknown reference", func(t *testing.T) {
		diags := Validate([]Entity{
			{ID: "n1", Name: "User", Kind: KindNode},
			{ID: "e1", Name: "Follows", Kind: KindEdge, From: "User", To: "Ghost"},
		})
		if len(diags) != 1 {
			t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
		}
		d := diags[0]
		if d.Severity != SeverityError || d.EntityID != "e1" {
			t.Errorf("unexpected diagnostic: %+v", d)
		}
		if !strings.Contains(d.Message, `unknown entity "Ghost"`) {
			t.Errorf("unexpected message: %s", d.Message)
		}
	})

	t.Run("incomplete endpoints are informational", func(t *testing.T) {
		diags := Validate([]Entity{
			{ID: "e1", Name: "Follows", Kind: KindEdge},
		})
		if len(diags) != 2 {
			t.Fatalf("got %d diagnostics, want 2: %+v", len(diags), diags)
		}
		for _, d := range diags {
			if d.Severity != SeverityInfo {
				t.Errorf("endpoint finding is %s, want info: %+v", d.Severity, d)
			}
		}
		if HasErrors(diags) {
			t.Error("informational findings counted as errors")
		}
	})
}

func TestValidateVectorDimension(t *testing.T) {
	diags := Validate([]Entity{{ID: "v1", Name: "DocEmbedding", Kind: KindVector}})
	if len(diags) != 1 || diags[0].Severity != SeverityWarning {
		t.Fatalf("got %+v, want one warning", diags)
	}
}

func TestValidateProperties(t *testing.T) {
	tests := []struct {
		name     string
		entity   Entity
		index    int
		severity Severity
		contains string
	}{
		{
			name: "missing name",
			entity: Entity{ID: "n1", Name: "User", Kind: KindNode,
				Properties: []Property{{Type: hql.TypeString}}},
			index:    0,
			severity: SeverityError,
			contains: "Property name is required",
		},
		{
			name: "bad format",
			entity: Entity{ID: "n1", Name: "User", Kind: KindNode,
				Properties: []Property{{Name: "1bad", Type: hql.TypeString}}},
			index:    0,
			severity: SeverityError,
			contains: "Invalid property name",
		},
		{
			name: "unknown type",
			entity: Entity{ID: "n1", Name: "User", Kind: KindNode,
				Properties: []Property{{Name: "age", Type: "int"}}},
			index:    0,
			severity: SeverityError,
			contains: "Unknown property type",
		},
		{
			name: "reserved node field",
			entity: Entity{ID: "n1", Name: "User", Kind: KindNode,
				Properties: []Property{{Name: "Label", Type: hql.TypeString}}},
			index:    0,
			severity: SeverityError,
			contains: "reserved",
		},
		{
			name: "reserved edge field",
			entity: Entity{ID: "e1", Name: "Follows", Kind: KindEdge, From: "Follows", To: "Follows",
				Properties: []Property{{Name: "to_node", Type: hql.TypeString}}},
			index:    0,
			severity: SeverityError,
			contains: "reserved",
		},
		{
			name: "duplicate",
			entity: Entity{ID: "n1", Name: "User", Kind: KindNode,
				Properties: []Property{
					{Name: "email", Type: hql.TypeString},
					{Name: "Email", Type: hql.TypeString},
				}},
			index:    1,
			severity: SeverityError,
			contains: "Duplicate property name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate([]Entity{tt.entity})
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics, want exactly 1: %+v", len(diags), diags)
			}
			d := diags[0]
			if !strings.Contains(d.Message, tt.contains) {
				t.Fatalf("message %q does not contain %q", d.Message, tt.contains)
			}
			if d.PropertyIndex != tt.index || d.Severity != tt.severity {
				t.Errorf("unexpected diagnostic: %+v", d)
			}
		})
	}
}

func TestValidateOrderStable(t *testing.T) {
	entities := []Entity{
		{ID: "n1", Kind: KindNode},
		{ID: "e1", Name: "Follows", Kind: KindEdge, From: "Ghost",
			Properties: []Property{{Name: "id", Type: hql.TypeID}}},
	}
	first := Validate(entities)
	for i := 0; i < 5; i++ {
		again := Validate(entities)
		if len(again) != len(first) {
			t.Fatal("diagnostic count changed between runs")
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("diagnostic %d changed between runs", j)
			}
		}
	}
	// Entity-level findings come before property findings.
	if first[len(first)-1].PropertyIndex != 0 {
		t.Errorf("property finding not last: %+v", first)
	}
}
