package hqlgen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nodfans/helixdb-explorer-sub000/hql"
)

// Severity classifies a diagnostic. Errors mark models that would generate
// broken source, warnings mark models that generate but are probably not
// what the author meant, infos mark incomplete modeling state.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is one validation finding, addressed by entity ID and, for
// property-level findings, the index of the property within the entity.
// PropertyIndex is -1 for entity-level findings.
type Diagnostic struct {
	EntityID      string   `yaml:"entity_id"`
	PropertyIndex int      `yaml:"property_index"`
	Severity      Severity `yaml:"severity"`
	Message       string   `yaml:"message"`
	Suggestion    string   `yaml:"suggestion,omitempty"`
}

var (
	entityNameRE   = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)
	propertyNameRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks the model and returns its diagnostics in a deterministic
// order: entities in model order, and per entity the name checks, then the
// edge endpoint checks, then the property checks in property order. A valid
// model returns nil.
func Validate(entities []Entity) []Diagnostic {
	known := make(map[string]bool, len(entities))
	for _, e := range entities {
		if e.Name != "" {
			known[strings.ToLower(e.Name)] = true
		}
	}
	seen := make(map[string]string, len(entities))
	var diags []Diagnostic
	for _, e := range entities {
		diags = append(diags, validateEntity(e, known, seen)...)
	}
	return diags
}

func validateEntity(e Entity, known map[string]bool, seen map[string]string) []Diagnostic {
	var diags []Diagnostic
	report := func(index int, sev Severity, msg, suggestion string) {
		diags = append(diags, Diagnostic{
			EntityID:      e.ID,
			PropertyIndex: index,
			Severity:      sev,
			Message:       msg,
			Suggestion:    suggestion,
		})
	}

	if e.Name == "" {
		report(-1, SeverityError, "Entity name is required", "Give the entity a PascalCase name")
	} else {
		if !entityNameRE.MatchString(e.Name) {
			report(-1, SeverityError,
				fmt.Sprintf("Invalid entity name %q: names start with an uppercase letter and contain only letters, digits, and underscores", e.Name),
				"Rename it to "+PascalCase(e.Name))
		}
		if hql.IsReserved(e.Name) {
			report(-1, SeverityError,
				fmt.Sprintf("Reserved keyword %q cannot be used as an entity name", e.Name),
				"Pick a name outside the language vocabulary")
		}
		lower := strings.ToLower(e.Name)
		if prev, dup := seen[lower]; dup {
			report(-1, SeverityError,
				fmt.Sprintf("Duplicate entity name %q: already used by %q (names are case-insensitive)", e.Name, prev),
				"Rename one of the two entities")
		} else {
			seen[lower] = e.Name
		}
	}

	if e.Kind == KindEdge {
		diags = append(diags, validateEndpoint(e, "From", e.From, known)...)
		diags = append(diags, validateEndpoint(e, "To", e.To, known)...)
	}
	if e.Kind == KindVector && e.VectorDim <= 0 {
		report(-1, SeverityWarning,
			fmt.Sprintf("Vector entity %q has no embedding dimension", e.Name),
			"Set vector_dim to the dimensionality of the embeddings")
	}

	reserved := e.Kind.ReservedFields()
	seenProps := make(map[string]string, len(e.Properties))
	for i, p := range e.Properties {
		if p.Name == "" {
			report(i, SeverityError, "Property name is required", "Give the property a name")
			continue
		}
		if !propertyNameRE.MatchString(p.Name) {
			report(i, SeverityError,
				fmt.Sprintf("Invalid property name %q: names start with a letter and contain only letters, digits, and underscores", p.Name),
				"")
		}
		if !p.Type.Valid() {
			report(i, SeverityError,
				fmt.Sprintf("Unknown property type %q on %q", string(p.Type), p.Name),
				"Use one of the scalar types, for example String or I64")
		}
		for _, r := range reserved {
			if strings.EqualFold(p.Name, r) {
				report(i, SeverityError,
					fmt.Sprintf("Property %q collides with the reserved %s field %q", p.Name, strings.ToLower(string(e.Kind)), r),
					"Rename the property")
				break
			}
		}
		lower := strings.ToLower(p.Name)
		if prev, dup := seenProps[lower]; dup {
			report(i, SeverityError,
				fmt.Sprintf("Duplicate property name %q: already used by %q (names are case-insensitive)", p.Name, prev),
				"Rename one of the two properties")
		} else {
			seenProps[lower] = p.Name
		}
	}
	return diags
}

func validateEndpoint(e Entity, side, target string, known map[string]bool) []Diagnostic {
	if target == "" {
		return []Diagnostic{{
			EntityID:      e.ID,
			PropertyIndex: -1,
			Severity:      SeverityInfo,
			Message:       fmt.Sprintf("Edge %q has no %s endpoint yet; it renders as Undefined", e.Name, side),
			Suggestion:    "Connect the edge to an entity",
		}}
	}
	if !known[strings.ToLower(target)] {
		return []Diagnostic{{
			EntityID:      e.ID,
			PropertyIndex: -1,
			Severity:      SeverityError,
			Message:       fmt.Sprintf("Edge %q references unknown entity %q as its %s endpoint", e.Name, target, side),
			Suggestion:    "Point the endpoint at an entity defined in the model",
		}}
	}
	return nil
}
