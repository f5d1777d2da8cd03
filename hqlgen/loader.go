package hqlgen

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk model format: the entity list plus the optional
// generation config.
type Document struct {
	Entities []Entity `yaml:"entities"`
	Config   Config   `yaml:"config,omitempty"`
}

// Load parses a model document from r. Entities without an ID get a fresh
// one assigned, so diagnostics can always address them.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	for i := range doc.Entities {
		if doc.Entities[i].ID == "" {
			doc.Entities[i].ID = uuid.NewString()
		}
	}
	return &doc, nil
}

// LoadFile loads a model document from the file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer f.Close()
	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return doc, nil
}
