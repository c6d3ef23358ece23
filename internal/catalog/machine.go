package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category groups machines in the fleet filter.
type Category string

const (
	CategoryBackhoes    Category = "Retroexcavadoras"
	CategoryWaterTrucks Category = "Camiones Aljibe"
	CategoryExcavators  Category = "Excavadoras"
	CategoryLoaders     Category = "Cargadores"
	CategoryImplements  Category = "Implementos"
)

// Categories lists the accepted categories in display order.
var KnownCategories = []Category{
	CategoryBackhoes,
	CategoryWaterTrucks,
	CategoryExcavators,
	CategoryLoaders,
	CategoryImplements,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Machine is one rentable unit of the fleet.
type Machine struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    Category `yaml:"category"`
	Image       string   `yaml:"image"`
	Gallery     []string `yaml:"gallery,omitempty"`
	Capacity    string   `yaml:"capacity"`
	Description string   `yaml:"description"`
	Specs       Specs    `yaml:"specs,omitempty"`
	Features    []string `yaml:"features,omitempty"`
	Fit         string   `yaml:"fit,omitempty"`
}

// Images returns the gallery when present, otherwise the main image alone.
func (m Machine) Images() []string {
	if len(m.Gallery) > 0 {
		out := make([]string, len(m.Gallery))
		copy(out, m.Gallery)
		return out
	}
	if m.Image == "" {
		return nil
	}
	return []string{m.Image}
}

// Spec is one row of the technical specification table.
type Spec struct {
	Label string
	Value string
}

// Specs keeps specification rows in the order they were written in the data file.
type Specs []Spec

// UnmarshalYAML decodes a mapping node while preserving key order.
func (s *Specs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("catalog: specs must be a mapping, got %s", nodeKind(node))
	}
	out := make(Specs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var label, value string
		if err := node.Content[i].Decode(&label); err != nil {
			return fmt.Errorf("catalog: spec label: %w", err)
		}
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("catalog: spec %q: %w", label, err)
		}
		out = append(out, Spec{Label: label, Value: value})
	}
	*s = out
	return nil
}

// MarshalYAML writes the rows back as an ordered mapping.
func (s Specs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, spec := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: spec.Label},
			&yaml.Node{Kind: yaml.ScalarNode, Value: spec.Value},
		)
	}
	return node, nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "mapping"
	}
}
