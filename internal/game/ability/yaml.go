package ability

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// definition is the YAML shape of an ability:
//
//	- lethal_hits
//	- {kind: sustained_hits, value: 2}
//	- {kind: anti, keyword: vehicle, condition: "4+"}
type definition struct {
	Kind      string `yaml:"kind"`
	Value     int    `yaml:"value,omitempty"`
	Condition string `yaml:"condition,omitempty"`
	Keyword   string `yaml:"keyword,omitempty"`
}

// UnmarshalYAML decodes either a bare kind name or a mapping, rejecting
// unknown kinds, unknown fields, and malformed payloads.
func (a *Ability) UnmarshalYAML(node *yaml.Node) error {
	var def definition
	switch node.Kind {
	case yaml.ScalarNode:
		def.Kind = node.Value
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			switch key := node.Content[i].Value; key {
			case "kind", "value", "condition", "keyword":
			default:
				return fmt.Errorf("ability: line %d: unknown field %q", node.Content[i].Line, key)
			}
		}
		if err := node.Decode(&def); err != nil {
			return fmt.Errorf("ability: line %d: %w", node.Line, err)
		}
	default:
		return fmt.Errorf("ability: line %d: expected a kind name or mapping", node.Line)
	}

	kind, err := ParseKind(def.Kind)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	built, err := New(kind, def.Value, def.Condition, def.Keyword)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = built
	return nil
}

// MarshalYAML encodes the ability in the mapping form accepted by UnmarshalYAML.
func (a Ability) MarshalYAML() (interface{}, error) {
	def := definition{Kind: a.kind.String()}
	switch a.kind {
	case SustainedHitsKind, MeltaKind:
		def.Value = a.value
	case AntiKind:
		def.Keyword = a.keyword
		def.Condition = fmt.Sprintf("%d+", a.threshold)
	default:
		return def.Kind, nil
	}
	return def, nil
}
