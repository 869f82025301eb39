package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefaults reads a flat YAML mapping of setting names to default values.
// Scalars are kept as written (42 stays "42"); nested values are rejected.
func LoadDefaults(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	defaults := make(map[string]string)
	if len(doc.Content) == 0 {
		return defaults, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse YAML: expected a mapping at line %d", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parse YAML: non-scalar key at line %d", key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parse YAML: value for %q at line %d is not a scalar", key.Value, value.Line)
		}
		defaults[key.Value] = value.Value
	}

	return defaults, nil
}
