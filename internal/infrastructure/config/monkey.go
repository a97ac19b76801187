package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseMonkey parses the compact form "x,y;direction;d1,d2,...".
// The route part may be omitted.
func ParseMonkey(s string) (MonkeyConfig, error) {
	parts := strings.Split(strings.TrimSpace(s), ";")
	if len(parts) < 2 || len(parts) > 3 {
		return MonkeyConfig{}, fmt.Errorf("monkey %q: want \"x,y;direction;route\"", s)
	}

	coords := strings.Split(parts[0], ",")
	if len(coords) != 2 {
		return MonkeyConfig{}, fmt.Errorf("monkey %q: bad position", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return MonkeyConfig{}, fmt.Errorf("monkey %q: x: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return MonkeyConfig{}, fmt.Errorf("monkey %q: y: %w", s, err)
	}

	m := MonkeyConfig{X: x, Y: y, Direction: strings.ToLower(strings.TrimSpace(parts[1]))}
	if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
		for _, leg := range strings.Split(parts[2], ",") {
			d, err := strconv.ParseFloat(strings.TrimSpace(leg), 64)
			if err != nil {
				return MonkeyConfig{}, fmt.Errorf("monkey %q: route: %w", s, err)
			}
			m.Route = append(m.Route, d)
		}
	}
	return m, nil
}

// UnmarshalYAML accepts either a mapping or the compact string form.
func (m *MonkeyConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		parsed, err := ParseMonkey(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*m = parsed
		return nil
	}

	type plain MonkeyConfig
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*m = MonkeyConfig(p)
	m.Direction = strings.ToLower(m.Direction)
	return nil
}
