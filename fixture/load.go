// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paramgrid/param"
)

// Load decodes a YAML mapping from r into Fixed params in document order.
// An empty document yields no params and no error.
func Load(r io.Reader) ([]param.Param, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("fixture: decode: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w (line %d)", ErrNotMapping, root.Line)
	}

	ps := make([]param.Param, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("%w (line %d)", ErrBadName, key.Line)
		}
		if first, dup := seen[key.Value]; dup {
			return nil, fmt.Errorf("%w: %q at line %d, first defined at line %d",
				ErrDuplicateName, key.Value, key.Line, first)
		}
		seen[key.Value] = key.Line
		values, err := decodeValues(key.Value, val)
		if err != nil {
			return nil, err
		}
		ps = append(ps, param.Values(key.Value, values...))
	}

	return ps, nil
}

// decodeValues turns one mapping value into the candidate list of a param.
func decodeValues(name string, n *yaml.Node) ([]any, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			var v any
			if err := item.Decode(&v); err != nil {
				return nil, fmt.Errorf("fixture: param %q (line %d): %w", name, item.Line, err)
			}
			out = append(out, v)
		}

		return out, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("fixture: param %q (line %d): %w", name, n.Line, err)
		}

		return []any{v}, nil
	default:
		return nil, fmt.Errorf("%w: param %q (line %d)", ErrNotSequence, name, n.Line)
	}
}
