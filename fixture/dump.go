// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"
	"io"
	"iter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paramgrid/param"
)

// Dump writes results to w as a YAML list of mappings. Keys keep their
// binding order. The results are ranged exactly once and each one is written
// before the next is pulled; nothing is buffered across items. An empty
// sequence is written as "[]".
func Dump(w io.Writer, results iter.Seq[param.Result]) error {
	written := 0
	for r := range results {
		item, err := resultNode(r)
		if err != nil {
			return err
		}
		if err = writeItem(w, item); err != nil {
			return err
		}
		written++
	}
	if written == 0 {
		if _, err := io.WriteString(w, "[]\n"); err != nil {
			return fmt.Errorf("fixture: write: %w", err)
		}
	}

	return nil
}

// resultNode converts one combination into an ordered YAML mapping.
func resultNode(r param.Result) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for name, v := range r.All() {
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("fixture: encode %q: %w", name, err)
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}

	return m, nil
}

// writeItem emits one "- ..." list entry. A separate encoder per item keeps
// every entry a top-level list element without document separators.
func writeItem(w io.Writer, item *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: []*yaml.Node{item}}
	if err := enc.Encode(list); err != nil {
		return fmt.Errorf("fixture: write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("fixture: write: %w", err)
	}

	return nil
}
