package treefmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// minAliasBudget keeps small documents with a few aliases unaffected.
	minAliasBudget = 10000
	// aliasRatio bounds the rendered nodes relative to the parsed ones.
	aliasRatio = 10
)

// DecodeYAML reads the first YAML document from r and returns it as a tree
// rooted at a node labeled title. JSON input is accepted as well. Mapping
// order is preserved.
//
// Aliases are expanded in place. An alias pointing back at one of its own
// ancestors is drawn as a leaf "*anchor". Documents whose expansion
// outgrows the input by far fail with [ErrAliasExpansion]. Multi-line
// scalars are split into one child per line.
func DecodeYAML(r io.Reader, title string) (*Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, err
	}
	content := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		content = doc.Content[0]
	}

	w := &yamlWalker{
		path:   make(map[*yaml.Node]bool),
		budget: max(minAliasBudget, aliasRatio*countYAML(content)),
	}
	root := NewNode(title)
	if err := w.appendYAML(root, content); err != nil {
		return nil, err
	}
	return root, nil
}

type yamlWalker struct {
	// path holds the collections being expanded above the current node.
	path   map[*yaml.Node]bool
	budget int
}

func (w *yamlWalker) add(parent *Node, label string) error {
	w.budget--
	if w.budget < 0 {
		return ErrAliasExpansion
	}
	parent.Add(label)
	return nil
}

func (w *yamlWalker) addParent(parent *Node, label string) (*Node, error) {
	if err := w.add(parent, label); err != nil {
		return nil, err
	}
	return parent.Children[len(parent.Children)-1], nil
}

func (w *yamlWalker) appendYAML(parent *Node, v *yaml.Node) error {
	w.path[v] = true
	defer delete(w.path, v)

	switch v.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(v.Content); i += 2 {
			if err := w.appendEntry(parent, v.Content[i].Value, v.Content[i+1]); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, item := range v.Content {
			target, ref := w.resolve(item)
			switch {
			case ref != "":
				if err := w.add(parent, ref); err != nil {
					return err
				}
			case target.Kind == yaml.ScalarNode && !strings.Contains(target.Value, "\n"):
				if err := w.add(parent, target.Value); err != nil {
					return err
				}
			default:
				if err := w.appendEntry(parent, fmt.Sprintf("[%d]", i), target); err != nil {
					return err
				}
			}
		}
	case yaml.ScalarNode:
		return w.appendLines(parent, v.Value)
	}
	return nil
}

func (w *yamlWalker) appendEntry(parent *Node, key string, v *yaml.Node) error {
	v, ref := w.resolve(v)
	switch {
	case ref != "":
		return w.add(parent, key+": "+ref)
	case v.Kind == yaml.ScalarNode && !strings.Contains(v.Value, "\n"):
		return w.add(parent, key+": "+v.Value)
	case v.Kind == yaml.MappingNode && len(v.Content) == 0:
		return w.add(parent, key+": {}")
	case v.Kind == yaml.SequenceNode && len(v.Content) == 0:
		return w.add(parent, key+": []")
	}
	child, err := w.addParent(parent, key)
	if err != nil {
		return err
	}
	return w.appendYAML(child, v)
}

// appendLines adds one child per line of a scalar, dropping the trailing
// newline block scalars carry.
func (w *yamlWalker) appendLines(parent *Node, value string) error {
	for line := range strings.SplitSeq(strings.TrimSuffix(value, "\n"), "\n") {
		if err := w.add(parent, line); err != nil {
			return err
		}
	}
	return nil
}

// resolve follows aliases. When the target is already being expanded it
// returns the reference label instead.
func (w *yamlWalker) resolve(v *yaml.Node) (*yaml.Node, string) {
	for v.Kind == yaml.AliasNode && v.Alias != nil {
		if w.path[v.Alias] {
			return nil, "*" + v.Value
		}
		v = v.Alias
	}
	return v, ""
}

// countYAML counts the parsed nodes of v without following aliases.
func countYAML(v *yaml.Node) int {
	n := 1
	for _, c := range v.Content {
		n += countYAML(c)
	}
	return n
}
