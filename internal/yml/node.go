package yml

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Node adds traversal helpers to yaml.Node.
type Node yaml.Node

// Root returns the first content node of a document, or n itself.
func (n *Node) Root() *Node {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return (*Node)(n.Content[0])
	}
	return n
}

// Lookup returns the value of key in a mapping node, matched case
// insensitively, or nil.
func (n *Node) Lookup(key string) *Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if strings.EqualFold(n.Content[i].Value, key) {
			return (*Node)(n.Content[i+1])
		}
	}
	return nil
}

// Items calls callback for every element of a sequence node.
func (n *Node) Items(callback func(index int, node *Node) error) error {
	for i, item := range n.Content {
		if err := callback(i, (*Node)(item)); err != nil {
			return err
		}
	}
	return nil
}

// Pairs calls callback for every key/value of a mapping node.
func (n *Node) Pairs(callback func(key string, node *Node) error) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := callback(n.Content[i].Value, (*Node)(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// IsScalar reports whether n is a scalar node.
func (n *Node) IsScalar() bool { return n.Kind == yaml.ScalarNode }

// IsMapping reports whether n is a mapping node.
func (n *Node) IsMapping() bool { return n.Kind == yaml.MappingNode }

// IsSequence reports whether n is a sequence node.
func (n *Node) IsSequence() bool { return n.Kind == yaml.SequenceNode }

// Position returns the line:column of n for error messages.
func (n *Node) Position() string {
	return fmt.Sprintf("%d:%d", n.Line, n.Column)
}

// String returns the scalar value of n.
func (n *Node) String() (string, error) {
	if !n.IsScalar() {
		return "", fmt.Errorf("%s: expected scalar", n.Position())
	}
	return n.Value, nil
}

// Bool parses a scalar boolean.
func (n *Node) Bool() (bool, error) {
	if !n.IsScalar() {
		return false, fmt.Errorf("%s: expected boolean", n.Position())
	}
	ret, err := strconv.ParseBool(n.Value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", n.Position(), n.Value)
	}
	return ret, nil
}

// Duration parses a scalar duration such as "250ms" or "1.5s". Bare numbers
// are read as seconds.
func (n *Node) Duration() (time.Duration, error) {
	if !n.IsScalar() {
		return 0, fmt.Errorf("%s: expected duration", n.Position())
	}
	if seconds, err := strconv.ParseFloat(n.Value, 64); err == nil {
		return time.Duration(seconds * float64(time.Second)), nil
	}
	ret, err := time.ParseDuration(n.Value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", n.Position(), n.Value)
	}
	return ret, nil
}

// Interface converts n into plain Go values.
func (n *Node) Interface() interface{} {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!bool":
			ret, _ := strconv.ParseBool(n.Value)
			return ret
		case "!!null":
			return nil
		case "!!float":
			ret, _ := strconv.ParseFloat(n.Value, 64)
			return ret
		case "!!int":
			ret, _ := strconv.Atoi(n.Value)
			return ret
		default:
			return n.Value
		}
	case yaml.MappingNode:
		aMap := make(map[string]interface{})
		_ = n.Pairs(func(key string, value *Node) error {
			aMap[key] = value.Interface()
			return nil
		})
		return aMap
	case yaml.SequenceNode:
		aSlice := make([]interface{}, 0, len(n.Content))
		for _, item := range n.Content {
			aSlice = append(aSlice, (*Node)(item).Interface())
		}
		return aSlice
	}
	return nil
}
