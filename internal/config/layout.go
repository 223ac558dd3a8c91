package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bluebooks-dev/bluebooks/internal/report"
)

// LayoutItem is one row of a statement layout in the config file. Each
// item is written as a single-key mapping whose value is either a list
// of account names or a nested list of items:
//
//	layout:
//	  - Revenue: [Sales, Interest Income]
//	  - Expenses:
//	      - Rent: [Rent]
//	      - Supplies: [Supplies]
type LayoutItem struct {
	Name     string
	Accounts []string
	Children []LayoutItem
}

func (li *LayoutItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: layout item must be a single-key mapping", node.Line)
	}
	key, value := node.Content[0], node.Content[1]
	li.Name = key.Value

	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: layout item %q must hold a list", value.Line, li.Name)
	}
	// A list of scalars is an account list; anything else nests.
	scalars := true
	for _, item := range value.Content {
		if item.Kind != yaml.ScalarNode {
			scalars = false
			break
		}
	}
	if scalars && len(value.Content) > 0 {
		return value.Decode(&li.Accounts)
	}
	return value.Decode(&li.Children)
}

func (li LayoutItem) MarshalYAML() (interface{}, error) {
	if len(li.Accounts) > 0 {
		return map[string][]string{li.Name: li.Accounts}, nil
	}
	return map[string][]LayoutItem{li.Name: li.Children}, nil
}

func (li LayoutItem) node() *report.LayoutNode {
	n := &report.LayoutNode{Name: li.Name, Accounts: li.Accounts}
	for _, child := range li.Children {
		n.Children = append(n.Children, child.node())
	}
	return n
}
