// Package report aggregates a closed ledger into financial statements:
// the profit and loss statement, the balance sheet and the monthly
// sales summary. Statements are trees of captions laid out by
// configuration; each leaf caption aggregates one or more account
// titles.
package report

import (
	"fmt"

	"github.com/bluebooks-dev/bluebooks/internal/chart"
	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// LayoutNode is one row of a statement layout. A node either nests
// children or lists the account names aggregated under its caption,
// never both.
type LayoutNode struct {
	Name     string
	Accounts []string
	Children []*LayoutNode
}

func buildTree[T any](rootName string, layout []*LayoutNode, c *chart.Chart, makeValue func(titles []model.AccountTitle) T) (*model.Node[T], error) {
	root := model.NewNode[T](0, rootName)
	root.Value = makeValue(nil)
	for _, ln := range layout {
		child, err := buildNode(ln, 1, c, makeValue)
		if err != nil {
			return nil, err
		}
		root.Add(child)
	}
	return root, nil
}

func buildNode[T any](ln *LayoutNode, level int, c *chart.Chart, makeValue func(titles []model.AccountTitle) T) (*model.Node[T], error) {
	if len(ln.Accounts) > 0 && len(ln.Children) > 0 {
		return nil, fmt.Errorf("layout node %q lists both accounts and children", ln.Name)
	}
	node := model.NewNode[T](level, ln.Name)
	if len(ln.Accounts) > 0 {
		titles := make([]model.AccountTitle, 0, len(ln.Accounts))
		for _, name := range ln.Accounts {
			t, ok := c.ByName(name)
			if !ok {
				return nil, fmt.Errorf("layout node %q: account %q is not in the chart", ln.Name, name)
			}
			titles = append(titles, t)
		}
		node.Value = makeValue(titles)
		return node, nil
	}
	node.Value = makeValue(nil)
	for _, child := range ln.Children {
		sub, err := buildNode(child, level+1, c, makeValue)
		if err != nil {
			return nil, err
		}
		node.Add(sub)
	}
	return node, nil
}
