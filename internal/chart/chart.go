// Package chart holds the ordered set of account titles the books are
// kept with. Declaration order is what makes synthesized closing entries
// reproducible: every merged line list is sorted by it.
package chart

import (
	"sort"
	"strings"

	"github.com/bluebooks-dev/bluebooks/internal/model"
)

// Entity is the kind of business the books belong to. It decides the
// fiscal period rule, which equity account receives net income, and how
// balances are carried into the next period.
type Entity string

const (
	SoleProprietorship Entity = "sole_proprietorship"
	Corporation        Entity = "corporation"
)

// Solo reports whether the entity is a sole proprietorship.
func (e Entity) Solo() bool {
	return e == SoleProprietorship
}

// Chart provides ordered, in-memory lookup over account titles. The
// built-in settlement accounts are always present, after the configured
// titles.
type Chart struct {
	titles []model.AccountTitle
	order  map[model.TitleKey]int
}

// New creates a Chart from titles in declaration order. Duplicate
// identities keep their first position. The built-in settlement accounts
// are appended if not already present.
func New(titles []model.AccountTitle) *Chart {
	c := &Chart{order: make(map[model.TitleKey]int, len(titles)+4)}
	for _, t := range titles {
		c.add(t)
	}
	for _, t := range model.BuiltinTitles() {
		c.add(t)
	}
	return c
}

func (c *Chart) add(t model.AccountTitle) {
	key := t.Key()
	if _, seen := c.order[key]; seen {
		return
	}
	c.order[key] = len(c.titles)
	c.titles = append(c.titles, t)
}

// All returns all titles in declaration order.
func (c *Chart) All() []model.AccountTitle {
	return c.titles
}

// ByName returns the title with the given display name, ignoring case.
func (c *Chart) ByName(name string) (model.AccountTitle, bool) {
	if name == "" {
		return model.AccountTitle{}, false
	}
	for _, t := range c.titles {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return model.AccountTitle{}, false
}

// Exists reports whether a title with the given display name is defined.
func (c *Chart) Exists(name string) bool {
	_, ok := c.ByName(name)
	return ok
}

// ByType returns all titles of the given type, in declaration order.
func (c *Chart) ByType(accountType model.AccountType) []model.AccountTitle {
	var result []model.AccountTitle
	for _, t := range c.titles {
		if t.Type == accountType {
			result = append(result, t)
		}
	}
	return result
}

// Order returns the declaration index of a title. Unknown titles sort
// after everything else.
func (c *Chart) Order(t model.AccountTitle) int {
	if i, ok := c.order[t.Key()]; ok {
		return i
	}
	return len(c.titles)
}

// SortLines orders lines by declaration order, in place and stably.
func (c *Chart) SortLines(lines []model.Line) {
	sort.SliceStable(lines, func(i, j int) bool {
		return c.Order(lines[i].Title) < c.Order(lines[j].Title)
	})
}
