// Package todo is the demo model driven by the reducto CLI.
// It combines simple and composite reducers over a small todo list.
package todo

import (
	"slices"

	"github.com/aretw0/reducto/pkg/actions"
	"github.com/aretw0/reducto/pkg/reducer"
)

// Filter selects which items are visible.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterActive Filter = "active"
	FilterDone   Filter = "done"
)

// Item is one entry of the list.
type Item struct {
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}

// State is the whole application state.
type State struct {
	Title  string `json:"title" yaml:"title"`
	Items  []Item `json:"items" yaml:"items"`
	Filter Filter `json:"filter" yaml:"filter"`
}

// Visible returns the items matching the current filter.
func (s State) Visible() []Item {
	switch s.Filter {
	case FilterActive:
		return slices.DeleteFunc(slices.Clone(s.Items), func(i Item) bool { return i.Done })
	case FilterDone:
		return slices.DeleteFunc(slices.Clone(s.Items), func(i Item) bool { return !i.Done })
	default:
		return s.Items
	}
}

type TitleSet struct {
	Title string `mapstructure:"title"`
}

type ItemAdded struct {
	Text string `mapstructure:"text"`
}

type ItemToggled struct {
	Index int `mapstructure:"index"`
}

type ItemRemoved struct {
	Index int `mapstructure:"index"`
}

type CompletedCleared struct{}

type FilterSet struct {
	Filter Filter `mapstructure:"filter"`
}

// NewRegistry names every todo action for scripts.
func NewRegistry() *actions.Registry {
	reg := actions.NewRegistry()
	actions.MustRegister[TitleSet](reg, "title_set")
	actions.MustRegister[ItemAdded](reg, "item_added")
	actions.MustRegister[ItemToggled](reg, "item_toggled")
	actions.MustRegister[ItemRemoved](reg, "item_removed")
	actions.MustRegister[CompletedCleared](reg, "completed_cleared")
	actions.MustRegister[FilterSet](reg, "filter_set")
	return reg
}

// NewReducer builds the root reducer of the demo.
func NewReducer() *reducer.CompositeReducer[State] {
	title := reducer.NewSimple(reducer.WithInitializer(func() string { return "Todo" }))
	reducer.MustWhen(title, func(_ string, a TitleSet) string { return a.Title })

	items := reducer.NewSimple[[]Item]()
	reducer.MustWhen(items, func(s []Item, a ItemAdded) []Item {
		return append(slices.Clone(s), Item{Text: a.Text})
	})
	reducer.MustWhen(items, func(s []Item, a ItemToggled) []Item {
		if a.Index < 0 || a.Index >= len(s) {
			return s
		}
		next := slices.Clone(s)
		next[a.Index].Done = !next[a.Index].Done
		return next
	})
	reducer.MustWhen(items, func(s []Item, a ItemRemoved) []Item {
		if a.Index < 0 || a.Index >= len(s) {
			return s
		}
		return slices.Delete(slices.Clone(s), a.Index, a.Index+1)
	})
	reducer.MustWhen(items, func(s []Item, _ CompletedCleared) []Item {
		return slices.DeleteFunc(slices.Clone(s), func(i Item) bool { return i.Done })
	})

	filter := reducer.NewSimple(reducer.WithInitializer(func() Filter { return FilterAll }))
	reducer.MustWhen(filter, func(s Filter, a FilterSet) Filter {
		switch a.Filter {
		case FilterAll, FilterActive, FilterDone:
			return a.Filter
		default:
			return s
		}
	})

	root := reducer.NewComposite[State]()
	reducer.MustPart(root, reducer.MustStructField[State, string]("Title"), title)
	reducer.MustPart(root, reducer.MustStructField[State, []Item]("Items"), items)
	reducer.MustPart(root, reducer.MustStructField[State, Filter]("Filter"), filter)
	return root
}
