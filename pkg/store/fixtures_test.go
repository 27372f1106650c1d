package store

import (
	"slices"

	"github.com/aretw0/reducto/pkg/reducer"
)

type itemAdded struct {
	Item string
}

type someAction struct{}

type loginInfo struct {
	Username string
}

type topicSet struct{ Topic string }

type filterVisibility struct{ Visible bool }

type appState struct {
	Topic   string
	Visible bool
}

func newListReducer(counter *int) *reducer.SimpleReducer[[]string] {
	r := reducer.NewSimple(reducer.WithInitializer(func() []string { return []string{"seed"} }))
	reducer.MustWhen(r, func(s []string, a itemAdded) []string {
		return append(slices.Clone(s), a.Item)
	})
	reducer.MustWhen(r, func(s []string, _ someAction) []string {
		if counter != nil {
			*counter++
		}
		return s
	})
	return r
}

func newAppReducer() *reducer.CompositeReducer[appState] {
	c := reducer.NewComposite(reducer.WithInitializer(func() appState { return appState{Topic: "react"} }))
	reducer.MustPart(c, reducer.MustStructField[appState, string]("Topic"),
		reducer.MustWhen(reducer.NewSimple(reducer.WithInitializer(func() string { return "react" })),
			func(_ string, a topicSet) string { return a.Topic }))
	reducer.MustPart(c, reducer.MustStructField[appState, bool]("Visible"),
		reducer.MustWhen(reducer.NewSimple[bool](), func(_ bool, a filterVisibility) bool { return a.Visible }))
	return c
}
