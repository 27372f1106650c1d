package script

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/aretw0/reducto/internal/logging"
	"github.com/aretw0/reducto/pkg/actions"
	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/middleware"
	"github.com/aretw0/reducto/pkg/reducer"
	"github.com/aretw0/reducto/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemAdded struct {
	Item string
}

type cleared struct{}

type unregistered struct{}

const choresYAML = `
name: chores
steps:
  - action: item_added
    payload:
      item: buy milk
  - action: item_added
    payload:
      item: walk dog
  - action: cleared
  - action: item_added
    payload:
      item: sleep
`

func newFixtures(t *testing.T) (*actions.Registry, *store.Store[[]string]) {
	t.Helper()

	reg := actions.NewRegistry()
	actions.MustRegister[itemAdded](reg, "item_added")
	actions.MustRegister[cleared](reg, "cleared")

	r := reducer.NewSimple(reducer.WithInitializer(func() []string { return []string{"seed"} }))
	reducer.MustWhen(r, func(s []string, a itemAdded) []string { return append(slices.Clone(s), a.Item) })
	reducer.MustWhen(r, func([]string, cleared) []string { return nil })
	return reg, store.New[[]string](r)
}

func TestParseAndReplay(t *testing.T) {
	reg, st := newFixtures(t)

	s, err := Parse([]byte(choresYAML))
	require.NoError(t, err)
	assert.Equal(t, "chores", s.Name)
	require.Len(t, s.Steps, 4)

	n, err := Replay(st, reg, s)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []string{"sleep"}, st.GetState())
}

func TestReplay_BrokenStepDispatchesNothing(t *testing.T) {
	reg, st := newFixtures(t)
	s := &Script{Steps: []Step{
		{Action: "item_added", Payload: map[string]any{"item": "a"}},
		{Action: "missing"},
	}}

	n, err := Replay(st, reg, s)
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.ErrorContains(t, err, "step 2")
	assert.Zero(t, n)
	assert.Equal(t, []string{"seed"}, st.GetState())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "chores.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(choresYAML), 0o644))

	jsonPath := filepath.Join(dir, "chores.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"json","steps":[{"action":"cleared"}]}`), 0o644))

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("steps: [unclosed"), 0o644))

	s, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 4)

	s, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "json", s.Name)
	assert.Equal(t, []Step{{Action: "cleared"}}, s.Steps)

	_, err = Load(badPath)
	assert.ErrorContains(t, err, "bad.yaml")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecorder_RoundTrip(t *testing.T) {
	reg, st := newFixtures(t)
	recorded := &Script{Name: "recorded"}
	st.Middleware(Recorder[[]string](reg, recorded, logging.NewNop()))

	st.Dispatch(itemAdded{Item: "a"})
	st.Dispatch(unregistered{})
	st.Dispatch(cleared{})
	st.Dispatch(itemAdded{Item: "b"})

	require.Len(t, recorded.Steps, 3)
	assert.Equal(t, Step{Action: "item_added", Payload: map[string]any{"Item": "a"}}, recorded.Steps[0])
	assert.Equal(t, Step{Action: "cleared"}, recorded.Steps[1])

	data, err := recorded.Marshal()
	require.NoError(t, err)
	parsed, err := Parse(data)
	require.NoError(t, err)

	_, replayed := newFixtures(t)
	_, err = Replay(replayed, reg, parsed)
	require.NoError(t, err)
	assert.Equal(t, st.GetState(), replayed.GetState())
}

type exploded struct{}

func TestRecorder_SkipsUncommittedActions(t *testing.T) {
	reg, _ := newFixtures(t)
	actions.MustRegister[exploded](reg, "exploded")

	r := reducer.NewSimple[[]string]()
	reducer.MustWhen(r, func(s []string, a itemAdded) []string { return append(slices.Clone(s), a.Item) })
	reducer.MustWhen(r, func([]string, exploded) []string { panic("reducer exploded") })
	st := store.New[[]string](r)

	recorded := &Script{}
	st.Middleware(
		Recorder[[]string](reg, recorded, logging.NewNop()),
		middleware.Filter(func(_ []string, a domain.Action) bool {
			_, isCleared := a.(cleared)
			return !isCleared
		}),
	)

	st.Dispatch(itemAdded{Item: "a"})
	st.Dispatch(cleared{})
	assert.Panics(t, func() { st.Dispatch(exploded{}) })
	st.Dispatch(itemAdded{Item: "b"})

	require.Len(t, recorded.Steps, 2)
	assert.Equal(t, "item_added", recorded.Steps[0].Action)
	assert.Equal(t, map[string]any{"Item": "b"}, recorded.Steps[1].Payload)
}

func TestRecord_UnknownKind(t *testing.T) {
	reg, _ := newFixtures(t)
	s := &Script{}
	assert.ErrorIs(t, s.Record(reg, unregistered{}), domain.ErrUnknownAction)
}
