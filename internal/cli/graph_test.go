package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGraph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunGraph(&out, ""))

	got := out.String()
	assert.Contains(t, got, `todo_State(("todo.State"))`)
	assert.Contains(t, got, `todo_State__Items[["Items"]]`)
	assert.Contains(t, got, `kind_todo_ItemToggled -.-> todo_State__Items`)
	assert.NotContains(t, got, "classDef")
}

func TestRunGraph_WithScript(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunGraph(&out, scriptFile(t, evening)))

	got := out.String()
	assert.Contains(t, got, "class kind_todo_ItemAdded dispatched;")
	assert.Contains(t, got, "class kind_todo_ItemToggled last;")
	assert.NotContains(t, got, "class kind_todo_FilterSet")
}
