package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentdesk/rentdesk/test/integration/harness"
)

func TestShortcutsList(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "shortcuts")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "n c")
	harness.AssertStdoutContains(t, result, "create customer")
	harness.AssertStdoutContains(t, result, "g o")
	harness.AssertStdoutContains(t, result, "Quick find: space space")
}

func TestShortcutsListJSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"shortcuts": {"sequence_timeout_ms": 1500, "double_tap_timeout_ms": 250}}`)

	result := harness.RunCommand(t, env, "shortcuts", "list", "--format", "json")

	harness.AssertSuccess(t, result)
	harness.AssertJSONField(t, result, "sequence_timeout_ms", float64(1500))
	harness.AssertJSONField(t, result, "double_tap", "space space (within 250ms)")
}

func TestShortcutsAdd(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	t.Run("adds a navigate chord", func(t *testing.T) {
		result := harness.RunCommand(t, env, "shortcuts", "add", "g x", "/reservations/new")
		harness.AssertSuccess(t, result)

		list := harness.RunCommand(t, env, "shortcuts", "list", "--format", "json")
		harness.AssertSuccess(t, list)
		assert.Equal(t, "go to /reservations/new", harness.AssertChord(t, list, "g x", "custom"))
		assert.Equal(t, "open overdue", harness.AssertChord(t, list, "g o", "built-in"))
	})

	t.Run("rejects a chord on a view key", func(t *testing.T) {
		result := harness.RunCommand(t, env, "shortcuts", "add", "x r", "/rentals")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "reserved")
	})

	t.Run("rejects a built-in collision", func(t *testing.T) {
		result := harness.RunCommand(t, env, "shortcuts", "add", "g c", "/items")
		harness.AssertFailure(t, result)
	})

	t.Run("rejects an unknown route", func(t *testing.T) {
		result := harness.RunCommand(t, env, "shortcuts", "add", "g y", "/garage")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "unknown route")
	})
}
