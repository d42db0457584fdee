package harness

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccess fails the test unless the command exited 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "rentdesk exited %d\nstdout: %s\nstderr: %s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertFailure fails the test if the command exited 0.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "rentdesk succeeded unexpectedly\nstdout: %s", result.Stdout)
}

// AssertStdoutContains checks stdout for a fragment.
func AssertStdoutContains(tb testing.TB, result CommandResult, fragment string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, fragment, "stdout: %s", result.Stdout)
}

// AssertStderrContains checks stderr for a fragment.
func AssertStderrContains(tb testing.TB, result CommandResult, fragment string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, fragment, "stderr: %s", result.Stderr)
}

// AssertValidJSON decodes stdout into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), "stdout: %s", result.Stdout)
}

// AssertJSONField decodes stdout as an object and compares one top-level
// field. Numbers decode as float64.
func AssertJSONField(tb testing.TB, result CommandResult, field string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[field], "field %q", field)
}

// ChordListing is the JSON shape of `shortcuts list --format json`.
type ChordListing struct {
	Chords []struct {
		Description string `json:"description"`
		Sequence    string `json:"sequence"`
		Source      string `json:"source"`
	} `json:"chords"`
	DoubleTap         string `json:"double_tap"`
	SequenceTimeoutMs int64  `json:"sequence_timeout_ms"`
}

// AssertChord looks sequence up in a JSON chord listing, checks where it
// comes from and returns its description.
func AssertChord(tb testing.TB, result CommandResult, sequence, source string) string {
	tb.Helper()
	var listing ChordListing
	AssertValidJSON(tb, result, &listing)
	for _, c := range listing.Chords {
		if c.Sequence == sequence {
			assert.Equal(tb, source, c.Source, "source of chord %q", sequence)
			return c.Description
		}
	}
	tb.Errorf("chord %q not listed\nstdout: %s", sequence, result.Stdout)
	return ""
}

// AssertTableRow checks that one stdout line holds every cell, in order.
func AssertTableRow(tb testing.TB, result CommandResult, cells ...string) {
	tb.Helper()
	for _, line := range strings.Split(result.Stdout, "\n") {
		if containsInOrder(line, cells) {
			return
		}
	}
	tb.Errorf("no row with %q\nstdout: %s", cells, result.Stdout)
}

// AssertDatabaseAt checks that a command created its database at path.
func AssertDatabaseAt(tb testing.TB, path string) {
	tb.Helper()
	info, err := os.Stat(path)
	require.NoError(tb, err, "database not created at %s", path)
	assert.NotZero(tb, info.Size(), "database at %s is empty", path)
}

func containsInOrder(line string, cells []string) bool {
	rest := line
	for _, cell := range cells {
		i := strings.Index(rest, cell)
		if i < 0 {
			return false
		}
		rest = rest[i+len(cell):]
	}
	return true
}
