package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLogs(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"a.log", "b.log", "c.log", "d.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		mod := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"c.log", "d.log", "notes.txt"}, names)
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv("RENTDESK_DEBUG", "")
	t.Setenv("RENTDESK_DEBUG_FILE", "")
	path := filepath.Join(t.TempDir(), "nested", "debug.log")

	require.NoError(t, Initialize(Options{File: path, MaxFiles: DefaultMaxLogFiles}))
	Logger.Debug("Chord prefix accepted", Chord('g', ""))
	Logger.Debug("Chord state changed", Transition("idle", "awaiting", 7))
	Logger.Debug("Chord timed out", "timeout", 2*time.Second)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"chord":{"first":"g"}`)
	assert.Contains(t, out, `"transition":{"from":"idle","to":"awaiting","seq":7}`)
	assert.Contains(t, out, `"timeout_ms":2000`)

	require.NoError(t, Initialize(Options{MaxFiles: DefaultMaxLogFiles}))
	assert.False(t, Logger.Enabled(t.Context(), slog.LevelDebug))
}

func TestOptions_WithEnv(t *testing.T) {
	t.Setenv("RENTDESK_DEBUG", "1")
	t.Setenv("RENTDESK_DEBUG_FILE", "/tmp/inherited.log")
	t.Setenv("RENTDESK_MAX_LOG_FILES", "5")

	got := Options{MaxFiles: DefaultMaxLogFiles}.withEnv()
	assert.Equal(t, Options{Debug: true, File: "/tmp/inherited.log", MaxFiles: 5}, got)

	got = Options{File: "own.log", MaxFiles: 20}.withEnv()
	assert.Equal(t, Options{Debug: true, File: "own.log", MaxFiles: 20}, got)
}

func TestChord(t *testing.T) {
	attr := Chord('n', "c")
	assert.Equal(t, "chord", attr.Key)
	group := attr.Value.Group()
	require.Len(t, group, 2)
	assert.True(t, group[0].Equal(slog.String("first", "n")))
	assert.True(t, group[1].Equal(slog.String("second", "c")))

	assert.Len(t, Chord('n', "").Value.Group(), 1)
}
