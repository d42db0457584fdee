package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentdesk/rentdesk/internal/shortcut"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettingsFrom_Missing(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
	assert.Equal(t, int64(DefaultDailyLateFee), s.LateFee())
}

func TestLoadSettingsFrom_Shortcuts(t *testing.T) {
	path := writeSettings(t, `{
		"operators": "ana, rui",
		"daily_late_fee": 250,
		"shortcuts": {
			"sequence_timeout_ms": 1500,
			"double_tap_key": "Z",
			"chords": {"g x": "/reservations/new"}
		}
	}`)

	s, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, StringArray{"ana", "rui"}, s.Operators)
	assert.Equal(t, int64(250), s.LateFee())

	cfg := s.Shortcuts.DispatcherConfig()
	assert.Equal(t, 1500*time.Millisecond, cfg.SequenceTimeout)
	assert.Equal(t, shortcut.DefaultDoubleTapTimeout, cfg.DoubleTapTimeout)
	assert.Equal(t, "z", cfg.DoubleTapKey)

	reg, err := s.Shortcuts.Registry()
	require.NoError(t, err)
	entry, ok := reg.LookupSecond('g', "x")
	require.True(t, ok)
	assert.Equal(t, "go to /reservations/new", entry.Description)
}

func TestLoadSettingsFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed json",
			content: `{`,
			wantErr: "invalid settings.json",
		},
		{
			name:    "chord collides with built-in",
			content: `{"shortcuts": {"chords": {"g o": "/items"}}}`,
			wantErr: "duplicate chord",
		},
		{
			name:    "unknown route",
			content: `{"shortcuts": {"chords": {"g x": "/nowhere"}}}`,
			wantErr: "unknown route",
		},
		{
			name:    "double tap key is a prefix",
			content: `{"shortcuts": {"double_tap_key": "g"}}`,
			wantErr: "double-tap key is also a chord prefix",
		},
		{
			name:    "chord starts with a view key",
			content: `{"shortcuts": {"chords": {"x r": "/rentals"}}}`,
			wantErr: "key is reserved by the host",
		},
		{
			name:    "double tap key is a view key",
			content: `{"shortcuts": {"double_tap_key": "q"}}`,
			wantErr: "double-tap key \"q\"",
		},
		{
			name:    "negative timeout",
			content: `{"shortcuts": {"sequence_timeout_ms": -1}}`,
			wantErr: "sequence_timeout_ms",
		},
		{
			name:    "negative late fee",
			content: `{"daily_late_fee": -5}`,
			wantErr: "daily_late_fee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettingsFrom(writeSettings(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShortcutSettings_ViewKeys(t *testing.T) {
	for _, seq := range []string{"q d", "x r", "j c", "/ a", "? a"} {
		s := &ShortcutSettings{Chords: ChordsConfig{seq: "/"}}
		assert.ErrorIs(t, s.Validate(), shortcut.ErrReservedKey, seq)
	}

	for _, key := range ViewKeys {
		s := &ShortcutSettings{DoubleTapKey: key}
		assert.ErrorIs(t, s.Validate(), shortcut.ErrReservedKey, key)
	}

	s := &ShortcutSettings{DoubleTapKey: "z", Chords: ChordsConfig{"z d": "/"}}
	assert.ErrorIs(t, s.Validate(), shortcut.ErrDoubleTapConflict)

	s = &ShortcutSettings{Chords: ChordsConfig{"v d": "/"}}
	assert.NoError(t, s.Validate())
}

func TestShortcutSettings_NilDefaults(t *testing.T) {
	var s *ShortcutSettings

	cfg := s.DispatcherConfig()
	assert.Equal(t, shortcut.KeySpace, cfg.DoubleTapKey)
	assert.Equal(t, shortcut.DefaultSequenceTimeout, cfg.SequenceTimeout)

	reg, err := s.Registry()
	require.NoError(t, err)
	assert.Equal(t, len(shortcut.DefaultEntries()), reg.Len())
	assert.NoError(t, s.Validate())
}

func TestSaveSettings_RoundTripsThroughHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RENTDESK_HOME", home)

	debug := true
	require.NoError(t, SaveSettings(&Settings{Debug: &debug, Operators: StringArray{"ana"}}))

	s, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, s.Debug)
	assert.True(t, *s.Debug)
	assert.Equal(t, filepath.Join(home, "rentdesk.db"), GetDBPath())
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	shortcuts, ok := example["shortcuts"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2000, shortcuts["sequence_timeout_ms"])
	assert.Equal(t, DefaultDoubleTapKey, shortcuts["double_tap_key"])

	// the example must itself be a loadable settings file
	data, err := json.Marshal(example)
	require.NoError(t, err)
	_, err = LoadSettingsFrom(writeSettings(t, string(data)))
	assert.NoError(t, err)
}
