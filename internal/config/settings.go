package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rentdesk/rentdesk/internal/shortcut"
)

// Defaults for settings that are not shortcut timings
const (
	DefaultErrorClearDelay = 10
	DefaultDailyLateFee    = 500 // cents
)

// DefaultDoubleTapKey is the terminal double-tap key. Terminals never
// report a bare Shift press, so space stands in for it.
const DefaultDoubleTapKey = shortcut.KeySpace

// ViewKeys are the single keys the dashboard views handle themselves.
// No configured chord may start with one and none may be the double-tap
// key.
var ViewKeys = []string{"q", "x", "j", "k", "/", "?"}

// ChordsConfig maps a two-key sequence ("g x") to a route ("/reservations")
type ChordsConfig map[string]string

// ShortcutSettings holds the chord dispatcher configuration
type ShortcutSettings struct {
	Chords             ChordsConfig `json:"chords,omitempty"`
	DoubleTapKey       string       `json:"double_tap_key,omitempty"`
	DoubleTapTimeoutMs *int         `json:"double_tap_timeout_ms,omitempty"`
	SequenceTimeoutMs  *int         `json:"sequence_timeout_ms,omitempty"`
}

// DispatcherConfig resolves the settings into a dispatcher configuration
func (s *ShortcutSettings) DispatcherConfig() shortcut.Config {
	cfg := shortcut.DefaultConfig()
	cfg.DoubleTapKey = DefaultDoubleTapKey
	cfg.ReservedKeys = ViewKeys
	if s == nil {
		return cfg
	}
	if s.DoubleTapKey != "" {
		cfg.DoubleTapKey = shortcut.NormalizeKey(s.DoubleTapKey)
	}
	if s.DoubleTapTimeoutMs != nil && *s.DoubleTapTimeoutMs > 0 {
		cfg.DoubleTapTimeout = time.Duration(*s.DoubleTapTimeoutMs) * time.Millisecond
	}
	if s.SequenceTimeoutMs != nil && *s.SequenceTimeoutMs > 0 {
		cfg.SequenceTimeout = time.Duration(*s.SequenceTimeoutMs) * time.Millisecond
	}
	return cfg
}

// Registry builds the chord table: built-ins plus the configured chords
func (s *ShortcutSettings) Registry() (*shortcut.Registry, error) {
	if s == nil {
		return shortcut.BuildRegistry(nil)
	}
	return shortcut.BuildRegistry(s.Chords)
}

// Validate checks for configuration errors in the shortcut settings
func (s *ShortcutSettings) Validate() error {
	if s == nil {
		return nil
	}
	if s.DoubleTapTimeoutMs != nil && *s.DoubleTapTimeoutMs < 0 {
		return fmt.Errorf("double_tap_timeout_ms must not be negative")
	}
	if s.SequenceTimeoutMs != nil && *s.SequenceTimeoutMs < 0 {
		return fmt.Errorf("sequence_timeout_ms must not be negative")
	}
	registry, err := s.Registry()
	if err != nil {
		return fmt.Errorf("invalid chords: %w", err)
	}
	cfg := s.DispatcherConfig()
	if err := cfg.CheckKeys(registry); err != nil {
		return fmt.Errorf("invalid keys: %w", err)
	}
	return nil
}

// Settings represents the structure of $RENTDESK_HOME/settings.json
type Settings struct {
	DBPath          string            `json:"db_path,omitempty"`
	DailyLateFee    *int64            `json:"daily_late_fee,omitempty"`
	Debug           *bool             `json:"debug,omitempty"`
	ErrorClearDelay *int              `json:"error_clear_delay,omitempty"`
	MaxLogFiles     *int              `json:"max_log_files,omitempty"`
	Operators       StringArray       `json:"operators,omitempty"`
	Shortcuts       *ShortcutSettings `json:"shortcuts,omitempty"`
}

// Validate checks every section of the settings
func (s *Settings) Validate() error {
	if s.ErrorClearDelay != nil && *s.ErrorClearDelay < 0 {
		return fmt.Errorf("error_clear_delay must not be negative")
	}
	if s.DailyLateFee != nil && *s.DailyLateFee < 0 {
		return fmt.Errorf("daily_late_fee must not be negative")
	}
	if err := s.Shortcuts.Validate(); err != nil {
		return fmt.Errorf("shortcuts: %w", err)
	}
	return nil
}

// LateFee returns the configured late fee per overdue day, in cents
func (s *Settings) LateFee() int64 {
	if s.DailyLateFee == nil {
		return DefaultDailyLateFee
	}
	return *s.DailyLateFee
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $RENTDESK_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads and validates the settings file at path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $RENTDESK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
