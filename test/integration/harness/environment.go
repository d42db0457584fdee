package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own RENTDESK_HOME.
type TestEnvironment struct {
	RentdeskHome string
	extraEnv     map[string]string
	tb           testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp RENTDESK_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		RentdeskHome: tb.TempDir(),
		extraEnv:     make(map[string]string),
		tb:           tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out RENTDESK_* variables and sets:
//   - RENTDESK_HOME to the temp directory
//   - RENTDESK_DEBUG to empty string (disables debug logging)
//   - RENTDESK_OPERATOR to "desk"
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "RENTDESK_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"RENTDESK_HOME="+e.RentdeskHome,
		"RENTDESK_DEBUG=",
		"RENTDESK_OPERATOR=desk",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.RentdeskHome, "rentdesk.db")
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.RentdeskHome, "settings.json")
}

// WriteSettings writes settings.json into the environment.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
