package config

import (
	"os"
	"path/filepath"
)

// GetRentdeskHome returns RENTDESK_HOME or the ~/.rentdesk default
func GetRentdeskHome() string {
	home := os.Getenv("RENTDESK_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".rentdesk"
		}
		return filepath.Join(homeDir, ".rentdesk")
	}
	return ExpandPath(home)
}

// GetDBPath returns $RENTDESK_HOME/rentdesk.db
func GetDBPath() string {
	return filepath.Join(GetRentdeskHome(), "rentdesk.db")
}

// GetSettingsPath returns $RENTDESK_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetRentdeskHome(), "settings.json")
}

// GetHostKeyPath returns the SSH host key location used by `serve`
func GetHostKeyPath() string {
	return filepath.Join(GetRentdeskHome(), "ssh", "id_ed25519")
}

// GetAuthorizedKeysPath returns the authorized_keys file used by `serve`
func GetAuthorizedKeysPath() string {
	return filepath.Join(GetRentdeskHome(), "ssh", "authorized_keys")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
