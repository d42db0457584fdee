package ui

import (
	"fmt"

	"github.com/rentdesk/rentdesk/internal/theme"
)

// VersionInfo holds build information shown in headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo is used when no build information was injected
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "rentals at the speed of two keys",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// GetVersionInfo returns the global version info
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// renderHeader renders the app name, the tagline and an optional subtitle.
// In dev mode the build information follows the name.
func renderHeader(devMode bool, subtitle string) string {
	line := theme.AppNameStyle.Render("rentdesk")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version, commit, versionInfo.Date, versionInfo.GoVersion))
	}

	result := line + "\n" + theme.TaglineStyle.Render(versionInfo.Tagline)
	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return result + "\n"
}
