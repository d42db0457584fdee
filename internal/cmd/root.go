package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/shortcut"
	"github.com/rentdesk/rentdesk/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	DBPath      string           `help:"Path of the rentdesk database" name:"db" env:"RENTDESK_DB_PATH"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run          RunCmd          `cmd:"" help:"Start the rentdesk dashboard (default)" default:"1"`
	Serve        ServeCmd        `cmd:"serve" help:"Serve the dashboard over SSH"`
	Shortcuts    ShortcutsCmd    `cmd:"shortcuts" help:"List or add keyboard chords"`
	Customers    CustomersCmd    `cmd:"customers" help:"Manage customers (list, add)"`
	Items        ItemsCmd        `cmd:"items" help:"Manage the item catalogue (list, add)"`
	Rentals      RentalsCmd      `cmd:"rentals" help:"Manage rentals (list, add, return)"`
	Reservations ReservationsCmd `cmd:"reservations" help:"Manage reservations (list, add)"`
	Analytics    AnalyticsCmd    `cmd:"analytics" help:"Show revenue by month and late fees"`
	Settings     SettingsCmd     `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	out       io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("RENTDESK_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("RENTDESK_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
		if c.DBPath == "" {
			c.DBPath = c.settings.DBPath
		}
	}
	if c.DBPath == "" {
		c.DBPath = config.GetDBPath()
	}
	c.DBPath = config.ExpandPath(c.DBPath)

	if err := logging.Initialize(logging.Options{Debug: c.Debug, File: c.DebugFile, MaxFiles: c.MaxLogFiles}); err != nil {
		return err
	}

	// Logging must exist before the container: gorm logs through it
	container, err := NewContainer(c.DBPath, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container == nil {
		return nil
	}
	err := c.Container.Close()
	c.Container = nil
	return err
}

func (c *CLI) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

func (c *CLI) loadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// newDashboard builds a dashboard bound to operator from the current
// settings. Each caller gets its own dispatcher.
func (c *CLI) newDashboard(operator string, devMode bool) (*ui.Model, error) {
	settings := c.loadedSettings()

	registry, err := settings.Shortcuts.Registry()
	if err != nil {
		return nil, fmt.Errorf("invalid chords in settings.json: %w", err)
	}

	toastDuration := time.Duration(config.DefaultErrorClearDelay) * time.Second
	if settings.ErrorClearDelay != nil {
		toastDuration = time.Duration(*settings.ErrorClearDelay) * time.Second
	}

	return ui.NewModel(c.Container.UIServices(), registry, ui.Options{
		Clock:         c.Container.Clock,
		DailyLateFee:  settings.LateFee(),
		DevMode:       devMode,
		Dispatcher:    settings.Shortcuts.DispatcherConfig(),
		Operator:      operator,
		Operators:     settings.Operators,
		ToastDuration: toastDuration,
	})
}

// describeDoubleTap renders the double-tap gesture for listings
func describeDoubleTap(cfg shortcut.Config) string {
	return fmt.Sprintf("%s %s (within %s)", cfg.DoubleTapKey, cfg.DoubleTapKey, cfg.DoubleTapTimeout)
}
