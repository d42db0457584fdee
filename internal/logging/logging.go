package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit used when none is configured
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug output.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options select where debug logs go
type Options struct {
	Debug    bool
	File     string // fixed log file, never rotated
	MaxFiles int    // rotation limit for the per-run log directory
}

// withEnv folds the RENTDESK_DEBUG* variables into o. SSH sessions and
// subcommands inherit debug settings this way. An explicit File or a
// non-default MaxFiles wins over the environment.
func (o Options) withEnv() Options {
	if os.Getenv("RENTDESK_DEBUG") == "1" {
		o.Debug = true
	}
	if f := os.Getenv("RENTDESK_DEBUG_FILE"); f != "" && o.File == "" {
		o.File = f
	}
	if v := os.Getenv("RENTDESK_MAX_LOG_FILES"); v != "" && o.MaxFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(v); err == nil {
			o.MaxFiles = n
		}
	}
	return o
}

// Initialize points Logger at a JSON log file, or discards everything
// when debugging is off
func Initialize(opts Options) error {
	opts = opts.withEnv()
	if !opts.Debug && opts.File == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: millis,
	}))

	// Inherited debug stays quiet; only the process that asked prints the path
	if os.Getenv("RENTDESK_DEBUG") == "" {
		Logger.Info("Debug logging initialized", "log_file", path)
		fmt.Printf("Debug mode enabled. Logs: %s\n", path)
	}
	return nil
}

// logFilePath returns opts.File, or a fresh uuid-named file in the log
// directory after rotating old ones out
func logFilePath(opts Options) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	if opts.MaxFiles > 0 {
		if err := rotateLogs(logDir, opts.MaxFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}
	return filepath.Join(logDir, uuid.NewString()+".log"), nil
}

// millis writes durations (chord timeouts, session lengths) as
// milliseconds under a "_ms" key
func millis(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindDuration {
		return slog.Int64(a.Key+"_ms", a.Value.Duration().Milliseconds())
	}
	return a
}

// rotateLogs removes the oldest log files so that a new one keeps the
// directory at maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		modTime time.Time
		path    string
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			modTime: info.ModTime(),
			path:    filepath.Join(logDir, entry.Name()),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1 // +1 to make room for the new log
	for i := 0; i < numToDelete && i < len(logFiles); i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "rentdesk"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "rentdesk"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "rentdesk", "logs"), nil
	default:
		return filepath.Join(homeDir, ".rentdesk", "logs"), nil
	}
}
