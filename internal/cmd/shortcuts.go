package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/shortcut"
)

// ShortcutsCmd manages keyboard chords
type ShortcutsCmd struct {
	Add  ShortcutsAddCmd  `cmd:"add" help:"Add a navigate chord (e.g. 'g x' /reservations/new)"`
	List ShortcutsListCmd `cmd:"list" help:"List the chord table and the double-tap gesture" default:"1"`
}

// ShortcutsListCmd lists every chord
type ShortcutsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// ShortcutsAddCmd adds a navigate chord to settings.json
type ShortcutsAddCmd struct {
	Sequence string `arg:"" help:"Two-key sequence, e.g. 'g x'"`
	Route    string `arg:"" help:"Route to open, e.g. /reservations/new"`
}

type chordRow struct {
	Description string `json:"description"`
	Sequence    string `json:"sequence"`
	Source      string `json:"source"`
}

// Run executes the list command
func (s *ShortcutsListCmd) Run(cli *CLI) error {
	settings := cli.loadedSettings()
	registry, err := settings.Shortcuts.Registry()
	if err != nil {
		return fmt.Errorf("invalid chords in settings.json: %w", err)
	}
	dispatcherCfg := settings.Shortcuts.DispatcherConfig()

	custom := customSequences(settings.Shortcuts)
	entries := registry.Entries()
	rows := make([]chordRow, 0, len(entries))
	for _, e := range entries {
		source := "built-in"
		if custom[e.Sequence()] {
			source = "custom"
		}
		rows = append(rows, chordRow{Description: e.Description, Sequence: e.Sequence(), Source: source})
	}

	out := cli.stdout()
	if s.Format == "json" {
		data, err := json.MarshalIndent(map[string]any{
			"chords":              rows,
			"double_tap":          describeDoubleTap(dispatcherCfg),
			"sequence_timeout_ms": dispatcherCfg.SequenceTimeout.Milliseconds(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Chords (settings file: %s)\n\n", config.GetSettingsPath())
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Keys\tAction\tSource")
	fmt.Fprintln(w, "────\t──────\t──────")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Sequence, row.Description, row.Source)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Quick find: %s\n", describeDoubleTap(dispatcherCfg))
	fmt.Fprintf(out, "Second key must follow within %s.\n", dispatcherCfg.SequenceTimeout)
	return nil
}

// customSequences returns the normalized sequences of the user chords
func customSequences(s *config.ShortcutSettings) map[string]bool {
	out := make(map[string]bool)
	if s == nil {
		return out
	}
	for seq := range s.Chords {
		first, second, err := shortcut.ParseSequence(seq)
		if err != nil {
			continue
		}
		out[shortcut.Entry{First: first, Second: second}.Sequence()] = true
	}
	return out
}

// Run executes the add command
func (s *ShortcutsAddCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Adding chord", "seq", s.Sequence, "route", s.Route)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Shortcuts == nil {
		settings.Shortcuts = &config.ShortcutSettings{}
	}
	if settings.Shortcuts.Chords == nil {
		settings.Shortcuts.Chords = make(config.ChordsConfig)
	}
	settings.Shortcuts.Chords[s.Sequence] = s.Route

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "Chord '%s' now opens %s\n", s.Sequence, s.Route)
	return nil
}
