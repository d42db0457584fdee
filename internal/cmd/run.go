package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rentdesk/rentdesk/internal/logging"
)

// RunCmd starts the dashboard in the terminal
type RunCmd struct {
	Dev      bool   `help:"Enable development mode (shows version info in dialogs)"`
	Operator string `help:"Operator recorded on new rentals (defaults to the first configured operator)" env:"RENTDESK_OPERATOR"`
}

// Run executes the dashboard
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting rentdesk dashboard", "db_path", cli.DBPath)

	model, err := cli.newDashboard(r.Operator, r.Dev)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Dashboard program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("Dashboard exited normally")
	return nil
}
