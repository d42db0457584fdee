package cmd

import (
	"fmt"

	"github.com/rentdesk/rentdesk/internal/config"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/server"
	"github.com/rentdesk/rentdesk/internal/ui"
)

// ServeCmd serves the dashboard over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file of the desk operators (defaults to $RENTDESK_HOME/ssh/authorized_keys)"`
	Host           string `help:"Host to bind to" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		authorizedKeys = config.GetAuthorizedKeysPath()
	}

	logging.Logger.Info("Starting rentdesk SSH server",
		"host", s.Host,
		"port", s.Port,
		"authorized_keys", authorizedKeys,
		"db_path", cli.DBPath)

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: authorizedKeys,
		Host:               s.Host,
		HostKeyPath:        config.GetHostKeyPath(),
		// the SSH user is the operator of the session
		NewModel: func(user string) (*ui.Model, error) {
			return cli.newDashboard(user, false)
		},
		Port: s.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
