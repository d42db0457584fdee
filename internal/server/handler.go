package server

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ui"
)

// sessionIDKey stores the session id in the ssh context so the cleanup
// middleware can find the model the tea handler created
type sessionIDKey struct{}

// teaHandler creates a dashboard per SSH session, so each connection has
// its own dispatcher and chord state
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	session := logging.Session(sessionID, sess.User())
	logging.Logger.Info("New SSH session", session,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, err := s.cfg.NewModel(sess.User())
	if err != nil {
		logging.Logger.Error("Failed to create dashboard for SSH session", session, "error", err)
		return errorModel{err}, nil
	}

	sess.Context().SetValue(sessionIDKey{}, sessionID)
	s.sessions.add(sessionID, model)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// cleanupMiddleware closes the session's dashboard once its program has
// exited, whether the user quit or the connection dropped
func (s *Server) cleanupMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			start := time.Now()
			next(sess)

			sessionID, ok := sess.Context().Value(sessionIDKey{}).(string)
			if !ok {
				return
			}
			s.sessions.close(sessionID)
			logging.Logger.Info("SSH session ended",
				logging.Session(sessionID, sess.User()),
				"duration", time.Since(start))
		}
	}
}

// errorModel shows a startup error and quits on the next message
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}

// sessionTable tracks the live dashboards by session id
type sessionTable struct {
	models map[string]*ui.Model
	mu     sync.Mutex
}

func newSessionTable() *sessionTable {
	return &sessionTable{models: make(map[string]*ui.Model)}
}

func (t *sessionTable) add(id string, m *ui.Model) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.models[id] = m
}

// close releases the dashboard of a finished session. Its program has
// stopped, so nothing else touches the model.
func (t *sessionTable) close(id string) {
	t.mu.Lock()
	m, ok := t.models[id]
	delete(t.models, id)
	t.mu.Unlock()
	if ok {
		m.Close()
	}
}

// Len returns the number of live sessions
func (t *sessionTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.models)
}
