package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rentdesk/rentdesk/internal/adapters/clock"
	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/ports"
	"github.com/rentdesk/rentdesk/internal/services"
	"github.com/rentdesk/rentdesk/internal/shortcut"
	"github.com/rentdesk/rentdesk/internal/theme"
)

type uiState int

const (
	stateBrowse uiState = iota
	stateCommandPalette
	stateEntry
	stateForm
	stateHelp
	stateIdentity
	stateQuickFind
)

// headerHeight is the app header plus the status line
const headerHeight = 4

// Services are the application services the dashboard reads and writes
type Services struct {
	Analytics    *services.AnalyticsService
	Customers    *services.CustomerService
	Items        *services.ItemService
	Rentals      *services.RentalService
	Reservations *services.ReservationService
	Search       *services.SearchService
}

// Options configure a Model
type Options struct {
	Clock         ports.Clock
	DailyLateFee  int64
	DevMode       bool
	Dispatcher    shortcut.Config
	Operator      string
	Operators     []string
	ToastDuration time.Duration
}

// Model is the root bubbletea model. Every key goes to the shortcut
// dispatcher first; only keys it does not consume reach the views.
type Model struct {
	analytics      *AnalyticsView
	capabilities   *shortcut.Capabilities
	clock          ports.Clock
	commandPalette *CommandPalette
	dashboard      *DashboardView
	devMode        bool
	dialog         *Dialog // form, entry flow, identity picker or help
	dispatcher     *shortcut.Dispatcher
	height         int
	keys           KeyMap
	lists          map[string]*TableView
	operator       string
	operators      []string
	pending        []tea.Cmd
	quickFind      *QuickFind
	registry       *shortcut.Registry
	releases       []func()
	route          string
	scheduler      *TeaScheduler
	state          uiState
	svc            Services
	toasts         *ToastManager
	width          int
}

// NewModel mounts the dashboard: it creates the dispatcher over registry
// and installs the capability setters the chord handlers drive.
func NewModel(svc Services, registry *shortcut.Registry, opts Options) (*Model, error) {
	if opts.Clock == nil {
		opts.Clock = clock.SystemClock{}
	}
	operator := opts.Operator
	if operator == "" && len(opts.Operators) > 0 {
		operator = opts.Operators[0]
	}

	m := &Model{
		analytics:    NewAnalyticsView(svc.Analytics, opts.DailyLateFee),
		capabilities: shortcut.NewCapabilities(),
		clock:        opts.Clock,
		dashboard:    NewDashboardView(svc, opts.Clock),
		devMode:      opts.DevMode,
		keys:         NewKeyMap(),
		lists:        newListViews(svc, opts.Clock),
		operator:     operator,
		operators:    opts.Operators,
		registry:     registry,
		route:        domain.RouteDashboard,
		scheduler:    NewTeaScheduler(),
		svc:          svc,
		toasts:       NewToastManager(opts.ToastDuration),
	}

	dispatcherCfg := opts.Dispatcher
	dispatcherCfg.ReservedKeys = append(ViewKeys(), dispatcherCfg.ReservedKeys...)
	d, err := shortcut.NewDispatcher(registry, dispatcherCfg, shortcut.Deps{
		Capabilities: m.capabilities,
		Clock:        opts.Clock,
		Focus:        shortcut.FocusFunc(m.textEntryFocused),
		Notifier:     m.toasts,
		Scheduler:    m.scheduler,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create shortcut dispatcher: %w", err)
	}
	m.dispatcher = d

	caps := m.capabilities
	m.releases = []func(){
		caps.AcquireNavigator(m.navigate),
		caps.Acquire(shortcut.CommandMenu, m.setCommandMenuOpen),
		caps.Acquire(shortcut.IdentityPicker, m.setIdentityPickerOpen),
		caps.Acquire(shortcut.QuickFind, m.setQuickFindOpen),
		caps.Acquire(shortcut.SequentialEntry, m.setEntryOpen),
	}

	logging.Logger.Info("Dashboard mounted", "chords", registry.Len(), "operator", operator)
	return m, nil
}

// Close unmounts the dashboard: capabilities are released and the
// dispatcher stops reacting to keys and timers.
func (m *Model) Close() {
	for _, release := range m.releases {
		release()
	}
	m.releases = nil
	m.dispatcher.Close()
}

// Dispatcher returns the shortcut dispatcher of this dashboard
func (m *Model) Dispatcher() *shortcut.Dispatcher {
	return m.dispatcher
}

// Route returns the current router path
func (m *Model) Route() string {
	return m.route
}

// Operator returns the operator recorded on new rentals
func (m *Model) Operator() string {
	return m.operator
}

func (m *Model) Init() tea.Cmd {
	return m.flush(m.loadRoute(m.route))
}

// textEntryFocused is the focus probe: every overlay except help owns
// the keyboard
func (m *Model) textEntryFocused() bool {
	switch m.state {
	case stateCommandPalette, stateEntry, stateForm, stateIdentity, stateQuickFind:
		return true
	}
	return false
}

// queue adds a command to hand back from the current Update
func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.pending = append(m.pending, cmd)
	}
}

// flush collects the queued commands with the timer and toast ticks
func (m *Model) flush(cmds ...tea.Cmd) tea.Cmd {
	all := append(m.pending, cmds...)
	m.pending = nil
	all = append(all, m.scheduler.Flush(), m.toasts.Flush())
	return tea.Batch(all...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.dialog != nil {
			_, cmd := m.dialog.Update(msg)
			return m, m.flush(cmd)
		}
		return m, nil

	case timerFiredMsg:
		m.scheduler.Fire(msg.handle)
		return m, m.flush()

	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil

	case tableLoadedMsg:
		if msg.err != nil {
			logging.Logger.Error("Failed to load view", "route", msg.route, "error", msg.err)
			m.toasts.Error("load failed", msg.err)
		} else if v, ok := m.lists[msg.route]; ok {
			v.SetRows(msg.rows, msg.ids)
		}
		return m, m.flush()

	case dashboardLoadedMsg:
		m.dashboard.apply(msg)
		return m, nil

	case analyticsLoadedMsg:
		m.analytics.apply(msg)
		return m, nil

	case rentalReturnedMsg:
		if msg.err != nil {
			m.toasts.Error("return failed", msg.err)
			return m, m.flush()
		}
		text := "amount " + domain.FormatCents(msg.result.Amount)
		if msg.result.DaysOverdue > 0 {
			text += fmt.Sprintf(", %d days late", msg.result.DaysOverdue)
		}
		m.toasts.Success("rental returned", text)
		return m, m.flush(m.loadRoute(m.route))

	case tea.KeyMsg:
		if m.dispatcher.HandleKey(KeyEventFromTea(msg)) == shortcut.Consumed {
			return m, m.flush()
		}
	}

	if cmd, handled := m.handleAction(msg); handled {
		return m, m.flush(cmd)
	}

	var cmd tea.Cmd
	switch m.state {
	case stateBrowse:
		cmd = m.updateBrowse(msg)
	case stateCommandPalette:
		cmd = m.updateCommandPalette(msg)
	case stateEntry, stateForm:
		cmd = m.updateForm(msg)
	case stateHelp:
		cmd = m.updateHelp(msg)
	case stateIdentity:
		cmd = m.updateIdentity(msg)
	case stateQuickFind:
		cmd = m.updateQuickFind(msg)
	}
	return m, m.flush(cmd)
}

// handleAction runs the messages dispatched by the command menu
func (m *Model) handleAction(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case QuitMsg:
		return tea.Quit, true
	case ShowHelpMsg:
		m.openHelp()
		return nil, true
	case OpenQuickFindMsg:
		m.setQuickFindOpen(true)
		return nil, true
	case RefreshMsg:
		return m.loadRoute(m.route), true
	case ReturnRentalMsg:
		id := msg.RentalID
		if id == "" {
			id = m.selectedRental()
		}
		return m.returnRental(id), true
	case RunChordMsg:
		m.dispatcher.Invoke(msg.Entry)
		return nil, true
	case NavigateMsg:
		m.navigate(msg.Route)
		if v, ok := m.lists[msg.Route]; ok && msg.SelectID != "" {
			v.Select(msg.SelectID)
		}
		return nil, true
	}
	return nil, false
}

func (m *Model) updateBrowse(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit), key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.openHelp()
	case key.Matches(keyMsg, m.keys.CommandPalette):
		m.setCommandMenuOpen(true)
	case key.Matches(keyMsg, m.keys.QuickFind):
		m.setQuickFindOpen(true)
	case key.Matches(keyMsg, m.keys.Refresh):
		return m.loadRoute(m.route)
	case key.Matches(keyMsg, m.keys.ReturnRental):
		return m.returnRental(m.selectedRental())
	case key.Matches(keyMsg, m.keys.Back):
		if m.route != domain.RouteDashboard {
			m.setRoute(domain.RouteDashboard)
		}
	default:
		if v, ok := m.lists[m.route]; ok {
			return v.Update(keyMsg)
		}
	}
	return nil
}

func (m *Model) updateCommandPalette(msg tea.Msg) tea.Cmd {
	updated, cmd := m.commandPalette.Update(msg)
	m.commandPalette = updated.(*CommandPalette)
	if !m.commandPalette.Completed {
		return cmd
	}

	result := m.commandPalette.Result
	m.commandPalette = nil
	m.state = stateBrowse
	if result.Cancelled || result.Msg == nil {
		return nil
	}
	action := result.Msg
	return func() tea.Msg { return action }
}

func (m *Model) updateQuickFind(msg tea.Msg) tea.Cmd {
	updated, cmd := m.quickFind.Update(msg)
	m.quickFind = updated.(*QuickFind)
	if !m.quickFind.Completed {
		return cmd
	}

	hit := m.quickFind.Result
	m.quickFind = nil
	m.state = stateBrowse
	if hit == nil {
		return nil
	}
	m.navigate(hit.Route)
	if v, ok := m.lists[hit.Route]; ok {
		v.Select(hit.ID)
	}
	return nil
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)
	content, ok := m.dialog.Content().(*CreateForm)
	if !ok || !content.Completed {
		return cmd
	}

	result := content.Result()
	m.closeDialog()
	switch {
	case result.Cancelled:
		m.toasts.Show(ports.Notification{Kind: ports.NotifyCancelled, Title: "form", Message: "nothing saved"})
	case result.Error != nil:
		m.toasts.Error("could not save", result.Error)
	default:
		m.toasts.Success("saved", result.Message)
		if v, ok := m.lists[result.Route]; ok {
			v.Select(result.ID)
		}
		m.setRoute(result.Route)
	}
	return nil
}

func (m *Model) updateIdentity(msg tea.Msg) tea.Cmd {
	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)
	picker, ok := m.dialog.Content().(*IdentityPicker)
	if !ok || !picker.Completed {
		return cmd
	}

	m.closeDialog()
	if !picker.Cancelled && picker.Selected() != "" {
		m.operator = picker.Selected()
		logging.Logger.Info("Operator switched", "operator", m.operator)
		m.toasts.Success("operator", "now serving as "+m.operator)
	}
	return nil
}

func (m *Model) updateHelp(msg tea.Msg) tea.Cmd {
	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)
	if help, ok := m.dialog.Content().(*HelpScreen); ok && help.Completed {
		m.closeDialog()
		return nil
	}
	return cmd
}

// Capability setters. They run inside Update, called by chord handlers.

func (m *Model) navigate(path string) {
	switch m.state {
	case stateHelp:
		m.closeDialog()
	case stateCommandPalette:
		m.setCommandMenuOpen(false)
	case stateQuickFind:
		m.setQuickFindOpen(false)
	}

	switch path {
	case domain.RouteCustomersNew:
		m.setRoute(domain.RouteCustomers)
		m.openDialog("New customer", NewCustomerForm(m.svc), stateForm)
	case domain.RouteItemsNew:
		m.setRoute(domain.RouteItems)
		m.openDialog("New item", NewItemForm(m.svc), stateForm)
	case domain.RouteRentalsNew:
		m.setRoute(domain.RouteRentals)
		form, err := NewRentalForm(m.svc, m.operator)
		if err != nil {
			m.toasts.Error("new rental", err)
			return
		}
		m.openDialog("New rental", form, stateForm)
	case domain.RouteReservationsNew:
		m.setRoute(domain.RouteReservations)
		form, err := NewReservationForm(m.svc, m.operator, m.clock.Now())
		if err != nil {
			m.toasts.Error("new reservation", err)
			return
		}
		m.openDialog("New reservation", form, stateForm)
	default:
		m.setRoute(path)
	}
}

func (m *Model) setCommandMenuOpen(open bool) {
	if !open {
		if m.state == stateCommandPalette {
			m.commandPalette = nil
			m.state = stateBrowse
		}
		return
	}
	m.closeDialog()
	m.commandPalette = NewCommandPalette(m.registry, m.keys, m.selectedRental(), m.width)
	m.state = stateCommandPalette
	m.queue(m.commandPalette.Init())
}

func (m *Model) setQuickFindOpen(open bool) {
	if !open {
		if m.state == stateQuickFind {
			m.quickFind = nil
			m.state = stateBrowse
		}
		return
	}
	m.closeDialog()
	m.quickFind = NewQuickFind(m.svc.Search, m.width)
	m.state = stateQuickFind
	m.queue(m.quickFind.Init())
}

func (m *Model) setEntryOpen(open bool) {
	if !open {
		if m.state == stateEntry {
			m.closeDialog()
		}
		return
	}
	flow, err := NewRentalEntryFlow(m.svc, m.operator)
	if err != nil {
		m.toasts.Error("quick rental entry", err)
		return
	}
	m.openDialog("Quick rental entry", flow, stateEntry)
}

func (m *Model) setIdentityPickerOpen(open bool) {
	if !open {
		if m.state == stateIdentity {
			m.closeDialog()
		}
		return
	}
	m.openDialog("Switch operator", NewIdentityPicker(m.operators, m.operator), stateIdentity)
}

func (m *Model) openHelp() {
	m.openDialog("Keyboard shortcuts", NewHelpScreen(m.registry, m.dispatcher.Config(), m.keys), stateHelp)
}

func (m *Model) openDialog(title string, content tea.Model, state uiState) {
	m.dialog = NewDialog(title, content, m.devMode)
	m.state = state
	m.queue(m.dialog.Init())
	if m.width > 0 {
		m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
}

func (m *Model) closeDialog() {
	if m.dialog == nil {
		return
	}
	m.dialog = nil
	m.state = stateBrowse
}

func (m *Model) setRoute(path string) {
	if m.route != path {
		logging.Logger.Debug("Route changed", "from", m.route, "to", path)
	}
	m.route = path
	m.queue(m.loadRoute(path))
}

func (m *Model) loadRoute(path string) tea.Cmd {
	switch path {
	case domain.RouteDashboard:
		return m.dashboard.Load()
	case domain.RouteAnalytics:
		return m.analytics.Load()
	}
	if v, ok := m.lists[path]; ok {
		return v.Load()
	}
	return nil
}

// selectedRental returns the rental under the cursor on a rental list
func (m *Model) selectedRental() string {
	if m.route != domain.RouteRentals && m.route != domain.RouteRentalsOverdue {
		return ""
	}
	return m.lists[m.route].SelectedID()
}

func (m *Model) returnRental(id string) tea.Cmd {
	if id == "" {
		return nil
	}
	rentals := m.svc.Rentals
	return func() tea.Msg {
		result, err := rentals.Return(context.Background(), id)
		return rentalReturnedMsg{err: err, result: result}
	}
}

func (m *Model) resize() {
	// header, view title, footer
	height := m.height - headerHeight - 3 - 2
	for _, v := range m.lists {
		v.SetSize(m.width, height)
	}
	if m.commandPalette != nil {
		m.commandPalette.width = m.width
	}
	if m.quickFind != nil {
		m.quickFind.width = m.width
	}
}

func (m *Model) View() string {
	var view string
	switch m.state {
	case stateEntry, stateForm, stateHelp, stateIdentity:
		view = m.dialog.View()
	default:
		view = m.browseView()
		if m.state == stateCommandPalette {
			view = bottomAnchoredOverlay(view, m.commandPalette.View(), m.width, m.height)
		} else if m.state == stateQuickFind {
			view = compositeOverlay(view, m.quickFind.View(), m.width, m.height)
		}
	}
	return overlayTopRight(view, m.toasts.View(m.width), m.width)
}

func (m *Model) browseView() string {
	var body string
	switch m.route {
	case domain.RouteDashboard:
		body = m.dashboard.View()
	case domain.RouteAnalytics:
		body = m.analytics.View()
	default:
		if v, ok := m.lists[m.route]; ok {
			body = v.View()
		}
	}
	return renderHeader(m.devMode, "") + m.statusLine() + "\n" + body + "\n" + m.footer()
}

// statusLine shows the route, the operator and the pending chord
func (m *Model) statusLine() string {
	line := theme.HelpLabelStyle.Render(m.route)
	if m.operator != "" {
		line += theme.MutedStyle.Render("  operator: ") + theme.NormalStyle.Render(m.operator)
	}
	if first, ok := m.dispatcher.Pending(); ok {
		line += "  " + theme.HintKeyStyle.Render(string(first)+" ...")
	}
	return line
}

func (m *Model) footer() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		help := b.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, " • "))
}
