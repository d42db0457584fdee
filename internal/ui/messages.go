package ui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/services"
	"github.com/rentdesk/rentdesk/internal/shortcut"
)

// Action messages dispatched by view keys or the command menu

// QuitMsg requests quitting the application
type QuitMsg struct{}

// ShowHelpMsg requests showing the help screen
type ShowHelpMsg struct{}

// OpenQuickFindMsg requests opening quick find
type OpenQuickFindMsg struct{}

// RefreshMsg requests reloading the current view
type RefreshMsg struct{}

// ReturnRentalMsg requests returning a rental, the selected one when
// RentalID is empty
type ReturnRentalMsg struct {
	RentalID string
}

func (m ReturnRentalMsg) WithRow(id string) tea.Msg {
	return ReturnRentalMsg{RentalID: id}
}

// NavigateMsg requests routing to Route and selecting SelectID when set
type NavigateMsg struct {
	Route    string
	SelectID string
}

// RunChordMsg requests running a chord entry picked from the command menu
type RunChordMsg struct {
	Entry shortcut.Entry
}

// Data messages, results of async loads

type tableLoadedMsg struct {
	err   error
	ids   []string
	route string
	rows  []table.Row
}

type dashboardLoadedMsg struct {
	err     error
	overdue []overdueRow
	summary *services.Summary
}

type analyticsLoadedMsg struct {
	err      error
	fees     []services.LateFee
	feeTotal int64
	months   []services.MonthRevenue
}

type rentalReturnedMsg struct {
	err    error
	result *services.ReturnResult
}

type searchResultsMsg struct {
	err   error
	hits  []services.SearchHit
	query string
}

// overdueRow is a dashboard line for one overdue rental
type overdueRow struct {
	Customer string
	Item     string
	Rental   domain.Rental
}
