package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/logging"
	"github.com/rentdesk/rentdesk/internal/services"
)

// FormResult is the outcome of a create form
type FormResult struct {
	Cancelled bool
	Error     error
	ID        string // id of the created record
	Message   string // confirmation text
	Route     string // list that shows the new record
}

// submitFunc stores the form values and returns the new record id
type submitFunc func(ctx context.Context) (id string, message string, err error)

// CreateForm wraps a huh form and the action run when it completes
type CreateForm struct {
	Completed bool
	form      *huh.Form
	result    FormResult
	submit    submitFunc
}

func newCreateForm(route string, form *huh.Form, submit submitFunc) *CreateForm {
	return &CreateForm{
		form:   form.WithShowHelp(true),
		result: FormResult{Route: route},
		submit: submit,
	}
}

func (f *CreateForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *CreateForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	switch f.form.State {
	case huh.StateAborted:
		f.result.Cancelled = true
		f.Completed = true
		return f, nil
	case huh.StateCompleted:
		f.Completed = true
		id, message, err := f.submit(context.Background())
		if errors.Is(err, errCancelledEntry) {
			f.result.Cancelled = true
			return f, nil
		}
		if err != nil {
			logging.Logger.Error("Form submit failed", "route", f.result.Route, "error", err)
			f.result.Error = err
			return f, nil
		}
		f.result.ID = id
		f.result.Message = message
		return f, nil
	}

	return f, cmd
}

func (f *CreateForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *CreateForm) Result() FormResult {
	return f.result
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s required", what)
		}
		return nil
	}
}

func validateDays(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a number of days, at least 1")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(dateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use %s", dateFormat)
	}
	return nil
}

// parseCents reads "12.50" or "12" as cents
func parseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > 2 {
		return 0, errors.New("at most two decimals")
	}
	for len(frac) < 2 {
		frac += "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w < 0 {
		return 0, errors.New("enter an amount like 12.50")
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errors.New("enter an amount like 12.50")
	}
	return w*100 + f, nil
}

// NewCustomerForm registers a customer
func NewCustomerForm(svc Services) *CreateForm {
	var name, email, phone string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name).Validate(required("name")),
			huh.NewInput().Title("Email").Description("optional, must be unique").Value(&email),
			huh.NewInput().Title("Phone").Description("optional").Value(&phone),
		),
	)
	return newCreateForm(domain.RouteCustomers, form, func(ctx context.Context) (string, string, error) {
		c, err := svc.Customers.Create(ctx, services.CreateCustomerParams{
			Email: strings.TrimSpace(email),
			Name:  strings.TrimSpace(name),
			Phone: strings.TrimSpace(phone),
		})
		if err != nil {
			return "", "", err
		}
		return c.ID, "customer " + c.Name + " added", nil
	})
}

// NewItemForm adds an item to the catalogue
func NewItemForm(svc Services) *CreateForm {
	var name, category, rate string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name).Validate(required("name")),
			huh.NewInput().Title("Category").Value(&category),
			huh.NewInput().Title("Daily rate").Placeholder("12.50").Value(&rate).
				Validate(func(s string) error {
					_, err := parseCents(s)
					return err
				}),
		),
	)
	return newCreateForm(domain.RouteItems, form, func(ctx context.Context) (string, string, error) {
		cents, err := parseCents(rate)
		if err != nil {
			return "", "", err
		}
		it, err := svc.Items.Create(ctx, services.CreateItemParams{
			Category:  strings.TrimSpace(category),
			DailyRate: cents,
			Name:      strings.TrimSpace(name),
		})
		if err != nil {
			return "", "", err
		}
		return it.ID, "item " + it.Name + " added", nil
	})
}

// pickerOptions loads customers and active items as select options
func pickerOptions(ctx context.Context, svc Services) ([]huh.Option[string], []huh.Option[string], error) {
	customers, err := svc.Customers.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	items, err := svc.Items.List(ctx, false)
	if err != nil {
		return nil, nil, err
	}

	customerOpts := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		customerOpts = append(customerOpts, huh.NewOption(c.Name, c.ID))
	}
	itemOpts := make([]huh.Option[string], 0, len(items))
	for _, it := range items {
		label := fmt.Sprintf("%s (%s/day)", it.Name, domain.FormatCents(it.DailyRate))
		itemOpts = append(itemOpts, huh.NewOption(label, it.ID))
	}
	if len(customerOpts) == 0 || len(itemOpts) == 0 {
		return nil, nil, errors.New("add a customer and an item first")
	}
	return customerOpts, itemOpts, nil
}

func createRental(svc Services, customerID, itemID *string, days *string, operator string) submitFunc {
	return func(ctx context.Context) (string, string, error) {
		n, err := strconv.Atoi(strings.TrimSpace(*days))
		if err != nil {
			return "", "", err
		}
		r, err := svc.Rentals.Create(ctx, services.CreateRentalParams{
			CustomerID: *customerID,
			Days:       n,
			ItemID:     *itemID,
			Operator:   operator,
		})
		if err != nil {
			return "", "", err
		}
		return r.ID, "rental due " + r.DueDate.Local().Format(dateFormat), nil
	}
}

// NewRentalForm checks an item out on a single page
func NewRentalForm(svc Services, operator string) (*CreateForm, error) {
	customerOpts, itemOpts, err := pickerOptions(context.Background(), svc)
	if err != nil {
		return nil, err
	}

	var customerID, itemID string
	days := "1"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Customer").Options(customerOpts...).Value(&customerID),
			huh.NewSelect[string]().Title("Item").Options(itemOpts...).Value(&itemID),
			huh.NewInput().Title("Days").Value(&days).Validate(validateDays),
		),
	)
	return newCreateForm(domain.RouteRentals, form, createRental(svc, &customerID, &itemID, &days, operator)), nil
}

// NewRentalEntryFlow is the quick rental entry: one step per page, then
// a confirmation
func NewRentalEntryFlow(svc Services, operator string) (*CreateForm, error) {
	customerOpts, itemOpts, err := pickerOptions(context.Background(), svc)
	if err != nil {
		return nil, err
	}

	var customerID, itemID string
	days := "1"
	confirmed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Who is renting?").Options(customerOpts...).Value(&customerID),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Which item?").Options(itemOpts...).Value(&itemID),
		),
		huh.NewGroup(
			huh.NewInput().Title("For how many days?").Value(&days).Validate(validateDays),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Check the item out?").Affirmative("Yes").Negative("No").Value(&confirmed),
		),
	)

	rent := createRental(svc, &customerID, &itemID, &days, operator)
	return newCreateForm(domain.RouteRentals, form, func(ctx context.Context) (string, string, error) {
		if !confirmed {
			return "", "", errCancelledEntry
		}
		return rent(ctx)
	}), nil
}

var errCancelledEntry = errors.New("rental entry cancelled")

// NewReservationForm holds an item over a date range
func NewReservationForm(svc Services, operator string, today time.Time) (*CreateForm, error) {
	customerOpts, itemOpts, err := pickerOptions(context.Background(), svc)
	if err != nil {
		return nil, err
	}

	var customerID, itemID string
	from := today.Format(dateFormat)
	to := today.Format(dateFormat)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Customer").Options(customerOpts...).Value(&customerID),
			huh.NewSelect[string]().Title("Item").Options(itemOpts...).Value(&itemID),
			huh.NewInput().Title("From").Placeholder(dateFormat).Value(&from).Validate(validateDate),
			huh.NewInput().Title("To").Placeholder(dateFormat).Value(&to).Validate(validateDate),
		),
	)
	return newCreateForm(domain.RouteReservations, form, func(ctx context.Context) (string, string, error) {
		fromDate, _ := time.ParseInLocation(dateFormat, strings.TrimSpace(from), today.Location())
		toDate, _ := time.ParseInLocation(dateFormat, strings.TrimSpace(to), today.Location())
		r, err := svc.Reservations.Create(ctx, services.CreateReservationParams{
			CustomerID: customerID,
			From:       fromDate,
			ItemID:     itemID,
			Operator:   operator,
			To:         toDate,
		})
		if err != nil {
			return "", "", err
		}
		return r.ID, fmt.Sprintf("reserved %s to %s", r.From.Format(dateFormat), r.To.Format(dateFormat)), nil
	}), nil
}
