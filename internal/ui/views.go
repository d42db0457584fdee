package ui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/ports"
)

const dateFormat = "2006-01-02"

// newListViews builds one TableView per list route
func newListViews(svc Services, clock ports.Clock) map[string]*TableView {
	return map[string]*TableView{
		domain.RouteCustomers: NewTableView(domain.RouteCustomers, "Customers", "no customers yet, press n c to add one",
			[]table.Column{
				{Title: "Name", Width: 24},
				{Title: "Email", Width: 28},
				{Title: "Phone", Width: 16},
				{Title: "Since", Width: 10},
			},
			customerRows(svc)),
		domain.RouteItems: NewTableView(domain.RouteItems, "Items", "no items yet, press n i to add one",
			[]table.Column{
				{Title: "Name", Width: 24},
				{Title: "Category", Width: 16},
				{Title: "Daily rate", Width: 10},
				{Title: "Status", Width: 10},
			},
			itemRows(svc)),
		domain.RouteRentals: NewTableView(domain.RouteRentals, "Rentals", "no rentals yet, press n r to add one",
			rentalColumns(),
			rentalRows(svc, clock, domain.RentalAny)),
		domain.RouteRentalsOverdue: NewTableView(domain.RouteRentalsOverdue, "Overdue rentals", "nothing is overdue",
			rentalColumns(),
			rentalRows(svc, clock, domain.RentalOverdue)),
		domain.RouteReservations: NewTableView(domain.RouteReservations, "Reservations", "no reservations, press n s to add one",
			[]table.Column{
				{Title: "Item", Width: 20},
				{Title: "Customer", Width: 20},
				{Title: "From", Width: 10},
				{Title: "To", Width: 10},
				{Title: "Operator", Width: 10},
			},
			reservationRows(svc)),
	}
}

func customerRows(svc Services) rowLoader {
	return func(ctx context.Context) ([]table.Row, []string, error) {
		customers, err := svc.Customers.List(ctx)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]table.Row, 0, len(customers))
		ids := make([]string, 0, len(customers))
		for _, c := range customers {
			rows = append(rows, table.Row{c.Name, c.Email, c.Phone, c.CreatedAt.Local().Format(dateFormat)})
			ids = append(ids, c.ID)
		}
		return rows, ids, nil
	}
}

func itemRows(svc Services) rowLoader {
	return func(ctx context.Context) ([]table.Row, []string, error) {
		items, err := svc.Items.List(ctx, true)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]table.Row, 0, len(items))
		ids := make([]string, 0, len(items))
		for _, it := range items {
			status := "active"
			if !it.Active {
				status = "retired"
			}
			rows = append(rows, table.Row{it.Name, it.Category, domain.FormatCents(it.DailyRate), status})
			ids = append(ids, it.ID)
		}
		return rows, ids, nil
	}
}

func rentalColumns() []table.Column {
	return []table.Column{
		{Title: "Item", Width: 20},
		{Title: "Customer", Width: 20},
		{Title: "Start", Width: 10},
		{Title: "Due", Width: 10},
		{Title: "Status", Width: 14},
		{Title: "Amount", Width: 9},
		{Title: "Operator", Width: 10},
	}
}

func rentalRows(svc Services, clock ports.Clock, status domain.RentalStatus) rowLoader {
	return func(ctx context.Context) ([]table.Row, []string, error) {
		now := clock.Now()
		var rentals []domain.Rental
		var names nameIndex

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			rentals, err = svc.Rentals.List(gctx, domain.RentalFilter{Now: now, Status: status})
			return err
		})
		g.Go(func() error {
			var err error
			names, err = loadNames(gctx, svc)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}

		rows := make([]table.Row, 0, len(rentals))
		ids := make([]string, 0, len(rentals))
		for _, r := range rentals {
			rows = append(rows, table.Row{
				names.items[r.ItemID],
				names.customers[r.CustomerID],
				r.StartDate.Local().Format(dateFormat),
				r.DueDate.Local().Format(dateFormat),
				rentalStatus(r, now),
				domain.FormatCents(r.Amount(now)),
				r.Operator,
			})
			ids = append(ids, r.ID)
		}
		return rows, ids, nil
	}
}

func rentalStatus(r domain.Rental, now time.Time) string {
	switch {
	case r.IsReturned():
		return "returned"
	case r.IsOverdue(now):
		return "overdue " + strconv.Itoa(r.DaysOverdue(now)) + "d"
	}
	return "out"
}

func reservationRows(svc Services) rowLoader {
	return func(ctx context.Context) ([]table.Row, []string, error) {
		var reservations []domain.Reservation
		var names nameIndex

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			reservations, err = svc.Reservations.List(gctx, "")
			return err
		})
		g.Go(func() error {
			var err error
			names, err = loadNames(gctx, svc)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}

		rows := make([]table.Row, 0, len(reservations))
		ids := make([]string, 0, len(reservations))
		for _, r := range reservations {
			rows = append(rows, table.Row{
				names.items[r.ItemID],
				names.customers[r.CustomerID],
				r.From.Format(dateFormat),
				r.To.Format(dateFormat),
				r.Operator,
			})
			ids = append(ids, r.ID)
		}
		return rows, ids, nil
	}
}

// nameIndex maps ids to display names
type nameIndex struct {
	customers map[string]string
	items     map[string]string
}

func loadNames(ctx context.Context, svc Services) (nameIndex, error) {
	idx := nameIndex{customers: map[string]string{}, items: map[string]string{}}

	customers, err := svc.Customers.List(ctx)
	if err != nil {
		return idx, err
	}
	for _, c := range customers {
		idx.customers[c.ID] = c.Name
	}

	items, err := svc.Items.List(ctx, true)
	if err != nil {
		return idx, err
	}
	for _, it := range items {
		idx.items[it.ID] = it.Name
	}
	return idx, nil
}
