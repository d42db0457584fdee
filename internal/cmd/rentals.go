package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/services"
)

const dateLayout = "2006-01-02"

// RentalsCmd manages rentals
type RentalsCmd struct {
	Add    RentalsAddCmd    `cmd:"add" help:"Check an item out to a customer"`
	List   RentalsListCmd   `cmd:"list" help:"List rentals" default:"1"`
	Return RentalsReturnCmd `cmd:"return" help:"Check a rental back in"`
}

// RentalsListCmd lists rentals
type RentalsListCmd struct {
	Customer string `help:"Only rentals of this customer ID"`
	Overdue  bool   `help:"Only overdue rentals"`
	Status   string `help:"Filter by status" enum:"all,active,returned,overdue" default:"all"`
}

// RentalsAddCmd checks an item out
type RentalsAddCmd struct {
	CustomerID string `arg:"" help:"Customer ID"`
	Days       int    `help:"Rental days, including today" default:"1"`
	ItemID     string `arg:"" help:"Item ID"`
	Operator   string `help:"Operator recorded on the rental" env:"RENTDESK_OPERATOR"`
}

// RentalsReturnCmd checks a rental back in
type RentalsReturnCmd struct {
	ID string `arg:"" help:"Rental ID"`
}

// Run executes the list command
func (r *RentalsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	filter := domain.RentalFilter{CustomerID: r.Customer}
	switch {
	case r.Overdue:
		filter.Status = domain.RentalOverdue
	case r.Status != "all":
		filter.Status = domain.RentalStatus(r.Status)
	}

	var (
		rentals []domain.Rental
		names   entityNames
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rentals, err = cli.Container.RentalService.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		names, err = loadEntityNames(gctx, cli.Container)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to list rentals: %w", err)
	}

	out := cli.stdout()
	if len(rentals) == 0 {
		fmt.Fprintln(out, "No rentals match.")
		return nil
	}

	now := cli.Container.Clock.Now()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tITEM\tSTART\tDUE\tSTATUS\tAMOUNT\tOPERATOR")
	for _, rental := range rentals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rental.ID,
			names.customer(rental.CustomerID),
			names.item(rental.ItemID),
			rental.StartDate.Format(dateLayout),
			rental.DueDate.Format(dateLayout),
			rentalStatus(rental, now),
			domain.FormatCents(rental.Amount(now)),
			rental.Operator)
	}
	return w.Flush()
}

// Run executes the add command
func (r *RentalsAddCmd) Run(cli *CLI) error {
	rental, err := cli.Container.RentalService.Create(context.Background(), services.CreateRentalParams{
		CustomerID: r.CustomerID,
		Days:       r.Days,
		ItemID:     r.ItemID,
		Operator:   r.Operator,
	})
	if err != nil {
		return fmt.Errorf("failed to add rental: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "Rental %s due %s\n", rental.ID, rental.DueDate.Format(dateLayout))
	return nil
}

// Run executes the return command
func (r *RentalsReturnCmd) Run(cli *CLI) error {
	result, err := cli.Container.RentalService.Return(context.Background(), r.ID)
	if err != nil {
		return fmt.Errorf("failed to return rental: %w", err)
	}

	out := cli.stdout()
	fmt.Fprintf(out, "Rental %s returned, amount due %s\n", r.ID, domain.FormatCents(result.Amount))
	if result.DaysOverdue > 0 {
		fmt.Fprintf(out, "Returned %d day(s) late\n", result.DaysOverdue)
	}
	return nil
}

func rentalStatus(r domain.Rental, now time.Time) string {
	switch {
	case r.IsReturned():
		return string(domain.RentalReturned)
	case r.IsOverdue(now):
		return string(domain.RentalOverdue)
	default:
		return string(domain.RentalActive)
	}
}

// entityNames resolves customer and item IDs for listings
type entityNames struct {
	customers map[string]string
	items     map[string]string
}

func (n entityNames) customer(id string) string {
	if name, ok := n.customers[id]; ok {
		return name
	}
	return id
}

func (n entityNames) item(id string) string {
	if name, ok := n.items[id]; ok {
		return name
	}
	return id
}

func loadEntityNames(ctx context.Context, c *Container) (entityNames, error) {
	names := entityNames{customers: make(map[string]string), items: make(map[string]string)}

	customers, err := c.CustomerService.List(ctx)
	if err != nil {
		return names, err
	}
	for _, cu := range customers {
		names.customers[cu.ID] = cu.Name
	}

	items, err := c.ItemService.List(ctx, true)
	if err != nil {
		return names, err
	}
	for _, it := range items {
		names.items[it.ID] = it.Name
	}
	return names, nil
}
