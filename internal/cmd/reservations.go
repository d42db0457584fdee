package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/rentdesk/rentdesk/internal/services"
)

// ReservationsCmd manages reservations
type ReservationsCmd struct {
	Add  ReservationsAddCmd  `cmd:"add" help:"Hold an item for a date range"`
	List ReservationsListCmd `cmd:"list" help:"List reservations" default:"1"`
}

// ReservationsListCmd lists reservations
type ReservationsListCmd struct {
	Item string `help:"Only reservations of this item ID"`
}

// ReservationsAddCmd holds an item
type ReservationsAddCmd struct {
	CustomerID string `arg:"" help:"Customer ID"`
	From       string `help:"First day (YYYY-MM-DD)" required:""`
	ItemID     string `arg:"" help:"Item ID"`
	Operator   string `help:"Operator recorded on the reservation" env:"RENTDESK_OPERATOR"`
	To         string `help:"Last day (YYYY-MM-DD)" required:""`
}

// Run executes the list command
func (r *ReservationsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	reservations, err := cli.Container.ReservationService.List(ctx, r.Item)
	if err != nil {
		return fmt.Errorf("failed to list reservations: %w", err)
	}

	out := cli.stdout()
	if len(reservations) == 0 {
		fmt.Fprintln(out, "No reservations match.")
		return nil
	}

	names, err := loadEntityNames(ctx, cli.Container)
	if err != nil {
		return fmt.Errorf("failed to list reservations: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tITEM\tFROM\tTO\tOPERATOR")
	for _, res := range reservations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			res.ID,
			names.customer(res.CustomerID),
			names.item(res.ItemID),
			res.From.Format(dateLayout),
			res.To.Format(dateLayout),
			res.Operator)
	}
	return w.Flush()
}

// Run executes the add command
func (r *ReservationsAddCmd) Run(cli *CLI) error {
	from, err := time.Parse(dateLayout, r.From)
	if err != nil {
		return fmt.Errorf("invalid --from: %w", err)
	}
	to, err := time.Parse(dateLayout, r.To)
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}

	reservation, err := cli.Container.ReservationService.Create(context.Background(), services.CreateReservationParams{
		CustomerID: r.CustomerID,
		From:       from,
		ItemID:     r.ItemID,
		Operator:   r.Operator,
		To:         to,
	})
	if err != nil {
		return fmt.Errorf("failed to add reservation: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "Reservation %s holds the item %s to %s\n",
		reservation.ID, reservation.From.Format(dateLayout), reservation.To.Format(dateLayout))
	return nil
}
