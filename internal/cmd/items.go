package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/rentdesk/rentdesk/internal/domain"
	"github.com/rentdesk/rentdesk/internal/services"
)

// ItemsCmd manages the item catalogue
type ItemsCmd struct {
	Add  ItemsAddCmd  `cmd:"add" help:"Add an item to the catalogue"`
	List ItemsListCmd `cmd:"list" help:"List items" default:"1"`
}

// ItemsListCmd lists items
type ItemsListCmd struct {
	All bool `help:"Include retired items"`
}

// ItemsAddCmd adds an item
type ItemsAddCmd struct {
	Category  string `help:"Item category" default:"general"`
	DailyRate int64  `help:"Daily rate in cents" name:"rate" required:""`
	Name      string `arg:"" help:"Item name"`
}

// Run executes the list command
func (i *ItemsListCmd) Run(cli *CLI) error {
	items, err := cli.Container.ItemService.List(context.Background(), i.All)
	if err != nil {
		return fmt.Errorf("failed to list items: %w", err)
	}

	out := cli.stdout()
	if len(items) == 0 {
		fmt.Fprintln(out, "No items yet. Add one with 'rentdesk items add'.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tRATE/DAY\tACTIVE")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", it.ID, it.Name, it.Category, domain.FormatCents(it.DailyRate), it.Active)
	}
	return w.Flush()
}

// Run executes the add command
func (i *ItemsAddCmd) Run(cli *CLI) error {
	item, err := cli.Container.ItemService.Create(context.Background(), services.CreateItemParams{
		Category:  i.Category,
		DailyRate: i.DailyRate,
		Name:      i.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "Item '%s' added at %s/day (%s)\n", item.Name, domain.FormatCents(item.DailyRate), item.ID)
	return nil
}
