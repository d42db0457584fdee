package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/rentdesk/rentdesk/internal/services"
)

// CustomersCmd manages customers
type CustomersCmd struct {
	Add  CustomersAddCmd  `cmd:"add" help:"Register a customer"`
	List CustomersListCmd `cmd:"list" help:"List customers" default:"1"`
}

// CustomersListCmd lists customers
type CustomersListCmd struct{}

// CustomersAddCmd registers a customer
type CustomersAddCmd struct {
	Email string `help:"Email address (unique)" required:""`
	Name  string `arg:"" help:"Customer name"`
	Phone string `help:"Phone number"`
}

// Run executes the list command
func (c *CustomersListCmd) Run(cli *CLI) error {
	customers, err := cli.Container.CustomerService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	out := cli.stdout()
	if len(customers) == 0 {
		fmt.Fprintln(out, "No customers yet. Add one with 'rentdesk customers add'.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tSINCE")
	for _, cu := range customers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", cu.ID, cu.Name, cu.Email, cu.Phone, cu.CreatedAt.Format(dateLayout))
	}
	return w.Flush()
}

// Run executes the add command
func (c *CustomersAddCmd) Run(cli *CLI) error {
	customer, err := cli.Container.CustomerService.Create(context.Background(), services.CreateCustomerParams{
		Email: c.Email,
		Name:  c.Name,
		Phone: c.Phone,
	})
	if err != nil {
		return fmt.Errorf("failed to add customer: %w", err)
	}

	fmt.Fprintf(cli.stdout(), "Customer '%s' added (%s)\n", customer.Name, customer.ID)
	return nil
}
