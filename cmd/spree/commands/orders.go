package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/openlabs/spree-go/pkg/spree"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
		Long:    "List and inspect Spree orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())

	return cmd
}

// OrdersListOptions holds the options for listing orders.
type OrdersListOptions struct {
	AllPages bool
	Page     int
	PerPage  int
	Filters  []string
	State    string
}

func newOrdersListCommand() *cobra.Command {
	var opts OrdersListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrdersListCommand(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&opts.State, "state", "", "filter by order state, e.g. complete")
	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "ransack filter, e.g. email_cont=@example.com (repeatable)")

	return cmd
}

func runOrdersListCommand(opts OrdersListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	filters, err := parseFilters(opts.Filters)
	if err != nil {
		return err
	}

	if opts.State != "" {
		filters["state_eq"] = opts.State
	}

	params := &spree.QueryParams{Page: opts.Page, PerPage: opts.PerPage, Filters: filters}
	ctx := context.Background()

	page, err := client.Orders().List(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := collectPages(ctx, page, opts.AllPages)
	if err != nil {
		return err
	}

	return renderOutput(orders, func() error {
		if len(orders) == 0 {
			_, _ = os.Stdout.WriteString("No orders found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Number", "State", "Email", "Total", "Completed At")

		for _, order := range orders {
			_ = table.Append(order.Number, order.State, order.Email, order.Total, order.CompletedAt)
		}

		_ = table.Render()
		pageFooter(page.CurrentPage, page.Pages, opts.AllPages)

		return nil
	})
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_NUMBER",
		Short: "Get order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(context.Background(), number)
			if err != nil {
				return fmt.Errorf("failed to get order '%s': %w", number, err)
			}

			return renderOutput(order, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Number", order.Number)
				_ = table.Append("State", order.State)
				_ = table.Append("Email", order.Email)
				_ = table.Append("Item Total", order.ItemTotal)
				_ = table.Append("Ship Total", order.ShipTotal)
				_ = table.Append("Total", order.Total)
				_ = table.Append("Currency", order.Currency)
				_ = table.Append("Payment State", order.PaymentState)
				_ = table.Append("Shipment State", order.ShipmentState)
				_ = table.Append("Completed At", order.CompletedAt)

				_ = table.Render()

				return nil
			})
		},
	}
}
