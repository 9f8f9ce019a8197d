package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/openlabs/spree-go/pkg/spree"
)

// NewStockItemsCommand creates the stock-items command group. Every
// subcommand is scoped to one stock location via --location.
func NewStockItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stock-items",
		Aliases: []string{"stock-item", "stock"},
		Short:   "Manage stock items",
		Long:    "List and adjust stock levels within a stock location",
	}

	cmd.AddCommand(newStockItemsListCommand())
	cmd.AddCommand(newStockItemsGetCommand())
	cmd.AddCommand(newStockItemsUpdateCommand())

	return cmd
}

func addLocationFlag(cmd *cobra.Command, locationID *int64) {
	cmd.Flags().Int64Var(locationID, "location", 0, "stock location id")
	_ = cmd.MarkFlagRequired("location")
}

func newStockItemsListCommand() *cobra.Command {
	var (
		locationID int64
		allPages   bool
		perPage    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stock items in a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			page, err := client.StockItems(locationID).List(ctx, &spree.QueryParams{PerPage: perPage})
			if err != nil {
				return fmt.Errorf("failed to list stock items: %w", err)
			}

			items, err := collectPages(ctx, page, allPages)
			if err != nil {
				return err
			}

			return renderOutput(items, func() error {
				if len(items) == 0 {
					_, _ = os.Stdout.WriteString("No stock items found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "SKU", "On Hand", "Backorderable")

				for _, item := range items {
					_ = table.Append(
						strconv.FormatInt(item.ID, 10),
						item.Variant.SKU,
						strconv.Itoa(item.CountOnHand),
						strconv.FormatBool(item.Backorderable),
					)
				}

				_ = table.Render()
				pageFooter(page.CurrentPage, page.Pages, allPages)

				return nil
			})
		},
	}

	addLocationFlag(cmd, &locationID)
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func newStockItemsGetCommand() *cobra.Command {
	var locationID int64

	cmd := &cobra.Command{
		Use:   "get STOCK_ITEM_ID",
		Short: "Get stock item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid stock item id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			item, err := client.StockItems(locationID).Get(context.Background(), itemID)
			if err != nil {
				return fmt.Errorf("failed to get stock item %d: %w", itemID, err)
			}

			return renderOutput(item, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.FormatInt(item.ID, 10))
				_ = table.Append("SKU", item.Variant.SKU)
				_ = table.Append("On Hand", strconv.Itoa(item.CountOnHand))
				_ = table.Append("Backorderable", strconv.FormatBool(item.Backorderable))
				_ = table.Append("Location ID", strconv.FormatInt(item.StockLocationID, 10))

				_ = table.Render()

				return nil
			})
		},
	}

	addLocationFlag(cmd, &locationID)

	return cmd
}

func newStockItemsUpdateCommand() *cobra.Command {
	var (
		locationID int64
		count      int
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "update STOCK_ITEM_ID",
		Short: "Adjust a stock item's count",
		Long:  "Adjust a stock item's count on hand; --count is a delta unless --force makes it absolute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid stock item id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &spree.StockItemUpdateRequest{CountOnHand: spree.Int(count)}
			if force {
				request.Force = spree.Bool(true)
			}

			item, err := client.StockItems(locationID).Update(context.Background(), itemID, request)
			if err != nil {
				return fmt.Errorf("failed to update stock item %d: %w", itemID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Stock item %d now has %d on hand\n", item.ID, item.CountOnHand)

			return nil
		},
	}

	addLocationFlag(cmd, &locationID)
	cmd.Flags().IntVar(&count, "count", 0, "count on hand delta (absolute with --force)")
	cmd.Flags().BoolVar(&force, "force", false, "treat --count as the absolute count")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}
