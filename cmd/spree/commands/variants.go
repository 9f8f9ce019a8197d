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

// NewVariantsCommand creates the variants command group.
func NewVariantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "variants",
		Aliases: []string{"variant"},
		Short:   "Manage variants",
		Long:    "List and inspect product variants, scoped to one product or across the catalog",
	}

	cmd.AddCommand(newVariantsListCommand())
	cmd.AddCommand(newVariantsGetCommand())

	return cmd
}

// VariantsListOptions holds the options for listing variants.
type VariantsListOptions struct {
	ProductID int64
	AllPages  bool
	PerPage   int
	Filters   []string
}

func newVariantsListCommand() *cobra.Command {
	var opts VariantsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List variants",
		Long:  "List variants of one product (--product) or across the whole catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariantsListCommand(opts)
		},
	}

	cmd.Flags().Int64Var(&opts.ProductID, "product", 0, "scope to this product id")
	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "ransack filter, e.g. sku_cont=RUB (repeatable)")

	return cmd
}

func runVariantsListCommand(opts VariantsListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	filters, err := parseFilters(opts.Filters)
	if err != nil {
		return err
	}

	params := &spree.QueryParams{PerPage: opts.PerPage, Filters: filters}
	ctx := context.Background()

	page, err := client.Variants(opts.ProductID).List(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to list variants: %w", err)
	}

	variants, err := collectPages(ctx, page, opts.AllPages)
	if err != nil {
		return err
	}

	return renderOutput(variants, func() error {
		if len(variants) == 0 {
			_, _ = os.Stdout.WriteString("No variants found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "SKU", "Price", "Product ID", "In Stock")

		for _, variant := range variants {
			_ = table.Append(
				strconv.FormatInt(variant.ID, 10),
				variant.SKU,
				variant.Price,
				strconv.FormatInt(variant.ProductID, 10),
				strconv.FormatBool(variant.InStock),
			)
		}

		_ = table.Render()
		pageFooter(page.CurrentPage, page.Pages, opts.AllPages)

		return nil
	})
}

func newVariantsGetCommand() *cobra.Command {
	var productID int64

	cmd := &cobra.Command{
		Use:   "get VARIANT_ID",
		Short: "Get variant details",
		Long:  "Get a variant by id, scoped to a product with --product or resolved catalog-wide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variantID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid variant id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			variant, err := client.Variants(productID).Get(context.Background(), variantID)
			if err != nil {
				return fmt.Errorf("failed to get variant %d: %w", variantID, err)
			}

			return renderOutput(variant, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.FormatInt(variant.ID, 10))
				_ = table.Append("SKU", variant.SKU)
				_ = table.Append("Price", variant.Price)
				_ = table.Append("Product ID", strconv.FormatInt(variant.ProductID, 10))
				_ = table.Append("Options", variant.OptionsText)
				_ = table.Append("Master", strconv.FormatBool(variant.IsMaster))
				_ = table.Append("In Stock", strconv.FormatBool(variant.InStock))

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "scope to this product id")

	return cmd
}
