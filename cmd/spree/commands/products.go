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

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products",
		Long:    "List, inspect, create, update, and delete Spree products",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())
	cmd.AddCommand(newProductsCreateCommand())
	cmd.AddCommand(newProductsUpdateCommand())
	cmd.AddCommand(newProductsDeleteCommand())

	return cmd
}

// ProductsListOptions holds the options for listing products.
type ProductsListOptions struct {
	AllPages bool
	Page     int
	PerPage  int
	Filters  []string
}

func newProductsListCommand() *cobra.Command {
	var opts ProductsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List products, optionally filtered with ransack predicates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProductsListCommand(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "page to fetch")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
	cmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "ransack filter, e.g. name_cont=shirt (repeatable)")

	return cmd
}

func runProductsListCommand(opts ProductsListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	filters, err := parseFilters(opts.Filters)
	if err != nil {
		return err
	}

	params := &spree.QueryParams{Page: opts.Page, PerPage: opts.PerPage, Filters: filters}
	ctx := context.Background()

	page, err := client.Products().List(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	products, err := collectPages(ctx, page, opts.AllPages)
	if err != nil {
		return err
	}

	return renderOutput(products, func() error {
		if len(products) == 0 {
			_, _ = os.Stdout.WriteString("No products found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Price", "Slug", "On Hand")

		for _, product := range products {
			_ = table.Append(
				strconv.FormatInt(product.ID, 10),
				product.Name,
				product.Price,
				product.Slug,
				strconv.Itoa(product.TotalOnHand),
			)
		}

		_ = table.Render()
		pageFooter(page.CurrentPage, page.Pages, opts.AllPages)

		return nil
	})
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			product, err := client.Products().Get(context.Background(), productID)
			if err != nil {
				return fmt.Errorf("failed to get product %d: %w", productID, err)
			}

			return renderOutput(product, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.FormatInt(product.ID, 10))
				_ = table.Append("Name", product.Name)
				_ = table.Append("Price", product.Price)
				_ = table.Append("Slug", product.Slug)
				_ = table.Append("Available On", product.AvailableOn)
				_ = table.Append("On Hand", strconv.Itoa(product.TotalOnHand))
				_ = table.Append("Master SKU", product.Master.SKU)

				_ = table.Render()

				return nil
			})
		},
	}
}

// ProductAttributeOptions holds the attribute flags shared by product create
// and update.
type ProductAttributeOptions struct {
	Name        string
	Price       string
	SKU         string
	Description string
	AvailableOn string
	CostPrice   string
	ShippingCat int64
}

func addProductAttributeFlags(cmd *cobra.Command, opts *ProductAttributeOptions) {
	cmd.Flags().StringVar(&opts.Name, "name", "", "product name")
	cmd.Flags().StringVar(&opts.Price, "price", "", "product price")
	cmd.Flags().StringVar(&opts.SKU, "sku", "", "master variant SKU")
	cmd.Flags().StringVar(&opts.Description, "description", "", "product description")
	cmd.Flags().StringVar(&opts.AvailableOn, "available-on", "", "availability date")
	cmd.Flags().StringVar(&opts.CostPrice, "cost-price", "", "cost price")
	cmd.Flags().Int64Var(&opts.ShippingCat, "shipping-category-id", 0, "shipping category id")
}

func newProductsCreateCommand() *cobra.Command {
	var opts ProductAttributeOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &spree.ProductCreateRequest{Name: opts.Name}
			if opts.Price != "" {
				request.Price = spree.String(opts.Price)
			}

			if opts.SKU != "" {
				request.SKU = spree.String(opts.SKU)
			}

			if opts.Description != "" {
				request.Description = spree.String(opts.Description)
			}

			if opts.AvailableOn != "" {
				request.AvailableOn = spree.String(opts.AvailableOn)
			}

			if opts.CostPrice != "" {
				request.CostPrice = spree.String(opts.CostPrice)
			}

			if opts.ShippingCat > 0 {
				request.ShippingCategoryID = spree.Int64(opts.ShippingCat)
			}

			product, err := client.Products().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create product: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Created product %d (%s)\n", product.ID, product.Name)

			return nil
		},
	}

	addProductAttributeFlags(cmd, &opts)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProductsUpdateCommand() *cobra.Command {
	var opts ProductAttributeOptions

	cmd := &cobra.Command{
		Use:   "update PRODUCT_ID",
		Short: "Update a product",
		Long:  "Update a product; only the given attribute flags are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &spree.ProductUpdateRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = spree.String(opts.Name)
			}

			if cmd.Flags().Changed("price") {
				request.Price = spree.String(opts.Price)
			}

			if cmd.Flags().Changed("sku") {
				request.SKU = spree.String(opts.SKU)
			}

			if cmd.Flags().Changed("description") {
				request.Description = spree.String(opts.Description)
			}

			if cmd.Flags().Changed("available-on") {
				request.AvailableOn = spree.String(opts.AvailableOn)
			}

			if cmd.Flags().Changed("cost-price") {
				request.CostPrice = spree.String(opts.CostPrice)
			}

			if cmd.Flags().Changed("shipping-category-id") {
				request.ShippingCategoryID = spree.Int64(opts.ShippingCat)
			}

			product, err := client.Products().Update(context.Background(), productID, request)
			if err != nil {
				return fmt.Errorf("failed to update product %d: %w", productID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated product %d (%s)\n", product.ID, product.Name)

			return nil
		},
	}

	addProductAttributeFlags(cmd, &opts)

	return cmd
}

func newProductsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PRODUCT_ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Products().Delete(context.Background(), productID)
			if err != nil {
				return fmt.Errorf("failed to delete product %d: %w", productID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Deleted product %d\n", productID)

			return nil
		},
	}
}
