package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/openlabs/spree-go/pkg/spree"
)

// NewShipmentsCommand creates the shipments command group. Every subcommand
// is scoped to one order via --order.
func NewShipmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shipments",
		Aliases: []string{"shipment"},
		Short:   "Manage shipments",
		Long:    "List, update, and transition shipments for an order",
	}

	cmd.AddCommand(newShipmentsListCommand())
	cmd.AddCommand(newShipmentsGetCommand())
	cmd.AddCommand(newShipmentsUpdateCommand())
	cmd.AddCommand(newShipmentsReadyCommand())
	cmd.AddCommand(newShipmentsShipCommand())
	cmd.AddCommand(newShipmentsAddCommand())
	cmd.AddCommand(newShipmentsRemoveCommand())

	return cmd
}

func addOrderFlag(cmd *cobra.Command, orderNumber *string) {
	cmd.Flags().StringVar(orderNumber, "order", "", "order number, e.g. R123456789")
	_ = cmd.MarkFlagRequired("order")
}

func requireOrder(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberRequired
	}

	return nil
}

func newShipmentsListCommand() *cobra.Command {
	var orderNumber string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shipments for an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOrder(orderNumber); err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			page, err := client.Shipments(orderNumber).List(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to list shipments for order '%s': %w", orderNumber, err)
			}

			shipments, err := collectPages(ctx, page, true)
			if err != nil {
				return err
			}

			return renderOutput(shipments, func() error {
				if len(shipments) == 0 {
					_, _ = os.Stdout.WriteString("No shipments found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Number", "State", "Tracking", "Location", "Shipped At")

				for _, shipment := range shipments {
					_ = table.Append(
						shipment.Number,
						shipment.State,
						shipment.Tracking,
						shipment.StockLocationName,
						shipment.ShippedAt,
					)
				}

				_ = table.Render()

				return nil
			})
		},
	}

	addOrderFlag(cmd, &orderNumber)

	return cmd
}

func newShipmentsGetCommand() *cobra.Command {
	var orderNumber string

	cmd := &cobra.Command{
		Use:   "get SHIPMENT_NUMBER",
		Short: "Get shipment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOrder(orderNumber); err != nil {
				return err
			}

			number := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			shipment, err := client.Shipments(orderNumber).Get(context.Background(), number)
			if err != nil {
				return fmt.Errorf("failed to get shipment '%s': %w", number, err)
			}

			return renderOutput(shipment, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Number", shipment.Number)
				_ = table.Append("State", shipment.State)
				_ = table.Append("Tracking", shipment.Tracking)
				_ = table.Append("Location", shipment.StockLocationName)
				_ = table.Append("Shipped At", shipment.ShippedAt)

				_ = table.Render()

				return nil
			})
		},
	}

	addOrderFlag(cmd, &orderNumber)

	return cmd
}

func newShipmentsUpdateCommand() *cobra.Command {
	var (
		orderNumber string
		tracking    string
	)

	cmd := &cobra.Command{
		Use:   "update SHIPMENT_NUMBER",
		Short: "Update a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOrder(orderNumber); err != nil {
				return err
			}

			number := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &spree.ShipmentUpdateRequest{}
			if cmd.Flags().Changed("tracking") {
				request.Tracking = spree.String(tracking)
			}

			shipment, err := client.Shipments(orderNumber).Update(context.Background(), number, request)
			if err != nil {
				return fmt.Errorf("failed to update shipment '%s': %w", number, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Updated shipment %s (state %s)\n", shipment.Number, shipment.State)

			return nil
		},
	}

	addOrderFlag(cmd, &orderNumber)
	cmd.Flags().StringVar(&tracking, "tracking", "", "tracking number")

	return cmd
}

func newShipmentsReadyCommand() *cobra.Command {
	var orderNumber string

	cmd := &cobra.Command{
		Use:   "ready SHIPMENT_NUMBER",
		Short: "Mark a shipment ready",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOrder(orderNumber); err != nil {
				return err
			}

			number := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			shipment, err := client.Shipments(orderNumber).Ready(context.Background(), number, nil)
			if err != nil {
				return fmt.Errorf("failed to ready shipment '%s': %w", number, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Shipment %s is now %s\n", shipment.Number, shipment.State)

			return nil
		},
	}

	addOrderFlag(cmd, &orderNumber)

	return cmd
}

func newShipmentsShipCommand() *cobra.Command {
	var (
		orderNumber string
		tracking    string
	)

	cmd := &cobra.Command{
		Use:   "ship SHIPMENT_NUMBER",
		Short: "Ship a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireOrder(orderNumber); err != nil {
				return err
			}

			number := args[0]

			client, err := CreateClient()
			if err != nil {
				return err
			}

			var request *spree.ShipmentUpdateRequest
			if cmd.Flags().Changed("tracking") {
				request = &spree.ShipmentUpdateRequest{Tracking: spree.String(tracking)}
			}

			shipment, err := client.Shipments(orderNumber).Ship(context.Background(), number, request)
			if err != nil {
				return fmt.Errorf("failed to ship shipment '%s': %w", number, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Shipment %s is now %s\n", shipment.Number, shipment.State)

			return nil
		},
	}

	addOrderFlag(cmd, &orderNumber)
	cmd.Flags().StringVar(&tracking, "tracking", "", "tracking number")

	return cmd
}

func newShipmentsAddCommand() *cobra.Command {
	var (
		orderNumber string
		variantID   int64
		quantity    int
	)

	cmd := &cobra.Command{
		Use:   "add SHIPMENT_NUMBER",
		Short: "Add a variant to a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShipmentItemCommand(orderNumber, args[0], variantID, quantity, true)
		},
	}

	addOrderFlag(cmd, &orderNumber)
	addShipmentItemFlags(cmd, &variantID, &quantity)

	return cmd
}

func newShipmentsRemoveCommand() *cobra.Command {
	var (
		orderNumber string
		variantID   int64
		quantity    int
	)

	cmd := &cobra.Command{
		Use:   "remove SHIPMENT_NUMBER",
		Short: "Remove a variant from a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShipmentItemCommand(orderNumber, args[0], variantID, quantity, false)
		},
	}

	addOrderFlag(cmd, &orderNumber)
	addShipmentItemFlags(cmd, &variantID, &quantity)

	return cmd
}

func addShipmentItemFlags(cmd *cobra.Command, variantID *int64, quantity *int) {
	cmd.Flags().Int64Var(variantID, "variant", 0, "variant id")
	cmd.Flags().IntVar(quantity, "quantity", 1, "quantity")
	_ = cmd.MarkFlagRequired("variant")
}

func runShipmentItemCommand(orderNumber, number string, variantID int64, quantity int, add bool) error {
	if err := requireOrder(orderNumber); err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	request := &spree.ShipmentItemRequest{VariantID: variantID, Quantity: quantity}
	ctx := context.Background()

	var shipment *spree.Shipment
	if add {
		shipment, err = client.Shipments(orderNumber).Add(ctx, number, request)
	} else {
		shipment, err = client.Shipments(orderNumber).Remove(ctx, number, request)
	}

	if err != nil {
		action := "add variant to"
		if !add {
			action = "remove variant from"
		}

		return fmt.Errorf("failed to %s shipment '%s': %w", action, number, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Shipment %s updated (variant %d, quantity %d)\n", shipment.Number, variantID, quantity)

	return nil
}
