package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newOrdersSaveCmd() *cobra.Command {
	var (
		orderID    int
		number     string
		date       string
		items      []string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or edit an order",
		Long: "Compose an order from product lines and persist it. Without --id a new order " +
			"is created; with --id the existing order is loaded and edited. Each --item is " +
			"productID:qty; qty 0 removes the line.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBackendClient()
			if err != nil {
				return err
			}
			orderSvc := application.NewOrderService(client, client)
			catalogSvc := application.NewCatalogService(client)
			ctx := cmd.Context()

			// Load or start the edit session.
			mode := application.SaveCreate
			header := domain.Order{}
			composer := domain.NewComposer(0)
			if orderID != 0 {
				mode = application.SaveUpdate
				detail, err := orderSvc.Load(ctx, orderID)
				if err != nil {
					return fmt.Errorf("loading order %d: %w", orderID, err)
				}
				header = detail.Order
				composer = domain.NewComposerWith(orderID, detail.Items)
			}
			if number != "" {
				header.OrderNumber = number
			}
			if date != "" {
				header.OrderDate = date
			}

			// Apply the line edits. New products are looked up in the
			// catalog so their name and price are copied now.
			for _, spec := range items {
				productID, qty, err := parseItemSpec(spec)
				if err != nil {
					return err
				}
				if composer.Contains(productID) || qty <= 0 {
					composer.SetQuantity(productID, qty)
					continue
				}
				product, err := catalogSvc.Get(ctx, productID)
				if err != nil {
					return fmt.Errorf("looking up product %d: %w", productID, err)
				}
				composer.AddOrIncrement(product)
				composer.SetQuantity(productID, qty)
			}

			order, err := orderSvc.Save(ctx, mode, header, composer.Items())

			var partial *domain.PartialSaveError
			switch {
			case errors.As(err, &partial):
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPartialSave(partial))
				return err
			case err != nil:
				return fmt.Errorf("saving order: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, order)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSaveResult(order, composer.Len()))
			return nil
		},
	}

	cmd.Flags().IntVar(&orderID, "id", 0, "Order id to edit (omit to create)")
	cmd.Flags().StringVar(&number, "number", "", "Order number")
	cmd.Flags().StringVar(&date, "date", "", "Order date (YYYY-MM-DD, defaults to today on create)")
	cmd.Flags().StringArrayVar(&items, "item", nil, "Order line as productID:qty (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the saved order as JSON")

	return cmd
}
