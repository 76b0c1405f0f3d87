package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
		Long:  "List, inspect, compose, and delete orders, and cycle their status.",
	}
	cmd.AddCommand(newOrdersListCmd())
	cmd.AddCommand(newOrdersShowCmd())
	cmd.AddCommand(newOrdersSaveCmd())
	cmd.AddCommand(newOrdersStatusCmd())
	cmd.AddCommand(newOrdersDeleteCmd())
	return cmd
}

func newOrdersListCmd() *cobra.Command {
	var (
		search     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders with aggregate statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBackendClient()
			if err != nil {
				return err
			}
			svc := application.NewOrderService(client, client)

			view, err := svc.Overview(cmd.Context(), search)
			if err != nil {
				return fmt.Errorf("loading orders: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, view)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrders(view.Orders, view.Stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by order number or id substring")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newOrdersShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newBackendClient()
			if err != nil {
				return err
			}
			svc := application.NewOrderService(client, client)

			detail, err := svc.Load(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("loading order %d: %w", id, err)
			}

			if jsonOutput {
				return renderJSON(cmd, detail)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrderDetail(detail.Order, detail.Items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newOrdersStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Cycle an order's status one step",
		Long:  "Advance the order status along the fixed cycle Pending → InProgress → Completed → Pending and persist the change.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newBackendClient()
			if err != nil {
				return err
			}
			svc := application.NewOrderService(client, client)

			prev, next, err := svc.Cycle(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("changing status of order %d: %w", id, err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatusChange(id, prev, next))
			return nil
		},
	}
}

func newOrdersDeleteCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(cmd, assumeYes, fmt.Sprintf("Delete order %d?", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			client, err := newBackendClient()
			if err != nil {
				return err
			}
			svc := application.NewOrderService(client, client)

			if err := svc.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("deleting order %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted order %d.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&assumeYes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
