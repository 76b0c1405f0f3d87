package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/tui"
	"github.com/orderdesk/orderdesk/internal/application"
	"github.com/orderdesk/orderdesk/internal/domain"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
	}
	cmd.AddCommand(newProductsListCmd())
	cmd.AddCommand(newProductsSaveCmd())
	cmd.AddCommand(newProductsDeleteCmd())
	return cmd
}

func newProductsListCmd() *cobra.Command {
	var (
		search     string
		sortBy     string
		desc       bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products with catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := domain.SortKey(sortBy)
			if key != domain.SortByName && key != domain.SortByPrice {
				return fmt.Errorf("invalid --sort %q, expected name or unit_price", sortBy)
			}
			order := domain.SortAsc
			if desc {
				order = domain.SortDesc
			}

			client, err := newBackendClient()
			if err != nil {
				return err
			}
			svc := application.NewCatalogService(client)

			view, err := svc.Browse(cmd.Context(), application.CatalogQuery{
				Search: search,
				SortBy: key,
				Order:  order,
			})
			if err != nil {
				return fmt.Errorf("loading products: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, view)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProducts(view.Products, view.Stats))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by name substring")
	cmd.Flags().StringVar(&sortBy, "sort", "name", "Sort key: name or unit_price")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newProductsSaveCmd() *cobra.Command {
	var (
		productID  int
		name       string
		price      string
		image      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create or update a product",
		Long:  "Validate and persist a product. Without --id a new product is created; with --id the existing product is updated.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newBackendClient()
			if err != nil {
				return err
			}
			svc := application.NewProductService(client)

			form := domain.ProductForm{Name: name, UnitPrice: price, ImageURL: image}

			var product domain.Product
			if productID != 0 {
				product, err = svc.Update(cmd.Context(), productID, form)
			} else {
				product, err = svc.Create(cmd.Context(), form)
			}

			var verr *domain.ValidationError
			switch {
			case errors.As(err, &verr):
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(verr))
				return err
			case err != nil:
				return fmt.Errorf("saving product: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, product)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderProductSaved(product, productID == 0))
			return nil
		},
	}

	cmd.Flags().IntVar(&productID, "id", 0, "Product id to update (omit to create)")
	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&price, "price", "", "Unit price")
	cmd.Flags().StringVar(&image, "image", "", "Image URL")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the saved product as JSON")

	return cmd
}

func newProductsDeleteCmd() *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if !confirm(cmd, assumeYes, fmt.Sprintf("Delete product %d?", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			client, err := newBackendClient()
			if err != nil {
				return err
			}
			svc := application.NewProductService(client)

			if err := svc.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("deleting product %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %d.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&assumeYes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
