package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bistro-api/models"
	"bistro-api/statemachine"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List and advance kitchen orders",
	}
	cmd.AddCommand(newOrdersListCmd(), newOrdersAdvanceCmd())
	return cmd
}

// bistro orders list [--status pending]
func newOrdersListCmd() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := models.OrderStatus(status)
			if s != "" && !statemachine.Orders.IsValid(s) {
				return fmt.Errorf("order status %q: %w", status, statemachine.ErrUnknownStatus)
			}
			return withApp(cmd.Context(), func(app *App) error {
				orders := app.Orders.List(s)
				if len(orders) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No orders.")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "ID\tSTATUS\tTYPE\tCUSTOMER\tITEMS\tTOTAL\tCREATED")
				for _, o := range orders {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
						o.ID, o.Status, o.OrderType, o.Customer.Name, len(o.Items),
						o.Total.StringFixed(2), o.CreatedAt.Format("2006-01-02 15:04"))
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only show orders in this status")
	return cmd
}

// bistro orders advance <id> <status>
func newOrdersAdvanceCmd() *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   "advance <id> <status>",
		Short: "Move an order to its next status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(app *App) error {
				order, prev, err := app.Orders.Transition(cmd.Context(), args[0], models.OrderStatus(args[1]), statemachine.ActorOperator, note)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Order %s: %s -> %s\n", order.ID, prev, order.Status)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "note stored in the status history")
	return cmd
}
