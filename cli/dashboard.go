package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bistro-api/models"
	"bistro-api/service"
)

// bistro dashboard
func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print order and reservation statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(app *App) error {
				stats := service.BuildDashboard(app.Orders.Summary(), app.Reservations.Summary())

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
				fmt.Fprintf(w, "Total orders\t%d\n", stats.TotalOrders)
				fmt.Fprintf(w, "Pending orders\t%d\n", stats.PendingOrders)
				fmt.Fprintf(w, "Total reservations\t%d\n", stats.TotalReservations)
				fmt.Fprintf(w, "Pending reservations\t%d\n", stats.PendingReservations)
				fmt.Fprintf(w, "Expected guests\t%d\n", stats.ExpectedGuests)
				fmt.Fprintf(w, "Revenue\t%s\n", stats.Revenue.StringFixed(2))
				fmt.Fprintln(w, "\t")
				for _, s := range models.OrderStatuses {
					fmt.Fprintf(w, "orders %s\t%d\n", s, stats.Orders.ByStatus[s])
				}
				for _, s := range models.ReservationStatuses {
					fmt.Fprintf(w, "reservations %s\t%d\n", s, stats.Reservations.ByStatus[s])
				}
				return w.Flush()
			})
		},
	}
}
