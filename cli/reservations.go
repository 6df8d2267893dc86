package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bistro-api/models"
	"bistro-api/statemachine"
)

func newReservationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List and advance table reservations",
	}
	cmd.AddCommand(newReservationsListCmd(), newReservationsAdvanceCmd())
	return cmd
}

// bistro reservations list [--date 2025-03-10] [--status pending]
func newReservationsListCmd() *cobra.Command {
	var date, status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reservations in booking order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := models.ReservationStatus(status)
			if s != "" && !statemachine.Reservations.IsValid(s) {
				return fmt.Errorf("reservation status %q: %w", status, statemachine.ErrUnknownStatus)
			}
			return withApp(cmd.Context(), func(app *App) error {
				list := app.Reservations.List(s, date)
				if len(list) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No reservations.")
					return nil
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
				fmt.Fprintln(w, "ID\tSTATUS\tDATE\tTIME\tGUESTS\tNAME\tPHONE")
				for _, r := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
						r.ID, r.Status, r.Date, r.Time, r.PartySize, r.CustomerName, r.Phone)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "only show reservations on this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "only show reservations in this status")
	return cmd
}

// bistro reservations advance <id> <status>
func newReservationsAdvanceCmd() *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   "advance <id> <status>",
		Short: "Confirm, complete or cancel a reservation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(app *App) error {
				res, prev, err := app.Reservations.Transition(cmd.Context(), args[0], models.ReservationStatus(args[1]), statemachine.ActorOperator, note)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reservation %s: %s -> %s\n", res.ID, prev, res.Status)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "note stored in the status history")
	return cmd
}
