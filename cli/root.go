// Package cli is the bistro command line: the HTTP server plus the operator
// commands that read and advance orders and reservations.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bistro-api/config"
	"bistro-api/logger"
)

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bistro",
		Short:         "Bistro ordering & reservations",
		Long:          "Runs the bistro API and gives operators the dashboard, order and reservation controls from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Server
	root.AddCommand(newServeCmd())

	// Operator
	root.AddCommand(newDashboardCmd())
	root.AddCommand(newOrdersCmd())
	root.AddCommand(newReservationsCmd())
	root.AddCommand(newMenuCmd())
	return root
}

// withApp builds the app for one operator command. Those commands log
// nothing so their output stays readable.
func withApp(ctx context.Context, fn func(*App) error) error {
	app, err := NewApp(ctx, config.Load(), logger.Discard())
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}
