package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bistro-api/catalog"
)

// bistro menu [--category desserts]; needs no database.
func newMenuCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tPREP")
			for _, item := range cat.Items(catalog.Filter{Category: category}) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dm\n",
					item.ID, item.Name, item.Category, item.Price.StringFixed(2), item.PreparationTime)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only show one category")
	return cmd
}
