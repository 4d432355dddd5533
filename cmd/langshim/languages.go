package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"langshim/internal/services/detect/domain"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the language table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCODE\tBCP47\tNAME")
			for _, l := range domain.Languages() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.ID, l.Code, l.BCP47, l.Name)
			}
			return tw.Flush()
		},
	}
}
