package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"langshim/internal/core/version"
	perr "langshim/internal/platform/errors"
)

func newVersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information and compiled-in engines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bi := version.Info()
			switch strings.ToLower(format) {
			case "pretty", "":
				fmt.Fprintf(cmd.OutOrStdout(), "langshim %s (%s, %s) %s\nengines: %s\n",
					bi.Version, bi.Commit, bi.Date, bi.GoVersion, strings.Join(bi.Engines, ", "))
				return nil
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(bi)
			default:
				return perr.InvalidArgf("unknown format %q (pretty|json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}
