package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bookcatalog/internal/render"
)

func newOptionsCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List author and genre ids accepted by search",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl, err := root.controller(cmd.Context())
			if err != nil {
				return err
			}
			opts := render.Options(ctl.Catalog())

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tID\tNAME")
			for _, o := range opts.Authors {
				fmt.Fprintf(tw, "author\t%s\t%s\n", o.Value, o.Label)
			}
			for _, o := range opts.Genres {
				fmt.Fprintf(tw, "genre\t%s\t%s\n", o.Value, o.Label)
			}
			return tw.Flush()
		},
	}
}
