package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/render"
	"bookcatalog/internal/theme"
)

func newShowCmd(root *rootFlags) *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Print the detail panel of one item",
		Args:    cobra.ExactArgs(1),
		Example: `  catalog show 5f1f0a2e-1c3b-4a8e-9b61-0d1e4a7c2f07`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(themeName)
			if err != nil {
				return err
			}
			ctl, err := root.controller(cmd.Context())
			if err != nil {
				return err
			}

			term := render.NewTerminal(cmd.OutOrStdout())
			term.RenderTheme(t.Settings())
			render.Bind(ctl, term)

			if _, err := ctl.OpenDetail(args[0]); err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					return fmt.Errorf("no item with id %q", args[0])
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", string(theme.Day), "Colour theme: day or night")
	return cmd
}
