package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/render"
	"bookcatalog/internal/theme"
)

type searchFlags struct {
	title  string
	author string
	genre  string
	pages  int
	theme  string
}

func newSearchCmd(root *rootFlags) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter the catalog and print matching previews",
		Example: `  catalog search --title sea --genre g-adventure
  catalog search --author a-austen --pages 2 --theme night`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.pages < 1 {
				return fmt.Errorf("--pages must be at least 1")
			}
			t, err := theme.Parse(flags.theme)
			if err != nil {
				return err
			}
			ctl, err := root.controller(cmd.Context())
			if err != nil {
				return err
			}
			return runSearch(cmd, ctl, t, flags)
		},
	}

	cmd.Flags().StringVar(&flags.title, "title", "", "Title substring (case-insensitive)")
	cmd.Flags().StringVar(&flags.author, "author", catalog.Any, "Author id or 'any'")
	cmd.Flags().StringVar(&flags.genre, "genre", catalog.Any, "Genre id or 'any'")
	cmd.Flags().IntVar(&flags.pages, "pages", 1, "Number of pages to reveal")
	cmd.Flags().StringVar(&flags.theme, "theme", string(theme.Day), "Colour theme: day or night")

	return cmd
}

func runSearch(cmd *cobra.Command, ctl *catalog.Controller, t theme.Theme, flags *searchFlags) error {
	term := render.NewTerminal(cmd.OutOrStdout())
	term.RenderTheme(t.Settings())
	render.Bind(ctl, term)

	ctl.ApplyFilter(catalog.Filter{
		TitleQuery: flags.title,
		AuthorID:   flags.author,
		GenreID:    flags.genre,
	})
	for i := 1; i < flags.pages && ctl.RemainingCount() > 0; i++ {
		ctl.NextPage()
	}
	return nil
}
