package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"bookcatalog/internal/catalog"
)

type rootFlags struct {
	dataset  string
	pageSize int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the book catalog from a terminal",
		Long: `Browse the book catalog without the web UI.

Every command starts from a fresh view: no filter, first page, no open detail.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.dataset, "dataset", "", "Dataset YAML file (default: embedded dataset)")
	cmd.PersistentFlags().IntVar(&flags.pageSize, "page-size", catalog.DefaultPageSize, "Previews per page")

	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newOptionsCmd(flags))
	return cmd
}

func (f *rootFlags) controller(ctx context.Context) (*catalog.Controller, error) {
	c, err := catalog.NewYAMLSource(f.dataset).Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewController(c, f.pageSize), nil
}
