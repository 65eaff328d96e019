package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var catalogFlag string
	var plainFlag bool

	ctx := newCommandContext(&configFlag, &catalogFlag)

	rootCmd := &cobra.Command{
		Use:           "reel",
		Short:         "Browse, play and curate a video catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, ctx, plainFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog file path (overrides catalog.path)")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "Use line mode even when attached to a terminal")

	rootCmd.AddCommand(newCatalogCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reel %s\n", Version)
		},
	}
}
