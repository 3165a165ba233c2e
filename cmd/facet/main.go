package main

import (
	"os"

	"github.com/facetlabs/facet/cli"
	"github.com/facetlabs/facet/cmd"
	"github.com/facetlabs/facet/version"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"facet",
		"A multi-panel workspace for exploring world documents",
	)

	info := version.GetInfo()
	rootCmd.Version = info.Version
	cli.SetVersionTemplate(rootCmd, info)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewOpenCmd())
	rootCmd.AddCommand(cmd.NewValidateCmd())
	rootCmd.AddCommand(cmd.NewInitCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)

	// Errors are rendered once, styled, instead of cobra's default dump.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(rootCmd, err)
		os.Exit(1)
	}
}
