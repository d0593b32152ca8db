package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rulehunter",
		Short: "Evaluate skip rules and plan renames for type catalogs",
		Long: `rulehunter evaluates boolean rule expressions such as

  public and !(type.sealed or static)

against the types and members of a catalog, and decides which of them keep
their names and which are renamed to a short hash.

Operators: and (&), or (|), not (!), parentheses. Operators of equal
precedence fold left to right.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newEvalCmd(),
		newCheckCmd(),
		newPlanCmd(),
		newServeCmd(),
		newHashCmd(),
		newAtomsCmd(),
	)

	return cmd
}
