package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/rule-hunter/internal/atoms"
	"github.com/spf13/cobra"
)

func newAtomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "atoms [type|member]",
		Short: "List the atoms rule expressions may use",
		Long: `List the atoms rule expressions may use. Type rules and typeAttrib
expressions use the type vocabulary. Member rules use the member vocabulary,
where type.<atom> names refer to the declaring type.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(atoms.TypeTarget), string(atoms.MemberTarget)},
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := []atoms.Target{atoms.TypeTarget, atoms.MemberTarget}
			if len(args) == 1 {
				target := atoms.Target(args[0])
				if target != atoms.TypeTarget && target != atoms.MemberTarget {
					return fmt.Errorf("unknown vocabulary %q (want type or member)", args[0])
				}
				targets = []atoms.Target{target}
			}

			out := cmd.OutOrStdout()
			for _, target := range targets {
				for _, name := range atoms.Names(target) {
					if len(targets) > 1 {
						fmt.Fprintf(out, "%s\t%s\n", target, name)
					} else {
						fmt.Fprintln(out, name)
					}
				}
			}
			return nil
		},
	}
}
