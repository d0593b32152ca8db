package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/rule-hunter/internal/catalog"
	"github.com/DjordjeVuckovic/rule-hunter/internal/planner"
	"github.com/DjordjeVuckovic/rule-hunter/internal/skiprule"
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	var (
		rulesPath string
		hashLen   int
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "plan <catalog.yaml>",
		Short: "Print the rename plan of a catalog",
		Long: `Decide for every type and member of a catalog whether a skip rule keeps
its name. Entities no rule matches get a new name derived from the SHA-256
of their full name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			rules := &skiprule.RuleSet{}
			if rulesPath != "" {
				if rules, err = skiprule.LoadFromFile(rulesPath); err != nil {
					return err
				}
			}

			plan, err := planner.New(rules, hashLen).Plan(cmd.Context(), cat)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tNAME\tDECISION\tDETAIL")
			for _, e := range plan.Entries {
				if e.Kept {
					fmt.Fprintf(w, "%s\t%s\tkeep\t%s\n", e.Kind, e.FullName, e.RuleID)
				} else {
					fmt.Fprintf(w, "%s\t%s\trename\t%s\n", e.Kind, e.FullName, e.NewName)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "\n%d kept, %d renamed\n", plan.Kept, plan.Renamed)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "rule set YAML file")
	cmd.Flags().IntVar(&hashLen, "hash-len", planner.DefaultHashLen, "length of generated names, 1-64")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the plan as JSON")

	return cmd
}
