package main

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/rule-hunter/internal/atoms"
	"github.com/DjordjeVuckovic/rule-hunter/internal/rule"
	"github.com/DjordjeVuckovic/rule-hunter/internal/skiprule"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <rules.yaml>",
		Short: "Validate a rule set file",
		Long: `Validate a rule set file and list the atoms each rule's expressions
reference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := skiprule.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTARGET\tATOMS")
			for i := range s.Rules {
				r := &s.Rules[i]
				names, err := ruleAtoms(r)
				if err != nil {
					return fmt.Errorf("rule %q: %w", r.ID, err)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Target, strings.Join(names, ", "))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "rule set %q is valid (%d rules)\n", s.Name, len(s.Rules))
			return nil
		},
	}
}

// ruleAtoms lists the distinct atoms of both rule expressions, lower-cased,
// in order of first use. Member rules show typeAttrib atoms with the type.
// prefix.
func ruleAtoms(r *skiprule.Rule) ([]string, error) {
	var out []string
	add := func(expression, prefix string) error {
		if strings.TrimSpace(expression) == "" {
			return nil
		}
		names, err := rule.Names(expression)
		if err != nil {
			return err
		}
		for _, name := range names {
			name = prefix + strings.ToLower(name)
			if !slices.Contains(out, name) {
				out = append(out, name)
			}
		}
		return nil
	}

	if err := add(r.Attrib, ""); err != nil {
		return nil, err
	}
	prefix := atoms.TypePrefix
	if r.Target == skiprule.TypeTarget {
		prefix = ""
	}
	if err := add(r.TypeAttrib, prefix); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return []string{"-"}, nil
	}
	return out, nil
}
