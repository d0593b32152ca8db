package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/rule-hunter/internal/atoms"
	"github.com/DjordjeVuckovic/rule-hunter/internal/rule"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var atomFlags []string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression against atom values",
		Example: `  rulehunter eval "public and !static" --atom public=true --atom static=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseAtoms(atomFlags)
			if err != nil {
				return err
			}

			result, err := rule.Evaluate(args[0], rule.ResolverFunc(func(name string) (bool, error) {
				v, ok := values[name]
				if !ok {
					return false, &atoms.UnknownAtomError{Name: name}
				}
				return v, nil
			}))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&atomFlags, "atom", nil, "atom value as name=true|false (repeatable)")

	return cmd
}

func parseAtoms(flags []string) (map[string]bool, error) {
	values := make(map[string]bool, len(flags))
	for _, f := range flags {
		name, raw, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid atom %q, expected name=true|false", f)
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for atom %q: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}
