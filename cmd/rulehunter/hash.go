package main

import (
	"fmt"

	"github.com/DjordjeVuckovic/rule-hunter/internal/namehash"
	"github.com/spf13/cobra"
)

func newHashCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "hash <name>",
		Short: "Print the SHA-256 name hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := namehash.Hash(args[0])
			if length > 0 {
				h = namehash.Short(args[0], length)
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "len", 0, "truncate the hash to this many characters")

	return cmd
}
