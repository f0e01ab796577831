package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func tiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Print each tier and its phrase count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "catalog: %s (%s)\n", wire.Catalog.Name(), wire.Catalog.Fingerprint())
			for _, t := range wire.Catalog.Tables() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %-8s %d\n", t.Tier(), t.Tier(), t.Len())
			}
			return nil
		},
	}
}
