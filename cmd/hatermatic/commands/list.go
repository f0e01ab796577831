package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hatermatic/internal/domain"
	"hatermatic/internal/phrase"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [tier]",
		Short: "Print the active catalog's phrases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := wire.Catalog.Tables()
			if len(args) == 1 {
				tier, err := domain.ParseTier(args[0])
				if err != nil {
					return err
				}
				tables = []phrase.Table{wire.Catalog.Table(tier)}
			}
			out := cmd.OutOrStdout()
			for _, t := range tables {
				for i, p := range t.Phrases() {
					fmt.Fprintf(out, "%s\t%d\t%s\n", t.Tier(), i, p)
				}
			}
			return nil
		},
	}
}
