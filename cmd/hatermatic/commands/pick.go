package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hatermatic/internal/domain"
)

// pick <tier>: what the coin acceptor triggers once credit reaches a tier.
func pickCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "pick <tier>",
		Short: "Print a random phrase for value, quality or luxury (or 1-3)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := domain.ParseTier(args[0])
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				fmt.Fprintln(out, appCtx.Dispense(tier))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of phrases to print")
	return cmd
}
