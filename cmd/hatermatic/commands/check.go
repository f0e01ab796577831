package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hatermatic/internal/store"
)

// check <path>: validate a catalog file without making it active.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <path>",
		Short: "Validate a YAML catalog file",
		Args:  cobra.ExactArgs(1),
		// The file is checked on its own; the active catalog and its config
		// are not built.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := store.LoadCatalog(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: ok (catalog %s, fingerprint %s)\n", args[0], c.Name(), c.Fingerprint())
			for _, t := range c.Tables() {
				fmt.Fprintf(out, "  %-8s %d\n", t.Tier(), t.Len())
			}
			return nil
		},
	}
}
