package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hatermatic/internal/store"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the active catalog to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.SaveCatalog(args[0], wire.Catalog); err != nil {
				return fmt.Errorf("exporting %s: %w", wire.Catalog.Name(), err)
			}
			logger.Info("catalog exported", zap.Stringer("catalog", wire.Catalog.Name()), zap.String("path", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}
