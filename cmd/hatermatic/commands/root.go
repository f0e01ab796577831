package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hatermatic/internal/app"
)

var (
	configPath  string
	catalogName string
	catalogFile string
	seed        string
	verbose     bool

	appCtx *app.App
	wire   *app.Wire
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	appCtx, wire, logger = nil, nil, nil

	root := &cobra.Command{
		Use:          "hatermatic",
		Short:        "Coin-op phrase dispenser: pay by tier, get an insult (or a compliment)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("catalog") {
				cfg.Catalog = catalogName
				cfg.CatalogFile = ""
			}
			if flags.Changed("catalog-file") {
				cfg.CatalogFile = catalogFile
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err = app.NewLogger(cfg.Logging, verbose)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(*cfg, logger)
			if err != nil {
				return err
			}
			appCtx = app.New(wire)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", app.DefaultConfigFile, "config file")
	root.PersistentFlags().StringVar(&catalogName, "catalog", "", "built-in catalog: love or hate")
	root.PersistentFlags().StringVar(&catalogFile, "catalog-file", "", "YAML catalog file (overrides --catalog)")
	root.PersistentFlags().StringVar(&seed, "seed", "", "fixed seed for a reproducible phrase sequence")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(pickCmd(), listCmd(), tiersCmd(), exportCmd(), checkCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}
