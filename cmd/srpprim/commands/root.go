package commands

import (
	"os"

	"github.com/spf13/cobra"

	"srpprim/internal/app"
	"srpprim/internal/log"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool

	wire *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(newRootCmd(), os.Args[1:])
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(markNegativeOperands(args))
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "srpprim",
		Short:        "Big integer and incremental digest primitives for SRP",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = opts.logLevel
			}
			if cmd.Flags().Changed("log-json") {
				cfg.Log.JSON = opts.logJSON
			}
			if err := log.SetLogger(cfg.Log.Level, cfg.Log.JSON, cfg.Log.Color); err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			opts.wire = w
			log.Debug("configuration loaded",
				"config", opts.configPath,
				"algorithm", w.Algorithm,
				"randBits", w.RandBits,
				"vectors", cfg.Vectors.Path)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(
		digestCmd(opts),
		arithCmd(),
		modExpCmd(),
		randCmd(opts),
		selftestCmd(opts),
	)
	return root
}
