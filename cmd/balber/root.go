package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app holds state shared by every subcommand of one invocation.
type app struct {
	configFile string
	verbose    bool

	cfg    *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "balber",
		Short: "Convert and inspect balbermsg documents",
		Long: `balber decodes documents into the balbermsg types, validating every
field and label against the compiled name mappings, and re-encodes them in
any supported wire format. It also prints and verifies the label table.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./balber.yaml if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(newConvertCmd(a))
	root.AddCommand(newLabelsCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

// setup builds the logger and loads configuration, binding any of the
// command's flags that share a name with a config key.
func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		a.logger = logger
	}

	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}

	for key, flag := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := cfg.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		zap.String("file", cfg.ConfigFileUsed()),
		zap.String(cfgKeyFrom, cfg.GetString(cfgKeyFrom)),
		zap.String(cfgKeyTo, cfg.GetString(cfgKeyTo)),
		zap.Bool(cfgKeySkipUnknown, cfg.GetBool(cfgKeySkipUnknown)),
	)
	return nil
}
