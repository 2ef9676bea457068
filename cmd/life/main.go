package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifeboard/internal/config"
	"lifeboard/internal/logging"
	_ "lifeboard/internal/sims/briansbrain"
	_ "lifeboard/internal/sims/elementary"
	_ "lifeboard/internal/sims/life"
)

var (
	configFile string
	cfg        *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := config.Default()
	root := &cobra.Command{
		Use:          "life",
		Short:        "interactive cellular automaton board",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if err := loaded.ApplyFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow()
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (.toml, .yaml)")
	flags.Bind(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "open the board in a window",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runWindow()
			},
		},
		newTUICmd(),
		newSnapshotCmd(),
		newEnginesCmd(),
	)
	return root
}

func newLogger() (*zap.Logger, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
