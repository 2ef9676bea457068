package main

import (
	"github.com/spf13/cobra"

	"lifeboard/internal/logging"
	"lifeboard/internal/tui"
)

func newTUICmd() *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "run the board in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("cell-size") {
				cfg.CellSize = 1
			}
			var paths []string
			if logFile != "" {
				paths = append(paths, logFile)
			}
			logger, err := logging.ToFiles(cfg.Logging, paths...)
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctrl, loop, err := newSession(cfg, 0, logger)
			if err != nil {
				return err
			}
			defer ctrl.Close()
			if cfg.Autoplay {
				ctrl.Play()
			}
			return tui.Run(tui.New(ctrl, loop, cfg.Seed, logger))
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (the terminal is owned by the board)")
	return cmd
}
