package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSnapshotCmd() *cobra.Command {
	var (
		generations int
		out         string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "advance the board headlessly and write the surface as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return writeSnapshot(logger, generations, out)
		},
	}
	cmd.Flags().IntVarP(&generations, "generations", "n", 0, "generations to advance before writing")
	cmd.Flags().StringVarP(&out, "out", "o", "board.png", "output file")
	return cmd
}

func writeSnapshot(logger *zap.Logger, generations int, out string) error {
	ctrl, _, err := newSession(cfg, 0, logger)
	if err != nil {
		return err
	}
	for i := 0; i < generations; i++ {
		ctrl.AdvanceOne()
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := png.Encode(f, ctrl.Canvas().Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}

	st := ctrl.Stats()
	w, h := ctrl.Canvas().Size()
	logger.Info("snapshot written",
		zap.String("path", out),
		zap.Uint64("generation", st.Generation),
		zap.Int("population", st.Population),
		zap.Int("surface_w", w),
		zap.Int("surface_h", h),
	)
	return nil
}
