package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lifeboard/internal/config"
	"lifeboard/internal/controller"
	"lifeboard/internal/core"
	"lifeboard/internal/ui"
)

// newSession builds the engine, loop and controller described by c.
func newSession(c *config.Config, panelWidth int, logger *zap.Logger) (*controller.Controller, *core.Loop, error) {
	factory, ok := core.Sims()[c.Engine]
	if !ok {
		return nil, nil, fmt.Errorf("unknown engine %q (have %s)", c.Engine, strings.Join(core.SimNames(), ", "))
	}
	sim := factory(c.EngineParams())
	if c.Seed != 0 {
		sim.Reset(c.Seed)
	}
	palette, err := c.Palette()
	if err != nil {
		return nil, nil, err
	}
	loop := core.NewLoop(time.Now(), core.NewFixedStep(c.FPS))
	ctrl := controller.New(sim, loop, ui.NewPanel(panelWidth), controller.Options{
		CellSize: c.CellSize,
		Palette:  &palette,
		Debounce: c.Debounce,
		Logger:   logger,
	})
	size := sim.Size()
	logger.Info("session ready",
		zap.String("engine", sim.Name()),
		zap.Int("width", size.W),
		zap.Int("height", size.H),
		zap.Int("cell_size", c.CellSize),
		zap.Duration("debounce", c.Debounce),
	)
	return ctrl, loop, nil
}

func newEnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "list available engines",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.SimNames() {
				marker := " "
				if name == cfg.Engine {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
		},
	}
}
