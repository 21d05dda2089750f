package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"axisviz/internal/axisrot"
	"axisviz/internal/config"
)

const title = "3D Arbitrary Axis Rotation"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "axisviz",
		Short:         "Visualize a rotation about an arbitrary 3D axis, stage by stage",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}
	config.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newStagesCommand(),
		newSnapshotCommand(),
		newExportCommand(),
		newTermCommand(),
		newWindowCommand(),
	)
	return cmd
}

// setup loads and validates the configuration and configures logging. A
// degenerate axis is rejected here, before any stage runs.
func setup(cmd *cobra.Command) (*config.Config, *logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(level)

	log.WithFields(logrus.Fields{
		"p1":    cfg.P1,
		"p2":    cfg.P2,
		"point": cfg.Point,
		"theta": cfg.Theta,
		"stage": cfg.Stage,
	}).Debug("loaded scene")
	return cfg, log, nil
}

// trace runs every stage for the configured scene.
func trace(cfg *config.Config) (*axisrot.Trace, error) {
	axis, err := cfg.Axis()
	if err != nil {
		return nil, err
	}
	tr := axisrot.Run(cfg.PointVec(), axis, cfg.Radians())
	return &tr, nil
}
