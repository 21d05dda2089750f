package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"axisviz/internal/export"
	"axisviz/internal/render"
	"axisviz/internal/scene"
)

func newSnapshotCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the selected stage to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			tr, err := trace(cfg)
			if err != nil {
				return err
			}

			b := scene.NewBuilder(cfg.Viewport.Width, cfg.Viewport.Height, log)
			img := render.Snapshot(b.Build(tr, cfg.StageValue(), cfg.Camera))

			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "creating snapshot")
			}
			defer f.Close()
			if err := img.WritePNG(f); err != nil {
				return err
			}

			log.WithField("file", output).WithField("stage", cfg.StageValue()).Info("wrote snapshot")
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "axisviz.png", "PNG file to write")
	return cmd
}

func newExportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stage as a binary glTF file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			tr, err := trace(cfg)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(err, "creating export")
			}
			defer f.Close()
			if err := export.WriteBinary(f, export.Document(tr)); err != nil {
				return err
			}

			log.WithField("file", output).Info("wrote glTF")
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "axisviz.glb", "glb file to write")
	return cmd
}
