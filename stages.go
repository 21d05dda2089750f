package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"axisviz/internal/axisrot"
	"axisviz/internal/geom"
)

func newStagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "Print the point and axis after every stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			tr, err := trace(cfg)
			if err != nil {
				return err
			}
			axis, _ := cfg.Axis()
			return printStages(cmd.OutOrStdout(), tr, axisrot.Rodrigues(cfg.PointVec(), axis, cfg.Radians()))
		},
	}
}

func printStages(out io.Writer, tr *axisrot.Trace, reference geom.Vec3) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTAGE\tPOINT\tP1\tP2")
	for _, s := range axisrot.Stages() {
		snap := tr.At(s)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", int(s), s, vec(snap.Point), vec(snap.P1), vec(snap.P2))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	info := tr.Final().Info
	fmt.Fprintf(out, "\nT = %s\n", vec(info.Translation))
	fmt.Fprintf(out, "unit axis = %s  d = %.6f\n", vec(info.Unit), info.D)
	fmt.Fprintf(out, "alpha = %.4f° beta = %.4f° theta = %.4f°\n",
		mgl64.RadToDeg(info.Alpha), mgl64.RadToDeg(info.Beta), mgl64.RadToDeg(info.Theta))
	fmt.Fprintf(out, "rodrigues = %s  error = %.3g\n", vec(reference), geom.Length(reference.Sub(tr.Final().Point)))
	return nil
}

func vec(v geom.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X(), v.Y(), v.Z())
}
