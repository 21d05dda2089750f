// Package scene turns one stage of an axis rotation into screen-space
// primitives for whichever renderer is attached.
package scene

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"axisviz/internal/axisrot"
	"axisviz/internal/camera"
	"axisviz/internal/geom"
)

const (
	// AxisLength is the drawn length of the coordinate axes.
	AxisLength = 5.0
	// DiscSides is the polygon resolution of the rotation circle.
	DiscSides = 48
)

type Segment struct {
	A, B  camera.Projection
	Color color.RGBA
	Width int
}

type Marker struct {
	At     camera.Projection
	Color  color.RGBA
	Radius int
}

type Polygon struct {
	Corners []camera.Projection
	Color   color.RGBA
}

type Label struct {
	At    camera.Projection
	Text  string
	Color color.RGBA
}

// Frame is everything to draw for one stage, sorted back to front within
// each primitive kind.
type Frame struct {
	Width, Height int
	Stage         axisrot.Stage

	Polygons []Polygon
	Segments []Segment
	Markers  []Marker
	Labels   []Label

	// Info is the text panel, one entry per line.
	Info []string
}

// Builder projects scenes with a shared Projector.
type Builder struct {
	Projector *camera.Projector
	Log       logrus.FieldLogger
}

func NewBuilder(width, height int, log logrus.FieldLogger) *Builder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Builder{
		Projector: camera.NewProjector(width, height, log),
		Log:       log,
	}
}

// Build lays out the given stage of tr as seen from cam.
func (b *Builder) Build(tr *axisrot.Trace, stage axisrot.Stage, cam camera.State) Frame {
	snap := tr.At(stage)
	orig := tr.At(axisrot.Original)
	project := func(p geom.Vec3) camera.Projection {
		return b.Projector.Project(p, cam)
	}

	f := Frame{
		Width:  b.Projector.Width,
		Height: b.Projector.Height,
		Stage:  stage,
	}

	// Coordinate axes stay put; they are the reference the stages move against.
	origin := project(geom.Vec3{})
	for i, c := range []color.RGBA{Red, Green, Blue} {
		var end, label geom.Vec3
		end[i] = AxisLength
		label[i] = AxisLength + 0.5
		f.Segments = append(f.Segments, Segment{A: origin, B: project(end), Color: c, Width: 3})
		f.Labels = append(f.Labels, Label{At: project(label), Text: string(rune('X' + i)), Color: c})
	}

	// Rotation circle of the point, carried into this stage's frame.
	disc := circle(orig.Point, orig.Axis(), DiscSides, 2*math.Pi)
	f.Polygons = append(f.Polygons, Polygon{
		Corners: b.Projector.ProjectAll(geom.ApplyAll(snap.Frame, disc), cam),
		Color:   DiscFill,
	})

	if stage.NeedsTheta() {
		sweep := circle(orig.Point, orig.Axis(), DiscSides/2, snap.Info.Theta)
		center := closestOnAxis(orig.Point, orig.Axis())
		corners := append([]geom.Vec3{center}, sweep...)
		f.Polygons = append(f.Polygons, Polygon{
			Corners: b.Projector.ProjectAll(geom.ApplyAll(snap.Frame, corners), cam),
			Color:   SweepFill,
		})
	}

	if stage != axisrot.Original {
		f.Segments = append(f.Segments, Segment{A: project(orig.P1), B: project(orig.P2), Color: Gray, Width: 1})
		f.Markers = append(f.Markers, Marker{At: project(orig.Point), Color: Gray, Radius: 3})
	}

	p1, p2 := project(snap.P1), project(snap.P2)
	f.Segments = append(f.Segments, Segment{A: p1, B: p2, Color: Yellow, Width: 2})
	f.Markers = append(f.Markers,
		Marker{At: p1, Color: Yellow, Radius: 4},
		Marker{At: p2, Color: Yellow, Radius: 4},
		Marker{At: project(snap.Point), Color: Orange, Radius: 5},
	)
	f.Labels = append(f.Labels,
		Label{At: p1, Text: "P1", Color: Yellow},
		Label{At: p2, Text: "P2", Color: Yellow},
		Label{At: project(snap.Point), Text: pointLabel(stage), Color: Orange},
	)

	sortPolygons(f.Polygons)
	sortSegments(f.Segments)
	sortMarkers(f.Markers)

	f.Info = Panel(snap, cam)

	b.Log.WithFields(logrus.Fields{
		"stage":    stage,
		"polygons": len(f.Polygons),
		"segments": len(f.Segments),
	}).Debug("built frame")
	return f
}

func pointLabel(stage axisrot.Stage) string {
	if stage.NeedsTheta() {
		return "P'"
	}
	return "P"
}

// Panel is the text describing snap and the camera.
func Panel(snap axisrot.Snapshot, cam camera.State) []string {
	info := snap.Info
	lines := []string{
		fmt.Sprintf("Stage %d: %s", int(snap.Stage), snap.Stage),
		fmt.Sprintf("P = (%.3f, %.3f, %.3f)", snap.Point.X(), snap.Point.Y(), snap.Point.Z()),
	}
	if snap.Stage >= axisrot.Translated {
		t := info.Translation
		lines = append(lines, fmt.Sprintf("T = (%.3f, %.3f, %.3f)", t.X(), t.Y(), t.Z()))
	}
	if snap.Stage >= axisrot.RotatedZ {
		lines = append(lines, fmt.Sprintf("alpha = %.2f°  d = %.3f", mgl64.RadToDeg(info.Alpha), info.D))
	}
	if snap.Stage >= axisrot.RotatedY {
		lines = append(lines, fmt.Sprintf("beta = %.2f°", mgl64.RadToDeg(info.Beta)))
	}
	if snap.Stage.NeedsTheta() {
		lines = append(lines, fmt.Sprintf("theta = %.2f°", mgl64.RadToDeg(info.Theta)))
	}
	return append(lines,
		fmt.Sprintf("Camera: Pitch=%.0f° Yaw=%.0f° Zoom=%.0f", cam.Pitch, cam.Yaw, cam.Zoom),
		"Controls: W/S (pitch) A/D (yaw) Q/E (zoom) R (reset) N/0-5 (stage) Space (animate)",
	)
}

// circle returns n+1 points of p's path about axis, from angle 0 to sweep.
func circle(p geom.Vec3, axis axisrot.Axis, n int, sweep float64) []geom.Vec3 {
	out := make([]geom.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, axisrot.Rodrigues(p, axis, sweep*float64(i)/float64(n)))
	}
	return out
}

func closestOnAxis(p geom.Vec3, axis axisrot.Axis) geom.Vec3 {
	k := axis.Unit()
	return axis.P1.Add(k.Mul(geom.Dot(k, p.Sub(axis.P1))))
}

func sortPolygons(ps []Polygon) {
	sort.SliceStable(ps, func(i, j int) bool {
		return meanDepth(ps[i].Corners...) > meanDepth(ps[j].Corners...)
	})
}

func sortSegments(ss []Segment) {
	sort.SliceStable(ss, func(i, j int) bool {
		return meanDepth(ss[i].A, ss[i].B) > meanDepth(ss[j].A, ss[j].B)
	})
}

func sortMarkers(ms []Marker) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].At.Depth > ms[j].At.Depth
	})
}

func meanDepth(ps ...camera.Projection) float64 {
	if len(ps) == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps {
		sum += p.Depth
	}
	return sum / float64(len(ps))
}
