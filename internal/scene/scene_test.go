package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axisviz/internal/axisrot"
	"axisviz/internal/camera"
	"axisviz/internal/geom"
)

var testAxis = axisrot.Axis{P1: geom.Vec3{1, -0.5, 1.5}, P2: geom.Vec3{3, -2, -2.5}}

func buildAll(t *testing.T) (*Builder, *axisrot.Trace, map[axisrot.Stage]Frame) {
	t.Helper()
	b := NewBuilder(1200, 800, nil)
	tr := axisrot.Run(geom.Vec3{-2.5, 1.5, 0.5}, testAxis, math.Pi/2)
	frames := map[axisrot.Stage]Frame{}
	for _, s := range axisrot.Stages() {
		frames[s] = b.Build(&tr, s, camera.DefaultState())
	}
	return b, &tr, frames
}

func TestBuildCounts(t *testing.T) {
	_, _, frames := buildAll(t)

	orig := frames[axisrot.Original]
	assert.Len(t, orig.Polygons, 1)
	assert.Len(t, orig.Segments, 4)
	assert.Len(t, orig.Markers, 3)
	assert.Len(t, orig.Labels, 6)

	moved := frames[axisrot.RotatedY]
	assert.Len(t, moved.Polygons, 1)
	assert.Len(t, moved.Segments, 5)
	assert.Len(t, moved.Markers, 4)

	for _, s := range []axisrot.Stage{axisrot.RotatedX, axisrot.InverseRestored} {
		f := frames[s]
		require.Len(t, f.Polygons, 2, s.String())
		assert.Len(t, f.Segments, 5)
		assert.Equal(t, s, f.Stage)
		assert.Equal(t, 1200, f.Width)
		assert.Equal(t, 800, f.Height)
	}
}

func TestBuildProjectsCurrentStage(t *testing.T) {
	b, tr, frames := buildAll(t)
	cam := camera.DefaultState()

	for _, s := range axisrot.Stages() {
		snap := tr.At(s)
		want := b.Projector.Project(snap.Point, cam)

		var found bool
		for _, l := range frames[s].Labels {
			if l.Text == pointLabel(s) {
				found = true
				assert.Equal(t, want, l.At, s.String())
			}
		}
		assert.True(t, found, s.String())
	}
}

func TestBuildSortsBackToFront(t *testing.T) {
	_, _, frames := buildAll(t)
	for s, f := range frames {
		for i := 1; i < len(f.Segments); i++ {
			prev := meanDepth(f.Segments[i-1].A, f.Segments[i-1].B)
			cur := meanDepth(f.Segments[i].A, f.Segments[i].B)
			assert.GreaterOrEqual(t, prev, cur, s.String())
		}
		for i := 1; i < len(f.Markers); i++ {
			assert.GreaterOrEqual(t, f.Markers[i-1].At.Depth, f.Markers[i].At.Depth, s.String())
		}
	}
}

func TestDiscFollowsStageFrame(t *testing.T) {
	_, tr, frames := buildAll(t)

	// In the restored frame the disc is back where it started.
	orig := frames[axisrot.Original].Polygons[0].Corners
	var restored []camera.Projection
	for _, p := range frames[axisrot.InverseRestored].Polygons {
		if p.Color == DiscFill {
			restored = p.Corners
		}
	}
	require.Len(t, restored, len(orig))
	for i := range orig {
		assert.InDelta(t, orig[i].X, restored[i].X, 1)
		assert.InDelta(t, orig[i].Y, restored[i].Y, 1)
	}

	// Every disc vertex stays at the same distance from the axis.
	disc := circle(tr.At(axisrot.Original).Point, testAxis, DiscSides, 2*math.Pi)
	r := geom.Length(disc[0].Sub(closestOnAxis(disc[0], testAxis)))
	for _, p := range disc {
		assert.InDelta(t, r, geom.Length(p.Sub(closestOnAxis(p, testAxis))), 1e-9)
	}
}

func TestSweepEndsAtRotatedPoint(t *testing.T) {
	_, tr, _ := buildAll(t)
	orig := tr.At(axisrot.Original)
	sweep := circle(orig.Point, orig.Axis(), DiscSides/2, math.Pi/2)

	for _, s := range []axisrot.Stage{axisrot.RotatedX, axisrot.InverseRestored} {
		snap := tr.At(s)
		end := geom.Apply(snap.Frame, sweep[len(sweep)-1])
		assert.True(t, geom.ApproxEqual(snap.Point, end, 1e-9), "%s: %v vs %v", s, snap.Point, end)
	}
}

func TestPanel(t *testing.T) {
	tr := axisrot.Run(geom.Vec3{-2.5, 1.5, 0.5}, testAxis, math.Pi/2)
	cam := camera.DefaultState()

	lines := Panel(tr.At(axisrot.Original), cam)
	assert.Equal(t, "Stage 0: original", lines[0])
	assert.Contains(t, lines, "Camera: Pitch=30° Yaw=45° Zoom=100")

	lines = Panel(tr.At(axisrot.RotatedX), cam)
	assert.Contains(t, lines, "theta = 90.00°")
	assert.Equal(t, "Stage 4: rotated-x", lines[0])
}

func TestThetaAnimation(t *testing.T) {
	a := NewThetaAnimation(math.Pi/2, 1)
	assert.Equal(t, 0.0, a.Value())

	mid, done := a.Update(0.5)
	assert.False(t, done)
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, math.Pi/2)

	end, done := a.Update(1)
	assert.True(t, done)
	assert.Equal(t, math.Pi/2, end)

	end, done = a.Update(1)
	assert.True(t, done)
	assert.Equal(t, math.Pi/2, end)

	a.Reset()
	assert.False(t, a.Done())
	assert.Equal(t, 0.0, a.Value())
}
