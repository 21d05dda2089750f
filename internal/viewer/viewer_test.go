package viewer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axisviz/internal/axisrot"
	"axisviz/internal/camera"
	"axisviz/internal/config"
)

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	cfg := config.Default()
	cfg.Stage = "original"
	v, err := New(&cfg, nil)
	require.NoError(t, err)
	return v
}

func TestNewRejectsDegenerateAxis(t *testing.T) {
	cfg := config.Default()
	cfg.P1 = []float64{2, 2, 2}
	cfg.P2 = []float64{2, 2, 2}
	_, err := New(&cfg, nil)
	assert.ErrorIs(t, err, axisrot.ErrDegenerateAxis)
}

func TestHoldKeys(t *testing.T) {
	v := newTestViewer(t)
	start := v.Camera()

	for _, r := range "wwaqQ" {
		assert.True(t, v.Hold(r), string(r))
	}
	cam := v.Camera()
	assert.Equal(t, start.Pitch+2*camera.AngleStep, cam.Pitch)
	assert.Equal(t, start.Yaw-camera.AngleStep, cam.Yaw)
	assert.Equal(t, start.Zoom+2*camera.ZoomStep, cam.Zoom)

	assert.False(t, v.Hold('x'))
	assert.False(t, v.Hold('n'))
}

func TestPressKeys(t *testing.T) {
	v := newTestViewer(t)

	assert.True(t, v.Press('n'))
	assert.Equal(t, axisrot.Translated, v.Stage())

	assert.True(t, v.Press('5'))
	assert.Equal(t, axisrot.InverseRestored, v.Stage())
	assert.True(t, v.Press('N'))
	assert.Equal(t, axisrot.Original, v.Stage())

	v.Hold('w')
	v.Hold('e')
	assert.True(t, v.Press('r'))
	assert.Equal(t, camera.DefaultState(), v.Camera())

	assert.False(t, v.Press('6'))
	assert.False(t, v.Press('w'))
}

func TestAnimation(t *testing.T) {
	v := newTestViewer(t)
	assert.InDelta(t, math.Pi/2, v.Theta(), 1e-12)

	assert.True(t, v.Press(' '))
	assert.True(t, v.Animating())
	assert.Equal(t, axisrot.RotatedX, v.Stage(), "starting a sweep jumps to the rotation stage")
	assert.Equal(t, 0.0, v.Theta())

	v.Tick(animationSeconds / 2)
	assert.Greater(t, v.Theta(), 0.0)
	assert.Less(t, v.Theta(), math.Pi/2)

	v.Tick(animationSeconds)
	assert.False(t, v.Animating())
	assert.InDelta(t, math.Pi/2, v.Theta(), 1e-12)

	// Tick without an animation is a no-op.
	v.Tick(1)
	assert.InDelta(t, math.Pi/2, v.Theta(), 1e-12)
}

func TestFrame(t *testing.T) {
	v := newTestViewer(t)
	v.Press('4')

	f := v.Frame()
	assert.Equal(t, axisrot.RotatedX, f.Stage)
	assert.Equal(t, 1200, f.Width)
	assert.Equal(t, 800, f.Height)
	assert.NotEmpty(t, f.Segments)
	assert.Contains(t, f.Info, "theta = 90.00°")
}
