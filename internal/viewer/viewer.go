// Package viewer holds the interactive state shared by the terminal and window
// drivers: the camera, the selected stage and the theta animation.
package viewer

import (
	"github.com/sirupsen/logrus"

	"axisviz/internal/axisrot"
	"axisviz/internal/camera"
	"axisviz/internal/config"
	"axisviz/internal/geom"
	"axisviz/internal/scene"
)

// animationSeconds is how long the theta sweep takes.
const animationSeconds = 2.0

// Viewer owns the camera State; the core only ever sees copies of it.
type Viewer struct {
	axis  axisrot.Axis
	point geom.Vec3
	theta float64

	cam     camera.State
	stage   axisrot.Stage
	anim    *scene.ThetaAnimation
	builder *scene.Builder
	log     logrus.FieldLogger
}

func New(cfg *config.Config, log logrus.FieldLogger) (*Viewer, error) {
	axis, err := cfg.Axis()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Viewer{
		axis:    axis,
		point:   cfg.PointVec(),
		theta:   cfg.Radians(),
		cam:     cfg.Camera,
		stage:   cfg.StageValue(),
		builder: scene.NewBuilder(cfg.Viewport.Width, cfg.Viewport.Height, log),
		log:     log,
	}, nil
}

// Hold applies a key that acts for as long as it is held down.
func (v *Viewer) Hold(r rune) bool {
	switch r {
	case 'w', 'W':
		v.cam = v.cam.Tilt(camera.AngleStep)
	case 's', 'S':
		v.cam = v.cam.Tilt(-camera.AngleStep)
	case 'a', 'A':
		v.cam = v.cam.Pan(-camera.AngleStep)
	case 'd', 'D':
		v.cam = v.cam.Pan(camera.AngleStep)
	case 'q', 'Q':
		v.cam = v.cam.ZoomIn()
	case 'e', 'E':
		v.cam = v.cam.ZoomOut()
	default:
		return false
	}
	return true
}

// Press applies a one-shot key.
func (v *Viewer) Press(r rune) bool {
	switch {
	case r == 'r' || r == 'R':
		v.cam = v.cam.Reset()
	case r == 'n' || r == 'N':
		v.setStage(v.stage.Next())
	case r >= '0' && r <= '5':
		v.setStage(axisrot.Stage(r - '0'))
	case r == ' ':
		v.anim = scene.NewThetaAnimation(v.theta, animationSeconds)
		if !v.stage.NeedsTheta() {
			v.setStage(axisrot.RotatedX)
		}
	default:
		return false
	}
	return true
}

func (v *Viewer) setStage(s axisrot.Stage) {
	v.stage = s
	v.log.WithField("stage", s).Debug("stage changed")
}

// Tick advances the animation by dt seconds.
func (v *Viewer) Tick(dt float64) {
	if v.anim == nil {
		return
	}
	if _, done := v.anim.Update(dt); done {
		v.anim = nil
	}
}

// Theta is the angle in use, animated while a sweep runs.
func (v *Viewer) Theta() float64 {
	if v.anim != nil {
		return v.anim.Value()
	}
	return v.theta
}

// Frame runs the pipeline once and lays out the current stage.
func (v *Viewer) Frame() scene.Frame {
	tr := axisrot.Run(v.point, v.axis, v.Theta())
	return v.builder.Build(&tr, v.stage, v.cam)
}

func (v *Viewer) Camera() camera.State {
	return v.cam
}

func (v *Viewer) Stage() axisrot.Stage {
	return v.stage
}

// Animating reports whether a theta sweep is running.
func (v *Viewer) Animating() bool {
	return v.anim != nil
}
