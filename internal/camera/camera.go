// Package camera maps world points to screen coordinates. The camera is a pair
// of angles applied to the world itself (yaw, then pitch) followed by a
// perspective divide; there is no separate view matrix.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"axisviz/internal/geom"
)

// NearClamp is the smallest depth used for the perspective divide. Points
// closer than this are pinned to it rather than clipped.
const NearClamp = 0.1

// State is the camera as the viewer sees it. Angles are in degrees. The caller
// owns it; nothing in this package mutates a State in place.
type State struct {
	Pitch    float64 `json:"pitch"`
	Yaw      float64 `json:"yaw"`
	Zoom     float64 `json:"zoom"`
	Distance float64 `json:"distance"`
}

// Projection is a projected point. Depth is the value actually used for the
// divide, so it is never below NearClamp.
type Projection struct {
	X, Y    int
	Depth   float64
	Clamped bool
}

// RotateForCamera rotates p by yaw around the vertical axis and then by pitch
// around the horizontal axis.
func RotateForCamera(p geom.Vec3, pitchDeg, yawDeg float64) geom.Vec3 {
	p = geom.RotateY(p, mgl64.DegToRad(yawDeg))
	return geom.RotateX(p, mgl64.DegToRad(pitchDeg))
}

// Projector projects onto a Width x Height viewport.
type Projector struct {
	Width, Height int
	Log           logrus.FieldLogger
}

func NewProjector(width, height int, log logrus.FieldLogger) *Projector {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Projector{Width: width, Height: height, Log: log}
}

// Project rotates p for the camera and perspective-projects it. Screen Y grows
// downward.
func (pr *Projector) Project(p geom.Vec3, cam State) Projection {
	r := RotateForCamera(p, cam.Pitch, cam.Yaw)

	out := Projection{Depth: r.Z() + cam.Distance}
	if out.Depth <= NearClamp {
		if pr.Log != nil {
			pr.Log.WithFields(logrus.Fields{
				"point": p,
				"depth": out.Depth,
			}).Debug("near camera clamp")
		}
		out.Depth = NearClamp
		out.Clamped = true
	}

	factor := cam.Zoom / out.Depth
	out.X = int(float64(pr.Width)/2 + r.X()*factor)
	out.Y = int(float64(pr.Height)/2 - r.Y()*factor)
	return out
}

// ProjectAll projects every point in ps with the same camera.
func (pr *Projector) ProjectAll(ps []geom.Vec3, cam State) []Projection {
	out := make([]Projection, len(ps))
	for i, p := range ps {
		out[i] = pr.Project(p, cam)
	}
	return out
}
