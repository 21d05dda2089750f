package axisrot

import (
	"github.com/pkg/errors"

	"axisviz/internal/geom"
)

// StageInfo collects the values computed up to a stage. Each stage copies the
// previous StageInfo and fills in its own fields; nothing is recomputed.
type StageInfo struct {
	Reached Stage

	// Translated
	Translation geom.Vec3

	// RotatedZ
	Unit       geom.Vec3
	D          float64
	Alpha      float64
	AxisAfterZ geom.Vec3

	// RotatedY
	Beta       float64
	AxisAfterY geom.Vec3

	// RotatedX
	Theta float64
}

// Snapshot is the state of the point and the axis after a stage.
type Snapshot struct {
	Stage  Stage
	Point  geom.Vec3
	P1, P2 geom.Vec3
	Info   StageInfo

	// Frame maps original coordinates into this stage's coordinates. It is
	// what the axis and any static geometry go through.
	Frame geom.Mat4
	// PointTransform maps the original point to Point. From RotatedX on it
	// also holds the rotation by theta.
	PointTransform geom.Mat4
}

// Axis returns the snapshot's axis endpoints.
func (s Snapshot) Axis() Axis {
	return Axis{P1: s.P1, P2: s.P2}
}

// Trace holds every stage of one run, indexed by Stage.
type Trace [stageCount]Snapshot

func (tr Trace) At(s Stage) Snapshot {
	return tr[s]
}

func (tr Trace) Final() Snapshot {
	return tr[InverseRestored]
}

// Begin is the Original stage: nothing has moved yet.
func Begin(point geom.Vec3, axis Axis) Snapshot {
	return Snapshot{
		Stage:          Original,
		Point:          point,
		P1:             axis.P1,
		P2:             axis.P2,
		Info:           StageInfo{Reached: Original},
		Frame:          geom.Identity(),
		PointTransform: geom.Identity(),
	}
}

// Translate moves P1 to the origin. prev must be the Original snapshot.
func Translate(prev Snapshot) Snapshot {
	info := prev.Info
	info.Translation = prev.P1.Mul(-1)
	return prev.advance(Translated, info, geom.Translation(info.Translation), true)
}

// AlignZ rotates around Z by -alpha so the axis lies in the XZ plane.
func AlignZ(prev Snapshot) Snapshot {
	info := prev.Info
	info.Unit = geom.Normalize(prev.P2.Sub(prev.P1))
	info.D, info.Alpha = azimuth(info.Unit)

	m := geom.RotationZ(-info.Alpha)
	info.AxisAfterZ = geom.Apply(m, info.Unit)
	return prev.advance(RotatedZ, info, m, true)
}

// AlignY rotates around Y so the axis lies on +X. With the counter-clockwise
// RotationY used everywhere, (d, 0, c) reaches +X through RotationY(+beta).
func AlignY(prev Snapshot) Snapshot {
	info := prev.Info
	info.Beta = elevation(info.Unit, info.D)

	m := geom.RotationY(info.Beta)
	info.AxisAfterY = geom.Apply(m, info.AxisAfterZ)
	return prev.advance(RotatedY, info, m, true)
}

// RotateX performs the requested rotation. The axis is on X now and does not
// move, so only the point is rotated.
func RotateX(prev Snapshot, theta float64) Snapshot {
	info := prev.Info
	info.Theta = theta
	return prev.advance(RotatedX, info, geom.RotationX(theta), false)
}

// Restore undoes AlignY, AlignZ and Translate in that order.
func Restore(prev Snapshot) Snapshot {
	info := prev.Info
	m := geom.Compose(
		geom.Translation(info.Translation.Mul(-1)),
		geom.RotationZ(info.Alpha),
		geom.RotationY(-info.Beta),
	)
	return prev.advance(InverseRestored, info, m, true)
}

func (s Snapshot) advance(stage Stage, info StageInfo, m geom.Mat4, moveAxis bool) Snapshot {
	info.Reached = stage
	next := s
	next.Stage = stage
	next.Info = info
	next.Point = geom.Apply(m, s.Point)
	next.PointTransform = m.Mul4(s.PointTransform)
	if moveAxis {
		next.P1 = geom.Apply(m, s.P1)
		next.P2 = geom.Apply(m, s.P2)
		next.Frame = m.Mul4(s.Frame)
	}
	return next
}

// Run computes every stage once, in order.
func Run(point geom.Vec3, axis Axis, theta float64) Trace {
	var tr Trace
	tr[Original] = Begin(point, axis)
	for _, s := range Stages()[1:] {
		tr[s] = step(tr[s-1], theta)
	}
	return tr
}

// RunStage runs the chain up to and including stage and stops there. Theta is
// ignored for stages before RotatedX.
func RunStage(stage Stage, point, p1, p2 geom.Vec3, theta float64) (Snapshot, error) {
	if !stage.Valid() {
		return Snapshot{}, errors.Wrapf(ErrUnknownStage, "index %d", int(stage))
	}
	snap := Begin(point, Axis{P1: p1, P2: p2})
	for snap.Stage < stage {
		snap = step(snap, theta)
	}
	return snap, nil
}

func step(prev Snapshot, theta float64) Snapshot {
	switch prev.Stage {
	case Original:
		return Translate(prev)
	case Translated:
		return AlignZ(prev)
	case RotatedZ:
		return AlignY(prev)
	case RotatedY:
		return RotateX(prev, theta)
	case RotatedX:
		return Restore(prev)
	}
	return prev
}
