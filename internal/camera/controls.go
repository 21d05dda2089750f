package camera

// Interactive limits of the viewer.
const (
	AngleStep = 2.0
	ZoomStep  = 5.0
	MinZoom   = 50.0
	MaxZoom   = 200.0
)

// DefaultState is the view the viewer starts in and returns to on Reset.
func DefaultState() State {
	return State{
		Pitch:    30,
		Yaw:      45,
		Zoom:     100,
		Distance: 10,
	}
}

// Tilt returns s with the pitch changed by deg.
func (s State) Tilt(deg float64) State {
	s.Pitch += deg
	return s
}

// Pan returns s with the yaw changed by deg.
func (s State) Pan(deg float64) State {
	s.Yaw += deg
	return s
}

func (s State) ZoomIn() State {
	s.Zoom = min(MaxZoom, s.Zoom+ZoomStep)
	return s
}

func (s State) ZoomOut() State {
	s.Zoom = max(MinZoom, s.Zoom-ZoomStep)
	return s
}

// Reset restores the default angles and zoom. The distance is part of the
// scene setup, not the view, and is kept.
func (s State) Reset() State {
	d := DefaultState()
	d.Distance = s.Distance
	return d
}
