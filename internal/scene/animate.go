package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ThetaAnimation eases the rotation angle from 0 up to a target, so the
// RotatedX and InverseRestored stages can be watched sweeping.
type ThetaAnimation struct {
	tween  *gween.Tween
	target float64
	value  float64
	done   bool
}

func NewThetaAnimation(target, seconds float64) *ThetaAnimation {
	return &ThetaAnimation{
		tween:  gween.New(0, float32(target), float32(seconds), ease.InOutQuad),
		target: target,
	}
}

// Update advances the animation by dt seconds and returns the current angle.
// Once finished it returns the exact target.
func (a *ThetaAnimation) Update(dt float64) (theta float64, done bool) {
	if a.done {
		return a.target, true
	}
	v, finished := a.tween.Update(float32(dt))
	a.value = float64(v)
	if finished {
		a.value, a.done = a.target, true
	}
	return a.value, a.done
}

func (a *ThetaAnimation) Value() float64 {
	return a.value
}

func (a *ThetaAnimation) Done() bool {
	return a.done
}

// Reset rewinds to 0.
func (a *ThetaAnimation) Reset() {
	a.tween.Reset()
	a.value, a.done = 0, false
}
