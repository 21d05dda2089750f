package axisrot

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Stage is a step of the decomposition, in execution order.
type Stage int

const (
	Original Stage = iota
	Translated
	RotatedZ
	RotatedY
	RotatedX
	InverseRestored

	stageCount = int(InverseRestored) + 1
)

var stageNames = [stageCount]string{
	"original",
	"translated",
	"rotated-z",
	"rotated-y",
	"rotated-x",
	"inverse-restored",
}

var ErrUnknownStage = errors.New("unknown stage")

// Stages lists every stage in order.
func Stages() []Stage {
	out := make([]Stage, stageCount)
	for i := range out {
		out[i] = Stage(i)
	}
	return out
}

func (s Stage) Valid() bool {
	return s >= Original && s <= InverseRestored
}

func (s Stage) String() string {
	if !s.Valid() {
		return "stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}

// Next returns the following stage, wrapping back to Original after the last.
func (s Stage) Next() Stage {
	return Stage((int(s) + 1) % stageCount)
}

// NeedsTheta reports whether the stage depends on the rotation angle.
func (s Stage) NeedsTheta() bool {
	return s >= RotatedX
}

// ParseStage accepts either a stage name or its index.
func ParseStage(v string) (Stage, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if i, err := strconv.Atoi(v); err == nil {
		if s := Stage(i); s.Valid() {
			return s, nil
		}
		return 0, errors.Wrapf(ErrUnknownStage, "index %d", i)
	}
	for i, name := range stageNames {
		if name == v {
			return Stage(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStage, "%q", v)
}
