package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// ParameterControl describes a tunable that a frontend can adjust while the
// session is live. Value holds the current setting at the time the control
// list was taken.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType
	Value float64

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp limits v to the control's bounds. Integer controls are rounded to
// whole numbers and float controls to six decimal places.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.Type == ParamTypeInt {
		v = math.Round(v)
	} else {
		v = math.Round(v*1e6) / 1e6
	}
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// Nudge returns the value steps increments away from Value, clamped.
func (c ParameterControl) Nudge(steps int) float64 {
	return c.Clamp(c.Value + float64(steps)*c.Step)
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter updates integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter updates floating point parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// Adjust moves the control named key by steps increments on target and reports
// whether the value changed.
func Adjust(target ParameterControlsProvider, key string, steps int) bool {
	for _, c := range target.ParameterControls() {
		if c.Key != key {
			continue
		}
		next := c.Nudge(steps)
		if next == c.Value {
			return false
		}
		switch c.Type {
		case ParamTypeInt:
			if s, ok := target.(IntParameterSetter); ok {
				return s.SetIntParameter(key, int(next))
			}
		case ParamTypeFloat:
			if s, ok := target.(FloatParameterSetter); ok {
				return s.SetFloatParameter(key, next)
			}
		}
		return false
	}
	return false
}
