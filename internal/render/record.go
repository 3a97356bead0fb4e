package render

import (
	"fmt"
	"image/color"
)

// OpKind enumerates the draw instructions a Recorder captures.
type OpKind uint8

const (
	// OpSetFill records a SetFillColor call.
	OpSetFill OpKind = iota
	// OpClear records a ClearRect call.
	OpClear
	// OpFill records a FillRect call.
	OpFill
)

// Op is one recorded draw instruction.
type Op struct {
	Kind       OpKind
	Color      color.Color
	X, Y, W, H float64
}

func (o Op) String() string {
	switch o.Kind {
	case OpSetFill:
		r, g, b, a := o.Color.RGBA()
		return fmt.Sprintf("fill-color(%02x%02x%02x%02x)", r>>8, g>>8, b>>8, a>>8)
	case OpClear:
		return fmt.Sprintf("clear(%g,%g,%g,%g)", o.X, o.Y, o.W, o.H)
	default:
		return fmt.Sprintf("fill(%g,%g,%g,%g)", o.X, o.Y, o.W, o.H)
	}
}

// Recorder is a Surface that remembers every call, for diffing frames.
type Recorder struct {
	Ops []Op
}

// SetFillColor records a color change.
func (r *Recorder) SetFillColor(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpSetFill, Color: c})
}

// ClearRect records a clear.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, X: x, Y: y, W: w, H: h})
}

// FillRect records a fill.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, X: x, Y: y, W: w, H: h})
}

// Reset drops all recorded instructions.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
