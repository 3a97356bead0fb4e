package core

import "testing"

type fakeParams struct {
	count int
	ratio float64
	sets  int
}

func (f *fakeParams) ParameterControls() []ParameterControl {
	return []ParameterControl{
		{Key: "count", Type: ParamTypeInt, Value: float64(f.count), Step: 2, Min: 0, Max: 10, HasMin: true, HasMax: true},
		{Key: "ratio", Type: ParamTypeFloat, Value: f.ratio, Step: 0.1, Min: 0, HasMin: true},
	}
}

func (f *fakeParams) SetIntParameter(key string, value int) bool {
	if key != "count" {
		return false
	}
	f.count = value
	f.sets++
	return true
}

func (f *fakeParams) SetFloatParameter(key string, value float64) bool {
	if key != "ratio" {
		return false
	}
	f.ratio = value
	f.sets++
	return true
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Type: ParamTypeInt, Min: 1, Max: 5, HasMin: true, HasMax: true}
	cases := map[float64]float64{-4: 1, 2.4: 2, 2.6: 3, 9: 5}
	for in, want := range cases {
		if got := c.Clamp(in); got != want {
			t.Fatalf("Clamp(%v) = %v, want %v", in, got, want)
		}
	}

	f := ParameterControl{Type: ParamTypeFloat, Value: 0.2, Step: 0.1}
	if got := f.Nudge(1); got != 0.3 {
		t.Fatalf("0.2 nudged by 0.1 = %v, want 0.3", got)
	}
	if got := f.Nudge(-5); got != -0.3 {
		t.Fatalf("unbounded control clamped to %v", got)
	}
}

func TestAdjustDispatchesByType(t *testing.T) {
	p := &fakeParams{count: 4, ratio: 0.5}

	if !Adjust(p, "count", 2) || p.count != 8 {
		t.Fatalf("count = %d, want 8", p.count)
	}
	if !Adjust(p, "count", 5) || p.count != 10 {
		t.Fatalf("count = %d, want clamp at 10", p.count)
	}
	if Adjust(p, "count", 1) {
		t.Fatal("adjusting a control pinned at its max must report no change")
	}
	if !Adjust(p, "ratio", -2) || p.ratio != 0.3 {
		t.Fatalf("ratio = %v, want 0.3", p.ratio)
	}
	if Adjust(p, "missing", 1) {
		t.Fatal("unknown keys must report no change")
	}
	if p.sets != 3 {
		t.Fatalf("setters called %d times, want 3", p.sets)
	}
}
