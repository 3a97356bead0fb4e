package ui

import "strconv"

// Status is the snapshot of simulation progress shown to the user.
type Status struct {
	Generation int
	Population int
	Running    bool
}

// Field is one labelled value of a Status.
type Field struct {
	Label string
	Value string
}

// Fields returns the status as labelled values in display order.
func (s Status) Fields() []Field {
	mode := "paused"
	if s.Running {
		mode = "running"
	}
	return []Field{
		{Label: "Generation", Value: strconv.Itoa(s.Generation)},
		{Label: "Live cells", Value: strconv.Itoa(s.Population)},
		{Label: "Mode", Value: mode},
	}
}

// String renders the status on one line.
func (s Status) String() string {
	out := ""
	for i, f := range s.Fields() {
		if i > 0 {
			out += "  "
		}
		out += f.Label + ": " + f.Value
	}
	return out
}
