package ui

import (
	"strconv"

	"lifecanvas/internal/core"
)

// FormatValue renders a control's current value for display.
func FormatValue(c core.ParameterControl) string {
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(c.Value))
	}
	return strconv.FormatFloat(c.Value, 'f', -1, 64)
}

// ParamLines renders one line per control, marking the selected one.
func ParamLines(controls []core.ParameterControl, selected int) []string {
	lines := make([]string, len(controls))
	for i, c := range controls {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		lines[i] = marker + c.Label + ": " + FormatValue(c)
	}
	return lines
}
