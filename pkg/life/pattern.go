package life

import "sort"

// Pattern is a named seed template. Cells holds (row, col) offsets of live
// cells relative to the top-left corner.
type Pattern struct {
	Name  string
	Descr string
	Cells [][2]int
}

// Bounds returns the height and width of the pattern's bounding box.
func (p Pattern) Bounds() (rows, cols int) {
	for _, rc := range p.Cells {
		if rc[0]+1 > rows {
			rows = rc[0] + 1
		}
		if rc[1]+1 > cols {
			cols = rc[1] + 1
		}
	}
	return rows, cols
}

var (
	// Glider travels one cell down and right every four generations.
	Glider = Pattern{
		Name:  "glider",
		Descr: "spaceship moving towards the bottom right",
		Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}
	// Blinker is a horizontal line of three that oscillates with period 2.
	Blinker = Pattern{
		Name:  "blinker",
		Descr: "period 2 oscillator",
		Cells: [][2]int{{0, 0}, {0, 1}, {0, 2}},
	}
	// Block is the 2x2 still life.
	Block = Pattern{
		Name:  "block",
		Descr: "2x2 still life",
		Cells: [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}
)

var patterns = map[string]Pattern{}

// RegisterPattern adds a template under its name.
func RegisterPattern(p Pattern) {
	if p.Name == "" {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the template registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the registered templates in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterPattern(Glider)
	RegisterPattern(Blinker)
	RegisterPattern(Block)
}
