package maze

import (
	"fmt"
	"strings"
)

// Terrain tags a single grid cell.
type Terrain uint8

const (
	// Wall is impassable ('#').
	Wall Terrain = iota
	// Open is passable in every direction ('.').
	Open
	// SlopeUp may only be entered or left moving up ('^').
	SlopeUp
	// SlopeRight may only be entered or left moving right ('>').
	SlopeRight
	// SlopeDown may only be entered or left moving down ('v').
	SlopeDown
	// SlopeLeft may only be entered or left moving left ('<').
	SlopeLeft
)

var terrainRunes = [...]rune{
	Wall:       '#',
	Open:       '.',
	SlopeUp:    '^',
	SlopeRight: '>',
	SlopeDown:  'v',
	SlopeLeft:  '<',
}

// TerrainOf maps a maze character to its Terrain.
func TerrainOf(r rune) (Terrain, bool) {
	for t, c := range terrainRunes {
		if c == r {
			return Terrain(t), true
		}
	}

	return Wall, false
}

// Rune returns the character used for t in text mazes.
func (t Terrain) Rune() rune {
	if int(t) < len(terrainRunes) {
		return terrainRunes[t]
	}

	return '?'
}

// String implements fmt.Stringer.
func (t Terrain) String() string { return string(t.Rune()) }

// Passable reports whether t can be stood on at all.
func (t Terrain) Passable() bool { return t != Wall }

// IsSlope reports whether t is one of the four one-way tiles.
func (t Terrain) IsSlope() bool { return t >= SlopeUp && t <= SlopeLeft }

// Direction returns the only step allowed on a slope; ok is false for
// Open and Wall.
func (t Terrain) Direction() (Point, bool) {
	switch t {
	case SlopeUp:
		return Up, true
	case SlopeRight:
		return Right, true
	case SlopeDown:
		return Down, true
	case SlopeLeft:
		return Left, true
	}

	return Point{}, false
}

// Point is a grid coordinate. Row grows downward, Col grows rightward.
type Point struct {
	Row, Col int
}

// Unit steps.
var (
	Up    = Point{Row: -1}
	Right = Point{Col: 1}
	Down  = Point{Row: 1}
	Left  = Point{Col: -1}
)

// steps is the fixed probing order used for neighbours: down, right, up, left.
var steps = [4]Point{Down, Right, Up, Left}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{Row: p.Row + d.Row, Col: p.Col + d.Col} }

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point { return Point{Row: p.Row - q.Row, Col: p.Col - q.Col} }

// Less orders points row-major.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// Compare returns -1, 0 or +1 in row-major order; suitable for slices.SortFunc.
func (p Point) Compare(q Point) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	}

	return 0
}

// String formats p as "row,col".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.Row, p.Col) }

// Mode selects how slopes are treated during traversal.
type Mode int

const (
	// Directional treats slopes as one-way tiles.
	Directional Mode = iota
	// Undirected treats every passable tile as two-way.
	Undirected
)

// Modes lists every mode in reporting order.
var Modes = []Mode{Directional, Undirected}

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Directional:
		return "directional"
	case Undirected:
		return "undirected"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String. It accepts only "directional" and
// "undirected", ignoring case and surrounding spaces.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "directional":
		return Directional, nil
	case "undirected":
		return Undirected, nil
	}

	return Directional, fmt.Errorf("maze: unknown mode %q", s)
}
