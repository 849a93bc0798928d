package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is an immutable rectangle of terrain with its entrance and exit.
// cells[r][c] holds the terrain at Point{r, c}.
type Grid struct {
	Rows, Cols int
	Entrance   Point
	Exit       Point
	cells      [][]Terrain
}

// Parse builds a Grid from its text form. Blank lines around the maze and
// trailing carriage returns are ignored.
// Complexity: O(R×C).
func Parse(text string) (*Grid, error) {
	return Read(strings.NewReader(text))
}

// Read builds a Grid from r, line by line.
func Read(r io.Reader) (*Grid, error) {
	var rows [][]Terrain
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	pendingBlank := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r \t")
		if line == "" {
			// interior blank lines become ragged rows below
			if len(rows) > 0 {
				pendingBlank++
			}
			continue
		}
		for ; pendingBlank > 0; pendingBlank-- {
			rows = append(rows, []Terrain{})
		}
		row := make([]Terrain, 0, len(line))
		for col, ch := range []rune(line) {
			t, ok := TerrainOf(ch)
			if !ok {
				return nil, structural(ErrBadTerrain, len(rows), col, fmt.Sprintf("%q", ch))
			}
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	return New(rows)
}

// New validates rows and wraps them in a Grid. The input is deep-copied.
// Returns a *StructuralError for empty, short or ragged input and for a
// missing entrance or exit.
func New(rows [][]Terrain) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, structural(ErrEmptyGrid, -1, -1, "")
	}
	if len(rows) < 2 {
		return nil, structural(ErrTooShort, -1, -1, fmt.Sprintf("%d row", len(rows)))
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]Terrain, h)
	for r, row := range rows {
		if len(row) != w {
			return nil, structural(ErrNonRectangular, r, -1,
				fmt.Sprintf("length %d, want %d", len(row), w))
		}
		cells[r] = make([]Terrain, w)
		copy(cells[r], row)
	}

	entrance, ok := single(cells[0])
	if !ok {
		return nil, structural(ErrNoEntrance, 0, -1, "")
	}
	exit, ok := single(cells[h-1])
	if !ok {
		return nil, structural(ErrNoExit, h-1, -1, "")
	}

	return &Grid{
		Rows:     h,
		Cols:     w,
		Entrance: Point{Row: 0, Col: entrance},
		Exit:     Point{Row: h - 1, Col: exit},
		cells:    cells,
	}, nil
}

// single returns the column of the only passable cell in row.
func single(row []Terrain) (int, bool) {
	col := -1
	for c, t := range row {
		if !t.Passable() {
			continue
		}
		if col >= 0 {
			return -1, false
		}
		col = c
	}

	return col, col >= 0
}

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the terrain at p; out-of-bounds points read as Wall.
func (g *Grid) At(p Point) Terrain {
	if !g.InBounds(p) {
		return Wall
	}

	return g.cells[p.Row][p.Col]
}

// Neighbors appends to dst the passable orthogonal neighbours of p, in the
// order down, right, up, left, skipping skip. Directionality is ignored.
func (g *Grid) Neighbors(dst []Point, p, skip Point) []Point {
	for _, d := range steps {
		q := p.Add(d)
		if q == skip || !g.At(q).Passable() {
			continue
		}
		dst = append(dst, q)
	}

	return dst
}

// CanStep reports whether moving from one cell to an orthogonally adjacent
// one is legal in mode. In Directional mode a slope can only be entered or
// left by moving the way it points.
func (g *Grid) CanStep(from, to Point, mode Mode) bool {
	if !g.At(to).Passable() {
		return false
	}
	if mode == Undirected {
		return true
	}
	move := to.Sub(from)
	if d, ok := g.At(from).Direction(); ok && d != move {
		return false
	}
	if d, ok := g.At(to).Direction(); ok && d != move {
		return false
	}

	return true
}

// HasSlopes reports whether any cell is a slope.
func (g *Grid) HasSlopes() bool {
	for _, row := range g.cells {
		for _, t := range row {
			if t.IsSlope() {
				return true
			}
		}
	}

	return false
}

// String renders the grid back to its text form.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Rows * (g.Cols + 1))
	for _, row := range g.cells {
		for _, t := range row {
			b.WriteRune(t.Rune())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
