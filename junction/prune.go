package junction

import (
	"slices"

	"github.com/katalvlaran/trailmaze/maze"
)

// clockwise is the rotation order of corridor ports around a node.
var clockwise = [4]maze.Point{maze.Up, maze.Right, maze.Down, maze.Left}

// Prune removes border back-edges from g and returns how many edges it
// deleted.
//
// Corridors never cross, so the junction graph is planar with the embedding
// the maze draws. Prune walks the outer face starting at the entrance. When
// that walk, apart from the entrance and exit spurs, is a simple cycle, the
// cycle splits into two arms from first (the entrance's junction) to last
// (the exit's junction). For arm nodes a(i) and a(i+1), a simple path that
// moves from a(i+1) back to a(i) has already used a route from first to
// a(i+1), and that route separates a(i) from last inside the cycle, so the
// edge a(i+1)→a(i) can never carry a path to the exit and is removed.
//
// When the outer walk is not a simple cycle (dead ends or cut vertices on
// the border, a missing entrance corridor) nothing is removed.
func Prune(g *Graph) int {
	arms, ok := borderArms(g)
	if !ok {
		return 0
	}

	removed := 0
	for _, arm := range arms {
		// edges into first (arm[0]) stay
		for i := 1; i+1 < len(arm); i++ {
			if g.removeEdge(arm[i+1], arm[i]) {
				removed++
			}
		}
	}

	return removed
}

// outerWalk returns the ports visited while tracing the outer face from the
// entrance, or false if the walk does not close.
func outerWalk(g *Graph) ([]port, bool) {
	start := port{at: g.Entrance, dir: maze.Down}
	if _, ok := g.corridors[start]; !ok {
		return nil, false
	}

	walk := make([]port, 0, len(g.corridors))
	p := start
	for range len(g.corridors) + 1 {
		walk = append(walk, p)
		p = nextOnFace(g, g.corridors[p])
		if p == start {
			return walk, true
		}
	}

	return nil, false
}

// nextOnFace returns the port leaving arrival's node right after it in
// clockwise order. A node with a single port sends the walk straight back.
func nextOnFace(g *Graph, arrival port) port {
	i := 0
	for clockwise[i] != arrival.dir {
		i++
	}
	for k := 1; k <= len(clockwise); k++ {
		p := port{at: arrival.at, dir: clockwise[(i+k)%len(clockwise)]}
		if _, ok := g.corridors[p]; ok {
			return p
		}
	}

	return arrival
}

// borderArms splits the outer face into the two node sequences that run
// from first to last, and reports false unless together they form a simple
// cycle.
func borderArms(g *Graph) ([2][]maze.Point, bool) {
	var arms [2][]maze.Point
	walk, ok := outerWalk(g)
	if !ok {
		return arms, false
	}

	exitAt := -1
	for i, p := range walk {
		switch {
		case p.at == g.Exit && exitAt >= 0:
			return arms, false
		case p.at == g.Exit:
			exitAt = i
		case p.at == g.Entrance && i > 0:
			return arms, false
		}
	}
	if exitAt < 2 || exitAt == len(walk)-1 {
		return arms, false
	}

	there := nodesOf(walk[1:exitAt])
	back := nodesOf(walk[exitAt+1:])
	first, last := there[0], there[len(there)-1]
	if first == last || back[0] != last || back[len(back)-1] != first {
		return arms, false
	}

	seen := make(map[maze.Point]int, len(there)+len(back))
	for _, p := range there {
		seen[p]++
	}
	for _, p := range back {
		seen[p]++
	}
	for p, n := range seen {
		if n > 2 || (n == 2 && p != first && p != last) {
			return arms, false
		}
	}

	// each corridor may bound the cycle once
	used := make(map[port]bool, len(walk))
	for i := 1; i < len(walk)-1; i++ {
		if i == exitAt-1 || i == exitAt {
			continue // the exit spur
		}
		key, q := walk[i], g.corridors[walk[i]]
		if q.at.Less(key.at) || (q.at == key.at && q.dir.Less(key.dir)) {
			key = q
		}
		if used[key] {
			return arms, false
		}
		used[key] = true
	}

	slices.Reverse(back)
	arms[0], arms[1] = there, back

	return arms, true
}

func nodesOf(ports []port) []maze.Point {
	out := make([]maze.Point, len(ports))
	for i, p := range ports {
		out[i] = p.at
	}

	return out
}
