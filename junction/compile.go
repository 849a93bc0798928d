package junction

import (
	"fmt"

	"github.com/katalvlaran/trailmaze/maze"
)

// pending is a corridor waiting to be traced: the node it leaves from and
// the first cell stepped onto.
type pending struct {
	from, next maze.Point
}

// compiler carries the state of one Compile call.
type compiler struct {
	grid  *maze.Grid
	opts  Options
	graph *Graph
	work  []pending
	// scratch is reused for neighbour lookups to avoid per-step allocation
	scratch []maze.Point
	walked  int
}

// Compile converts grid into a junction Graph.
//
// The entrance and exit are registered up front. Corridors are traced from a
// work list seeded with the entrance's neighbours; each newly discovered
// terminus adds its own outgoing corridors to the list, and termini seen
// before are never expanded again. When pruning is enabled (the default)
// Prune runs on the finished graph.
//
// Returns ErrGridNil for a nil grid and an *ExhaustionError if any corridor
// exceeds the step limit.
func Compile(grid *maze.Grid, opts ...Option) (*Graph, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.StepLimit == 0 {
		o.StepLimit = grid.Rows * grid.Cols
	}

	c := &compiler{
		grid:    grid,
		opts:    o,
		graph:   newGraph(grid, o.Mode),
		scratch: make([]maze.Point, 0, 4),
	}
	c.expand(grid.Entrance, maze.Point{Row: -1, Col: -1})

	for len(c.work) > 0 {
		next := c.work[len(c.work)-1]
		c.work = c.work[:len(c.work)-1]
		if err := c.trace(next.from, next.next); err != nil {
			return nil, err
		}
	}

	removed := 0
	if o.Prune {
		removed = Prune(c.graph)
	}

	o.Logger.Debug().
		Stringer("mode", o.Mode).
		Int("rows", grid.Rows).
		Int("cols", grid.Cols).
		Int("cells_walked", c.walked).
		Int("nodes", c.graph.NodeCount()).
		Int("edges", c.graph.EdgeCount()).
		Int("pruned", removed).
		Msg("junction graph compiled")

	return c.graph, nil
}

// expand schedules one corridor per passable neighbour of node, except the
// cell it was entered from.
func (c *compiler) expand(node, came maze.Point) {
	c.scratch = c.grid.Neighbors(c.scratch[:0], node, came)
	for _, q := range c.scratch {
		c.work = append(c.work, pending{from: node, next: q})
	}
}

// trace walks the corridor that starts at from and first steps onto next,
// until it reaches the exit row, a dead end or a branch cell.
func (c *compiler) trace(from, next maze.Point) error {
	prev, cur := from, next
	forward, backward := true, true
	for steps := 1; ; steps++ {
		if steps > c.opts.StepLimit {
			return &ExhaustionError{From: from, At: cur, Limit: c.opts.StepLimit}
		}
		c.walked++
		forward = forward && c.grid.CanStep(prev, cur, c.opts.Mode)
		backward = backward && c.grid.CanStep(cur, prev, c.opts.Mode)

		if cur.Row == c.graph.ExitRow {
			c.graph.addCorridor(port{from, next.Sub(from)}, port{cur, prev.Sub(cur)})
			return c.link(from, cur, steps, forward, backward)
		}

		c.scratch = c.grid.Neighbors(c.scratch[:0], cur, prev)
		if len(c.scratch) == 1 {
			prev, cur = cur, c.scratch[0]
			continue
		}

		c.graph.addCorridor(port{from, next.Sub(from)}, port{cur, prev.Sub(cur)})
		// a corridor that bends back into its own origin adds no edge
		if cur == from {
			return nil
		}
		known := c.graph.addNode(cur)
		if err := c.link(from, cur, steps, forward, backward); err != nil {
			return err
		}
		if !known {
			c.expand(cur, prev)
		}

		return nil
	}
}

// link registers the corridor between a and b in each legal direction.
func (c *compiler) link(a, b maze.Point, steps int, forward, backward bool) error {
	if forward {
		if err := c.graph.setEdge(a, b, steps); err != nil {
			return fmt.Errorf("junction: edge %v->%v: %w", a, b, err)
		}
	}
	if backward {
		if err := c.graph.setEdge(b, a, steps); err != nil {
			return fmt.Errorf("junction: edge %v->%v: %w", b, a, err)
		}
	}

	return nil
}
