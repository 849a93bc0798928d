package longest

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trailmaze/junction"
	"github.com/katalvlaran/trailmaze/maze"
)

// unreachable marks a subtree from which no terminal node can be reached.
const unreachable = -1

// cancelCheckMask throttles context polling to once per 4096 expansions.
const cancelCheckMask = 1<<12 - 1

// arc is an outgoing edge in dense form.
type arc struct {
	to     int
	weight int
}

// plan is the graph flattened to dense indices so the visited set can be a
// bitset. It is immutable and shared by every task.
type plan struct {
	nodes    []maze.Point
	index    map[maze.Point]int
	arcs     [][]arc
	terminal []bool
}

func newPlan(g *junction.Graph, terminal func(maze.Point) bool) *plan {
	store := g.Store()
	ids := store.Vertices()
	p := &plan{
		nodes:    make([]maze.Point, len(ids)),
		index:    make(map[maze.Point]int, len(ids)),
		arcs:     make([][]arc, len(ids)),
		terminal: make([]bool, len(ids)),
	}
	byID := make(map[string]int, len(ids))
	for i, id := range ids {
		n, _ := g.Point(id)
		p.nodes[i] = n
		p.index[n] = i
		p.terminal[i] = terminal(n)
		byID[id] = i
	}
	for _, e := range store.Edges() {
		from := byID[e.From]
		p.arcs[from] = append(p.arcs[from], arc{to: byID[e.To], weight: int(e.Weight)})
	}

	return p
}

// walker holds the shared, read-only plan and the atomic counters of one search.
type walker struct {
	plan     *plan
	opts     Options
	expanded atomic.Int64
	tasks    atomic.Int64
}

// Search returns the longest simple path from start to a terminal node of g.
// A start that is itself terminal yields Longest 0 with Found true.
func Search(g *junction.Graph, start maze.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Terminal == nil {
		exitRow := g.ExitRow
		o.Terminal = func(p maze.Point) bool { return p.Row == exitRow }
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	w := &walker{plan: newPlan(g, o.Terminal), opts: o}
	visited := bitset.New(uint(len(w.plan.nodes)))

	began := time.Now()
	best, err := w.walk(w.plan.index[start], visited, 0)
	elapsed := time.Since(began)
	observe(elapsed, w.expanded.Load(), w.tasks.Load(), err)
	if err != nil {
		return nil, fmt.Errorf("longest: search from %v: %w", start, err)
	}

	res := &Result{
		Found:    best != unreachable,
		Expanded: w.expanded.Load(),
		Tasks:    w.tasks.Load(),
		Elapsed:  elapsed,
	}
	if res.Found {
		res.Longest = best
	}
	o.Logger.Debug().
		Stringer("start", start).
		Int("nodes", len(w.plan.nodes)).
		Int("parallel_depth", o.ParallelDepth).
		Int("longest", res.Longest).
		Bool("found", res.Found).
		Int64("expanded", res.Expanded).
		Int64("tasks", res.Tasks).
		Dur("elapsed", elapsed).
		Msg("longest path search finished")

	return res, nil
}

// Longest is Search reduced to the path length.
func Longest(g *junction.Graph, start maze.Point, opts ...Option) (int, error) {
	res, err := Search(g, start, opts...)
	if err != nil {
		return 0, err
	}

	return res.Longest, nil
}

// walk returns the longest distance from u to a terminal node avoiding
// visited, or unreachable. visited is owned by the calling task and is
// restored before walk returns.
func (w *walker) walk(u int, visited *bitset.BitSet, depth int) (int, error) {
	if w.plan.terminal[u] {
		return 0, nil
	}
	if n := w.expanded.Add(1); depth < w.opts.ParallelDepth || n&cancelCheckMask == 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return unreachable, err
		}
	}

	visited.Set(uint(u))
	defer visited.Clear(uint(u))
	if depth < w.opts.ParallelDepth {
		return w.fanOut(u, visited, depth)
	}

	best := unreachable
	for _, a := range w.plan.arcs[u] {
		if visited.Test(uint(a.to)) {
			continue
		}
		got, err := w.walk(a.to, visited, depth+1)
		if err != nil {
			return unreachable, err
		}
		if got != unreachable && got+a.weight > best {
			best = got + a.weight
		}
	}

	return best, nil
}

// fanOut explores every viable branch of u in its own goroutine, each with
// a private clone of visited, and reduces the results with max.
func (w *walker) fanOut(u int, visited *bitset.BitSet, depth int) (int, error) {
	arcs := w.plan.arcs[u]
	results := make([]int, len(arcs))
	var g errgroup.Group
	for i, a := range arcs {
		results[i] = unreachable
		if visited.Test(uint(a.to)) {
			continue
		}
		w.tasks.Add(1)
		own := visited.Clone()
		g.Go(func() error {
			got, err := w.walk(a.to, own, depth+1)
			if err != nil {
				return err
			}
			if got != unreachable {
				results[i] = got + a.weight
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return unreachable, err
	}

	best := unreachable
	for _, r := range results {
		if r > best {
			best = r
		}
	}

	return best, nil
}
