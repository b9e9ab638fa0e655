// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ctx.Err() on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("start %d with n=%d: %w", start, n, ErrStartVertexNotFound)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d with the given parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[v]

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		w.graph.ForEachNeighbor(v, func(u int) {
			if w.res.Depth[u] != Unreached || !w.opts.FilterNeighbor(v, u) {
				return
			}
			w.enqueue(u, d+1, v)
		})
	}

	return nil
}
