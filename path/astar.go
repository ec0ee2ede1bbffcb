// Package path implements shortest-path search and movement-range
// queries over the odd-q offset hex grid.
package path

import (
	"container/heap"

	"github.com/gravitas-015/tilecore/hex"
)

// FindPath computes a shortest path between two tiles using A* with the
// hex distance heuristic.
//   - blocked tiles are impassable
//   - costs maps a tile to the cost of stepping onto it (default 1.0)
//   - maxDistance caps the search to tiles within that hex distance of from
//
// The returned path includes both endpoints; nil means no path exists.
// A blocked goal fails fast without searching.
func FindPath(from, to hex.Offset, blocked map[hex.Offset]bool, costs map[hex.Offset]float64, maxDistance int) []hex.Offset {
	if blocked[to] {
		return nil
	}

	open := &nodePQ{}
	heap.Init(open)
	heap.Push(open, &pqNode{pos: from, f: float64(hex.Distance(from, to))})

	came := map[hex.Offset]hex.Offset{}
	g := map[hex.Offset]float64{from: 0}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode)
		if cur.pos == to {
			return reconstruct(came, from, to)
		}
		// a cheaper route to this tile was queued after this entry
		if cur.g > g[cur.pos] {
			continue
		}
		for _, nb := range hex.Neighbors(cur.pos) {
			if blocked[nb] {
				continue
			}
			if hex.Distance(from, nb) > maxDistance {
				continue
			}
			step, ok := costs[nb]
			if !ok {
				step = 1.0
			}
			tentative := cur.g + step
			if best, seen := g[nb]; seen && tentative >= best {
				continue
			}
			came[nb] = cur.pos
			g[nb] = tentative
			heap.Push(open, &pqNode{pos: nb, g: tentative, f: tentative + float64(hex.Distance(nb, to))})
		}
	}
	return nil
}

func reconstruct(came map[hex.Offset]hex.Offset, from, to hex.Offset) []hex.Offset {
	path := []hex.Offset{to}
	for cur := to; cur != from; {
		cur = came[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqNode struct {
	pos hex.Offset
	g   float64
	f   float64
	idx int
}

type nodePQ []*pqNode

func (p nodePQ) Len() int           { return len(p) }
func (p nodePQ) Less(i, j int) bool { return p[i].f < p[j].f }
func (p nodePQ) Swap(i, j int)      { p[i], p[j] = p[j], p[i]; p[i].idx = i; p[j].idx = j }
func (p *nodePQ) Push(x any)        { *p = append(*p, x.(*pqNode)) }
func (p *nodePQ) Pop() any          { old := *p; n := len(old); x := old[n-1]; *p = old[:n-1]; return x }
