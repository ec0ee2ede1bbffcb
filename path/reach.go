package path

import (
	"container/heap"
	"sort"

	"github.com/gravitas-015/tilecore/hex"
)

// Reachable returns every tile whose cheapest movement cost from start
// is at most budget, start included. blocked and costs follow the same
// conventions as FindPath. The result is sorted row-major so equal
// inputs always produce equal output.
func Reachable(start hex.Offset, blocked map[hex.Offset]bool, costs map[hex.Offset]float64, budget float64) []hex.Offset {
	if budget < 0 {
		return nil
	}
	dist := map[hex.Offset]float64{start: 0}
	open := &nodePQ{}
	heap.Init(open)
	heap.Push(open, &pqNode{pos: start})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqNode)
		if cur.g > dist[cur.pos] {
			continue
		}
		for _, nb := range hex.Neighbors(cur.pos) {
			if blocked[nb] {
				continue
			}
			step, ok := costs[nb]
			if !ok {
				step = 1.0
			}
			next := cur.g + step
			if next > budget {
				continue
			}
			if best, seen := dist[nb]; seen && next >= best {
				continue
			}
			dist[nb] = next
			heap.Push(open, &pqNode{pos: nb, g: next, f: next})
		}
	}

	out := make([]hex.Offset, 0, len(dist))
	for p := range dist {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
