// Package sight implements terrain line-of-sight checks between hexes.
package sight

import (
	"github.com/gravitas-015/tilecore"
	"github.com/gravitas-015/tilecore/hex"
)

// HasLine reports whether the straight line between two tiles is clear.
// The line is sampled at dist-1 evenly spaced points interpolated in
// cube space and rounded back to tiles; a sample on a mountain or
// outside the grid blocks sight. Endpoints are never checked, and any
// pair at hex distance <= 1 can always see each other.
func HasLine(from, to hex.Offset, tiles []int32, width, height int) bool {
	dist := hex.Distance(from, to)
	if dist <= 1 {
		return true
	}
	a := from.Axial().Cube()
	b := to.Axial().Cube()
	for step := 1; step < dist; step++ {
		t := float64(step) / float64(dist)
		fx := float64(a.X) + float64(b.X-a.X)*t
		fy := float64(a.Y) + float64(b.Y-a.Y)*t
		fz := float64(a.Z) + float64(b.Z-a.Z)*t
		p := hex.RoundCube(fx, fy, fz).Axial().Offset()
		if p.Col < 0 || p.Row < 0 || p.Col >= width || p.Row >= height {
			return false
		}
		idx := p.Row*width + p.Col
		if idx < len(tiles) && tilecore.TileType(tiles[idx]) == tilecore.Mountain {
			return false
		}
	}
	return true
}
