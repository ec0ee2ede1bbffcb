// Package territory extracts the frontier of a player's holdings from
// an owner grid.
package territory

import "github.com/gravitas-015/tilecore/hex"

// Frontier returns the tiles bordering playerID's territory: every
// in-bounds neighbor of an owned tile that playerID does not own,
// whether unowned or held by a rival. Duplicates are dropped and the
// output keeps first-discovery order, with owned tiles scanned
// row-major and neighbors visited in direction-table order.
func Frontier(owners []int32, playerID int32, width, height int) []hex.Offset {
	if width <= 0 || height <= 0 {
		return nil
	}
	n := len(owners)
	if m := width * height; m < n {
		n = m
	}
	seen := map[hex.Offset]bool{}
	var out []hex.Offset
	for i := 0; i < n; i++ {
		if owners[i] != playerID {
			continue
		}
		tile := hex.Offset{Col: i % width, Row: i / width}
		for _, nb := range hex.Neighbors(tile) {
			if nb.Col < 0 || nb.Row < 0 || nb.Col >= width || nb.Row >= height {
				continue
			}
			ni := nb.Row*width + nb.Col
			if ni >= len(owners) || owners[ni] == playerID {
				continue
			}
			if !seen[nb] {
				seen[nb] = true
				out = append(out, nb)
			}
		}
	}
	return out
}
