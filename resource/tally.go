// Package resource tallies per-player yields from tile ownership.
package resource

import "github.com/gravitas-015/tilecore"

// Yield is a resource triple, used both for per-tile yields and for
// per-player totals.
type Yield struct {
	Food       int32
	Production int32
	Gold       int32
}

// Table maps tile types to their yields. Types missing from the table
// yield nothing.
type Table map[tilecore.TileType]Yield

// DefaultTable returns the standard terrain yields.
func DefaultTable() Table {
	return Table{
		tilecore.Plains:        {Food: 1, Production: 1},
		tilecore.Forest:        {Production: 2},
		tilecore.Mountain:      {Production: 3, Gold: 1},
		tilecore.Water:         {Gold: 2},
		tilecore.Desert:        {Food: 1, Gold: 1},
		tilecore.FertilePlains: {Food: 3, Production: 1},
	}
}

// Tally sums tile yields per owning player. Tiles whose owner falls
// outside [0, numPlayers) are skipped, and mismatched input lengths
// clamp the scan to the shorter array. The result always holds
// numPlayers entries, zero totals included.
func Tally(tiles, owners []int32, numPlayers int, table Table) []Yield {
	if numPlayers < 0 {
		numPlayers = 0
	}
	totals := make([]Yield, numPlayers)
	n := len(tiles)
	if len(owners) < n {
		n = len(owners)
	}
	for i := 0; i < n; i++ {
		owner := owners[i]
		if owner < 0 || int(owner) >= numPlayers {
			continue
		}
		y := table[tilecore.TileType(tiles[i])]
		totals[owner].Food += y.Food
		totals[owner].Production += y.Production
		totals[owner].Gold += y.Gold
	}
	return totals
}
