// Package field computes per-player influence grids from unit positions
// and territory ownership.
//
// Influence spreads from each source as a gaussian over grid distance
// and is accumulated into one float32 grid per player. A player's final
// grid is net influence: their own accumulation minus the strongest
// rival accumulation on each cell.
package field

import (
	"math"

	"gonum.org/v1/gonum/blas/blas32"

	"github.com/gravitas-015/tilecore/hex"
)

// Params control the influence falloff and source strengths.
type Params struct {
	Sigma           float64 // gaussian spread in tiles
	UnitWeight      float64 // peak contribution of a single unit
	TerritoryWeight float64 // peak contribution of an owned tile
}

// DefaultParams returns the standard falloff used by the game balance.
func DefaultParams() Params {
	return Params{Sigma: 4.0, UnitWeight: 2.0, TerritoryWeight: 0.5}
}

// Map holds the most recent influence computation. Compute replaces all
// prior state; a Map is not safe for concurrent use.
type Map struct {
	params  Params
	reach   int       // kernel cutoff at 3 sigma
	kernel  []float32 // (2*reach+1)^2 falloff table
	width   int
	height  int
	players int
	net     [][]float32
}

// New builds a Map with a precomputed falloff kernel. A non-positive
// Sigma falls back to the default spread.
func New(p Params) *Map {
	if p.Sigma <= 0 {
		p.Sigma = DefaultParams().Sigma
	}
	reach := int(3 * p.Sigma)
	span := 2*reach + 1
	kernel := make([]float32, span*span)
	twoSigmaSq := 2 * p.Sigma * p.Sigma
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			d2 := float64(dx*dx + dy*dy)
			kernel[(dy+reach)*span+(dx+reach)] = float32(math.Exp(-d2 / twoSigmaSq))
		}
	}
	return &Map{params: p, reach: reach, kernel: kernel}
}

// Compute rebuilds influence for every player from unit positions and
// the territory owner grid. owners is row-major with -1 for unowned
// tiles; the player count is inferred from the highest player id seen
// in either input. Unit lists keyed by a negative id are ignored.
func (m *Map) Compute(units map[int][]hex.Offset, owners []int32, width, height int) {
	if width <= 0 || height <= 0 {
		m.width, m.height, m.players, m.net = 0, 0, 0, nil
		return
	}
	m.width, m.height = width, height

	maxID := -1
	for pid := range units {
		if pid > maxID {
			maxID = pid
		}
	}
	for _, owner := range owners {
		if int(owner) > maxID {
			maxID = int(owner)
		}
	}
	np := maxID + 1
	m.players = np

	raw := make([][]float32, np)
	for i := range raw {
		raw[i] = make([]float32, width*height)
	}

	for pid, positions := range units {
		if pid < 0 || pid >= np {
			continue
		}
		for _, pos := range positions {
			m.stamp(raw[pid], pos.Col, pos.Row, float32(m.params.UnitWeight))
		}
	}
	for i, owner := range owners {
		if owner < 0 || int(owner) >= np {
			continue
		}
		m.stamp(raw[owner], i%width, i/width, float32(m.params.TerritoryWeight))
	}

	m.net = make([][]float32, np)
	for pid := 0; pid < np; pid++ {
		net := make([]float32, width*height)
		for i := range net {
			var rival float32
			for other := 0; other < np; other++ {
				if other != pid && raw[other][i] > rival {
					rival = raw[other][i]
				}
			}
			net[i] = raw[pid][i] - rival
		}
		m.net[pid] = net
	}
}

// stamp adds weight*kernel centered on (cx, cy), clipped to the grid.
// Each surviving kernel row is accumulated with a single axpy.
func (m *Map) stamp(grid []float32, cx, cy int, weight float32) {
	span := 2*m.reach + 1
	for dy := -m.reach; dy <= m.reach; dy++ {
		ny := cy + dy
		if ny < 0 || ny >= m.height {
			continue
		}
		xlo := cx - m.reach
		if xlo < 0 {
			xlo = 0
		}
		xhi := cx + m.reach
		if xhi > m.width-1 {
			xhi = m.width - 1
		}
		n := xhi - xlo + 1
		if n <= 0 {
			continue
		}
		k := (dy+m.reach)*span + (xlo - cx + m.reach)
		row := ny*m.width + xlo
		blas32.Axpy(weight,
			blas32.Vector{N: n, Inc: 1, Data: m.kernel[k : k+n]},
			blas32.Vector{N: n, Inc: 1, Data: grid[row : row+n]})
	}
}

// PlayerInfluence returns a copy of the net influence grid for the
// given player, or nil if the player is unknown or Compute has not run.
func (m *Map) PlayerInfluence(player int) []float32 {
	if player < 0 || player >= len(m.net) {
		return nil
	}
	out := make([]float32, len(m.net[player]))
	copy(out, m.net[player])
	return out
}

// Width returns the grid width of the last computation.
func (m *Map) Width() int { return m.width }

// Height returns the grid height of the last computation.
func (m *Map) Height() int { return m.height }

// NumPlayers returns the player count inferred by the last computation.
func (m *Map) NumPlayers() int { return m.players }
