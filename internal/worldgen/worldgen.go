// Package worldgen produces deterministic terrain, ownership, and unit
// layouts for benchmarks and tests.
//
// Terrain comes from layered simplex noise: an elevation map picks
// water and mountains, a rainfall map splits the remaining land into
// desert, plains, forest, and fertile river plains. Players start on a
// ring around the map center, each with a disk of claimed territory
// and a handful of units on their own ground.
package worldgen

import (
	"math"
	"math/rand"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gravitas-015/tilecore"
	"github.com/gravitas-015/tilecore/hex"
)

// Params holds world generation parameters.
type Params struct {
	Width          int
	Height         int
	Players        int
	Seed           int64
	SeaLevel       float64 // elevation threshold for water
	MountainLevel  float64 // elevation threshold for mountains
	ClaimRadius    int     // starting territory disk per player
	UnitsPerPlayer int
}

// DefaultParams returns a medium four-player skirmish map.
func DefaultParams() Params {
	return Params{
		Width:          48,
		Height:         48,
		Players:        4,
		Seed:           1,
		SeaLevel:       0.30,
		MountainLevel:  0.72,
		ClaimRadius:    4,
		UnitsPerPlayer: 12,
	}
}

// Snapshot is a complete grid state in the forms the spatial queries
// consume: tile-type grid, owner grid, and per-player unit positions.
type Snapshot struct {
	Width   int
	Height  int
	Players int
	Tiles   []int32
	Owners  []int32
	Units   map[int][]hex.Offset
}

// Generate builds a snapshot from the given parameters. The same
// Params always produce the same snapshot.
func Generate(p Params) *Snapshot {
	w, h := p.Width, p.Height
	snap := &Snapshot{
		Width:   w,
		Height:  h,
		Players: p.Players,
		Tiles:   make([]int32, w*h),
		Owners:  make([]int32, w*h),
		Units:   make(map[int][]hex.Offset, p.Players),
	}
	for i := range snap.Owners {
		snap.Owners[i] = tilecore.Unowned
	}

	elevNoise := opensimplex.NewNormalized(p.Seed)
	rainNoise := opensimplex.NewNormalized(p.Seed + 1)

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			x, y := (hex.Offset{Col: col, Row: row}).ToPixel(1.0)
			elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
			rain := octaveNoise(rainNoise, x, y, 3, 0.06, 0.5)
			snap.Tiles[tilecore.CellIndex(col, row, w)] = int32(classify(elev, rain, p))
		}
	}

	for pid := 0; pid < p.Players; pid++ {
		start := snap.startFor(pid, p)
		for _, tile := range hex.Disk(start, p.ClaimRadius) {
			if !snap.inBounds(tile) || !snap.passable(tile) {
				continue
			}
			i := tilecore.CellIndex(tile.Col, tile.Row, w)
			if snap.Owners[i] == tilecore.Unowned {
				snap.Owners[i] = int32(pid)
			}
		}
		snap.placeUnits(pid, p)
	}
	return snap
}

// classify derives a tile type from the noise layers.
func classify(elev, rain float64, p Params) tilecore.TileType {
	switch {
	case elev < p.SeaLevel:
		return tilecore.Water
	case elev > p.MountainLevel:
		return tilecore.Mountain
	case rain < 0.25:
		return tilecore.Desert
	case rain > 0.65 && elev < 0.5:
		return tilecore.FertilePlains
	case rain > 0.45:
		return tilecore.Forest
	default:
		return tilecore.Plains
	}
}

// startFor spreads player starts around a ring at two thirds of the
// map's half-extent, nudged outward to the nearest passable tile.
func (s *Snapshot) startFor(pid int, p Params) hex.Offset {
	cx, cy := float64(p.Width)/2, float64(p.Height)/2
	r := math.Min(cx, cy) * 2 / 3
	angle := 2 * math.Pi * float64(pid) / float64(max(p.Players, 1))
	ideal := hex.Offset{
		Col: int(cx + r*math.Cos(angle)),
		Row: int(cy + r*math.Sin(angle)),
	}
	for ring := 0; ring < p.Width+p.Height; ring++ {
		for _, tile := range hex.Ring(ideal, ring) {
			if s.inBounds(tile) && s.passable(tile) {
				return tile
			}
		}
	}
	return ideal
}

// placeUnits drops units on the player's own tiles. Placement reuses
// the world seed so snapshots replay identically.
func (s *Snapshot) placeUnits(pid int, p Params) {
	var home []hex.Offset
	for i, owner := range s.Owners {
		if int(owner) == pid {
			home = append(home, hex.Offset{Col: i % s.Width, Row: i / s.Width})
		}
	}
	if len(home) == 0 {
		return
	}
	rng := rand.New(rand.NewSource(p.Seed + 100 + int64(pid)))
	units := make([]hex.Offset, 0, p.UnitsPerPlayer)
	for k := 0; k < p.UnitsPerPlayer; k++ {
		units = append(units, home[rng.Intn(len(home))])
	}
	s.Units[pid] = units
}

func (s *Snapshot) inBounds(p hex.Offset) bool {
	return p.Col >= 0 && p.Row >= 0 && p.Col < s.Width && p.Row < s.Height
}

func (s *Snapshot) passable(p hex.Offset) bool {
	t := tilecore.TileType(s.Tiles[tilecore.CellIndex(p.Col, p.Row, s.Width)])
	return t != tilecore.Water && t != tilecore.Mountain
}

// Blocked returns the set of movement-impassable tiles, water and
// mountains.
func (s *Snapshot) Blocked() map[hex.Offset]bool {
	blocked := map[hex.Offset]bool{}
	for i, raw := range s.Tiles {
		t := tilecore.TileType(raw)
		if t == tilecore.Water || t == tilecore.Mountain {
			blocked[hex.Offset{Col: i % s.Width, Row: i / s.Width}] = true
		}
	}
	return blocked
}

// MoveCosts returns the terrain cost map: forest 2.0, desert 1.5,
// everything else the implicit default of 1.0.
func (s *Snapshot) MoveCosts() map[hex.Offset]float64 {
	costs := map[hex.Offset]float64{}
	for i, raw := range s.Tiles {
		var c float64
		switch tilecore.TileType(raw) {
		case tilecore.Forest:
			c = 2.0
		case tilecore.Desert:
			c = 1.5
		default:
			continue
		}
		costs[hex.Offset{Col: i % s.Width, Row: i / s.Width}] = c
	}
	return costs
}

// UnitList flattens the unit map into parallel position and owner
// slices ordered by player id.
func (s *Snapshot) UnitList() ([]hex.Offset, []int32) {
	pids := make([]int, 0, len(s.Units))
	for pid := range s.Units {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	var positions []hex.Offset
	var owners []int32
	for _, pid := range pids {
		for _, pos := range s.Units[pid] {
			positions = append(positions, pos)
			owners = append(owners, int32(pid))
		}
	}
	return positions, owners
}

// octaveNoise layers noise octaves, halving amplitude and doubling
// frequency each step, normalized back to [0,1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
