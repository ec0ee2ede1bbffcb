// Package scenario builds deterministic query workloads over generated
// worlds and records them as replayable traces.
package scenario

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/tilecore"
	"github.com/gravitas-015/tilecore/hex"
	"github.com/gravitas-015/tilecore/internal/worldgen"
)

// Kind identifies one query operation type.
type Kind int32

const (
	OpPath Kind = iota
	OpReach
	OpInfluence
	OpFrontier
	OpTargets
	OpResources
	OpSight
)

// String returns the short name used in benchmark output.
func (k Kind) String() string {
	switch k {
	case OpPath:
		return "path"
	case OpReach:
		return "reach"
	case OpInfluence:
		return "influence"
	case OpFrontier:
		return "frontier"
	case OpTargets:
		return "targets"
	case OpResources:
		return "resources"
	case OpSight:
		return "sight"
	default:
		return "unknown"
	}
}

// Op is a single recorded query. The coordinate and player fields are
// meaningful only for the kinds that use them.
type Op struct {
	Kind    Kind  `msgpack:"k"`
	FromCol int32 `msgpack:"fc"`
	FromRow int32 `msgpack:"fr"`
	ToCol   int32 `msgpack:"tc"`
	ToRow   int32 `msgpack:"tr"`
	Player  int32 `msgpack:"p"`
}

// From returns the source tile of the op.
func (o Op) From() hex.Offset {
	return hex.Offset{Col: int(o.FromCol), Row: int(o.FromRow)}
}

// To returns the destination tile of the op.
func (o Op) To() hex.Offset {
	return hex.Offset{Col: int(o.ToCol), Row: int(o.ToRow)}
}

// QueryMix sets how many queries of each kind one benchmark round runs.
type QueryMix struct {
	Paths     int `yaml:"paths"`
	Reaches   int `yaml:"reaches"`
	Influence int `yaml:"influence"`
	Frontiers int `yaml:"frontiers"`
	Targets   int `yaml:"targets"`
	Resources int `yaml:"resources"`
	Sights    int `yaml:"sights"`
}

// Total returns the number of queries in one round.
func (m QueryMix) Total() int {
	return m.Paths + m.Reaches + m.Influence + m.Frontiers + m.Targets + m.Resources + m.Sights
}

// Scenario names a query mix.
type Scenario struct {
	Name string   `yaml:"name"`
	Mix  QueryMix `yaml:"mix"`
}

// Default returns a mid-game skirmish round: pathing and sight checks
// dominate, with periodic field and economy updates.
func Default() *Scenario {
	return &Scenario{
		Name: "skirmish",
		Mix: QueryMix{
			Paths:     40,
			Reaches:   10,
			Influence: 2,
			Frontiers: 8,
			Targets:   4,
			Resources: 4,
			Sights:    60,
		},
	}
}

// Load reads a scenario from a YAML file. Fields absent from the file
// keep their defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return s, nil
}

// BuildOps expands a query mix into a concrete operation list against
// the given world. The same snapshot, mix and seed always produce the
// same list. Path and reach queries start on passable ground; sight
// queries may start or end anywhere.
func BuildOps(snap *worldgen.Snapshot, mix QueryMix, seed int64) []Op {
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))

	land := make([]hex.Offset, 0, len(snap.Tiles))
	all := make([]hex.Offset, 0, snap.Width*snap.Height)
	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			p := hex.Offset{Col: col, Row: row}
			all = append(all, p)
			switch tilecore.TileType(snap.Tiles[row*snap.Width+col]) {
			case tilecore.Water, tilecore.Mountain:
			default:
				land = append(land, p)
			}
		}
	}
	if len(land) == 0 {
		land = all
	}

	ops := make([]Op, 0, mix.Total())
	for i := 0; i < mix.Paths; i++ {
		from := land[rng.Intn(len(land))]
		to := land[rng.Intn(len(land))]
		ops = append(ops, opBetween(OpPath, from, to))
	}
	for i := 0; i < mix.Reaches; i++ {
		from := land[rng.Intn(len(land))]
		ops = append(ops, opBetween(OpReach, from, from))
	}
	for i := 0; i < mix.Influence; i++ {
		ops = append(ops, Op{Kind: OpInfluence})
	}
	for i := 0; i < mix.Frontiers; i++ {
		op := Op{Kind: OpFrontier}
		if snap.Players > 0 {
			op.Player = int32(rng.Intn(snap.Players))
		}
		ops = append(ops, op)
	}
	for i := 0; i < mix.Targets; i++ {
		ops = append(ops, Op{Kind: OpTargets})
	}
	for i := 0; i < mix.Resources; i++ {
		ops = append(ops, Op{Kind: OpResources})
	}
	for i := 0; i < mix.Sights; i++ {
		from := all[rng.Intn(len(all))]
		to := all[rng.Intn(len(all))]
		ops = append(ops, opBetween(OpSight, from, to))
	}
	return ops
}

func opBetween(k Kind, from, to hex.Offset) Op {
	return Op{
		Kind:    k,
		FromCol: int32(from.Col),
		FromRow: int32(from.Row),
		ToCol:   int32(to.Col),
		ToRow:   int32(to.Row),
	}
}
