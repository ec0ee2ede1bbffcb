package bench

import (
	"time"

	"github.com/gravitas-015/tilecore/combat"
	"github.com/gravitas-015/tilecore/field"
	"github.com/gravitas-015/tilecore/hex"
	"github.com/gravitas-015/tilecore/internal/config"
	"github.com/gravitas-015/tilecore/internal/scenario"
	"github.com/gravitas-015/tilecore/internal/worldgen"
	"github.com/gravitas-015/tilecore/path"
	"github.com/gravitas-015/tilecore/resource"
	"github.com/gravitas-015/tilecore/sight"
	"github.com/gravitas-015/tilecore/territory"
)

// Runner executes scenario operations against one world snapshot. The
// expensive derived inputs (blocked set, move costs, unit positions)
// are built once so rounds measure query time only.
type Runner struct {
	cfg  *config.Config
	snap *worldgen.Snapshot

	blocked    map[hex.Offset]bool
	costs      map[hex.Offset]float64
	unitOwners []int32
	points     []combat.Point
	yields     resource.Table
	field      *field.Map

	checksum uint64
}

// NewRunner prepares a runner for the given world.
func NewRunner(cfg *config.Config, snap *worldgen.Snapshot) *Runner {
	r := &Runner{
		cfg:     cfg,
		snap:    snap,
		blocked: snap.Blocked(),
		costs:   snap.MoveCosts(),
		yields:  cfg.YieldTable(),
		field:   field.New(cfg.FieldParams()),
	}

	units, owners := snap.UnitList()
	r.unitOwners = owners
	r.points = make([]combat.Point, len(units))
	for i, u := range units {
		x, y := u.ToPixel(cfg.Combat.HexSize)
		r.points[i] = combat.Point{X: float32(x), Y: float32(y)}
	}
	return r
}

// Run executes one operation and folds its result into the checksum.
func (r *Runner) Run(op scenario.Op) {
	switch op.Kind {
	case scenario.OpPath:
		p := path.FindPath(op.From(), op.To(), r.blocked, r.costs, r.cfg.Path.MaxDistance)
		r.checksum += uint64(len(p))
	case scenario.OpReach:
		tiles := path.Reachable(op.From(), r.blocked, r.costs, r.cfg.Path.MoveBudget)
		r.checksum += uint64(len(tiles))
	case scenario.OpInfluence:
		r.field.Compute(r.snap.Units, r.snap.Owners, r.snap.Width, r.snap.Height)
		r.checksum += uint64(r.field.NumPlayers())
	case scenario.OpFrontier:
		f := territory.Frontier(r.snap.Owners, op.Player, r.snap.Width, r.snap.Height)
		r.checksum += uint64(len(f))
	case scenario.OpTargets:
		pairs := combat.FindTargetsInRange(r.points, r.unitOwners, r.cfg.Combat.Radius)
		r.checksum += uint64(len(pairs))
	case scenario.OpResources:
		yields := resource.Tally(r.snap.Tiles, r.snap.Owners, r.snap.Players, r.yields)
		for _, y := range yields {
			r.checksum += uint64(int64(y.Food) + int64(y.Production) + int64(y.Gold))
		}
	case scenario.OpSight:
		if sight.HasLine(op.From(), op.To(), r.snap.Tiles, r.snap.Width, r.snap.Height) {
			r.checksum++
		}
	}
}

// RunAll executes every op once without timing. Used for warmup.
func (r *Runner) RunAll(ops []scenario.Op) {
	for _, op := range ops {
		r.Run(op)
	}
}

// RunRound executes every op once, recording per-query timings.
func (r *Runner) RunRound(ops []scenario.Op, col *Collector) {
	col.StartRound()
	for _, op := range ops {
		start := time.Now()
		r.Run(op)
		col.Record(op.Kind, time.Since(start))
	}
	col.EndRound()
}

// Checksum returns a digest of all query results so far. Two runs over
// the same world and ops produce the same checksum, which makes replay
// drift visible.
func (r *Runner) Checksum() uint64 {
	return r.checksum
}
