package field

import (
	"math"
	"testing"

	"github.com/gravitas-015/tilecore/hex"
)

func unownedGrid(n int) []int32 {
	g := make([]int32, n)
	for i := range g {
		g[i] = -1
	}
	return g
}

func TestComputeSingleUnitPeak(t *testing.T) {
	const w, h = 25, 25
	m := New(DefaultParams())
	m.Compute(map[int][]hex.Offset{0: {{Col: 12, Row: 12}}}, unownedGrid(w*h), w, h)

	inf := m.PlayerInfluence(0)
	if inf == nil {
		t.Fatalf("expected influence grid for player 0, got nil")
	}
	if got := inf[12*w+12]; got != 2.0 {
		t.Fatalf("expected peak influence 2.0 at the unit tile, got %g", got)
	}
}

func TestComputeGaussianFalloff(t *testing.T) {
	const w, h = 30, 30
	m := New(DefaultParams())
	m.Compute(map[int][]hex.Offset{0: {{Col: 5, Row: 5}}}, unownedGrid(w*h), w, h)
	inf := m.PlayerInfluence(0)

	at := func(col, row int) float64 { return float64(inf[row*w+col]) }

	// one tile out: 2*exp(-1/32)
	want := 2 * math.Exp(-1.0/32.0)
	if got := at(6, 5); math.Abs(got-want) > 1e-5 {
		t.Fatalf("expected influence %g one tile out, got %g", want, got)
	}
	if !(at(5, 5) > at(6, 5) && at(6, 5) > at(10, 5) && at(10, 5) > 0) {
		t.Fatalf("expected strictly decreasing influence with distance, got %g %g %g", at(5, 5), at(6, 5), at(10, 5))
	}
	// past the 3-sigma cutoff nothing is written
	if got := at(18, 5); got != 0 {
		t.Fatalf("expected zero influence beyond cutoff, got %g", got)
	}
}

func TestComputeCornerClipped(t *testing.T) {
	const w, h = 8, 8
	m := New(DefaultParams())
	m.Compute(map[int][]hex.Offset{0: {{Col: 0, Row: 0}}}, unownedGrid(w*h), w, h)
	inf := m.PlayerInfluence(0)
	if inf[0] != 2.0 {
		t.Fatalf("expected peak 2.0 at the corner, got %g", inf[0])
	}
	if inf[7*w+7] <= 0 {
		t.Fatalf("expected positive influence across the small grid, got %g", inf[7*w+7])
	}
}

func TestComputeTerritoryWeight(t *testing.T) {
	const w, h = 20, 20
	owners := unownedGrid(w * h)
	owners[10*w+10] = 0
	m := New(DefaultParams())
	m.Compute(nil, owners, w, h)
	inf := m.PlayerInfluence(0)
	if got := inf[10*w+10]; got != 0.5 {
		t.Fatalf("expected territory peak 0.5, got %g", got)
	}
}

func TestComputeNetSubtractsRival(t *testing.T) {
	const w, h = 30, 30
	units := map[int][]hex.Offset{
		0: {{Col: 10, Row: 10}},
		1: {{Col: 14, Row: 10}},
	}
	m := New(DefaultParams())
	m.Compute(units, unownedGrid(w*h), w, h)

	inf0 := m.PlayerInfluence(0)
	// at player 0's unit: own 2.0 minus the rival four tiles away
	want := 2.0 - 2.0*math.Exp(-16.0/32.0)
	if got := float64(inf0[10*w+10]); math.Abs(got-want) > 1e-5 {
		t.Fatalf("expected net influence %g at own unit, got %g", want, got)
	}
	// halfway between equal units the field cancels exactly
	if got := inf0[10*w+12]; got != 0 {
		t.Fatalf("expected zero net influence at the midpoint, got %g", got)
	}
}

func TestComputeRivalIsMaxNotSum(t *testing.T) {
	const w, h = 30, 30
	units := map[int][]hex.Offset{
		0: {{Col: 10, Row: 10}},
		1: {{Col: 13, Row: 10}},
		2: {{Col: 13, Row: 10}},
	}
	m := New(DefaultParams())
	m.Compute(units, unownedGrid(w*h), w, h)

	inf0 := m.PlayerInfluence(0)
	// two equal rivals on one tile count once, not twice
	want := 2.0 - 2.0*math.Exp(-9.0/32.0)
	if got := float64(inf0[10*w+10]); math.Abs(got-want) > 1e-5 {
		t.Fatalf("expected net influence %g against stacked rivals, got %g", want, got)
	}
}

func TestComputeSoloPlayerNetEqualsRaw(t *testing.T) {
	const w, h = 20, 20
	m := New(DefaultParams())
	m.Compute(map[int][]hex.Offset{0: {{Col: 5, Row: 5}, {Col: 6, Row: 5}}}, unownedGrid(w*h), w, h)
	inf := m.PlayerInfluence(0)
	// with no rivals every cell keeps its raw accumulation
	if inf[5*w+5] <= 2.0 {
		t.Fatalf("expected stacked influence above a single peak, got %g", inf[5*w+5])
	}
}

func TestComputeSkipsNegativePlayerKeys(t *testing.T) {
	const w, h = 10, 10
	units := map[int][]hex.Offset{
		-3: {{Col: 4, Row: 4}},
		0:  {{Col: 4, Row: 4}},
	}
	m := New(DefaultParams())
	m.Compute(units, unownedGrid(w*h), w, h)
	if got := m.NumPlayers(); got != 1 {
		t.Fatalf("expected 1 player, got %d", got)
	}
	if got := m.PlayerInfluence(0)[4*w+4]; got != 2.0 {
		t.Fatalf("expected single unit peak 2.0, got %g", got)
	}
}

func TestNumPlayersInferredFromOwners(t *testing.T) {
	const w, h = 6, 6
	owners := unownedGrid(w * h)
	owners[0] = 3
	m := New(DefaultParams())
	m.Compute(nil, owners, w, h)
	if got := m.NumPlayers(); got != 4 {
		t.Fatalf("expected 4 players inferred from owner grid, got %d", got)
	}
}

func TestPlayerInfluenceUnknownPlayer(t *testing.T) {
	m := New(DefaultParams())
	if got := m.PlayerInfluence(0); got != nil {
		t.Fatalf("expected nil before any computation, got %v", got)
	}
	m.Compute(map[int][]hex.Offset{0: {{Col: 1, Row: 1}}}, unownedGrid(16), 4, 4)
	if got := m.PlayerInfluence(1); got != nil {
		t.Fatalf("expected nil for unknown player, got %v", got)
	}
	if got := m.PlayerInfluence(-1); got != nil {
		t.Fatalf("expected nil for negative player, got %v", got)
	}
}

func TestPlayerInfluenceReturnsCopy(t *testing.T) {
	const w, h = 8, 8
	m := New(DefaultParams())
	m.Compute(map[int][]hex.Offset{0: {{Col: 2, Row: 2}}}, unownedGrid(w*h), w, h)
	first := m.PlayerInfluence(0)
	first[0] = 99
	if got := m.PlayerInfluence(0)[0]; got == 99 {
		t.Fatalf("expected internal grid unaffected by caller writes")
	}
}

func TestComputeReplacesPriorState(t *testing.T) {
	const w, h = 10, 10
	m := New(DefaultParams())
	m.Compute(map[int][]hex.Offset{0: {{Col: 1, Row: 1}}, 1: {{Col: 8, Row: 8}}}, unownedGrid(w*h), w, h)
	if got := m.NumPlayers(); got != 2 {
		t.Fatalf("expected 2 players after first compute, got %d", got)
	}
	m.Compute(map[int][]hex.Offset{0: {{Col: 1, Row: 1}}}, unownedGrid(w*h), w, h)
	if got := m.NumPlayers(); got != 1 {
		t.Fatalf("expected 1 player after recompute, got %d", got)
	}
	if got := m.PlayerInfluence(1); got != nil {
		t.Fatalf("expected player 1 dropped by recompute, got %v", got)
	}
}

// Benchmark a full recompute at skirmish scale: 4 players, 12 units
// each, a claimed home block per player on a 48x48 map.
func BenchmarkComputeSkirmish(b *testing.B) {
	const w, h, players = 48, 48, 4
	units := make(map[int][]hex.Offset, players)
	owners := unownedGrid(w * h)
	bases := []hex.Offset{{Col: 8, Row: 8}, {Col: 40, Row: 8}, {Col: 8, Row: 40}, {Col: 40, Row: 40}}
	for pid := 0; pid < players; pid++ {
		base := bases[pid]
		for k := 0; k < 12; k++ {
			units[pid] = append(units[pid], hex.Offset{
				Col: base.Col + k%5 - 2,
				Row: base.Row + k/5 - 1,
			})
		}
		for dy := -4; dy <= 4; dy++ {
			for dx := -4; dx <= 4; dx++ {
				owners[(base.Row+dy)*w+base.Col+dx] = int32(pid)
			}
		}
	}
	m := New(DefaultParams())

	b.ResetTimer()
	var sink float32
	for n := 0; n < b.N; n++ {
		m.Compute(units, owners, w, h)
		sink = m.PlayerInfluence(0)[0]
	}
	_ = sink
}
