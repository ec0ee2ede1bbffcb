// Package bench runs recorded query workloads against the spatial
// packages and collects per-kind timings.
package bench

import (
	"log/slog"
	"math"
	"time"

	"github.com/gravitas-015/tilecore/internal/scenario"
)

// kindOrder fixes the column and log ordering of query kinds.
var kindOrder = []scenario.Kind{
	scenario.OpPath,
	scenario.OpReach,
	scenario.OpInfluence,
	scenario.OpFrontier,
	scenario.OpTargets,
	scenario.OpResources,
	scenario.OpSight,
}

// RoundSample holds timing data for a single benchmark round.
type RoundSample struct {
	RoundDuration time.Duration
	KindTotals    map[scenario.Kind]time.Duration
	KindCounts    map[scenario.Kind]int
}

// Collector accumulates round samples over a benchmark run.
type Collector struct {
	samples    []RoundSample
	current    RoundSample
	roundStart time.Time
}

// NewCollector creates a collector sized for the given round count.
func NewCollector(rounds int) *Collector {
	if rounds < 0 {
		rounds = 0
	}
	return &Collector{samples: make([]RoundSample, 0, rounds)}
}

// StartRound begins timing a new benchmark round.
func (c *Collector) StartRound() {
	c.current = RoundSample{
		KindTotals: make(map[scenario.Kind]time.Duration),
		KindCounts: make(map[scenario.Kind]int),
	}
	c.roundStart = time.Now()
}

// Record adds one query timing to the current round.
func (c *Collector) Record(kind scenario.Kind, d time.Duration) {
	c.current.KindTotals[kind] += d
	c.current.KindCounts[kind]++
}

// EndRound finishes the current round and stores its sample.
func (c *Collector) EndRound() {
	c.current.RoundDuration = time.Since(c.roundStart)
	c.samples = append(c.samples, c.current)
}

// Rounds returns the number of completed rounds.
func (c *Collector) Rounds() int {
	return len(c.samples)
}

// Samples returns the recorded round samples.
func (c *Collector) Samples() []RoundSample {
	return c.samples
}

// Stats holds aggregated statistics over a benchmark run.
type Stats struct {
	Rounds          int
	QueriesPerRound int
	AvgRound        time.Duration
	MinRound        time.Duration
	MaxRound        time.Duration
	RoundsPerSec    float64

	// KindAvg is the average duration of a single query of each kind.
	KindAvg map[scenario.Kind]time.Duration

	// KindPct is each kind's share of total query time, in percent.
	KindPct map[scenario.Kind]float64
}

// Stats computes aggregated statistics over all completed rounds.
func (c *Collector) Stats() Stats {
	if len(c.samples) == 0 {
		return Stats{
			KindAvg: make(map[scenario.Kind]time.Duration),
			KindPct: make(map[scenario.Kind]float64),
		}
	}

	var totalRound time.Duration
	var minRound, maxRound time.Duration
	kindSum := make(map[scenario.Kind]time.Duration)
	kindCount := make(map[scenario.Kind]int)
	queries := 0

	for i, s := range c.samples {
		totalRound += s.RoundDuration
		if i == 0 || s.RoundDuration < minRound {
			minRound = s.RoundDuration
		}
		if s.RoundDuration > maxRound {
			maxRound = s.RoundDuration
		}
		for kind, dur := range s.KindTotals {
			kindSum[kind] += dur
		}
		for kind, n := range s.KindCounts {
			kindCount[kind] += n
		}
		if i == 0 {
			for _, n := range s.KindCounts {
				queries += n
			}
		}
	}

	var totalQuery time.Duration
	for _, sum := range kindSum {
		totalQuery += sum
	}

	kindAvg := make(map[scenario.Kind]time.Duration)
	kindPct := make(map[scenario.Kind]float64)
	for kind, sum := range kindSum {
		if n := kindCount[kind]; n > 0 {
			kindAvg[kind] = sum / time.Duration(n)
		}
		if totalQuery > 0 {
			kindPct[kind] = float64(kindSum[kind]) / float64(totalQuery) * 100
		}
	}

	avgRound := totalRound / time.Duration(len(c.samples))
	var roundsPerSec float64
	if avgRound > 0 {
		roundsPerSec = float64(time.Second) / float64(avgRound)
	}

	return Stats{
		Rounds:          len(c.samples),
		QueriesPerRound: queries,
		AvgRound:        avgRound,
		MinRound:        minRound,
		MaxRound:        maxRound,
		RoundsPerSec:    roundsPerSec,
		KindAvg:         kindAvg,
		KindPct:         kindPct,
	}
}

// LogStats logs aggregated statistics.
func (s Stats) LogStats() {
	attrs := []any{
		"rounds", s.Rounds,
		"queries_per_round", s.QueriesPerRound,
		"avg_round_us", s.AvgRound.Microseconds(),
		"min_round_us", s.MinRound.Microseconds(),
		"max_round_us", s.MaxRound.Microseconds(),
		"rounds_per_sec", int(s.RoundsPerSec),
	}
	for _, kind := range kindOrder {
		if pct, ok := s.KindPct[kind]; ok && pct > 0.1 {
			attrs = append(attrs, kind.String()+"_pct", math.Round(pct*10)/10)
		}
	}
	slog.Info("bench", attrs...)
}

// ResultCSV is a flat record for CSV export of one benchmark run.
type ResultCSV struct {
	Scenario        string  `csv:"scenario"`
	Seed            int64   `csv:"seed"`
	Rounds          int     `csv:"rounds"`
	QueriesPerRound int     `csv:"queries_per_round"`
	AvgRoundUS      int64   `csv:"avg_round_us"`
	MinRoundUS      int64   `csv:"min_round_us"`
	MaxRoundUS      int64   `csv:"max_round_us"`
	RoundsPerSec    float64 `csv:"rounds_per_sec"`
	PathUS          float64 `csv:"path_us"`
	ReachUS         float64 `csv:"reach_us"`
	InfluenceUS     float64 `csv:"influence_us"`
	FrontierUS      float64 `csv:"frontier_us"`
	TargetsUS       float64 `csv:"targets_us"`
	ResourcesUS     float64 `csv:"resources_us"`
	SightUS         float64 `csv:"sight_us"`
}

// ToCSV converts Stats to a flat CSV-friendly record. Per-kind columns
// are average microseconds for a single query of that kind.
func (s Stats) ToCSV(name string, seed int64) ResultCSV {
	us := func(k scenario.Kind) float64 {
		return float64(s.KindAvg[k].Nanoseconds()) / 1e3
	}
	return ResultCSV{
		Scenario:        name,
		Seed:            seed,
		Rounds:          s.Rounds,
		QueriesPerRound: s.QueriesPerRound,
		AvgRoundUS:      s.AvgRound.Microseconds(),
		MinRoundUS:      s.MinRound.Microseconds(),
		MaxRoundUS:      s.MaxRound.Microseconds(),
		RoundsPerSec:    s.RoundsPerSec,
		PathUS:          us(scenario.OpPath),
		ReachUS:         us(scenario.OpReach),
		InfluenceUS:     us(scenario.OpInfluence),
		FrontierUS:      us(scenario.OpFrontier),
		TargetsUS:       us(scenario.OpTargets),
		ResourcesUS:     us(scenario.OpResources),
		SightUS:         us(scenario.OpSight),
	}
}

// RoundCSV is a flat per-round record for CSV export. Per-kind columns
// are total microseconds spent in that kind during the round.
type RoundCSV struct {
	Round       int   `csv:"round"`
	TotalUS     int64 `csv:"total_us"`
	PathUS      int64 `csv:"path_us"`
	ReachUS     int64 `csv:"reach_us"`
	InfluenceUS int64 `csv:"influence_us"`
	FrontierUS  int64 `csv:"frontier_us"`
	TargetsUS   int64 `csv:"targets_us"`
	ResourcesUS int64 `csv:"resources_us"`
	SightUS     int64 `csv:"sight_us"`
}

// ToCSV converts a round sample to a flat CSV-friendly record.
func (s RoundSample) ToCSV(round int) RoundCSV {
	return RoundCSV{
		Round:       round,
		TotalUS:     s.RoundDuration.Microseconds(),
		PathUS:      s.KindTotals[scenario.OpPath].Microseconds(),
		ReachUS:     s.KindTotals[scenario.OpReach].Microseconds(),
		InfluenceUS: s.KindTotals[scenario.OpInfluence].Microseconds(),
		FrontierUS:  s.KindTotals[scenario.OpFrontier].Microseconds(),
		TargetsUS:   s.KindTotals[scenario.OpTargets].Microseconds(),
		ResourcesUS: s.KindTotals[scenario.OpResources].Microseconds(),
		SightUS:     s.KindTotals[scenario.OpSight].Microseconds(),
	}
}
