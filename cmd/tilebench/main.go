// Command tilebench benchmarks the spatial query packages over
// generated or recorded worlds.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gravitas-015/tilecore/internal/bench"
	"github.com/gravitas-015/tilecore/internal/config"
	"github.com/gravitas-015/tilecore/internal/scenario"
	"github.com/gravitas-015/tilecore/internal/worldgen"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	scenarioPath := flag.String("scenario", "", "Path to scenario.yaml (empty = default skirmish mix)")
	rounds := flag.Int("rounds", 0, "Benchmark rounds (0 = use config)")
	seed := flag.Int64("seed", 0, "World seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV results and config snapshot")
	recordPath := flag.String("record", "", "Write the world and query list to a trace file")
	replayPath := flag.String("replay", "", "Replay a recorded trace instead of generating a world")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sc := scenario.Default()
	if *scenarioPath != "" {
		sc, err = scenario.Load(*scenarioPath)
		if err != nil {
			slog.Error("failed to load scenario", "error", err)
			os.Exit(1)
		}
	}

	runRounds := cfg.Bench.Rounds
	if *rounds > 0 {
		runRounds = *rounds
	}

	var snap *worldgen.Snapshot
	var ops []scenario.Op
	runSeed := *seed

	if *replayPath != "" {
		tr, err := scenario.LoadTrace(*replayPath)
		if err != nil {
			slog.Error("failed to load trace", "error", err)
			os.Exit(1)
		}
		snap = tr.Snapshot()
		ops = tr.Ops
		runSeed = tr.Seed
		if tr.Name != "" {
			sc.Name = tr.Name
		}
		slog.Info("replaying trace",
			"path", *replayPath,
			"scenario", sc.Name,
			"seed", runSeed,
			"queries", len(ops),
		)
	} else {
		if runSeed == 0 {
			runSeed = time.Now().UnixNano()
		}
		snap = worldgen.Generate(cfg.WorldParams(runSeed))
		ops = scenario.BuildOps(snap, sc.Mix, runSeed)
		slog.Info("world generated",
			"size", fmt.Sprintf("%dx%d", snap.Width, snap.Height),
			"players", snap.Players,
			"seed", runSeed,
			"queries", len(ops),
		)
	}

	if *recordPath != "" {
		tr := scenario.NewTrace(sc.Name, runSeed, snap, ops)
		if err := scenario.SaveTrace(*recordPath, tr); err != nil {
			slog.Error("failed to save trace", "error", err)
			os.Exit(1)
		}
		slog.Info("trace recorded", "path", *recordPath)
	}

	out, err := bench.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	runner := bench.NewRunner(cfg, snap)
	for i := 0; i < cfg.Bench.Warmup; i++ {
		runner.RunAll(ops)
	}

	col := bench.NewCollector(runRounds)
	for i := 0; i < runRounds; i++ {
		runner.RunRound(ops, col)
		if err := out.WriteRound(col.Samples()[i].ToCSV(i)); err != nil {
			slog.Error("failed to write round", "error", err)
		}
	}

	stats := col.Stats()
	stats.LogStats()
	if err := out.WriteResult(stats.ToCSV(sc.Name, runSeed)); err != nil {
		slog.Error("failed to write result", "error", err)
	}

	slog.Info("benchmark complete",
		"scenario", sc.Name,
		"rounds", runRounds,
		"checksum", runner.Checksum(),
	)
}
