package scenario

import (
	"fmt"
	"os"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gravitas-015/tilecore/hex"
	"github.com/gravitas-015/tilecore/internal/worldgen"
)

// Trace is a recorded world and operation list. Replaying a trace runs
// the exact same queries against the exact same grid, independent of
// generator or sampler changes.
type Trace struct {
	Name    string      `msgpack:"n"`
	Seed    int64       `msgpack:"s"`
	Width   int32       `msgpack:"w"`
	Height  int32       `msgpack:"h"`
	Players int32       `msgpack:"p"`
	Tiles   []int32     `msgpack:"t"`
	Owners  []int32     `msgpack:"o"`
	Units   []TraceUnit `msgpack:"u"`
	Ops     []Op        `msgpack:"q"`
}

// TraceUnit is one unit position in a trace.
type TraceUnit struct {
	Player int32 `msgpack:"p"`
	Col    int32 `msgpack:"c"`
	Row    int32 `msgpack:"r"`
}

// NewTrace captures a world and operation list for replay. Units are
// stored sorted by player so the encoding is deterministic.
func NewTrace(name string, seed int64, snap *worldgen.Snapshot, ops []Op) *Trace {
	tr := &Trace{
		Name:    name,
		Seed:    seed,
		Width:   int32(snap.Width),
		Height:  int32(snap.Height),
		Players: int32(snap.Players),
		Tiles:   append([]int32(nil), snap.Tiles...),
		Owners:  append([]int32(nil), snap.Owners...),
		Ops:     append([]Op(nil), ops...),
	}
	pids := make([]int, 0, len(snap.Units))
	for pid := range snap.Units {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	for _, pid := range pids {
		for _, u := range snap.Units[pid] {
			tr.Units = append(tr.Units, TraceUnit{
				Player: int32(pid),
				Col:    int32(u.Col),
				Row:    int32(u.Row),
			})
		}
	}
	return tr
}

// Snapshot rebuilds the world held in the trace.
func (tr *Trace) Snapshot() *worldgen.Snapshot {
	snap := &worldgen.Snapshot{
		Width:   int(tr.Width),
		Height:  int(tr.Height),
		Players: int(tr.Players),
		Tiles:   append([]int32(nil), tr.Tiles...),
		Owners:  append([]int32(nil), tr.Owners...),
		Units:   make(map[int][]hex.Offset),
	}
	for _, u := range tr.Units {
		pid := int(u.Player)
		snap.Units[pid] = append(snap.Units[pid], hex.Offset{Col: int(u.Col), Row: int(u.Row)})
	}
	return snap
}

// SaveTrace writes a msgpack-encoded trace to disk.
func SaveTrace(path string, tr *Trace) error {
	data, err := msgpack.Marshal(tr)
	if err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write trace file: %w", err)
	}
	return nil
}

// LoadTrace reads a msgpack-encoded trace from disk.
func LoadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}
	var tr Trace
	if err := msgpack.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode trace file: %w", err)
	}
	return &tr, nil
}
