package sight

import (
	"testing"

	"github.com/gravitas-015/tilecore"
	"github.com/gravitas-015/tilecore/hex"
)

func terrain(w, h int, mountains ...hex.Offset) []int32 {
	tiles := make([]int32, w*h)
	for _, m := range mountains {
		tiles[m.Row*w+m.Col] = int32(tilecore.Mountain)
	}
	return tiles
}

func TestHasLineTrivialDistances(t *testing.T) {
	// surround everything with mountains; distance <= 1 still sees
	tiles := make([]int32, 25)
	for i := range tiles {
		tiles[i] = int32(tilecore.Mountain)
	}
	if !HasLine(hex.Offset{Col: 2, Row: 2}, hex.Offset{Col: 2, Row: 2}, tiles, 5, 5) {
		t.Fatalf("expected a tile to see itself")
	}
	if !HasLine(hex.Offset{Col: 2, Row: 2}, hex.Offset{Col: 3, Row: 2}, tiles, 5, 5) {
		t.Fatalf("expected adjacent tiles to see each other")
	}
}

func TestHasLineBlockedByMountain(t *testing.T) {
	tiles := terrain(5, 5, hex.Offset{Col: 2, Row: 2})
	if HasLine(hex.Offset{Col: 0, Row: 2}, hex.Offset{Col: 4, Row: 2}, tiles, 5, 5) {
		t.Fatalf("expected mountain at (2,2) to block sight across row 2")
	}
}

func TestHasLineClearRow(t *testing.T) {
	tiles := terrain(5, 5, hex.Offset{Col: 2, Row: 2})
	if !HasLine(hex.Offset{Col: 0, Row: 0}, hex.Offset{Col: 4, Row: 0}, tiles, 5, 5) {
		t.Fatalf("expected clear sight along row 0")
	}
}

func TestHasLineSymmetricOnRows(t *testing.T) {
	tiles := terrain(5, 5)
	if !HasLine(hex.Offset{Col: 4, Row: 0}, hex.Offset{Col: 0, Row: 0}, tiles, 5, 5) {
		t.Fatalf("expected clear sight along row 0 in reverse")
	}
}

func TestHasLineEndpointsNeverBlock(t *testing.T) {
	tiles := terrain(5, 5, hex.Offset{Col: 0, Row: 2}, hex.Offset{Col: 4, Row: 2})
	if !HasLine(hex.Offset{Col: 0, Row: 2}, hex.Offset{Col: 4, Row: 2}, tiles, 5, 5) {
		t.Fatalf("expected mountains on the endpoints themselves to be ignored")
	}
}

func TestHasLineOutOfBoundsBlocks(t *testing.T) {
	tiles := terrain(5, 5)
	// target beyond the grid edge: intermediate samples leave the map
	if HasLine(hex.Offset{Col: 0, Row: 0}, hex.Offset{Col: 8, Row: 0}, tiles, 5, 5) {
		t.Fatalf("expected samples outside the grid to block sight")
	}
}

func TestHasLineShortTileArray(t *testing.T) {
	// tile data covering only the first row: unsampled tiles cannot block
	tiles := make([]int32, 5)
	if !HasLine(hex.Offset{Col: 0, Row: 2}, hex.Offset{Col: 4, Row: 2}, tiles, 5, 5) {
		t.Fatalf("expected missing tile data to be treated as open ground")
	}
}

func BenchmarkHasLineAcrossMap(b *testing.B) {
	const w, h = 48, 48
	tiles := make([]int32, w*h)
	for i := 0; i < w*h; i += 97 {
		tiles[i] = int32(tilecore.Mountain)
	}
	from := hex.Offset{Col: 1, Row: 1}
	to := hex.Offset{Col: 46, Row: 44}

	b.ResetTimer()
	var sink bool
	for n := 0; n < b.N; n++ {
		sink = HasLine(from, to, tiles, w, h)
	}
	_ = sink
}
