package tilecore

// TileType identifies the terrain of a single map tile.
type TileType int32

const (
	Plains        TileType = 0
	Forest        TileType = 1
	Mountain      TileType = 2
	Water         TileType = 3
	Desert        TileType = 4
	FertilePlains TileType = 5
)

// Unowned marks a tile with no owning player in owner grids.
const Unowned int32 = -1

// CellIndex returns the row-major index of (col, row) in a grid of the
// given width.
func CellIndex(col, row, width int) int {
	return row*width + col
}

// String returns a human-readable name for a tile type.
func (t TileType) String() string {
	switch t {
	case Plains:
		return "plains"
	case Forest:
		return "forest"
	case Mountain:
		return "mountain"
	case Water:
		return "water"
	case Desert:
		return "desert"
	case FertilePlains:
		return "fertile_plains"
	default:
		return "unknown"
	}
}
