// Package hex provides coordinate math for an odd-q offset hex grid:
// conversions between offset, axial, and cube coordinates, hex distance,
// and neighbor/ring/disk enumeration.
package hex

import "math"

// Offset represents odd-q offset coordinates (col, row) for flat-top
// orientation, the externally visible coordinate system for all tiles.
type Offset struct {
	Col int
	Row int
}

// Axial represents axial coordinates (q, r), used for distance and
// neighbor arithmetic.
type Axial struct {
	Q int
	R int
}

// Cube represents cube coordinates with X+Y+Z=0, where X=q and Y=r.
// Cube exists for fractional interpolation along hex lines.
type Cube struct {
	X int
	Y int
	Z int
}

// Directions for axial neighbors, same order as the offset tables below.
var Directions = []Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Offset neighbor deltas split by column parity: odd columns sit half a
// cell lower than even ones, so their diagonal neighbors shift by a row.
var (
	dirsEven = [6]Offset{{+1, 0}, {+1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {0, +1}}
	dirsOdd  = [6]Offset{{+1, +1}, {+1, 0}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1}}
)

// Axial converts odd-q offset to axial coordinates. The &1 parity mask
// is two's-complement, so negative odd columns floor correctly.
func (o Offset) Axial() Axial {
	return Axial{Q: o.Col, R: o.Row - (o.Col-(o.Col&1))/2}
}

// Offset converts axial back to odd-q offset coordinates; exact inverse
// of Offset.Axial for all integer inputs.
func (a Axial) Offset() Offset {
	return Offset{Col: a.Q, Row: a.R + (a.Q-(a.Q&1))/2}
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Cube converts axial to cube.
func (a Axial) Cube() Cube {
	return Cube{X: a.Q, Y: a.R, Z: -a.Q - a.R}
}

// Axial converts cube back to axial.
func (c Cube) Axial() Axial { return Axial{Q: c.X, R: c.Y} }

// Distance returns the hex distance between two offset coordinates.
// Symmetric, and zero iff a == b.
func Distance(a, b Offset) int {
	return DistanceAxial(a.Axial(), b.Axial())
}

// DistanceAxial returns the hex distance between two axial coords.
func DistanceAxial(a, b Axial) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// DistanceCube returns the hex distance between two cube coords.
func DistanceCube(a, b Cube) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	dz := abs(a.Z - b.Z)
	if dx > dy && dx > dz {
		return dx
	}
	if dy > dz {
		return dy
	}
	return dz
}

// Neighbors returns the six adjacent offset coordinates of p. No bounds
// filtering is applied; callers discard out-of-grid results.
func Neighbors(p Offset) [6]Offset {
	dirs := &dirsEven
	if p.Col&1 != 0 {
		dirs = &dirsOdd
	}
	var out [6]Offset
	for i, d := range dirs {
		out[i] = Offset{Col: p.Col + d.Col, Row: p.Row + d.Row}
	}
	return out
}

// RoundCube rounds fractional cube coordinates to the nearest hex,
// restoring X+Y+Z=0 by recomputing the axis with the largest rounding
// error from the other two. Halfway values round toward +Inf, so a
// sample landing exactly on the edge between two hexes resolves to the
// higher-r one and a line walked along a grid row stays in its row.
func RoundCube(x, y, z float64) Cube {
	rx := math.Floor(x + 0.5)
	ry := math.Floor(y + 0.5)
	rz := math.Floor(z + 0.5)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		ry = -rx - rz
	} else {
		rz = -rx - ry
	}
	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

// ToPixel converts an offset coordinate to the pixel center of its hex
// in flat-top layout. size is the hex radius (corner to center).
func (o Offset) ToPixel(size float64) (x, y float64) {
	x = size * 1.5 * float64(o.Col)
	y = size * math.Sqrt(3) * (float64(o.Row) + 0.5*float64(o.Col&1))
	return
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
