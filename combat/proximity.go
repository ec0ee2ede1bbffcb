// Package combat answers proximity queries between opposing units.
package combat

// Point is a unit position in world units.
type Point struct {
	X float32
	Y float32
}

// FindTargetsInRange returns every ordered pair of opposing units whose
// Euclidean distance is within radius, as a flat index list laid out
// attacker-then-target. Both directions of a mutual pair are emitted.
// The scan is exact O(n²) over n = min(len(positions), len(owners)),
// which is fine for the couple hundred units a match fields.
func FindTargetsInRange(positions []Point, owners []int32, radius float64) []int32 {
	r2 := float32(radius * radius)
	n := len(positions)
	if len(owners) < n {
		n = len(owners)
	}
	var out []int32
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || owners[i] == owners[j] {
				continue
			}
			dx := positions[i].X - positions[j].X
			dy := positions[i].Y - positions[j].Y
			if dx*dx+dy*dy <= r2 {
				out = append(out, int32(i), int32(j))
			}
		}
	}
	return out
}
