package hex

// Ring returns the offset coordinates at exactly hex distance k from
// center c, starting south-west of c and proceeding around the ring.
// Ring(c, 0) returns just c.
func Ring(c Offset, k int) []Offset {
	if k < 0 {
		return nil
	}
	if k == 0 {
		return []Offset{c}
	}
	res := make([]Offset, 0, 6*k)
	cur := c.Axial().Add(Directions[4].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur.Offset())
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns every offset coordinate within hex distance r of center
// c, in axial scan order. The result holds 1+3r(r+1) coordinates.
func Disk(c Offset, r int) []Offset {
	if r < 0 {
		return nil
	}
	ca := c.Axial()
	res := make([]Offset, 0, 1+3*r*(r+1))
	for dq := -r; dq <= r; dq++ {
		for dr := max(-r, -dq-r); dr <= min(r, -dq+r); dr++ {
			res = append(res, ca.Add(Axial{dq, dr}).Offset())
		}
	}
	return res
}
