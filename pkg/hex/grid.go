package hex

// RingWalk is the order in which the sides of a ring are walked. A ring of
// radius k starts at its north-west vertex c + NW*k and takes k steps along
// each of these directions, ending back at the start.
var RingWalk = [NumDirections]Direction{E, SE, SW, W, NW, NE}

// RingSize returns the number of cells on the ring at distance k.
func RingSize(k int) int {
	if k == 0 {
		return 1
	}
	return 6 * k
}

// DiskSize returns the number of cells at distance <= k, 1 + 3k(k+1).
func DiskSize(k int) int { return 1 + 3*k*(k+1) }

// Ring returns the axial coordinates at exact distance k from center c,
// starting at the north-west vertex and proceeding clockwise along RingWalk.
// If k==0, returns [c].
func Ring(c Axial, k int) []Axial {
	if k == 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(Directions[NW].Mul(k))
	for _, dir := range RingWalk {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[dir])
		}
	}
	return res
}

// Disk returns all axial coordinates at distance <= k from center c, ring
// by ring from the centre outwards in Ring order.
func Disk(c Axial, k int) []Axial {
	res := make([]Axial, 0, DiskSize(k))
	for ring := 0; ring <= k; ring++ {
		res = append(res, Ring(c, ring)...)
	}
	return res
}
