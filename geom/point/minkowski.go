package point

import "github.com/dacin21/dacin21-exact-geometry/geom/adaptive"

// MinkowskiSum computes the Minkowski sum {a+b | a in A, b in B} of two
// convex polygons given in counter-clockwise order. Both rings are rotated
// so their lexicographically smallest vertex is first, then walked in
// parallel, at each step advancing whichever polygon's next edge comes
// first in the 360° angular order relative to the last chosen direction
// (this tie-breaking against last_dir, rather than an absolute direction,
// is what correctly resolves edges collinear with a previously emitted one).
func MinkowskiSum(a, b []*Point) []*Point {
	ra := rotateToLexMin(a)
	rb := rotateToLexMin(b)

	lastBits := maxInt(bitsOf(ra), bitsOf(rb)) + 1
	lastDir := &Point{X: adaptive.Zero(lastBits), Y: adaptive.Neg(adaptive.New(lastBits, 1))}

	if len(ra) > 1 {
		ra = append(ra, ra[0])
	}
	if len(rb) > 1 {
		rb = append(rb, rb[0])
	}

	var ret []*Point
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ret = append(ret, Add(ra[i], rb[j]))
		switch {
		case i+1 == len(ra):
			j++
		case j+1 == len(rb):
			i++
		default:
			dA := Sub(ra[i+1], ra[i])
			dB := Sub(rb[j+1], rb[j])
			if dA.AngleDiff(lastDir).CompAngular360(dB.AngleDiff(lastDir)) < 0 {
				lastDir = dA
				i++
			} else {
				lastDir = dB
				j++
			}
		}
	}
	if len(ret) > 1 && ret[len(ret)-1].Equal(ret[0]) {
		ret = ret[:len(ret)-1]
	}
	return ret
}

func rotateToLexMin(pts []*Point) []*Point {
	if len(pts) == 0 {
		return nil
	}
	minIdx := 0
	for i, p := range pts {
		if p.CompLexicographical(pts[minIdx]) < 0 {
			minIdx = i
		}
	}
	out := make([]*Point, len(pts))
	for i := range pts {
		out[i] = pts[(minIdx+i)%len(pts)]
	}
	return out
}

func bitsOf(pts []*Point) int {
	if len(pts) == 0 {
		return 1
	}
	return pts[0].Bits()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
