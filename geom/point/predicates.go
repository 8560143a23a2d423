package point

import (
	"github.com/dacin21/dacin21-exact-geometry/geom/adaptive"
	"github.com/dacin21/dacin21-exact-geometry/geom/geomerrors"
)

// Ccw returns the sign of the cross product of (b-a) and (c-a): -1
// clockwise, 0 collinear, +1 counter-clockwise. No tolerance is ever
// applied — collinearity is exact.
func Ccw(a, b, c *Point) int {
	ba := Sub(b, a)
	ca := Sub(c, a)
	return ba.Cross(ca).Sign()
}

// InCircumcircle returns +1/0/-1 for x strictly inside / on / outside the
// circle through a, b, c. The determinant is multiplied by Ccw(a,b,c) so the
// result's polarity does not depend on the winding order of a,b,c.
func InCircumcircle(a, b, c, x *Point) int {
	A, B, C := Sub(a, x), Sub(b, x), Sub(c, x)
	X, Y, Z := A.NormSq(), B.NormSq(), C.NormSq()
	det := adaptive.Add(
		adaptive.Add(adaptive.Mul(A.Cross(B), Z), adaptive.Mul(B.Cross(C), X)),
		adaptive.Mul(C.Cross(A), Y),
	)
	return det.Sign() * Ccw(a, b, c)
}

// SegmentsIntersect reports whether the closed segments (s1,s2) and (t1,t2)
// share a point, endpoints included. It combines a bounding-box overlap
// test on both axes with a pair of opposite-side ccw tests.
func SegmentsIntersect(s1, s2, t1, t2 *Point) bool {
	if !intervalsOverlap(s1.X, s2.X, t1.X, t2.X) {
		return false
	}
	if !intervalsOverlap(s1.Y, s2.Y, t1.Y, t2.Y) {
		return false
	}
	if Ccw(s1, s2, t1)*Ccw(s1, s2, t2) > 0 {
		return false
	}
	if Ccw(t1, t2, s1)*Ccw(t1, t2, s2) > 0 {
		return false
	}
	return true
}

func intervalsOverlap(a, b, c, d *adaptive.AdaptiveInt) bool {
	if adaptive.Compare(a, b) > 0 {
		a, b = b, a
	}
	if adaptive.Compare(c, d) > 0 {
		c, d = d, c
	}
	return adaptive.Compare(a, d) <= 0 && adaptive.Compare(c, b) <= 0
}

// PolygonAreaDoubled returns twice the signed area of poly (positive for a
// counter-clockwise polygon), summing the cross products of consecutive
// edges including the closing edge back to the first vertex.
func PolygonAreaDoubled(poly []*Point) *adaptive.AdaptiveInt {
	geomerrors.Assert(len(poly) > 0, geomerrors.ErrEmptyPolygon)
	ret := adaptive.Zero(poly[0].Bits()*2 + 3)
	for i := 0; i+1 < len(poly); i++ {
		ret = adaptive.Add(ret, poly[i].Cross(poly[i+1]))
	}
	ret = adaptive.Add(ret, poly[len(poly)-1].Cross(poly[0]))
	return ret
}
