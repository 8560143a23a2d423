// Package point implements Point(n): a pair of AdaptiveInt(n) coordinates,
// the angular/lexicographic comparisons used to order directions and
// vertices, and the geometric algorithms built on top — ccw, in-circumcircle,
// segment intersection, signed area, convex hull and Minkowski sum.
//
// This package expresses its algebra through geom/adaptive's already-
// widening arithmetic, so the output width of a composite expression (e.g.
// a dot product, k = n+m+1) simply falls out of composing Add/Sub/Mul
// rather than needing to be tracked by hand here.
package point

import (
	"fmt"
	"strings"

	"github.com/dacin21/dacin21-exact-geometry/geom/adaptive"
	"github.com/dacin21/dacin21-exact-geometry/geom/bignum"
	"github.com/dacin21/dacin21-exact-geometry/geom/geomerrors"
)

// Point is an immutable pair of AdaptiveInt coordinates of equal declared
// width. Algorithms never mutate a Point in place; they build new ones.
type Point struct {
	X, Y *adaptive.AdaptiveInt
}

// New constructs a Point(bits) from native integer coordinates.
func New(bits int, x, y int64) *Point {
	return &Point{X: adaptive.New(bits, x), Y: adaptive.New(bits, y)}
}

// FromCoords wraps an existing pair of AdaptiveInts. They must share the
// same declared width — a Point's x and y are always expressed at the same
// bit budget.
func FromCoords(x, y *adaptive.AdaptiveInt) *Point {
	geomerrors.Assert(x.Bits() == y.Bits(), geomerrors.ErrWidthTooSmall)
	return &Point{X: x, Y: y}
}

// Bits returns the declared coordinate bit budget n.
func (p *Point) Bits() int { return p.X.Bits() }

// Add returns p+q, each coordinate independently width-grown.
func Add(p, q *Point) *Point {
	return &Point{X: adaptive.Add(p.X, q.X), Y: adaptive.Add(p.Y, q.Y)}
}

// Sub returns p-q.
func Sub(p, q *Point) *Point {
	return &Point{X: adaptive.Sub(p.X, q.X), Y: adaptive.Sub(p.Y, q.Y)}
}

// ScalarMul returns p*s.
func ScalarMul(p *Point, s *adaptive.AdaptiveInt) *Point {
	return &Point{X: adaptive.Mul(p.X, s), Y: adaptive.Mul(p.Y, s)}
}

// Dot returns the dot product p·o, at width n+m+1.
func (p *Point) Dot(o *Point) *adaptive.AdaptiveInt {
	return adaptive.Add(adaptive.Mul(p.X, o.X), adaptive.Mul(p.Y, o.Y))
}

// Cross returns the 2D cross product p×o = p.x*o.y - p.y*o.x, at width n+m+1.
func (p *Point) Cross(o *Point) *adaptive.AdaptiveInt {
	return adaptive.Sub(adaptive.Mul(p.X, o.Y), adaptive.Mul(p.Y, o.X))
}

// NormSq returns |p|^2, at width 2n+1.
func (p *Point) NormSq() *adaptive.AdaptiveInt {
	return adaptive.Add(adaptive.Mul(p.X, p.X), adaptive.Mul(p.Y, p.Y))
}

// CompAngular180 treats p and o as direction vectors and returns the sign of
// the half-plane test o×p; this is the half-plane (180°) ordering of
// directions used as the tie-breaker inside CompAngular360.
func (p *Point) CompAngular180(o *Point) int {
	return o.Cross(p).Sign()
}

// isNonnegAngle reports whether p, read as a direction, lies in the "upper"
// half of the 360° angular order: strictly positive y, or y==0 with
// strictly positive x.
func (p *Point) isNonnegAngle() bool {
	s := p.Y.Sign()
	if s != 0 {
		return s > 0
	}
	return p.X.Sign() > 0
}

// CompAngular360 is the full 360° total order on directions: partition by
// upper/lower half first, then break ties within a half using
// CompAngular180. This is the order MinkowskiSum's angular merge walks.
func (p *Point) CompAngular360(o *Point) int {
	low, oLow := p.isNonnegAngle(), o.isNonnegAngle()
	if low != oLow {
		if oLow {
			return -1
		}
		return 1
	}
	return p.CompAngular180(o)
}

// CompLexicographical orders points by (x, then y).
func (p *Point) CompLexicographical(o *Point) int {
	if c := adaptive.Compare(p.X, o.X); c != 0 {
		return c
	}
	return adaptive.Compare(p.Y, o.Y)
}

// Conj reflects p across the x-axis.
func (p *Point) Conj() *Point {
	return &Point{X: p.X, Y: adaptive.Neg(p.Y)}
}

// AngleSum treats p and o as complex numbers and returns their product,
// i.e. the direction whose angle is the sum of p's and o's angles.
func (p *Point) AngleSum(o *Point) *Point {
	x := adaptive.Sub(adaptive.Mul(p.X, o.X), adaptive.Mul(p.Y, o.Y))
	y := adaptive.Add(adaptive.Mul(p.X, o.Y), adaptive.Mul(p.Y, o.X))
	return &Point{X: x, Y: y}
}

// AngleDiff treats p and o as complex numbers and returns p * conj(o), i.e.
// the direction whose angle is the difference of p's and o's angles.
func (p *Point) AngleDiff(o *Point) *Point {
	x := adaptive.Add(adaptive.Mul(p.X, o.X), adaptive.Mul(p.Y, o.Y))
	y := adaptive.Sub(adaptive.Mul(p.Y, o.X), adaptive.Mul(p.X, o.Y))
	return &Point{X: x, Y: y}
}

// Equal reports whether p and o denote the same coordinate pair.
func (p *Point) Equal(o *Point) bool {
	return adaptive.Compare(p.X, o.X) == 0 && adaptive.Compare(p.Y, o.Y) == 0
}

// String renders p as "(x, y)".
func (p *Point) String() string {
	return fmt.Sprintf("(%s, %s)", p.X.String(), p.Y.String())
}

// ParsePoint parses "x y" (whitespace-separated signed decimals) into a
// Point(bits).
func ParsePoint(s string, bits int) (*Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return nil, geomerrors.ErrInvalidLiteral
	}
	x, err := parseAdaptive(fields[0], bits)
	if err != nil {
		return nil, err
	}
	y, err := parseAdaptive(fields[1], bits)
	if err != nil {
		return nil, err
	}
	return &Point{X: x, Y: y}, nil
}

func parseAdaptive(s string, bits int) (*adaptive.AdaptiveInt, error) {
	words := bits/64 + 2
	bn, err := bignum.Parse(s, words)
	if err != nil {
		return nil, err
	}
	return adaptive.FromBigInt(bits, bn.ToBigInt()), nil
}
