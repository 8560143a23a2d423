package delaunay

import (
	"github.com/dacin21/dacin21-exact-geometry/geom/adaptive"
	"github.com/dacin21/dacin21-exact-geometry/geom/point"
)

// Face is one triangle of a live (or compacted) triangulation: three corner
// points, three neighbour handles (neighbour i is opposite corner i, i.e.
// across the edge (corners[(i+1)%3], corners[(i+2)%3])), and — while the
// triangulation is still being built — a bucket of unplaced input-point
// indices that currently lie inside it.
type Face struct {
	Corners [3]*point.Point
	Adj     [3]*Face
	Bucket  []int

	inf *adaptive.AdaptiveInt
}

func newFace(inf *adaptive.AdaptiveInt, a, b, c *point.Point) *Face {
	return &Face{Corners: [3]*point.Point{a, b, c}, inf: inf}
}

// IsInfinite reports whether any of f's corners is one of the super-triangle
// sentinels. Faces touching a sentinel have no geometric meaning to a caller
// and are conventionally filtered out of the result.
func (f *Face) IsInfinite() bool {
	return isInfinitePoint(f.Corners[0], f.inf) ||
		isInfinitePoint(f.Corners[1], f.inf) ||
		isInfinitePoint(f.Corners[2], f.inf)
}

func isInfinitePoint(p *point.Point, inf *adaptive.AdaptiveInt) bool {
	negInf := adaptive.Neg(inf)
	return adaptive.Compare(p.X, inf) == 0 || adaptive.Compare(p.X, negInf) == 0 ||
		adaptive.Compare(p.Y, inf) == 0 || adaptive.Compare(p.Y, negInf) == 0
}
