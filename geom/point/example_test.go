package point_test

import (
	"fmt"

	"github.com/dacin21/dacin21-exact-geometry/geom/point"
)

// ExampleConvexHull computes the convex hull of a small point set: one
// interior point and one collinear edge point are dropped.
func ExampleConvexHull() {
	bits := 16
	pts := []*point.Point{
		point.New(bits, 0, 0),
		point.New(bits, 4, 0),
		point.New(bits, 4, 4),
		point.New(bits, 0, 4),
		point.New(bits, 2, 2), // interior, dropped
		point.New(bits, 2, 0), // collinear on the bottom edge, dropped
	}

	hull := point.ConvexHull(pts)
	for _, p := range hull {
		fmt.Println(p)
	}

	// Output:
	// (0, 0)
	// (4, 0)
	// (4, 4)
	// (0, 4)
}

// ExamplePolygonAreaDoubled computes twice the signed area of the hull
// above, which is an exact integer for any polygon with integer vertices.
func ExamplePolygonAreaDoubled() {
	bits := 16
	square := []*point.Point{
		point.New(bits, 0, 0),
		point.New(bits, 4, 0),
		point.New(bits, 4, 4),
		point.New(bits, 0, 4),
	}

	fmt.Println(point.PolygonAreaDoubled(square))

	// Output:
	// 32
}
