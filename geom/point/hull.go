package point

import "sort"

// ConvexHull computes the convex hull of pts via Andrew's monotone chain,
// emitted counter-clockwise with the repeated start vertex excluded.
// Duplicate points (exact equality) are discarded first; collinear points
// lying on a hull edge are discarded too (strict ccw <= 0 pops them).
func ConvexHull(pts []*Point) []*Point {
	sorted := append([]*Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CompLexicographical(sorted[j]) < 0
	})
	sorted = dedupLexicographical(sorted)

	var hull []*Point
	for pass := 0; pass < 2; pass++ {
		oldSize := len(hull)
		for _, e := range sorted {
			for len(hull) > oldSize+1 && Ccw(hull[len(hull)-2], hull[len(hull)-1], e) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, e)
		}
		if len(hull) > 1 {
			hull = hull[:len(hull)-1]
		}
		reverseInPlace(sorted)
	}
	return hull
}

func dedupLexicographical(pts []*Point) []*Point {
	if len(pts) == 0 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p.CompLexicographical(out[len(out)-1]) != 0 {
			out = append(out, p)
		}
	}
	return out
}

func reverseInPlace(pts []*Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
