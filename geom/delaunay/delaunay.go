// Package delaunay implements the incremental randomised Delaunay
// triangulation: a super-triangle seeded with sentinel "infinite" corners,
// vertex-bucket point location, face split plus edge-flip repair, and a
// final compaction pass that produces a dense face array with rewritten
// neighbour handles.
//
// Faces live in an append-only pool of *Face values rather than a
// reallocating vector of value structs, so pointers into the pool never
// need to be invalidated or patched up as the triangulation grows.
package delaunay

import (
	"sort"

	"github.com/dacin21/dacin21-exact-geometry/geom/adaptive"
	"github.com/dacin21/dacin21-exact-geometry/geom/geomerrors"
	"github.com/dacin21/dacin21-exact-geometry/geom/point"
	"github.com/dacin21/dacin21-exact-geometry/internal/stack"
)

// Delaunay holds the live state of one triangulation run: the immutable
// input points, the append-only face pool, and the per-point face location
// index.
type Delaunay struct {
	bits   int
	inf    *adaptive.AdaptiveInt
	points []*point.Point

	faces []*Face

	// locate maps input-point index to a face. Only the first (smallest)
	// index of each bucket is kept up to date; since points are inserted in
	// index order, the next point to insert is always at the front of its
	// bucket, which gives O(1) placement for every insertion without needing
	// a separate point-location-by-walking step.
	locate []*Face
}

// computeInf returns 2^(bits-1) via repeated squaring rather than a single
// shift, because the exponent bits-1 is runtime data that may exceed
// AdaptiveInt's 64-bit-at-a-time Shl budget. Every intermediate value stays
// below 2^(bits-1), so the squaring can use the same-width "unsafe" multiply
// throughout rather than a widening one.
func computeInf(bits int) *adaptive.AdaptiveInt {
	geomerrors.Assert(bits >= 2, geomerrors.ErrWidthTooSmall)
	ret := adaptive.New(bits, 1)
	two := adaptive.New(bits, 2)
	exp := uint(bits - 1)
	top := uint(1)
	for top<<1 <= exp {
		top <<= 1
	}
	for i := top; i > 0; i >>= 1 {
		adaptive.MulUnsafe(ret, ret)
		if exp&i != 0 {
			adaptive.MulUnsafe(ret, two)
		}
	}
	return ret
}

// Triangulate builds the Delaunay triangulation of pts, using a coordinate
// bit budget of bits. bits must be large enough that INF = 2^(bits-1) lies
// strictly above every input coordinate's absolute value; this is the one
// statically-checkable precondition, so it is returned as an error rather
// than enforced by panic. Every other precondition (no duplicate points,
// every point strictly inside the super-triangle) is the caller's contract
// and is not checked.
//
// The insertion order of pts is used as-is: the expected O(n log n) running
// time assumes the caller has already randomised it.
func Triangulate(pts []*point.Point, bits int) ([]*Face, error) {
	inf := computeInf(bits)
	for _, p := range pts {
		if adaptive.Compare(absAdaptive(p.X), inf) >= 0 || adaptive.Compare(absAdaptive(p.Y), inf) >= 0 {
			return nil, geomerrors.ErrCoordinateOutOfRange
		}
	}

	d := &Delaunay{
		bits:   bits,
		inf:    inf,
		points: pts,
	}
	return d.run(), nil
}

func absAdaptive(v *adaptive.AdaptiveInt) *adaptive.AdaptiveInt {
	if v.Sign() < 0 {
		return adaptive.Neg(v)
	}
	return v
}

func (d *Delaunay) run() []*Face {
	n := len(d.points)

	negInf := adaptive.Neg(d.inf)
	north := point.FromCoords(adaptive.New(d.bits, 0), d.inf)
	sw := point.FromCoords(negInf, negInf)
	se := point.FromCoords(d.inf, negInf)

	root := newFace(d.inf, north, sw, se)
	root.Bucket = make([]int, n)
	for i := range root.Bucket {
		root.Bucket[i] = i
	}
	d.faces = append(d.faces, root)

	location := make([]*Face, n)
	for i := range location {
		location[i] = root
	}
	d.locate = location

	for i := 0; i < n; i++ {
		d.split(d.locate[i], i)
	}

	return d.compressFaces()
}

// getFreeFace allocates a new Face and appends it to the pool.
func (d *Delaunay) getFreeFace(a, b, c *point.Point) *Face {
	f := newFace(d.inf, a, b, c)
	d.faces = append(d.faces, f)
	return f
}

func (d *Delaunay) linkBucket(f *Face) {
	if len(f.Bucket) > 0 {
		d.locate[f.Bucket[0]] = f
	}
}

func getOtherDir(f *Face, dir int, old *Face) int {
	other := f.Adj[dir]
	for k := 0; k < 3; k++ {
		if other.Adj[k] == old {
			return k
		}
	}
	return -1
}

func linkFace(f *Face, dir int, old *Face) {
	if f.Adj[dir] == nil {
		return
	}
	otherDir := getOtherDir(f, dir, old)
	f.Adj[dir].Adj[otherDir] = f
}

func hasToFlip(f *Face, p *point.Point) bool {
	a, b, c := f.Corners[0], f.Corners[1], f.Corners[2]
	switch {
	case isInfinitePoint(a, f.inf):
		return point.Ccw(b, c, p) > 0
	case isInfinitePoint(b, f.inf):
		return point.Ccw(c, a, p) > 0
	case isInfinitePoint(c, f.inf):
		return point.Ccw(a, b, p) > 0
	}
	if point.Ccw(a, b, c) == 0 {
		return point.Ccw(a, b, p)+point.Ccw(b, c, p)+point.Ccw(c, a, p) > 0
	}
	if isInfinitePoint(p, f.inf) {
		return false
	}
	return point.InCircumcircle(a, b, c, p) > 0
}

type flipJob struct {
	face *Face
	dir  int
}

// checkFlips repairs the local Delaunay condition across face.Adj[dir],
// iteratively: a flip that succeeds enqueues the four edges of the two
// flipped faces that are not the shared diagonal, so the repair cascades to
// any face the flip may have newly broken. An explicit worklist is used
// instead of recursion since a long chain of cascading flips has no a
// priori depth bound.
func (d *Delaunay) checkFlips(face *Face, dir int) {
	work := stack.NewStack[flipJob]()
	work.Push(flipJob{face, dir})
	for !work.IsEmpty() {
		job := work.Pop()
		f := job.face
		dir := job.dir
		if f.Adj[dir] == nil {
			continue
		}
		otherDir := getOtherDir(f, dir, f)
		o := f.Adj[dir]
		if !hasToFlip(f, o.Corners[otherDir]) {
			continue
		}

		f.Corners[(dir+1)%3] = o.Corners[otherDir]
		o.Corners[(otherDir+1)%3] = f.Corners[dir]
		f.Adj[dir] = o.Adj[(otherDir+2)%3]
		o.Adj[(otherDir+2)%3] = f
		o.Adj[otherDir] = f.Adj[(dir+2)%3]
		f.Adj[(dir+2)%3] = o
		linkFace(f, dir, o)
		linkFace(o, otherDir, f)

		merged := append(append([]int(nil), f.Bucket...), o.Bucket...)
		sort.Ints(merged)
		f.Bucket = f.Bucket[:0]
		o.Bucket = o.Bucket[:0]
		for _, e := range merged {
			if point.Ccw(f.Corners[dir], f.Corners[(dir+1)%3], d.points[e]) > 0 {
				f.Bucket = append(f.Bucket, e)
			} else {
				o.Bucket = append(o.Bucket, e)
			}
		}
		d.linkBucket(f)
		d.linkBucket(o)

		work.Push(flipJob{f, dir % 3})
		work.Push(flipJob{f, (dir + 1) % 3})
		work.Push(flipJob{o, otherDir % 3})
		work.Push(flipJob{o, (otherDir + 1) % 3})
	}
}

// split inserts the point at pointIndex into face a, replacing it with three
// children a, b, c that share the new vertex, then repairs the Delaunay
// condition across each of the three new outward edges.
func (d *Delaunay) split(a *Face, pointIndex int) {
	p := d.points[pointIndex]
	b := d.getFreeFace(a.Corners[0], a.Corners[1], p)
	c := d.getFreeFace(a.Corners[1], a.Corners[2], p)
	a.Corners[1] = p

	b.Adj = [3]*Face{c, a, a.Adj[2]}
	c.Adj = [3]*Face{a, b, a.Adj[0]}
	a.Adj = [3]*Face{c, a.Adj[1], b}

	linkFace(b, 2, a)
	linkFace(c, 2, a)
	linkFace(a, 1, a)

	oldBucket := a.Bucket
	a.Bucket = nil
	for _, e := range oldBucket {
		if e == pointIndex {
			continue
		}
		switch {
		case point.Ccw(b.Corners[1], b.Corners[2], d.points[e]) >= 0 && point.Ccw(b.Corners[2], b.Corners[0], d.points[e]) >= 0:
			b.Bucket = append(b.Bucket, e)
		case point.Ccw(c.Corners[1], c.Corners[2], d.points[e]) >= 0 && point.Ccw(c.Corners[2], c.Corners[0], d.points[e]) >= 0:
			c.Bucket = append(c.Bucket, e)
		default:
			a.Bucket = append(a.Bucket, e)
		}
	}
	d.linkBucket(a)
	d.linkBucket(b)
	d.linkBucket(c)

	d.checkFlips(a, 1)
	d.checkFlips(b, 2)
	d.checkFlips(c, 2)
}

// compressFaces walks the face pool, keeps exactly one copy of each live
// face, and rewrites every neighbour handle to point into the compacted
// slice.
func (d *Delaunay) compressFaces() []*Face {
	seen := make(map[*Face]*Face, len(d.faces))
	var out []*Face
	for _, f := range d.faces {
		if _, ok := seen[f]; !ok {
			nf := &Face{Corners: f.Corners, Adj: f.Adj, Bucket: f.Bucket, inf: f.inf}
			seen[f] = nf
			out = append(out, nf)
		}
	}
	for _, f := range out {
		for i := 0; i < 3; i++ {
			f.Adj[i] = seen[f.Adj[i]]
		}
	}
	return out
}
