package birch

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
)

// DefaultExhaustiveThreshold is the point count below which BuildIndex skips
// triangulation and answers queries by linear scan. For tiny datasets the
// scan is faster than walking a triangulation and has no degenerate cases.
const DefaultExhaustiveThreshold = 16

// PointIndex answers nearest-point queries over every point of every series,
// in pixel space. Build is O(N log N); queries walk the Delaunay
// triangulation from the previous result, which is close to O(log N) for
// typical pointer movement and degrades gracefully for jumps.
//
// Results are deterministic: when several points are exactly equidistant
// from the query, the one with the lowest series index wins, and within a
// series the lowest point index. Duplicate coordinates resolve to the first
// occurrence in that same order.
type PointIndex struct {
	pts          []delaunay.Point // flat pixel positions, series-major order
	refs         []PointRef       // refs[i] identifies pts[i]
	seriesStarts []int            // flat index of each series' first point

	// Triangulation state. tri == nil means exhaustive-scan mode, used for
	// small or degenerate (collinear, all-duplicate) datasets.
	tri      *delaunay.Triangulation
	inedges  []int // an incoming halfedge per vertex, preferring hull edges
	hullNext []int // successor on the convex hull, -1 for interior vertices
	canon    []int // lowest flat index among points sharing a coordinate
	start    int   // walk start hint, updated per query for pointer locality
}

// BuildIndex builds a point index over the normalized series. Accessor
// values are mapped through the scales to pixels; every point of every
// series is indexed, including points outside the plot rectangle. An
// accessor error or a non-finite pixel coordinate aborts the build.
func BuildIndex(series []Series, x, y Accessor, xs, ys Scale) (*PointIndex, error) {
	return buildIndex(series, x, y, xs, ys, DefaultExhaustiveThreshold)
}

func buildIndex(series []Series, x, y Accessor, xs, ys Scale, threshold int) (*PointIndex, error) {
	n := countPoints(series)
	ix := &PointIndex{
		pts:          make([]delaunay.Point, 0, n),
		refs:         make([]PointRef, 0, n),
		seriesStarts: make([]int, len(series)),
	}
	for si, s := range series {
		ix.seriesStarts[si] = len(ix.pts)
		for pi, r := range s {
			xv, err := x(r)
			if err != nil {
				return nil, fmt.Errorf("birch: x accessor on series %d point %d: %w", si, pi, err)
			}
			yv, err := y(r)
			if err != nil {
				return nil, fmt.Errorf("birch: y accessor on series %d point %d: %w", si, pi, err)
			}
			px, py := xs(xv), ys(yv)
			if !isFinite(px) || !isFinite(py) {
				return nil, fmt.Errorf("birch: series %d point %d maps to non-finite pixel (%v, %v)", si, pi, px, py)
			}
			ix.pts = append(ix.pts, delaunay.Point{X: px, Y: py})
			ix.refs = append(ix.refs, PointRef{Series: si, Index: pi})
		}
	}
	if len(ix.pts) >= threshold && len(ix.pts) >= 3 {
		ix.triangulate()
	}
	return ix, nil
}

// triangulate switches the index into walk mode. Failures (collinear input,
// too few distinct points) leave the index in scan mode, which is always
// correct, just slower.
func (ix *PointIndex) triangulate() {
	tri, err := delaunay.Triangulate(ix.pts)
	if err != nil || len(tri.Triangles) == 0 {
		return
	}
	ix.tri = tri
	ix.buildInedges()
	ix.buildHullNext()
	ix.buildCanon()
}

// buildInedges picks one incoming halfedge per vertex. Hull edges are
// preferred so that circulating from the inedge sweeps a vertex's full
// neighborhood before running off the hull.
func (ix *PointIndex) buildInedges() {
	ix.inedges = make([]int, len(ix.pts))
	for i := range ix.inedges {
		ix.inedges[i] = -1
	}
	tris := ix.tri.Triangles
	halves := ix.tri.Halfedges
	for e := 0; e < len(halves); e++ {
		p := tris[nextHalfedge(e)]
		if halves[e] == -1 || ix.inedges[p] == -1 {
			ix.inedges[p] = e
		}
	}
}

// buildHullNext records, for every hull vertex, its successor along the
// hull. Boundary halfedges (those with no twin) traverse the hull in a
// single consistent cycle, so chaining their endpoints reconstructs it.
func (ix *PointIndex) buildHullNext() {
	ix.hullNext = make([]int, len(ix.pts))
	for i := range ix.hullNext {
		ix.hullNext[i] = -1
	}
	tris := ix.tri.Triangles
	halves := ix.tri.Halfedges
	for e := 0; e < len(halves); e++ {
		if halves[e] == -1 {
			ix.hullNext[tris[e]] = tris[nextHalfedge(e)]
		}
	}
}

// buildCanon maps every flat index to the lowest flat index sharing its
// exact coordinates. The triangulation keeps only one vertex per coordinate,
// not necessarily the lowest-ordered one, so walk results are remapped
// through this table to keep duplicate resolution deterministic.
func (ix *PointIndex) buildCanon() {
	ix.canon = make([]int, len(ix.pts))
	seen := make(map[delaunay.Point]int, len(ix.pts))
	for i, p := range ix.pts {
		if j, ok := seen[p]; ok {
			ix.canon[i] = j
		} else {
			seen[p] = i
			ix.canon[i] = i
		}
	}
}

// Len returns the number of indexed points.
func (ix *PointIndex) Len() int {
	return len(ix.pts)
}

// Shape returns the per-series point counts the index was built over.
func (ix *PointIndex) Shape() []int {
	shape := make([]int, len(ix.seriesStarts))
	for i := range ix.seriesStarts {
		end := len(ix.pts)
		if i+1 < len(ix.seriesStarts) {
			end = ix.seriesStarts[i+1]
		}
		shape[i] = end - ix.seriesStarts[i]
	}
	return shape
}

// PositionOf returns the pixel position of a referenced point.
func (ix *PointIndex) PositionOf(ref PointRef) (Vec2, bool) {
	if ref.Series < 0 || ref.Series >= len(ix.seriesStarts) {
		return Vec2{}, false
	}
	flat := ix.seriesStarts[ref.Series] + ref.Index
	end := len(ix.pts)
	if ref.Series+1 < len(ix.seriesStarts) {
		end = ix.seriesStarts[ref.Series+1]
	}
	if ref.Index < 0 || flat >= end {
		return Vec2{}, false
	}
	p := ix.pts[flat]
	return Vec2{X: p.X, Y: p.Y}, true
}

// Nearest returns the point closest to the pixel position (px, py). The
// second return is false only when the index is empty. Distance is plain
// Euclidean; ties resolve to the lowest (series, point) pair.
func (ix *PointIndex) Nearest(px, py float64) (PointRef, bool) {
	if len(ix.pts) == 0 {
		return NoPoint, false
	}
	var best int
	if ix.tri == nil {
		best = ix.scanNearest(px, py)
	} else {
		w := ix.findFrom(ix.start, px, py)
		ix.start = w
		if ix.tieAt(w, px, py) {
			// An equidistant neighbor exists; rank all candidates.
			best = ix.scanNearest(px, py)
		} else {
			best = ix.canon[w]
		}
	}
	return ix.refs[best], true
}

// findFrom walks the triangulation greedily from vertex i toward the query,
// stepping to any neighbor closer than the current vertex until no
// improvement remains.
func (ix *PointIndex) findFrom(i int, x, y float64) int {
	i0 := i
	for {
		c := ix.step(i, x, y)
		if c == i || c == i0 {
			return c
		}
		i = c
	}
}

// step returns the best next vertex when moving from i toward (x, y): the
// closest of i and its Delaunay neighbors, escaping along the hull when the
// query lies outside it. Vertices dropped from the triangulation (duplicate
// coordinates) redirect to the next flat index.
func (ix *PointIndex) step(i int, x, y float64) int {
	if ix.inedges[i] == -1 {
		return (i + 1) % len(ix.pts)
	}
	c := i
	dc := sqDist(x, y, ix.pts[i].X, ix.pts[i].Y)
	e0 := ix.inedges[i]
	e := e0
	for {
		t := ix.tri.Triangles[e]
		dt := sqDist(x, y, ix.pts[t].X, ix.pts[t].Y)
		if dt < dc {
			dc = dt
			c = t
		}
		e = nextHalfedge(e)
		if ix.tri.Triangles[e] != i {
			break // bad triangulation
		}
		e = ix.tri.Halfedges[e]
		if e == -1 {
			// Crossed the hull: consider the final hull neighbor, then stop.
			h := ix.hullNext[i]
			if h != -1 && h != t && sqDist(x, y, ix.pts[h].X, ix.pts[h].Y) < dc {
				return h
			}
			break
		}
		if e == e0 {
			break
		}
	}
	return c
}

// tieAt reports whether any Delaunay neighbor of vertex i is exactly as
// close to (x, y) as i itself. Equidistant nearest candidates are always
// Voronoi neighbors, so checking the 1-ring is sufficient to detect a tie.
func (ix *PointIndex) tieAt(i int, x, y float64) bool {
	e0 := ix.inedges[i]
	if e0 == -1 {
		return true // not in the triangulation, resolve by scan
	}
	d := sqDist(x, y, ix.pts[i].X, ix.pts[i].Y)
	if ix.canon[i] != i {
		return true // a coordinate twin shares the distance exactly
	}
	e := e0
	var t int
	for {
		t = ix.tri.Triangles[e]
		if sqDist(x, y, ix.pts[t].X, ix.pts[t].Y) == d {
			return true
		}
		e = nextHalfedge(e)
		if ix.tri.Triangles[e] != i {
			return true // bad triangulation, resolve by scan
		}
		e = ix.tri.Halfedges[e]
		if e == -1 {
			// Hull vertex: the circulation misses one last neighbor.
			h := ix.hullNext[i]
			if h != -1 && h != t && sqDist(x, y, ix.pts[h].X, ix.pts[h].Y) == d {
				return true
			}
			return false
		}
		if e == e0 {
			return false
		}
	}
}

// scanNearest is the exhaustive fallback. The strict comparison keeps the
// lowest flat index on ties, and flat order is series-major, so ties resolve
// to the lowest series then the lowest point index.
func (ix *PointIndex) scanNearest(x, y float64) int {
	best := 0
	bd := math.Inf(1)
	for i, p := range ix.pts {
		d := sqDist(x, y, p.X, p.Y)
		if d < bd {
			bd = d
			best = i
		}
	}
	return best
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func sqDist(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
