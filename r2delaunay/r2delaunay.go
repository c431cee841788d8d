// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay computes planar Delaunay triangulations by lifting points
// onto the paraboloid z = x² + y² and keeping the lower convex hull.
package r2delaunay

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

var (
	ErrInsufficientVertices = errors.New("r2delaunay: insufficient vertices for triangulation (minimum 3 required)")
	ErrDegenerate           = errors.New("r2delaunay: degenerate vertex set")
)

type Triangulation struct {
	Vertices  []r2.Point
	Triangles [][3]int
	// NOTE: Sorted CCW around each vertex.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

func (dt *Triangulation) NumVertices() int {
	return len(dt.Vertices)
}

func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Neighbors returns the vertices joined to vIdx by a triangulation edge, in
// ascending index order.
func (dt *Triangulation) Neighbors(vIdx int) []int {
	var out []int
	for _, tIdx := range dt.IncidentTriangles(vIdx) {
		for _, u := range dt.Triangles[tIdx] {
			if u != vIdx {
				out = append(out, u)
			}
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return errors.New("WithEps: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 3 {
		return nil, ErrInsufficientVertices
	}

	lifted, err := liftVertices(vertices)
	if err != nil {
		return nil, err
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("r2delaunay: inconsistent number of indices returned from QuickHull")
	}

	var centroid r3.Vector
	for _, p := range lifted {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(numVertices))

	dt := &Triangulation{
		Vertices:                vertices,
		IncidentTriangleOffsets: make([]int, numVertices+1),
	}
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		if !isLowerFace(lifted, t, centroid, opts.Eps) {
			continue
		}
		sortTriangleVerticesCCW(&t, vertices)
		dt.Triangles = append(dt.Triangles, t)
	}
	if len(dt.Triangles) == 0 {
		return nil, ErrDegenerate
	}

	for _, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		if dt.IncidentTriangleOffsets[i+1] == 0 {
			return nil, fmt.Errorf("%w: vertex %d not part of any triangle", ErrDegenerate, i)
		}
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	dt.IncidentTriangleIndices = make([]int, dt.IncidentTriangleOffsets[numVertices])
	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for tIdx, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = tIdx
			nxt[v]++
		}
	}

	for i := range numVertices {
		sortIncidentTrianglesCCW(i, dt.IncidentTriangles(i), dt)
	}

	return dt, nil
}

// liftVertices maps the vertices into the unit box around their bounding-box
// center and lifts them onto the paraboloid.
func liftVertices(vertices []r2.Point) ([]r3.Vector, error) {
	bound := r2.EmptyRect()
	for _, p := range vertices {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return nil, fmt.Errorf("%w: non-finite vertex %v", ErrDegenerate, p)
		}
		bound = bound.AddPoint(p)
	}
	size := bound.Size()
	scale := math.Max(size.X, size.Y) / 2
	if scale == 0 {
		return nil, ErrDegenerate
	}

	center := bound.Center()
	lifted := make([]r3.Vector, len(vertices))
	for i, p := range vertices {
		q := p.Sub(center).Mul(1 / scale)
		lifted[i] = r3.Vector{X: q.X, Y: q.Y, Z: q.Dot(q)}
	}
	return lifted, nil
}

// isLowerFace reports whether the hull face t faces down, i.e. its inward
// normal has a positive z component. Vertical and flat faces are rejected.
func isLowerFace(lifted []r3.Vector, t [3]int, centroid r3.Vector, eps float64) bool {
	a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	norm := n.Norm()
	if norm == 0 {
		return false
	}
	inward := n.Dot(centroid.Sub(a))
	if math.Abs(inward) <= eps*norm {
		return false
	}
	if inward < 0 {
		n = n.Mul(-1)
	}
	return n.Z > eps*norm
}

func sortTriangleVerticesCCW(t *[3]int, v []r2.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

// sortIncidentTrianglesCCW orders the triangles around vIdx by the angle of
// their centroids. The fan of a hull vertex is open, so chaining by shared
// edges is not enough here.
func sortIncidentTrianglesCCW(vIdx int, incidentTris []int, dt *Triangulation) {
	center := dt.Vertices[vIdx]
	angle := func(tIdx int) float64 {
		a, b, c := dt.TriangleVertices(tIdx)
		g := a.Add(b).Add(c).Mul(1.0 / 3).Sub(center)
		return math.Atan2(g.Y, g.X)
	}
	slices.SortFunc(incidentTris, func(x, y int) int {
		return cmp.Compare(angle(x), angle(y))
	})
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}

// Circumcenter returns the center of the circle through a, b and c. The result
// is not finite when the points are collinear.
func Circumcenter(a, b, c r2.Point) r2.Point {
	ba := b.Sub(a)
	ca := c.Sub(a)
	d := 2 * ba.Cross(ca)
	bb := ba.Dot(ba)
	cc := ca.Dot(ca)
	return r2.Point{
		X: a.X + (ca.Y*bb-ba.Y*cc)/d,
		Y: a.Y + (ba.X*cc-ca.X*bb)/d,
	}
}
