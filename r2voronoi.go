// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi builds planar Voronoi diagrams and evaluates a quadratic
// tessellation field over them: a piecewise quadratic potential that blends
// between the squared distance to a site and a field anchored to the
// diagram's vertices.
package r2voronoi

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
)

const (
	// DefaultVertexEps is the per-coordinate absolute tolerance under which two
	// cell corners are the same diagram vertex. It also decides whether corners
	// produced by nearly cocircular sites merge.
	DefaultVertexEps = 1e-10
	// DefaultClipScale is the size of the clipping rectangle relative to the
	// bounds. Cells of hull sites are unbounded and get cut by it.
	DefaultClipScale = 10
	// DefaultMaxGrowthSteps caps region growth per query.
	DefaultMaxGrowthSteps = 10
)

var (
	ErrDegenerateInput = errors.New("r2voronoi: degenerate input")
	ErrInvalidBounds   = errors.New("r2voronoi: invalid bounds")
	ErrInvalidRatio    = errors.New("r2voronoi: ratio must lie in [0, 1)")
	ErrInvalidRegion   = errors.New("r2voronoi: invalid region")
	ErrNotFound        = errors.New("r2voronoi: no cell contains point")
)

// Diagram is a Voronoi diagram of the input points and the four corners of the
// bounds. It is read-only once built and safe for concurrent use.
type Diagram struct {
	sites     []r2.Point
	numPoints int
	bounds    r2.Rect
	clip      r2.Rect

	// NOTE: CCW, clipped to clip.
	polygons [][]r2.Point

	vertices []r2.Point
	// NOTE: Sorted ascending.
	siteVertices [][]int
	// NOTE: Sorted ascending.
	vertexSites [][]int
	// NOTE: Sorted ascending.
	neighbors [][]int

	opts DiagramOptions
}

type DiagramOptions struct {
	Eps            float64
	ClipScale      float64
	MaxGrowthSteps int
}

type DiagramOption func(*DiagramOptions) error

// WithEps sets the vertex deduplication tolerance.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps <= 0 {
			return errors.New("WithEps: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// WithClipScale sets the size of the clipping rectangle relative to the bounds.
func WithClipScale(scale float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if !(scale >= 1) || math.IsInf(scale, 1) {
			return errors.New("WithClipScale: scale must be finite and at least 1")
		}
		o.ClipScale = scale
		return nil
	}
}

// WithMaxGrowthSteps sets the number of region moves after which growth stops.
func WithMaxGrowthSteps(n int) DiagramOption {
	return func(o *DiagramOptions) error {
		if n < 0 {
			return errors.New("WithMaxGrowthSteps: n must be non-negative")
		}
		o.MaxGrowthSteps = n
		return nil
	}
}

// NewDiagram computes the diagram of points inside bounds. The corners of bounds
// are appended as extra sites, in the order (xMin,yMin), (xMin,yMax),
// (xMax,yMin), (xMax,yMax).
func NewDiagram(points []r2.Point, bounds r2.Rect, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps:            DefaultVertexEps,
		ClipScale:      DefaultClipScale,
		MaxGrowthSteps: DefaultMaxGrowthSteps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	if !validBounds(bounds) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBounds, bounds)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", ErrDegenerateInput)
	}

	lo, hi := bounds.Lo(), bounds.Hi()
	sites := make([]r2.Point, 0, len(points)+4)
	sites = append(sites, points...)
	sites = append(sites, lo, r2.Point{X: lo.X, Y: hi.Y}, r2.Point{X: hi.X, Y: lo.Y}, hi)
	if err := checkSites(sites); err != nil {
		return nil, err
	}

	dt, err := r2delaunay.NewTriangulation(sites)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateInput, err)
	}

	vd := &Diagram{
		sites:     sites,
		numPoints: len(points),
		bounds:    bounds,
		clip:      r2.RectFromCenterSize(bounds.Center(), bounds.Size().Mul(opts.ClipScale)),
		polygons:  make([][]r2.Point, len(sites)),
		opts:      opts,
	}

	var (
		raw         []r2.Point
		rawSites    [][]int
		rawVertices = make([][]int, len(sites))
	)
	for i := range sites {
		poly := cellPolygon(sites, i, dt.Neighbors(i), vd.clip, opts.Eps)
		if len(poly) < 3 {
			return nil, fmt.Errorf("%w: cannot compute cell of site %d %v", ErrDegenerateInput, i, sites[i])
		}
		vd.polygons[i] = poly

		for _, p := range poly {
			v := findVertex(raw, p, opts.Eps)
			if v < 0 {
				v = len(raw)
				raw = append(raw, p)
				rawSites = append(rawSites, nil)
			}
			if n := len(rawSites[v]); n == 0 || rawSites[v][n-1] != i {
				rawSites[v] = append(rawSites[v], i)
			}
			rawVertices[i] = append(rawVertices[i], v)
		}
	}

	vd.pruneVertices(raw, rawSites, rawVertices)
	vd.buildNeighbors()

	return vd, nil
}

func validBounds(b r2.Rect) bool {
	for _, v := range []float64{b.X.Lo, b.X.Hi, b.Y.Lo, b.Y.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.X.Lo < b.X.Hi && b.Y.Lo < b.Y.Hi
}

func checkSites(sites []r2.Point) error {
	seen := make(map[r2.Point]int, len(sites))
	for i, p := range sites {
		if !isFinite(p) {
			return fmt.Errorf("%w: site %d %v is not finite", ErrDegenerateInput, i, p)
		}
		if j, ok := seen[p]; ok {
			return fmt.Errorf("%w: sites %d and %d coincide at %v", ErrDegenerateInput, j, i, p)
		}
		seen[p] = i
	}
	return nil
}

func findVertex(vertices []r2.Point, p r2.Point, eps float64) int {
	for i, v := range vertices {
		if samePoint(v, p, eps) {
			return i
		}
	}
	return -1
}

// pruneVertices keeps the vertices incident to at least three sites. The
// others come from clipping against the outer rectangle. Retained vertices
// are renumbered in their original order.
func (vd *Diagram) pruneVertices(raw []r2.Point, rawSites, rawVertices [][]int) {
	remap := make([]int, len(raw))
	for v, sites := range rawSites {
		if len(sites) < 3 {
			remap[v] = -1
			continue
		}
		remap[v] = len(vd.vertices)
		vd.vertices = append(vd.vertices, raw[v])
		vd.vertexSites = append(vd.vertexSites, sites)
	}

	vd.siteVertices = make([][]int, len(vd.sites))
	for i, verts := range rawVertices {
		var kept []int
		for _, v := range verts {
			if remap[v] >= 0 {
				kept = append(kept, remap[v])
			}
		}
		slices.Sort(kept)
		vd.siteVertices[i] = slices.Compact(kept)
	}
}

// buildNeighbors joins two sites when they share a Voronoi edge, i.e. at
// least two vertices.
func (vd *Diagram) buildNeighbors() {
	vd.neighbors = make([][]int, len(vd.sites))
	for i := range vd.sites {
		for j := i + 1; j < len(vd.sites); j++ {
			if countCommon(vd.siteVertices[i], vd.siteVertices[j]) >= 2 {
				vd.neighbors[i] = append(vd.neighbors[i], j)
				vd.neighbors[j] = append(vd.neighbors[j], i)
			}
		}
	}
}

// NumSites returns the number of sites, bounds corners included.
func (vd *Diagram) NumSites() int {
	return len(vd.sites)
}

// NumPoints returns the number of input points. Sites from NumPoints on are
// the bounds corners.
func (vd *Diagram) NumPoints() int {
	return vd.numPoints
}

func (vd *Diagram) Sites() []r2.Point {
	return slices.Clone(vd.sites)
}

func (vd *Diagram) Site(i int) (r2.Point, error) {
	if i < 0 || i >= len(vd.sites) {
		return r2.Point{}, fmt.Errorf("Site: index %d out of range [0 %d)", i, len(vd.sites))
	}
	return vd.sites[i], nil
}

func (vd *Diagram) Bounds() r2.Rect {
	return vd.bounds
}

// ClipRect returns the rectangle the cell polygons are clipped to.
func (vd *Diagram) ClipRect() r2.Rect {
	return vd.clip
}

func (vd *Diagram) NumVertices() int {
	return len(vd.vertices)
}

func (vd *Diagram) Vertices() []r2.Point {
	return slices.Clone(vd.vertices)
}

func (vd *Diagram) Vertex(i int) (r2.Point, error) {
	if i < 0 || i >= len(vd.vertices) {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, len(vd.vertices))
	}
	return vd.vertices[i], nil
}

// VertexSites returns the sites incident to vertex i in ascending order.
func (vd *Diagram) VertexSites(i int) ([]int, error) {
	if i < 0 || i >= len(vd.vertices) {
		return nil, fmt.Errorf("VertexSites: index %d out of range [0 %d)", i, len(vd.vertices))
	}
	return slices.Clone(vd.vertexSites[i]), nil
}

func (vd *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(vd.sites) {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, len(vd.sites))
	}
	return Cell{idx: i, d: vd}, nil
}
