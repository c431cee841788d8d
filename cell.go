package r2voronoi

import (
	"fmt"
	"slices"

	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.sites[c.idx]
}

// NumVertices returns the number of diagram vertices on the cell boundary.
// Corners cut by the clipping rectangle are not diagram vertices.
func (c Cell) NumVertices() int {
	return len(c.d.siteVertices[c.idx])
}

// VertexIndices returns the indices of the cell's vertices in the Diagram's
// Vertices, in ascending order.
func (c Cell) VertexIndices() []int {
	return slices.Clone(c.d.siteVertices[c.idx])
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	verts := c.d.siteVertices[c.idx]
	if i < 0 || i >= len(verts) {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, len(verts))
	}
	return c.d.vertices[verts[i]], nil
}

// NumNeighbors returns the number of neighboring cells.
func (c Cell) NumNeighbors() int {
	return len(c.d.neighbors[c.idx])
}

// NeighborIndices returns the sites sharing a Voronoi edge with the cell, in
// ascending order.
func (c Cell) NeighborIndices() []int {
	return slices.Clone(c.d.neighbors[c.idx])
}

// Neighbor returns the neighboring cell at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Neighbor(i int) (Cell, error) {
	nbs := c.d.neighbors[c.idx]
	if i < 0 || i >= len(nbs) {
		return Cell{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, len(nbs))
	}
	return c.d.Cell(nbs[i])
}

// Polygon returns the cell boundary as a CCW ring clipped to the Diagram's
// ClipRect.
func (c Cell) Polygon() []r2.Point {
	return slices.Clone(c.d.polygons[c.idx])
}

// Contains reports whether p lies in the cell or on its boundary.
func (c Cell) Contains(p r2.Point) bool {
	return polygonContains(c.d.polygons[c.idx], p, c.d.opts.Eps)
}
