// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// Region is the set of sites that jointly govern the field around a query
// point: one site inside a cell, two along a Voronoi edge, three or more
// around a Voronoi vertex.
type Region struct {
	// Sites in ascending order.
	Sites []int
	// Steps is the number of moves growth made.
	Steps int
	// Capped reports that growth stopped at the step limit while a move was
	// still available.
	Capped bool
}

// Grow walks the region seeded with site towards the feature of the diagram
// whose blended boundary contains x.
func (vd *Diagram) Grow(x r2.Point, site int, ratio float64) (Region, error) {
	if err := checkRatio(ratio); err != nil {
		return Region{}, err
	}
	if site < 0 || site >= len(vd.sites) {
		return Region{}, fmt.Errorf("%w: site %d out of range [0 %d)", ErrInvalidRegion, site, len(vd.sites))
	}

	region := []int{site}
	steps := 0
	for {
		next, ok := vd.move(x, region, ratio)
		if !ok {
			return Region{Sites: slices.Clone(region), Steps: steps}, nil
		}
		if steps == vd.opts.MaxGrowthSteps {
			return Region{Sites: slices.Clone(region), Steps: steps, Capped: true}, nil
		}
		region = next
		steps++
	}
}

// move returns the region to move to, trying candidates in order.
func (vd *Diagram) move(x r2.Point, region []int, ratio float64) ([]int, bool) {
	for _, candidate := range vd.candidates(region) {
		if next, ok := vd.shouldMove(x, region, candidate, ratio); ok {
			return next, true
		}
	}
	return nil, false
}

// candidates lists the regions adjacent to region: first the region grown by
// each common neighbor of its sites, then the region shrunk by each of its
// sites.
func (vd *Diagram) candidates(region []int) [][]int {
	var out [][]int
	if len(region) < 3 {
		common := vd.neighbors[region[0]]
		for _, s := range region[1:] {
			common = intersect(common, vd.neighbors[s])
		}
		for _, n := range common {
			out = append(out, insert(region, n))
		}
	}
	if len(region) > 1 {
		for _, s := range region {
			out = append(out, remove(region, s))
		}
	}
	return out
}

// shouldMove projects the blended vertices of region and candidate onto the
// normal of the hyperplane separating them. The first candidate projection
// outside the region's range decides: x moves when it lies beyond the range
// on the same side.
func (vd *Diagram) shouldMove(x r2.Point, region, candidate []int, ratio float64) ([]int, bool) {
	normal, ok := vd.planeNormal(region, candidate)
	if !ok {
		return nil, false
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vd.commonVertices(region) {
		for _, s := range region {
			d := vd.blend(s, v, ratio).Dot(normal)
			lo = min(lo, d)
			hi = max(hi, d)
		}
	}

	verts := vd.commonVertices(candidate)
	if len(verts) == 0 {
		return nil, false
	}
	next := vd.commonSites(verts)
	dx := x.Dot(normal)
	for _, v := range verts {
		for _, s := range next {
			d := vd.blend(s, v, ratio).Dot(normal)
			switch {
			case d > hi:
				return next, dx > hi
			case d < lo:
				return next, dx < lo
			}
		}
	}
	return nil, false
}

// planeNormal returns the unit normal of the hyperplane through the sites a
// and b share, pointing towards the site in which they differ. It fails when
// the shared sites already span the plane.
func (vd *Diagram) planeNormal(a, b []int) (r2.Point, bool) {
	shared := intersect(a, b)
	extra := firstMissing(a, shared)
	if extra < 0 {
		extra = firstMissing(b, shared)
	}
	if len(shared) == 0 || extra < 0 {
		return r2.Point{}, false
	}

	var origin r2.Point
	for _, s := range shared {
		origin = origin.Add(vd.sites[s])
	}
	origin = origin.Mul(1 / float64(len(shared)))

	var basis []r2.Point
	for _, s := range shared {
		u := orthogonalize(vd.sites[s].Sub(origin), basis)
		if u.Norm() > vd.opts.Eps {
			basis = append(basis, u.Normalize())
		}
	}

	n := orthogonalize(vd.sites[extra].Sub(origin), basis)
	if n.Norm() <= vd.opts.Eps {
		return r2.Point{}, false
	}
	return n.Normalize(), true
}

func orthogonalize(u r2.Point, basis []r2.Point) r2.Point {
	for _, e := range basis {
		u = u.Sub(e.Mul(u.Dot(e)))
	}
	return u
}

// blend returns the point ratio of the way from site s to vertex v.
func (vd *Diagram) blend(s, v int, ratio float64) r2.Point {
	return vd.sites[s].Mul(1 - ratio).Add(vd.vertices[v].Mul(ratio))
}

// commonVertices returns the vertices incident to every site of region.
func (vd *Diagram) commonVertices(region []int) []int {
	verts := vd.siteVertices[region[0]]
	for _, s := range region[1:] {
		verts = intersect(verts, vd.siteVertices[s])
	}
	return verts
}

// commonSites returns the sites incident to every vertex of verts.
func (vd *Diagram) commonSites(verts []int) []int {
	sites := vd.vertexSites[verts[0]]
	for _, v := range verts[1:] {
		sites = intersect(sites, vd.vertexSites[v])
	}
	return sites
}
