// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"
	"slices"

	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
)

// clipEdge labels polygon edges lying on the clipping rectangle. Other edges
// are labelled with the site whose bisector they lie on.
const clipEdge = -1

// cellPolygon returns the Voronoi cell of site i as a CCW ring: the clipping
// rectangle cut by the bisector to every Delaunay neighbor of i. Corners where
// two bisectors meet are recomputed as the circumcenter of the sorted site
// triple, so every cell sharing a Voronoi vertex reports identical coordinates.
func cellPolygon(sites []r2.Point, i int, neighbors []int, clip r2.Rect, eps float64) []r2.Point {
	corners := clip.Vertices()
	pts := corners[:]
	labels := []int{clipEdge, clipEdge, clipEdge, clipEdge}
	for _, j := range neighbors {
		pts, labels = clipBisector(pts, labels, sites[i], sites[j], j)
		if len(pts) < 3 {
			return nil
		}
	}

	n := len(pts)
	out := make([]r2.Point, 0, n)
	for k, p := range pts {
		in, next := labels[(k+n-1)%n], labels[k]
		if in != clipEdge && next != clipEdge && in != next {
			t := []int{i, in, next}
			slices.Sort(t)
			if c := r2delaunay.Circumcenter(sites[t[0]], sites[t[1]], sites[t[2]]); isFinite(c) {
				p = c
			}
		}
		if len(out) > 0 && samePoint(out[len(out)-1], p, eps) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && samePoint(out[0], out[len(out)-1], eps) {
		out = out[:len(out)-1]
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

// clipBisector keeps the part of the ring on p's side of the perpendicular
// bisector of p and q (Sutherland–Hodgman). labels[k] names the edge from
// pts[k] to pts[k+1]; new edges along the bisector get label.
func clipBisector(pts []r2.Point, labels []int, p, q r2.Point, label int) ([]r2.Point, []int) {
	mid := p.Add(q).Mul(0.5)
	dir := q.Sub(p)
	side := func(x r2.Point) float64 {
		return x.Sub(mid).Dot(dir)
	}

	n := len(pts)
	outPts := make([]r2.Point, 0, n+1)
	outLabels := make([]int, 0, n+1)
	for k := range n {
		a, b := pts[k], pts[(k+1)%n]
		sa, sb := side(a), side(b)
		switch {
		case sa <= 0 && sb <= 0:
			outPts = append(outPts, a)
			outLabels = append(outLabels, labels[k])
		case sa <= 0:
			if sa == 0 {
				outPts = append(outPts, a)
				outLabels = append(outLabels, label)
				continue
			}
			outPts = append(outPts, a, crossing(a, b, sa, sb))
			outLabels = append(outLabels, labels[k], label)
		case sb < 0:
			outPts = append(outPts, crossing(a, b, sa, sb))
			outLabels = append(outLabels, labels[k])
		}
	}
	return outPts, outLabels
}

func crossing(a, b r2.Point, sa, sb float64) r2.Point {
	return a.Add(b.Sub(a).Mul(sa / (sa - sb)))
}

func isFinite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func samePoint(a, b r2.Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// polygonContains reports whether x lies in the convex CCW ring poly or within
// eps of its boundary.
func polygonContains(poly []r2.Point, x r2.Point, eps float64) bool {
	n := len(poly)
	for k := range n {
		a, b := poly[k], poly[(k+1)%n]
		e := b.Sub(a)
		l := e.Norm()
		if l == 0 {
			continue
		}
		if e.Cross(x.Sub(a)) < -eps*l {
			return false
		}
	}
	return true
}
