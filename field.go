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

// Mat2 is a row-major 2×2 matrix.
type Mat2 [2][2]float64

func Identity() Mat2 {
	return Mat2{{1, 0}, {0, 1}}
}

// outer returns u·uᵀ.
func outer(u r2.Point) Mat2 {
	return Mat2{{u.X * u.X, u.X * u.Y}, {u.Y * u.X, u.Y * u.Y}}
}

func (m Mat2) Add(n Mat2) Mat2 {
	return Mat2{
		{m[0][0] + n[0][0], m[0][1] + n[0][1]},
		{m[1][0] + n[1][0], m[1][1] + n[1][1]},
	}
}

func (m Mat2) Sub(n Mat2) Mat2 {
	return m.Add(n.Mul(-1))
}

func (m Mat2) Mul(s float64) Mat2 {
	return Mat2{{m[0][0] * s, m[0][1] * s}, {m[1][0] * s, m[1][1] * s}}
}

func (m Mat2) MulVec(p r2.Point) r2.Point {
	return r2.Point{
		X: m[0][0]*p.X + m[0][1]*p.Y,
		Y: m[1][0]*p.X + m[1][1]*p.Y,
	}
}

// Eigenvalues returns the eigenvalues of a symmetric matrix, smallest first.
func (m Mat2) Eigenvalues() (float64, float64) {
	mean := (m[0][0] + m[1][1]) / 2
	diff := (m[0][0] - m[1][1]) / 2
	r := math.Hypot(diff, m[0][1])
	return mean - r, mean + r
}

// Field is a quadratic potential evaluated at one point. Hessian is the matrix
// H of the quadratic form (x−m)ᵀH(x−m), so the gradient is 2H(x−m)+b.
type Field struct {
	Value    float64
	Gradient r2.Point
	Hessian  Mat2
}

func checkRatio(ratio float64) error {
	if !(ratio >= 0 && ratio < 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	return nil
}

// Evaluate returns the quadratic field of region at x. A single site gives the
// squared distance to it. Larger regions give the quadratic whose value and
// gradient match the single-site fields at the region's blended vertices.
func (vd *Diagram) Evaluate(x r2.Point, region []int, ratio float64) (Field, error) {
	if err := checkRatio(ratio); err != nil {
		return Field{}, err
	}
	if len(region) == 0 {
		return Field{}, fmt.Errorf("%w: empty", ErrInvalidRegion)
	}
	ps := slices.Clone(region)
	slices.Sort(ps)
	ps = slices.Compact(ps)
	for _, s := range ps {
		if s < 0 || s >= len(vd.sites) {
			return Field{}, fmt.Errorf("%w: site %d out of range [0 %d)", ErrInvalidRegion, s, len(vd.sites))
		}
	}

	if len(ps) == 1 {
		d := x.Sub(vd.sites[ps[0]])
		return Field{
			Value:    d.Dot(d),
			Gradient: d.Mul(2),
			Hessian:  Identity(),
		}, nil
	}

	verts := vd.commonVertices(ps)
	if len(verts) == 0 {
		return Field{}, fmt.Errorf("%w: sites %v share no vertex", ErrInvalidRegion, ps)
	}

	var meanP, meanV r2.Point
	for _, s := range ps {
		meanP = meanP.Add(vd.sites[s])
	}
	meanP = meanP.Mul(1 / float64(len(ps)))
	for _, v := range verts {
		meanV = meanV.Add(vd.vertices[v])
	}
	meanV = meanV.Mul(1 / float64(len(verts)))
	meanNu := meanP.Mul(1 - ratio).Add(meanV.Mul(ratio))

	p0 := vd.sites[ps[0]]
	d0 := vd.vertices[verts[0]].Sub(p0).Mul(ratio)
	f0 := d0.Dot(d0)
	v0 := p0.Add(d0)

	k := -ratio / (1 - ratio)
	var h Mat2
	if len(ps) == 2 {
		u := vd.sites[ps[1]].Sub(p0).Normalize()
		h = outer(u).Mul(k).Add(outer(u.Ortho()))
	} else {
		h = Identity().Mul(k)
	}

	b := Identity().Sub(h).MulVec(meanNu.Sub(meanP)).Mul(2)
	dd := v0.Sub(meanP)
	c := f0 - dd.Dot(h.MulVec(dd)) - b.Dot(dd)

	dx := x.Sub(meanP)
	hdx := h.MulVec(dx)
	return Field{
		Value:    dx.Dot(hdx) + b.Dot(dx) + c,
		Gradient: hdx.Mul(2).Add(b),
		Hessian:  h,
	}, nil
}
