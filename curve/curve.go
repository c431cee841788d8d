// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package curve provides parametric plane curves and helpers that sample them
// into sites for a Voronoi diagram.
package curve

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

var (
	ErrTooFewPoints = errors.New("curve: a line needs at least two points")
	ErrInvalidCount = errors.New("curve: sample count must be positive")
)

// Curve is a plane curve parameterized over t in [0, 1].
type Curve interface {
	At(t float64) r2.Point
	Length() float64
	// Extent returns a rectangle containing the whole curve.
	Extent() r2.Rect
}

// wrap maps t outside [0, 1] back into it.
func wrap(t float64) float64 {
	if t < 0 || t > 1 {
		return t - math.Floor(t)
	}
	return t
}

type Segment struct {
	A, B r2.Point
}

func (s Segment) At(t float64) r2.Point {
	return s.A.Add(s.B.Sub(s.A).Mul(wrap(t)))
}

func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Norm()
}

func (s Segment) Extent() r2.Rect {
	return r2.RectFromPoints(s.A, s.B)
}

// Polyline is a chain of segments parameterized by arc length.
type Polyline struct {
	segments []Segment
	length   float64
	extent   r2.Rect
}

// NewLine returns the polyline through points.
func NewLine(points ...r2.Point) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	pl := &Polyline{extent: r2.RectFromPoints(points...)}
	for i := 1; i < len(points); i++ {
		s := Segment{A: points[i-1], B: points[i]}
		pl.segments = append(pl.segments, s)
		pl.length += s.Length()
	}
	return pl, nil
}

// Rectangle returns the closed outline of the w×h rectangle with lower-left
// corner p, traversed CCW from p.
func Rectangle(p r2.Point, w, h float64) *Polyline {
	pl, _ := NewLine(
		p,
		r2.Point{X: p.X + w, Y: p.Y},
		r2.Point{X: p.X + w, Y: p.Y + h},
		r2.Point{X: p.X, Y: p.Y + h},
		p,
	)
	return pl
}

func (pl *Polyline) At(t float64) r2.Point {
	d := wrap(t) * pl.length
	for _, s := range pl.segments {
		l := s.Length()
		if d <= l {
			if l == 0 {
				return s.A
			}
			return s.At(d / l)
		}
		d -= l
	}
	return pl.segments[len(pl.segments)-1].B
}

func (pl *Polyline) Length() float64 {
	return pl.length
}

func (pl *Polyline) Extent() r2.Rect {
	return pl.extent
}

// Circle starts at angle Offset and runs CCW.
type Circle struct {
	Center r2.Point
	Radius float64
	Offset s1.Angle
}

func (c Circle) At(t float64) r2.Point {
	a := 2*math.Pi*t + c.Offset.Radians()
	return r2.Point{
		X: c.Center.X + c.Radius*math.Cos(a),
		Y: c.Center.Y + c.Radius*math.Sin(a),
	}
}

func (c Circle) Length() float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}

func (c Circle) Extent() r2.Rect {
	r := math.Abs(c.Radius)
	return r2.RectFromCenterSize(c.Center, r2.Point{X: 2 * r, Y: 2 * r})
}

type transformed struct {
	c      Curve
	f      func(r2.Point) r2.Point
	length float64
}

func (tc transformed) At(t float64) r2.Point {
	return tc.f(tc.c.At(t))
}

func (tc transformed) Length() float64 {
	return tc.length
}

func (tc transformed) Extent() r2.Rect {
	corners := tc.c.Extent().Vertices()
	for i, p := range corners {
		corners[i] = tc.f(p)
	}
	return r2.RectFromPoints(corners[:]...)
}

// Translate moves c by d.
func Translate(d r2.Point, c Curve) Curve {
	return transformed{
		c:      c,
		f:      func(p r2.Point) r2.Point { return p.Add(d) },
		length: c.Length(),
	}
}

// Scale scales c by s about the center of its extent.
func Scale(s float64, c Curve) Curve {
	center := c.Extent().Center()
	return transformed{
		c:      c,
		f:      func(p r2.Point) r2.Point { return p.Sub(center).Mul(s).Add(center) },
		length: c.Length() * math.Abs(s),
	}
}

// Rotate turns c CCW by theta about the center of its extent. The extent of
// the result bounds the rotated extent of c, so it may be loose.
func Rotate(theta s1.Angle, c Curve) Curve {
	center := c.Extent().Center()
	sin, cos := math.Sincos(theta.Radians())
	return transformed{
		c: c,
		f: func(p r2.Point) r2.Point {
			d := p.Sub(center)
			return r2.Point{
				X: center.X + d.X*cos - d.Y*sin,
				Y: center.Y + d.X*sin + d.Y*cos,
			}
		},
		length: c.Length(),
	}
}

// Sample returns n points of c at t = i/n for i in [0, n).
func Sample(c Curve, n int) ([]r2.Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	points := make([]r2.Point, n)
	for i := range n {
		points[i] = c.At(float64(i) / float64(n))
	}
	return points, nil
}

// Guide samples n points of c and passes them to method.
func Guide[T any](c Curve, n int, method func([]r2.Point) (T, error)) (T, error) {
	points, err := Sample(c, n)
	if err != nil {
		var zero T
		return zero, err
	}
	return method(points)
}
