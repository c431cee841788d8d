// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestSegment(t *testing.T) {
	s := Segment{A: r2.Point{X: 1, Y: 1}, B: r2.Point{X: 4, Y: 5}}

	tests := []struct {
		t    float64
		want r2.Point
	}{
		{0, r2.Point{X: 1, Y: 1}},
		{0.5, r2.Point{X: 2.5, Y: 3}},
		{1, r2.Point{X: 4, Y: 5}},
		{1.25, r2.Point{X: 1.75, Y: 2}},
		{-0.75, r2.Point{X: 1.75, Y: 2}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, s.At(tt.t), approx); diff != "" {
			t.Errorf("s.At(%v) mismatch (-want +got):\n%s", tt.t, diff)
		}
	}
	if got := s.Length(); got != 5 {
		t.Errorf("s.Length() = %v, want 5", got)
	}
	want := r2.RectFromPoints(r2.Point{X: 1, Y: 1}, r2.Point{X: 4, Y: 5})
	if got := s.Extent(); got != want {
		t.Errorf("s.Extent() = %v, want %v", got, want)
	}
}

func TestNewLine(t *testing.T) {
	if _, err := NewLine(r2.Point{X: 1, Y: 1}); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("NewLine(1 point) error = %v, want %v", err, ErrTooFewPoints)
	}
	if _, err := NewLine(); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("NewLine() error = %v, want %v", err, ErrTooFewPoints)
	}

	pl, err := NewLine(r2.Point{X: 0, Y: 0}, r2.Point{X: 3, Y: 0}, r2.Point{X: 3, Y: 1})
	if err != nil {
		t.Fatalf("NewLine(...) error = %v, want nil", err)
	}
	if got := pl.Length(); got != 4 {
		t.Errorf("pl.Length() = %v, want 4", got)
	}
	tests := []struct {
		t    float64
		want r2.Point
	}{
		{0, r2.Point{X: 0, Y: 0}},
		{0.5, r2.Point{X: 2, Y: 0}},
		{0.75, r2.Point{X: 3, Y: 0}},
		{0.875, r2.Point{X: 3, Y: 0.5}},
		{1, r2.Point{X: 3, Y: 1}},
		{1.5, r2.Point{X: 2, Y: 0}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, pl.At(tt.t), approx); diff != "" {
			t.Errorf("pl.At(%v) mismatch (-want +got):\n%s", tt.t, diff)
		}
	}
	want := r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 3, Y: 1})
	if got := pl.Extent(); got != want {
		t.Errorf("pl.Extent() = %v, want %v", got, want)
	}
}

func TestRectangle(t *testing.T) {
	r := Rectangle(r2.Point{X: 1, Y: 2}, 4, 2)
	if got := r.Length(); got != 12 {
		t.Errorf("r.Length() = %v, want 12", got)
	}
	tests := []struct {
		t    float64
		want r2.Point
	}{
		{0, r2.Point{X: 1, Y: 2}},
		{1.0 / 3, r2.Point{X: 5, Y: 2}},
		{0.5, r2.Point{X: 5, Y: 4}},
		{5.0 / 6, r2.Point{X: 1, Y: 4}},
		{1, r2.Point{X: 1, Y: 2}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, r.At(tt.t), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("r.At(%v) mismatch (-want +got):\n%s", tt.t, diff)
		}
	}
	want := r2.RectFromPoints(r2.Point{X: 1, Y: 2}, r2.Point{X: 5, Y: 4})
	if got := r.Extent(); got != want {
		t.Errorf("r.Extent() = %v, want %v", got, want)
	}
}

func TestCircle(t *testing.T) {
	c := Circle{Center: r2.Point{X: 1, Y: -1}, Radius: 2, Offset: s1.Angle(math.Pi / 2)}
	tests := []struct {
		t    float64
		want r2.Point
	}{
		{0, r2.Point{X: 1, Y: 1}},
		{0.25, r2.Point{X: -1, Y: -1}},
		{0.5, r2.Point{X: 1, Y: -3}},
		{1, r2.Point{X: 1, Y: 1}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, c.At(tt.t), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
			t.Errorf("c.At(%v) mismatch (-want +got):\n%s", tt.t, diff)
		}
	}
	if got, want := c.Length(), 4*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Errorf("c.Length() = %v, want %v", got, want)
	}
	want := r2.RectFromPoints(r2.Point{X: -1, Y: -3}, r2.Point{X: 3, Y: 1})
	if got := c.Extent(); got != want {
		t.Errorf("c.Extent() = %v, want %v", got, want)
	}
}

func TestTransforms(t *testing.T) {
	seg := Segment{A: r2.Point{X: 0, Y: 0}, B: r2.Point{X: 2, Y: 0}}

	tests := []struct {
		name       string
		c          Curve
		at0, at1   r2.Point
		length     float64
		wantExtent r2.Rect
	}{
		{
			"translate",
			Translate(r2.Point{X: 1, Y: 2}, seg),
			r2.Point{X: 1, Y: 2}, r2.Point{X: 3, Y: 2},
			2,
			r2.RectFromPoints(r2.Point{X: 1, Y: 2}, r2.Point{X: 3, Y: 2}),
		},
		{
			"scale",
			Scale(3, seg),
			r2.Point{X: -2, Y: 0}, r2.Point{X: 4, Y: 0},
			6,
			r2.RectFromPoints(r2.Point{X: -2, Y: 0}, r2.Point{X: 4, Y: 0}),
		},
		{
			"rotate",
			Rotate(s1.Angle(math.Pi/2), seg),
			r2.Point{X: 1, Y: -1}, r2.Point{X: 1, Y: 1},
			2,
			r2.RectFromPoints(r2.Point{X: 1, Y: -1}, r2.Point{X: 1, Y: 1}),
		},
	}
	opt := cmpopts.EquateApprox(0, 1e-12)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.at0, tt.c.At(0), opt); diff != "" {
				t.Errorf("At(0) mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.at1, tt.c.At(1), opt); diff != "" {
				t.Errorf("At(1) mismatch (-want +got):\n%s", diff)
			}
			if got := tt.c.Length(); math.Abs(got-tt.length) > 1e-12 {
				t.Errorf("Length() = %v, want %v", got, tt.length)
			}
			got := tt.c.Extent()
			for _, p := range tt.wantExtent.Vertices() {
				q := got.ClampPoint(p)
				if q.Sub(p).Norm() > 1e-12 {
					t.Errorf("Extent() = %v, does not contain %v", got, p)
				}
			}
		})
	}
}

func TestSample(t *testing.T) {
	seg := Segment{A: r2.Point{X: 0, Y: 0}, B: r2.Point{X: 4, Y: 0}}
	got, err := Sample(seg, 4)
	if err != nil {
		t.Fatalf("Sample(seg, 4) error = %v, want nil", err)
	}
	want := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sample(seg, 4) mismatch (-want +got):\n%s", diff)
	}

	for _, n := range []int{0, -1} {
		if _, err := Sample(seg, n); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("Sample(seg, %d) error = %v, want %v", n, err, ErrInvalidCount)
		}
	}
}

func TestGuide(t *testing.T) {
	c := Circle{Radius: 1}
	got, err := Guide(c, 8, func(points []r2.Point) (int, error) {
		return len(points), nil
	})
	if err != nil {
		t.Fatalf("Guide(...) error = %v, want nil", err)
	}
	if got != 8 {
		t.Errorf("Guide(...) = %v, want 8", got)
	}

	errMethod := errors.New("method failed")
	if _, err := Guide(c, 8, func([]r2.Point) (int, error) { return 0, errMethod }); !errors.Is(err, errMethod) {
		t.Errorf("Guide(...) error = %v, want %v", err, errMethod)
	}
	if _, err := Guide(c, 0, func([]r2.Point) (int, error) { return 0, nil }); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("Guide(c, 0, ...) error = %v, want %v", err, ErrInvalidCount)
	}
}
