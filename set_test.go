// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"disjoint", []int{1, 3}, []int{2, 4}, nil},
		{"overlap", []int{0, 2, 4, 6}, []int{1, 2, 3, 6}, []int{2, 6}},
		{"subset", []int{1, 2}, []int{0, 1, 2, 3}, []int{1, 2}},
		{"empty", nil, []int{1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intersect(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("intersect(%v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
			if n := countCommon(tt.a, tt.b); n != len(tt.want) {
				t.Errorf("countCommon(%v, %v) = %v, want %v", tt.a, tt.b, n, len(tt.want))
			}
		})
	}
}

func TestFirstMissing(t *testing.T) {
	tests := []struct {
		a, b []int
		want int
	}{
		{[]int{1, 2, 3}, []int{1, 3}, 2},
		{[]int{1, 2}, []int{1, 2, 5}, -1},
		{[]int{4}, nil, 4},
	}
	for _, tt := range tests {
		if got := firstMissing(tt.a, tt.b); got != tt.want {
			t.Errorf("firstMissing(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestInsertRemove(t *testing.T) {
	a := []int{1, 4, 7}

	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"insert middle", insert(a, 5), []int{1, 4, 5, 7}},
		{"insert front", insert(a, 0), []int{0, 1, 4, 7}},
		{"insert present", insert(a, 4), []int{1, 4, 7}},
		{"remove middle", remove(a, 4), []int{1, 7}},
		{"remove absent", remove(a, 3), []int{1, 4, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
	if diff := cmp.Diff([]int{1, 4, 7}, a); diff != "" {
		t.Errorf("argument modified (-want +got):\n%s", diff)
	}
}
