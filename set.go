// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import "slices"

// Index sets are ascending, duplicate-free int slices. The helpers below never
// modify their arguments.

func intersect(a, b []int) []int {
	var out []int
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func countCommon(a, b []int) int {
	n := 0
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}

// firstMissing returns the smallest element of a that is not in b, or -1.
func firstMissing(a, b []int) int {
	for _, x := range a {
		if _, ok := slices.BinarySearch(b, x); !ok {
			return x
		}
	}
	return -1
}

func insert(a []int, x int) []int {
	i, ok := slices.BinarySearch(a, x)
	if ok {
		return slices.Clone(a)
	}
	out := make([]int, 0, len(a)+1)
	out = append(out, a[:i]...)
	out = append(out, x)
	return append(out, a[i:]...)
}

func remove(a []int, x int) []int {
	out := make([]int, 0, len(a))
	for _, y := range a {
		if y != x {
			out = append(out, y)
		}
	}
	return out
}
