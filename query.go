// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// DefaultRatio places blended vertices halfway between site and vertex.
const DefaultRatio = 0.5

// Sample is the field at a query point together with the region it was
// evaluated on.
type Sample struct {
	Field
	Region
}

// Locate returns the first site, in index order, whose cell contains x.
func (vd *Diagram) Locate(x r2.Point) (int, error) {
	for i, poly := range vd.polygons {
		if polygonContains(poly, x, vd.opts.Eps) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %v", ErrNotFound, x)
}

// Query evaluates the field at x: it locates the cell containing x, grows the
// region from its site and evaluates the region's quadratic.
func (vd *Diagram) Query(x r2.Point, ratio float64) (Sample, error) {
	if err := checkRatio(ratio); err != nil {
		return Sample{}, err
	}
	site, err := vd.Locate(x)
	if err != nil {
		return Sample{}, err
	}
	region, err := vd.Grow(x, site, ratio)
	if err != nil {
		return Sample{}, err
	}
	field, err := vd.Evaluate(x, region.Sites, ratio)
	if err != nil {
		return Sample{}, err
	}
	return Sample{Field: field, Region: region}, nil
}
