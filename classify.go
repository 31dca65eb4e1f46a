// seehuhn.de/go/maxrect - largest vertex rectangles in rectilinear polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package maxrect

import (
	"cmp"
	"slices"
	"sort"
)

// Occupancy records which cells of a Grid lie inside the polygon.
type Occupancy struct {
	cols, rows int
	cells      []bool // cell (i, j) is stored at i*rows + j
}

// Cols returns the number of cell columns.
func (o *Occupancy) Cols() int { return o.cols }

// Rows returns the number of cell rows.
func (o *Occupancy) Rows() int { return o.rows }

// Inside reports whether cell (i, j) lies inside the polygon.
func (o *Occupancy) Inside(i, j int) bool {
	return o.cells[i*o.rows+j]
}

// Count returns the number of interior cells.
func (o *Occupancy) Count() int {
	n := 0
	for _, c := range o.cells {
		if c {
			n++
		}
	}
	return n
}

// Classify determines which cells of g lie inside the polygon with the
// given vertical edges, using the even-odd rule.
//
// Edges with endpoints which are not coordinates of g are ignored.
func Classify(g *Grid, edges []VerticalEdge) *Occupancy {
	o := &Occupancy{}
	var c classifier
	c.classify(o, g, edges)
	return o
}

// bandEdge is a vertical edge with its y range translated to band indices.
// The edge spans the bands j1 <= j < j2.
type bandEdge struct {
	x      int
	j1, j2 int
}

// classifier holds the scratch buffers for Classify.  Buffers grow as
// needed but never shrink.
type classifier struct {
	edges  []bandEdge
	active []int // indices into edges of the edges spanning the current band
	xs     []int // x coordinates of the active edges, sorted
}

// classify fills o with the interior cells of g.
//
// The bands are processed bottom to top, keeping an active edge list: an
// edge enters the list at its lower band and is dropped once the sweep has
// passed its upper end.  For every cell, a ray is cast from the middle of
// the cell to the right; the cell is inside if the ray crosses an odd
// number of active edges.
func (c *classifier) classify(o *Occupancy, g *Grid, edges []VerticalEdge) {
	cols, rows := g.Cols(), g.Rows()
	o.cols, o.rows = cols, rows
	size := cols * rows
	o.cells = slices.Grow(o.cells[:0], size)[:size]
	clear(o.cells)
	if size == 0 {
		return
	}

	c.edges = c.edges[:0]
	for _, e := range edges {
		j1, ok1 := g.YIndex(e.YLow)
		j2, ok2 := g.YIndex(e.YHigh)
		if !ok1 || !ok2 || j1 >= j2 {
			continue
		}
		c.edges = append(c.edges, bandEdge{x: e.X, j1: j1, j2: j2})
	}
	slices.SortFunc(c.edges, func(a, b bandEdge) int {
		return cmp.Compare(a.j1, b.j1)
	})

	c.active = c.active[:0]
	nextEdge := 0
	for j := range rows {
		for nextEdge < len(c.edges) && c.edges[nextEdge].j1 <= j {
			c.active = append(c.active, nextEdge)
			nextEdge++
		}

		c.xs = c.xs[:0]
		for k := 0; k < len(c.active); {
			e := &c.edges[c.active[k]]
			if e.j2 <= j {
				c.active[k] = c.active[len(c.active)-1]
				c.active = c.active[:len(c.active)-1]
				continue
			}
			c.xs = append(c.xs, e.x)
			k++
		}
		if len(c.xs) == 0 {
			continue
		}
		slices.Sort(c.xs)

		for i := range cols {
			// x > (Xs[i]+Xs[i+1])/2, compared without rounding
			twiceMid := g.Xs[i] + g.Xs[i+1]
			first := sort.Search(len(c.xs), func(k int) bool {
				return 2*c.xs[k] > twiceMid
			})
			if (len(c.xs)-first)%2 == 1 {
				o.cells[i*rows+j] = true
			}
		}
	}
}
