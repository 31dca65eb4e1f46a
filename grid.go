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
	"slices"
)

// Grid is the coordinate-compressed grid spanned by a set of points.
//
// Xs and Ys hold the distinct coordinates in increasing order. Cell (i, j)
// covers [Xs[i], Xs[i+1]] × [Ys[j], Ys[j+1]].
type Grid struct {
	Xs, Ys []int

	xIdx map[int]int
	yIdx map[int]int
}

// NewGrid returns the compressed grid for the given points.
// An empty point list gives an empty grid.
func NewGrid(pts []Point) *Grid {
	g := &Grid{}
	g.reset(pts)
	return g
}

// reset rebuilds g for pts, reusing the existing storage.
func (g *Grid) reset(pts []Point) {
	g.Xs = g.Xs[:0]
	g.Ys = g.Ys[:0]
	for _, p := range pts {
		g.Xs = append(g.Xs, p.X)
		g.Ys = append(g.Ys, p.Y)
	}
	slices.Sort(g.Xs)
	slices.Sort(g.Ys)
	g.Xs = slices.Compact(g.Xs)
	g.Ys = slices.Compact(g.Ys)

	g.xIdx = indexMap(g.xIdx, g.Xs)
	g.yIdx = indexMap(g.yIdx, g.Ys)
}

func indexMap(m map[int]int, vals []int) map[int]int {
	if m == nil {
		m = make(map[int]int, len(vals))
	} else {
		clear(m)
	}
	for i, v := range vals {
		m[v] = i
	}
	return m
}

// Cols returns the number of cell columns.
func (g *Grid) Cols() int {
	return max(len(g.Xs)-1, 0)
}

// Rows returns the number of cell rows (bands).
func (g *Grid) Rows() int {
	return max(len(g.Ys)-1, 0)
}

// XIndex returns the position of x in Xs.
func (g *Grid) XIndex(x int) (int, bool) {
	i, ok := g.xIdx[x]
	return i, ok
}

// YIndex returns the position of y in Ys.
func (g *Grid) YIndex(y int) (int, bool) {
	j, ok := g.yIdx[y]
	return j, ok
}

// Index returns the grid line indices of p.
// The last return value is false if p is not on a grid line crossing.
func (g *Grid) Index(p Point) (i, j int, ok bool) {
	i, okX := g.xIdx[p.X]
	j, okY := g.yIdx[p.Y]
	return i, j, okX && okY
}
