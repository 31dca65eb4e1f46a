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
	"fmt"
	"slices"
)

// PrefixSum answers "how many interior cells lie in this block of cells"
// in constant time.
type PrefixSum struct {
	nx, ny int
	sum    []int // sum[i*ny+j] counts the interior cells in [0,i)×[0,j)
}

// NewPrefixSum builds the prefix sum table for o.
func NewPrefixSum(o *Occupancy) *PrefixSum {
	p := &PrefixSum{}
	p.build(o)
	return p
}

func (p *PrefixSum) build(o *Occupancy) {
	nx, ny := o.cols+1, o.rows+1
	p.nx, p.ny = nx, ny
	size := nx * ny
	p.sum = slices.Grow(p.sum[:0], size)[:size]
	clear(p.sum)

	for i := 1; i < nx; i++ {
		row := i * ny
		prev := (i - 1) * ny
		for j := 1; j < ny; j++ {
			var cell int
			if o.cells[(i-1)*o.rows+j-1] {
				cell = 1
			}
			p.sum[row+j] = cell + p.sum[prev+j] + p.sum[row+j-1] - p.sum[prev+j-1]
		}
	}
}

// RectangleSum returns the number of interior cells (i, j) with
// i1 <= i < i2 and j1 <= j < j2.
//
// The arguments must satisfy 0 <= i1 <= i2 <= Cols and
// 0 <= j1 <= j2 <= Rows, otherwise RectangleSum panics.
func (p *PrefixSum) RectangleSum(i1, j1, i2, j2 int) int {
	if i1 < 0 || i1 > i2 || i2 >= p.nx || j1 < 0 || j1 > j2 || j2 >= p.ny {
		panic(fmt.Sprintf("maxrect: cell range [%d,%d)×[%d,%d) out of bounds %d×%d",
			i1, i2, j1, j2, p.nx-1, p.ny-1))
	}
	return p.rectSum(i1, j1, i2, j2)
}

func (p *PrefixSum) rectSum(i1, j1, i2, j2 int) int {
	ny := p.ny
	return p.sum[i2*ny+j2] - p.sum[i1*ny+j2] - p.sum[i2*ny+j1] + p.sum[i1*ny+j1]
}
