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
	"math/rand/v2"
	"testing"
)

// TestRectangleSum compares every query against a direct count.
func TestRectangleSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 20 {
		pts := randomPolygon(rng, 1+rng.IntN(8), 4, 6)
		o := Classify(NewGrid(pts), VerticalEdges(pts))
		p := NewPrefixSum(o)

		for i1 := 0; i1 <= o.Cols(); i1++ {
			for i2 := i1; i2 <= o.Cols(); i2++ {
				for j1 := 0; j1 <= o.Rows(); j1++ {
					for j2 := j1; j2 <= o.Rows(); j2++ {
						want := 0
						for i := i1; i < i2; i++ {
							for j := j1; j < j2; j++ {
								if o.Inside(i, j) {
									want++
								}
							}
						}
						if got := p.RectangleSum(i1, j1, i2, j2); got != want {
							t.Fatalf("%v: RectangleSum(%d, %d, %d, %d) = %d, want %d",
								pts, i1, j1, i2, j2, got, want)
						}
					}
				}
			}
		}

		if total := p.RectangleSum(0, 0, o.Cols(), o.Rows()); total != o.Count() {
			t.Errorf("total %d, want %d", total, o.Count())
		}
	}
}

func TestPrefixSumBorder(t *testing.T) {
	pts := []Point{{0, 0}, {6, 0}, {6, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 6}, {0, 6}}
	o := Classify(NewGrid(pts), VerticalEdges(pts))
	p := NewPrefixSum(o)

	for i := range p.nx {
		if v := p.sum[i*p.ny]; v != 0 {
			t.Errorf("sum[%d][0] = %d", i, v)
		}
	}
	for j := range p.ny {
		if v := p.sum[j]; v != 0 {
			t.Errorf("sum[0][%d] = %d", j, v)
		}
	}
}

func TestRectangleSumOutOfRange(t *testing.T) {
	pts := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	p := NewPrefixSum(Classify(NewGrid(pts), VerticalEdges(pts)))

	if got := p.RectangleSum(0, 0, 1, 1); got != 1 {
		t.Fatalf("unit square: got %d, want 1", got)
	}

	bad := [][4]int{
		{0, 0, 2, 1},
		{0, 0, 1, 2},
		{-1, 0, 1, 1},
		{1, 0, 0, 1},
	}
	for _, q := range bad {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("RectangleSum%v did not panic", q)
				}
			}()
			p.RectangleSum(q[0], q[1], q[2], q[3])
		}()
	}
}
