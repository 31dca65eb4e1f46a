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
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// fromImagePoints converts a test case polygon.
func fromImagePoints(in []image.Point) []Point {
	res := make([]Point, len(in))
	for i, p := range in {
		res[i] = Point{X: p.X, Y: p.Y}
	}
	return res
}

// rayCastInside reports whether (x, y) lies inside the polygon, by counting
// the edges crossed by a ray towards +x.  The result is undefined for
// points on the boundary.
func rayCastInside(poly []Point, x, y float64) bool {
	in := false
	n := len(poly)
	for k := range n {
		a, b := poly[k], poly[(k+1)%n]
		ay, by := float64(a.Y), float64(b.Y)
		if (ay > y) != (by > y) &&
			x < float64(b.X-a.X)*(y-ay)/(by-ay)+float64(a.X) {
			in = !in
		}
	}
	return in
}

// bruteForce solves the search on the unit grid, testing the centre of
// every unit square covered by a candidate rectangle.
func bruteForce(poly []Point) (Rectangle, bool) {
	var best Rectangle
	found := false
	for a, p := range poly {
		for _, q := range poly[a+1:] {
			if p.X == q.X || p.Y == q.Y {
				continue
			}
			r := rectFromCorners(p, q)
			if found && r.Area() <= best.Area() {
				continue
			}
			if unitSquaresInside(poly, r) {
				best, found = r, true
			}
		}
	}
	return best, found
}

func unitSquaresInside(poly []Point, r Rectangle) bool {
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if !rayCastInside(poly, float64(x)+0.5, float64(y)+0.5) {
				return false
			}
		}
	}
	return true
}

// histogram returns a random x-monotone rectilinear polygon: m columns
// standing on the x axis, with widths in [1, maxW] and heights in
// [1, maxH].  Neighbouring columns differ in height, so that all vertices
// are proper corners.
func histogram(rng *rand.Rand, m, maxW, maxH int) []Point {
	xs := make([]int, m+1)
	for k := 1; k <= m; k++ {
		xs[k] = xs[k-1] + 1 + rng.IntN(maxW)
	}
	hs := make([]int, m)
	for k := range hs {
		for {
			h := 1 + rng.IntN(maxH)
			if k == 0 || h != hs[k-1] {
				hs[k] = h
				break
			}
		}
	}

	pts := []Point{{X: 0, Y: 0}, {X: xs[m], Y: 0}}
	for k := m - 1; k >= 0; k-- {
		pts = append(pts, Point{X: xs[k+1], Y: hs[k]}, Point{X: xs[k], Y: hs[k]})
	}
	return pts
}

// randomPolygon returns a histogram polygon, randomly transposed, reversed
// and rotated so that all orientations and starting points get exercised.
func randomPolygon(rng *rand.Rand, m, maxW, maxH int) []Point {
	pts := histogram(rng, m, maxW, maxH)
	if rng.IntN(2) == 0 {
		for i, p := range pts {
			pts[i] = Point{X: p.Y, Y: p.X}
		}
	}
	if rng.IntN(2) == 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	k := rng.IntN(len(pts))
	return append(pts[k:], pts[:k]...)
}

// writeDiffImage writes a two-panel image of the cell classification:
// expected (left) and actual (right), one pixel per cell.
func writeDiffImage(name string, expected, actual func(i, j int) bool, cols, rows int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, 2*cols+1, rows))
	for j := range rows {
		y := rows - 1 - j // y axis up
		for i := range cols {
			e, a := expected(i, j), actual(i, j)
			var c color.RGBA
			switch {
			case e && a:
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			case e:
				c = color.RGBA{G: 255, A: 255} // missing: green
			case a:
				c = color.RGBA{R: 255, A: 255} // extra: red
			default:
				c = color.RGBA{A: 255}
			}
			if e {
				img.Set(i, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.Set(i, y, color.RGBA{A: 255})
			}
			img.Set(cols+1+i, y, c)
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
