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


// Package maxrect finds the largest axis-aligned rectangle which has two
// vertices of a rectilinear polygon as opposite corners and which lies
// completely inside the polygon.
//
// The search works on a coordinate-compressed grid: the distinct x and y
// values of the vertices split the plane into cells, each cell is
// classified as inside or outside using the even-odd rule, and a 2D prefix
// sum over the classification answers "is this rectangle fully inside" in
// constant time.
//
// Areas are counted in grid units including both boundary rows and
// columns, so the rectangle with corners (0,0) and (1,1) has area 4.
package maxrect

import (
	"seehuhn.de/go/geom/rect"
)

// Point is a polygon vertex with integer coordinates.
type Point struct {
	X, Y int
}

// Rectangle is an axis-aligned rectangle given by its lower-left and
// upper-right corners.
type Rectangle struct {
	Min, Max Point
}

// rectFromCorners returns the rectangle with opposite corners p and q.
func rectFromCorners(p, q Point) Rectangle {
	return Rectangle{
		Min: Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)},
		Max: Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)},
	}
}

// Area returns the number of unit grid points covered by r, counting both
// boundary rows and both boundary columns.
func (r Rectangle) Area() int {
	return (r.Max.X - r.Min.X + 1) * (r.Max.Y - r.Min.Y + 1)
}

// Rect returns the continuous rectangle spanned by the corners of r.
func (r Rectangle) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(r.Min.X),
		LLy: float64(r.Min.Y),
		URx: float64(r.Max.X),
		URy: float64(r.Max.Y),
	}
}

// Bounds returns the bounding box of the given points.
// The second return value is false if pts is empty.
func Bounds(pts []Point) (Rectangle, bool) {
	if len(pts) == 0 {
		return Rectangle{}, false
	}
	b := Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b, true
}
