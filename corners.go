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

// MaxCornerArea returns the area of the largest rectangle which has two of
// the given points as opposite corners, ignoring any polygon.  Points on a
// common row or column span a rectangle of width or height 1.  Fewer than
// two points give 0.
func MaxCornerArea(pts []Point) int {
	best := 0
	for a, p := range pts {
		for _, q := range pts[a+1:] {
			best = max(best, rectFromCorners(p, q).Area())
		}
	}
	return best
}
