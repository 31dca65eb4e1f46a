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


// Package testcases holds a catalogue of rectilinear polygons together
// with the expected search results.
package testcases

import "image"

// TestCase defines a single polygon test.
type TestCase struct {
	Name    string        // lowercase a-z, 0-9 and _ only
	Polygon []image.Point // vertices in boundary order, closed implicitly

	// Area is the expected area of the largest vertex rectangle inside
	// the polygon, 0 if there is none.
	Area int

	// Unconstrained is the expected area of the largest rectangle spanned
	// by any two vertices, ignoring the polygon.
	Unconstrained int
}

// pts builds a vertex list from alternating x and y values.
func pts(xy ...int) []image.Point {
	if len(xy)%2 != 0 {
		panic("odd number of coordinates")
	}
	res := make([]image.Point, len(xy)/2)
	for i := range res {
		res[i] = image.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	return res
}
