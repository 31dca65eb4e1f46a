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

// VerticalEdge is a vertical polygon edge at X, running from YLow up to
// YHigh.  YLow < YHigh always holds.
type VerticalEdge struct {
	X, YLow, YHigh int
}

// VerticalEdges returns the vertical edges of the closed polygon pts,
// in polygon order.  Horizontal edges play no part in the even-odd test
// and are skipped, as are zero-length edges between repeated vertices.
func VerticalEdges(pts []Point) []VerticalEdge {
	return appendVerticalEdges(nil, pts)
}

func appendVerticalEdges(dst []VerticalEdge, pts []Point) []VerticalEdge {
	n := len(pts)
	for k := range n {
		p0 := pts[k]
		p1 := pts[(k+1)%n]
		if p0.X != p1.X || p0.Y == p1.Y {
			continue
		}
		dst = append(dst, VerticalEdge{
			X:     p0.X,
			YLow:  min(p0.Y, p1.Y),
			YHigh: max(p0.Y, p1.Y),
		})
	}
	return dst
}
