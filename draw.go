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

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PolygonPath returns the closed outline of the polygon pts.
func PolygonPath(pts []Point) *path.Data {
	p := &path.Data{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(toVec(pts[0]))
	for _, q := range pts[1:] {
		p = p.LineTo(toVec(q))
	}
	return p.Close()
}

// Path returns the outline of r.
func (r Rectangle) Path() *path.Data {
	return PolygonPath([]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	})
}

func toVec(p Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Fill paints the path p onto dst with full opacity, using the nonzero
// winding rule.  The transformation ctm maps path coordinates to pixel
// coordinates relative to dst.Bounds().Min; pixel (x, y) covers the square
// [x, x+1) × [y, y+1).
//
// For a simple polygon the nonzero and even-odd rules agree.
func Fill(dst *image.Alpha, p *path.Data, ctm matrix.Matrix) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	r := vector.NewRasterizer(b.Dx(), b.Dy())

	tr := func(v vec.Vec2) (float32, float32) {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
		return float32(x), float32(y)
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(tr(p.Coords[coordIdx]))
			coordIdx++

		case path.CmdLineTo:
			r.LineTo(tr(p.Coords[coordIdx]))
			coordIdx++

		case path.CmdQuadTo:
			x1, y1 := tr(p.Coords[coordIdx])
			x2, y2 := tr(p.Coords[coordIdx+1])
			r.QuadTo(x1, y1, x2, y2)
			coordIdx += 2

		case path.CmdCubeTo:
			x1, y1 := tr(p.Coords[coordIdx])
			x2, y2 := tr(p.Coords[coordIdx+1])
			x3, y3 := tr(p.Coords[coordIdx+2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
			coordIdx += 3

		case path.CmdClose:
			r.ClosePath()
		}
	}

	r.Draw(dst, b, image.Opaque, image.Point{})
}
