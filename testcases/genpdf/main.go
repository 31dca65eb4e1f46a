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


// Command genpdf draws every test polygon to a PDF file, with the largest
// vertex rectangle highlighted.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/maxrect"
	"seehuhn.de/go/maxrect/testcases"
)

const outDir = "testdata/plots"

// page size in points for the longer side of the bounding box
const pageSize = 400

const margin = 20

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	s := maxrect.NewSolver()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if len(tc.Polygon) == 0 {
				continue
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			poly := make([]maxrect.Point, len(tc.Polygon))
			for i, p := range tc.Polygon {
				poly[i] = maxrect.Point{X: p.X, Y: p.Y}
			}
			best, ok := s.Solve(poly)

			if err := generatePDF(poly, best, ok, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(poly []maxrect.Point, best maxrect.Rectangle, hasBest bool, pdfPath string) error {
	bbox, _ := maxrect.Bounds(poly)
	w := float64(max(bbox.Max.X-bbox.Min.X, 1))
	h := float64(max(bbox.Max.Y-bbox.Min.Y, 1))
	scale := pageSize / max(w, h)

	paper := &pdf.Rectangle{
		URx: w*scale + 2*margin,
		URy: h*scale + 2*margin,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// polygon coordinates to page coordinates
	page.Transform(matrix.Matrix{
		scale, 0, 0, scale,
		margin - float64(bbox.Min.X)*scale,
		margin - float64(bbox.Min.Y)*scale,
	})

	page.SetFillColor(color.DeviceGray(0.8))
	drawPath(page, maxrect.PolygonPath(poly))
	page.FillEvenOdd()

	if hasBest {
		page.SetFillColor(color.DeviceGray(0.5))
		drawPath(page, best.Path())
		page.Fill()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1 / scale)
	page.SetLineJoin(graphics.LineJoinMiter)
	drawPath(page, maxrect.PolygonPath(poly))
	page.Stroke()

	return page.Close()
}

func drawPath(page *document.Page, p *path.Data) {
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdLineTo:
			page.LineTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
