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


// Command maxrect reads the vertices of a rectilinear polygon, one "x,y"
// pair per line, and prints the area of the largest rectangle which has
// two vertices as opposite corners and lies inside the polygon.
package main

import (
	goflag "flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/maxrect"
)

var conf = viper.New()

var rootCmd = &cobra.Command{
	Use:   "maxrect [file]",
	Short: "Largest vertex rectangle inside a rectilinear polygon",
	Long: `
maxrect reads polygon vertices as "x,y" lines from the named file, or from
standard input if no file is given, and prints the area of the largest
axis-aligned rectangle which has two vertices as opposite corners and lies
inside the polygon.  Areas count grid points, so both boundary rows and
columns are included.

Every flag can also be set through an environment variable MAXRECT_<FLAG>.
`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.Bool("unconstrained", false,
		"Ignore the polygon and consider all pairs of points.")
	f.Int("workers", 1, "Number of goroutines used for the pair search.")
	f.String("png", "", "Write an image of the polygon and the result to this file.")
	f.Int("scale", 1, "Pixels per coordinate unit in the --png image.")
	conf.BindPFlags(f)
	conf.SetEnvPrefix("MAXRECT")
	conf.AutomaticEnv()

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
}

func main() {
	goflag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "maxrect:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	pts, err := readPoints(args)
	if err != nil {
		return err
	}
	glog.V(1).Infof("read %d vertices", len(pts))

	if conf.GetBool("unconstrained") {
		fmt.Fprintln(cmd.OutOrStdout(), maxrect.MaxCornerArea(pts))
		return nil
	}

	s := maxrect.NewSolver()
	s.Workers = conf.GetInt("workers")
	best, ok := s.Solve(pts)

	area := 0
	if ok {
		area = best.Area()
		glog.V(1).Infof("best rectangle %v-%v", best.Min, best.Max)
	} else {
		glog.V(1).Info("no vertex pair spans a rectangle inside the polygon")
	}

	if out := conf.GetString("png"); out != "" {
		if err := writePNG(out, pts, best, ok, conf.GetInt("scale")); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), area)
	return nil
}

func readPoints(args []string) ([]maxrect.Point, error) {
	var r io.Reader = os.Stdin
	name := "<stdin>"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		name = args[0]
	}

	pts, err := maxrect.ParsePoints(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return pts, nil
}

// writePNG draws the polygon in mid gray and the winning rectangle in
// white.  The image y axis points down.
func writePNG(fname string, pts []maxrect.Point, best maxrect.Rectangle, hasBest bool, scale int) (err error) {
	bbox, ok := maxrect.Bounds(pts)
	if !ok {
		return fmt.Errorf("%s: no points to draw", fname)
	}
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	w := (bbox.Max.X-bbox.Min.X)*scale + 1
	h := (bbox.Max.Y-bbox.Min.Y)*scale + 1
	glog.V(1).Infof("writing %dx%d image to %s", w, h, fname)

	s := float64(scale)
	ctm := matrix.Matrix{s, 0, 0, s, -float64(bbox.Min.X) * s, -float64(bbox.Min.Y) * s}

	poly := image.NewAlpha(image.Rect(0, 0, w, h))
	maxrect.Fill(poly, maxrect.PolygonPath(pts), ctm)

	img := image.NewGray(poly.Rect)
	for i, a := range poly.Pix {
		img.Pix[i] = a / 2
	}
	if hasBest {
		rect := image.NewAlpha(poly.Rect)
		maxrect.Fill(rect, best.Path(), ctm)
		for i, a := range rect.Pix {
			img.Pix[i] = max(img.Pix[i], a)
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
