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
	"slices"

	"golang.org/x/sync/errgroup"
)

// Solver finds the largest rectangle with two polygon vertices as opposite
// corners which lies inside the polygon.  Create one instance and reuse it
// for multiple polygons.  Internal buffers grow as needed but never shrink.
//
// A Solver is not safe for concurrent use.
type Solver struct {
	// Workers is the number of goroutines used to test vertex pairs.
	// Values below 2 run the search on the calling goroutine.
	Workers int

	grid   Grid
	edges  []VerticalEdge
	occ    Occupancy
	prefix PrefixSum
	cls    classifier

	// grid line indices of every vertex
	vi, vj []int
}

// NewSolver returns a Solver which runs on the calling goroutine.
func NewSolver() *Solver {
	return &Solver{
		Workers: 1,
	}
}

// MaxArea returns the area of the largest rectangle which has two vertices
// of the rectilinear polygon pts as opposite corners and which lies inside
// the polygon.  If no such rectangle exists, 0 is returned.
func MaxArea(pts []Point) int {
	r, ok := NewSolver().Solve(pts)
	if !ok {
		return 0
	}
	return r.Area()
}

// Solve returns the largest rectangle which has two vertices of the
// rectilinear polygon pts as opposite corners and which lies inside the
// polygon.  The polygon is closed implicitly; it must be simple and all
// edges must be horizontal or vertical.
//
// Among rectangles of equal area, the one whose corner vertices come first
// in pts wins.  The second return value is false if no vertex pair spans a
// rectangle inside the polygon.
func (s *Solver) Solve(pts []Point) (Rectangle, bool) {
	if len(pts) < 2 {
		return Rectangle{}, false
	}

	s.grid.reset(pts)
	s.edges = appendVerticalEdges(s.edges[:0], pts)
	s.cls.classify(&s.occ, &s.grid, s.edges)
	s.prefix.build(&s.occ)

	n := len(pts)
	s.vi = slices.Grow(s.vi[:0], n)[:n]
	s.vj = slices.Grow(s.vj[:0], n)[:n]
	for k, p := range pts {
		s.vi[k], s.vj[k], _ = s.grid.Index(p)
	}

	var best candidate
	var found bool
	if s.Workers > 1 {
		best, found = s.searchParallel(pts)
	} else {
		best, found = s.search(pts, 0, 1)
	}
	if !found {
		return Rectangle{}, false
	}
	return rectFromCorners(pts[best.a], pts[best.b]), true
}

// candidate is a qualifying vertex pair a < b.
type candidate struct {
	a, b int
	area int
}

// better reports whether c beats d: larger area first, then earlier
// vertices.
func (c candidate) better(d candidate) bool {
	if c.area != d.area {
		return c.area > d.area
	}
	if c.a != d.a {
		return c.a < d.a
	}
	return c.b < d.b
}

// search tests the pairs (a, b) with a = start, start+stride, ... and
// a < b.  Pairs are visited in increasing (a, b) order, so a later pair of
// equal area can never win and is not tested.
func (s *Solver) search(pts []Point, start, stride int) (best candidate, found bool) {
	n := len(pts)
	for a := start; a < n; a += stride {
		p := pts[a]
		for b := a + 1; b < n; b++ {
			q := pts[b]
			if p.X == q.X || p.Y == q.Y {
				continue // no rectangle
			}

			area := (abs(p.X-q.X) + 1) * (abs(p.Y-q.Y) + 1)
			if found && area <= best.area {
				continue
			}

			i1, i2 := minMax(s.vi[a], s.vi[b])
			j1, j2 := minMax(s.vj[a], s.vj[b])
			if i1 == i2 || j1 == j2 {
				continue
			}
			if s.prefix.rectSum(i1, j1, i2, j2) != (i2-i1)*(j2-j1) {
				continue // some cell is outside the polygon
			}

			best = candidate{a: a, b: b, area: area}
			found = true
		}
	}
	return best, found
}

// searchParallel distributes the rows of the pair triangle over
// s.Workers goroutines.  Rows are striped so that every goroutine gets a
// similar mix of long and short rows.
func (s *Solver) searchParallel(pts []Point) (candidate, bool) {
	stripes := min(s.Workers*stripesPerWorker, len(pts))
	best := make([]candidate, stripes)
	found := make([]bool, stripes)

	var g errgroup.Group
	g.SetLimit(s.Workers)
	for k := range stripes {
		g.Go(func() error {
			best[k], found[k] = s.search(pts, k, stripes)
			return nil
		})
	}
	g.Wait() // workers never fail

	var res candidate
	var ok bool
	for k := range stripes {
		if found[k] && (!ok || best[k].better(res)) {
			res, ok = best[k], true
		}
	}
	return res, ok
}

// stripesPerWorker is the number of row stripes handed to each worker
// goroutine in searchParallel.
const stripesPerWorker = 4

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
