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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is returned (wrapped) by ParsePoints for malformed lines.
var ErrSyntax = errors.New("malformed point")

// ParsePoints reads one "x,y" point per line from r.
//
// Leading blank lines are skipped.  Reading stops at the end of the input
// or at the first blank line which follows a point.
func ParsePoints(r io.Reader) ([]Point, error) {
	var pts []Point

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(pts) > 0 {
				break
			}
			continue
		}

		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

func parsePoint(s string) (Point, error) {
	xStr, yStr, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w %q: missing comma", ErrSyntax, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xStr))
	if err != nil {
		return Point{}, fmt.Errorf("%w %q: %w", ErrSyntax, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(yStr))
	if err != nil {
		return Point{}, fmt.Errorf("%w %q: %w", ErrSyntax, s, err)
	}
	return Point{X: x, Y: y}, nil
}
