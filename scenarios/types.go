// seehuhn.de/go/raster - a 2D rendering library
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

// Package scenarios holds the fixture walls exercised by the packer's test
// suite, grouped by what each one is meant to stress: plain rectangles,
// apertures, non-convex and trapezoidal outlines, and the tail-backtrack
// path.
package scenarios

import "github.com/blockcourse/wallpack/internal/geom"

// Scenario is one named fixture: a wall outline plus zero or more aperture
// polygons to subtract from it.
type Scenario struct {
	Name      string
	Wall      geom.Polygon
	Apertures []geom.Polygon
}

// rect builds a rectangular outer ring, reusing geom.Rect.
func rect(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Rect(x0, y0, x1, y1)
}
