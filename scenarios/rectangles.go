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

package scenarios

import (
	"github.com/blockcourse/wallpack/internal/geom"
	"seehuhn.de/go/geom/vec"
)

// cleanRectangle is a wall whose width is an exact multiple of the largest
// standard block width and whose height is an exact multiple of the course
// height: every course should pack without a single custom piece.
var cleanRectangle = Scenario{
	Name: "clean_rectangle",
	Wall: rect(0, 0, 3*1239, 3*495),
}

// trapezoidalWall is a non-rectangular outline: the top edge is narrower
// and shifted relative to the bottom, so every course's segment has a
// different width and the custom pieces trimming each course's edges
// differ course to course.
var trapezoidalWall = Scenario{
	Name: "trapezoidal_wall",
	Wall: geom.Polygon{Outer: []vec.Vec2{
		{X: 0, Y: 0},
		{X: 4000, Y: 0},
		{X: 3400, Y: 1980},
		{X: 600, Y: 1980},
	}},
}

// tailMicroRest is a wall whose width leaves a residual narrower than
// Config.MicroRest no matter which configured order wins: 2*1239 and
// 3*826 both land on 2478, ten short of the wall's 2488mm width, so both
// of the default Orders trials hit the same 10mm tail and trigger
// packSegment's backtrack path. The one-shot reversed-order refill can
// only clear that residual by emitting a 10mm custom piece of its own,
// which ties with the original tail's 10mm residual piece, so the
// backtrack is tried and rejected in both trials — exercising the path
// without changing the winning trial's output, which ends up two standard
// 1239mm blocks plus one 10mm-wide custom piece.
var tailMicroRest = Scenario{
	Name: "tail_micro_rest",
	Wall: rect(0, 0, 1239+826+413+10, 495),
}

// nonConvexWithHole is an L-shaped outline with a structural hole cut into
// it (distinct from an aperture): a rectangular notch out of the top-right
// corner, plus a square hole in the remaining body.
var nonConvexWithHole = Scenario{
	Name: "non_convex_with_hole",
	Wall: geom.Polygon{
		Outer: []vec.Vec2{
			{X: 0, Y: 0},
			{X: 4000, Y: 0},
			{X: 4000, Y: 990},
			{X: 2500, Y: 990},
			{X: 2500, Y: 1980},
			{X: 0, Y: 1980},
		},
		Holes: [][]vec.Vec2{
			{
				{X: 500, Y: 500},
				{X: 900, Y: 500},
				{X: 900, Y: 900},
				{X: 500, Y: 900},
			},
		},
	},
}

var rectangleScenarios = []Scenario{
	cleanRectangle,
	trapezoidalWall,
	tailMicroRest,
	nonConvexWithHole,
}
