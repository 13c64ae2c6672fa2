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

import "github.com/blockcourse/wallpack/internal/geom"

// rectangleWithDoor is a plain rectangular wall with one door-sized
// aperture cut out of it, spanning two courses.
var rectangleWithDoor = Scenario{
	Name:      "rectangle_with_door",
	Wall:      rect(0, 0, 3717, 1980),
	Apertures: []geom.Polygon{rect(1239, 0, 1239+826, 990)},
}

// apertureTooLarge is a rectangular wall with a single aperture covering
// nearly the whole wall, which the aperture lifecycle filter must discard
// rather than hand to the keep-out builder.
var apertureTooLarge = Scenario{
	Name:      "aperture_too_large",
	Wall:      rect(0, 0, 3717, 1980),
	Apertures: []geom.Polygon{rect(100, 100, 3617, 1880)},
}

var apertureScenarios = []Scenario{
	rectangleWithDoor,
	apertureTooLarge,
}
