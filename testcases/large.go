// seehuhn.de/go/coloring - region-confined painting for line art
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

package testcases

import "seehuhn.de/go/pdf/graphics"

// largeScenes have outlines with bounding boxes > 65536 pixels, to
// exercise the active edge list in the rasteriser.
var largeScenes = []Scene{
	{
		Name:     "page_grid",
		Ink:      grid(1024, 768, 128),
		InkWidth: 2,
		Width:    1024,
		Height:   768,
		Regions:  48,
	},
	{
		Name:     "rings",
		Ink:      rings(256, 256, 40, 6),
		InkWidth: 4,
		Width:    512,
		Height:   512,
		Cap:      graphics.LineCapRound,
		Join:     graphics.LineJoinRound,
		Regions:  7,
	},
}
