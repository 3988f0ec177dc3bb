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

package coloring

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coloring/segment"
)

// Fill recolours the region under view position p with the opaque colour
// c. Nothing happens if p lies on ink or no image is loaded; the boolean
// reports whether a region was filled.
func (e *Engine) Fill(p vec.Vec2, c color.NRGBA) (segment.Region, bool) {
	if e.base == nil {
		return segment.Region{}, false
	}
	x, y := e.pixelAt(p)
	r, ok := e.labels.Region(e.labels.At(x, y))
	if !ok {
		return segment.Region{}, false
	}

	c.A = 255
	for _, run := range e.labels.Runs(r.ID) {
		e.base.FillRun(run.Y, run.X0, run.X1, c)
	}
	e.previewStale = true

	Logger().Debug("region filled", "region", r.ID, "area", r.Area, "colour", c)
	return r, true
}
