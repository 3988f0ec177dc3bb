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

package segment

import "image"

// Mask marks the pixels of a single region. Its storage covers only the
// region's bounding box.
type Mask struct {
	ID uint32

	// Alpha is 255 for pixels of the region and 0 elsewhere.
	Alpha *image.Alpha
}

// Mask builds the confinement mask for region id, or returns nil for [Ink]
// and unknown labels. The cost is proportional to the region's size.
func (m *LabelMap) Mask(id uint32) *Mask {
	reg, ok := m.Region(id)
	if !ok {
		return nil
	}
	alpha := image.NewAlpha(reg.Bounds)
	for _, r := range m.Runs(id) {
		start := alpha.PixOffset(r.X0, r.Y)
		row := alpha.Pix[start : start+r.X1-r.X0]
		for i := range row {
			row[i] = 255
		}
	}
	return &Mask{ID: id, Alpha: alpha}
}

// Bounds returns the bounding box of the masked region.
func (mk *Mask) Bounds() image.Rectangle {
	return mk.Alpha.Rect
}

// Contains reports whether (x, y) belongs to the masked region.
func (mk *Mask) Contains(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(mk.Alpha.Rect) {
		return false
	}
	return mk.Alpha.Pix[mk.Alpha.PixOffset(x, y)] != 0
}

// Row returns the mask bytes for pixels [x0, x1) of row y, which must lie
// inside the mask bounds.
func (mk *Mask) Row(y, x0, x1 int) []uint8 {
	start := mk.Alpha.PixOffset(x0, y)
	return mk.Alpha.Pix[start : start+x1-x0]
}
