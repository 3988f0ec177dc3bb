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
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coloring/pixel"
	"seehuhn.de/go/coloring/raster"
)

const defaultTileSize = 16

// DefaultPattern returns the built-in paper tile: two soft grey dots on a
// transparent 16×16 square.
func DefaultPattern() image.Image {
	tile := image.NewNRGBA(image.Rect(0, 0, defaultTileSize, defaultTileSize))

	p := &path.Data{}
	raster.AppendCircle(p, vec.Vec2{X: 4, Y: 4}, 1.5)
	raster.AppendCircle(p, vec.Vec2{X: 12, Y: 11}, 1.25)

	r := raster.NewRasteriser(rect.Rect{URx: defaultTileSize, URy: defaultTileSize})
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			tile.SetNRGBA(xMin+i, y, color.NRGBA{
				R: 120, G: 112, B: 100,
				A: uint8(255*min(c, 1) + 0.5),
			})
		}
	})
	return tile
}

// SetPattern blends Pattern, repeated over the whole image, into buf with
// PatternOpacity. When PatternScale is not 1 the tile is resampled first.
// The label map is not changed. The only error is an invalid buffer.
//
// If buf is the canvas, or any view into the canvas memory, the next
// preview is rebuilt from the patterned canvas.
func (e *Engine) SetPattern(buf *pixel.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("set pattern: %w", err)
	}
	if e.base != nil && sameMemory(buf.Pix, e.base.Pix) {
		e.previewStale = true
	}

	opacity := float32(min(max(e.PatternOpacity, 0), 1))
	tile := e.patternTile()
	if tile == nil || opacity == 0 {
		return nil
	}
	tw, th := tile.Rect.Dx(), tile.Rect.Dy()
	for y := range buf.Height {
		ty := y % th
		for x := range buf.Width {
			c := tile.NRGBAAt(tile.Rect.Min.X+x%tw, tile.Rect.Min.Y+ty)
			if c.A == 0 {
				continue
			}
			a := float32(c.A) / 255 * opacity
			c.A = 255
			buf.SetNRGBA(x, y, pixel.Mix(buf.NRGBAAt(x, y), c, a))
		}
	}
	return nil
}

// patternTile returns Pattern as an NRGBA image, resized by PatternScale,
// or nil if there is nothing to apply.
func (e *Engine) patternTile() *image.NRGBA {
	if e.Pattern == nil {
		return nil
	}
	src := e.Pattern.Bounds()
	scale := e.PatternScale
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	w := max(int(math.Round(float64(src.Dx())*scale)), 1)
	h := max(int(math.Round(float64(src.Dy())*scale)), 1)
	if src.Empty() {
		return nil
	}

	tile := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == src.Dx() && h == src.Dy() {
		xdraw.Copy(tile, image.Point{}, e.Pattern, src, xdraw.Src, nil)
	} else {
		xdraw.BiLinear.Scale(tile, tile.Rect, e.Pattern, src, xdraw.Src, nil)
	}
	return tile
}

// sameMemory reports whether a and b are slices of the same array, by
// comparing the last element of their capacity. Slices cut with a full
// slice expression are not recognised.
func sameMemory(a, b []byte) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return false
	}
	return &a[:cap(a)][cap(a)-1] == &b[:cap(b)][cap(b)-1]
}
