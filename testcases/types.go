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

import (
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/coloring/pixel"
	"seehuhn.de/go/coloring/raster"
)

// Scene is a piece of line art: black outlines on a white page.
type Scene struct {
	Name     string     // lowercase a-z and _ only
	Ink      *path.Data // centre lines of the outlines
	InkWidth float64    // outline width in pixels (>0)
	Width    int        // canvas width in pixels
	Height   int        // canvas height in pixels

	// Cap and Join style the outlines. The zero values are butt caps and
	// miter joins.
	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// Regions is the number of fillable regions in the rendered scene,
	// for black ink, threshold 128 and 4-connectivity.
	Regions int
}

var (
	paper = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ink   = color.NRGBA{A: 255}
)

// Render draws the scene into a new buffer of the given format, with
// anti-aliased outlines.
func Render(s Scene, format pixel.Format) *pixel.Buffer {
	buf := pixel.New(s.Width, s.Height, format)
	for y := range s.Height {
		buf.FillRun(y, 0, s.Width, paper)
	}

	r := raster.NewRasteriser(rect.Rect{URx: float64(s.Width), URy: float64(s.Height)})
	r.Width = s.InkWidth
	r.Cap = s.Cap
	r.Join = s.Join
	r.Stroke(s.Ink, func(y, xMin int, coverage []float32) {
		for i, a := range coverage {
			x := xMin + i
			buf.SetNRGBA(x, y, pixel.Mix(buf.NRGBAAt(x, y), ink, min(a, 1)))
		}
	})
	return buf
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
