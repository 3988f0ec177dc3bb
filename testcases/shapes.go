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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/coloring/raster"
)

var shapeScenes = []Scene{
	{
		Name:     "blank",
		Ink:      &path.Data{},
		InkWidth: 1,
		Width:    32,
		Height:   32,
		Regions:  1,
	},
	{
		Name:     "frame",
		Ink:      rectangle(10, 10, 54, 54),
		InkWidth: 2,
		Width:    64,
		Height:   64,
		Regions:  2,
	},
	{
		Name:     "rounded_frame",
		Ink:      rectangle(12, 12, 52, 52),
		InkWidth: 4,
		Width:    64,
		Height:   64,
		Join:     graphics.LineJoinRound,
		Regions:  2,
	},
	{
		Name:     "circle",
		Ink:      circle(32, 32, 20),
		InkWidth: 3,
		Width:    64,
		Height:   64,
		Regions:  2,
	},
	{
		Name:     "nested_circles",
		Ink:      join(circle(32, 32, 10), circle(32, 32, 24)),
		InkWidth: 3,
		Width:    64,
		Height:   64,
		Regions:  3,
	},
	{
		Name:     "two_frames",
		Ink:      join(rectangle(6, 16, 28, 48), rectangle(36, 16, 58, 48)),
		InkWidth: 2,
		Width:    64,
		Height:   64,
		Regions:  3,
	},
	{
		Name: "window",
		Ink: join(
			rectangle(8, 8, 56, 56),
			line(24, 8, 24, 56), line(40, 8, 40, 56),
			line(8, 24, 56, 24), line(8, 40, 56, 40),
		),
		InkWidth: 2,
		Width:    64,
		Height:   64,
		Regions:  10,
	},
}

// rectangle builds a closed rectangular outline.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// circle builds a closed circular outline.
func circle(cx, cy, r float64) *path.Data {
	return raster.AppendCircle(&path.Data{}, pt(cx, cy), r)
}

// line builds an open straight line.
func line(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).MoveTo(pt(x1, y1)).LineTo(pt(x2, y2))
}

// polyline builds an open path through the given coordinate pairs.
func polyline(xy ...float64) *path.Data {
	p := &path.Data{}
	p.MoveTo(pt(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p.LineTo(pt(xy[i], xy[i+1]))
	}
	return p
}

// join concatenates the subpaths of several paths.
func join(parts ...*path.Data) *path.Data {
	p := &path.Data{}
	for _, q := range parts {
		p.Cmds = append(p.Cmds, q.Cmds...)
		p.Coords = append(p.Coords, q.Coords...)
	}
	return p
}

// rings builds n concentric circles with radii step, 2·step, ...
func rings(cx, cy, step float64, n int) *path.Data {
	p := &path.Data{}
	for i := 1; i <= n; i++ {
		raster.AppendCircle(p, pt(cx, cy), step*float64(i))
	}
	return p
}

// grid builds lines across a w×h canvas every cell pixels, overshooting
// the canvas edges.
func grid(w, h, cell int) *path.Data {
	p := &path.Data{}
	const over = 2
	for x := cell; x < w; x += cell {
		p.MoveTo(pt(float64(x), -over)).LineTo(pt(float64(x), float64(h+over)))
	}
	for y := cell; y < h; y += cell {
		p.MoveTo(pt(-over, float64(y))).LineTo(pt(float64(w+over), float64(y)))
	}
	return p
}

// vennOffset is the distance between two circles of radius r which
// cross at right angles.
func vennOffset(r float64) float64 {
	return r * math.Sqrt2
}
