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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498

// AppendCircle adds a closed circle around c to p and returns p. The
// circle is traversed in the direction of increasing angle, so that
// several circles in one path combine as a union under the nonzero rule.
func AppendCircle(p *path.Data, c vec.Vec2, radius float64) *path.Data {
	k := kappa * radius
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c.X + dx, Y: c.Y + dy}
	}
	return p.MoveTo(pt(radius, 0)).
		CubeTo(pt(radius, k), pt(k, radius), pt(0, radius)).
		CubeTo(pt(-k, radius), pt(-radius, k), pt(-radius, 0)).
		CubeTo(pt(-radius, -k), pt(-k, -radius), pt(0, -radius)).
		CubeTo(pt(k, -radius), pt(radius, -k), pt(radius, 0)).
		Close()
}

// AppendPolyline adds an open subpath through pts to p and returns p. A
// single point becomes a subpath of zero length, which strokes as a dot
// with round or square caps.
func AppendPolyline(p *path.Data, pts []vec.Vec2) *path.Data {
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	if len(pts) == 1 {
		return p.LineTo(pts[0])
	}
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p
}
