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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a stroked path, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by 90° counter-clockwise
}

// subpath is the index range of one subpath in Rasteriser.segs.
type subpath struct {
	start, end int
	closed     bool
}

// Stroke paints the area swept by a pen of diameter Width moving along p,
// using Cap, Join and MiterLimit for the ends and corners.
//
// The outline is built as a union of simple convex pieces: one rectangle
// per segment plus the cap and join shapes. All pieces share the same
// orientation, so filling them together with the nonzero rule covers their
// union exactly once, however the path overlaps itself.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.flattenForStroke(p)
	if len(r.subpaths) == 0 && len(r.dots) == 0 {
		return
	}

	d := r.Width / 2
	r.outline = r.outline[:0]
	r.polys = r.polys[:0]
	for _, pt := range r.dots {
		r.addDot(pt, d)
	}
	for _, sp := range r.subpaths {
		r.strokeSubpath(r.segs[sp.start:sp.end], sp.closed, d)
	}

	r.beginEdges()
	for i := range r.polys {
		poly := r.polygon(i)
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.rasterise(fillNonZero, emit)
}

// flattenForStroke converts p into straight segments, grouped by subpath.
// Subpaths which draw but have no length are recorded in r.dots.
func (r *Rasteriser) flattenForStroke(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	var current, start vec.Vec2
	first := 0
	inSubpath := false
	drew := false

	finish := func(closed bool) {
		if !inSubpath {
			return
		}
		switch {
		case len(r.segs) > first:
			r.subpaths = append(r.subpaths, subpath{start: first, end: len(r.segs), closed: closed})
		case drew:
			r.dots = append(r.dots, start)
		}
		inSubpath = false
		drew = false
	}
	// begin starts a subpath at the current point if a drawing command
	// follows a ClosePath without an intervening MoveTo.
	begin := func() {
		if !inSubpath {
			start = current
			first = len(r.segs)
			inSubpath = true
		}
		drew = true
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			start = current
			first = len(r.segs)
			inSubpath = true
			k++
		case path.CmdLineTo:
			begin()
			r.addStrokeSegment(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			begin()
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addStrokeSegment)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			begin()
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addStrokeSegment)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if inSubpath {
				r.addStrokeSegment(current, start)
				finish(true)
			}
			current = start
		}
	}
	finish(false)
}

func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

func (r *Rasteriser) strokeSubpath(segs []strokeSegment, closed bool, d float64) {
	for i := range segs {
		s := &segs[i]
		r.addPolygon(
			s.A.Add(s.N.Mul(d)), s.B.Add(s.N.Mul(d)),
			s.B.Sub(s.N.Mul(d)), s.A.Sub(s.N.Mul(d)),
		)
		if i > 0 {
			r.addJoin(s.A, &segs[i-1], s, d)
		}
	}
	last := &segs[len(segs)-1]
	if closed {
		r.addJoin(segs[0].A, last, &segs[0], d)
		return
	}
	r.addCap(segs[0].A, segs[0].T.Mul(-1), d)
	r.addCap(last.B, last.T, d)
}

// addJoin fills the gap on the outer side of the corner P, where segment
// s1 ends and s2 starts.
func (r *Rasteriser) addJoin(P vec.Vec2, s1, s2 *strokeSegment, d float64) {
	cross := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X
	if math.Abs(cross) < collinearityThreshold && s1.T.Dot(s2.T) > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(P, d)
		return
	}

	// the outer side lies opposite to the turning direction
	side := -1.0
	if cross < 0 {
		side = 1
	}
	o1 := P.Add(s1.N.Mul(side * d))
	o2 := P.Add(s2.N.Mul(side * d))

	if r.Join == graphics.LineJoinMiter {
		bis := s1.N.Add(s2.N)
		if l := bis.Length(); l > zeroLengthThreshold {
			cosHalf := l / 2
			if 1/cosHalf <= r.MiterLimit {
				tip := P.Add(bis.Mul(side * d / (l * cosHalf)))
				r.addPolygon(P, o1, tip, o2)
				return
			}
		}
	}
	r.addPolygon(P, o1, o2)
}

// addCap adds the end shape at P, where T points away from the line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		ext := P.Add(T.Mul(d))
		r.addPolygon(P.Add(N.Mul(d)), ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)), P.Sub(N.Mul(d)))
	}
}

// addDot draws a subpath without length. Only round and square caps
// produce output; a square dot is aligned with the user space axes.
func (r *Rasteriser) addDot(P vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		r.addPolygon(
			vec.Vec2{X: P.X - d, Y: P.Y - d}, vec.Vec2{X: P.X + d, Y: P.Y - d},
			vec.Vec2{X: P.X + d, Y: P.Y + d}, vec.Vec2{X: P.X - d, Y: P.Y + d},
		)
	}
}

// addCircle approximates a circle by a polygon whose sagitta stays below
// Flatness in device space.
func (r *Rasteriser) addCircle(center vec.Vec2, radius float64) {
	devRadius := radius * r.deviceScale()
	n := 4
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	start := len(r.outline)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.outline = append(r.outline, vec.Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin})
	}
	r.closePolygon(start)
}

func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	start := len(r.outline)
	r.outline = append(r.outline, pts...)
	r.closePolygon(start)
}

// closePolygon finishes the polygon which starts at outline[start]. It is
// reversed if necessary so that every polygon has negative signed area, and
// dropped if it has no area at all.
func (r *Rasteriser) closePolygon(start int) {
	poly := r.outline[start:]
	var area float64
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	if len(poly) < 3 || area == 0 {
		r.outline = r.outline[:start]
		return
	}
	if area > 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.polys = append(r.polys, start)
}

// polygon returns the vertices of the i-th outline piece.
func (r *Rasteriser) polygon(i int) []vec.Vec2 {
	end := len(r.outline)
	if i+1 < len(r.polys) {
		end = r.polys[i+1]
	}
	return r.outline[r.polys[i]:end]
}
