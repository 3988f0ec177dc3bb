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

// Package raster converts paths into anti-aliased pixel coverage.
//
// A [Rasteriser] fills paths with the nonzero or even-odd rule, or strokes
// them with PDF line caps and joins. Coverage is handed to the caller one
// row at a time through an [EmitFunc]; the rasteriser never owns the
// destination pixels. Brush stamps, the ink of test scenes and the default
// paper pattern are all drawn through this package.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row, starting at column xMin.
// Coverage values lie in [0, 1]. The slice is only valid for the duration
// of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasteriser converts paths to pixel coverage.
// One instance is meant to be reused for many paths: internal buffers grow
// as needed and are never released, so steady-state use does not allocate.
type Rasteriser struct {
	// CTM maps user space to device space. It must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates. Its corners must be
	// integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio of miter length to line width. Sharper
	// corners are drawn as bevels. Must be at least 1.
	MiterLimit float64

	// smallPathThreshold is the largest bounding box area, in pixels, for
	// which the whole path is accumulated at once.
	smallPathThreshold int

	cover     []float32
	area      []float32
	edges     []edge
	box       devBox
	active    []int
	touched   []bool
	crossings []float64

	// stroking state
	segs     []strokeSegment
	subpaths []subpath
	dots     []vec.Vec2
	outline  []vec.Vec2
	polys    []int
}

// NewRasteriser returns a rasteriser for the given clip rectangle, with
// the PDF defaults for all stroke parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.smallPathThreshold = smallPathThreshold
}

// FillNonZero fills p using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) fill(p *path.Data, rule fillRule, emit EmitFunc) {
	r.beginEdges()
	r.addPathEdges(p)
	r.rasterise(rule, emit)
}

// rasterise turns the collected edge list into coverage rows.
func (r *Rasteriser) rasterise(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.box.pixels(r.Clip)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// addPathEdges walks the path data directly, flattening curves into
// device space edges.
func (r *Rasteriser) addPathEdges(p *path.Data) {
	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.box.reset()
}

// addEdge transforms a user space line segment to device space and adds it
// to the edge list. Horizontal edges carry no coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := &r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})
	r.box.add(x0, y0, x1, y1)
}

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yRange() (float64, float64) {
	return min(e.y0, e.y1), max(e.y0, e.y1)
}

// xAt returns the x coordinate of the edge's supporting line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// devBox is the bounding box of the current edge list in device space.
type devBox struct {
	xMin, xMax float64
	yMin, yMax float64
	empty      bool
}

func (b *devBox) reset() {
	*b = devBox{empty: true}
}

func (b *devBox) add(x0, y0, x1, y1 float64) {
	if b.empty {
		b.xMin, b.xMax = min(x0, x1), max(x0, x1)
		b.yMin, b.yMax = min(y0, y1), max(y0, y1)
		b.empty = false
		return
	}
	b.xMin = min(b.xMin, x0, x1)
	b.xMax = max(b.xMax, x0, x1)
	b.yMin = min(b.yMin, y0, y1)
	b.yMax = max(b.yMax, y0, y1)
}

// pixels returns the half-open pixel ranges touched by the box, clipped.
func (b *devBox) pixels(clip rect.Rect) (xMin, xMax, yMin, yMax int, ok bool) {
	if b.empty {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(b.xMin)), int(clip.LLx))
	xMax = min(int(math.Floor(b.xMax))+1, int(clip.URx))
	yMin = max(int(math.Floor(b.yMin)), int(clip.LLy))
	yMax = min(int(math.Floor(b.yMax))+1, int(clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

const (
	// defaultFlatness is well below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript. Corners sharper than
	// about 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0
)

const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold selects between the two scan strategies, see
	// [Rasteriser.fillSmallPath] and [Rasteriser.fillLargePath].
	smallPathThreshold = 65536

	// zeroLengthThreshold is the length below which stroke segments are
	// dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the sine of the turning angle below which
	// consecutive segments need no join.
	collinearityThreshold = 1e-6
)
