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

// Package brush renders the free-hand painting tools into a coverage
// overlay.
//
// A [Renderer] turns the whole point path of a gesture into an [Overlay]
// of per-pixel opacity. It knows nothing about colours, masks or the
// canvas; the caller decides where and how the overlay is composited.
// Rendering is a pure function of tool, path, size and clip rectangle.
// In particular, textures are anchored to canvas pixels, so repeating a
// call produces the same overlay.
package brush

import (
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/coloring/raster"
)

// Tool selects how a path is rendered.
type Tool uint8

const (
	// Line draws a solid round-capped stroke of the full size.
	Line Tool = iota

	// Pencil draws a thin stroke with fine paper grain.
	Pencil

	// Crayon places waxy disc stamps which leave small gaps.
	Crayon

	// Brush places soft-edged disc stamps.
	Brush

	// Eraser has the geometry of Line.
	Eraser
)

func (t Tool) String() string {
	switch t {
	case Line:
		return "Line"
	case Pencil:
		return "Pencil"
	case Crayon:
		return "Crayon"
	case Brush:
		return "Brush"
	case Eraser:
		return "Eraser"
	default:
		return fmt.Sprintf("Tool(%d)", uint8(t))
	}
}

// Stamp spacing as a fraction of the tool size.
const (
	crayonSpacing = 1.0 / 6
	brushSpacing  = 1.0 / 8
)

// pencilWidth is the pencil stroke width as a fraction of the tool size.
const pencilWidth = 0.4

// Overlay holds the opacity of a rendered stroke for the pixels in Rect.
type Overlay struct {
	Rect image.Rectangle

	// Alpha holds Rect.Dx() values per row, in [0, 1].
	Alpha []float32
}

// At returns the opacity at (x, y), or 0 outside Rect.
func (o *Overlay) At(x, y int) float32 {
	if !(image.Point{X: x, Y: y}).In(o.Rect) {
		return 0
	}
	return o.Alpha[(y-o.Rect.Min.Y)*o.Rect.Dx()+x-o.Rect.Min.X]
}

// Row returns the opacities of pixels [x0, x1) in row y, which must lie
// inside Rect.
func (o *Overlay) Row(y, x0, x1 int) []float32 {
	start := (y-o.Rect.Min.Y)*o.Rect.Dx() + x0 - o.Rect.Min.X
	return o.Alpha[start : start+x1-x0]
}

// Renderer draws tool strokes. It reuses its buffers between calls and is
// not safe for concurrent use.
type Renderer struct {
	r       *raster.Rasteriser
	overlay Overlay
	shape   path.Data
	texture func(x, y int) float32

	// current soft stamp
	centre vec.Vec2
	radius float64
}

// NewRenderer allocates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{r: raster.NewRasteriser(rect.Rect{})}
}

// Render draws pts with the given tool and size. Only pixels inside clip
// are computed. The returned overlay is owned by the renderer and valid
// until the next call; its Rect is empty if nothing was drawn.
func (br *Renderer) Render(tool Tool, pts []vec.Vec2, size float64, clip image.Rectangle) *Overlay {
	size = max(size, 1)
	br.begin(pts, size, clip)
	if len(pts) == 0 || br.overlay.Rect.Empty() {
		return &br.overlay
	}

	switch tool {
	case Pencil:
		br.stroke(pts, max(pencilWidth*size, 1), pencilGrain)
	case Crayon:
		br.stampUnion(pts, size, crayonSpacing*size, waxTexture)
	case Brush:
		br.stampSoft(pts, size, brushSpacing*size)
	default:
		br.stroke(pts, size, nil)
	}
	return &br.overlay
}

// begin sizes and clears the overlay for a stroke of diameter size along
// pts, and points the rasteriser at it.
func (br *Renderer) begin(pts []vec.Vec2, size float64, clip image.Rectangle) {
	var bounds image.Rectangle
	if len(pts) > 0 {
		lo, hi := pts[0], pts[0]
		for _, p := range pts[1:] {
			lo = vec.Vec2{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
			hi = vec.Vec2{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
		}
		pad := size/2 + 1
		bounds = image.Rect(
			int(math.Floor(lo.X-pad)), int(math.Floor(lo.Y-pad)),
			int(math.Ceil(hi.X+pad)), int(math.Ceil(hi.Y+pad)),
		)
	}
	bounds = bounds.Intersect(clip)

	o := &br.overlay
	o.Rect = bounds
	n := bounds.Dx() * bounds.Dy()
	if cap(o.Alpha) < n {
		o.Alpha = make([]float32, n)
	}
	o.Alpha = o.Alpha[:n]
	clear(o.Alpha)

	br.r.Reset(rect.Rect{
		LLx: float64(bounds.Min.X), LLy: float64(bounds.Min.Y),
		URx: float64(bounds.Max.X), URy: float64(bounds.Max.Y),
	})
}

// stroke draws pts as one round-capped, round-joined stroke.
func (br *Renderer) stroke(pts []vec.Vec2, width float64, texture func(x, y int) float32) {
	br.shape.Cmds = br.shape.Cmds[:0]
	br.shape.Coords = br.shape.Coords[:0]
	raster.AppendPolyline(&br.shape, pts)

	br.r.Width = width
	br.r.Cap = graphics.LineCapRound
	br.r.Join = graphics.LineJoinRound
	br.texture = texture
	br.r.Stroke(&br.shape, br.emitMax)
}

// stampUnion places hard disc stamps along pts and fills them all at once.
func (br *Renderer) stampUnion(pts []vec.Vec2, size, spacing float64, texture func(x, y int) float32) {
	br.shape.Cmds = br.shape.Cmds[:0]
	br.shape.Coords = br.shape.Coords[:0]
	walkStamps(pts, spacing, func(c vec.Vec2) {
		raster.AppendCircle(&br.shape, c, size/2)
	})
	br.texture = texture
	br.r.FillNonZero(&br.shape, br.emitMax)
}

// stampSoft places soft disc stamps along pts. Each stamp is rasterised
// separately so that its falloff can be computed from its own centre.
func (br *Renderer) stampSoft(pts []vec.Vec2, size, spacing float64) {
	br.radius = size / 2
	walkStamps(pts, spacing, func(c vec.Vec2) {
		br.shape.Cmds = br.shape.Cmds[:0]
		br.shape.Coords = br.shape.Coords[:0]
		raster.AppendCircle(&br.shape, c, br.radius)
		br.centre = c
		br.r.FillNonZero(&br.shape, br.emitSoft)
	})
}

// emitMax merges a row of coverage into the overlay, keeping the larger
// value where stamps overlap.
func (br *Renderer) emitMax(y, xMin int, coverage []float32) {
	row := br.overlay.Row(y, xMin, xMin+len(coverage))
	for i, c := range coverage {
		if br.texture != nil {
			c *= br.texture(xMin+i, y)
		}
		row[i] = max(row[i], c)
	}
}

func (br *Renderer) emitSoft(y, xMin int, coverage []float32) {
	row := br.overlay.Row(y, xMin, xMin+len(coverage))
	dy := float64(y) + 0.5 - br.centre.Y
	for i, c := range coverage {
		dx := float64(xMin+i) + 0.5 - br.centre.X
		c *= softFalloff(math.Hypot(dx, dy) / br.radius)
		row[i] = max(row[i], c)
	}
}

// walkStamps calls stamp at pts[0] and then every spacing units of arc
// length along the polyline, carrying the remainder across vertices. The
// last point is always stamped, so the stroke reaches the finger.
func walkStamps(pts []vec.Vec2, spacing float64, stamp func(c vec.Vec2)) {
	if len(pts) == 0 {
		return
	}
	spacing = max(spacing, minSpacing)
	stamp(pts[0])
	last := pts[0]
	left := spacing // distance to the next stamp
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		pos := 0.0
		for l-pos >= left {
			pos += left
			last = a.Add(d.Mul(pos / l))
			stamp(last)
			left = spacing
		}
		left -= l - pos
	}
	if end := pts[len(pts)-1]; end != last {
		stamp(end)
	}
}

// minSpacing keeps tiny tools from producing an excessive number of
// stamps.
const minSpacing = 0.5
