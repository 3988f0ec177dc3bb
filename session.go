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
	"image"
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coloring/brush"
	"seehuhn.de/go/coloring/pixel"
	"seehuhn.de/go/coloring/segment"
)

// session is the state of the gesture in progress.
type session struct {
	mask *segment.Mask // nil if the gesture started on ink
	path []vec.Vec2    // buffer coordinates

	// parameters of the last preview
	tool   brush.Tool
	size   float64
	colour color.NRGBA
	drawn  bool
}

func (s *session) reset() {
	*s = session{path: s.path[:0]}
}

// MakeMask starts a new gesture at view position p, discarding any
// gesture which was not finished with TouchEnded. It reports whether p
// lies in a fillable region. If it does not, colouring tools draw nothing
// until the next MakeMask.
func (e *Engine) MakeMask(p vec.Vec2) bool {
	e.session.reset()
	if e.base == nil {
		return false
	}
	x, y := e.pixelAt(p)
	id := e.labels.At(x, y)
	if id == segment.Ink {
		Logger().Debug("gesture starts on ink", "x", x, "y", y)
		return false
	}
	e.session.mask = e.labels.Mask(id)
	Logger().Debug("mask installed", "region", id, "bounds", e.session.mask.Bounds())
	return true
}

// UpdatePoint appends view position p, clamped to the canvas, to the
// current gesture. Without a preceding MakeMask, the points form a gesture
// without mask, which only the canvas-wide eraser can draw.
func (e *Engine) UpdatePoint(p vec.Vec2) {
	if e.base == nil {
		return
	}
	e.session.path = append(e.session.path, e.clamped(p))
}

// DrawLine renders the gesture as a solid line of the given width.
func (e *Engine) DrawLine(size float64, c color.NRGBA) (*pixel.Buffer, bool) {
	return e.Draw(brush.Line, size, c)
}

// DrawPencil renders the gesture as a grainy pencil line.
func (e *Engine) DrawPencil(size float64, c color.NRGBA) (*pixel.Buffer, bool) {
	return e.Draw(brush.Pencil, size, c)
}

// DrawCrayon renders the gesture with a waxy crayon texture.
func (e *Engine) DrawCrayon(size float64, c color.NRGBA) (*pixel.Buffer, bool) {
	return e.Draw(brush.Crayon, size, c)
}

// DrawBrush renders the gesture with a soft round brush.
func (e *Engine) DrawBrush(size float64, c color.NRGBA) (*pixel.Buffer, bool) {
	return e.Draw(brush.Brush, size, c)
}

// Erase renders the gesture as an eraser stroke of the given width. See
// [Engine.ErasePolicy] and [Engine.EraseMode].
func (e *Engine) Erase(size float64) (*pixel.Buffer, bool) {
	return e.Draw(brush.Eraser, size, color.NRGBA{})
}

// Draw renders the whole gesture so far with the given tool and returns
// a preview of the canvas with the stroke applied. The colour is made
// opaque; it is ignored by the eraser.
//
// The preview is owned by the engine and is valid until the next call.
// The canvas itself is not changed until TouchEnded. The boolean is false
// if no image has been set.
func (e *Engine) Draw(tool brush.Tool, size float64, c color.NRGBA) (*pixel.Buffer, bool) {
	if e.base == nil {
		return nil, false
	}
	c.A = 255
	s := &e.session
	s.tool, s.size, s.colour = tool, size, c

	e.restorePreview()

	mask := s.mask
	var clip image.Rectangle
	switch {
	case tool == brush.Eraser && e.ErasePolicy == EraseCanvas:
		mask = nil
		clip = e.base.Bounds()
	case mask != nil:
		clip = mask.Bounds()
	}

	o := e.renderer.Render(tool, s.path, size, clip)
	if !o.Rect.Empty() {
		if tool == brush.Eraser {
			e.compositeErase(o, mask)
		} else {
			e.compositeColour(o, mask, c)
		}
		e.dirty = o.Rect
	}
	s.drawn = true
	return e.preview, true
}

// TouchEnded commits the last preview to the canvas and ends the gesture.
// If the canvas was changed after the last preview, the stroke is rendered
// again on top of the new canvas before it is committed.
func (e *Engine) TouchEnded() {
	s := &e.session
	if s.drawn && e.previewStale {
		e.Draw(s.tool, s.size, s.colour)
	}
	if s.drawn && e.preview != nil && !e.dirty.Empty() {
		e.base.CopyRect(e.preview, e.dirty)
		Logger().Debug("stroke committed", "tool", s.tool, "size", s.size, "rect", e.dirty)
		e.dirty = image.Rectangle{}
	}
	s.reset()
}

// restorePreview brings the preview back to a copy of the canvas. Only the
// area changed by the last preview is copied, unless the canvas was
// modified since.
func (e *Engine) restorePreview() {
	b := e.base
	p := e.preview
	if p == nil || p.Width != b.Width || p.Height != b.Height || p.Format != b.Format || e.previewStale {
		e.preview = b.Clone()
		e.previewStale = false
	} else {
		p.CopyRect(b, e.dirty)
	}
	e.dirty = image.Rectangle{}
}

// compositeColour blends c into the preview with the overlay's opacity,
// on pixels inside the mask only. A nil mask allows every pixel.
func (e *Engine) compositeColour(o *brush.Overlay, mask *segment.Mask, c color.NRGBA) {
	e.composite(o, mask, func(x, y int, dst color.NRGBA, a float32) color.NRGBA {
		return pixel.Mix(dst, c, a)
	})
}

func (e *Engine) compositeErase(o *brush.Overlay, mask *segment.Mask) {
	e.composite(o, mask, func(x, y int, dst color.NRGBA, a float32) color.NRGBA {
		target := e.Background
		if e.EraseMode == EraseToOriginal {
			target = e.original.NRGBAAt(x, y)
		}
		if target.A == 0 {
			// fade out without darkening the colour
			dst.A = uint8(float32(dst.A)*(1-a) + 0.5)
			return dst
		}
		return pixel.Mix(dst, target, a)
	})
}

func (e *Engine) composite(o *brush.Overlay, mask *segment.Mask, blend func(x, y int, dst color.NRGBA, a float32) color.NRGBA) {
	r := o.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		alpha := o.Row(y, r.Min.X, r.Max.X)
		var allowed []uint8
		if mask != nil {
			allowed = mask.Row(y, r.Min.X, r.Max.X)
		}
		for i, a := range alpha {
			if a <= 0 || allowed != nil && allowed[i] == 0 {
				continue
			}
			x := r.Min.X + i
			e.preview.SetNRGBA(x, y, blend(x, y, e.base.NRGBAAt(x, y), a))
		}
	}
}
