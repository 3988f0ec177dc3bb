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
	"slices"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/coloring/brush"
	"seehuhn.de/go/coloring/pixel"
	"seehuhn.de/go/coloring/segment"
)

// ErasePolicy selects which pixels the eraser may touch.
type ErasePolicy uint8

const (
	// EraseConfined limits the eraser to the region where the gesture
	// started, like the colouring tools.
	EraseConfined ErasePolicy = iota

	// EraseCanvas lets the eraser work anywhere, including on ink.
	EraseCanvas
)

func (p ErasePolicy) String() string {
	switch p {
	case EraseConfined:
		return "EraseConfined"
	case EraseCanvas:
		return "EraseCanvas"
	default:
		return fmt.Sprintf("ErasePolicy(%d)", uint8(p))
	}
}

// EraseMode selects what erased pixels turn into.
type EraseMode uint8

const (
	// EraseToBackground blends towards Engine.Background.
	EraseToBackground EraseMode = iota

	// EraseToOriginal restores the pixels seen by the last SetImage call.
	EraseToOriginal
)

func (m EraseMode) String() string {
	switch m {
	case EraseToBackground:
		return "EraseToBackground"
	case EraseToOriginal:
		return "EraseToOriginal"
	default:
		return fmt.Sprintf("EraseMode(%d)", uint8(m))
	}
}

// Engine holds the state of one colouring canvas.
// Configuration fields may be changed between calls; Ink, Metric and
// Connectivity take effect at the next SetImage.
type Engine struct {
	// Ink is the colour of the line art.
	Ink color.NRGBA

	Metric       segment.Metric
	Connectivity segment.Connectivity

	// View maps view coordinates, as used for all points, to buffer
	// pixel coordinates.
	View matrix.Matrix

	// Background is the colour left behind by the eraser in
	// EraseToBackground mode. A transparent background clears pixels.
	Background color.NRGBA

	ErasePolicy ErasePolicy
	EraseMode   EraseMode

	// Pattern is the tile applied by SetPattern.
	Pattern image.Image

	// PatternScale resizes the tile before it is applied.
	PatternScale float64

	// PatternOpacity scales the tile's alpha, in [0, 1].
	PatternOpacity float64

	base      *pixel.Buffer
	original  *pixel.Buffer
	labels    *segment.LabelMap
	threshold int
	ink       *image.NRGBA

	session  session
	renderer *brush.Renderer

	// preview equals base except inside dirty, unless previewStale is set
	preview      *pixel.Buffer
	previewStale bool
	dirty        image.Rectangle
}

// New returns an engine with default settings: black ink, Chebyshev colour
// distance, 4-connected regions, identity view, white background,
// confined erasing and the built-in paper pattern.
func New() *Engine {
	return &Engine{
		Ink:            color.NRGBA{A: 255},
		Metric:         segment.MaxChannel,
		Connectivity:   segment.Four,
		View:           matrix.Identity,
		Background:     color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		ErasePolicy:    EraseConfined,
		EraseMode:      EraseToBackground,
		Pattern:        DefaultPattern(),
		PatternScale:   1,
		PatternOpacity: 0.35,
		renderer:       brush.NewRenderer(),
	}
}

// SetImage installs buf as the canvas and segments it. Pixels within
// threshold (0-255) of Ink are line art; all other pixels are grouped into
// connected regions, which are returned in label order. Any gesture in
// progress is discarded.
//
// The engine keeps a reference to buf and modifies it in Fill, TouchEnded
// and SetPattern. The only error is an invalid buffer.
func (e *Engine) SetImage(buf *pixel.Buffer, threshold int) ([]segment.Region, error) {
	start := time.Now()
	threshold = min(max(threshold, 0), 255)
	cl := &segment.Classifier{Ink: e.Ink, Threshold: threshold, Metric: e.Metric}
	labels, err := segment.Segment(buf, cl, e.Connectivity)
	if err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	e.base = buf
	e.original = buf.Clone()
	e.labels = labels
	e.threshold = threshold
	e.ink = nil
	e.session.reset()
	e.preview = nil
	e.dirty = image.Rectangle{}

	Logger().Debug("image segmented",
		"width", buf.Width, "height", buf.Height,
		"threshold", threshold, "metric", e.Metric,
		"regions", len(labels.Regions()),
		"elapsed", time.Since(start))
	return slices.Clone(labels.Regions()), nil
}

// PixelColor returns the colour of buf at view position p. The boolean is
// false if p falls outside the buffer or buf is invalid.
func (e *Engine) PixelColor(buf *pixel.Buffer, p vec.Vec2) (color.NRGBA, bool) {
	if buf.Validate() != nil {
		return color.NRGBA{}, false
	}
	q := e.toBuffer(p)
	inside := q.X >= 0 && q.X < float64(buf.Width) &&
		q.Y >= 0 && q.Y < float64(buf.Height)
	if !inside { // also rejects NaN
		return color.NRGBA{}, false
	}
	return buf.NRGBAAt(int(q.X), int(q.Y)), true
}

// Threshold returns the ink threshold of the last successful SetImage,
// after clamping.
func (e *Engine) Threshold() int {
	return e.threshold
}

// Labels returns the label map of the current image, or nil.
func (e *Engine) Labels() *segment.LabelMap {
	return e.labels
}

// Regions returns the regions of the current image in label order.
func (e *Engine) Regions() []segment.Region {
	if e.labels == nil {
		return nil
	}
	return slices.Clone(e.labels.Regions())
}

// Region returns the region under view position p. The boolean is false
// on ink or if no image is loaded.
func (e *Engine) Region(p vec.Vec2) (segment.Region, bool) {
	if e.labels == nil {
		return segment.Region{}, false
	}
	x, y := e.pixelAt(p)
	return e.labels.Region(e.labels.At(x, y))
}

// InkLayer returns the line art on a transparent canvas: the original
// colours of all ink pixels, fully opaque. Drawing it over the painted
// canvas keeps anti-aliased outlines crisp. The result is nil before the
// first SetImage and must not be modified.
func (e *Engine) InkLayer() *image.NRGBA {
	if e.labels == nil {
		return nil
	}
	if e.ink != nil {
		return e.ink
	}
	w, h := e.original.Width, e.original.Height
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if e.labels.At(x, y) != segment.Ink {
				continue
			}
			c := e.original.NRGBAAt(x, y)
			c.A = 255
			img.SetNRGBA(x, y, c)
		}
	}
	e.ink = img
	return img
}

// toBuffer maps a view position to buffer coordinates.
func (e *Engine) toBuffer(p vec.Vec2) vec.Vec2 {
	m := &e.View
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// clamped maps p to buffer coordinates and moves it inside [0,W)×[0,H).
func (e *Engine) clamped(p vec.Vec2) vec.Vec2 {
	q := e.toBuffer(p)
	w, h := float64(e.base.Width), float64(e.base.Height)
	return vec.Vec2{
		X: clampCoord(q.X, w),
		Y: clampCoord(q.Y, h),
	}
}

// pixelAt returns the pixel under view position p, clamped to the canvas.
func (e *Engine) pixelAt(p vec.Vec2) (int, int) {
	q := e.clamped(p)
	return int(q.X), int(q.Y)
}

func clampCoord(v, limit float64) float64 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	return min(v, math.Nextafter(limit, 0))
}
