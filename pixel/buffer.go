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

// Package pixel provides a read/write view over caller-owned 8-bit image
// memory.
//
// A [Buffer] never allocates or frees the memory it describes. Pixels are
// stored with straight (non-premultiplied) alpha, four bytes per pixel, in
// either RGBA or BGRA byte order.
package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// BytesPerPixel is the size of one pixel in every supported format.
const BytesPerPixel = 4

// ErrInvalidBuffer is returned (wrapped) for nil, empty or truncated buffers.
var ErrInvalidBuffer = errors.New("invalid pixel buffer")

// Format describes the byte order of a pixel.
type Format uint8

const (
	// RGBA stores red, green, blue, alpha.
	RGBA Format = iota

	// BGRA stores blue, green, red, alpha, as used by 32BGRA surfaces.
	BGRA
)

func (f Format) String() string {
	switch f {
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Buffer is a view over externally owned image memory.
// Row y starts at Pix[y*Stride].
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
	Stride int // bytes per row, at least Width*BytesPerPixel
	Format Format
}

// New allocates a tightly packed buffer. It is mainly useful for tests
// and for buffers owned by the engine itself.
func New(width, height int, format Format) *Buffer {
	return &Buffer{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
		Stride: width * BytesPerPixel,
		Format: format,
	}
}

// Validate reports whether b describes usable memory.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if b.Stride < b.Width*BytesPerPixel {
		return fmt.Errorf("%w: stride %d < %d", ErrInvalidBuffer, b.Stride, b.Width*BytesPerPixel)
	}
	if b.Format != RGBA && b.Format != BGRA {
		return fmt.Errorf("%w: unknown format %s", ErrInvalidBuffer, b.Format)
	}
	need := b.Stride*(b.Height-1) + b.Width*BytesPerPixel
	if len(b.Pix) < need {
		return fmt.Errorf("%w: %d bytes, need %d", ErrInvalidBuffer, len(b.Pix), need)
	}
	return nil
}

// Contains reports whether (x, y) addresses a pixel of b.
func (b *Buffer) Contains(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Offset returns the index of the first byte of pixel (x, y).
func (b *Buffer) Offset(x, y int) int {
	return y*b.Stride + x*BytesPerPixel
}

// NRGBAAt returns the colour of pixel (x, y). The coordinates must lie
// inside the buffer.
func (b *Buffer) NRGBAAt(x, y int) color.NRGBA {
	p := b.Pix[b.Offset(x, y):]
	if b.Format == BGRA {
		return color.NRGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
	}
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// SetNRGBA sets pixel (x, y). The coordinates must lie inside the buffer.
func (b *Buffer) SetNRGBA(x, y int, c color.NRGBA) {
	p := b.Pix[b.Offset(x, y):]
	if b.Format == BGRA {
		p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
		return
	}
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Row returns the bytes of pixels [x0, x1) in row y.
func (b *Buffer) Row(y, x0, x1 int) []byte {
	start := b.Offset(x0, y)
	return b.Pix[start : start+(x1-x0)*BytesPerPixel]
}

// FillRun sets pixels [x0, x1) of row y to c.
func (b *Buffer) FillRun(y, x0, x1 int, c color.NRGBA) {
	p0, p1, p2 := c.R, c.G, c.B
	if b.Format == BGRA {
		p0, p2 = p2, p0
	}
	row := b.Row(y, x0, x1)
	for i := 0; i < len(row); i += BytesPerPixel {
		row[i], row[i+1], row[i+2], row[i+3] = p0, p1, p2, c.A
	}
}

// Clone returns a tightly packed copy of b with the same format.
func (b *Buffer) Clone() *Buffer {
	c := New(b.Width, b.Height, b.Format)
	c.CopyRect(b, image.Rect(0, 0, b.Width, b.Height))
	return c
}

// CopyRect copies the pixels inside r from src into b. Both buffers must
// have the same size and format; r is clipped to the buffer.
func (b *Buffer) CopyRect(src *Buffer, r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, b.Width, b.Height))
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(b.Row(y, r.Min.X, r.Max.X), src.Row(y, r.Min.X, r.Max.X))
	}
}

// Bounds implements [image.Image].
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// ColorModel implements [image.Image].
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements [image.Image].
func (b *Buffer) At(x, y int) color.Color {
	if !b.Contains(x, y) {
		return color.NRGBA{}
	}
	return b.NRGBAAt(x, y)
}

// Set implements [draw.Image].
func (b *Buffer) Set(x, y int, c color.Color) {
	if !b.Contains(x, y) {
		return
	}
	b.SetNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// Mix moves dst toward c by the fraction a, which must lie in [0, 1].
// All four channels are interpolated, so mixing toward a transparent
// colour clears alpha as well.
func Mix(dst, c color.NRGBA, a float32) color.NRGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return dst
	}
	mix := func(d, s uint8) uint8 {
		return uint8(float32(d) + (float32(s)-float32(d))*a + 0.5)
	}
	return color.NRGBA{
		R: mix(dst.R, c.R),
		G: mix(dst.G, c.G),
		B: mix(dst.B, c.B),
		A: mix(dst.A, c.A),
	}
}
