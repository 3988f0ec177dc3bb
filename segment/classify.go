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

// Package segment splits line art into ink and connected fillable regions.
//
// [Segment] scans a [pixel.Buffer] once, classifies each pixel with a
// [Classifier] and labels every maximal connected set of fillable pixels.
// The resulting [LabelMap] answers "which region is this pixel in" in
// constant time and enumerates a region's pixels as horizontal runs, so
// colouring or masking a region costs time proportional to its size.
package segment

import (
	"fmt"
	"image/color"
)

// Metric selects how the distance between a pixel and the ink colour is
// measured.
type Metric uint8

const (
	// MaxChannel uses the largest per-channel difference of R, G and B.
	MaxChannel Metric = iota

	// Luminance uses the difference in Rec. 601 luma.
	Luminance
)

func (m Metric) String() string {
	switch m {
	case MaxChannel:
		return "MaxChannel"
	case Luminance:
		return "Luminance"
	default:
		return fmt.Sprintf("Metric(%d)", uint8(m))
	}
}

// Classifier decides whether a pixel belongs to the line art.
type Classifier struct {
	// Ink is the reference colour of the outlines, normally black.
	Ink color.NRGBA

	// Threshold is the largest distance, 0-255, at which a pixel still
	// counts as ink.
	Threshold int

	Metric Metric
}

// Distance returns the distance between c and the ink colour, in 0-255.
func (cl *Classifier) Distance(c color.NRGBA) int {
	switch cl.Metric {
	case Luminance:
		return absInt(luma(c) - luma(cl.Ink))
	default:
		return max(
			absInt(int(c.R)-int(cl.Ink.R)),
			absInt(int(c.G)-int(cl.Ink.G)),
			absInt(int(c.B)-int(cl.Ink.B)),
		)
	}
}

// IsInk reports whether c is part of the line art. Fully transparent
// pixels are never ink.
func (cl *Classifier) IsInk(c color.NRGBA) bool {
	if c.A == 0 {
		return false
	}
	return cl.Distance(c) <= cl.Threshold
}

func luma(c color.NRGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
