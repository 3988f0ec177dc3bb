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

package brush

// Textures are functions of canvas pixel coordinates. They never depend on
// the path, so a texture stays put under the finger instead of sliding
// along with the stroke.

// hash mixes the pixel coordinates into 32 pseudo-random bits.
func hash(x, y int) uint32 {
	h := uint32(x)*0x9e3779b1 ^ uint32(y)*0x85ebca77
	h ^= h >> 15
	h *= 0x2c1b3c6d
	h ^= h >> 12
	h *= 0x297a2d39
	h ^= h >> 15
	return h
}

// noise returns a value in [0, 1) for the given pixel.
func noise(x, y int) float32 {
	return float32(hash(x, y)>>8) / (1 << 24)
}

// pencilGrain lets some of the paper show through a pencil line.
func pencilGrain(x, y int) float32 {
	return 0.55 + 0.45*noise(x, y)
}

// waxCell is the size in pixels of the coarse wax pattern.
const waxCell = 4

// waxTexture imitates crayon wax catching on paper fibres: a smooth
// pattern on a waxCell grid, cut off below a threshold to leave gaps,
// plus some fine grain.
func waxTexture(x, y int) float32 {
	cx, fx := divFloor(x, waxCell)
	cy, fy := divFloor(y, waxCell)
	tx := smooth(float32(fx) / waxCell)
	ty := smooth(float32(fy) / waxCell)

	top := lerp(noise(cx, cy), noise(cx+1, cy), tx)
	bottom := lerp(noise(cx, cy+1), noise(cx+1, cy+1), tx)
	v := lerp(top, bottom, ty)

	const gap = 0.22
	if v < gap {
		return 0
	}
	v = min((v-gap)/(1-gap)*1.6, 1)
	return v * (0.8 + 0.2*noise(x, y))
}

// softFalloff maps the distance from a stamp centre, relative to its
// radius, to opacity. It is 1 in the middle and fades out smoothly towards
// the rim.
func softFalloff(t float64) float32 {
	if t >= 1 {
		return 0
	}
	const core = 0.3
	if t <= core {
		return 1
	}
	s := (t - core) / (1 - core)
	return float32(1 - s*s*(3-2*s))
}

// divFloor divides rounding towards negative infinity and returns the
// quotient and the non-negative remainder.
func divFloor(a, b int) (q, r int) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

func smooth(t float32) float32 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
