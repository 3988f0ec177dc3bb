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
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// grid collects emitted coverage into a dense buffer and checks that
// every row lies inside the clip rectangle.
type grid struct {
	t    *testing.T
	w, h int
	pix  []float32
}

func newGrid(t *testing.T, w, h int) *grid {
	return &grid{t: t, w: w, h: h, pix: make([]float32, w*h)}
}

func (g *grid) emit(y, xMin int, coverage []float32) {
	if y < 0 || y >= g.h || xMin < 0 || xMin+len(coverage) > g.w {
		g.t.Fatalf("row y=%d x=[%d,%d) outside %dx%d clip", y, xMin, xMin+len(coverage), g.w, g.h)
	}
	for i, c := range coverage {
		if c < 0 || c > 1 {
			g.t.Fatalf("coverage %g at (%d,%d) out of range", c, xMin+i, y)
		}
		g.pix[y*g.w+xMin+i] = c
	}
}

func (g *grid) sum() float64 {
	var s float64
	for _, c := range g.pix {
		s += float64(c)
	}
	return s
}

func clipRect(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

// TestTriangleCoverage checks exact coverage for the triangle
// (0,0)→(10,0)→(10,1). The diagonal edge is y = x/10, so pixel x is
// covered by (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	g := newGrid(t, 10, 1)
	NewRasteriser(clipRect(10, 1)).FillNonZero(p, g.emit)

	for x := range 10 {
		want := float32(2*x+1) / 20
		if got := g.pix[x]; math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("pixel %d: got %.4f, want %.4f", x, got, want)
		}
	}
}

func TestImplicitClose(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 8}).
		LineTo(vec.Vec2{X: 2, Y: 8})

	g := newGrid(t, 10, 10)
	NewRasteriser(clipRect(10, 10)).FillNonZero(open, g.emit)
	if s := g.sum(); math.Abs(s-36) > 1e-4 {
		t.Errorf("area %g, want 36", s)
	}
}

func TestEvenOddHole(t *testing.T) {
	p := &path.Data{}
	AppendCircle(p, vec.Vec2{X: 32, Y: 32}, 30)
	AppendCircle(p, vec.Vec2{X: 32, Y: 32}, 15)

	r := NewRasteriser(clipRect(64, 64))
	eo := newGrid(t, 64, 64)
	r.FillEvenOdd(p, eo.emit)
	nz := newGrid(t, 64, 64)
	r.FillNonZero(p, nz.emit)

	if c := eo.pix[32*64+32]; c != 0 {
		t.Errorf("even-odd centre coverage %g, want 0", c)
	}
	if c := nz.pix[32*64+32]; c != 1 {
		t.Errorf("nonzero centre coverage %g, want 1", c)
	}
	want := math.Pi * (30*30 - 15*15)
	if s := eo.sum(); math.Abs(s-want) > 0.02*want {
		t.Errorf("ring area %g, want %g", s, want)
	}
}

func TestClip(t *testing.T) {
	p := &path.Data{}
	AppendCircle(p, vec.Vec2{X: 0, Y: 0}, 50)

	r := NewRasteriser(rect.Rect{LLx: 10, LLy: 10, URx: 20, URy: 20})
	g := newGrid(t, 20, 20)
	n := 0
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		if y < 10 || xMin < 10 {
			t.Fatalf("row y=%d xMin=%d outside clip", y, xMin)
		}
		n += len(coverage)
		g.emit(y, xMin, coverage)
	})
	if n != 100 || math.Abs(g.sum()-100) > 1e-3 {
		t.Errorf("got %d pixels with total %g, want 100 fully covered", n, g.sum())
	}
}

func TestCTM(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	r := NewRasteriser(clipRect(20, 20))
	r.CTM = matrix.Matrix{4, 0, 0, 4, 3, 5}
	g := newGrid(t, 20, 20)
	r.FillNonZero(p, g.emit)

	if s := g.sum(); math.Abs(s-16) > 1e-4 {
		t.Errorf("area %g, want 16", s)
	}
	if g.pix[5*20+3] != 1 || g.pix[4*20+3] != 0 {
		t.Error("square not translated to (3,5)")
	}
}

// TestApproachesAgree renders random polygons with both scan strategies.
func TestApproachesAgree(t *testing.T) {
	const size = 48
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := range 40 {
		p := &path.Data{}
		n := 3 + rng.IntN(8)
		for i := range n {
			v := vec.Vec2{X: rng.Float64()*60 - 6, Y: rng.Float64()*60 - 6}
			if i == 0 {
				p.MoveTo(v)
			} else {
				p.LineTo(v)
			}
		}
		p.Close()

		r := NewRasteriser(clipRect(size, size))
		for _, evenOdd := range []bool{false, true} {
			var res [2]*grid
			for k, threshold := range []int{1 << 30, 0} {
				r.smallPathThreshold = threshold
				res[k] = newGrid(t, size, size)
				if evenOdd {
					r.FillEvenOdd(p, res[k].emit)
				} else {
					r.FillNonZero(p, res[k].emit)
				}
			}
			for i := range res[0].pix {
				if d := math.Abs(float64(res[0].pix[i] - res[1].pix[i])); d > 1e-4 {
					t.Fatalf("trial %d (evenOdd=%t): pixel %d differs by %g", trial, evenOdd, i, d)
				}
			}
		}
	}
}

// Circles are flattened to inscribed polygons, so round shapes are checked
// against a range: never more than the exact area, and at most a few
// percent less.

func TestStrokeArea(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 20}).
		LineTo(vec.Vec2{X: 60, Y: 20})

	cases := []struct {
		name   string
		cap    graphics.LineCapStyle
		lo, hi float64
	}{
		{"butt", graphics.LineCapButt, 300 - 1e-3, 300 + 1e-3},
		{"square", graphics.LineCapSquare, 336 - 1e-3, 336 + 1e-3},
		{"round", graphics.LineCapRound, 300 + 0.85*9*math.Pi, 300 + 9*math.Pi + 1e-3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasteriser(clipRect(80, 40))
			r.Width = 6
			r.Cap = tc.cap
			g := newGrid(t, 80, 40)
			r.Stroke(line, g.emit)
			if s := g.sum(); s < tc.lo || s > tc.hi {
				t.Errorf("area %g, want [%g, %g]", s, tc.lo, tc.hi)
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 40, Y: 10}).
		LineTo(vec.Vec2{X: 40, Y: 40})

	// The two legs cover 236 pixels. The outer corner adds a 2x2 square
	// for miter joins, half of it for bevels and a quarter disc for
	// round joins.
	cases := []struct {
		join   graphics.LineJoinStyle
		lo, hi float64
	}{
		{graphics.LineJoinMiter, 240 - 1e-3, 240 + 1e-3},
		{graphics.LineJoinBevel, 238 - 1e-3, 238 + 1e-3},
		{graphics.LineJoinRound, 238, 236 + math.Pi + 1e-3},
	}
	for _, tc := range cases {
		t.Run(tc.join.String(), func(t *testing.T) {
			r := NewRasteriser(clipRect(50, 50))
			r.Width = 4
			r.Join = tc.join
			g := newGrid(t, 50, 50)
			r.Stroke(corner, g.emit)
			if s := g.sum(); s < tc.lo || s > tc.hi {
				t.Errorf("area %g, want [%g, %g]", s, tc.lo, tc.hi)
			}
		})
	}
}

func TestMiterLimit(t *testing.T) {
	// a corner of about 11.4 degrees needs a miter ratio above 10
	spike := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 30}).
		LineTo(vec.Vec2{X: 45, Y: 30}).
		LineTo(vec.Vec2{X: 5, Y: 22})

	r := NewRasteriser(clipRect(100, 60))
	r.Width = 4
	limited := newGrid(t, 100, 60)
	r.Stroke(spike, limited.emit)

	r.MiterLimit = 100
	unlimited := newGrid(t, 100, 60)
	r.Stroke(spike, unlimited.emit)

	if unlimited.sum() <= limited.sum()+5 {
		t.Errorf("miter limit had no effect: %g vs %g", limited.sum(), unlimited.sum())
	}
}

func TestStrokeSelfOverlap(t *testing.T) {
	// the path retraces itself, which must not darken anything
	back := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 20}).
		LineTo(vec.Vec2{X: 60, Y: 20}).
		LineTo(vec.Vec2{X: 10, Y: 20}).
		LineTo(vec.Vec2{X: 60, Y: 20})

	r := NewRasteriser(clipRect(80, 40))
	r.Width = 6
	g := newGrid(t, 80, 40)
	r.Stroke(back, g.emit)
	if s := g.sum(); math.Abs(s-300) > 1e-3 {
		t.Errorf("area %g, want 300", s)
	}
}

func TestDots(t *testing.T) {
	dot := AppendPolyline(&path.Data{}, []vec.Vec2{{X: 20, Y: 20}})

	r := NewRasteriser(clipRect(40, 40))
	r.Width = 10

	r.Cap = graphics.LineCapButt
	butt := newGrid(t, 40, 40)
	r.Stroke(dot, butt.emit)
	if s := butt.sum(); s != 0 {
		t.Errorf("butt dot area %g", s)
	}

	r.Cap = graphics.LineCapSquare
	square := newGrid(t, 40, 40)
	r.Stroke(dot, square.emit)
	if s := square.sum(); math.Abs(s-100) > 1e-3 {
		t.Errorf("square dot area %g, want 100", s)
	}

	r.Cap = graphics.LineCapRound
	round := newGrid(t, 40, 40)
	r.Stroke(dot, round.emit)
	if s := round.sum(); s < 0.85*25*math.Pi || s > 25*math.Pi+1e-3 {
		t.Errorf("round dot area %g, want about %g", s, 25*math.Pi)
	}
}

func TestCircleArea(t *testing.T) {
	p := AppendCircle(&path.Data{}, vec.Vec2{X: 25.5, Y: 24.25}, 20)
	g := newGrid(t, 50, 50)
	NewRasteriser(clipRect(50, 50)).FillNonZero(p, g.emit)
	want := 400 * math.Pi
	if s := g.sum(); s < 0.98*want || s > want+1e-3 {
		t.Errorf("area %g, want %g", s, want)
	}
}

func TestResetKeepsBuffers(t *testing.T) {
	r := NewRasteriser(clipRect(10, 10))
	r.Width = 7
	r.Cap = graphics.LineCapRound
	r.CTM = matrix.Scale(2, 2)
	r.Reset(clipRect(20, 20))
	if r.Width != 1 || r.Cap != graphics.LineCapButt || r.CTM != matrix.Identity {
		t.Errorf("Reset kept stroke parameters: %+v", r)
	}
	if r.Clip.URx != 20 || r.MiterLimit != defaultMiterLimit || r.Flatness != defaultFlatness {
		t.Errorf("Reset: unexpected parameters %+v", r)
	}
}
