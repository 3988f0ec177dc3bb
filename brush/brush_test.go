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

import (
	"image"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

var canvas = image.Rect(0, 0, 200, 120)

func gesture() []vec.Vec2 {
	return []vec.Vec2{{X: 20, Y: 30}, {X: 60, Y: 40}, {X: 61, Y: 40}, {X: 150, Y: 90}}
}

func TestToolString(t *testing.T) {
	for tool, want := range map[Tool]string{Line: "Line", Crayon: "Crayon", Eraser: "Eraser", Tool(9): "Tool(9)"} {
		if got := tool.String(); got != want {
			t.Errorf("%d: got %q, want %q", tool, got, want)
		}
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	br := NewRenderer()
	for _, tool := range []Tool{Line, Pencil, Crayon, Brush, Eraser} {
		t.Run(tool.String(), func(t *testing.T) {
			a := br.Render(tool, gesture(), 24, canvas)
			first := slices.Clone(a.Alpha)
			rect := a.Rect

			// render something else in between to dirty the buffers
			br.Render(Brush, []vec.Vec2{{X: 5, Y: 5}}, 80, canvas)

			b := br.Render(tool, gesture(), 24, canvas)
			if b.Rect != rect || !slices.Equal(first, b.Alpha) {
				t.Error("second rendering differs")
			}
		})
	}
}

func TestRenderRespectsClip(t *testing.T) {
	clip := image.Rect(40, 20, 90, 60)
	br := NewRenderer()
	for _, tool := range []Tool{Line, Pencil, Crayon, Brush} {
		o := br.Render(tool, gesture(), 30, clip)
		if !o.Rect.In(clip) {
			t.Errorf("%s: overlay %v exceeds clip %v", tool, o.Rect, clip)
		}
		if o.At(10, 10) != 0 || o.At(150, 90) != 0 {
			t.Errorf("%s: coverage outside clip", tool)
		}
	}
}

func TestLineCoversPath(t *testing.T) {
	br := NewRenderer()
	o := br.Render(Line, gesture(), 10, canvas)

	// every pixel within 3 units of the path centre line is fully covered
	pts := gesture()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		for k := 0; k <= 20; k++ {
			p := a.Add(b.Sub(a).Mul(float64(k) / 20))
			x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
			if got := o.At(x, y); got < 0.999 {
				t.Fatalf("coverage %g at (%d,%d) on the path", got, x, y)
			}
		}
	}
	if o.At(100, 10) != 0 {
		t.Error("coverage far from the path")
	}
}

func TestPencilIsThinner(t *testing.T) {
	br := NewRenderer()
	sum := func(o *Overlay) float64 {
		var s float64
		for _, a := range o.Alpha {
			s += float64(a)
		}
		return s
	}
	line := sum(br.Render(Line, gesture(), 20, canvas))
	pencil := sum(br.Render(Pencil, gesture(), 20, canvas))
	if pencil <= 0 || pencil >= 0.5*line {
		t.Errorf("pencil %g, line %g", pencil, line)
	}
}

func TestSingleTap(t *testing.T) {
	br := NewRenderer()
	for _, tool := range []Tool{Line, Pencil, Crayon, Brush} {
		o := br.Render(tool, []vec.Vec2{{X: 100, Y: 60}}, 20, canvas)
		if o.Rect.Empty() || o.At(100, 60) == 0 && tool != Crayon {
			t.Errorf("%s: tap left no mark", tool)
		}
	}
}

func TestCrayonHasGaps(t *testing.T) {
	br := NewRenderer()
	o := br.Render(Crayon, []vec.Vec2{{X: 20, Y: 60}, {X: 180, Y: 60}}, 30, canvas)
	holes, solid := 0, 0
	for y := 52; y < 68; y++ {
		for x := 30; x < 170; x++ {
			switch a := o.At(x, y); {
			case a == 0:
				holes++
			case a > 0.5:
				solid++
			}
		}
	}
	if holes == 0 || solid == 0 {
		t.Errorf("holes=%d solid=%d, want both", holes, solid)
	}
}

func TestBrushIsSoft(t *testing.T) {
	br := NewRenderer()
	o := br.Render(Brush, []vec.Vec2{{X: 20, Y: 60}, {X: 180, Y: 60}}, 40, canvas)
	centre := o.At(100, 60)
	edge := o.At(100, 77)
	if centre < 0.999 || edge <= 0 || edge >= 0.5 {
		t.Errorf("centre %g, edge %g", centre, edge)
	}
}

func TestWalkStamps(t *testing.T) {
	var got []vec.Vec2
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 2.5, Y: 0}, {X: 2.5, Y: 0}, {X: 2.5, Y: 4}}
	walkStamps(pts, 2, func(c vec.Vec2) { got = append(got, c) })
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2.5, Y: 1.5}, {X: 2.5, Y: 3.5}, {X: 2.5, Y: 4}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Sub(want[i]).Length() > 1e-9 {
			t.Errorf("stamp %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGapFreeFastStrokes(t *testing.T) {
	// a long jump between two samples must still be covered continuously
	br := NewRenderer()
	o := br.Render(Brush, []vec.Vec2{{X: 10, Y: 60}, {X: 190, Y: 60}}, 16, canvas)
	for x := 10; x < 190; x++ {
		if o.At(x, 60) < 0.99 {
			t.Fatalf("gap at x=%d: %g", x, o.At(x, 60))
		}
	}
}

func TestTextureRange(t *testing.T) {
	for y := -20; y < 20; y++ {
		for x := -20; x < 20; x++ {
			if v := waxTexture(x, y); v < 0 || v > 1 {
				t.Fatalf("wax %g at (%d,%d) out of range", v, x, y)
			}
			if v := pencilGrain(x, y); v < 0.55 || v > 1 {
				t.Fatalf("grain %g at (%d,%d) out of range", v, x, y)
			}
		}
	}
	if softFalloff(0) != 1 || softFalloff(1) != 0 || softFalloff(0.65) <= 0 {
		t.Error("unexpected falloff")
	}
}
