package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// BenchmarkRasteriserO fills an "O" shape made of two circles.
func BenchmarkRasteriserO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := clipRect(size, size)
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			c := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
			o := &path.Data{}
			AppendCircle(o, c, float64(size)*0.45)
			AppendCircle(o, c, float64(size)*0.30)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillEvenOdd(o, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO draws the same shape with golang.org/x/image/vector.
func BenchmarkVectorO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size) / 2
			outer := float32(size) * 0.45
			inner := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, c, c, outer, false)
				addCircleToVector(r, c, c, inner, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkStrokeGesture strokes a wavy finger path with round caps and
// joins, as the line tool does for every preview.
func BenchmarkStrokeGesture(b *testing.B) {
	const size = 1024
	pts := make([]vec.Vec2, 200)
	for i := range pts {
		x := 20 + float64(i)*4.5
		pts[i] = vec.Vec2{X: x, Y: size/2 + 200*math.Sin(x/80)}
	}
	stroke := AppendPolyline(&path.Data{}, pts)

	r := NewRasteriser(clipRect(size, size))
	emit := func(y, xMin int, coverage []float32) {}
	b.ReportAllocs()
	for b.Loop() {
		r.Width = 50
		r.Cap = graphics.LineCapRound
		r.Join = graphics.LineJoinRound
		r.Stroke(stroke, emit)
	}
}

// addCircleToVector adds a circle made of four cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	k := float32(kappa) * radius
	r.MoveTo(cx+radius, cy)
	if clockwise {
		r.CubeTo(cx+radius, cy-k, cx+k, cy-radius, cx, cy-radius)
		r.CubeTo(cx-k, cy-radius, cx-radius, cy-k, cx-radius, cy)
		r.CubeTo(cx-radius, cy+k, cx-k, cy+radius, cx, cy+radius)
		r.CubeTo(cx+k, cy+radius, cx+radius, cy+k, cx+radius, cy)
	} else {
		r.CubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
		r.CubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
		r.CubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
		r.CubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	}
	r.ClosePath()
}
