// Package coloring implements the painting engine behind a colouring-book
// surface.
//
// An [Engine] is given line art, dark outlines on a light background, in a
// caller-owned [pixel.Buffer]. [Engine.SetImage] classifies every pixel as
// ink or fillable and labels the connected fillable regions once. After
// that, a tap recolours exactly one region with [Engine.Fill], and a
// free-hand gesture paints with one of the brush tools while staying
// inside the region where it started:
//
//	e.MakeMask(p0)          // touch down: pick the region
//	e.UpdatePoint(p1)       // touch moved, any number of times
//	e.DrawCrayon(40, red)   // render a preview of the whole gesture
//	e.TouchEnded()          // commit the last preview
//
// Points are given in view coordinates and mapped to the buffer with
// [Engine.View]. Previews are rendered into an engine-owned copy of the
// buffer, so the line art is only modified by Fill, TouchEnded and
// SetPattern.
//
// An Engine is not safe for concurrent use. Touch handling is expected to
// call it from a single goroutine, one gesture at a time.
package coloring
