package testcases

import "seehuhn.de/go/pdf/graphics"

// crossingScenes have outlines which intersect, so that regions meet at
// corners.
var crossingScenes = []Scene{
	{
		Name:     "venn",
		Ink:      join(circle(36, 32, 20), circle(36+vennOffset(20), 32, 20)),
		InkWidth: 3,
		Width:    100,
		Height:   64,
		Regions:  4,
	},
	{
		Name:     "plus",
		Ink:      join(line(32, -2, 32, 66), line(-2, 32, 66, 32)),
		InkWidth: 2,
		Width:    64,
		Height:   64,
		Regions:  4,
	},
	{
		Name:     "hash",
		Ink:      join(line(20, -2, 20, 66), line(44, -2, 44, 66), line(-2, 20, 66, 20), line(-2, 44, 66, 44)),
		InkWidth: 2,
		Width:    64,
		Height:   64,
		Regions:  9,
	},
	{
		Name:     "diagonal_cross",
		Ink:      join(line(-4, -4, 68, 68), line(68, -4, -4, 68)),
		InkWidth: 3,
		Width:    64,
		Height:   64,
		Cap:      graphics.LineCapSquare,
		Regions:  4,
	},
}
