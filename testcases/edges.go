package testcases

// edgeScenes have outlines which end at the canvas border or leave gaps.
var edgeScenes = []Scene{
	{
		Name:     "split",
		Ink:      line(32, -2, 32, 66),
		InkWidth: 2,
		Width:    64,
		Height:   64,
		Regions:  2,
	},
	{
		Name:     "corner_cut",
		Ink:      line(-4, 28, 28, -4),
		InkWidth: 3,
		Width:    64,
		Height:   64,
		Regions:  2,
	},
	{
		// the missing side leaves the inside connected to the outside
		Name:     "open_box",
		Ink:      polyline(20, 44, 20, 20, 44, 20, 44, 44),
		InkWidth: 2,
		Width:    64,
		Height:   64,
		Regions:  1,
	},
	{
		Name:     "border_frame",
		Ink:      rectangle(1, 1, 63, 63),
		InkWidth: 2,
		Width:    64,
		Height:   64,
		Regions:  1,
	},
	{
		// pixel-aligned hairline without anti-aliasing
		Name:     "hairline",
		Ink:      rectangle(10.5, 10.5, 53.5, 53.5),
		InkWidth: 1,
		Width:    64,
		Height:   64,
		Regions:  2,
	},
}
