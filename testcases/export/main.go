// Command export writes the segmentation of every scene to JSON, for
// inspecting label assignments outside of Go.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/coloring"
	"seehuhn.de/go/coloring/pixel"
	"seehuhn.de/go/coloring/testcases"
)

const outFile = "testdata/regions.json"

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	e := coloring.New()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			js, err := toJSON(e, category, s)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, s.Name, err))
			}
			out.Scenes = append(out.Scenes, js)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	InkWidth float64       `json:"ink_width"`
	LineCap  string        `json:"line_cap"`
	LineJoin string        `json:"line_join"`
	Ink      []jsonSegment `json:"ink"`
	Expected int           `json:"expected_regions"`
	Regions  []jsonRegion  `json:"regions"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

type jsonRegion struct {
	ID     uint32 `json:"id"`
	Seed   [2]int `json:"seed"`
	Bounds [4]int `json:"bounds"` // x0, y0, x1, y1
	Area   int    `json:"area"`
}

func toJSON(e *coloring.Engine, category string, s testcases.Scene) (jsonScene, error) {
	regions, err := e.SetImage(testcases.Render(s, pixel.RGBA), 128)
	if err != nil {
		return jsonScene{}, err
	}

	js := jsonScene{
		Name:     category + "_" + s.Name,
		Width:    s.Width,
		Height:   s.Height,
		InkWidth: s.InkWidth,
		LineCap:  s.Cap.String(),
		LineJoin: s.Join.String(),
		Ink:      pathToJSON(s.Ink.Iter()),
		Expected: s.Regions,
	}
	for _, r := range regions {
		js.Regions = append(js.Regions, jsonRegion{
			ID:     r.ID,
			Seed:   [2]int{r.Seed.X, r.Seed.Y},
			Bounds: [4]int{r.Bounds.Min.X, r.Bounds.Min.Y, r.Bounds.Max.X, r.Bounds.Max.Y},
			Area:   r.Area,
		})
	}
	return js, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
