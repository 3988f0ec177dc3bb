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

package segment

import (
	"fmt"
	"image"

	"seehuhn.de/go/coloring/pixel"
)

// Ink is the label of pixels which belong to no region.
const Ink uint32 = 0

// Connectivity selects which neighbours join fillable pixels into a region.
type Connectivity uint8

const (
	// Four joins horizontal and vertical neighbours only. Regions which
	// touch at a corner stay separate, which matches how thin diagonal
	// outlines are drawn.
	Four Connectivity = iota

	// Eight also joins diagonal neighbours.
	Eight
)

func (c Connectivity) String() string {
	switch c {
	case Four:
		return "Four"
	case Eight:
		return "Eight"
	default:
		return fmt.Sprintf("Connectivity(%d)", uint8(c))
	}
}

// Run is a horizontal span of pixels [X0, X1) in row Y.
type Run struct {
	Y, X0, X1 int
}

// Region describes one connected fillable area.
type Region struct {
	ID     uint32          // label, starting at 1 in scan order
	Bounds image.Rectangle // smallest rectangle containing the region
	Seed   image.Point     // first pixel of the region in scan order
	Area   int             // number of pixels
}

// LabelMap assigns every pixel of an image its region label.
// It is read-only once built.
type LabelMap struct {
	Width, Height int

	// Labels holds one label per pixel in row-major order.
	Labels []uint32

	regions  []Region
	runs     []Run // grouped by region, each group in scan order
	runStart []int // runs of region id are runs[runStart[id-1]:runStart[id]]
}

// At returns the label of pixel (x, y), or [Ink] outside the map.
func (m *LabelMap) At(x, y int) uint32 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return Ink
	}
	return m.Labels[y*m.Width+x]
}

// Regions returns the regions ordered by id. The slice must not be
// modified.
func (m *LabelMap) Regions() []Region {
	return m.regions
}

// Region returns the descriptor for the given label.
func (m *LabelMap) Region(id uint32) (Region, bool) {
	if id == Ink || int(id) > len(m.regions) {
		return Region{}, false
	}
	return m.regions[id-1], true
}

// Runs returns the pixel runs of region id in scan order, or nil for
// [Ink] and unknown labels.
func (m *LabelMap) Runs(id uint32) []Run {
	if id == Ink || int(id) > len(m.regions) {
		return nil
	}
	return m.runs[m.runStart[id-1]:m.runStart[id]]
}

// Segment classifies every pixel of buf and labels the connected fillable
// areas. Labels are assigned in the scan order of each region's first
// pixel.
func Segment(buf *pixel.Buffer, cl *Classifier, conn Connectivity) (*LabelMap, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	w, h := buf.Width, buf.Height

	// Approach: collect runs of fillable pixels row by row and join runs
	// of adjacent rows with union-find. The root of every component is
	// its first run, because unions always keep the smaller index.
	var runs []Run
	var parent []int
	reach := 0
	if conn == Eight {
		reach = 1
	}
	prevStart, prevEnd := 0, 0
	for y := range h {
		curStart := len(runs)
		x := 0
		for x < w {
			for x < w && cl.IsInk(buf.NRGBAAt(x, y)) {
				x++
			}
			if x == w {
				break
			}
			x0 := x
			for x < w && !cl.IsInk(buf.NRGBAAt(x, y)) {
				x++
			}
			parent = append(parent, len(runs))
			runs = append(runs, Run{Y: y, X0: x0, X1: x})
		}

		j := prevStart
		for i := curStart; i < len(runs); i++ {
			cur := runs[i]
			for j < prevEnd && runs[j].X1+reach <= cur.X0 {
				j++
			}
			for k := j; k < prevEnd && runs[k].X0 < cur.X1+reach; k++ {
				union(parent, i, k)
			}
		}
		prevStart, prevEnd = curStart, len(runs)
	}

	// Resolve components into dense ids.
	ids := make([]uint32, len(runs))
	var regions []Region
	for i, r := range runs {
		root := find(parent, i)
		if root == i {
			regions = append(regions, Region{
				ID:     uint32(len(regions) + 1),
				Bounds: image.Rect(r.X0, r.Y, r.X1, r.Y+1),
				Seed:   image.Pt(r.X0, r.Y),
			})
			ids[i] = uint32(len(regions))
		} else {
			ids[i] = ids[root]
		}
		reg := &regions[ids[i]-1]
		reg.Bounds = reg.Bounds.Union(image.Rect(r.X0, r.Y, r.X1, r.Y+1))
		reg.Area += r.X1 - r.X0
	}

	m := &LabelMap{
		Width:    w,
		Height:   h,
		Labels:   make([]uint32, w*h),
		regions:  regions,
		runs:     make([]Run, len(runs)),
		runStart: make([]int, len(regions)+1),
	}

	// group the runs by region, keeping scan order within each group
	for _, id := range ids {
		m.runStart[id]++
	}
	for id := 1; id <= len(regions); id++ {
		m.runStart[id] += m.runStart[id-1]
	}
	pos := make([]int, len(regions))
	copy(pos, m.runStart)
	for i, r := range runs {
		k := ids[i] - 1
		m.runs[pos[k]] = r
		pos[k]++
	}

	for i, r := range runs {
		row := m.Labels[r.Y*w:]
		for x := r.X0; x < r.X1; x++ {
			row[x] = ids[i]
		}
	}
	return m, nil
}

func find(parent []int, i int) int {
	for parent[i] != i {
		parent[i] = parent[parent[i]]
		i = parent[i]
	}
	return i
}

func union(parent []int, a, b int) {
	ra, rb := find(parent, a), find(parent, b)
	switch {
	case ra < rb:
		parent[rb] = ra
	case rb < ra:
		parent[ra] = rb
	}
}
