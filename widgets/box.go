//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package widgets

import (
	"bytes"

	gott "github.com/timburks/gottx/types"
)

// Box-drawing glyphs in UTF-8.
var (
	glyphTopLeft     = []byte("\xe2\x94\x8c") // ┌
	glyphTopRight    = []byte("\xe2\x94\x90") // ┐
	glyphBottomLeft  = []byte("\xe2\x94\x94") // └
	glyphBottomRight = []byte("\xe2\x94\x98") // ┘
	glyphHorizontal  = []byte("\xe2\x94\x80") // ─
	glyphVertical    = []byte("\xe2\x94\x82") // │
)

// DrawBox outlines r. The cursor is positioned before each run of glyphs.
func DrawBox(d gott.Display, r gott.Rect) {
	left, top := r.Left(), r.Top()
	bottom := top + r.Height() - 1
	right := left + r.Width() - 1

	inner := r.Width() - 2
	if inner < 0 {
		inner = 0
	}
	hor := bytes.Repeat(glyphHorizontal, inner)

	d.Goto(top, left)
	d.Write(glyphTopLeft)
	d.Write(hor)
	d.Write(glyphTopRight)

	d.Goto(bottom, left)
	d.Write(glyphBottomLeft)
	d.Write(hor)
	d.Write(glyphBottomRight)

	for row := top + 1; row < bottom; row++ {
		d.Goto(row, left)
		d.Write(glyphVertical)
		d.Goto(row, right)
		d.Write(glyphVertical)
	}
}

// ClearBox fills r with spaces, one row at a time.
func ClearBox(d gott.Display, r gott.Rect) {
	if r.Width() <= 0 {
		return
	}
	blank := bytes.Repeat([]byte(" "), r.Width())
	for row := r.Top(); row < r.Top()+r.Height(); row++ {
		d.Goto(row, r.Left())
		d.Write(blank)
	}
}
