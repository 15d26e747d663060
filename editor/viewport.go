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
package editor

// A Viewport tracks which lines of a buffer are visible in a window of
// Height rows and where the cursor sits inside it.
// Row is always CurLine-TopLine after the cursor has been positioned.
type Viewport struct {
	TopLine int // first buffer line shown
	CurLine int // buffer line holding the cursor
	Row     int // cursor row inside the window
	Col     int // cursor column inside the window
	Margin  int // horizontal scroll offset
	Height  int // number of visible rows
}

func (v *Viewport) LineVisible(no int) bool {
	return v.TopLine <= no && no < v.TopLine+v.Height
}

// GotoLine moves the cursor to line no. When the line is already visible
// only Row changes and GotoLine returns false. Otherwise the window scrolls,
// either so that the line lands in the middle (center) or at the top,
// and GotoLine returns true to ask for a full redraw.
// no is not checked against the length of the buffer.
func (v *Viewport) GotoLine(no int, center bool) bool {
	v.CurLine = no

	if v.LineVisible(no) {
		v.Row = no - v.TopLine
		return false
	}

	if center {
		c := v.Height / 2
		if no > c {
			v.TopLine = no - c
			v.Row = c
		} else {
			v.TopLine = 0
			v.Row = no
		}
	} else {
		v.TopLine = no
		v.Row = 0
	}
	return true
}

// ScrollToLine moves the cursor to line no, scrolling by the smallest
// amount that brings it into view. It returns true if the window scrolled.
func (v *Viewport) ScrollToLine(no int) bool {
	v.CurLine = no
	scrolled := false
	if no < v.TopLine {
		v.TopLine = no
		scrolled = true
	} else if no >= v.TopLine+v.Height {
		v.TopLine = no - v.Height + 1
		scrolled = true
	}
	v.Row = no - v.TopLine
	return scrolled
}

// ScrollToColumn places the cursor at logical column pos, moving the
// horizontal margin so that it stays within width columns.
// It returns true if the margin changed.
func (v *Viewport) ScrollToColumn(pos, width int) bool {
	scrolled := false
	if pos < v.Margin {
		v.Margin = pos
		scrolled = true
	} else if width > 0 && pos >= v.Margin+width {
		v.Margin = pos - width + 1
		scrolled = true
	}
	v.Col = pos - v.Margin
	return scrolled
}

// Position returns the logical column of the cursor.
func (v *Viewport) Position() int {
	return v.Col + v.Margin
}
