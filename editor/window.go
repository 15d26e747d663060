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

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Screen primitives. Coordinates are absolute screen positions.

func (e *Editor) Goto(row, col int) {
	e.display.Goto(row, col)
}

func (e *Editor) Wr(s string) {
	e.display.Write([]byte(s))
}

func (e *Editor) ClearToEOL() {
	e.display.ClearToEOL()
}

func (e *Editor) Cursor(visible bool) {
	e.display.Cursor(visible)
}

// SetCursor moves the physical cursor to the logical cursor position.
func (e *Editor) SetCursor() {
	e.display.Goto(e.rect.Top()+e.View.Row, e.rect.Left()+e.View.Col)
}

// UpdateScreen redraws every row of the window from the buffer.
func (e *Editor) UpdateScreen() {
	e.display.Cursor(false)
	for i := 0; i < e.View.Height; i++ {
		e.display.Goto(e.rect.Top()+i, e.rect.Left())
		no := e.View.TopLine + i
		if no < e.Buffer.GetRowCount() {
			e.ShowLine(e.Buffer.Line(no))
		} else {
			e.ShowLine("~")
		}
	}
	e.SetCursor()
	e.display.Cursor(true)
}

// printable keeps control characters off the terminal. Each one takes a
// single cell, so screen columns still match buffer columns.
func printable(c rune) rune {
	if unicode.IsControl(c) {
		return ' '
	}
	return c
}

// ShowLine writes the part of line visible past the horizontal margin,
// padded with spaces to the window width so no border is overwritten.
func (e *Editor) ShowLine(line string) {
	width := e.rect.Width()
	text := []rune(line)
	if e.View.Margin < len(text) {
		text = text[e.View.Margin:]
	} else {
		text = nil
	}
	visible := runewidth.Truncate(strings.Map(printable, string(text)), width, "")
	if pad := width - runewidth.StringWidth(visible); pad > 0 {
		visible += strings.Repeat(" ", pad)
	}
	e.display.Write([]byte(visible))
}
