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
package screen

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	gott "github.com/timburks/gottx/types"
)

// A Grid is an in-memory Display. It keeps the character in every cell,
// like a terminal would show it, without any terminal attached.
type Grid struct {
	size          gott.Size
	cells         [][]rune
	cursor        gott.Point
	CursorVisible bool
	pending       []byte
}

func NewGrid(cols, rows int) *Grid {
	g := &Grid{size: gott.Size{Rows: rows, Cols: cols}, CursorVisible: true}
	g.cells = make([][]rune, rows)
	for i := range g.cells {
		g.cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return g
}

func (g *Grid) Size() (cols, rows int) {
	return g.size.Cols, g.size.Rows
}

func (g *Grid) Goto(row, col int) {
	g.pending = g.pending[:0]
	g.cursor = gott.Point{Row: row, Col: col}
}

// Write places each rune of b at the cursor and advances it.
// Output past the right edge is dropped; the grid does not wrap.
func (g *Grid) Write(b []byte) {
	data := append(g.pending, b...)
	for len(data) > 0 && utf8.FullRune(data) {
		c, size := utf8.DecodeRune(data)
		data = data[size:]
		g.set(g.cursor.Row, g.cursor.Col, c)
		w := runewidth.RuneWidth(c)
		if w == 0 {
			w = 1
		}
		g.cursor.Col += w
	}
	g.pending = append(g.pending[:0], data...)
}

func (g *Grid) set(row, col int, c rune) {
	if row < 0 || row >= g.size.Rows || col < 0 || col >= g.size.Cols {
		return
	}
	g.cells[row][col] = c
}

func (g *Grid) ClearToEOL() {
	for col := g.cursor.Col; col < g.size.Cols; col++ {
		g.set(g.cursor.Row, col, ' ')
	}
}

func (g *Grid) Cursor(visible bool) {
	g.CursorVisible = visible
}

func (g *Grid) Flush() error {
	return nil
}

func (g *Grid) GetCursor() gott.Point {
	return g.cursor
}

func (g *Grid) Cell(row, col int) rune {
	if row < 0 || row >= g.size.Rows || col < 0 || col >= g.size.Cols {
		return 0
	}
	return g.cells[row][col]
}

// Line returns the contents of a screen row.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.size.Rows {
		return ""
	}
	return string(g.cells[row])
}

func (g *Grid) String() string {
	lines := make([]string, g.size.Rows)
	for i := range lines {
		lines[i] = strings.TrimRight(g.Line(i), " ")
	}
	return strings.Join(lines, "\n")
}
