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
)

// A Buffer holds the lines being edited or viewed.
// It is either replaced as a whole or changed one row at a time.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

// SetLines replaces the entire contents of the buffer.
func (b *Buffer) SetLines(lines []string) {
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// LoadBytes replaces the buffer with the lines of a file. Line endings
// may be LF or CRLF, and tabs are expanded to eight spaces.
func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(strings.TrimSuffix(string(bytes), "\n"), "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = strings.Replace(line, "\t", "        ", -1)
	}
	b.SetLines(lines)
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.String()
	}
	return lines
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

// Line returns the text of row i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].String()
	}
	return ""
}

func (b *Buffer) SetLine(i int, text string) {
	if i >= 0 && i < len(b.rows) {
		b.rows[i] = NewRow(text)
	}
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) DeleteCharacter(row, col int) rune {
	if row < len(b.rows) {
		return b.rows[row].DeleteChar(col)
	}
	return 0
}

// SplitRow breaks row at col and inserts the remainder as a new row below it.
func (b *Buffer) SplitRow(row, col int) {
	if row >= len(b.rows) {
		return
	}
	newRow := b.rows[row].Split(col)
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = newRow
}

// JoinRow appends the row below to row and removes it.
func (b *Buffer) JoinRow(row int) {
	if row+1 >= len(b.rows) {
		return
	}
	b.rows[row].Join(b.rows[row+1])
	b.rows = append(b.rows[0:row+1], b.rows[row+2:]...)
}
