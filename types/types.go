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
package types

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Rect is a rectangular region of the character grid.
type Rect struct {
	Origin Point
	Size   Size
}

func NewRect(left, top, width, height int) Rect {
	return Rect{
		Origin: Point{Row: top, Col: left},
		Size:   Size{Rows: height, Cols: width},
	}
}

func (r Rect) Left() int {
	return r.Origin.Col
}

func (r Rect) Top() int {
	return r.Origin.Row
}

func (r Rect) Width() int {
	return r.Size.Cols
}

func (r Rect) Height() int {
	return r.Size.Rows
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return NewRect(r.Left()+n, r.Top()+n, r.Width()-2*n, r.Height()-2*n)
}

// A Key is a decoded non-character key.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEsc
	KeyF1
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyBackspace
	KeyDelete
	KeyTab
	KeyCtrlQ
	KeyUnsupported
)

var keyNames = map[Key]string{
	KeyNone:        "none",
	KeyEnter:       "enter",
	KeyEsc:         "esc",
	KeyF1:          "f1",
	KeyArrowUp:     "up",
	KeyArrowDown:   "down",
	KeyArrowLeft:   "left",
	KeyArrowRight:  "right",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyPgup:        "pgup",
	KeyPgdn:        "pgdn",
	KeyBackspace:   "backspace",
	KeyDelete:      "delete",
	KeyTab:         "tab",
	KeyCtrlQ:       "ctrl-q",
	KeyUnsupported: "unsupported",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// An Event is a single decoded input. Exactly one of Key and Ch is set.
type Event struct {
	Key Key
	Ch  rune
}

// A Display is the raw output surface that widgets draw on.
// Rows and columns are zero-based screen coordinates.
type Display interface {
	Goto(row, col int)
	Write(b []byte)
	ClearToEOL()
	Cursor(visible bool)
	Flush() error
}

// An EventSource blocks until the next input event is available.
type EventSource interface {
	NextEvent() (*Event, error)
}
