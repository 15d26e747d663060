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
	gott "github.com/timburks/gottx/types"
)

// A KeyHandler receives each input event of a Loop. Returning anything
// other than KeyNone ends the loop with that key.
type KeyHandler func(ev *gott.Event) gott.Key

// The Editor edits a Buffer inside a fixed rectangle of the screen.
type Editor struct {
	Buffer  *Buffer
	View    Viewport
	rect    gott.Rect
	display gott.Display
	events  gott.EventSource
}

func NewEditor(rect gott.Rect, display gott.Display, events gott.EventSource) *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.rect = rect
	e.display = display
	e.events = events
	e.View.Height = rect.Height()
	return e
}

func (e *Editor) GetRect() gott.Rect {
	return e.rect
}

func (e *Editor) GetDisplay() gott.Display {
	return e.display
}

func (e *Editor) GetEvents() gott.EventSource {
	return e.events
}

// SetLines replaces the buffer contents, keeping the cursor on an existing line.
func (e *Editor) SetLines(lines []string) {
	e.Buffer.SetLines(lines)
	if e.View.CurLine >= e.Buffer.GetRowCount() {
		e.View.TopLine = 0
		e.View.CurLine = 0
		e.View.Row = 0
	}
}

// CurrentLine returns the text of the line under the cursor.
func (e *Editor) CurrentLine() string {
	return e.Buffer.Line(e.View.CurLine)
}

// GotoLine moves the cursor to line no, scrolling if needed. It returns
// true when the whole window was redrawn.
func (e *Editor) GotoLine(no int, center bool) bool {
	if e.View.GotoLine(no, center) {
		e.UpdateScreen()
		return true
	}
	e.SetCursor()
	return false
}

// AdjustCursorEOL keeps the cursor from going past the end of its line.
// It returns true if the horizontal margin changed.
func (e *Editor) AdjustCursorEOL() bool {
	pos := e.View.Position()
	if length := e.Buffer.GetRowLength(e.View.CurLine); pos > length {
		pos = length
	}
	return e.View.ScrollToColumn(pos, e.rect.Width())
}

// IsCursorKey reports whether ev is handled by HandleCursorKeys.
func IsCursorKey(ev *gott.Event) bool {
	if ev.Ch != 0 {
		return false
	}
	switch ev.Key {
	case gott.KeyArrowUp, gott.KeyArrowDown, gott.KeyArrowLeft, gott.KeyArrowRight,
		gott.KeyHome, gott.KeyEnd, gott.KeyPgup, gott.KeyPgdn:
		return true
	}
	return false
}

// HandleCursorKeys performs cursor motion. It returns false for keys that
// do not move the cursor.
func (e *Editor) HandleCursorKeys(ev *gott.Event) bool {
	if !IsCursorKey(ev) {
		return false
	}
	switch ev.Key {
	case gott.KeyArrowUp:
		e.MoveCursor(gott.MoveUp)
	case gott.KeyArrowDown:
		e.MoveCursor(gott.MoveDown)
	case gott.KeyArrowLeft:
		e.MoveCursor(gott.MoveLeft)
	case gott.KeyArrowRight:
		e.MoveCursor(gott.MoveRight)
	case gott.KeyHome:
		e.moveToColumn(0)
	case gott.KeyEnd:
		e.moveToColumn(e.Buffer.GetRowLength(e.View.CurLine))
	case gott.KeyPgup:
		e.PageUp()
	case gott.KeyPgdn:
		e.PageDown()
	}
	return true
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case gott.MoveLeft:
		if pos := e.View.Position(); pos > 0 {
			e.moveToColumn(pos - 1)
		}
	case gott.MoveRight:
		if pos := e.View.Position(); pos < e.Buffer.GetRowLength(e.View.CurLine) {
			e.moveToColumn(pos + 1)
		}
	case gott.MoveUp:
		if e.View.CurLine > 0 {
			e.moveToLine(e.View.CurLine - 1)
		}
	case gott.MoveDown:
		if e.View.CurLine < e.Buffer.GetRowCount()-1 {
			e.moveToLine(e.View.CurLine + 1)
		}
	}
}

func (e *Editor) PageUp() {
	no := e.View.CurLine - e.View.Height
	if no < 0 {
		no = 0
	}
	e.GotoLine(no, true)
	if e.AdjustCursorEOL() {
		e.UpdateScreen()
	}
}

func (e *Editor) PageDown() {
	no := e.View.CurLine + e.View.Height
	if last := e.Buffer.GetRowCount() - 1; no > last {
		no = last
	}
	if no < 0 {
		return
	}
	e.GotoLine(no, true)
	if e.AdjustCursorEOL() {
		e.UpdateScreen()
	}
}

func (e *Editor) moveToLine(no int) {
	scrolled := e.View.ScrollToLine(no)
	if e.AdjustCursorEOL() || scrolled {
		e.UpdateScreen()
	} else {
		e.SetCursor()
	}
}

func (e *Editor) moveToColumn(pos int) {
	if e.View.ScrollToColumn(pos, e.rect.Width()) {
		e.UpdateScreen()
	} else {
		e.SetCursor()
	}
}

// HandleKey performs editing keys. Enter splits the current line.
func (e *Editor) HandleKey(ev *gott.Event) {
	if e.Buffer.GetRowCount() == 0 {
		e.Buffer.SetLines([]string{""})
	}
	row := e.View.CurLine
	pos := e.View.Position()
	if ev.Ch != 0 {
		e.InsertChar(ev.Ch)
		return
	}
	switch ev.Key {
	case gott.KeyBackspace:
		if pos > 0 {
			e.Buffer.DeleteCharacter(row, pos-1)
			e.View.ScrollToColumn(pos-1, e.rect.Width())
		} else if row > 0 {
			length := e.Buffer.GetRowLength(row - 1)
			e.Buffer.JoinRow(row - 1)
			e.View.ScrollToLine(row - 1)
			e.View.ScrollToColumn(length, e.rect.Width())
		}
	case gott.KeyDelete:
		if pos < e.Buffer.GetRowLength(row) {
			e.Buffer.DeleteCharacter(row, pos)
		} else {
			e.Buffer.JoinRow(row)
		}
	case gott.KeyEnter:
		e.Buffer.SplitRow(row, pos)
		e.View.ScrollToLine(row + 1)
		e.View.ScrollToColumn(0, e.rect.Width())
	case gott.KeyTab:
		e.InsertChar(' ')
		for e.View.Position()%8 != 0 {
			e.InsertChar(' ')
		}
		return
	default:
		return
	}
	e.UpdateScreen()
}

func (e *Editor) InsertChar(c rune) {
	if e.Buffer.GetRowCount() == 0 {
		e.Buffer.SetLines([]string{""})
	}
	pos := e.View.Position()
	e.Buffer.InsertCharacter(e.View.CurLine, pos, c)
	e.View.ScrollToColumn(pos+1, e.rect.Width())
	e.UpdateScreen()
}

// HandleEvent is the default key handler: cursor motion, then editing.
// Ctrl-Q ends the loop.
func (e *Editor) HandleEvent(ev *gott.Event) gott.Key {
	if e.HandleCursorKeys(ev) {
		return gott.KeyNone
	}
	if ev.Ch == 0 && ev.Key == gott.KeyCtrlQ {
		return gott.KeyCtrlQ
	}
	e.HandleKey(ev)
	return gott.KeyNone
}

// Loop reads events and passes them to h until h returns a key other than
// KeyNone. Output is flushed before each blocking read.
func (e *Editor) Loop(h KeyHandler) (gott.Key, error) {
	if h == nil {
		h = e.HandleEvent
	}
	for {
		if err := e.display.Flush(); err != nil {
			return gott.KeyNone, err
		}
		ev, err := e.events.NextEvent()
		if err != nil {
			return gott.KeyNone, err
		}
		if key := h(ev); key != gott.KeyNone {
			return key, nil
		}
	}
}
