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
	"errors"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	gott "github.com/timburks/gottx/types"
)

// A TermboxScreen is a Display and EventSource backed by termbox-go.
type TermboxScreen struct {
	cursor        gott.Point
	cursorVisible bool
	pending       []byte
}

func NewTermboxScreen() (*TermboxScreen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	return &TermboxScreen{cursorVisible: true}, nil
}

func (s *TermboxScreen) Close() {
	termbox.Close()
}

func (s *TermboxScreen) Size() (cols, rows int) {
	return termbox.Size()
}

func (s *TermboxScreen) Goto(row, col int) {
	s.pending = s.pending[:0]
	s.cursor = gott.Point{Row: row, Col: col}
}

func (s *TermboxScreen) Write(b []byte) {
	data := append(s.pending, b...)
	for len(data) > 0 && utf8.FullRune(data) {
		c, size := utf8.DecodeRune(data)
		data = data[size:]
		termbox.SetCell(s.cursor.Col, s.cursor.Row, c, termbox.ColorDefault, termbox.ColorDefault)
		s.cursor.Col += runewidth.RuneWidth(c)
	}
	s.pending = append(s.pending[:0], data...)
}

func (s *TermboxScreen) ClearToEOL() {
	cols, _ := termbox.Size()
	for col := s.cursor.Col; col < cols; col++ {
		termbox.SetCell(col, s.cursor.Row, ' ', termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (s *TermboxScreen) Cursor(visible bool) {
	s.cursorVisible = visible
	if !visible {
		termbox.HideCursor()
	}
}

func (s *TermboxScreen) Flush() error {
	if s.cursorVisible {
		termbox.SetCursor(s.cursor.Col, s.cursor.Row)
	}
	return termbox.Flush()
}

func (s *TermboxScreen) NextEvent() (*gott.Event, error) {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventKey:
			if event.Ch != 0 {
				return &gott.Event{Ch: event.Ch}, nil
			}
			if event.Key == termbox.KeySpace {
				return &gott.Event{Ch: ' '}, nil
			}
			return &gott.Event{Key: key(event.Key)}, nil
		case termbox.EventResize:
			termbox.Flush()
		case termbox.EventError:
			return nil, event.Err
		case termbox.EventInterrupt:
			return nil, errors.New("termbox: interrupted")
		}
	}
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyDelete:
		return gott.KeyDelete
	case termbox.KeyCtrlQ:
		return gott.KeyCtrlQ
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyF1:
		return gott.KeyF1
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
