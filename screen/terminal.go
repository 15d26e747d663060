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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	gott "github.com/timburks/gottx/types"
)

// A Terminal is a Display that writes VT100 sequences to a byte stream.
// Widgets write through it as raw bytes, so multi-byte glyphs are passed
// along untouched.
type Terminal struct {
	in    *os.File
	out   io.Writer
	w     *bufio.Writer
	state *term.State
}

func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out, w: bufio.NewWriter(out)}
}

// Init puts the input side of the terminal into raw mode.
func (t *Terminal) Init() error {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Deinit restores the terminal mode saved by Init.
func (t *Terminal) Deinit() error {
	t.w.WriteString(ansi.ResetNormalMouseMode)
	t.w.WriteString(ansi.ShowCursor)
	if err := t.w.Flush(); err != nil {
		return err
	}
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

func (t *Terminal) EnableMouse() {
	t.w.WriteString(ansi.SetNormalMouseMode)
}

// Cls clears the screen and homes the cursor.
func (t *Terminal) Cls() {
	t.w.WriteString(ansi.EraseEntireScreen)
	t.w.WriteString(ansi.CursorHomePosition)
}

func (t *Terminal) Goto(row, col int) {
	t.w.WriteString(ansi.CursorPosition(col+1, row+1))
}

func (t *Terminal) Write(b []byte) {
	t.w.Write(b)
}

func (t *Terminal) ClearToEOL() {
	t.w.WriteString(ansi.EraseLineRight)
}

func (t *Terminal) Cursor(visible bool) {
	if visible {
		t.w.WriteString(ansi.ShowCursor)
	} else {
		t.w.WriteString(ansi.HideCursor)
	}
}

func (t *Terminal) Flush() error {
	return t.w.Flush()
}

// Events returns an EventSource reading keys from the terminal input.
func (t *Terminal) Events(keymap *Keymap) gott.EventSource {
	return NewReader(t.in, keymap)
}

// Size asks the terminal for its dimensions, falling back to 80x24.
func (t *Terminal) Size(probe *SizeProbe) (cols, rows int) {
	t.w.Flush()
	if probe == nil {
		probe = NewSizeProbe(t.in, t.out)
	}
	return probe.Query()
}
