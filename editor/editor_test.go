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
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/timburks/gottx/screen"
	gott "github.com/timburks/gottx/types"
)

func setup(events ...gott.Event) (*Editor, *screen.Grid) {
	grid := screen.NewGrid(40, 12)
	e := NewEditor(gott.NewRect(1, 1, 10, 5), grid, screen.NewScript(events...))
	return e, grid
}

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestUpdateScreen(t *testing.T) {
	e, grid := setup()
	e.SetLines([]string{"one", "two"})
	e.UpdateScreen()
	expected := []string{" one", " two", " ~", " ~", " ~"}
	for i, want := range expected {
		if got := strings.TrimRight(grid.Line(i+1), " "); got != want {
			t.Errorf("Unexpected row %d: '%s'", i+1, got)
		}
	}
	if grid.Line(0) != strings.Repeat(" ", 40) {
		t.Errorf("Unexpected output above the window: '%s'", grid.Line(0))
	}
	if c := grid.GetCursor(); c.Row != 1 || c.Col != 1 {
		t.Errorf("Unexpected cursor: %+v", c)
	}
}

func TestGotoLineRedraws(t *testing.T) {
	e, grid := setup()
	e.SetLines(numberedLines(50))
	e.UpdateScreen()
	if !e.GotoLine(30, true) {
		t.Errorf("Expected a redraw")
	}
	if got := strings.TrimSpace(grid.Line(1)); got != "line 28" {
		t.Errorf("Unexpected first row: '%s'", got)
	}
	if e.CurrentLine() != "line 30" {
		t.Errorf("Unexpected current line: '%s'", e.CurrentLine())
	}
	if c := grid.GetCursor(); c.Row != 3 {
		t.Errorf("Unexpected cursor row: %d", c.Row)
	}
	if e.GotoLine(31, true) {
		t.Errorf("Unexpected redraw for a visible line")
	}
	if c := grid.GetCursor(); c.Row != 4 {
		t.Errorf("Unexpected cursor row: %d", c.Row)
	}
}

func TestInsertAndDelete(t *testing.T) {
	e, _ := setup()
	e.SetLines([]string{"abc"})
	e.View.Col = 3
	e.HandleKey(&gott.Event{Ch: 'd'})
	if line := e.Buffer.Line(0); line != "abcd" {
		t.Errorf("Unexpected line after insert: '%s'", line)
	}
	e.HandleKey(&gott.Event{Key: gott.KeyBackspace})
	e.HandleKey(&gott.Event{Key: gott.KeyBackspace})
	if line := e.Buffer.Line(0); line != "ab" || e.View.Col != 2 {
		t.Errorf("Unexpected line after backspace: '%s' col %d", line, e.View.Col)
	}
	e.MoveCursor(gott.MoveLeft)
	e.HandleKey(&gott.Event{Key: gott.KeyDelete})
	if line := e.Buffer.Line(0); line != "a" {
		t.Errorf("Unexpected line after delete: '%s'", line)
	}
}

func TestSplitAndJoin(t *testing.T) {
	e, _ := setup()
	e.SetLines([]string{"hello world"})
	e.View.Col = 5
	e.HandleKey(&gott.Event{Key: gott.KeyEnter})
	if e.Buffer.GetRowCount() != 2 || e.Buffer.Line(1) != " world" {
		t.Errorf("Unexpected lines after split: %q", e.Buffer.Lines())
	}
	if e.View.CurLine != 1 || e.View.Col != 0 {
		t.Errorf("Unexpected cursor after split: %+v", e.View)
	}
	e.HandleKey(&gott.Event{Key: gott.KeyBackspace})
	if e.Buffer.GetRowCount() != 1 || e.Buffer.Line(0) != "hello world" {
		t.Errorf("Unexpected lines after join: %q", e.Buffer.Lines())
	}
	if e.View.CurLine != 0 || e.View.Col != 5 {
		t.Errorf("Unexpected cursor after join: %+v", e.View)
	}
}

func TestHorizontalScrolling(t *testing.T) {
	e, grid := setup()
	e.SetLines([]string{"abcdefghijklmnopqrst"})
	e.UpdateScreen()
	e.HandleCursorKeys(&gott.Event{Key: gott.KeyEnd})
	if e.View.Margin != 11 || e.View.Col != 9 {
		t.Errorf("Unexpected viewport: %+v", e.View)
	}
	if got := grid.Line(1)[1:11]; got != "lmnopqrst " {
		t.Errorf("Unexpected row: '%s'", got)
	}
	e.HandleCursorKeys(&gott.Event{Key: gott.KeyHome})
	if e.View.Margin != 0 || e.View.Col != 0 {
		t.Errorf("Unexpected viewport: %+v", e.View)
	}
}

func TestCursorStopsAtEndOfLine(t *testing.T) {
	e, _ := setup()
	e.SetLines([]string{"long line", "short"})
	e.View.Col = 9
	e.MoveCursor(gott.MoveDown)
	if e.View.CurLine != 1 || e.View.Col != 5 {
		t.Errorf("Unexpected cursor: %+v", e.View)
	}
	e.MoveCursor(gott.MoveRight)
	if e.View.Col != 5 {
		t.Errorf("Unexpected column: %d", e.View.Col)
	}
}

func TestPaging(t *testing.T) {
	e, _ := setup()
	e.SetLines(numberedLines(50))
	e.PageDown()
	if e.View.CurLine != 5 {
		t.Errorf("Unexpected line after page down: %d", e.View.CurLine)
	}
	e.PageDown()
	if e.View.CurLine != 10 || e.View.TopLine != 8 {
		t.Errorf("Unexpected viewport after page down: %+v", e.View)
	}
	e.PageUp()
	e.PageUp()
	if e.View.CurLine != 0 {
		t.Errorf("Unexpected line after page up: %d", e.View.CurLine)
	}
}

func TestLoop(t *testing.T) {
	events := append(screen.Type("hi"), gott.Event{Key: gott.KeyCtrlQ}, gott.Event{Ch: 'x'})
	e, _ := setup(events...)
	e.SetLines([]string{""})
	key, err := e.Loop(nil)
	if err != nil {
		t.Errorf("Unexpected error: %+v", err)
	}
	if key != gott.KeyCtrlQ {
		t.Errorf("Unexpected key: %s", key)
	}
	if line := e.Buffer.Line(0); line != "hi" {
		t.Errorf("Unexpected line: '%s'", line)
	}
	// the remaining event is consumed, then the script runs out
	if _, err := e.Loop(nil); err != io.EOF {
		t.Errorf("Unexpected error: %+v", err)
	}
}

func TestLoadBytesStripsCarriageReturns(t *testing.T) {
	e, grid := setup()
	e.Buffer.LoadBytes([]byte("one\r\ntwo\r\n\tx\n"))
	lines := e.Buffer.Lines()
	expected := []string{"one", "two", "        x"}
	if len(lines) != len(expected) {
		t.Fatalf("Unexpected lines: %q", lines)
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Unexpected line %d: %q", i, lines[i])
		}
	}
	e.UpdateScreen()
	if got := grid.Line(1)[:11]; got != " one       " {
		t.Errorf("Unexpected row: '%s'", got)
	}
}

func TestShowLineHidesControlCharacters(t *testing.T) {
	e, grid := setup()
	e.SetLines([]string{"a\tb\rc"})
	e.UpdateScreen()
	if line := e.Buffer.Line(0); line != "a\tb\rc" {
		t.Errorf("Unexpected line: %q", line)
	}
	if got := grid.Line(1)[:7]; got != " a b c " {
		t.Errorf("Unexpected row: '%s'", got)
	}
}
