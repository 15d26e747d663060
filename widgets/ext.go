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
	"github.com/timburks/gottx/editor"
	gott "github.com/timburks/gottx/types"
)

// Options configure an Ext. Widgets never resize, so these are fixed
// for the life of the Ext.
type Options struct {
	ScreenWidth     int       // used to center dialogs
	CursorStatusRow int       // screen row of the line:column readout
	Dialog          gott.Rect // default dialog size and top row
}

func DefaultOptions() Options {
	return Options{
		ScreenWidth:     80,
		CursorStatusRow: 31,
		Dialog:          gott.NewRect(0, 8, 40, 3),
	}
}

// An Ext is an editor pane with a status line below its border,
// plus box and dialog drawing.
type Ext struct {
	*editor.Editor
	options   Options
	statusRow int
}

func NewExt(rect gott.Rect, display gott.Display, events gott.EventSource, options Options) *Ext {
	x := &Ext{}
	x.Editor = editor.NewEditor(rect, display, events)
	x.options = options
	// +1 leaves room for a border around the editor pane
	x.statusRow = rect.Top() + rect.Height() + 1
	return x
}

func (x *Ext) GetOptions() Options {
	return x.options
}

func (x *Ext) GetStatusRow() int {
	return x.statusRow
}

func (x *Ext) LineVisible(no int) bool {
	return x.View.LineVisible(no)
}

func (x *Ext) DrawBox(r gott.Rect) {
	DrawBox(x.GetDisplay(), r)
}

func (x *Ext) ClearBox(r gott.Rect) {
	ClearBox(x.GetDisplay(), r)
}

// Browse shows lines read-only and keeps the cursor readout current.
// It returns the key that ended browsing.
func (x *Ext) Browse(lines []string) (gott.Key, error) {
	x.SetLines(lines)
	m := NewModal(x.Editor, viewerIntercept)
	m.After = x.ShowCursorStatus
	key, _, err := m.Run()
	return key, err
}
