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
	"github.com/mattn/go-runewidth"

	gott "github.com/timburks/gottx/types"
)

// A DialogSpec describes one dialog. When Centered is set the left edge
// of Rect is ignored and the dialog is centered on the screen.
type DialogSpec struct {
	Rect     gott.Rect
	Centered bool
	Title    string
	Initial  string
}

// DefaultDialog returns a centered dialog of the configured size.
func (x *Ext) DefaultDialog() DialogSpec {
	return DialogSpec{Rect: x.options.Dialog, Centered: true}
}

// DialogBox clears r, draws its border and writes the title one column
// in from the top left corner.
func (x *Ext) DialogBox(r gott.Rect, title string) {
	x.ClearBox(r.Inset(1))
	x.DrawBox(r)
	if title != "" {
		// TODO: center the title once dialogs have a style option for it.
		pos := 1
		x.Goto(r.Top(), r.Left()+pos)
		x.Wr(runewidth.Truncate(title, r.Width()-2, ""))
	}
}

// DialogEditLine shows a dialog box and edits one line inside it.
// It returns false if the user cancelled.
func (x *Ext) DialogEditLine(spec DialogSpec) (string, bool, error) {
	r := spec.Rect
	if spec.Centered {
		r.Origin.Col = (x.options.ScreenWidth - r.Width()) / 2
	}
	x.DialogBox(r, spec.Title)
	l := NewLineEditor(r.Inset(1), x.GetDisplay(), x.GetEvents())
	return l.Edit(spec.Initial)
}
