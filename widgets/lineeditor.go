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

// A LineEditor edits a single line and ends on Enter or Escape.
// The initial text is replaced by the first key typed, unless the cursor
// is moved first.
type LineEditor struct {
	modal       *Modal
	justStarted bool
}

func NewLineEditor(rect gott.Rect, display gott.Display, events gott.EventSource) *LineEditor {
	l := &LineEditor{}
	l.modal = NewModal(editor.NewEditor(rect, display, events), l.intercept)
	return l
}

func (l *LineEditor) Editor() *editor.Editor {
	return l.modal.Editor
}

func (l *LineEditor) intercept(ev *gott.Event) Policy {
	if policy, ok := isTerminal(ev); ok {
		return policy
	}
	if editor.IsCursorKey(ev) {
		l.justStarted = false
		return PolicyDelegate
	}
	if l.justStarted {
		l.justStarted = false
		return PolicyReplaceThenDelegate
	}
	return PolicyDelegate
}

// Edit runs the editor on line. It returns the edited text and true on
// Enter, or false if the edit was cancelled with Escape.
func (l *LineEditor) Edit(line string) (string, bool, error) {
	e := l.modal.Editor
	e.SetLines([]string{line})
	e.View.Col = len([]rune(line))
	e.View.Margin = 0
	e.AdjustCursorEOL()
	l.justStarted = true
	_, confirmed, err := l.modal.Run()
	if err != nil || !confirmed {
		return "", false, err
	}
	return e.Buffer.Line(0), true, nil
}
