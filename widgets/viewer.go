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

// A Viewer shows lines read-only until Enter or Escape is pressed.
// Only cursor motion reaches the editor.
type Viewer struct {
	modal *Modal
}

func NewViewer(rect gott.Rect, display gott.Display, events gott.EventSource) *Viewer {
	return &Viewer{modal: NewModal(editor.NewEditor(rect, display, events), viewerIntercept)}
}

func (v *Viewer) Editor() *editor.Editor {
	return v.modal.Editor
}

func viewerIntercept(ev *gott.Event) Policy {
	if policy, ok := isTerminal(ev); ok {
		return policy
	}
	if editor.IsCursorKey(ev) {
		return PolicyDelegate
	}
	return PolicyIgnore
}

// View displays lines and returns the key that closed the viewer.
func (v *Viewer) View(lines []string) (gott.Key, error) {
	v.modal.Editor.SetLines(lines)
	key, _, err := v.modal.Run()
	return key, err
}
