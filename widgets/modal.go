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

// A Policy says what a modal widget does with one input event.
type Policy int

const (
	PolicyDelegate            Policy = iota // pass to the editor
	PolicyReplaceThenDelegate               // empty the buffer, then pass to the editor
	PolicyConfirm                           // end the loop, accepting
	PolicyCancel                            // end the loop, discarding
	PolicyIgnore                            // drop the event
)

// An Interceptor chooses the policy for each event.
type Interceptor func(ev *gott.Event) Policy

// A Modal runs an editor loop under an Interceptor until it confirms or cancels.
type Modal struct {
	Editor    *editor.Editor
	After     func() // called after each event passed to the editor
	intercept Interceptor
	outcome   Policy
}

func NewModal(e *editor.Editor, intercept Interceptor) *Modal {
	return &Modal{Editor: e, intercept: intercept}
}

// Run draws the editor and processes events. It returns the key that ended
// the loop and whether it confirmed.
func (m *Modal) Run() (gott.Key, bool, error) {
	m.outcome = PolicyDelegate
	m.Editor.UpdateScreen()
	key, err := m.Editor.Loop(m.handle)
	if err != nil {
		return gott.KeyNone, false, err
	}
	return key, m.outcome == PolicyConfirm, nil
}

func (m *Modal) handle(ev *gott.Event) gott.Key {
	policy := m.intercept(ev)
	switch policy {
	case PolicyConfirm, PolicyCancel:
		m.outcome = policy
		return exitKey(ev, policy)
	case PolicyIgnore:
		return gott.KeyNone
	case PolicyReplaceThenDelegate:
		m.replace()
		m.Editor.UpdateScreen()
	}
	if !m.Editor.HandleCursorKeys(ev) {
		m.Editor.HandleKey(ev)
	}
	if m.After != nil {
		m.After()
	}
	return gott.KeyNone
}

// replace discards the buffer in favor of a single empty line.
func (m *Modal) replace() {
	m.Editor.SetLines([]string{""})
	m.Editor.View.Col = 0
	m.Editor.View.Margin = 0
}

func exitKey(ev *gott.Event, policy Policy) gott.Key {
	if ev.Ch == 0 && ev.Key != gott.KeyNone {
		return ev.Key
	}
	if policy == PolicyConfirm {
		return gott.KeyEnter
	}
	return gott.KeyEsc
}

func isTerminal(ev *gott.Event) (Policy, bool) {
	if ev.Ch != 0 {
		return PolicyDelegate, false
	}
	switch ev.Key {
	case gott.KeyEnter:
		return PolicyConfirm, true
	case gott.KeyEsc:
		return PolicyCancel, true
	}
	return PolicyDelegate, false
}
