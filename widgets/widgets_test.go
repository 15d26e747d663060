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
	"fmt"

	"github.com/timburks/gottx/screen"
	gott "github.com/timburks/gottx/types"
)

func newTestExt(events ...gott.Event) (*Ext, *screen.Grid) {
	grid := screen.NewGrid(80, 34)
	x := NewExt(gott.NewRect(1, 1, 20, 5), grid, screen.NewScript(events...), DefaultOptions())
	return x, grid
}

func newTestLineEditor(width int, events ...gott.Event) (*LineEditor, *screen.Grid) {
	grid := screen.NewGrid(80, 24)
	return NewLineEditor(gott.NewRect(21, 9, width, 1), grid, screen.NewScript(events...)), grid
}

func keys(events ...any) []gott.Event {
	var result []gott.Event
	for _, e := range events {
		switch v := e.(type) {
		case gott.Key:
			result = append(result, gott.Event{Key: v})
		case string:
			result = append(result, screen.Type(v)...)
		default:
			panic(fmt.Sprintf("unexpected event %v", e))
		}
	}
	return result
}

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}
