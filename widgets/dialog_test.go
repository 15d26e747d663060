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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/gottx/types"
)

func TestDialogBoxTitle(t *testing.T) {
	x, grid := newTestExt()
	x.DialogBox(gott.NewRect(20, 8, 40, 3), "Enter name:")
	assert.Equal(t, '┌', grid.Cell(8, 20))
	assert.Equal(t, "Enter name:", string([]rune(grid.Line(8))[21:32]))
	assert.Equal(t, '─', grid.Cell(8, 32))
	assert.Equal(t, '┐', grid.Cell(8, 59))
	assert.Equal(t, '└', grid.Cell(10, 20))
}

func TestDialogBoxTruncatesTitle(t *testing.T) {
	x, grid := newTestExt()
	x.DialogBox(gott.NewRect(0, 0, 10, 3), strings.Repeat("t", 20))
	assert.Equal(t, "┌tttttttt┐", strings.TrimRight(grid.Line(0), " "))
}

func TestDialogBoxClearsInterior(t *testing.T) {
	x, grid := newTestExt()
	grid.Goto(9, 0)
	grid.Write([]byte(strings.Repeat("#", 80)))
	x.DialogBox(gott.NewRect(20, 8, 40, 3), "")
	line := []rune(grid.Line(9))
	assert.Equal(t, "#│", string(line[19:21]))
	assert.Equal(t, strings.Repeat(" ", 38), string(line[21:59]))
	assert.Equal(t, "│#", string(line[59:61]))
}

func TestDialogEditLineIsCentered(t *testing.T) {
	x, grid := newTestExt(keys("x", gott.KeyEnter)...)
	spec := x.DefaultDialog()
	spec.Title = "Enter name:"
	spec.Initial = "test"
	line, ok, err := x.DialogEditLine(spec)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", line)
	assert.Equal(t, '┌', grid.Cell(8, 20))
	assert.Equal(t, 'x', grid.Cell(9, 21))
	assert.Equal(t, '│', grid.Cell(9, 59))
}

func TestDialogEditLineUsesScreenWidth(t *testing.T) {
	x, grid := newTestExt(gott.Event{Key: gott.KeyEsc})
	x.options.ScreenWidth = 100
	_, ok, err := x.DialogEditLine(x.DefaultDialog())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, '┌', grid.Cell(8, 30))
}

func TestDialogAtFixedPosition(t *testing.T) {
	x, grid := newTestExt(keys("ok", gott.KeyEnter)...)
	spec := DialogSpec{Rect: gott.NewRect(5, 2, 10, 3), Initial: "abc"}
	line, ok, err := x.DialogEditLine(spec)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ok", line)
	assert.Equal(t, '┌', grid.Cell(2, 5))
	assert.Equal(t, "ok", string([]rune(grid.Line(3))[6:8]))
}
