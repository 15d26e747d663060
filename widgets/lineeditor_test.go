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
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/gottx/types"
)

func TestFirstKeyReplacesInitialText(t *testing.T) {
	l, grid := newTestLineEditor(38, keys("x", gott.KeyEnter)...)
	line, ok, err := l.Edit("test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", line)
	assert.Equal(t, "x", strings.TrimSpace(grid.Line(9)))
}

func TestCursorKeyKeepsInitialText(t *testing.T) {
	l, _ := newTestLineEditor(38, keys(gott.KeyArrowLeft, "x", gott.KeyEnter)...)
	line, ok, err := l.Edit("test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tesxt", line)
}

func TestEditStartsAtEndOfLine(t *testing.T) {
	l, grid := newTestLineEditor(38, gott.Event{Key: gott.KeyEnter})
	_, _, err := l.Edit("test")
	require.NoError(t, err)
	assert.Equal(t, 4, l.Editor().View.Col)
	assert.Equal(t, 25, grid.GetCursor().Col)
}

func TestEditEmptyLine(t *testing.T) {
	l, _ := newTestLineEditor(38, gott.Event{Key: gott.KeyEnter})
	line, ok, err := l.Edit("")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", line)
}

func TestEscapeCancels(t *testing.T) {
	l, _ := newTestLineEditor(38, keys("zzz", gott.KeyEsc)...)
	line, ok, err := l.Edit("abc")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", line)
}

func TestBackspaceFirstClearsLine(t *testing.T) {
	l, _ := newTestLineEditor(38, keys(gott.KeyBackspace, "y", gott.KeyEnter)...)
	line, _, err := l.Edit("test")
	require.NoError(t, err)
	assert.Equal(t, "y", line)
}

func TestEditScrollsLongLine(t *testing.T) {
	l, grid := newTestLineEditor(5, gott.Event{Key: gott.KeyEnter})
	line, _, err := l.Edit("abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, "abcdefgh", line)
	assert.Equal(t, 4, l.Editor().View.Margin)
	assert.Equal(t, "efgh ", grid.Line(9)[21:26])
}

func TestEditReportsInputErrors(t *testing.T) {
	l, _ := newTestLineEditor(38, keys("abc")...)
	_, ok, err := l.Edit("")
	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, ok)
}

func TestEditorIsReusable(t *testing.T) {
	l, _ := newTestLineEditor(38, keys("a", gott.KeyEnter, gott.KeyArrowLeft, "b", gott.KeyEnter)...)
	line, _, err := l.Edit("first")
	require.NoError(t, err)
	assert.Equal(t, "a", line)
	line, _, err = l.Edit("second")
	require.NoError(t, err)
	assert.Equal(t, "seconbd", line)
}

func TestEditKeepsTabs(t *testing.T) {
	l, grid := newTestLineEditor(38, gott.Event{Key: gott.KeyEnter})
	line, ok, err := l.Edit("a\tb")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a\tb", line)
	assert.Equal(t, "a b", grid.Line(9)[21:24])
	assert.Equal(t, 3, l.Editor().View.Col)
}

func TestIgnoredFirstKeyRedrawsEmptyLine(t *testing.T) {
	l, grid := newTestLineEditor(38, keys(gott.KeyF1, gott.KeyEnter)...)
	line, ok, err := l.Edit("test")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", line)
	assert.Equal(t, "", strings.TrimSpace(grid.Line(9)))
	assert.Equal(t, 21, grid.GetCursor().Col)
}
