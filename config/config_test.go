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
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, BackendVT100, c.Backend)
	assert.Equal(t, 200*time.Millisecond, c.ProbeTimeout.Duration)
	assert.Equal(t, Dialog{Width: 40, Height: 3, Top: 8}, c.Dialog)
	assert.Equal(t, 31, c.CursorStatusRow)
	assert.True(t, c.CenterOnGoto)
	require.NoError(t, c.Validate())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gottx.toml")
	text := `
backend = "termbox"
screen_width = 132
probe_timeout = "50ms"

[dialog]
width = 60
`
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendTermbox, c.Backend)
	assert.Equal(t, 132, c.ScreenWidth)
	assert.Equal(t, 50*time.Millisecond, c.ProbeTimeout.Duration)
	assert.Equal(t, Dialog{Width: 60, Height: 3, Top: 8}, c.Dialog)
}

func TestParseRejectsBadValues(t *testing.T) {
	for _, text := range []string{
		`backend = "curses"`,
		`probe_timeout = "soon"`,
		"[dialog]\nheight = 1",
		`screen_width = -1`,
	} {
		_, err := Parse(text)
		assert.Error(t, err, text)
	}
}

func TestParseMouse(t *testing.T) {
	c, err := Parse("mouse = true\n")
	require.NoError(t, err)
	assert.True(t, c.Mouse)
	assert.Equal(t, Dialog{Width: 40, Height: 3, Top: 8}, c.Dialog)
}
