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
package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gott "github.com/timburks/gottx/types"
)

func TestMatchPrefersLongestSequence(t *testing.T) {
	km := DefaultKeymap()

	key, n := km.Match([]byte("\x1b[Ax"))
	assert.Equal(t, gott.KeyArrowUp, key)
	assert.Equal(t, 3, n)

	key, n = km.Match([]byte("\x1b[5~"))
	assert.Equal(t, gott.KeyPgup, key)
	assert.Equal(t, 4, n)

	key, n = km.Match([]byte("\x1bx"))
	assert.Equal(t, gott.KeyEsc, key)
	assert.Equal(t, 1, n)

	key, n = km.Match([]byte("abc"))
	assert.Equal(t, gott.KeyNone, key)
	assert.Equal(t, 0, n)
}

func TestWithBindingsLeavesOriginalAlone(t *testing.T) {
	km := DefaultKeymap()
	extended := km.WithBindings(
		Binding{"\x1b[Z", gott.KeyTab},
		Binding{"\x7f", gott.KeyDelete},
	)

	key, ok := extended.Lookup("\x1b[Z")
	assert.True(t, ok)
	assert.Equal(t, gott.KeyTab, key)
	key, _ = extended.Lookup("\x7f")
	assert.Equal(t, gott.KeyDelete, key)

	_, ok = km.Lookup("\x1b[Z")
	assert.False(t, ok)
	key, _ = km.Lookup("\x7f")
	assert.Equal(t, gott.KeyBackspace, key)
}
