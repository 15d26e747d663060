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
	gott "github.com/timburks/gottx/types"
)

// A Binding associates a raw input sequence with a key.
type Binding struct {
	Sequence string
	Key      gott.Key
}

// A Keymap maps raw input sequences to keys. Keymaps are never modified
// after construction; WithBindings returns a new one.
type Keymap struct {
	keys   map[string]gott.Key
	maxLen int
}

func NewKeymap(bindings ...Binding) *Keymap {
	km := &Keymap{keys: make(map[string]gott.Key, len(bindings))}
	for _, b := range bindings {
		km.bind(b)
	}
	return km
}

func (km *Keymap) bind(b Binding) {
	km.keys[b.Sequence] = b.Key
	if len(b.Sequence) > km.maxLen {
		km.maxLen = len(b.Sequence)
	}
}

// WithBindings returns a copy of the keymap with extra bindings added.
// Later bindings replace earlier ones for the same sequence.
func (km *Keymap) WithBindings(bindings ...Binding) *Keymap {
	c := &Keymap{keys: make(map[string]gott.Key, len(km.keys)+len(bindings))}
	for seq, key := range km.keys {
		c.bind(Binding{Sequence: seq, Key: key})
	}
	for _, b := range bindings {
		c.bind(b)
	}
	return c
}

func (km *Keymap) Lookup(seq string) (gott.Key, bool) {
	key, ok := km.keys[seq]
	return key, ok
}

// Match finds the longest bound sequence at the start of data.
// It returns the key and the number of bytes it consumed, or 0 bytes
// if nothing matches.
func (km *Keymap) Match(data []byte) (gott.Key, int) {
	n := km.maxLen
	if n > len(data) {
		n = len(data)
	}
	for ; n > 0; n-- {
		if key, ok := km.keys[string(data[:n])]; ok {
			return key, n
		}
	}
	return gott.KeyNone, 0
}

// DefaultKeymap covers the keys a VT100-compatible terminal sends in raw mode.
func DefaultKeymap() *Keymap {
	return NewKeymap(
		Binding{"\r", gott.KeyEnter},
		Binding{"\n", gott.KeyEnter},
		Binding{"\x1b", gott.KeyEsc},
		Binding{"\x1bOP", gott.KeyF1},
		Binding{"\x1b[11~", gott.KeyF1},
		Binding{"\x1b[A", gott.KeyArrowUp},
		Binding{"\x1b[B", gott.KeyArrowDown},
		Binding{"\x1b[C", gott.KeyArrowRight},
		Binding{"\x1b[D", gott.KeyArrowLeft},
		Binding{"\x1bOA", gott.KeyArrowUp},
		Binding{"\x1bOB", gott.KeyArrowDown},
		Binding{"\x1bOC", gott.KeyArrowRight},
		Binding{"\x1bOD", gott.KeyArrowLeft},
		Binding{"\x1b[H", gott.KeyHome},
		Binding{"\x1bOH", gott.KeyHome},
		Binding{"\x1b[1~", gott.KeyHome},
		Binding{"\x1b[F", gott.KeyEnd},
		Binding{"\x1bOF", gott.KeyEnd},
		Binding{"\x1b[4~", gott.KeyEnd},
		Binding{"\x1b[5~", gott.KeyPgup},
		Binding{"\x1b[6~", gott.KeyPgdn},
		Binding{"\x1b[3~", gott.KeyDelete},
		Binding{"\x7f", gott.KeyBackspace},
		Binding{"\x08", gott.KeyBackspace},
		Binding{"\t", gott.KeyTab},
		Binding{"\x11", gott.KeyCtrlQ},
	)
}
