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
	"bytes"
	"io"
	"unicode/utf8"

	gott "github.com/timburks/gottx/types"
)

// mouseReport starts an X10 mouse report; three bytes of button and
// position follow.
var mouseReport = []byte("\x1b[M")

// A Reader decodes raw terminal input into events.
type Reader struct {
	in      io.Reader
	keymap  *Keymap
	pending []byte
	queue   []*gott.Event
}

func NewReader(in io.Reader, keymap *Keymap) *Reader {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &Reader{in: in, keymap: keymap}
}

func (r *Reader) NextEvent() (*gott.Event, error) {
	buf := make([]byte, 32)
	for len(r.queue) == 0 {
		n, err := r.in.Read(buf)
		if n > 0 {
			r.pending = append(r.pending, buf[:n]...)
			r.decode()
		}
		if err != nil && len(r.queue) == 0 {
			return nil, err
		}
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	return ev, nil
}

// decode turns as much of the pending input as possible into events.
// A partial UTF-8 sequence at the end is kept for the next read.
func (r *Reader) decode() {
	data := r.pending
	for len(data) > 0 {
		if bytes.HasPrefix(data, mouseReport) {
			if len(data) < len(mouseReport)+3 {
				break
			}
			// widgets have no use for mouse reports
			data = data[len(mouseReport)+3:]
			continue
		}
		if key, n := r.keymap.Match(data); n > 0 {
			r.queue = append(r.queue, &gott.Event{Key: key})
			data = data[n:]
			continue
		}
		if data[0] < 0x20 {
			r.queue = append(r.queue, &gott.Event{Key: gott.KeyUnsupported})
			data = data[1:]
			continue
		}
		if !utf8.FullRune(data) {
			break
		}
		c, size := utf8.DecodeRune(data)
		r.queue = append(r.queue, &gott.Event{Ch: c})
		data = data[size:]
	}
	r.pending = append(r.pending[:0], data...)
}

// Script is an EventSource that replays a fixed list of events and then
// returns io.EOF.
type Script struct {
	events []*gott.Event
}

func NewScript(events ...gott.Event) *Script {
	s := &Script{}
	for i := range events {
		ev := events[i]
		s.events = append(s.events, &ev)
	}
	return s
}

// Type returns events for each character of text.
func Type(text string) []gott.Event {
	events := make([]gott.Event, 0, len(text))
	for _, c := range text {
		events = append(events, gott.Event{Ch: c})
	}
	return events
}

func (s *Script) NextEvent() (*gott.Event, error) {
	if len(s.events) == 0 {
		return nil, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}
