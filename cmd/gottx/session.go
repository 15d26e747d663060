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
package main

import (
	"log"
	"os"

	"github.com/timburks/gottx/config"
	"github.com/timburks/gottx/screen"
	gott "github.com/timburks/gottx/types"
	"github.com/timburks/gottx/widgets"
)

// A session owns the terminal for the life of one run.
type session struct {
	ext   *widgets.Ext
	frame gott.Rect // border around the editor pane
	close func()
}

func openSession(cfg *config.Config) (*session, error) {
	var display gott.Display
	var events gott.EventSource
	var cols, rows int
	s := &session{}

	switch cfg.Backend {
	case config.BackendTermbox:
		t, err := screen.NewTermboxScreen()
		if err != nil {
			return nil, err
		}
		s.close = t.Close
		display, events = t, t
		cols, rows = t.Size()
	default:
		t := screen.NewTerminal(os.Stdin, os.Stdout)
		if err := t.Init(); err != nil {
			return nil, err
		}
		s.close = func() {
			t.Cls()
			if err := t.Deinit(); err != nil {
				log.Printf("%+v", err)
			}
		}
		t.Cls()
		if cfg.Mouse {
			t.EnableMouse()
		}
		probe := screen.NewSizeProbe(os.Stdin, os.Stdout)
		probe.Timeout = cfg.ProbeTimeout.Duration
		probe.Fatal = func(format string, args ...any) {
			t.Deinit()
			log.Fatalf(format, args...)
		}
		cols, rows = t.Size(probe)
		display, events = t, t.Events(screen.DefaultKeymap())
	}

	options := widgets.Options{
		ScreenWidth:     cols,
		CursorStatusRow: cfg.CursorStatusRow,
		Dialog:          gott.NewRect(0, cfg.Dialog.Top, cfg.Dialog.Width, cfg.Dialog.Height),
	}
	if cfg.ScreenWidth > 0 {
		options.ScreenWidth = cfg.ScreenWidth
	}
	if options.CursorStatusRow >= rows {
		options.CursorStatusRow = rows - 1
	}

	// The pane sits inside a border; the status row is just below it.
	s.frame = gott.NewRect(0, 0, cols, rows-2)
	s.ext = widgets.NewExt(s.frame.Inset(1), display, events, options)
	return s, nil
}
