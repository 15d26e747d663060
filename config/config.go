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

// Package config loads gottx settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	BackendVT100   = "vt100"
	BackendTermbox = "termbox"
)

type Dialog struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Top    int `toml:"top"`
}

type Config struct {
	// Backend selects the terminal driver: "vt100" or "termbox".
	Backend string `toml:"backend"`
	// LogFile receives log output while the terminal is in use.
	LogFile string `toml:"log_file"`
	// ScreenWidth is used to center dialogs. Zero asks the terminal.
	ScreenWidth  int      `toml:"screen_width"`
	ProbeTimeout Duration `toml:"probe_timeout"`
	// CursorStatusRow is the screen row of the line:column readout.
	CursorStatusRow int    `toml:"cursor_status_row"`
	CenterOnGoto    bool   `toml:"center_on_goto"`
	Dialog          Dialog `toml:"dialog"`
	// Mouse turns on mouse reporting on the vt100 backend.
	Mouse bool `toml:"mouse"`
}

// Duration is a time.Duration written as a string such as "200ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Backend:         BackendVT100,
		LogFile:         filepath.Join(home, ".gottxlog"),
		ProbeTimeout:    Duration{200 * time.Millisecond},
		CursorStatusRow: 31,
		CenterOnGoto:    true,
		Dialog:          Dialog{Width: 40, Height: 3, Top: 8},
	}
}

// DefaultPath is ~/.gottx.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gottx.toml"
	}
	return filepath.Join(home, ".gottx.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	_, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// Parse reads settings from TOML text over the defaults.
func Parse(text string) (*Config, error) {
	c := Default()
	if _, err := toml.Decode(text, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendVT100, BackendTermbox:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Dialog.Width < 3 || c.Dialog.Height < 3 {
		return fmt.Errorf("dialog must be at least 3x3, got %dx%d", c.Dialog.Width, c.Dialog.Height)
	}
	if c.ScreenWidth < 0 {
		return fmt.Errorf("screen width must not be negative, got %d", c.ScreenWidth)
	}
	if c.ProbeTimeout.Duration <= 0 {
		return fmt.Errorf("probe timeout must be positive, got %v", c.ProbeTimeout.Duration)
	}
	return nil
}
