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
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/timburks/gottx/commander"
	"github.com/timburks/gottx/config"
)

// Flags holds the command line settings that override the config file.
type Flags struct {
	ConfigPath string
	Backend    string
	Script     string
	Title      string
	Initial    string
	Line       int
}

func main() {
	var flags Flags

	rootCmd := &cobra.Command{
		Use:   "gottx [flags] [file]",
		Short: "Terminal widget demo",
		Long: `gottx draws boxes, dialogs and read-only views on a raw terminal.
Without a file it asks for a line of text in a dialog and prints it.`,
		Example: `  # Ask for a name
  gottx --title "Enter name:" --initial test

  # Browse a file starting at line 100
  gottx --line 100 main.go

  # Run a script against a file
  gottx --eval demo.scm main.go`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("backend") {
				cfg.Backend = flags.Backend
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			// Log to a file, the terminal is busy.
			f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
			if err != nil {
				return err
			}
			defer f.Close()
			log.SetOutput(f)

			filename := ""
			if len(args) == 1 {
				filename = args[0]
			}
			msg, err := run(cfg, flags, filename)
			if err != nil {
				log.Printf("%+v", err)
				return err
			}
			if msg != "" {
				fmt.Println(msg)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", config.DefaultPath(), "Path to the TOML config file")
	rootCmd.Flags().StringVar(&flags.Backend, "backend", config.BackendVT100, "Terminal driver: vt100 or termbox")
	rootCmd.Flags().StringVar(&flags.Script, "eval", "", "Lisp script to run before browsing")
	rootCmd.Flags().StringVar(&flags.Title, "title", "Enter name:", "Dialog title")
	rootCmd.Flags().StringVar(&flags.Initial, "initial", "test", "Initial dialog text")
	rootCmd.Flags().IntVarP(&flags.Line, "line", "l", 0, "Line to show first when browsing")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, flags Flags, filename string) (string, error) {
	s, err := openSession(cfg)
	if err != nil {
		return "", err
	}
	defer s.close()

	if filename == "" {
		spec := s.ext.DefaultDialog()
		spec.Title = flags.Title
		spec.Initial = flags.Initial
		line, ok, err := s.ext.DialogEditLine(spec)
		if err != nil || !ok {
			return "", err
		}
		return fmt.Sprintf("Result: %q", line), nil
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	s.ext.Buffer.LoadBytes(b)
	s.ext.DrawBox(s.frame)
	if flags.Script != "" {
		c := commander.NewCommander(s.ext)
		if err := c.ParseEvalFile(flags.Script); err != nil {
			s.ext.ShowStatus(err.Error())
		}
	}
	s.ext.GotoLine(flags.Line, cfg.CenterOnGoto)
	s.ext.ShowStatus(fmt.Sprintf("%s: %d lines", filename, s.ext.Buffer.GetRowCount()))
	_, err = s.ext.Browse(s.ext.Buffer.Lines())
	return "", err
}
