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
package commander

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/steelseries/golisp"

	gott "github.com/timburks/gottx/types"
	"github.com/timburks/gottx/widgets"
)

// The Commander converts script commands into widget operations.
// golisp primitives are global, so the most recently created Commander
// receives all calls.
type Commander struct {
	ext     *widgets.Ext
	message string // result of the last evaluation
}

func NewCommander(x *widgets.Ext) *Commander {
	c := &Commander{ext: x}
	c.bind()
	return c
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) bind() {
	golisp.MakePrimitiveFunction("goto-line", "1|2", c.gotoLineImpl)
	golisp.MakePrimitiveFunction("current-line", "0", c.currentLineImpl)
	golisp.MakePrimitiveFunction("line-visible?", "1", c.lineVisibleImpl)
	golisp.MakePrimitiveFunction("set-text", "1", c.setTextImpl)
	golisp.MakePrimitiveFunction("show-status", "1", c.showStatusImpl)
	golisp.MakePrimitiveFunction("show-cursor-status", "0", c.showCursorStatusImpl)
	golisp.MakePrimitiveFunction("draw-box", "4", c.drawBoxImpl)
	golisp.MakePrimitiveFunction("clear-box", "4", c.clearBoxImpl)
	golisp.MakePrimitiveFunction("edit-line", "0|1|2", c.editLineImpl)
}

// Eval evaluates a single expression.
func (c *Commander) Eval(command string) (*golisp.Data, error) {
	return golisp.ParseAndEval(command)
}

// ParseEval evaluates command and returns its printed value or error.
func (c *Commander) ParseEval(command string) string {
	value, err := c.Eval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		c.message = err.Error()
	} else {
		c.message = golisp.String(value)
	}
	return c.message
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	value, err := c.Eval("(begin " + string(b) + "\n)")
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	c.message = golisp.String(value)
	return nil
}

func intArg(d *golisp.Data, name string) (int, error) {
	if !golisp.IntegerP(d) {
		return 0, fmt.Errorf("%s requires an integer argument", name)
	}
	return int(golisp.IntegerValue(d)), nil
}

func stringArg(d *golisp.Data, name string) (string, error) {
	if !golisp.StringP(d) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(d), nil
}

func rectArgs(args *golisp.Data, name string) (gott.Rect, error) {
	var v [4]int
	for i := range v {
		n, err := intArg(golisp.Car(args), name)
		if err != nil {
			return gott.Rect{}, err
		}
		v[i] = n
		args = golisp.Cdr(args)
	}
	return gott.NewRect(v[0], v[1], v[2], v[3]), nil
}

func (c *Commander) gotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	no, err := intArg(golisp.Car(args), "goto-line")
	if err != nil {
		return nil, err
	}
	if no < 0 {
		return nil, errors.New("goto-line requires a non-negative line")
	}
	center := true
	if golisp.Length(args) > 1 {
		center = golisp.BooleanValue(golisp.Cadr(args))
	}
	return golisp.BooleanWithValue(c.ext.GotoLine(no, center)), nil
}

func (c *Commander) currentLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.ext.CurrentLine()), nil
}

func (c *Commander) lineVisibleImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	no, err := intArg(golisp.Car(args), "line-visible?")
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.ext.LineVisible(no)), nil
}

func (c *Commander) setTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text, err := stringArg(golisp.Car(args), "set-text")
	if err != nil {
		return nil, err
	}
	c.ext.SetLines(strings.Split(text, "\n"))
	c.ext.UpdateScreen()
	return golisp.IntegerWithValue(int64(c.ext.Buffer.GetRowCount())), nil
}

func (c *Commander) showStatusImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	msg, err := stringArg(golisp.Car(args), "show-status")
	if err != nil {
		return nil, err
	}
	c.ext.ShowStatus(msg)
	return golisp.LispTrue, nil
}

func (c *Commander) showCursorStatusImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c.ext.ShowCursorStatus()
	return golisp.LispTrue, nil
}

func (c *Commander) drawBoxImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	r, err := rectArgs(args, "draw-box")
	if err != nil {
		return nil, err
	}
	c.ext.DrawBox(r)
	return golisp.LispTrue, nil
}

func (c *Commander) clearBoxImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	r, err := rectArgs(args, "clear-box")
	if err != nil {
		return nil, err
	}
	c.ext.ClearBox(r)
	return golisp.LispTrue, nil
}

// (edit-line [title [initial]]) returns the entered text, or nil if cancelled.
func (c *Commander) editLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	spec := c.ext.DefaultDialog()
	var err error
	if golisp.Length(args) > 0 {
		if spec.Title, err = stringArg(golisp.Car(args), "edit-line"); err != nil {
			return nil, err
		}
	}
	if golisp.Length(args) > 1 {
		if spec.Initial, err = stringArg(golisp.Cadr(args), "edit-line"); err != nil {
			return nil, err
		}
	}
	line, ok, err := c.ext.DialogEditLine(spec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return golisp.StringWithValue(line), nil
}
