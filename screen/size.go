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
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	gott "github.com/timburks/gottx/types"
)

// DefaultSize is reported when the terminal does not answer a size query.
var DefaultSize = gott.Size{Rows: 24, Cols: 80}

const DefaultProbeTimeout = 200 * time.Millisecond

// The size request is CSI 18 t; the reply is CSI 8 ; rows ; cols t.
var (
	sizeRequest     = ansi.WindowOp(18)
	sizeReplyPrefix = []byte("\x1b[8;")
)

var ErrMalformedSizeReport = errors.New("malformed terminal size report")

// A Waiter blocks until input is readable or the timeout passes.
type Waiter interface {
	WaitReadable(timeout time.Duration) (bool, error)
}

// A SizeProbe asks a terminal for its dimensions with an escape-sequence
// round trip. Terminals that ignore the request are given DefaultSize.
type SizeProbe struct {
	In      io.Reader
	Out     io.Writer
	Waiter  Waiter
	Timeout time.Duration
	// Fatal is called when the terminal answers with something that is
	// not a size report. It is expected not to return.
	Fatal func(format string, args ...any)
}

func NewSizeProbe(in *os.File, out io.Writer) *SizeProbe {
	return &SizeProbe{
		In:      in,
		Out:     out,
		Waiter:  FdWaiter{Fd: int(in.Fd())},
		Timeout: DefaultProbeTimeout,
		Fatal:   log.Fatalf,
	}
}

// Query returns the terminal size, columns first.
func (p *SizeProbe) Query() (cols, rows int) {
	if _, err := io.WriteString(p.Out, sizeRequest); err != nil {
		log.Printf("size request: %v", err)
		return DefaultSize.Cols, DefaultSize.Rows
	}
	ready, err := p.Waiter.WaitReadable(p.Timeout)
	if err != nil {
		log.Printf("waiting for size report: %v", err)
	}
	if !ready {
		return DefaultSize.Cols, DefaultSize.Rows
	}
	buf := make([]byte, 32)
	n, err := p.In.Read(buf)
	if err != nil && n == 0 {
		log.Printf("reading size report: %v", err)
		return DefaultSize.Cols, DefaultSize.Rows
	}
	size, err := ParseSizeReport(buf[:n])
	if err != nil {
		fatal := p.Fatal
		if fatal == nil {
			fatal = log.Fatalf
		}
		fatal("%v", err)
		return DefaultSize.Cols, DefaultSize.Rows
	}
	return size.Cols, size.Rows
}

// ParseSizeReport decodes a reply of the form ESC [ 8 ; rows ; cols t.
func ParseSizeReport(resp []byte) (gott.Size, error) {
	if !bytes.HasPrefix(resp, sizeReplyPrefix) || !bytes.HasSuffix(resp, []byte("t")) {
		return gott.Size{}, fmt.Errorf("%w: %q", ErrMalformedSizeReport, resp)
	}
	fields := strings.Split(string(resp[:len(resp)-1]), ";")
	if len(fields) != 3 {
		return gott.Size{}, fmt.Errorf("%w: %q", ErrMalformedSizeReport, resp)
	}
	rows, err := strconv.Atoi(fields[1])
	if err != nil {
		return gott.Size{}, fmt.Errorf("%w: rows %q", ErrMalformedSizeReport, fields[1])
	}
	cols, err := strconv.Atoi(fields[2])
	if err != nil {
		return gott.Size{}, fmt.Errorf("%w: columns %q", ErrMalformedSizeReport, fields[2])
	}
	return gott.Size{Rows: rows, Cols: cols}, nil
}
