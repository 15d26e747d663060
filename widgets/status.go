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
	"fmt"
)

// ShowStatus writes msg on the status row, erasing whatever was there.
func (x *Ext) ShowStatus(msg string) {
	x.Cursor(false)
	x.Goto(x.statusRow, 0)
	x.Wr(msg)
	x.ClearToEOL()
	x.SetCursor()
	x.Cursor(true)
}

// ShowCursorStatus writes the cursor position as line:column.
func (x *Ext) ShowCursorStatus() {
	x.Cursor(false)
	x.Goto(x.options.CursorStatusRow, 0)
	x.Wr(fmt.Sprintf("% 3d:% 3d", x.View.CurLine, x.View.Col+x.View.Margin))
	x.ClearToEOL()
	x.SetCursor()
	x.Cursor(true)
}
