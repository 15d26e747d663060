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

//go:build !unix

package screen

import (
	"time"
)

// An FdWaiter cannot select on this platform, so the terminal is always
// treated as silent and size queries fall back to DefaultSize.
type FdWaiter struct {
	Fd int
}

func (w FdWaiter) WaitReadable(timeout time.Duration) (bool, error) {
	time.Sleep(timeout)
	return false, nil
}
