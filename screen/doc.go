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

// Package screen connects widgets to a real terminal.
// Terminal writes VT100 sequences to a byte stream and decodes raw key
// input with an explicit Keymap; TermboxScreen does the same work through
// termbox-go. Grid is an in-memory display used for tests and scripts.
// SizeProbe asks the terminal for its dimensions.
package screen
