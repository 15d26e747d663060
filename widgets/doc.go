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

// Package widgets builds small modal terminal widgets on top of the editor:
// a single-line editor, a read-only viewer, boxes, dialogs and status lines.
// Widgets are composed from an editor.Editor and a key interception policy
// rather than by changing the editor itself.
package widgets
