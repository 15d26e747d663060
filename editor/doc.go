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

// Package editor implements the text editing core shared by gottx widgets.
// An Editor edits one buffer inside a fixed rectangle of a display; its
// Viewport decides which buffer lines are visible and where the cursor is.
// Widgets customize an Editor by choosing which input events reach it.
package editor
