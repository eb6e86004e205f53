// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package applescript generates AppleScript sources, runs them through
// the osascript interpreter and maps the textual replies back into
// structured records.
package applescript

import "strings"

// Escape makes an arbitrary string safe to splice into a double-quoted
// AppleScript literal. Backslashes must be escaped before quotes;
// reversing the order would double-escape the quote escapes.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// Quote escapes s and wraps it in double quotes, ready for embedding
// in generated script text.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}
