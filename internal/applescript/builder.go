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

package applescript

import (
	"fmt"
	"strings"
)

// Script assembles indented AppleScript source line by line. All
// caller-supplied values must pass through Quote on their way in;
// keeping the rendering here keeps escaping in one place.
type Script struct {
	b     strings.Builder
	depth int
}

// Line appends one line at the current indentation.
func (s *Script) Line(line string) {
	s.b.WriteString(strings.Repeat("\t", s.depth))
	s.b.WriteString(line)
	s.b.WriteByte('\n')
}

// Linef appends one formatted line at the current indentation.
func (s *Script) Linef(format string, args ...any) {
	s.Line(fmt.Sprintf(format, args...))
}

// Raw appends pre-rendered statements (e.g. from DateExpr) without
// reindenting them.
func (s *Script) Raw(block string) {
	s.b.WriteString(block)
}

// Begin appends a block opener and indents what follows.
func (s *Script) Begin(line string) {
	s.Line(line)
	s.depth++
}

// Beginf appends a formatted block opener and indents what follows.
func (s *Script) Beginf(format string, args ...any) {
	s.Begin(fmt.Sprintf(format, args...))
}

// End dedents and appends a block closer.
func (s *Script) End(line string) {
	s.depth--
	s.Line(line)
}

func (s *Script) String() string {
	return s.b.String()
}

// Contains renders a whose-clause substring condition.
func Contains(property, value string) string {
	return property + " contains " + Quote(value)
}

// Is renders a whose-clause equality condition against a raw operand
// (a quoted literal or an AppleScript constant like true).
func Is(property, operand string) string {
	return property + " is " + operand
}

// AllOf joins conditions with "and" for use in a whose clause.
func AllOf(conds ...string) string {
	return strings.Join(conds, " and ")
}

// TabJoined renders an expression concatenating value expressions with
// tab separators, matching the layout ParseRecords and SplitFields
// expect on the way back.
func TabJoined(exprs ...string) string {
	return strings.Join(exprs, " & tab & ")
}
