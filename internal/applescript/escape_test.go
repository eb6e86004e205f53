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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unescape re-applies AppleScript string-literal rules, so escaping
// followed by unescaping must reconstruct the original exactly.
func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			b.WriteByte(s[i])
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestEscapeRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain",
		`with "quotes"`,
		`back\slash`,
		`mixed \" both \\" ways`,
		`trailing backslash \`,
		"unicode héllo ✉",
	}
	for _, in := range cases {
		assert.Equal(t, in, unescape(Escape(in)), "round trip of %q", in)
	}
}

func TestEscapeBackslashBeforeQuote(t *testing.T) {
	// Escaping the quote first would turn `\"` into `\\\"` and then
	// double-escape the introduced backslash.
	assert.Equal(t, `\\\"`, Escape(`\"`))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"say \"hi\""`, Quote(`say "hi"`))
}
