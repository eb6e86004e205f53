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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mailbridge/internal/errors"
)

func TestNormalizeStderr(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   string
	}{
		{
			"full boilerplate",
			`script: execution error: Mail got an error: Can't get mailbox "Nope". (-1728)`,
			`Mail got an error: Can't get mailbox "Nope".`,
		},
		{
			"no prefix",
			"something else went wrong",
			"something else went wrong",
		},
		{
			"no code suffix",
			"53:60: execution error: plain message",
			"plain message",
		},
		{
			"empty falls back",
			"",
			fallbackMessage,
		},
		{
			"only boilerplate falls back",
			"execution error: (-2700)",
			fallbackMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeStderr(tt.stderr))
		})
	}
}

// The interpreter binary is swappable, so the subprocess plumbing is
// testable with sh: like osascript, "sh -" reads the script from
// standard input.
func TestOsascriptRunSuccess(t *testing.T) {
	out, err := Osascript{Path: "sh"}.Run(context.Background(), "echo hello\n")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestOsascriptRunFailure(t *testing.T) {
	script := "echo 'x: execution error: boom (-1728)' >&2\nexit 1\n"
	_, err := Osascript{Path: "sh"}.Run(context.Background(), script)
	require.Error(t, err)

	var coded *apperrors.Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, apperrors.CodeScript, coded.Code)
	assert.Equal(t, "boom", coded.Message)
}

func TestOsascriptRunMissingBinary(t *testing.T) {
	_, err := Osascript{Path: "/nonexistent/interpreter"}.Run(context.Background(), "return 1")
	require.Error(t, err)

	var coded *apperrors.Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, apperrors.CodeScript, coded.Code)
}
