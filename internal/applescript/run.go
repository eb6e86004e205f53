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
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strings"

	apperrors "mailbridge/internal/errors"
)

// DefaultInterpreter is the binary used when no override is configured.
const DefaultInterpreter = "osascript"

// fallbackMessage is reported when stderr yields nothing usable.
const fallbackMessage = "AppleScript execution failed"

// Runner executes a complete script body and returns its trimmed
// standard output. Implementations report failures as coded errors.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

// Osascript runs scripts by feeding them to the osascript binary over
// standard input. It is the only I/O boundary to the mail client; a
// fresh process is spawned per script, no session is kept.
type Osascript struct {
	// Path overrides the interpreter binary. Empty means osascript
	// from PATH.
	Path string
}

// Run implements Runner.
func (o Osascript) Run(ctx context.Context, script string) (string, error) {
	path := o.Path
	if path == "" {
		path = DefaultInterpreter
	}

	cmd := exec.CommandContext(ctx, path, "-")
	cmd.Stdin = strings.NewReader(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", apperrors.New(apperrors.CodeScript, normalizeStderr(stderr.String()))
		}
		// Interpreter never ran (missing binary, canceled context).
		return "", apperrors.Wrap(apperrors.CodeScript, fallbackMessage, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// trailing parenthesized numeric error code, e.g. " (-1728)"
var errCodeSuffix = regexp.MustCompile(`\s*\(-?\d+\)$`)

// normalizeStderr extracts a human-readable message from osascript
// stderr by stripping the "...execution error:" prefix and the
// trailing numeric error code.
func normalizeStderr(stderr string) string {
	msg := strings.TrimSpace(stderr)
	if i := strings.Index(msg, "execution error:"); i >= 0 {
		msg = msg[i+len("execution error:"):]
	}
	msg = strings.TrimSpace(errCodeSuffix.ReplaceAllString(strings.TrimSpace(msg), ""))
	if msg == "" {
		return fallbackMessage
	}
	return msg
}
