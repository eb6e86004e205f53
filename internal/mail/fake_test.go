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

package mail

import (
	"context"

	"github.com/rs/zerolog"
)

// reply is one canned interpreter exchange.
type reply struct {
	out string
	err error
}

// fakeRunner records every generated script and answers from a queue,
// standing in for the osascript subprocess.
type fakeRunner struct {
	scripts []string
	replies []reply
}

func (f *fakeRunner) Run(_ context.Context, script string) (string, error) {
	f.scripts = append(f.scripts, script)
	if len(f.replies) == 0 {
		return "", nil
	}
	r := f.replies[0]
	f.replies = f.replies[1:]
	return r.out, r.err
}

func (f *fakeRunner) queue(out string) {
	f.replies = append(f.replies, reply{out: out})
}

func (f *fakeRunner) queueErr(err error) {
	f.replies = append(f.replies, reply{err: err})
}

func (f *fakeRunner) lastScript() string {
	if len(f.scripts) == 0 {
		return ""
	}
	return f.scripts[len(f.scripts)-1]
}

func newTestClient(f *fakeRunner) *Client {
	return NewClient(f, zerolog.Nop(), 0)
}
