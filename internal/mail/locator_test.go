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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mailbridge/internal/errors"
)

func TestLocateHintedVerifyMatch(t *testing.T) {
	f := &fakeRunner{}
	f.queue("2\n")

	loc, err := newTestClient(f).Locate(context.Background(), "<abc@x>", "Work", "INBOX")
	require.NoError(t, err)

	// Hints come back unchanged without a uniqueness check.
	assert.Equal(t, Location{Account: "Work", Mailbox: "INBOX"}, loc)
	require.Len(t, f.scripts, 1)
	assert.Contains(t, f.scripts[0], `whose message id is "<abc@x>"`)
	assert.NotContains(t, f.scripts[0], "repeat with acct in accounts")
}

func TestLocateHintedVerifyMiss(t *testing.T) {
	f := &fakeRunner{}
	f.queue("0")

	_, err := newTestClient(f).Locate(context.Background(), "<abc@x>", "Work", "INBOX")
	require.Error(t, err)
	assert.EqualError(t, err, "Message not found in INBOX of Work")

	var coded *apperrors.Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, apperrors.CodeNotFound, coded.Code)
}

func TestLocateUnhintedSearchFound(t *testing.T) {
	f := &fakeRunner{}
	f.queue("Personal\tArchive")

	loc, err := newTestClient(f).Locate(context.Background(), "<abc@x>", "", "")
	require.NoError(t, err)
	assert.Equal(t, Location{Account: "Personal", Mailbox: "Archive"}, loc)

	script := f.lastScript()
	assert.Contains(t, script, "repeat with acct in accounts")
	assert.Contains(t, script, "repeat with mb in (mailboxes of acct)")
	// Erroring mailboxes are skipped, not fatal.
	assert.Contains(t, script, "try")
}

func TestLocateUnhintedSearchMiss(t *testing.T) {
	f := &fakeRunner{}
	f.queue("")

	_, err := newTestClient(f).Locate(context.Background(), "<gone@x>", "", "")
	assert.EqualError(t, err, "Message not found")
}

func TestLocateSingleHintStillSearches(t *testing.T) {
	// Only the fully-hinted case skips the exhaustive search.
	f := &fakeRunner{}
	f.queue("Work\tINBOX")

	loc, err := newTestClient(f).Locate(context.Background(), "<abc@x>", "Work", "")
	require.NoError(t, err)
	assert.Equal(t, Location{Account: "Work", Mailbox: "INBOX"}, loc)
	assert.Contains(t, f.lastScript(), "repeat with acct in accounts")
}
