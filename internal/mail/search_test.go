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
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDefaults(t *testing.T) {
	f := &fakeRunner{}
	f.queue("<a@x>\tWork\tINBOX\tMon, 4 Mar 2024\tfalse\tbob@x\tHello\n")

	messages, err := newTestClient(f).Search(context.Background(), SearchFilter{})
	require.NoError(t, err)

	require.Len(t, messages, 1)
	assert.Equal(t, MessageSummary{
		MessageID: "<a@x>",
		Account:   "Work",
		Mailbox:   "INBOX",
		Date:      "Mon, 4 Mar 2024",
		IsRead:    false,
		Sender:    "bob@x",
		Subject:   "Hello",
	}, messages[0])

	script := f.lastScript()
	// No account filter: all accounts, INBOX of each.
	assert.Contains(t, script, "repeat with acct in accounts")
	assert.Contains(t, script, `set mb to mailbox "INBOX" of acct`)
	// No filters: plain fetch, no whose clause.
	assert.Contains(t, script, "set hits to (messages of mb)")
	assert.NotContains(t, script, "whose")
}

func TestSearchWhoseClause(t *testing.T) {
	f := &fakeRunner{}
	f.queue("")
	read := false

	_, err := newTestClient(f).Search(context.Background(), SearchFilter{
		Account:    "Work",
		Mailbox:    "Receipts",
		Subject:    "invoice",
		Sender:     "billing@",
		ReadStatus: &read,
	})
	require.NoError(t, err)

	script := f.lastScript()
	assert.Contains(t, script, `repeat with acct in {account "Work"}`)
	assert.Contains(t, script, `set mb to mailbox "Receipts" of acct`)
	assert.Contains(t, script,
		`whose subject contains "invoice" and sender contains "billing@" and read status is false`)
}

func TestSearchDateRangeAppliedAfterFetch(t *testing.T) {
	f := &fakeRunner{}
	f.queue("")

	_, err := newTestClient(f).Search(context.Background(), SearchFilter{
		Subject:    "report",
		DateAfter:  "2024-01-01",
		DateBefore: "2024-06-30",
	})
	require.NoError(t, err)

	script := f.lastScript()
	// Date bounds are built as values and compared in the loop, never
	// pushed into the whose clause.
	assert.Contains(t, script, "set year of startDate to 2024")
	assert.Contains(t, script, "set hours of endDate to 23")
	assert.Contains(t, script, "if (date received of msg) < startDate then set keep to false")
	assert.Contains(t, script, "if (date received of msg) > endDate then set keep to false")
	assert.NotContains(t, script, "whose date")
}

func TestSearchMalformedDatePropagates(t *testing.T) {
	f := &fakeRunner{}

	_, err := newTestClient(f).Search(context.Background(), SearchFilter{DateAfter: "yesterday"})
	require.Error(t, err)
	// Nothing was dispatched to the interpreter.
	assert.Empty(t, f.scripts)
}

func TestSearchCapInScript(t *testing.T) {
	f := &fakeRunner{}
	f.queue("")

	_, err := newTestClient(f).Search(context.Background(), SearchFilter{})
	require.NoError(t, err)

	script := f.lastScript()
	// The early-exit counter guards before and after the inner loop.
	assert.Equal(t, 3, strings.Count(script, "if total is greater than or equal to 50 then exit repeat"))
	// Per-mailbox errors are swallowed so one bad mailbox cannot abort
	// the whole search.
	assert.Contains(t, script, "try")
}

func TestSearchCustomLimit(t *testing.T) {
	f := &fakeRunner{}
	f.queue("")
	c := NewClient(f, zerolog.Nop(), 10)

	_, err := c.Search(context.Background(), SearchFilter{})
	require.NoError(t, err)
	assert.Contains(t, f.lastScript(), "greater than or equal to 10")
}
